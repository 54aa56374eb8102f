package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
)

const (
	appName  = "yt_download_bot"
	appUsage = "Вебхук телеграм бота и ссылки на YouTube видео"
)

var (
	configPath      = "config/config.yaml"
	devConfigPath   = "config/config.dev.yaml"
	localConfigPath = "config/config.local.yaml"
)

// duration для yaml: "5m", 300 или 1.5 (секунды)
type duration time.Duration

func (d duration) Duration() time.Duration {
	return time.Duration(d)
}

func LoadConfig(c any) error {
	var path string

	switch os.Getenv("ENV") {
	case "local":
		path = localConfigPath
	case "dev":
		path = devConfigPath
	case "prod":
		path = configPath
	default:
		path = configPath
	}

	return parseConfig(c, path, CommonParseOptions)
}

// LoadEnv конфиг только из env и флагов, без файла. Для Lambda.
func LoadEnv(c any) error {
	return CommonHelp(appName, appUsage, "", c, DefaultParseOptions)
}

func parseConfig(c any, path string, opts parseOptions) error {
	if err := readFile(c, path); err != nil {
		return err
	}

	return CommonHelp(appName, appUsage, "", c, opts)
}

func readFile(cfg interface{}, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Fatal(cerr)
		}
	}()

	decoder := yaml.NewDecoder(f)

	if err = decoder.Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode yaml file %s: %w", path, err)
	}

	return nil
}

// UnmarshalYAML реализует InterfaceUnmarshaler (UnmarshalYAML(func(interface{}) error) error).
// Поддерживает:
// - строку parseable через time.ParseDuration, например "5m", "1h30m"
// - число, целое или дробное (секунды)
func (d *duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	// go-yaml отдает числа и строкой, поэтому все сводится к разбору строки
	var s string
	if err := unmarshal(&s); err == nil {
		return d.parse(s)
	}

	var f float64
	if err := unmarshal(&f); err == nil {
		*d = duration(time.Duration(f * float64(time.Second)))

		return nil
	}

	return fmt.Errorf("unsupported duration format")
}

func (d *duration) parse(s string) error {
	if dur, err := time.ParseDuration(s); err == nil {
		*d = duration(dur)

		return nil
	}

	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("unsupported duration format %q", s)
	}

	*d = duration(time.Duration(sec * float64(time.Second)))

	return nil
}

// MarshalYAML запишет строку "5m0s"
func (d duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
