package main

import (
	"github.com/StounhandJ/yt_download_bot/internal/app"
	"github.com/StounhandJ/yt_download_bot/internal/config"
	"github.com/StounhandJ/yt_download_bot/internal/gateway"
	"github.com/StounhandJ/yt_download_bot/internal/utils"
	"github.com/aws/aws-lambda-go/lambda"
)

var handler gateway.Handler

// Ссылка на скачивание видео. Конфиг только из env.
func init() {
	var cfg config.Config
	if err := config.LoadEnv(&cfg); err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	utils.InitLogger(cfg.Application.LogLevel)

	handler = app.Download(cfg.Application).Handle
}

func main() {
	lambda.Start(gateway.Lambda(handler))
}
