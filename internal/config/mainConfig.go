package config

type Config struct {
	Application Application `yaml:"Application" env:"APP" flag:""`
}

type Application struct {
	LogLevel        string   `yaml:"LogLevel" env:"LOGLEVEL" default:"error"`
	TGBotToken      string   `yaml:"TGBotToken" env:"TELEGRAM_BOT_TOKEN" envprefix:"" flag:"tg-bot-token" cli:"optional" usage:"Токен телегам бота, без него вебхук отвечает 500"`
	ProxyURL        string   `yaml:"ProxyURL" env:"PROXY_URL" flag:"proxy-url" cli:"optional" usage:"Прокси для отправки запросов"`
	SendTimeout     duration `yaml:"SendTimeout" env:"SEND_TIMEOUT" default:"10s" usage:"Таймаут исходящих запросов к Telegram и YouTube"`
	Listen          string   `yaml:"Listen" env:"LISTEN" default:":8080" usage:"Адрес локального сервера"`
	DownloadBaseURL string   `yaml:"DownloadBaseURL" env:"DOWNLOAD_BASE_URL" default:"https://example.com/download" usage:"Начало ссылки на скачивание"`
	LiveMetadata    bool     `yaml:"LiveMetadata" env:"LIVE_METADATA" default:"false" usage:"Брать название и просмотры из YouTube вместо заглушки"`
}
