package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/StounhandJ/yt_download_bot/internal/app"
	"github.com/StounhandJ/yt_download_bot/internal/config"
	"github.com/StounhandJ/yt_download_bot/internal/gateway"
	"github.com/StounhandJ/yt_download_bot/internal/utils"
	"github.com/valyala/fasthttp"
)

var cfg config.Config

// Локальный запуск всех трех функций на одном порту
func main() {
	//------ Получение Конфигурации ------//
	if err := config.LoadConfig(&cfg); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	utils.InitLogger(cfg.Application.LogLevel)
	//---------------//

	//------ Обработчики ------//
	routes := app.Routes(cfg.Application)

	handlers := make(map[string]fasthttp.RequestHandler, len(routes))
	for path, h := range routes {
		handlers[path] = gateway.FastHTTP(h)
	}
	//---------------//

	//------ HTTP сервер ------//
	server := &fasthttp.Server{
		Handler: func(ctx *fasthttp.RequestCtx) {
			h, ok := handlers[string(ctx.Path())]
			if !ok {
				ctx.Error("not found", fasthttp.StatusNotFound)
				return
			}

			h(ctx)
		},
		Name: "yt_download_bot",
	}

	go func() {
		utils.Log.Infof("Сервер слушает %s", cfg.Application.Listen)
		utils.Log.Fatal(server.ListenAndServe(cfg.Application.Listen))
	}()
	//---------------//

	//------ Ожидание заершения программы ------//
	utils.Log.Info("Всё запущено")

	cSignal := make(chan os.Signal, 2)
	signal.Notify(cSignal, os.Interrupt, syscall.SIGTERM)
	<-cSignal

	if err := server.Shutdown(); err != nil {
		utils.Log.Error(err)
	}
}
