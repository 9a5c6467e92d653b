// @title           Medical Chatbot API
// @version         1.0
// @description     Retrieval-augmented medical question answering over a Pinecone index.
// @termsOfService  http://swagger.io/terms/

// @contact.name    API Support

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/akolanti/MedChatAPI/internal/config"
	"github.com/akolanti/MedChatAPI/internal/server"
	"github.com/akolanti/MedChatAPI/pkg/logger_i"
)

var listenAddr string

func main() {
	if err := config.LoadDotEnv(); err != nil {
		println("could not read .env:", err.Error())
	}
	settings := config.Load()

	logger_i.Init(settings)
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", settings.ListenAddr(config.ServerListenAddr), "server listen address")
	flag.Parse()

	if missing := settings.MissingCredentials(); len(missing) > 0 {
		logger.Error("Missing API keys", "keys", missing)
	}

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	app := server.NewApp(serviceContext, settings, nil)

	// local development pays the start-up cost now, serverless pays it on the first /get
	if !settings.Vercel {
		logger.Info("Starting local development server...")
		if _, err := app.Services.Get(serviceContext); err != nil {
			logger.Error("Services not ready, will retry on first request", "error", err)
		}
	}

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	httpServer := server.CreateServer(listenAddr, app.Router)
	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		CloseServices: func() {
			app.Close()
			closeExternalServices()
		},
	}
	go httpServer.ShutDownHandler(shutdownParams)
	go httpServer.ListenAndServe()

	<-stopExecution
	logger.Info("Server stopped")
}
