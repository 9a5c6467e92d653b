// Package handler is the Vercel serverless entry point.
package handler

import (
	"context"
	"net/http"
	"sync"

	"github.com/akolanti/MedChatAPI/internal/config"
	"github.com/akolanti/MedChatAPI/internal/server"
	"github.com/akolanti/MedChatAPI/pkg/logger_i"
)

var (
	once sync.Once
	app  *server.App
)

// Handler serves every request routed to the function. Services initialise on the first /get.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		settings := config.Load()
		logger_i.Init(settings)
		app = server.NewApp(context.Background(), settings, nil)
	})
	app.Router.ServeHTTP(w, r)
}
