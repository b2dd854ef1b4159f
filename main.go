package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"os"
	"os/signal"

	"github.com/rs/cors"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/zarkopopovski/study-bot/config"
	"github.com/zarkopopovski/study-bot/controllers"
	"github.com/zarkopopovski/study-bot/db"
	"github.com/zarkopopovski/study-bot/llm"
)

type Handlers struct {
	HomeController    *controllers.HomeController
	ChatController    *controllers.ChatController
	HistoryController *controllers.HistoryController
}

func main() {
	logger := log.New(os.Stdout, "study-bot ", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(err)
	}

	dbHandler, err := db.NewDBConnection(cfg.DatabasePath, cfg.MigrationsURL)
	if err != nil {
		logger.Fatal(err)
	}
	defer dbHandler.Close()

	llmClient, err := llm.NewClient(
		openai.WithToken(cfg.LLM.APIKey),
		openai.WithBaseURL(cfg.LLM.BaseURL),
		openai.WithModel(cfg.LLM.Model),
	)
	if err != nil {
		logger.Fatal(err)
	}

	handlers := &Handlers{
		HomeController: &controllers.HomeController{},
		ChatController: &controllers.ChatController{
			DBManager: dbHandler,
			LLM:       llmClient,
		},
		HistoryController: &controllers.HistoryController{
			DBManager: dbHandler,
		},
	}

	httpRouter := http.NewServeMux()

	httpRouter.HandleFunc("GET /{$}", handlers.HomeController.Index)
	httpRouter.HandleFunc("POST /chat", handlers.ChatController.Chat)
	httpRouter.HandleFunc("GET /history/{userID}", handlers.HistoryController.GetHistory)
	httpRouter.HandleFunc("DELETE /history/{userID}", handlers.HistoryController.ClearHistory)
	httpRouter.HandleFunc("GET /stats/{userID}", handlers.HistoryController.GetStats)

	handler := cors.AllowAll().Handler(httpRouter)

	logger.Println("Start Listening on port:" + cfg.Port)

	thisServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	go func() {
		err := thisServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal(err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	thisSignalChan := <-sigChan

	logger.Println("Graceful Shutdown", thisSignalChan)

	timeOutContext, canFunct := context.WithTimeout(context.Background(), 5*time.Second)
	defer canFunct()

	thisServer.Shutdown(timeOutContext)
}
