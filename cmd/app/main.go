package main

import (
	"HealthcareGolang/internal/config"
	"HealthcareGolang/pkg/gemini"
	"HealthcareGolang/pkg/log"
	"HealthcareGolang/pkg/openai"
	"HealthcareGolang/pkg/redis"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Warnf("No .env file loaded: %v", err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()

	options := []config.ServerOption{
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithMiddleware(),
		config.WithBcryptUtils(),
		config.WithUtils(),
	}

	if os.Getenv("STORAGE_DRIVER") == "postgres" {
		options = append(options, config.WithDatabase())
	}

	if os.Getenv("REMINDER_DRIVER") == "redis" {
		options = append(options, config.WithRedisServer(redis.New()))
	}

	switch os.Getenv("LLM_PROVIDER") {
	case "gemini":
		geminiClient, err := gemini.NewGeminiClient()
		if err != nil {
			logger.Fatalf("Error creating Gemini client: %v", err)
		}
		options = append(options, config.WithTextGenerator(geminiClient))
	case "openai":
		options = append(options, config.WithTextGenerator(openai.NewChatGPT()))
	default:
		logger.Warn("No LLM provider configured, assistant runs in limited mode")
	}

	server, err := config.NewServer(options...)
	if err != nil {
		logger.Fatal(err)
	}

	if err := server.RegisterHandler(); err != nil {
		logger.Fatalf("Error registering handlers: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")
	if err := server.Shutdown(); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
}
