package config

import (
	"HealthcareGolang/database/postgres"
	appointmentHandler "HealthcareGolang/internal/api/appointment/handler"
	appointmentRepository "HealthcareGolang/internal/api/appointment/repository"
	appointmentService "HealthcareGolang/internal/api/appointment/service"
	chatHandler "HealthcareGolang/internal/api/chat/handler"
	chatRepository "HealthcareGolang/internal/api/chat/repository"
	chatService "HealthcareGolang/internal/api/chat/service"
	doctorHandler "HealthcareGolang/internal/api/doctor/handler"
	doctorService "HealthcareGolang/internal/api/doctor/service"
	recordsHandler "HealthcareGolang/internal/api/records/handler"
	recordsRepository "HealthcareGolang/internal/api/records/repository"
	recordsService "HealthcareGolang/internal/api/records/service"
	reminderHandler "HealthcareGolang/internal/api/reminder/handler"
	reminderRepository "HealthcareGolang/internal/api/reminder/repository"
	reminderService "HealthcareGolang/internal/api/reminder/service"
	"HealthcareGolang/internal/middleware"
	"HealthcareGolang/pkg/bcrypt"
	"HealthcareGolang/pkg/intent"
	"HealthcareGolang/pkg/redis"
	"HealthcareGolang/pkg/utils"
	"context"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	bcryptUtils bcrypt.IBcrypt
	redisServer redis.IRedis
	generator   chatService.TextGenerator
	sessions    chatRepository.Registry
	scheduler   *reminderService.Scheduler
	handlers    []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithTextGenerator(generator chatService.TextGenerator) ServerOption {
	return func(s *Server) error {
		s.generator = generator
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func (s *Server) RegisterHandler() error {
	// Appointment storage: postgres when a database was configured, otherwise
	// the JSON file store.
	var appointmentRepo appointmentRepository.Repository
	if s.db != nil {
		appointmentRepo = appointmentRepository.NewPostgresRepository(s.db, s.log)
	} else {
		appointmentRepo = appointmentRepository.NewFileRepository(envOr("APPOINTMENTS_FILE", "./appointments.json"), s.log)
	}

	// Reminder Domain
	var reminderRepo reminderRepository.Repository
	if s.redisServer != nil {
		reminderRepo = reminderRepository.NewRedisRepository(s.redisServer, s.log)
	} else {
		reminderRepo = reminderRepository.NewMemoryRepository()
	}
	reminderServices := reminderService.New(s.log, reminderRepo)
	reminderHandlers := reminderHandler.New(s.log, s.validator, s.middleware, reminderServices)
	s.scheduler = reminderService.NewScheduler(s.log, reminderRepo, reminderService.NewLogNotifier(s.log))

	// Appointment Domain
	appointmentServices, err := appointmentService.New(s.log, appointmentRepo, reminderServices, s.utils)
	if err != nil {
		return fmt.Errorf("failed to initialize appointment service: %w", err)
	}

	// Doctor Domain
	doctorServices, err := doctorService.New(s.log, envOr("DOCTORS_FILE", "./doctor.json"), s.bcryptUtils)
	if err != nil {
		return fmt.Errorf("failed to load doctor catalog: %w", err)
	}

	appointmentHandlers := appointmentHandler.New(s.log, s.validator, s.middleware, appointmentServices, doctorServices)
	doctorHandlers := doctorHandler.New(s.log, s.validator, s.middleware, doctorServices, appointmentServices)

	// Medical Records Domain
	recordsRepo := recordsRepository.NewFileRepository(
		envOr("MEDICAL_HISTORY_FILE", "./medical_history.json"),
		envOr("MEDICATIONS_FILE", "./medications.json"),
		s.log,
	)
	recordsServices, err := recordsService.New(s.log, recordsRepo, reminderServices)
	if err != nil {
		return fmt.Errorf("failed to initialize records service: %w", err)
	}
	recordsHandlers := recordsHandler.New(s.log, s.validator, s.middleware, recordsServices)

	// Chat Domain
	s.sessions = chatRepository.NewRegistry(s.log)
	chatServices := chatService.New(s.log, s.sessions, appointmentServices, doctorServices, intent.NewClassifier(), s.generator)
	chatHandlers := chatHandler.New(s.log, s.validator, s.middleware, chatServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, chatHandlers, appointmentHandlers, doctorHandlers, recordsHandlers, reminderHandlers)
	return nil
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.engine.Use(s.middleware.NewRateLimiter)

	for _, h := range s.handlers {
		h.Start(router)
	}

	s.scheduler.Start(context.Background())
	s.sessions.StartEviction()

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

// Shutdown stops the background workers and the HTTP listener.
func (s *Server) Shutdown() error {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
	if s.sessions != nil {
		s.sessions.StopEviction()
	}
	return s.engine.Shutdown()
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
