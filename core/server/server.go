package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/robfig/cron/v3"

	"github.com/soheiltpr/calfind/core/cache"
	"github.com/soheiltpr/calfind/core/config"
	"github.com/soheiltpr/calfind/core/constants"
	"github.com/soheiltpr/calfind/core/database"
	"github.com/soheiltpr/calfind/core/logger"
	"github.com/soheiltpr/calfind/core/middleware"
	"github.com/soheiltpr/calfind/core/storage"
	"github.com/soheiltpr/calfind/modules/auth"
	"github.com/soheiltpr/calfind/modules/availability"
	"github.com/soheiltpr/calfind/modules/document"
	documentrepo "github.com/soheiltpr/calfind/modules/document/repository"
	"github.com/soheiltpr/calfind/modules/notification"
	notifservice "github.com/soheiltpr/calfind/modules/notification/service"
	"github.com/soheiltpr/calfind/modules/participant"
	participantrepo "github.com/soheiltpr/calfind/modules/participant/repository"
	"github.com/soheiltpr/calfind/modules/project"
)

const shutdownTimeout = 10 * time.Second

// Run boots the whole application: config, Postgres, Redis, S3, the HTTP
// server, the asynq worker and the cron scheduler. It blocks until
// SIGINT/SIGTERM and then drains everything.
func Run() error {
	logger.Init()

	if err := config.Init(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := config.Get()

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	c, err := cache.Init(cfg.Redis)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}

	store := storage.Init(cfg.Storage)

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	asynqClient := asynq.NewClient(redisOpt)
	defer asynqClient.Close()
	enqueuer := notifservice.NewTaskEnqueuer(asynqClient)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())

	mw := middleware.New(c)

	auth.Init(e, db, mw, c)
	projects := project.Init(e, db, mw)
	participants := participant.Init(e, db, mw, projects)
	availability.Init(e, db, mw, projects, participants, c)
	notifications := notification.Init(e, db, mw, projects, c)
	documents := document.Init(e, db, mw, projects, participants, store, c, notifications, enqueuer)

	// Worker consuming the reminder queue.
	worker := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: cfg.Worker.Concurrency,
	})
	mux := asynq.NewServeMux()
	reminder := notifservice.NewReminderHandler(
		documentrepo.NewDocumentRepository(db),
		participantrepo.NewParticipantRepository(db),
		notifications,
		c,
	)
	mux.HandleFunc(constants.TaskDocumentReminder, reminder.Handle)

	go func() {
		if err := worker.Run(mux); err != nil {
			logger.Error("worker stopped", err)
		}
	}()

	// Nightly purge of declined documents' objects.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("0 3 * * *", func() {
		if err := documents.PurgeDeclined(context.Background()); err != nil {
			logger.Error("purge declined documents", err)
		}
	}); err != nil {
		return fmt.Errorf("schedule purge: %w", err)
	}
	scheduler.Start()

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", err)
		}
	}()
	logger.Info("Server started", "port", cfg.Server.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")

	worker.Shutdown()
	<-scheduler.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(ctx)
}
