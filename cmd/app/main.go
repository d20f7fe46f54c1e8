package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tradepulse/tradepulse/configs"
	"github.com/tradepulse/tradepulse/internal/adapter"
	"github.com/tradepulse/tradepulse/internal/adapter/telegram"
	"github.com/tradepulse/tradepulse/internal/database"
	httpdelivery "github.com/tradepulse/tradepulse/internal/delivery/http"
	"github.com/tradepulse/tradepulse/internal/delivery/ops"
	"github.com/tradepulse/tradepulse/internal/domain"
	"github.com/tradepulse/tradepulse/internal/infra"
	"github.com/tradepulse/tradepulse/internal/repository"
	"github.com/tradepulse/tradepulse/internal/service"
	"github.com/tradepulse/tradepulse/internal/state"
	"github.com/tradepulse/tradepulse/internal/usecase"
	"github.com/tradepulse/tradepulse/internal/view"
	"github.com/tradepulse/tradepulse/pkg/logger"
)

func main() {
	envLoaded := godotenv.Load() == nil

	cfg := configs.Load()

	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	logger.SetGlobalLogger(log)

	if !envLoaded {
		log.Debug().Msg("no .env file found, using environment variables")
	}

	ctx := context.Background()

	db, err := infra.NewDatabase(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	operatorRepo := repository.NewOperatorRepository(db)
	historyRepo := repository.NewEquityHistoryRepository(db)
	archiveRepo := repository.NewTradeArchiveRepository(db)

	ensureDefaultOperator(ctx, operatorRepo, cfg.Auth, log)

	fund := adapter.NewFundBridge(cfg.Fund.URL, cfg.Fund.RequestTimeout, log)
	store := state.NewStore()
	views := view.NewController()

	syncer := service.NewSynchronizer(fund, store, cfg.Fund.PollInterval, log)
	operatorSvc := usecase.NewOperatorService(fund, store, views, syncer, log)

	var notifier service.NotificationService
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		notifier = telegram.NewNotificationService(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		log.Info().Msg("telegram notifications enabled")
	}

	sampler := service.NewHistorySampler(store, historyRepo, cfg.Jobs.HistoryRetention, log)
	archiver := service.NewTradeArchiver(store, archiveRepo, notifier, log)
	guard := service.NewGuardService(fund, store, syncer, notifier, cfg.Guard.DrawdownLimit, log)
	digest := service.NewDigestService(store, archiveRepo, notifier, log)

	sched := infra.NewScheduler(log)
	jobs := []infra.Job{
		{Name: "history-sample", Spec: cfg.Jobs.HistorySampleSpec, Run: sampler.Sample},
		{Name: "trade-archive", Spec: cfg.Jobs.ArchiveSpec, Run: archiver.ArchiveRecent},
		{Name: "drawdown-guard", Spec: cfg.Jobs.GuardSpec, Run: guard.CheckDrawdown},
		{Name: "daily-digest", Spec: cfg.Jobs.DigestSpec, Run: digest.SendDailyDigest},
	}
	for _, job := range jobs {
		if err := sched.Register(job); err != nil {
			log.Fatal().Err(err).Str("job", job.Name).Msg("failed to register job")
		}
	}

	syncer.Activate(ctx)
	sched.Start()

	e := echo.New()
	e.HideBanner = true
	httpdelivery.SetupRoutes(e, &httpdelivery.RouterConfig{
		AuthHandler:   httpdelivery.NewAuthHandler(operatorRepo),
		ViewHandler:   httpdelivery.NewViewHandler(store, views),
		ActionHandler: httpdelivery.NewActionHandler(operatorSvc),
		CORSOrigins:   cfg.Server.CORSOrigins,
	})

	opsSrv := ops.New(ops.Config{
		Port:      cfg.Server.OpsPort,
		Log:       log,
		Store:     store,
		Refresher: syncer,
		History:   historyRepo,
	})

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("view API server failed")
		}
	}()

	go func() {
		if err := opsSrv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ops server failed")
		}
	}()

	log.Info().
		Str("port", cfg.Server.Port).
		Str("ops_port", cfg.Server.OpsPort).
		Str("engine", cfg.Fund.URL).
		Dur("poll_interval", cfg.Fund.PollInterval).
		Str("env", cfg.Server.Env).
		Msg("tradepulse started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	sched.Stop()
	syncer.Deactivate()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("view API shutdown failed")
	}
	if err := opsSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("ops server shutdown failed")
	}

	log.Info().Msg("tradepulse exited")
}

// ensureDefaultOperator creates the bootstrap operator account on first
// run so a fresh deployment has a login. An empty bootstrap password
// skips creation; registration stays available through the API.
func ensureDefaultOperator(ctx context.Context, repo domain.OperatorRepository, cfg configs.AuthConfig, log zerolog.Logger) {
	if cfg.BootstrapPassword == "" {
		log.Warn().Msg("OPERATOR_PASSWORD not set, skipping operator bootstrap")
		return
	}

	if _, err := repo.GetByUsername(ctx, cfg.BootstrapUsername); err == nil {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.BootstrapPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash bootstrap password")
		return
	}

	operator := &domain.Operator{
		ID:           uuid.New(),
		Username:     cfg.BootstrapUsername,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := repo.Create(ctx, operator); err != nil {
		log.Error().Err(err).Msg("failed to create bootstrap operator")
		return
	}

	log.Info().Str("username", operator.Username).Msg("bootstrap operator created")
}
