package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-copilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-copilot-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-copilot-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-copilot-api/infrastructure/repository"
	"github.com/vfg2006/ads-copilot-api/internal/api"
	"github.com/vfg2006/ads-copilot-api/internal/config"
	"github.com/vfg2006/ads-copilot-api/internal/scheduler"
	"github.com/vfg2006/ads-copilot-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-copilot-api/internal/usecases/chatting"
	"github.com/vfg2006/ads-copilot-api/internal/usecases/insighting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	snapshotRepo := repository.NewPerformanceSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	// Em modo sandbox o backend responde com dados fixos, sem Graph API
	var integrator meta.Integrator
	if cfg.Meta.SandboxEnabled {
		logrus.Warn("Modo sandbox habilitado: usando dados fixos da plataforma de anúncios")
		integrator = meta.NewSandboxIntegrator()
	} else {
		metaClient := metaclient.NewClient(cfg)
		integrator = meta.NewIntegrator(metaClient)
	}

	insighter := insighting.NewService(integrator, snapshotRepo)
	chatter := chatting.NewService(integrator, insighter)

	performanceSyncService := scheduler.NewPerformanceSyncService(
		integrator,
		insighter,
		snapshotRepo,
		cfg,
	)

	if err := performanceSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de desempenho")
	} else {
		logrus.Info("Agendador de snapshots de desempenho iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		integrator,
		insighter,
		chatter,
		authenticator,
		performanceSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
