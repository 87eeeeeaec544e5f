package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/shodh-oj.net/internal/adapter/postgres/contestrepository"
	"gitlab.com/shodh-oj.net/internal/adapter/postgres/problemrepository"
	"gitlab.com/shodh-oj.net/internal/adapter/postgres/submissionrepository"
	"gitlab.com/shodh-oj.net/internal/adapter/postgres/userrepository"
	"gitlab.com/shodh-oj.net/internal/adapter/redis/leaderboardcache"
	"gitlab.com/shodh-oj.net/internal/adapter/sandbox"
	"gitlab.com/shodh-oj.net/internal/config"
	"gitlab.com/shodh-oj.net/internal/core/services/contest"
	"gitlab.com/shodh-oj.net/internal/core/services/judge"
	"gitlab.com/shodh-oj.net/internal/core/services/leaderboard"
	"gitlab.com/shodh-oj.net/internal/core/services/submission"
	"gitlab.com/shodh-oj.net/internal/core/services/synthesizer"
	logger2 "gitlab.com/shodh-oj.net/internal/global/logger"
	http2 "gitlab.com/shodh-oj.net/internal/http"
	"gitlab.com/shodh-oj.net/internal/seed"
	"gitlab.com/shodh-oj.net/internal/watchdog"
)

func main() {
	// .env is optional; real deployments configure via the environment
	_ = godotenv.Load()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	logger := logger2.Logger
	logger.Info("Starting judging service")

	sysCfg := config.NewSystemConfig()

	db, err := setupDatabase(sysCfg.PostgresConfig)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})
	defer redisClient.Close()

	// SECONDARY PORTS
	userPort := userrepository.New(db, logger)
	contestPort := contestrepository.New(db, logger)
	problemPort := problemrepository.New(db, logger)
	submissionRepo := submissionrepository.New(db, logger)
	boardCache := leaderboardcache.New(redisClient, logger)
	executor := sandbox.NewDockerExecutor(sysCfg.JudgeConfig, logger)

	if sysCfg.SeedData {
		if err := seed.New(db, logger).Run(context.Background()); err != nil {
			logger.Error("Failed to seed data", "error", err)
			os.Exit(1)
		}
	}

	// services
	registry := synthesizer.NewRegistry()
	judgeSvc := judge.NewJudgeService(submissionRepo, problemPort, executor, registry, sysCfg.JudgeConfig, logger)
	judgePool := submission.NewJudgePool(judgeSvc, submissionRepo, logger,
		sysCfg.JudgeConfig.WorkerCount, sysCfg.JudgeConfig.QueueSize)
	submissionSvc := submission.NewSubmissionService(submissionRepo, userPort, contestPort, problemPort, judgePool, logger)
	contestSvc := contest.NewContestService(contestPort, problemPort, submissionRepo, logger)
	leaderboardSvc := leaderboard.NewLeaderboardService(contestPort, problemPort, submissionRepo, userPort, boardCache, logger)
	serviceProvider := http2.NewServiceProvider(submissionSvc, contestSvc, leaderboardSvc)

	// server and background workers
	ctxBg, stopWorkers := context.WithCancel(context.Background())
	judgePool.Start(ctxBg)
	watchdog.New(submissionRepo, sysCfg.JudgeConfig.WatchdogInterval,
		sysCfg.JudgeConfig.StuckThreshold, logger).Start(ctxBg)

	httServer := http2.NewServer(sysCfg.HTTPPort, "judgingEngine", *serviceProvider, logger)
	if err := httServer.Init(); err != nil {
		panic(err)
	}
	httServer.Start(ctxBg)

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	httServer.Stop(ctx)
	stopWorkers()

	logger.Info("successfully shutdown server")
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(cfg *config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.Url)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}
