package config

import "os"

type AppConfig struct {
	DebugMode      bool
	HTTPPort       int
	SeedData       bool
	RedisConfig    *RedisConfig
	PostgresConfig *PostgresConfig
	JudgeConfig    *JudgeConfig
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		DebugMode:      os.Getenv("DEBUG_MODE") == "true",
		HTTPPort:       getIntEnv("HTTP_PORT", 8080),
		SeedData:       os.Getenv("SEED_DATA") == "true",
		RedisConfig:    NewRedisConfig(),
		PostgresConfig: NewPostgresConfig(),
		JudgeConfig:    NewJudgeConfig(),
	}
}
