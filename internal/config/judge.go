package config

import (
	"os"
	"strconv"
	"time"
)

// JudgeConfig sizes the judging engine: the sandbox runtime image and
// resource identity, the fixed compile timeout, the dispatcher pool and
// the stuck-submission watchdog.
type JudgeConfig struct {
	// Image is the judge-capable runtime image holding the per-language
	// compilers and interpreters
	Image       string
	SandboxUser string
	CPULimit    string

	// CompileTimeoutMs bounds the compile step independently of the
	// problem's own time limit
	CompileTimeoutMs int64

	WorkerCount int
	QueueSize   int

	WatchdogInterval time.Duration
	StuckThreshold   time.Duration
}

func NewJudgeConfig() *JudgeConfig {
	image := os.Getenv("JUDGE_IMAGE")
	if image == "" {
		image = "shodh-judge:latest"
	}
	user := os.Getenv("JUDGE_SANDBOX_USER")
	if user == "" {
		user = "coderunner"
	}
	return &JudgeConfig{
		Image:            image,
		SandboxUser:      user,
		CPULimit:         "1",
		CompileTimeoutMs: 5000,
		WorkerCount:      getIntEnv("JUDGE_WORKERS", 4),
		QueueSize:        getIntEnv("JUDGE_QUEUE_SIZE", 64),
		WatchdogInterval: getDurationEnv("JUDGE_WATCHDOG_INTERVAL", time.Minute),
		StuckThreshold:   getDurationEnv("JUDGE_STUCK_THRESHOLD", 5*time.Minute),
	}
}

func getIntEnv(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
