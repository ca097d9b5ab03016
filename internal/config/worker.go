package config

import "time"

// CleanupWorkerConfig sizes the file cleanup consumer
type CleanupWorkerConfig struct {
	Workers      int
	PollInterval time.Duration
}

func DefaultCleanupWorkerConfig() CleanupWorkerConfig {
	cfg := CleanupWorkerConfig{
		Workers:      getEnvIntWithDefault("CLEANUP_WORKER_COUNT", 1),
		PollInterval: getEnvDurationWithDefault("CLEANUP_POLL_INTERVAL", 5*time.Second),
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg
}
