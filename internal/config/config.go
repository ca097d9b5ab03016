package config

import (
	"errors"
	"fmt"
	"os"
)

var supportedAlgorithms = map[string]bool{
	"HS256": true,
	"HS384": true,
	"HS512": true,
}

// PasswordConfig holds the argon2id cost parameters used by the credential store
type PasswordConfig struct {
	Time      uint32 `json:"time"`
	MemoryKiB uint32 `json:"memory_kib"`
	Threads   uint8  `json:"threads"`
	KeyLength uint32 `json:"key_length"`
}

type Config struct {
	ServerPort               int            `json:"server_port"`
	JWTSecretKey             string         `json:"-"`
	JWTAlgorithm             string         `json:"jwt_algorithm"`
	AccessTokenExpireMinutes int            `json:"access_token_expire_minutes"`
	Password                 PasswordConfig `json:"password"`
	DefaultRateLimit         int            `json:"default_rate_limit"`
	GlobalRateLimit          int            `json:"global_rate_limit"`
	MaxUploadSize            int64          `json:"max_upload_size"`
}

// Load builds the process-wide configuration from the environment. It is called once in main
// and the result is passed by reference to every component that needs it.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:               getEnvIntWithDefault("SERVER_PORT", 10000),
		JWTSecretKey:             os.Getenv("JWT_SECRET_KEY"),
		JWTAlgorithm:             getEnvWithDefault("JWT_ALGORITHM", "HS256"),
		AccessTokenExpireMinutes: getEnvIntWithDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 1440),
		Password: PasswordConfig{
			Time:      uint32(getEnvIntWithDefault("PASSWORD_HASH_TIME", 1)),
			MemoryKiB: uint32(getEnvIntWithDefault("PASSWORD_HASH_MEMORY_KIB", 64*1024)),
			Threads:   uint8(getEnvIntWithDefault("PASSWORD_HASH_THREADS", 2)),
			KeyLength: uint32(getEnvIntWithDefault("PASSWORD_HASH_KEY_LENGTH", 32)),
		},
		DefaultRateLimit: getEnvIntWithDefault("DEFAULT_RATE_LIMIT", 1000),  // requests per minute per tenant
		GlobalRateLimit:  getEnvIntWithDefault("GLOBAL_RATE_LIMIT", 10000), // requests per minute per IP
		MaxUploadSize:    int64(getEnvIntWithDefault("MAX_UPLOAD_SIZE", 10*1024*1024)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecretKey == "" {
		return errors.New("JWT_SECRET_KEY is required")
	}
	if !supportedAlgorithms[c.JWTAlgorithm] {
		return fmt.Errorf("unsupported JWT_ALGORITHM %q", c.JWTAlgorithm)
	}
	if c.AccessTokenExpireMinutes <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive, got %d", c.AccessTokenExpireMinutes)
	}
	if c.Password.Time == 0 || c.Password.MemoryKiB == 0 || c.Password.Threads == 0 {
		return errors.New("password hash parameters must be positive")
	}
	if c.Password.KeyLength < 16 {
		return errors.New("PASSWORD_HASH_KEY_LENGTH must be >= 16")
	}
	return nil
}

// IsSupportedAlgorithm reports whether name is a signing algorithm the token codec accepts
func IsSupportedAlgorithm(name string) bool {
	return supportedAlgorithms[name]
}
