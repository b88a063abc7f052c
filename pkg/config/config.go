package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultEnvPath = "./configs/.env"

var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set unless STORAGE=memory")

var (
	once     sync.Once
	instance *Config
)

type Config struct {
	v *viper.Viper
}

// New returns the process-wide config. The .env file is optional: values
// already present in the environment win over it.
func New() *Config {
	once.Do(func() {
		instance = Load(DefaultEnvPath)
	})
	return instance
}

// Load builds a fresh config from envPath and the environment. Use New in
// application code.
func Load(envPath string) *Config {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			log.Fatal("loading envs error: ", err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatal("checking env file error: ", err)
	}
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return &Config{v: v}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_ADDRESS", ":8080")
	v.SetDefault("STORAGE", "memory")
	v.SetDefault("MIGRATIONS_DIR", "./migrations")
	v.SetDefault("MIGRATE_ON_START", false)
	v.SetDefault("JWT_ACCESS_TTL", 30*time.Minute)
	v.SetDefault("JWT_REFRESH_TTL", 7*24*time.Hour)
	v.SetDefault("AUTH_AUTO_REGISTER", true)
	v.SetDefault("GENERATOR_TIMEOUT", 5*time.Second)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
}

// Validate checks the settings that have no safe default. On memory storage an
// unset JWT_SECRET is replaced with a random key that lives as long as the
// process.
func (c *Config) Validate() error {
	if c.v.GetString("JWT_SECRET") != "" {
		return nil
	}
	if c.v.GetString("STORAGE") != "memory" {
		return ErrMissingJWTSecret
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return errors.New("generating jwt secret error: " + err.Error())
	}
	c.v.Set("JWT_SECRET", hex.EncodeToString(key))
	return nil
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) GetDuration(key string) time.Duration {
	return c.v.GetDuration(key)
}
