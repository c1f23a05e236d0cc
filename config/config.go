package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port     string `envconfig:"PORT"      default:":3000"`
	DataPath string `envconfig:"DATA_PATH" default:"data/data.json"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

var (
	config Config
	once   sync.Once
)

func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		if err := envconfig.Process("", &config); err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}

		logger.Infof("Configuration loaded: Port=%s, DataPath=%s, LogLevel=%s",
			config.Port, config.DataPath, config.LogLevel)
	})
	return &config
}

func GetConfig() *Config {
	if config.Port == "" || config.DataPath == "" {
		log.Fatal("Configuration not loaded. Call LoadConfig first.")
	}
	return &config
}
