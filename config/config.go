package config

import (
	"log"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type StorageConfig struct {
	Driver     string // "file" or "sqlite"
	DataDir    string
	SQLitePath string
}

var AppConfig *Config

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Read .env file
	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, checking environment variables: %v", err)
	}

	// Enable reading from OS environment variables as fallback/override
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8085")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("STORAGE_DRIVER", "file")
	viper.SetDefault("DATA_DIR", "./data")

	// Explicitly bind environment variables for robustness
	viper.BindEnv("SERVER_PORT", "PORT") // Fallback to PORT if SERVER_PORT is missing

	// Manually map configuration to struct
	AppConfig = &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Storage: StorageConfig{
			Driver:     viper.GetString("STORAGE_DRIVER"),
			DataDir:    viper.GetString("DATA_DIR"),
			SQLitePath: viper.GetString("SQLITE_PATH"),
		},
	}

	if AppConfig.Storage.SQLitePath == "" {
		AppConfig.Storage.SQLitePath = filepath.Join(AppConfig.Storage.DataDir, "techassist.db")
	}

	log.Printf("Configuration loaded successfully:")
	log.Printf("- Server Port: %s", AppConfig.Server.Port)
	log.Printf("- Server Env: %s", AppConfig.Server.Env)
	log.Printf("- Storage Driver: %s", AppConfig.Storage.Driver)
	log.Printf("- Data Dir: %s", AppConfig.Storage.DataDir)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}
