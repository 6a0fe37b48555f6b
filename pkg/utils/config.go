package utils

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Theater  TheaterConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// TheaterConfig describes the fixed seat layout created at first startup.
type TheaterConfig struct {
	Seed        bool
	Rows        string
	SeatsPerRow int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "movie-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SEED", true)
	viper.SetDefault("THEATER_ROWS", "A,B,C,D,E")
	viper.SetDefault("THEATER_SEATS_PER_ROW", 8)

	if err := viper.ReadInConfig(); err != nil {
		// Missing .env is fine, defaults plus environment apply
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Theater: TheaterConfig{
			Seed:        viper.GetBool("SEED"),
			Rows:        viper.GetString("THEATER_ROWS"),
			SeatsPerRow: viper.GetInt("THEATER_SEATS_PER_ROW"),
		},
	}

	return config, nil
}
