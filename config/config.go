package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Auth     Auth
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Auth struct {
	Secret   string
	Issuer   string
	Audience string
	TokenTTL time.Duration
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("JWT_ISSUER", "studygate")
	viper.SetDefault("JWT_AUDIENCE", "studygate-api")
	viper.SetDefault("TOKEN_TTL_MINUTES", 120)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Auth.Secret = viper.GetString("JWT_SECRET")
	config.Auth.Issuer = viper.GetString("JWT_ISSUER")
	config.Auth.Audience = viper.GetString("JWT_AUDIENCE")
	config.Auth.TokenTTL = time.Duration(viper.GetInt("TOKEN_TTL_MINUTES")) * time.Minute

	log.Info().Str("port", config.Server.Port).Str("db_host", config.Database.Host).Msg("Config loaded")
	return &config, nil
}
