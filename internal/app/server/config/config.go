package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress = ":8080"
	defaultMigrations = "migrations"
)

type Config struct {
	Env    string
	DB     DB
	Server Server
	Logger Logger
}

type DB struct {
	DatabaseURI string
	Migrations  string
}

type Server struct {
	RunAddress string
}

type Logger struct {
	LogLevel string
}

// MustLoad reads the server configuration from the environment, with an
// optional .env file for local runs.
func MustLoad() *Config {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	env := viper.GetString("app_env")
	if env == "" {
		env = EnvLocal
	}

	runAddress := viper.GetString("run_address")
	if runAddress == "" {
		runAddress = defaultRunAddress
	}

	migrations := viper.GetString("migrations_path")
	if migrations == "" {
		migrations = defaultMigrations
	}

	logLevel := viper.GetString("log_level")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		Env: env,
		DB: DB{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  migrations,
		},
		Server: Server{RunAddress: runAddress},
		Logger: Logger{LogLevel: logLevel},
	}
}
