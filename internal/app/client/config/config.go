package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"

	defaultServerAddress = "localhost:8080"
	defaultDirName       = ".watchlater"
	defaultDataFile      = "cache.db"
)

type Config struct {
	Env           string
	ServerAddress string
	EnableTLS     bool
	ConfigDir     string
	DataPath      string
}

// MustLoad builds the client configuration from viper (flags and env
// already merged by the command layer) with sane defaults.
func MustLoad() *Config {
	env := viper.GetString("app_env")
	if env == "" {
		env = EnvLocal
	}

	serverAddress := viper.GetString("server_address")
	if serverAddress == "" {
		serverAddress = defaultServerAddress
	}

	configDir := viper.GetString("config_dir")
	if configDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			configDir = filepath.Join(home, defaultDirName)
		} else {
			configDir = "."
		}
	}

	dataPath := viper.GetString("data_path")
	if dataPath == "" {
		dataPath = filepath.Join(configDir, defaultDataFile)
	}

	return &Config{
		Env:           env,
		ServerAddress: serverAddress,
		EnableTLS:     viper.GetBool("enable_tls"),
		ConfigDir:     configDir,
		DataPath:      dataPath,
	}
}
