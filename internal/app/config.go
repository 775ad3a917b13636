package app

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/shrimpsizemoose/trekker/logger"
)

type UserConfig struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
	Role     string `toml:"role"`
}

type Config struct {
	Server struct {
		Port       string `toml:"port"`
		EnableAuth bool   `toml:"enable_auth"`
		StaticDir  string `toml:"static_dir"`
		UploadsDir string `toml:"uploads_dir"`
	} `toml:"server"`

	Storage struct {
		DSN string `toml:"dsn"`
	} `toml:"storage"`

	Auth struct {
		RedisURL           string `toml:"redis_url"`
		TokenHeader        string `toml:"token_header"`
		SessionKeyTemplate string `toml:"session_key_template"`
		SessionTTLHours    int    `toml:"session_ttl_hours"`
	} `toml:"auth"`

	Users []UserConfig `toml:"users"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(
			"error reading config file %s\n> Error: %w\n> Content:\n%s",
			path,
			err,
			string(data),
		)
	}

	if config.Server.Port == "" {
		return nil, fmt.Errorf("Server port is not specified in config, use a value like :5000")
	}
	if config.Storage.DSN == "" {
		config.Storage.DSN = "file://data"
	}
	if config.Server.UploadsDir == "" {
		config.Server.UploadsDir = "uploads"
	}

	logger.Debug.Printf("Loaded config: storage=%s auth=%v", config.Storage.DSN, config.Server.EnableAuth)

	return &config, nil
}
