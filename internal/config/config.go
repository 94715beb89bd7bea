package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string           `yaml:"env" env-default:"local"`
	Http       HTTPConfig       `yaml:"http"`
	Validation ValidationConfig `yaml:"validation"`
	Partners   []PartnerConfig  `yaml:"partners"`
	Kafka      KafkaConfig      `yaml:"kafka"`
}

type HTTPConfig struct {
	Port            string        `yaml:"port" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

type ValidationConfig struct {
	// FreshnessWindow is the tolerated gap between the request timestamp
	// and server time in either direction.
	FreshnessWindow time.Duration `yaml:"freshness_window" env-default:"5m"`
}

// PartnerConfig overrides the built-in partner allow-list. Passwords are
// plaintext here; the wire credential is their base64 form.
type PartnerConfig struct {
	Key      string `yaml:"key"`
	Password string `yaml:"password" env-default:""`
}

type KafkaConfig struct {
	// Empty broker list disables the outcome publisher entirely.
	BrokerList []string `yaml:"brokers"`
	Topic      string   `yaml:"topic" env-default:"validation-outcomes"`
}

func LoadConfig() (*Config, error) {
	configPath := fetchConfigPath()

	if configPath == "" {
		return nil, fmt.Errorf("config file is empty")
	}

	return LoadPath(configPath)
}

func LoadPath(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %v", configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read the config: %w", err)
	}

	return &cfg, nil
}

// PartnerMap flattens the configured partner list into the registry shape.
func (c *Config) PartnerMap() map[string]string {
	if len(c.Partners) == 0 {
		return nil
	}
	partners := make(map[string]string, len(c.Partners))
	for _, p := range c.Partners {
		partners[p.Key] = p.Password
	}
	return partners
}

func fetchConfigPath() string {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to configPath")
	flag.Parse()

	if configPath == "" {
		configPath = "local.yaml"
	}
	return configPath
}
