package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type RoyaltyConfig struct {
	Env        string `yaml:"env" env:"ENV" env-default:"dev"`
	HTTPServer `yaml:"http_server"`
	RoyaltyDB  `yaml:"royalty_db"`
	LogConfig  `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	Gateway    `yaml:"gateway"`
	Moderation `yaml:"moderation"`
	Withdrawal `yaml:"withdrawal"`
	Orders     `yaml:"orders"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type RoyaltyDB struct {
	Dsn            string `yaml:"dsn" env:"ROYALTY_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"json"`
	LogOutput string `yaml:"log_output" env-default:"stdout"`
}

type KafkaService struct {
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	Username   string `yaml:"username" env:"KAFKA_USERNAME"`
	Password   string `yaml:"password" env:"KAFKA_PASSWORD"`
	Mechanism  string `yaml:"mechanism"`
	TLSEnabled bool   `yaml:"tls_enabled"`
}

type Gateway struct {
	Delay time.Duration `yaml:"delay" env-default:"150ms"`
}

type Moderation struct {
	ReviewWindow  time.Duration `yaml:"review_window" env-default:"15m"`
	SweepInterval time.Duration `yaml:"sweep_interval" env-default:"1m"`
}

type Withdrawal struct {
	PendingTTL    time.Duration `yaml:"pending_ttl" env-default:"72h"`
	SweepInterval time.Duration `yaml:"sweep_interval" env-default:"10m"`
}

type Orders struct {
	PendingTTL    time.Duration `yaml:"pending_ttl" env-default:"24h"`
	SweepInterval time.Duration `yaml:"sweep_interval" env-default:"10m"`
}

func MustLoad() *RoyaltyConfig {

	// Processing env config variable and file
	configPath := os.Getenv("ROYALTY_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("ROYALTY_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg RoyaltyConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
