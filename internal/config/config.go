package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config/local.yaml"

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"prod"`
	ErrorLog   string `yaml:"error_log" env:"ERROR_LOG" env-default:"errors.log"`
	HTTPServer `yaml:"http_server"`
	DB         `yaml:"db"`
	Admin      `yaml:"admin"`
	CORS       `yaml:"cors"`
	Decoration `yaml:"decoration"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:4001"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type DB struct {
	DBUser     string `yaml:"user" env:"DB_USER" env-required:"true"`
	DBPassword string `yaml:"password" env:"DB_PASSWORD"`
	DBHost     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	DBPort     int    `yaml:"port" env:"DB_PORT" env-default:"3306"`
	DBName     string `yaml:"name" env:"DB_NAME" env-required:"true"`
	ParseTime  bool   `yaml:"parse_time" env-default:"true"`
}

type Admin struct {
	AdminLogin string `yaml:"login" env:"ADMIN_LOGIN"`
	AdminPass  string `yaml:"pass" env:"ADMIN_PASS"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"http://localhost:5173"`
}

type Decoration struct {
	// AllowMismatchedDetails accepts details objects for techniques other
	// than the selected one instead of rejecting them.
	AllowMismatchedDetails bool `yaml:"allow_mismatched_details" env:"DECORATION_ALLOW_MISMATCHED_DETAILS"`
	BatchWorkers           int  `yaml:"batch_workers" env:"DECORATION_BATCH_WORKERS" env-default:"8"`
}

// Load reads the YAML file at path and applies environment overrides.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	return &cfg, nil
}

func MustConfig() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	return cfg
}
