package config

import (
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Storage drivers accepted in `storage.driver`.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Env         string         `yaml:"env"`          // Env is the current environment: local, development, production.
	Storage     string         `yaml:"storage"`      // Storage selects the record store: postgres or memory.
	HTTP        HTTPConfig     `yaml:"http"`         // HTTP holds the API server configuration.
	MetricsPort int            `yaml:"metrics_port"` // MetricsPort is the port of the monitoring server.
	Postgres    PostgresConfig `yaml:"postgres"`     // Postgres holds the database configuration
}

// HTTPConfig struct holds the API server settings.
type HTTPConfig struct {
	Address      string        `yaml:"address"`       // Address is the listen address, e.g. `:8080`.
	ReadTimeout  time.Duration `yaml:"read_timeout"`  // ReadTimeout bounds reading a whole request.
	WriteTimeout time.Duration `yaml:"write_timeout"` // WriteTimeout bounds writing a response.
	IdleTimeout  time.Duration `yaml:"idle_timeout"`  // IdleTimeout bounds keep-alive connections.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `yaml:"host"`     // Host is the database server address.
	Port     string `yaml:"port"`     // Port is the database server port.
	User     string `yaml:"user"`     // User is the database user.
	Password string `yaml:"password"` // Password is the database user's password.
	Dbname   string `yaml:"db_name"`  // Dbname is the name of the database.
}

// MustLoad reads the configuration from the optional YAML file at CONFIG_PATH and from
// environment variables, which take precedence. It panics on invalid values.
func MustLoad() *Config {
	vpr := viper.New()

	setDefaults(vpr)
	bindEnv(vpr)

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		// check if file exists
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			panic("config file does not exist: " + configPath)
		}

		vpr.SetConfigFile(configPath)
		if err := vpr.ReadInConfig(); err != nil {
			panic("config error: " + err.Error())
		}
	}

	storage := vpr.GetString("storage")
	if storage != StoragePostgres && storage != StorageMemory {
		panic("unknown storage driver: " + storage)
	}

	metricsPort, err := strconv.Atoi(vpr.GetString("metrics_port"))
	if err != nil {
		panic("failed to parse metrics port from configuration")
	}

	return &Config{
		Env:         vpr.GetString("env"),
		Storage:     storage,
		MetricsPort: metricsPort,
		HTTP: HTTPConfig{
			Address:      vpr.GetString("http.address"),
			ReadTimeout:  mustDuration(vpr, "http.read_timeout"),
			WriteTimeout: mustDuration(vpr, "http.write_timeout"),
			IdleTimeout:  mustDuration(vpr, "http.idle_timeout"),
		},
		Postgres: PostgresConfig{
			Host:     vpr.GetString("postgres.host"),
			Port:     vpr.GetString("postgres.port"),
			User:     vpr.GetString("postgres.user"),
			Password: vpr.GetString("postgres.password"),
			Dbname:   vpr.GetString("postgres.db_name"),
		},
	}
}

func setDefaults(vpr *viper.Viper) {
	vpr.SetDefault("env", "local")
	vpr.SetDefault("storage", StoragePostgres)
	vpr.SetDefault("metrics_port", "9090")
	vpr.SetDefault("http.address", ":8080")
	vpr.SetDefault("http.read_timeout", "5s")
	vpr.SetDefault("http.write_timeout", "10s")
	vpr.SetDefault("http.idle_timeout", "60s")
	vpr.SetDefault("postgres.port", "5432")
}

func bindEnv(vpr *viper.Viper) {
	bindings := map[string]string{
		"env":                "HESTIA_ENV",
		"storage":            "HESTIA_STORAGE",
		"metrics_port":       "METRICS_PORT",
		"http.address":       "HTTP_ADDRESS",
		"http.read_timeout":  "HTTP_READ_TIMEOUT",
		"http.write_timeout": "HTTP_WRITE_TIMEOUT",
		"http.idle_timeout":  "HTTP_IDLE_TIMEOUT",
		"postgres.host":      "DB_HOST",
		"postgres.port":      "DB_PORT",
		"postgres.user":      "DB_USERNAME",
		"postgres.password":  "DB_PASSWORD",
		"postgres.db_name":   "DB_NAME",
	}

	for key, env := range bindings {
		_ = vpr.BindEnv(key, env)
	}
}

func mustDuration(vpr *viper.Viper, key string) time.Duration {
	duration, err := time.ParseDuration(vpr.GetString(key))
	if err != nil {
		panic("failed to parse " + key + " from configuration")
	}

	return duration
}
