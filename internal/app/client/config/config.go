package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	defaultAPIURL       = "http://localhost:3000/api/v1"
	defaultLogLevel     = "info"
	defaultEnv          = EnvLocal
	defaultConfigDir    = ".convertor"
	defaultConvertDelay = 2
)

type Config struct {
	Env                 string `mapstructure:"app_env"`
	APIURL              string `mapstructure:"api_url"`
	LogLevel            string `mapstructure:"log_level"`
	ConfigDir           string `mapstructure:"config_dir"`
	ConvertDelaySeconds int    `mapstructure:"convert_delay_seconds"`
}

// MustLoad încarcă configurația clientului.
func MustLoad() *Config {
	// Căutăm .env relativ la directorul de lucru.
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}

	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Eroare la încărcarea fișierului .env: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("API_URL", defaultAPIURL)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("CONVERT_DELAY_SECONDS", defaultConvertDelay)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		fmt.Printf("Eroare la crearea directorului de configurare: %v\n", err)
	}

	config := &Config{
		Env:                 viper.GetString("APP_ENV"),
		APIURL:              viper.GetString("API_URL"),
		LogLevel:            viper.GetString("LOG_LEVEL"),
		ConfigDir:           configDir,
		ConvertDelaySeconds: viper.GetInt("CONVERT_DELAY_SECONDS"),
	}

	if err := config.validate(); err != nil {
		panic(fmt.Sprintf("Eroare de configurare: %v", err))
	}

	return config
}

func (c *Config) validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("api_url nu poate fi gol")
	}
	if c.ConvertDelaySeconds < 0 {
		return fmt.Errorf("convert_delay_seconds nu poate fi negativ")
	}
	return nil
}

// IsProd verifică dacă mediul este prod.
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

// IsDev verifică dacă mediul este dev.
func (c *Config) IsDev() bool {
	return c.Env == EnvDev
}

// IsLocal verifică dacă mediul este local.
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal || c.Env == ""
}
