package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
	TTL    string `yaml:"ttl"`
}

type OTPConfig struct {
	TTL          string `yaml:"ttl"`
	Length       int    `yaml:"length"`
	MaxAttempts  int    `yaml:"max_attempts"`
	ResendWindow string `yaml:"resend_window"`
}

type MailConfig struct {
	From   string `yaml:"from"`
	Sender string `yaml:"sender"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type GeocodingConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

type ConfigFile struct {
	App       AppConfig       `yaml:"app"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	JWT       JWTConfig       `yaml:"jwt"`
	OTP       OTPConfig       `yaml:"otp"`
	Mail      MailConfig      `yaml:"mail"`
	Casbin    CasbinConfig    `yaml:"casbin"`
	Geocoding GeocodingConfig `yaml:"geocoding"`
}

type Config struct {
	Port             string
	GinMode          string
	DSN              string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	JWTSecret        string
	JWTIssuer        string
	TokenTTL         time.Duration
	OTP_TTL          time.Duration
	OTP_Length       int
	OTP_MaxAttempts  int
	OTP_ResendWindow time.Duration
	MailFrom         string
	MailSender       string
	CasbinModelPath  string
	GeocodeBaseURL   string
	GeocodeTimeout   time.Duration
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	tokenTTL, err := time.ParseDuration(configFile.JWT.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT TTL: %w", err)
	}

	otpTTL, err := time.ParseDuration(configFile.OTP.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}

	resWnd, err := time.ParseDuration(configFile.OTP.ResendWindow)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP resend window: %w", err)
	}

	geoTimeout, err := time.ParseDuration(configFile.Geocoding.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid geocoding timeout: %w", err)
	}

	return &Config{
		Port:             fmt.Sprintf("%d", configFile.App.Port),
		GinMode:          configFile.App.GinMode,
		DSN:              env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:        env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:    env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:          configFile.Redis.DB,
		JWTSecret:        env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:        configFile.JWT.Issuer,
		TokenTTL:         tokenTTL,
		OTP_TTL:          otpTTL,
		OTP_Length:       configFile.OTP.Length,
		OTP_MaxAttempts:  configFile.OTP.MaxAttempts,
		OTP_ResendWindow: resWnd,
		MailFrom:         env("MAIL_FROM", configFile.Mail.From),
		MailSender:       configFile.Mail.Sender,
		CasbinModelPath:  configFile.Casbin.ModelPath,
		GeocodeBaseURL:   configFile.Geocoding.BaseURL,
		GeocodeTimeout:   geoTimeout,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
