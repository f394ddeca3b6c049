package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Arguments struct {
	Port          string        `env:"PORT" envDefault:"3000"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	UploadsDir    string        `env:"UPLOADS_DIR" envDefault:"uploads"`
	PublicDir     string        `env:"PUBLIC_DIR" envDefault:"public"`
	MaxUploadSize int64         `env:"MAX_UPLOAD_SIZE" envDefault:"10485760"`
	MailUser      string        `env:"GMAIL_USER" envDefault:""`
	MailPassword  string        `env:"GMAIL_PASS" envDefault:""`
	MailHost      string        `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	MailPort      int           `env:"SMTP_PORT" envDefault:"587"`
	MailFromName  string        `env:"MAIL_FROM_NAME" envDefault:"Streak.xit"`
	NotifyTimeout time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"15s"`
	NotifyRate    time.Duration `env:"NOTIFY_RATE" envDefault:"1s"`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr    string
	LogLevel      string
	UploadsDir    string
	PublicDir     string
	MaxUploadSize int64
}

// MailConfig модель настроек отправки уведомлений по почте
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	FromName string
	// Timeout ограничивает одну попытку отправки уведомления
	Timeout time.Duration
	// Interval минимальный интервал между письмами
	Interval time.Duration
}

// Configured - заданы ли учётные данные почтового сервера
func (c MailConfig) Configured() bool {
	return c.Username != "" && c.Password != ""
}

// Config модель настроек сервиса
type Config struct {
	Server ServerConfig
	Mail   MailConfig
}

func NewConfig() Config {
	// .env необязателен, переменные окружения имеют приоритет
	_ = godotenv.Load()

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		port          = pflag.StringP("port", "p", args.Port, "Server listen port.")
		logLevel      = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		uploads       = pflag.StringP("uploads", "u", args.UploadsDir, "Directory for uploaded payment proofs.")
		public        = pflag.String("public", args.PublicDir, "Directory with storefront and admin pages.")
		notifyTimeout = pflag.Duration("notify_timeout", args.NotifyTimeout, "Timeout of a single approval email.")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:    ":" + *port,
			LogLevel:      *logLevel,
			UploadsDir:    *uploads,
			PublicDir:     *public,
			MaxUploadSize: args.MaxUploadSize,
		},
		Mail: MailConfig{
			Host:     args.MailHost,
			Port:     args.MailPort,
			Username: args.MailUser,
			Password: args.MailPassword,
			FromName: args.MailFromName,
			Timeout:  *notifyTimeout,
			Interval: args.NotifyRate,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:    ":3000",
			LogLevel:      "info",
			UploadsDir:    "uploads",
			PublicDir:     "public",
			MaxUploadSize: 10 << 20,
		},
		Mail: MailConfig{
			Host:     "smtp.gmail.com",
			Port:     587,
			FromName: "Streak.xit",
			Timeout:  15 * time.Second,
			Interval: time.Second,
		},
	}
}
