package configuration

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type (
	Properties struct {
		LogLevel string `env:"LOG_LEVEL" envDefault:"DEBUG"`

		Session  SessionProperties        `envPrefix:"SESSION_"`
		Auth     AuthServiceProperties    `envPrefix:"AUTH_"`
		Products ProductServiceProperties `envPrefix:"PRODUCT_"`
		Media    MediaServiceProperties   `envPrefix:"MEDIA_"`
		Server   HttpServerProperties     `envPrefix:"HTTP_"`
	}

	SessionProperties struct {
		TokenCookieName string        `env:"COOKIE" envDefault:"token"`
		CookieMaxAge    time.Duration `env:"COOKIE_MAX_AGE" envDefault:"24h"`
	}

	AuthServiceProperties struct {
		Host        string        `env:"HOST" envDefault:"http://localhost:8081"`
		ReadTimeout time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	}

	ProductServiceProperties struct {
		Host        string        `env:"HOST" envDefault:"http://localhost:8082"`
		ReadTimeout time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	}

	MediaServiceProperties struct {
		Host          string        `env:"HOST" envDefault:"http://localhost:8083"`
		ReadTimeout   time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
		MaxUploadSize int64         `env:"MAX_UPLOAD_SIZE" envDefault:"2097152"`
	}

	HttpServerProperties struct {
		Name        string        `env:"NAME" envDefault:"buy01"`
		Port        string        `env:"PORT" envDefault:"8088"`
		ReadTimeout time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	}
)

func ReadProperties() *Properties {
	config := &Properties{}

	if err := env.Parse(config); err != nil {
		panic(fmt.Errorf("read config error: %w", err))
	}
	fmt.Printf("config: %+v", config)
	return config
}
