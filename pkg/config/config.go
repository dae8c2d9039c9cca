// Package config loads the service configuration from the environment, with
// optional .env file support for local development.
package config

import "time"

// Server holds the HTTP bind settings.
type Server struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port int    `envconfig:"PORT" default:"8081"`
}

// RateLimit configures the request limiter middleware.
type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// Log configures the process logger.
type Log struct {
	Level  string `envconfig:"LEVEL" default:"info"`
	Format string `envconfig:"FORMAT" default:"text"`
	Prefix string `envconfig:"PREFIX" default:"accounts"`
}

// App is the root configuration for the accounts service.
type App struct {
	Env       string    `envconfig:"ENV" default:"development"`
	Server    Server    `envconfig:"SERVER"`
	RateLimit RateLimit `envconfig:"RATE_LIMIT"`
	Log       Log       `envconfig:"LOG"`
}
