// Package config holds the server's runtime configuration and binds it to
// command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"
)

// Protocols a server can speak.
const (
	ProtocolHTTP  = "http"
	ProtocolHello = "hello"
)

// Config is the complete server configuration.
type Config struct {
	Host            string        // bind address
	Port            int           // TCP port; 0 picks a free port
	Workers         int           // listener pool size
	DocumentRoot    string        // directory files are served from
	Protocol        string        // ProtocolHTTP or ProtocolHello
	ReadTimeout     time.Duration // per-connection receive deadline
	ShutdownTimeout time.Duration // how long Shutdown waits for workers
	LogLevel        string        // debug, info, warn or error
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	return Config{
		Host:            "127.0.0.1",
		Port:            8080,
		Workers:         4,
		DocumentRoot:    "www",
		Protocol:        ProtocolHTTP,
		ReadTimeout:     10 * time.Second,
		ShutdownTimeout: 2 * time.Second,
		LogLevel:        "info",
	}
}

// RegisterFlags binds c to fs. Short and long spellings of a flag share one
// field; the current values of c are the defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Host, "i", c.Host, "bind address")
	fs.StringVar(&c.Host, "ip", c.Host, "bind address")
	fs.IntVar(&c.Port, "p", c.Port, "port to listen on")
	fs.IntVar(&c.Port, "port", c.Port, "port to listen on")
	fs.IntVar(&c.Workers, "w", c.Workers, "number of workers accepting connections")
	fs.IntVar(&c.Workers, "workers", c.Workers, "number of workers accepting connections")
	fs.StringVar(&c.DocumentRoot, "r", c.DocumentRoot, "document root")
	fs.StringVar(&c.DocumentRoot, "documentroot", c.DocumentRoot, "document root")
	fs.StringVar(&c.Protocol, "protocol", c.Protocol, "protocol to serve: http or hello")
	fs.DurationVar(&c.ReadTimeout, "read-timeout", c.ReadTimeout, "per-connection read timeout")
	fs.DurationVar(&c.ShutdownTimeout, "shutdown-timeout", c.ShutdownTimeout, "time to wait for workers on shutdown")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", c.Workers))
	}
	if c.Protocol != ProtocolHTTP && c.Protocol != ProtocolHello {
		errs = append(errs, fmt.Errorf("unknown protocol %q", c.Protocol))
	}
	if c.Protocol == ProtocolHTTP && c.DocumentRoot == "" {
		errs = append(errs, errors.New("document root must not be empty"))
	}
	if c.ReadTimeout <= 0 {
		errs = append(errs, fmt.Errorf("read timeout must be positive, got %s", c.ReadTimeout))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
