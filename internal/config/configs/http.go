package configs

import "time"

// HTTP configures the API server. ReadHeaderTimeout guards against slow
// clients and ShutdownTimeout bounds the graceful drain on SIGINT/SIGTERM.
type HTTP struct {
	Port              uint16        `env:"PORT" envDefault:"8080"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
