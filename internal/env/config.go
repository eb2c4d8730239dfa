package env

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// Host and Port are the server endpoint used when no positional
	// arguments are given on the command line.
	Host string `env:"STELLAR_HOST,default=127.0.0.1"`
	Port int    `env:"STELLAR_PORT,default=23333"`

	// Debug enables verbose diagnostic logging on stderr.
	Debug bool `env:"STELLAR_DEBUG"`
}

func LoadConfig(ctx context.Context) (*Config, error) {
	config := Config{}

	if err := godotenv.Load(".env.local"); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	if err := envconfig.Process(ctx, &config); err != nil {
		return nil, err
	}

	return &config, nil
}
