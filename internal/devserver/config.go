package devserver

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type Config struct {
	Addr    string `env:"CANVASTAP_ADDR" envDefault:":8888"`
	Dir     string `env:"CANVASTAP_DIR" envDefault:"./pub"`
	NoCache bool   `env:"CANVASTAP_NO_CACHE" envDefault:"true"`
}

// ConfigFromEnv loads Config from the process environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}
