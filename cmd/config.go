package main

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Config struct {
	PollInterval    time.Duration `env:"POLL_INTERVAL,default=500ms" validate:"gt=0"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO" validate:"required"`
	Host            string        `env:"HOST,default=localhost" validate:"required"`
	Port            int           `env:"PORT,default=8080" validate:"min=1,max=65535"`
}

func (c Config) Validate() error {
	return validate.Struct(c)
}

// ArchiveEnabled tells whether finished collaborations are written to disk.
func (c Config) ArchiveEnabled() bool {
	return c.BadgerFilepath != ""
}
