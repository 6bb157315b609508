package logger

import (
	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

type Config struct {
	Development bool
}

// New builds the process logger: console output at debug level in
// development, JSON at info level otherwise.
func New(cfg Config) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if cfg.Development {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return l.Named("telegram-mock"), nil
}
