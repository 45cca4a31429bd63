package voronoi

import (
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/pkg/errors"
)

type options struct {
	// допуск, с которым совпадающие вершины ячейки склеиваются
	epsilon float64
	logger  *logger.ZapLogger
}

type Option func(*options) error

func WithEpsilon(eps float64) Option {
	return func(o *options) error {
		if eps <= 0 {
			return errors.Errorf("WithEpsilon: eps must be positive, got %v", eps)
		}
		o.epsilon = eps
		return nil
	}
}

func WithLogger(l *logger.ZapLogger) Option {
	return func(o *options) error {
		if l == nil {
			l = logger.NewNop()
		}
		o.logger = l
		return nil
	}
}

func newOptions(setters []Option) (options, error) {
	opts := options{
		epsilon: geom.Epsilon,
		logger:  logger.NewNop(),
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return options{}, err
		}
	}
	return opts, nil
}
