package delaunay

import (
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/pkg/errors"
)

const (
	defaultSuperTriangleScale = 100
	minSuperTriangleScale     = 2
)

type options struct {
	// допуск для совпадения точек
	epsilon float64
	// во сколько раз супертреугольник больше ограничивающего прямоугольника
	superScale float64
	logger     *logger.ZapLogger
}

// Option настраивает триангуляцию
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

func WithSuperTriangleScale(scale float64) Option {
	return func(o *options) error {
		if scale < minSuperTriangleScale {
			return errors.Errorf("WithSuperTriangleScale: scale must be at least %v, got %v", minSuperTriangleScale, scale)
		}
		o.superScale = scale
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
		epsilon:    geom.Epsilon,
		superScale: defaultSuperTriangleScale,
		logger:     logger.NewNop(),
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return options{}, err
		}
	}
	return opts, nil
}
