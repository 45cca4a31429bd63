package delaunay

import "github.com/pkg/errors"

// Ошибки триангуляции. Возвращаются обернутыми (errors.Wrapf), сравнивать через errors.Is
var (
	// меньше трех точек на входе Triangulate
	ErrInsufficientPoints = errors.New("delaunay: insufficient points")
	// все точки на одной прямой или численно неустойчивая конфигурация
	ErrDegenerateConfiguration = errors.New("delaunay: degenerate configuration")
	// запрос к триангуляции, которая еще не построена
	ErrEmptyTriangulation = errors.New("delaunay: empty triangulation")
	// точка вне супертреугольника
	ErrOutOfBounds = errors.New("delaunay: point outside super-triangle")
)
