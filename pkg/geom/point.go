package geom

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Точка на плоскости. Арифметика делегируется r2.Point
type Point r2.Point

// Точка, обозначающая отсутствие точки (как NO_VERTEX в диаграмме Форчуна)
var NoPoint = Point{math.Inf(1), math.Inf(1)}

// Эпсилон по умолчанию для сравнения координат
const Epsilon = 1e-9

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Vec() r2.Point { return r2.Point(p) }

func (p Point) Add(q Point) Point { return Point(p.Vec().Add(q.Vec())) }

func (p Point) Sub(q Point) Point { return Point(p.Vec().Sub(q.Vec())) }

func (p Point) Mul(k float64) Point { return Point(p.Vec().Mul(k)) }

func (p Point) Dot(q Point) float64 { return p.Vec().Dot(q.Vec()) }

// Векторное произведение (z-компонента)
func (p Point) Cross(q Point) float64 { return p.Vec().Cross(q.Vec()) }

func (p Point) Norm() float64 { return p.Vec().Norm() }

// Перпендикуляр, повернутый против часовой стрелки
func (p Point) Ortho() Point { return Point(p.Vec().Ortho()) }

func (p Point) DistanceTo(q Point) float64 {
	return p.Sub(q).Norm()
}

func (p Point) SquaredDistanceTo(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

func (p Point) Midpoint(q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

// Полярный угол вектора p->q
func (p Point) AngleTo(q Point) float64 {
	return math.Atan2(q.Y-p.Y, q.X-p.X)
}

// Покоординатное сравнение с допуском
func (p Point) Equal(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) < eps && math.Abs(p.Y-q.Y) < eps
}

func (p Point) IsFinite() bool {
	return !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0) && !math.IsNaN(p.X) && !math.IsNaN(p.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
