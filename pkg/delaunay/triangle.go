package delaunay

import (
	"fmt"
	"math"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

// Треугольник триангуляции. V - индексы вершин в Triangulation.Points(),
// вершины всегда против часовой стрелки
type Triangle struct {
	V       [3]int
	A, B, C geom.Point
}

func (t Triangle) Vertices() (geom.Point, geom.Point, geom.Point) {
	return t.A, t.B, t.C
}

func (t Triangle) SignedArea() float64 {
	return geom.Orient2D(t.A, t.B, t.C) / 2
}

func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

// Центр описанной окружности, geom.NoPoint для вырожденного треугольника
func (t Triangle) Circumcenter() geom.Point {
	center, _, _ := geom.Circumcircle(t.A, t.B, t.C)
	return center
}

func (t Triangle) Circumradius() float64 {
	_, radius, _ := geom.Circumcircle(t.A, t.B, t.C)
	return radius
}

func (t Triangle) Centroid() geom.Point {
	return geom.Point{
		X: (t.A.X + t.B.X + t.C.X) / 3,
		Y: (t.A.Y + t.B.Y + t.C.Y) / 3,
	}
}

// Contains включает границу треугольника
func (t Triangle) Contains(p geom.Point) bool {
	return geom.Orientation(t.A, t.B, p) != geom.Clockwise &&
		geom.Orientation(t.B, t.C, p) != geom.Clockwise &&
		geom.Orientation(t.C, t.A, p) != geom.Clockwise
}

func (t Triangle) HasVertex(i int) bool {
	return t.V[0] == i || t.V[1] == i || t.V[2] == i
}

func (t Triangle) String() string {
	return fmt.Sprintf("[%v %v %v]", t.A, t.B, t.C)
}

// Неориентированное ребро, I < J
type Edge struct {
	I, J int
	P, Q geom.Point
}

func (e Edge) Length() float64 {
	return e.P.DistanceTo(e.Q)
}
