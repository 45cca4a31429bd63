package geom

import "github.com/golang/geo/r2"

// Ограничивающий прямоугольник. Yt - верхняя (меньшая) граница по Y, Yb - нижняя
type BoundingBox struct {
	Xl, Xr, Yt, Yb float64
}

// Create new Bounding Box
func NewBoundingBox(xl, xr, yt, yb float64) BoundingBox {
	return BoundingBox{xl, xr, yt, yb}
}

// Минимальный прямоугольник, содержащий все точки
func BoundingBoxOf(points []Point) BoundingBox {
	if len(points) == 0 {
		return BoundingBox{}
	}
	vecs := make([]r2.Point, len(points))
	for i, p := range points {
		vecs[i] = p.Vec()
	}
	return fromRect(r2.RectFromPoints(vecs...))
}

func fromRect(r r2.Rect) BoundingBox {
	return BoundingBox{Xl: r.X.Lo, Xr: r.X.Hi, Yt: r.Y.Lo, Yb: r.Y.Hi}
}

func (b BoundingBox) Rect() r2.Rect {
	return r2.RectFromPoints(r2.Point{X: b.Xl, Y: b.Yt}, r2.Point{X: b.Xr, Y: b.Yb})
}

func (b BoundingBox) Width() float64  { return b.Xr - b.Xl }
func (b BoundingBox) Height() float64 { return b.Yb - b.Yt }

func (b BoundingBox) Center() Point {
	return Point(b.Rect().Center())
}

func (b BoundingBox) Contains(p Point) bool {
	return b.Rect().ContainsPoint(p.Vec())
}

// Прямоугольник, расширенный на margin с каждой стороны
func (b BoundingBox) Expanded(margin float64) BoundingBox {
	return fromRect(b.Rect().ExpandedByMargin(margin))
}

// Углы против часовой стрелки, начиная с (Xl, Yt)
func (b BoundingBox) Corners() []Point {
	return []Point{
		{b.Xl, b.Yt},
		{b.Xr, b.Yt},
		{b.Xr, b.Yb},
		{b.Xl, b.Yb},
	}
}

// ClipSegment обрезает отрезок ab по прямоугольнику (Лианг-Барски).
// false - отрезок целиком снаружи.
func ClipSegment(a, b Point, bbox BoundingBox) (Point, Point, bool) {
	ax := a.X
	ay := a.Y
	t0 := float64(0)
	t1 := float64(1)
	dx := b.X - ax
	dy := b.Y - ay

	// четыре стороны: (p, q) для левой, правой, верхней и нижней
	sides := [4][2]float64{
		{-dx, ax - bbox.Xl},
		{dx, bbox.Xr - ax},
		{-dy, ay - bbox.Yt},
		{dy, bbox.Yb - ay},
	}
	for _, side := range sides {
		p, q := side[0], side[1]
		if p == 0 {
			// параллельно стороне
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, b, false
			} else if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return a, b, false
			} else if r < t1 {
				t1 = r
			}
		}
	}

	va, vb := a, b
	if t0 > 0 {
		va = Point{ax + t0*dx, ay + t0*dy}
	}
	if t1 < 1 {
		vb = Point{ax + t1*dx, ay + t1*dy}
	}
	return va, vb, true
}
