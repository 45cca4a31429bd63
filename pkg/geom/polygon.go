package geom

import (
	"math"
	"sort"
)

// ConvexHull возвращает выпуклую оболочку против часовой стрелки (монотонная цепь Эндрю).
// Коллинеарные точки на сторонах не входят в оболочку.
func ConvexHull(points []Point) []Point {
	pts := make([]Point, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
	if len(pts) < 3 {
		return pts
	}

	hull := make([]Point, 0, 2*len(pts))
	// нижняя цепь
	for _, p := range pts {
		for len(hull) >= 2 && Orientation(hull[len(hull)-2], hull[len(hull)-1], p) != CounterClockwise {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	// верхняя цепь
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && Orientation(hull[len(hull)-2], hull[len(hull)-1], p) != CounterClockwise {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}

// Ориентированная площадь многоугольника (формула шнурков), > 0 для обхода против часовой.
// Считаем относительно первой вершины, иначе на больших координатах теряется точность.
func PolygonArea(poly []Point) float64 {
	if len(poly) < 3 {
		return 0
	}
	o := poly[0]
	var area float64
	for i := 1; i < len(poly)-1; i++ {
		area += poly[i].Sub(o).Cross(poly[i+1].Sub(o))
	}
	return area / 2
}

// ClipHalfPlane отсекает выпуклый многоугольник полуплоскостью слева от направленной
// прямой a->b (Сазерленд-Ходжмен). Вырожденный результат - nil.
func ClipHalfPlane(poly []Point, a, b Point) []Point {
	n := len(poly)
	if n == 0 {
		return nil
	}
	out := make([]Point, 0, n+1)
	for i := 0; i < n; i++ {
		curr := poly[i]
		next := poly[(i+1)%n]
		oc := Orient2D(a, b, curr)
		on := Orient2D(a, b, next)

		// вершина на прямой считается внутри, пересечение в ней не добавляем
		switch {
		case oc >= 0 && on >= 0:
			out = append(out, next)
		case oc > 0 && on < 0:
			if ix, ok := lineIntersection(curr, next, a, b); ok {
				out = append(out, ix)
			}
		case oc < 0 && on >= 0:
			if on > 0 {
				if ix, ok := lineIntersection(curr, next, a, b); ok {
					out = append(out, ix)
				}
			}
			out = append(out, next)
		}
	}
	if len(out) < 3 {
		return nil
	}
	return out
}

// Пересечение отрезка p1p2 с прямой p3p4. Концы отрезка лежат по разные стороны
// прямой, поэтому отвергаем только точно параллельные: абсолютный порог ломается
// на малых координатах.
func lineIntersection(p1, p2, p3, p4 Point) (Point, bool) {
	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)
	denom := d1.Cross(d2)
	if denom == 0 {
		return NoPoint, false
	}
	t := math.Max(0, math.Min(1, p3.Sub(p1).Cross(d2)/denom))
	ix := p1.Add(d1.Mul(t))
	if !ix.IsFinite() {
		return NoPoint, false
	}
	return ix, true
}
