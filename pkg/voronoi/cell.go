package voronoi

import (
	"math"
	"sort"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

// Ячейка диаграммы: область плоскости, ближайшая к сайту
type Cell struct {
	Site      geom.Point
	SiteIndex int
	// вершины (центры описанных окружностей) против часовой стрелки вокруг сайта.
	// Для открытой ячейки - конечная часть границы, от луча к лучу
	Vertices []geom.Point
	// индексы соседних сайтов, тоже против часовой
	Neighbors []int
	// сайт на выпуклой оболочке: ячейка неограничена
	Open bool
}

// Площадь закрытой ячейки. Для открытой +Inf
func (c *Cell) Area() float64 {
	if c.Open {
		return math.Inf(1)
	}
	return geom.PolygonArea(c.Vertices)
}

// Угол направления center->p, отсчитанный против часовой от from, в (0, 2π]
func relAngle(center, p geom.Point, from float64) float64 {
	a := math.Mod(center.AngleTo(p)-from, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a
}

// sortAround сортирует точки против часовой стрелки вокруг center, начиная сразу после
// направления from
func sortAround(points []geom.Point, center geom.Point, from float64) {
	sort.SliceStable(points, func(i, j int) bool {
		return relAngle(center, points[i], from) < relAngle(center, points[j], from)
	})
}

// Соседи по углу вокруг сайта
func sortNeighbors(neighbors []int, sites []geom.Point, site geom.Point, from float64) {
	sort.SliceStable(neighbors, func(i, j int) bool {
		return relAngle(site, sites[neighbors[i]], from) < relAngle(site, sites[neighbors[j]], from)
	})
}

// Склеивает соседние совпадающие вершины (у концикличных сайтов центры совпадают)
func dedupe(points []geom.Point, eps float64, closed bool) []geom.Point {
	out := points[:0]
	for _, p := range points {
		if len(out) > 0 && out[len(out)-1].Equal(p, eps) {
			continue
		}
		out = append(out, p)
	}
	if closed {
		for len(out) > 1 && out[len(out)-1].Equal(out[0], eps) {
			out = out[:len(out)-1]
		}
	}
	return out
}
