package delaunay

import (
	"math"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Validate проверяет инварианты триангуляции и возвращает все найденные нарушения:
//   - треугольники ориентированы против часовой и не вырождены;
//   - каждое ребро принадлежит не более чем двум треугольникам, и таблица ребер
//     согласована с треугольниками;
//   - ребра оболочки лежат на выпуклой оболочке;
//   - ни одна точка не лежит строго внутри описанной окружности треугольника;
//   - сумма площадей равна площади выпуклой оболочки.
//
// Проверка Делоне квадратичная, метод предназначен для отладки и тестов.
func (t *Triangulation) Validate() error {
	if t.empty() {
		return errors.WithStack(ErrEmptyTriangulation)
	}
	var err error
	m := t.mesh

	for k, e := range m.edges {
		for _, tr := range e {
			if tr == noTriangle {
				continue
			}
			if !m.tris[tr].alive {
				err = multierr.Append(err, errors.Errorf("edge %v references dead triangle %d", k, tr))
				continue
			}
			v := m.tris[tr].v
			if !(containsVertex(v, k.lo) && containsVertex(v, k.hi)) {
				err = multierr.Append(err, errors.Errorf("edge %v references triangle %d %v without it", k, tr, v))
			}
		}
	}

	triangles := t.Triangles()
	var area float64
	for i := range m.tris {
		if !m.tris[i].alive {
			continue
		}
		v := m.tris[i].v
		for j := 0; j < 3; j++ {
			k := keyOf(v[j], v[(j+1)%3])
			e := m.edges[k]
			if e[0] != i && e[1] != i {
				err = multierr.Append(err, errors.Errorf("triangle %d missing from edge %v", i, k))
			}
		}
		if !m.isReal(i) {
			continue
		}
		tr := t.triangle(i)
		if geom.Orientation(tr.A, tr.B, tr.C) != geom.CounterClockwise {
			err = multierr.Append(err, errors.Errorf("triangle %v is not counterclockwise", tr))
		}
		area += tr.Area()
	}

	for _, e := range t.HullEdges() {
		for _, p := range t.Vertices() {
			if geom.Orientation(e.P, e.Q, p) == geom.Clockwise {
				err = multierr.Append(err, errors.Errorf("hull edge %v-%v has vertex %v outside", e.P, e.Q, p))
				break
			}
		}
	}

	points := t.Points()
	for _, tr := range triangles {
		for i, p := range points {
			if tr.HasVertex(i) {
				continue
			}
			if geom.InCircumcircle(tr.A, tr.B, tr.C, p) {
				err = multierr.Append(err, errors.Errorf("point %d %v inside circumcircle of %v", i, p, tr))
			}
		}
	}

	if len(triangles) > 0 {
		hullArea := geom.PolygonArea(geom.ConvexHull(t.Vertices()))
		if math.Abs(hullArea-area) > 1e-9*math.Max(1, hullArea) {
			err = multierr.Append(err, errors.Errorf("triangle area %v differs from hull area %v", area, hullArea))
		}
	}

	return err
}

func containsVertex(v [3]int, x int) bool {
	return v[0] == x || v[1] == x || v[2] == x
}
