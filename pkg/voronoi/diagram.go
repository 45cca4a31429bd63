// Package voronoi строит диаграмму Вороного как двойственный граф триангуляции Делоне:
// вершины диаграммы - центры описанных окружностей треугольников, ребро диаграммы
// соединяет центры двух треугольников с общим ребром.
//
// Diagram - неизменяемый снимок, читать его можно из нескольких горутин.
package voronoi

import (
	"math"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Ребро диаграммы между ячейками Left и Right. Left лежит слева от Va->Vb
type Edge struct {
	Va, Vb      geom.Point
	Left, Right int
}

// Бесконечная часть границы открытой ячейки: луч из origin в направлении dir (единичный)
type ray struct {
	origin      geom.Point
	dir         geom.Point
	left, right int
}

// Основная структура
type Diagram struct {
	sites []geom.Point
	cells []*Cell
	// ячейка по индексу сайта, nil если сайт не вошел в триангуляцию
	bySite []*Cell
	edges  []Edge
	rays   []ray
}

// Сторона ребра Делоне: треугольники справа и слева от I->J (I < J)
type sides struct {
	right, left int
}

// FromDelaunay строит диаграмму по триангуляции. Триангуляция не запоминается,
// последующие вставки точек на диаграмму не влияют.
func FromDelaunay(t *delaunay.Triangulation, setters ...Option) (*Diagram, error) {
	opts, err := newOptions(setters)
	if err != nil {
		return nil, err
	}
	log := opts.logger

	triangles := t.Triangles()
	if len(triangles) == 0 {
		return nil, errors.Wrap(delaunay.ErrEmptyTriangulation, "voronoi: no triangles")
	}
	log.Info("[v] Построение диаграммы", zap.Int("triangles", len(triangles)))

	sites := t.Points()
	// центр каждого треугольника считаем один раз
	centers := make([]geom.Point, len(triangles))
	incident := make([][]int, len(sites))
	adjacent := make(map[[2]int]sides)
	for i, tr := range triangles {
		center, _, ok := geom.Circumcircle(tr.A, tr.B, tr.C)
		if !ok {
			return nil, errors.Wrapf(delaunay.ErrDegenerateConfiguration, "voronoi: no circumcenter for %v", tr)
		}
		centers[i] = center

		for k := 0; k < 3; k++ {
			a, b := tr.V[k], tr.V[(k+1)%3]
			incident[a] = append(incident[a], i)

			// треугольник против часовой, значит он слева от a->b
			key := orderedKey(a, b)
			s, ok := adjacent[key]
			if !ok {
				s = sides{right: -1, left: -1}
			}
			if a < b {
				s.left = i
			} else {
				s.right = i
			}
			adjacent[key] = s
		}
	}
	log.Debug("[v] Центры описанных окружностей найдены", zap.Int("centers", len(centers)))

	d := &Diagram{sites: sites, bySite: make([]*Cell, len(sites))}
	neighbors := make([][]int, len(sites))
	for _, e := range t.Edges() {
		s := adjacent[[2]int{e.I, e.J}]
		neighbors[e.I] = append(neighbors[e.I], e.J)
		neighbors[e.J] = append(neighbors[e.J], e.I)
		if s.left < 0 || s.right < 0 {
			continue
		}
		d.edges = append(d.edges, Edge{
			Va:    centers[s.right],
			Vb:    centers[s.left],
			Left:  e.I,
			Right: e.J,
		})
	}

	// ребро оболочки I->J (треугольник слева) дает луч наружу, вправо от ребра
	hull := t.HullEdges()
	// внешняя нормаль оболочки в каждой вершине, сумма нормалей смежных ребер
	outward := make(map[int]geom.Point, len(hull))
	for _, e := range hull {
		s := adjacent[orderedKey(e.I, e.J)]
		inner := s.left
		if inner < 0 {
			inner = s.right
		}
		v := e.Q.Sub(e.P)
		normal := geom.Pt(v.Y, -v.X).Mul(1 / v.Norm())
		d.rays = append(d.rays, ray{origin: centers[inner], dir: normal, left: e.J, right: e.I})
		outward[e.I] = outward[e.I].Add(normal)
		outward[e.J] = outward[e.J].Add(normal)
	}

	for i, site := range sites {
		if len(incident[i]) == 0 {
			// точка не вошла в триангуляцию, ячейки нет
			continue
		}
		cell := &Cell{Site: site, SiteIndex: i, Neighbors: neighbors[i]}

		from := -math.Pi
		if o, ok := outward[i]; ok {
			cell.Open = true
			from = math.Atan2(o.Y, o.X)
		}

		vertices := make([]geom.Point, len(incident[i]))
		for k, tr := range incident[i] {
			vertices[k] = centers[tr]
		}
		sortAround(vertices, site, from)
		cell.Vertices = dedupe(vertices, opts.epsilon, !cell.Open)
		sortNeighbors(cell.Neighbors, sites, site, from)

		d.cells = append(d.cells, cell)
		d.bySite[i] = cell
	}

	log.Info("[v] Диаграмма построена",
		zap.Int("cells", len(d.cells)),
		zap.Int("edges", len(d.edges)),
		zap.Int("rays", len(d.rays)),
	)
	return d, nil
}

func orderedKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// Сайты диаграммы, индексы совпадают с Triangulation.Points()
func (d *Diagram) Sites() []geom.Point {
	out := make([]geom.Point, len(d.sites))
	copy(out, d.sites)
	return out
}

// Ячейки в порядке индексов сайтов. Ячейки общие с диаграммой, менять их нельзя
func (d *Diagram) Cells() []*Cell {
	out := make([]*Cell, len(d.cells))
	copy(out, d.cells)
	return out
}

// Конечные ребра: по одному на каждое внутреннее ребро Делоне
func (d *Diagram) Edges() []Edge {
	out := make([]Edge, len(d.edges))
	copy(out, d.edges)
	return out
}

// Ячейка сайта по индексу
func (d *Diagram) Cell(site int) (*Cell, bool) {
	if site < 0 || site >= len(d.bySite) || d.bySite[site] == nil {
		return nil, false
	}
	return d.bySite[site], true
}
