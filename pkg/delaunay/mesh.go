package delaunay

import (
	"math"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

// Вершины 0..2 в mesh.points - синтетический супертреугольник
const superCount = 3

const noTriangle = -1

type tri struct {
	// вершины против часовой стрелки
	v     [3]int
	alive bool
}

// Ключ неориентированного ребра
type edgeKey struct {
	lo, hi int
}

func keyOf(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// Сетка хранится в плоских массивах и адресуется индексами: удаленный треугольник
// только помечается мертвым и попадает в список свободных слотов
type mesh struct {
	points []geom.Point
	tris   []tri
	free   []int
	// ребро -> до двух смежных треугольников (noTriangle если слота нет)
	edges map[edgeKey][2]int
	// количество живых треугольников
	alive int
	// последний созданный треугольник, с него начинается поиск
	last int
	// предел шагов обхода; 0 - по количеству живых треугольников
	maxSteps int
}

func newMesh(super [3]geom.Point) *mesh {
	m := &mesh{
		points: make([]geom.Point, 0, 64),
		edges:  make(map[edgeKey][2]int),
		last:   noTriangle,
	}
	m.points = append(m.points, super[:]...)
	m.addTri([3]int{0, 1, 2})
	return m
}

func isSuper(v int) bool {
	return v < superCount
}

// Треугольник без вершин супертреугольника
func (m *mesh) isReal(t int) bool {
	v := m.tris[t].v
	return !isSuper(v[0]) && !isSuper(v[1]) && !isSuper(v[2])
}

func (m *mesh) addTri(v [3]int) int {
	var t int
	if n := len(m.free); n > 0 {
		t = m.free[n-1]
		m.free = m.free[:n-1]
		m.tris[t] = tri{v: v, alive: true}
	} else {
		t = len(m.tris)
		m.tris = append(m.tris, tri{v: v, alive: true})
	}
	for i := 0; i < 3; i++ {
		m.link(keyOf(v[i], v[(i+1)%3]), t)
	}
	m.alive++
	m.last = t
	return t
}

func (m *mesh) removeTri(t int) {
	v := m.tris[t].v
	for i := 0; i < 3; i++ {
		m.unlink(keyOf(v[i], v[(i+1)%3]), t)
	}
	m.tris[t].alive = false
	m.free = append(m.free, t)
	m.alive--
	if m.last == t {
		m.last = noTriangle
	}
}

func (m *mesh) link(k edgeKey, t int) {
	e, ok := m.edges[k]
	if !ok {
		e = [2]int{noTriangle, noTriangle}
	}
	if e[0] == noTriangle {
		e[0] = t
	} else {
		e[1] = t
	}
	m.edges[k] = e
}

func (m *mesh) unlink(k edgeKey, t int) {
	e := m.edges[k]
	if e[0] == t {
		e[0] = e[1]
	}
	e[1] = noTriangle
	if e[0] == noTriangle {
		delete(m.edges, k)
		return
	}
	m.edges[k] = e
}

// Треугольник по другую сторону ребра i (v[i], v[i+1]) треугольника t
func (m *mesh) neighbor(t, i int) int {
	v := m.tris[t].v
	e, ok := m.edges[keyOf(v[i], v[(i+1)%3])]
	if !ok {
		return noTriangle
	}
	if e[0] == t {
		return e[1]
	}
	return e[0]
}

// circumcircleContains - InCircumcircle с символьной обработкой вершин супертреугольника:
// они считаются бесконечно удаленными, и описанная окружность вырождается в полуплоскость.
// Поэтому выживающие треугольники не зависят от размера супертреугольника.
func (m *mesh) circumcircleContains(t int, p geom.Point) bool {
	v := m.tris[t].v
	supers := 0
	for _, vi := range v {
		if isSuper(vi) {
			supers++
		}
	}

	switch supers {
	case 0:
		return geom.InCircumcircle(m.points[v[0]], m.points[v[1]], m.points[v[2]], p)
	case 1:
		// (a, b, s) против часовой: полуплоскость слева от a->b
		// плюс внутренность отрезка ab (хорда окружности)
		i := superIndex(v)
		a, b := m.points[v[(i+1)%3]], m.points[v[(i+2)%3]]
		switch geom.ExactOrientation(a, b, p) {
		case geom.CounterClockwise:
			return true
		case geom.Collinear:
			return strictlyBetween(a, b, p)
		}
		return false
	case 2:
		// (a, s1, s2) против часовой: полуплоскость, ограниченная прямой через a
		// параллельно s1s2, со стороны s1 и s2. Касательная прямая сама не входит.
		i := realIndex(v)
		a := m.points[v[i]]
		s1, s2 := m.points[v[(i+1)%3]], m.points[v[(i+2)%3]]
		return geom.CrossSign(s1, s2, a, p) < 0
	default:
		return true
	}
}

func superIndex(v [3]int) int {
	for i, vi := range v {
		if isSuper(vi) {
			return i
		}
	}
	return -1
}

func realIndex(v [3]int) int {
	for i, vi := range v {
		if !isSuper(vi) {
			return i
		}
	}
	return -1
}

// p на прямой ab; лежит ли строго внутри отрезка
func strictlyBetween(a, b, p geom.Point) bool {
	d := b.Sub(a)
	t := p.Sub(a).Dot(d)
	return t > 0 && t < d.Dot(d)
}

// Содержит ли треугольник t точку p (граница включается)
func (m *mesh) contains(t int, p geom.Point) bool {
	v := m.tris[t].v
	for i := 0; i < 3; i++ {
		if geom.ExactOrientation(m.points[v[i]], m.points[v[(i+1)%3]], p) == geom.Clockwise {
			return false
		}
	}
	return true
}

// Результат поиска треугольника
type locateResult int

const (
	located locateResult = iota
	// обход вышел за выпуклую оболочку
	outsideHull
)

// walk - поиск треугольника, содержащего p, по видимости: пока p справа от какого-то
// ребра, переходим в соседний треугольник через это ребро. Если realOnly, переход
// в треугольник с вершиной супертреугольника означает выход за оболочку.
// Если шагов слишком много, ищем полным перебором.
func (m *mesh) walk(p geom.Point, start int, realOnly bool) (int, locateResult) {
	t := start
	maxSteps := m.maxSteps
	if maxSteps <= 0 {
		maxSteps = 4*m.alive + 16
	}

	for step := 0; step < maxSteps; step++ {
		v := m.tris[t].v
		next := noTriangle
		for k := 0; k < 3; k++ {
			// начинаем с разных ребер, чтобы не зациклиться
			i := (k + step) % 3
			a, b := m.points[v[i]], m.points[v[(i+1)%3]]
			if geom.ExactOrientation(a, b, p) == geom.Clockwise {
				next = m.neighbor(t, i)
				if next == noTriangle || (realOnly && !m.isReal(next)) {
					return noTriangle, outsideHull
				}
				break
			}
		}
		if next == noTriangle {
			return t, located
		}
		t = next
	}

	return m.scan(p, realOnly)
}

// Полный перебор живых треугольников
func (m *mesh) scan(p geom.Point, realOnly bool) (int, locateResult) {
	for t := range m.tris {
		if !m.tris[t].alive || (realOnly && !m.isReal(t)) {
			continue
		}
		if m.contains(t, p) {
			return t, located
		}
	}
	return noTriangle, outsideHull
}

// Любой живой треугольник для старта обхода
func (m *mesh) anyTriangle(realOnly bool) int {
	if m.last != noTriangle && m.tris[m.last].alive && (!realOnly || m.isReal(m.last)) {
		return m.last
	}
	for t := range m.tris {
		if m.tris[t].alive && (!realOnly || m.isReal(t)) {
			return t
		}
	}
	return noTriangle
}

// Вершины супертреугольника против часовой стрелки вокруг bbox. Радиус вписанной
// окружности равен scale*d/2, поэтому при scale >= 2 bbox строго внутри.
func superTriangle(bbox geom.BoundingBox, scale float64) [3]geom.Point {
	c := bbox.Center()
	d := math.Max(bbox.Width(), bbox.Height())
	if d <= 0 || math.IsNaN(d) {
		d = 1
	}
	r := scale * d
	return [3]geom.Point{
		{X: c.X - r*math.Sqrt(3)/2, Y: c.Y - r/2},
		{X: c.X + r*math.Sqrt(3)/2, Y: c.Y - r/2},
		{X: c.X, Y: c.Y + r},
	}
}
