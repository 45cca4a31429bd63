// Package delaunay строит триангуляцию Делоне инкрементально (Боуэр-Ватсон):
// каждая новая точка вырезает полость из треугольников, чьи описанные окружности
// ее содержат, и полость заново триангулируется веером из этой точки.
//
// Triangulation не потокобезопасна для записи: AddPoint нельзя выполнять параллельно
// с другими вызовами. Методы чтения можно вызывать параллельно друг с другом.
package delaunay

import (
	"sort"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Основная структура. Нулевое значение - пустая триангуляция
type Triangulation struct {
	mesh   *mesh
	bounds geom.BoundingBox
	opts   options
}

// New создает триангуляцию с супертреугольником, строго содержащим bounds.
// Точки вне супертреугольника AddPoint не примет.
func New(bounds geom.BoundingBox, setters ...Option) (*Triangulation, error) {
	opts, err := newOptions(setters)
	if err != nil {
		return nil, err
	}
	if bounds.Xl > bounds.Xr || bounds.Yt > bounds.Yb {
		return nil, errors.Errorf("delaunay: invalid bounds %+v", bounds)
	}

	super := superTriangle(bounds, opts.superScale)
	opts.logger.Debug("[d] Супертреугольник", zap.Any("super", super), zap.Any("bounds", bounds))

	return &Triangulation{
		mesh:   newMesh(super),
		bounds: bounds,
		opts:   opts,
	}, nil
}

// Triangulate строит триангуляцию набора точек. Нужно минимум 3 точки не на одной прямой.
// Совпадающие точки (с точностью до эпсилон) пропускаются.
func Triangulate(points []geom.Point, setters ...Option) (*Triangulation, error) {
	if len(points) < 3 {
		return nil, errors.Wrapf(ErrInsufficientPoints, "got %d points, need at least 3", len(points))
	}
	opts, err := newOptions(setters)
	if err != nil {
		return nil, err
	}
	// проверяем до того, как трогать сетку
	if allCollinear(points, opts.epsilon) {
		return nil, errors.Wrap(ErrDegenerateConfiguration, "all points are collinear")
	}

	t, err := New(geom.BoundingBoxOf(points), setters...)
	if err != nil {
		return nil, err
	}

	t.opts.logger.Info("[d] Триангуляция запущена", zap.Int("points", len(points)))
	for i, p := range points {
		if err := t.AddPoint(p); err != nil {
			return nil, errors.Wrapf(err, "insert point %d %v", i, p)
		}
	}

	n := len(t.Triangles())
	if n == 0 {
		return nil, errors.Wrap(ErrDegenerateConfiguration, "no triangles survived")
	}
	t.opts.logger.Info("[d] Триангуляция завершена", zap.Int("triangles", n))
	return t, nil
}

func allCollinear(points []geom.Point, eps float64) bool {
	p0 := points[0]
	i1 := -1
	for i, p := range points {
		if !p.Equal(p0, eps) {
			i1 = i
			break
		}
	}
	if i1 < 0 {
		return true
	}
	p1 := points[i1]
	for _, p := range points {
		if geom.Orientation(p0, p1, p) != geom.Collinear {
			return false
		}
	}
	return true
}

// План вставки точки: вычисляется без изменения сетки
type cavity struct {
	bad      []int
	boundary [][2]int
	created  [][3]int
}

// AddPoint вставляет точку. Сначала только читаем сетку (поиск, полость, новые
// треугольники), потом одним шагом применяем изменения, который не может упасть.
// При ошибке сетка остается прежней. Дубликаты пропускаются.
func (t *Triangulation) AddPoint(p geom.Point) error {
	if t == nil || t.mesh == nil {
		return errors.Wrap(ErrEmptyTriangulation, "triangulation is not seeded")
	}
	m := t.mesh
	log := t.opts.logger

	if !p.IsFinite() || !t.insideSuper(p) {
		return errors.Wrapf(ErrOutOfBounds, "point %v", p)
	}

	start, res := m.walk(p, m.anyTriangle(false), false)
	if res != located {
		return errors.Wrapf(ErrOutOfBounds, "point %v", p)
	}

	for _, v := range m.tris[start].v {
		if !isSuper(v) && m.points[v].Equal(p, t.opts.epsilon) {
			log.Warn("[d] Найден дубликат, пропускаем", zap.Stringer("point", p), zap.Int("vertex", v-superCount))
			return nil
		}
	}

	cav, err := t.discover(p, start)
	if err != nil {
		log.Error("[d] Точка отклонена", zap.Stringer("point", p), zap.Error(err))
		return err
	}

	t.apply(p, cav)
	log.Debug("[d] Точка вставлена",
		zap.Stringer("point", p),
		zap.Int("bad", len(cav.bad)),
		zap.Int("created", len(cav.created)),
		zap.Int("alive", m.alive),
	)
	return nil
}

func (t *Triangulation) insideSuper(p geom.Point) bool {
	s := t.mesh.points
	for i := 0; i < superCount; i++ {
		if geom.ExactOrientation(s[i], s[(i+1)%superCount], p) != geom.CounterClockwise {
			return false
		}
	}
	return true
}

// discover находит "плохие" треугольники (описанная окружность строго содержит p),
// границу полости и новые треугольники. Сетка не меняется.
func (t *Triangulation) discover(p geom.Point, start int) (cavity, error) {
	m := t.mesh
	pi := len(m.points)

	// при точных предикатах плохие треугольники связны, поэтому обходим их от
	// содержащего p треугольника через ребра; это то же самое, что полный перебор.
	// Стартовый берем всегда.
	checked := map[int]bool{start: true}
	bad := []int{start}
	for i := 0; i < len(bad); i++ {
		for k := 0; k < 3; k++ {
			n := m.neighbor(bad[i], k)
			if n == noTriangle {
				continue
			}
			if _, seen := checked[n]; seen {
				continue
			}
			in := m.circumcircleContains(n, p)
			checked[n] = in
			if in {
				bad = append(bad, n)
			}
		}
	}

	// граница - ребра плохих треугольников, по другую сторону которых не плохой
	// треугольник (или ничего). Направление ребер сохраняет обход против часовой.
	var cav cavity
	cav.bad = bad
	for _, b := range bad {
		v := m.tris[b].v
		for k := 0; k < 3; k++ {
			n := m.neighbor(b, k)
			if n != noTriangle && checked[n] {
				continue
			}
			cav.boundary = append(cav.boundary, [2]int{v[k], v[(k+1)%3]})
		}
	}

	// полость - топологический диск: граничных ребер на два больше, чем треугольников
	if len(cav.boundary) != len(bad)+2 {
		return cavity{}, errors.Wrapf(ErrDegenerateConfiguration,
			"cavity of %d triangles has %d boundary edges at %v", len(bad), len(cav.boundary), p)
	}

	for _, e := range cav.boundary {
		a, b := e[0], e[1]
		if !isSuper(a) && !isSuper(b) {
			if geom.Orientation(m.points[a], m.points[b], p) != geom.CounterClockwise {
				return cavity{}, errors.Wrapf(ErrDegenerateConfiguration,
					"zero-area triangle %v %v %v", m.points[a], m.points[b], p)
			}
		}
		cav.created = append(cav.created, [3]int{a, b, pi})
	}
	return cav, nil
}

// apply - единственное место, где меняется сетка
func (t *Triangulation) apply(p geom.Point, cav cavity) {
	m := t.mesh
	m.points = append(m.points, p)
	for _, b := range cav.bad {
		m.removeTri(b)
	}
	for _, v := range cav.created {
		m.addTri(v)
	}
}

func (t *Triangulation) triangle(i int) Triangle {
	m := t.mesh
	v := m.tris[i].v
	return Triangle{
		V: [3]int{v[0] - superCount, v[1] - superCount, v[2] - superCount},
		A: m.points[v[0]],
		B: m.points[v[1]],
		C: m.points[v[2]],
	}
}

func (t *Triangulation) empty() bool {
	return t == nil || t.mesh == nil
}

// Bounds - прямоугольник, по которому построен супертреугольник
func (t *Triangulation) Bounds() geom.BoundingBox {
	if t.empty() {
		return geom.BoundingBox{}
	}
	return t.bounds
}

// Points - все вставленные точки без дубликатов, в порядке вставки.
// Индексы Triangle.V и Edge.I/J указывают в этот срез.
func (t *Triangulation) Points() []geom.Point {
	if t.empty() {
		return nil
	}
	out := make([]geom.Point, len(t.mesh.points)-superCount)
	copy(out, t.mesh.points[superCount:])
	return out
}

// Треугольники без вершин супертреугольника
func (t *Triangulation) Triangles() []Triangle {
	if t.empty() {
		return nil
	}
	m := t.mesh
	out := make([]Triangle, 0, m.alive)
	for i := range m.tris {
		if m.tris[i].alive && m.isReal(i) {
			out = append(out, t.triangle(i))
		}
	}
	return out
}

// Индексы точек, входящих хотя бы в один треугольник, по возрастанию
func (t *Triangulation) VertexIndices() []int {
	if t.empty() {
		return nil
	}
	m := t.mesh
	seen := make(map[int]struct{})
	for i := range m.tris {
		if !m.tris[i].alive || !m.isReal(i) {
			continue
		}
		for _, v := range m.tris[i].v {
			seen[v-superCount] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// Точки, входящие хотя бы в один треугольник
func (t *Triangulation) Vertices() []geom.Point {
	idx := t.VertexIndices()
	if idx == nil {
		return nil
	}
	out := make([]geom.Point, len(idx))
	for i, v := range idx {
		out[i] = t.mesh.points[v+superCount]
	}
	return out
}

// Уникальные неориентированные ребра треугольников, отсортированы по (I, J)
func (t *Triangulation) Edges() []Edge {
	if t.empty() {
		return nil
	}
	m := t.mesh
	out := make([]Edge, 0, len(m.edges))
	for k, e := range m.edges {
		if isSuper(k.lo) || isSuper(k.hi) {
			continue
		}
		if !t.realSide(e[0]) && !t.realSide(e[1]) {
			continue
		}
		out = append(out, t.edge(k.lo, k.hi))
	}
	sortEdges(out)
	return out
}

// Ребра выпуклой оболочки: ровно один смежный треугольник без супервершин.
// Ориентированы так, что треугольник слева (обход против часовой).
func (t *Triangulation) HullEdges() []Edge {
	if t.empty() {
		return nil
	}
	m := t.mesh
	var out []Edge
	for k, e := range m.edges {
		if isSuper(k.lo) || isSuper(k.hi) {
			continue
		}
		inner := e[0]
		if t.realSide(e[0]) == t.realSide(e[1]) {
			continue
		}
		if !t.realSide(inner) {
			inner = e[1]
		}
		// порядок берем из обхода внутреннего треугольника
		a, b := k.lo, k.hi
		v := m.tris[inner].v
		for i := 0; i < 3; i++ {
			if v[i] == b && v[(i+1)%3] == a {
				a, b = b, a
				break
			}
		}
		out = append(out, t.edge(a, b))
	}
	sortEdges(out)
	return out
}

func (t *Triangulation) realSide(tr int) bool {
	return tr != noTriangle && t.mesh.tris[tr].alive && t.mesh.isReal(tr)
}

func (t *Triangulation) edge(a, b int) Edge {
	return Edge{I: a - superCount, J: b - superCount, P: t.mesh.points[a], Q: t.mesh.points[b]}
}

func sortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].I != edges[j].I {
			return edges[i].I < edges[j].I
		}
		return edges[i].J < edges[j].J
	})
}

// FindTriangle ищет треугольник, содержащий p (граница включается), обходом по
// видимости. Точка вне выпуклой оболочки - false.
func (t *Triangulation) FindTriangle(p geom.Point) (Triangle, bool) {
	if t.empty() || !p.IsFinite() {
		return Triangle{}, false
	}
	m := t.mesh
	start := m.anyTriangle(true)
	if start == noTriangle {
		return Triangle{}, false
	}
	found, res := m.walk(p, start, true)
	if res != located {
		return Triangle{}, false
	}
	return t.triangle(found), true
}
