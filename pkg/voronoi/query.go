package voronoi

import "github.com/0x0FACED/go-delaunay/pkg/geom"

// FindNearestSite возвращает ближайший к p сайт. false - диаграмма пуста.
func (d *Diagram) FindNearestSite(p geom.Point) (geom.Point, bool) {
	c, ok := d.FindCell(p)
	if !ok {
		return geom.NoPoint, false
	}
	return c.Site, true
}

// FindCell ищет ячейку, содержащую p, спуском по графу Делоне: переходим к соседу,
// который строго ближе к p, пока такой есть. Для триангуляции Делоне локальный
// минимум совпадает с глобальным.
func (d *Diagram) FindCell(p geom.Point) (*Cell, bool) {
	if d == nil || len(d.cells) == 0 || !p.IsFinite() {
		return nil, false
	}

	cur := d.cells[0]
	best := cur.Site.SquaredDistanceTo(p)
	for {
		next := cur
		for _, n := range cur.Neighbors {
			c := d.bySite[n]
			if dist := c.Site.SquaredDistanceTo(p); dist < best {
				best = dist
				next = c
			}
		}
		if next == cur {
			return cur, true
		}
		cur = next
	}
}
