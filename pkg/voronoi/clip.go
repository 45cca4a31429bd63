package voronoi

import "github.com/0x0FACED/go-delaunay/pkg/geom"

// BoundedCell - ячейка c, обрезанная прямоугольником bbox, вершины против часовой.
// Прямоугольник последовательно режется серединными перпендикулярами ко всем соседям,
// поэтому результат точный и для открытых ячеек. nil - ячейка не пересекает bbox.
func (d *Diagram) BoundedCell(c *Cell, bbox geom.BoundingBox) []geom.Point {
	poly := bbox.Corners()
	for _, n := range c.Neighbors {
		other := d.sites[n]
		mid := c.Site.Midpoint(other)
		// сайт слева от перпендикуляра
		dir := other.Sub(c.Site).Ortho()
		poly = geom.ClipHalfPlane(poly, mid, mid.Add(dir))
		if poly == nil {
			return nil
		}
	}
	return poly
}

// Все ячейки, обрезанные bbox, в порядке Cells()
func (d *Diagram) BoundedCells(bbox geom.BoundingBox) [][]geom.Point {
	out := make([][]geom.Point, len(d.cells))
	for i, c := range d.cells {
		out[i] = d.BoundedCell(c, bbox)
	}
	return out
}

// ClippedEdges обрезает ребра по прямоугольнику (Лианг-Барски). Лучи открытых ячеек
// доводятся до границы bbox. Ребра вне прямоугольника и вырожденные ребра
// (центры концикличных треугольников совпали) пропускаются.
func (d *Diagram) ClippedEdges(bbox geom.BoundingBox) []Edge {
	out := make([]Edge, 0, len(d.edges)+len(d.rays))
	diag := bbox.Width() + bbox.Height()
	// порог вырожденности относительно размера bbox
	tiny := geom.Epsilon * diag
	for _, e := range d.edges {
		va, vb, ok := geom.ClipSegment(e.Va, e.Vb, bbox)
		if !ok || va.Equal(vb, tiny) {
			continue
		}
		out = append(out, Edge{Va: va, Vb: vb, Left: e.Left, Right: e.Right})
	}

	for _, r := range d.rays {
		// дальний конец гарантированно за пределами bbox
		reach := diag + r.origin.DistanceTo(bbox.Center())
		va, vb, ok := geom.ClipSegment(r.origin, r.origin.Add(r.dir.Mul(reach)), bbox)
		if !ok || va.Equal(vb, tiny) {
			continue
		}
		out = append(out, Edge{Va: va, Vb: vb, Left: r.left, Right: r.right})
	}
	return out
}
