package render

import (
	"image"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/voronoi"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

const padding = 20

// Палитра картинки
var (
	backgroundColor = colornames.Black
	cellColor       = colornames.Darkslategray
	delaunayColor   = colornames.Gray
	voronoiColor    = colornames.Orange
	siteColor       = colornames.Lightgreen
)

// Image рисует триангуляцию и, если d не nil, ячейки и ребра Вороного внутри bbox.
// scale - пикселей на единицу координат. Ось Y направлена вверх.
func Image(tri *delaunay.Triangulation, d *voronoi.Diagram, bbox geom.BoundingBox, scale float64) image.Image {
	width := int(scale*bbox.Width()) + padding*2
	height := int(scale*bbox.Height()) + padding*2
	c := gg.NewContext(width, height)
	c.SetColor(backgroundColor)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Переворачиваем, чтобы начало координат было внизу слева
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(padding, padding)
	c.Scale(scale, scale)
	c.Translate(-bbox.Xl, -bbox.Yt)

	if d != nil {
		for _, poly := range d.BoundedCells(bbox) {
			drawPolygon(c, poly)
		}
		c.SetColor(cellColor)
		c.Fill()
	}

	c.SetLineWidth(1)
	for _, e := range tri.Edges() {
		c.DrawLine(e.P.X, e.P.Y, e.Q.X, e.Q.Y)
	}
	c.SetColor(delaunayColor)
	c.Stroke()

	if d != nil {
		c.SetLineWidth(2)
		for _, e := range d.ClippedEdges(bbox) {
			c.DrawLine(e.Va.X, e.Va.Y, e.Vb.X, e.Vb.Y)
		}
		c.SetColor(voronoiColor)
		c.Stroke()
	}

	// радиус в пикселях, а не в единицах координат
	r := 3 / scale
	for _, p := range tri.Points() {
		c.DrawCircle(p.X, p.Y, r)
	}
	c.SetColor(siteColor)
	c.Fill()

	return c.Image()
}

func drawPolygon(c *gg.Context, poly []geom.Point) {
	if len(poly) < 3 {
		return
	}
	c.MoveTo(poly[0].X, poly[0].Y)
	for _, p := range poly[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}

// Fit уменьшает картинку, чтобы она помещалась в квадрат size x size. Меньшие не трогает
func Fit(img image.Image, size int) image.Image {
	if size <= 0 {
		return img
	}
	return imaging.Fit(img, size, size, imaging.Lanczos)
}

// Save сохраняет картинку, формат по расширению (png, jpg, gif, tif, bmp)
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return errors.Wrapf(err, "save image %q", path)
	}
	return nil
}
