package delaunay

import (
	"embed"
	"strconv"
	"testing"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/require"
)

// Фикстуры - svg-файлы в testdata/, точка задается элементом <circle cx cy>.
// Загружаются по имени без расширения.

//go:embed testdata
var fixtures embed.FS

func loadFixture(t testing.TB, name string) []geom.Point {
	t.Helper()
	f, err := fixtures.Open("testdata/" + name + ".svg")
	require.NoError(t, err, "fixture %q", name)
	defer f.Close()

	root, err := svgparser.Parse(f, true)
	require.NoError(t, err, "parse fixture %q", name)

	circles := root.FindAll("circle")
	require.NotEmpty(t, circles, "no circles in fixture %q", name)

	points := make([]geom.Point, 0, len(circles))
	for _, c := range circles {
		x, err := strconv.ParseFloat(c.Attributes["cx"], 64)
		require.NoError(t, err, "invalid cx in %q", name)
		y, err := strconv.ParseFloat(c.Attributes["cy"], 64)
		require.NoError(t, err, "invalid cy in %q", name)
		points = append(points, geom.Pt(x, y))
	}
	return points
}
