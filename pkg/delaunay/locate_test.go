package delaunay

import (
	"math/rand"
	"testing"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindTriangle(t *testing.T) {
	points := loadFixture(t, "seven")
	tri, err := Triangulate(points)
	require.NoError(t, err)

	var centroid geom.Point
	for _, p := range points {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Mul(1 / float64(len(points)))

	found, ok := tri.FindTriangle(centroid)
	require.True(t, ok)
	assert.True(t, found.Contains(centroid))

	_, ok = tri.FindTriangle(geom.Pt(100, 100))
	assert.False(t, ok)
	_, ok = tri.FindTriangle(geom.Pt(-0.001, 1))
	assert.False(t, ok)

	// вершины и стороны оболочки считаются внутри
	for _, p := range points {
		found, ok := tri.FindTriangle(p)
		require.True(t, ok, "vertex %v", p)
		assert.True(t, found.Contains(p))
	}
	found, ok = tri.FindTriangle(geom.Pt(2, 0))
	require.True(t, ok)
	assert.True(t, found.Contains(geom.Pt(2, 0)))
}

func TestFindTriangle_MatchesScan(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	points := randomPoints(rng, 300, 10)
	tri, err := Triangulate(points)
	require.NoError(t, err)
	triangles := tri.Triangles()

	for i := 0; i < 500; i++ {
		p := geom.Pt(rng.Float64()*12-1, rng.Float64()*12-1)

		var want bool
		for _, tr := range triangles {
			if tr.Contains(p) {
				want = true
				break
			}
		}

		found, ok := tri.FindTriangle(p)
		require.Equal(t, want, ok, "query %v", p)
		if ok {
			assert.True(t, found.Contains(p), "query %v in %v", p, found)
		}
	}
}

func TestMeshWalk_FallsBackToScan(t *testing.T) {
	tri, err := Triangulate(loadFixture(t, "scatter"))
	require.NoError(t, err)
	m := tri.mesh

	start := m.anyTriangle(true)
	require.NotEqual(t, noTriangle, start)

	// цель - центр самого дальнего от старта треугольника, до него больше одного шага
	from := tri.triangle(start).Centroid()
	triangles := tri.Triangles()
	target := triangles[0].Centroid()
	for _, tr := range triangles[1:] {
		if c := tr.Centroid(); c.DistanceTo(from) > target.DistanceTo(from) {
			target = c
		}
	}
	require.False(t, m.contains(start, target))
	for k := 0; k < 3; k++ {
		if n := m.neighbor(start, k); n != noTriangle {
			require.False(t, m.contains(n, target), "neighbor %d", n)
		}
	}

	want, res := m.scan(target, true)
	require.Equal(t, located, res)

	// за один шаг обход не дойдет, результат дает перебор
	m.maxSteps = 1
	got, res := m.walk(target, start, true)
	require.Equal(t, located, res)
	assert.Equal(t, want, got)
	assert.True(t, m.contains(got, target))

	m.maxSteps = 0
	got, res = m.walk(target, start, true)
	require.Equal(t, located, res)
	assert.Equal(t, want, got)
}
