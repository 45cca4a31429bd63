package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrientation(t *testing.T) {
	p, q := Pt(0, 0), Pt(1, 0)
	assert.Equal(t, CounterClockwise, Orientation(p, q, Pt(0.5, 1)))
	assert.Equal(t, Clockwise, Orientation(p, q, Pt(0.5, -1)))
	assert.Equal(t, Collinear, Orientation(p, q, Pt(2, 0)))
	assert.Equal(t, Collinear, Orientation(Pt(0, 0), Pt(1, 1), Pt(3, 3)))
}

func TestOrientation_AbsorbsRoundingNoise(t *testing.T) {
	// 0.1 и 0.3 непредставимы точно, но точки лежат на одной прямой
	a := Pt(0.1, 0.1)
	b := Pt(0.2, 0.2)
	c := Pt(0.3, 0.3)
	assert.Equal(t, Collinear, Orientation(a, b, c))
	assert.Equal(t, Collinear, Orientation(c, a, b))
}

func TestOrientation_Antisymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		a := Pt(rng.Float64(), rng.Float64())
		b := Pt(rng.Float64(), rng.Float64())
		c := Pt(rng.Float64(), rng.Float64())
		assert.Equal(t, Orientation(a, b, c), -Orientation(b, a, c))
		assert.Equal(t, Orientation(a, b, c), Orientation(b, c, a))
	}
}

func TestExactOrientation(t *testing.T) {
	p, q := Pt(0, 0), Pt(1, 1)
	// r на одну единицу младшего разряда выше прямой y = x
	r := Pt(3, math.Nextafter(3, 4))
	assert.Equal(t, Collinear, Orientation(p, q, r))
	assert.Equal(t, CounterClockwise, ExactOrientation(p, q, r))
	assert.Equal(t, Clockwise, ExactOrientation(q, p, r))
	assert.Equal(t, Collinear, ExactOrientation(p, q, Pt(3, 3)))
	assert.Equal(t, CounterClockwise, ExactOrientation(p, Pt(1, 0), Pt(0.5, 1)))
}

func TestCrossSign(t *testing.T) {
	o := Pt(0, 0)
	assert.Equal(t, 1, CrossSign(o, Pt(1, 0), o, Pt(0, 1)))
	assert.Equal(t, -1, CrossSign(o, Pt(0, 1), o, Pt(1, 0)))
	assert.Equal(t, 0, CrossSign(Pt(1e300, 0), Pt(1e300, 1), o, Pt(0, 2)))
}

func regularPolygon(n int) []Point {
	points := make([]Point, n)
	for k := range points {
		a := 2 * math.Pi * float64(k) / float64(n)
		points[k] = Pt(math.Cos(a), math.Sin(a))
	}
	return points
}

func TestInCircumcircle_RegularPolygonIsConsistent(t *testing.T) {
	for _, n := range []int{40, 100} {
		points := regularPolygon(n)
		for i := 0; i+3 < n; i++ {
			a, b, c, d := points[i], points[i+1], points[i+2], points[i+3]
			// d внутри окружности abc тогда и только тогда, когда b внутри окружности acd
			assert.Equal(t, InCircumcircle(a, b, c, d), InCircumcircle(a, c, d, b), "n=%d i=%d", n, i)
			assert.Equal(t, exactInCircleSign(a, b, c, d) > 0, InCircumcircle(a, b, c, d), "n=%d i=%d", n, i)
		}
	}
}

func TestInCircumcircle(t *testing.T) {
	a, b, c := Pt(0, 0), Pt(1, 0), Pt(0, 1)
	require.Equal(t, CounterClockwise, Orientation(a, b, c))

	assert.True(t, InCircumcircle(a, b, c, Pt(0.5, 0.5)))
	assert.True(t, InCircumcircle(a, b, c, Pt(0.9, 0.9)))
	assert.False(t, InCircumcircle(a, b, c, Pt(2, 2)))
	assert.False(t, InCircumcircle(a, b, c, Pt(-1, -1)))
}

func TestInCircumcircle_CocircularIsNotInside(t *testing.T) {
	// четвертая вершина единичного квадрата лежит ровно на окружности
	assert.False(t, InCircumcircle(Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)))
	// и вершины самого треугольника тоже
	assert.False(t, InCircumcircle(Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(1, 0)))
}

func TestInCircumcircle_AgreesWithDistance(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	checked := 0
	for i := 0; i < 2000; i++ {
		a := Pt(rng.Float64()*10, rng.Float64()*10)
		b := Pt(rng.Float64()*10, rng.Float64()*10)
		c := Pt(rng.Float64()*10, rng.Float64()*10)
		if Orientation(a, b, c) == Clockwise {
			b, c = c, b
		}
		center, radius, ok := Circumcircle(a, b, c)
		if !ok {
			continue
		}
		d := Pt(rng.Float64()*10, rng.Float64()*10)
		dist := d.DistanceTo(center)
		// пропускаем почти концикличные случаи
		if math.Abs(dist-radius) < 1e-6*radius {
			continue
		}
		checked++
		assert.Equal(t, dist < radius, InCircumcircle(a, b, c, d), "a=%v b=%v c=%v d=%v", a, b, c, d)
	}
	assert.Greater(t, checked, 1000)
}

func TestCircumcircle(t *testing.T) {
	center, radius, ok := Circumcircle(Pt(0, 0), Pt(2, 0), Pt(0, 2))
	require.True(t, ok)
	assert.InDelta(t, 1.0, center.X, 1e-12)
	assert.InDelta(t, 1.0, center.Y, 1e-12)
	assert.InDelta(t, math.Sqrt2, radius, 1e-12)

	// большие координаты: центр считается относительно первой вершины
	center, _, ok = Circumcircle(Pt(1e6, 1e6), Pt(1e6+2, 1e6), Pt(1e6, 1e6+2))
	require.True(t, ok)
	assert.InDelta(t, 1e6+1, center.X, 1e-6)
	assert.InDelta(t, 1e6+1, center.Y, 1e-6)
}

func TestCircumcircle_Degenerate(t *testing.T) {
	center, radius, ok := Circumcircle(Pt(0, 0), Pt(1, 1), Pt(2, 2))
	assert.False(t, ok)
	assert.Equal(t, NoPoint, center)
	assert.True(t, math.IsInf(radius, 1))
}
