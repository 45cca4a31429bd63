package geom

import "math"

// Ориентация тройки точек
type Direction int

const (
	Clockwise        Direction = -1
	Collinear        Direction = 0
	CounterClockwise Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	default:
		return "collinear"
	}
}

// Оценки погрешности вычисления определителей в float64 (Shewchuk, "Adaptive Precision
// Floating-Point Arithmetic"). Если |det| не превышает оценку, знак считается неизвестным.
const (
	machEpsilon = 1.1102230246251565e-16 // 2^-53
	ccwErrBound = (3 + 16*machEpsilon) * machEpsilon
	iccErrBound = (10 + 96*machEpsilon) * machEpsilon
)

// Orientation классифицирует r относительно направленной прямой p->q:
// слева (CounterClockwise), справа (Clockwise) или на прямой (Collinear).
// Знак берется только если определитель больше своей погрешности, почти
// коллинеарные тройки считаются коллинеарными.
func Orientation(p, q, r Point) Direction {
	det, bound := orientFilter(p, q, r)
	switch {
	case det > bound:
		return CounterClockwise
	case det < -bound:
		return Clockwise
	default:
		return Collinear
	}
}

// ExactOrientation - то же, что Orientation, но при неуверенном фильтре знак
// досчитывается точно. Collinear только для точно коллинеарных точек.
func ExactOrientation(p, q, r Point) Direction {
	det, bound := orientFilter(p, q, r)
	switch {
	case det > bound:
		return CounterClockwise
	case det < -bound:
		return Clockwise
	default:
		return Direction(CrossSign(p, q, p, r))
	}
}

func orientFilter(p, q, r Point) (det, bound float64) {
	detLeft := (q.X - p.X) * (r.Y - p.Y)
	detRight := (q.Y - p.Y) * (r.X - p.X)
	return detLeft - detRight, ccwErrBound * (math.Abs(detLeft) + math.Abs(detRight))
}

// Удвоенная ориентированная площадь треугольника pqr
func Orient2D(p, q, r Point) float64 {
	return (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
}

// InCircumcircle сообщает, лежит ли d строго внутри описанной окружности треугольника abc.
// Треугольник должен быть ориентирован против часовой стрелки.
// Определитель берется на параболоиде (x, y, x²+y²). Если фильтр не уверен в знаке,
// он досчитывается точно; концикличные точки дают false.
func InCircumcircle(a, b, c, d Point) bool {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	bdxcdy := bdx * cdy
	cdxbdy := cdx * bdy
	aLift := adx*adx + ady*ady

	cdxady := cdx * ady
	adxcdy := adx * cdy
	bLift := bdx*bdx + bdy*bdy

	adxbdy := adx * bdy
	bdxady := bdx * ady
	cLift := cdx*cdx + cdy*cdy

	det := aLift*(bdxcdy-cdxbdy) + bLift*(cdxady-adxcdy) + cLift*(adxbdy-bdxady)

	permanent := (math.Abs(bdxcdy)+math.Abs(cdxbdy))*aLift +
		(math.Abs(cdxady)+math.Abs(adxcdy))*bLift +
		(math.Abs(adxbdy)+math.Abs(bdxady))*cLift

	bound := iccErrBound * permanent
	switch {
	case det > bound:
		return true
	case det < -bound:
		return false
	default:
		return exactInCircleSign(a, b, c, d) > 0
	}
}

// Circumcircle возвращает центр и радиус описанной окружности.
// ok == false, если точки (почти) коллинеарны и центр численно неустойчив.
func Circumcircle(a, b, c Point) (center Point, radius float64, ok bool) {
	if Orientation(a, b, c) == Collinear {
		return NoPoint, math.Inf(1), false
	}

	// считаем относительно a, чтобы не терять точность на больших координатах
	bx, by := b.X-a.X, b.Y-a.Y
	cx, cy := c.X-a.X, c.Y-a.Y
	d := 2 * (bx*cy - by*cx)

	bl := bx*bx + by*by
	cl := cx*cx + cy*cy
	ux := (cy*bl - by*cl) / d
	uy := (bx*cl - cx*bl) / d

	center = Point{a.X + ux, a.Y + uy}
	if !center.IsFinite() {
		return NoPoint, math.Inf(1), false
	}
	return center, math.Hypot(ux, uy), true
}
