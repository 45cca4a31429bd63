package geom

import "math/big"

// Точные версии определителей. Вызываются, только когда быстрый фильтр не уверен в знаке.
// Разности и произведения float64 в big.Float с максимальной точностью вычисляются без округления.

func newBigFloat() *big.Float { return new(big.Float).SetPrec(big.MaxPrec) }

func bigSub(x, y float64) *big.Float {
	return newBigFloat().Sub(newBigFloat().SetFloat64(x), newBigFloat().SetFloat64(y))
}

func bigMul(x, y *big.Float) *big.Float { return newBigFloat().Mul(x, y) }

func bigAdd(x, y *big.Float) *big.Float { return newBigFloat().Add(x, y) }

// CrossSign - точный знак векторного произведения (b-a)×(d-c): -1, 0 или 1.
// Координаты должны быть конечными.
func CrossSign(a, b, c, d Point) int {
	bax, bay := bigSub(b.X, a.X), bigSub(b.Y, a.Y)
	dcx, dcy := bigSub(d.X, c.X), bigSub(d.Y, c.Y)
	return bigMul(bax, dcy).Cmp(bigMul(bay, dcx))
}

// Точный знак определителя InCircumcircle
func exactInCircleSign(a, b, c, d Point) int {
	adx, ady := bigSub(a.X, d.X), bigSub(a.Y, d.Y)
	bdx, bdy := bigSub(b.X, d.X), bigSub(b.Y, d.Y)
	cdx, cdy := bigSub(c.X, d.X), bigSub(c.Y, d.Y)

	aLift := bigAdd(bigMul(adx, adx), bigMul(ady, ady))
	bLift := bigAdd(bigMul(bdx, bdx), bigMul(bdy, bdy))
	cLift := bigAdd(bigMul(cdx, cdx), bigMul(cdy, cdy))

	bc := newBigFloat().Sub(bigMul(bdx, cdy), bigMul(cdx, bdy))
	ca := newBigFloat().Sub(bigMul(cdx, ady), bigMul(adx, cdy))
	ab := newBigFloat().Sub(bigMul(adx, bdy), bigMul(bdx, ady))

	det := bigAdd(bigAdd(bigMul(aLift, bc), bigMul(bLift, ca)), bigMul(cLift, ab))
	return det.Sign()
}
