package geomint

import (
	"math"
	"math/big"
)

// int32Max and int32Min bound the magnitude an intersection result may have;
// anything beyond this is treated as practically parallel so that it can
// never overflow a downstream coordinate store.
const (
	int32Max = int64(math.MaxInt32)
	int32Min = int64(math.MinInt32)
)

// DistPointToLine returns the distance from p to the infinite line through a
// and b. If a and b coincide, it returns the distance from p to a. The
// shoelace numerator is computed with big.Int so that coordinate products up
// to the full int64 range cannot overflow before the final division.
func DistPointToLine(p, a, b Point) float64 {
	if a == b {
		return Distance(p, a)
	}
	num := shoelaceAbs(p, a, b)
	numF := new(big.Float).SetInt(num)
	numFloat, _ := numF.Float64()
	return numFloat / Distance(a, b)
}

// shoelaceAbs computes |(p.x-b.x)(p.y-a.y) + (a.x-p.x)(p.y-b.y)| widened
// through big.Int.
func shoelaceAbs(p, a, b Point) *big.Int {
	t1 := new(big.Int).Mul(big.NewInt(p.X-b.X), big.NewInt(p.Y-a.Y))
	t2 := new(big.Int).Mul(big.NewInt(a.X-p.X), big.NewInt(p.Y-b.Y))
	sum := t1.Add(t1, t2)
	return sum.Abs(sum)
}

// RoundDivSigned divides n by d, rounding to the nearest integer with
// half-away-from-zero behavior and correct sign when n and d have opposite
// signs. d must be non-zero.
func RoundDivSigned(n, d int64) int64 {
	return roundDivBig(big.NewInt(n), big.NewInt(d)).Int64()
}

// roundDivBig is the big.Int-backed rounding routine shared by
// RoundDivSigned and LineLineIntersection, so both code paths agree on
// rounding bit for bit regardless of operand magnitude.
func roundDivBig(n, d *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(n, d, new(big.Int))
	if r.Sign() == 0 {
		return q
	}
	twiceR := new(big.Int).Abs(r)
	twiceR.Lsh(twiceR, 1)
	dAbs := new(big.Int).Abs(d)
	if twiceR.Cmp(dAbs) < 0 {
		return q
	}
	// Round away from zero: n and d agree in sign iff n/d is positive.
	if (n.Sign() < 0) == (d.Sign() < 0) {
		return q.Add(q, big.NewInt(1))
	}
	return q.Sub(q, big.NewInt(1))
}

// crossBig computes the z-component of u x v widened through big.Int, so
// deltas spanning the full int64 range cannot overflow the product.
func crossBig(u, v Point) *big.Int {
	a := new(big.Int).Mul(big.NewInt(u.X), big.NewInt(v.Y))
	b := new(big.Int).Mul(big.NewInt(u.Y), big.NewInt(v.X))
	return a.Sub(a, b)
}

// LineLineIntersection returns the intersection of the infinite lines ab and
// cd. It returns (zero, false) when the lines are parallel (D == 0) or when
// the result would not fit a signed 32-bit integer in either component —
// treated as practically parallel to avoid overflow further downstream.
func LineLineIntersection(a, b, c, d Point) (Point, bool) {
	bma := b.Sub(a)
	dmc := d.Sub(c)

	D := crossBig(bma, dmc)
	if D.Sign() == 0 {
		return Point{}, false
	}

	amc := a.Sub(c)
	t := crossBig(dmc, amc)

	offX := roundDivBig(new(big.Int).Mul(t, big.NewInt(bma.X)), D)
	offY := roundDivBig(new(big.Int).Mul(t, big.NewInt(bma.Y)), D)

	rx := new(big.Int).Add(big.NewInt(a.X), offX)
	ry := new(big.Int).Add(big.NewInt(a.Y), offY)

	if !rx.IsInt64() || !ry.IsInt64() {
		return Point{}, false
	}
	x, y := rx.Int64(), ry.Int64()
	if x > int32Max || x < int32Min || y > int32Max || y < int32Min {
		return Point{}, false
	}
	return Point{X: x, Y: y}, true
}
