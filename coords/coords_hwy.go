package coords

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

// Sampling cube-mapped sky and terrain textures converts every texel's ST
// coordinates to UV, so the quadratic transform is vectorised.
import (
	"github.com/ajroetker/go-highway/hwy"
)

// BaseSTtoUVBatch converts ST coordinates (0..1) to UV coordinates (-1..1).
// u = (1/3) * (4s² - 1)       if s >= 0.5
// u = (1/3) * (1 - 4(1-s)²)   if s < 0.5
func BaseSTtoUVBatch[T hwy.Floats](s, u []T) {
	size := min(len(s), len(u))

	vHalf := hwy.Set(T(0.5))
	vOne := hwy.Set(T(1.0))
	vFour := hwy.Set(T(4.0))
	vThird := hwy.Set(T(1.0 / 3.0))

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			val := hwy.Load(s[offset:])
			geHalf := hwy.GreaterEqual(val, vHalf)

			// t = (s >= 0.5) ? s : (1-s), so both branches share 4t²-1.
			t := hwy.IfThenElse(geHalf, val, hwy.Sub(vOne, val))
			term := hwy.FMA(vFour, hwy.Mul(t, t), hwy.Neg(vOne))
			res := hwy.Mul(vThird, term)

			// 1 - 4(1-s)² = -(4(1-s)² - 1)
			res = hwy.IfThenElse(geHalf, res, hwy.Neg(res))

			hwy.Store(res, u[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			val := hwy.MaskLoad(mask, s[offset:])

			geHalf := hwy.GreaterEqual(val, vHalf)
			t := hwy.IfThenElse(geHalf, val, hwy.Sub(vOne, val))
			term := hwy.FMA(vFour, hwy.Mul(t, t), hwy.Neg(vOne))
			res := hwy.Mul(vThird, term)
			res = hwy.IfThenElse(geHalf, res, hwy.Neg(res))

			hwy.MaskStore(mask, res, u[offset:])
		},
	)
}
