package geometry

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// Batch kernels over points stored in SoA layout. They back the bounding cap
// of a Shape and the ranking of collision candidates, both of which reduce
// to dot products of one fixed direction against many sampled positions.

// BaseDotProductConstBatch computes dst[i] = a · (bx[i], by[i], bz[i]).
func BaseDotProductConstBatch[T hwy.Floats](
	ax, ay, az T,
	bx, by, bz []T,
	dst []T,
) {
	size := min(len(bx), len(by), len(bz), len(dst))

	vAx := hwy.Set(ax)
	vAy := hwy.Set(ay)
	vAz := hwy.Set(az)

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			sum := hwy.Mul(vAx, hwy.Load(bx[offset:]))
			sum = hwy.FMA(vAy, hwy.Load(by[offset:]), sum)
			sum = hwy.FMA(vAz, hwy.Load(bz[offset:]), sum)
			hwy.Store(sum, dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			sum := hwy.Mul(vAx, hwy.MaskLoad(mask, bx[offset:]))
			sum = hwy.FMA(vAy, hwy.MaskLoad(mask, by[offset:]), sum)
			sum = hwy.FMA(vAz, hwy.MaskLoad(mask, bz[offset:]), sum)
			hwy.MaskStore(mask, sum, dst[offset:])
		},
	)
}

// BaseSumPoints returns the component-wise sum of the points.
func BaseSumPoints[T hwy.Floats](xs, ys, zs []T) (sumX, sumY, sumZ T) {
	size := min(len(xs), len(ys), len(zs))

	vSumX := hwy.Zero[T]()
	vSumY := hwy.Zero[T]()
	vSumZ := hwy.Zero[T]()

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vSumX = hwy.Add(vSumX, hwy.Load(xs[offset:]))
			vSumY = hwy.Add(vSumY, hwy.Load(ys[offset:]))
			vSumZ = hwy.Add(vSumZ, hwy.Load(zs[offset:]))
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			vSumX = hwy.Add(vSumX, hwy.MaskLoad(mask, xs[offset:]))
			vSumY = hwy.Add(vSumY, hwy.MaskLoad(mask, ys[offset:]))
			vSumZ = hwy.Add(vSumZ, hwy.MaskLoad(mask, zs[offset:]))
		},
	)

	return hwy.ReduceSum(vSumX), hwy.ReduceSum(vSumY), hwy.ReduceSum(vSumZ)
}

// BaseBatchMinMax returns the smallest and largest value in data, or zeros
// for an empty slice.
func BaseBatchMinMax[T hwy.Floats](data []T) (minVal, maxVal T) {
	if len(data) == 0 {
		return 0, 0
	}

	vMin := hwy.Set(data[0])
	vMax := hwy.Set(data[0])

	hwy.ProcessWithTail[T](len(data),
		func(offset int) {
			v := hwy.Load(data[offset:])
			vMin = hwy.Min(vMin, v)
			vMax = hwy.Max(vMax, v)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			v := hwy.MaskLoad(mask, data[offset:])
			// Lanes outside the mask keep the running extrema so the zero
			// padding from MaskLoad never wins.
			vMin = hwy.Min(vMin, hwy.IfThenElse(mask, v, vMin))
			vMax = hwy.Max(vMax, hwy.IfThenElse(mask, v, vMax))
		},
	)

	return hwy.ReduceMin(vMin), hwy.ReduceMax(vMax)
}
