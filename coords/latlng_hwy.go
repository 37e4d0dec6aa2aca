package coords

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
	"github.com/ajroetker/go-highway/hwy/contrib/algo"
)

// BasePointsFromLatLngsBatch converts latitudes and longitudes in radians to
// unit vectors stored as separate X, Y and Z slices.
//
// x = cos(lat) cos(lng), y = cos(lat) sin(lng), z = sin(lat)
func BasePointsFromLatLngsBatch(lats, lngs, xs, ys, zs []float64) {
	size := min(len(lats), len(lngs), len(xs), len(ys), len(zs))
	lats, lngs = lats[:size], lngs[:size]

	sinLat := make([]float64, size)
	cosLat := make([]float64, size)
	sinLng := make([]float64, size)
	cosLng := make([]float64, size)
	algo.SinTransform64(lats, sinLat)
	algo.CosTransform64(lats, cosLat)
	algo.SinTransform64(lngs, sinLng)
	algo.CosTransform64(lngs, cosLng)

	hwy.ProcessWithTail[float64](size,
		func(offset int) {
			vCosLat := hwy.Load(cosLat[offset:])
			hwy.Store(hwy.Mul(vCosLat, hwy.Load(cosLng[offset:])), xs[offset:])
			hwy.Store(hwy.Mul(vCosLat, hwy.Load(sinLng[offset:])), ys[offset:])
			hwy.Store(hwy.Load(sinLat[offset:]), zs[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[float64](count)
			vCosLat := hwy.MaskLoad(mask, cosLat[offset:])
			hwy.MaskStore(mask, hwy.Mul(vCosLat, hwy.MaskLoad(mask, cosLng[offset:])), xs[offset:])
			hwy.MaskStore(mask, hwy.Mul(vCosLat, hwy.MaskLoad(mask, sinLng[offset:])), ys[offset:])
			hwy.MaskStore(mask, hwy.MaskLoad(mask, sinLat[offset:]), zs[offset:])
		},
	)
}
