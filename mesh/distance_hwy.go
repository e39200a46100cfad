package mesh

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// BaseDistanceSqBatch computes the squared Euclidean distance from a target
// point to each point of a set (SoA layout).
// dst[i] = (xs[i]-tx)^2 + (ys[i]-ty)^2 + (zs[i]-tz)^2
func BaseDistanceSqBatch[T hwy.Floats](
	targetX, targetY, targetZ T,
	xs, ys, zs []T,
	dst []T,
) {
	size := min(len(xs), len(ys), len(zs), len(dst))

	vTx := hwy.Set(targetX)
	vTy := hwy.Set(targetY)
	vTz := hwy.Set(targetZ)

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vx := hwy.Load(xs[offset:])
			vy := hwy.Load(ys[offset:])
			vz := hwy.Load(zs[offset:])

			dx := hwy.Sub(vx, vTx)
			dy := hwy.Sub(vy, vTy)
			dz := hwy.Sub(vz, vTz)

			distSq := hwy.Mul(dx, dx)
			distSq = hwy.FMA(dy, dy, distSq)
			distSq = hwy.FMA(dz, dz, distSq)

			hwy.Store(distSq, dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			vx := hwy.MaskLoad(mask, xs[offset:])
			vy := hwy.MaskLoad(mask, ys[offset:])
			vz := hwy.MaskLoad(mask, zs[offset:])

			dx := hwy.Sub(vx, vTx)
			dy := hwy.Sub(vy, vTy)
			dz := hwy.Sub(vz, vTz)

			distSq := hwy.Mul(dx, dx)
			distSq = hwy.FMA(dy, dy, distSq)
			distSq = hwy.FMA(dz, dz, distSq)

			hwy.MaskStore(mask, distSq, dst[offset:])
		},
	)
}
