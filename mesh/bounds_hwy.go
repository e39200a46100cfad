package mesh

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// BaseBounds3 computes the per-axis minimum and maximum of a set of points
// (SoA layout) in a single pass. All three slices must have the same
// length; an empty set yields zeros.
func BaseBounds3[T hwy.Floats](xs, ys, zs []T) (lo, hi [3]T) {
	size := min(len(xs), len(ys), len(zs))
	if size == 0 {
		return lo, hi
	}

	// Seeding with the first point keeps padding lanes out of the result.
	vLoX, vHiX := hwy.Set(xs[0]), hwy.Set(xs[0])
	vLoY, vHiY := hwy.Set(ys[0]), hwy.Set(ys[0])
	vLoZ, vHiZ := hwy.Set(zs[0]), hwy.Set(zs[0])

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			x := hwy.Load(xs[offset:])
			y := hwy.Load(ys[offset:])
			z := hwy.Load(zs[offset:])

			vLoX, vHiX = hwy.Min(vLoX, x), hwy.Max(vHiX, x)
			vLoY, vHiY = hwy.Min(vLoY, y), hwy.Max(vHiY, y)
			vLoZ, vHiZ = hwy.Min(vLoZ, z), hwy.Max(vHiZ, z)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			x := hwy.MaskLoad(mask, xs[offset:])
			y := hwy.MaskLoad(mask, ys[offset:])
			z := hwy.MaskLoad(mask, zs[offset:])

			// Masked-out lanes load as zero; substitute the running bound.
			vLoX = hwy.Min(vLoX, hwy.IfThenElse(mask, x, vLoX))
			vHiX = hwy.Max(vHiX, hwy.IfThenElse(mask, x, vHiX))
			vLoY = hwy.Min(vLoY, hwy.IfThenElse(mask, y, vLoY))
			vHiY = hwy.Max(vHiY, hwy.IfThenElse(mask, y, vHiY))
			vLoZ = hwy.Min(vLoZ, hwy.IfThenElse(mask, z, vLoZ))
			vHiZ = hwy.Max(vHiZ, hwy.IfThenElse(mask, z, vHiZ))
		},
	)

	lo = [3]T{hwy.ReduceMin(vLoX), hwy.ReduceMin(vLoY), hwy.ReduceMin(vLoZ)}
	hi = [3]T{hwy.ReduceMax(vHiX), hwy.ReduceMax(vHiY), hwy.ReduceMax(vHiZ)}
	return lo, hi
}
