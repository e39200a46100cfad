// Copyright 2023 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package intersect computes representative intersection points of pairs
// of 3D line segments.
//
// Two edges of a real mesh almost never meet exactly, so the "intersection"
// returned here is the midpoint of the closest approach of the two lines
// through the segments.
package intersect

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

// ParallelTolerance is the angle below which two segment directions are
// treated as parallel and no intersection is reported.
const ParallelTolerance s1.Angle = 0.002

// Segment is a line segment given by its two endpoints.
type Segment struct {
	A, B r3.Vector
}

// Direction returns A - B.
func (s Segment) Direction() r3.Vector {
	return s.A.Sub(s.B)
}

// AngleModPi returns the unsigned angle between x and y reduced modulo π,
// so the result lies in [0, π).
func AngleModPi(x, y r3.Vector) s1.Angle {
	return s1.Angle(math.Mod(float64(x.Angle(y)), math.Pi))
}

// Parallel reports whether x and y are within tol of being parallel,
// treating a direction and its opposite as the same.
func Parallel(x, y r3.Vector, tol s1.Angle) bool {
	a := AngleModPi(x, y)
	return a < tol || s1.Angle(math.Pi)-a < tol
}

// LineLine returns the closest points on the infinite line through a0, a1
// and the infinite line through b0, b1. The first point lies on line a and
// the second on line b. ok is false if either line is degenerate or the
// lines are parallel.
func LineLine(a0, a1, b0, b1 r3.Vector) (pa, pb r3.Vector, ok bool) {
	u := a1.Sub(a0)
	v := b1.Sub(b0)
	w := a0.Sub(b0)

	uu := u.Dot(u)
	uv := u.Dot(v)
	vv := v.Dot(v)
	uw := u.Dot(w)
	vw := v.Dot(w)

	den := uu*vv - uv*uv
	if uu == 0 || vv == 0 || den <= 1e-12*uu*vv {
		return r3.Vector{}, r3.Vector{}, false
	}

	s := (uv*vw - vv*uw) / den
	t := (uu*vw - uv*uw) / den
	return a0.Add(u.Mul(s)), b0.Add(v.Mul(t)), true
}

// Segments returns the midpoint of the closest approach of the lines
// through a and b. It returns false if the two segments are parallel
// within ParallelTolerance.
func Segments(a, b Segment) (r3.Vector, bool) {
	if Parallel(a.Direction(), b.Direction(), ParallelTolerance) {
		return r3.Vector{}, false
	}
	pa, pb, ok := LineLine(a.A, a.B, b.A, b.B)
	if !ok {
		return r3.Vector{}, false
	}
	return pa.Add(pb).Mul(0.5), true
}
