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

package unbevel

import (
	"github.com/golang/geo/r3"

	"github.com/meshtools/unbevel/intersect"
	"github.com/meshtools/unbevel/mesh"
)

// minRingEdges is the shortest ring that has an interior to collapse.
const minRingEdges = 3

// Geometry is a Topology whose vertex positions can be read and written.
type Geometry interface {
	Topology
	Position(v mesh.VertexID) r3.Vector
	SetPosition(v mesh.VertexID, p r3.Vector)
}

// RingError describes why a ring was not collapsed.
type RingError int

const (
	RingOK RingError = iota
	// RingTooShort means the ring has fewer than three edges.
	RingTooShort
	// RingParallelEnds means the two end edges are parallel and have no
	// usable intersection.
	RingParallelEnds
	// RingMalformedEnds means the ring does not have exactly two end edges.
	RingMalformedEnds
)

func (e RingError) String() string {
	switch e {
	case RingOK:
		return "ok"
	case RingTooShort:
		return "too short"
	case RingParallelEnds:
		return "parallel ends"
	case RingMalformedEnds:
		return "malformed ends"
	}
	return "unknown"
}

// RingOutcome is the result of collapsing a single ring.
type RingOutcome struct {
	// Moved lists the vertices placed on Point. It is empty unless Err is
	// RingOK.
	Moved []mesh.VertexID
	// Point is the collapse point. It is only meaningful if Err is RingOK.
	Point r3.Vector
	Err   RingError
}

// ringEnds returns the edges of ring that are selection ends in sel.
func ringEnds(t Topology, ring Ring, sel *Selection) []mesh.EdgeID {
	var ends []mesh.EdgeID
	for _, e := range ring {
		if IsSelectionEnd(t, e, sel) {
			ends = append(ends, e)
		}
	}
	return ends
}

// collapseTargets returns the vertices of ring that should move. With
// keepSupport the vertices of the end edges stay put; otherwise every
// vertex of a non-end edge moves, including those shared with the ends.
func collapseTargets(t Topology, ring Ring, ends []mesh.EdgeID, keepSupport bool) []mesh.VertexID {
	isEnd := make(map[mesh.EdgeID]bool, len(ends))
	for _, e := range ends {
		isEnd[e] = true
	}

	var out []mesh.VertexID
	if keepSupport {
		support := make(map[mesh.VertexID]bool, 2*len(ends))
		for _, e := range ends {
			v0, v1 := t.EdgeVertices(e)
			support[v0] = true
			support[v1] = true
		}
		for _, v := range ring.Vertices(t) {
			if !support[v] {
				out = append(out, v)
			}
		}
		return out
	}

	var interior Ring
	for _, e := range ring {
		if !isEnd[e] {
			interior = append(interior, e)
		}
	}
	return interior.Vertices(t)
}

func segment(g Geometry, e mesh.EdgeID) intersect.Segment {
	v0, v1 := g.EdgeVertices(e)
	return intersect.Segment{A: g.Position(v0), B: g.Position(v1)}
}

// CollapseRing moves the interior vertices of ring onto the intersection
// of its two end edges. End edges are classified against the full
// selection sel. If keepSupport is set, the vertices of the end edges are
// left in place.
//
// A ring that cannot be collapsed is left untouched and the reason is
// reported in the outcome.
func CollapseRing(g Geometry, ring Ring, sel *Selection, keepSupport bool) RingOutcome {
	if len(ring) < minRingEdges {
		return RingOutcome{Err: RingTooShort}
	}
	ends := ringEnds(g, ring, sel)
	if len(ends) != 2 {
		return RingOutcome{Err: RingMalformedEnds}
	}

	targets := collapseTargets(g, ring, ends, keepSupport)
	p, ok := intersect.Segments(segment(g, ends[0]), segment(g, ends[1]))
	if !ok {
		return RingOutcome{Err: RingParallelEnds}
	}
	for _, v := range targets {
		g.SetPosition(v, p)
	}
	return RingOutcome{Moved: targets, Point: p}
}
