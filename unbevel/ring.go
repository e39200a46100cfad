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
	"errors"
	"fmt"

	"github.com/meshtools/unbevel/mesh"
)

var (
	// ErrUnrecognizable is returned when no selected edge touches a
	// selection boundary, so there is no ring to start from.
	ErrUnrecognizable = errors.New("unbevel: unrecognizable selection pattern")

	// ErrBranchingSelection is returned when a vertex along a ring has more
	// than one selected continuation.
	ErrBranchingSelection = errors.New("unbevel: selection branches")

	// ErrClosedLoop is returned when a ring walk comes back to a vertex it
	// has already passed.
	ErrClosedLoop = errors.New("unbevel: selection closes on itself")
)

// Topology is the adjacency a host mesh must expose.
type Topology interface {
	// EdgeVertices returns the two endpoints of e.
	EdgeVertices(e mesh.EdgeID) (mesh.VertexID, mesh.VertexID)
	// IncidentEdges returns every edge touching v.
	IncidentEdges(v mesh.VertexID) []mesh.EdgeID
}

// Ring is an ordered chain of edges in which consecutive edges share a
// vertex.
type Ring []mesh.EdgeID

// Vertices returns the distinct vertices of r in the order they are first
// touched.
func (r Ring) Vertices(t Topology) []mesh.VertexID {
	var out []mesh.VertexID
	seen := make(map[mesh.VertexID]bool, len(r)+1)
	for _, e := range r {
		v0, v1 := t.EdgeVertices(e)
		for _, v := range [2]mesh.VertexID{v0, v1} {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

func otherVertex(t Topology, e mesh.EdgeID, v mesh.VertexID) mesh.VertexID {
	v0, v1 := t.EdgeVertices(e)
	if v0 == v {
		return v1
	}
	return v0
}

// selectedDegree counts the selected edges touching v.
func selectedDegree(t Topology, v mesh.VertexID, sel *Selection) int {
	n := 0
	for _, e := range t.IncidentEdges(v) {
		if sel.Has(e) {
			n++
		}
	}
	return n
}

// IsSelectionEnd reports whether e touches a vertex that has exactly one
// selected edge.
func IsSelectionEnd(t Topology, e mesh.EdgeID, sel *Selection) bool {
	v0, v1 := t.EdgeVertices(e)
	return selectedDegree(t, v0, sel) == 1 || selectedDegree(t, v1, sel) == 1
}

// candidates returns the selected edges touching v that are not yet part
// of the ring being walked.
func candidates(t Topology, v mesh.VertexID, sel *Selection, inRing map[mesh.EdgeID]bool) []mesh.EdgeID {
	var out []mesh.EdgeID
	for _, e := range t.IncidentEdges(v) {
		if sel.Has(e) && !inRing[e] {
			out = append(out, e)
		}
	}
	return out
}

// walkRing grows a ring from start, one edge at a time, until the frontier
// vertex has no further selected edge.
func walkRing(t Topology, start mesh.EdgeID, sel *Selection) (Ring, error) {
	ring := Ring{start}
	inRing := map[mesh.EdgeID]bool{start: true}
	visited := make(map[mesh.VertexID]bool)

	// Pick the direction: an endpoint with nothing beyond it is the fixed
	// end; an endpoint with a single continuation is where we walk.
	v0, v1 := t.EdgeVertices(start)
	next, ok := mesh.VertexID(-1), false
	for _, v := range [2]mesh.VertexID{v0, v1} {
		switch len(candidates(t, v, sel, inRing)) {
		case 0:
			visited[v] = true
			next, ok = otherVertex(t, start, v), true
		case 1:
			visited[otherVertex(t, start, v)] = true
			next, ok = v, true
		}
		if ok {
			break
		}
	}
	if !ok {
		return nil, fmt.Errorf("%w: both ends of edge %d continue", ErrBranchingSelection, start)
	}

	for {
		if visited[next] {
			return nil, fmt.Errorf("%w: vertex %d revisited", ErrClosedLoop, next)
		}
		cands := candidates(t, next, sel, inRing)
		switch len(cands) {
		case 0:
			return ring, nil
		case 1:
			e := cands[0]
			ring = append(ring, e)
			inRing[e] = true
			visited[next] = true
			next = otherVertex(t, e, next)
		default:
			return nil, fmt.Errorf("%w: vertex %d has %d continuations", ErrBranchingSelection, next, len(cands))
		}
	}
}

// ExtractRings partitions the selection into disjoint rings, one per pair
// of selection ends. Rings are returned in the order their first end edge
// appears in sel.
//
// Any branching or closed walk fails the whole extraction. Selected edges
// that cannot be reached from an end edge are not part of any ring; see
// Unreached.
func ExtractRings(t Topology, sel *Selection) ([]Ring, error) {
	var ends []mesh.EdgeID
	for _, e := range sel.Edges() {
		if IsSelectionEnd(t, e, sel) {
			ends = append(ends, e)
		}
	}
	if len(ends) == 0 {
		return nil, ErrUnrecognizable
	}

	var rings []Ring
	used := make(map[mesh.EdgeID]bool)
	for _, e := range ends {
		if used[e] {
			continue
		}
		ring, err := walkRing(t, e, sel)
		if err != nil {
			return nil, fmt.Errorf("ring starting at edge %d: %w", e, err)
		}
		for _, re := range ring {
			used[re] = true
		}
		rings = append(rings, ring)
	}
	return rings, nil
}

// Unreached returns the edges of sel that belong to none of rings, in
// selection order.
func Unreached(sel *Selection, rings []Ring) []mesh.EdgeID {
	used := make(map[mesh.EdgeID]bool, sel.Len())
	for _, r := range rings {
		for _, e := range r {
			used[e] = true
		}
	}
	var out []mesh.EdgeID
	for _, e := range sel.Edges() {
		if !used[e] {
			out = append(out, e)
		}
	}
	return out
}
