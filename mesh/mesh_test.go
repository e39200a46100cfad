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

package mesh

import (
	"errors"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
)

// makePolyline builds an open chain through pts and returns the mesh with
// its vertex and edge IDs in order.
func makePolyline(t *testing.T, pts ...r3.Vector) (*Mesh, []VertexID, []EdgeID) {
	t.Helper()
	m := New()
	var verts []VertexID
	for _, p := range pts {
		verts = append(verts, m.AddVertex(p))
	}
	var edges []EdgeID
	for i := 0; i+1 < len(verts); i++ {
		e, err := m.AddEdge(verts[i], verts[i+1])
		if err != nil {
			t.Fatalf("AddEdge(%d, %d) failed: %v", verts[i], verts[i+1], err)
		}
		edges = append(edges, e)
	}
	return m, verts, edges
}

func TestMeshAdjacency(t *testing.T) {
	m, v, e := makePolyline(t,
		r3.Vector{X: 0}, r3.Vector{X: 1}, r3.Vector{X: 2}, r3.Vector{X: 3})

	if m.NumVertices() != 4 {
		t.Errorf("NumVertices() = %d, want 4", m.NumVertices())
	}
	if m.NumEdges() != 3 {
		t.Errorf("NumEdges() = %d, want 3", m.NumEdges())
	}
	if d := cmp.Diff([]EdgeID{e[0], e[1]}, m.IncidentEdges(v[1])); d != "" {
		t.Errorf("IncidentEdges(%d) (-want +got):\n%s", v[1], d)
	}
	if got := len(m.IncidentEdges(v[0])); got != 1 {
		t.Errorf("len(IncidentEdges(%d)) = %d, want 1", v[0], got)
	}
	if got := m.Edge(e[1]).OtherVertex(v[1]); got != v[2] {
		t.Errorf("OtherVertex(%d) = %d, want %d", v[1], got, v[2])
	}
	if got, ok := m.EdgeBetween(v[2], v[1]); !ok || got != e[1] {
		t.Errorf("EdgeBetween(%d, %d) = %d, %v, want %d, true", v[2], v[1], got, ok, e[1])
	}
	if _, ok := m.EdgeBetween(v[0], v[3]); ok {
		t.Errorf("EdgeBetween(%d, %d) found an edge, want none", v[0], v[3])
	}
	seg := m.Segment(e[2])
	if seg.A != (r3.Vector{X: 2}) || seg.B != (r3.Vector{X: 3}) {
		t.Errorf("Segment(%d) = %v, want {(2,0,0) (3,0,0)}", e[2], seg)
	}
}

func TestMeshAddEdgeErrors(t *testing.T) {
	m := New()
	a := m.AddVertex(r3.Vector{})
	if _, err := m.AddEdge(a, a); !errors.Is(err, ErrDegenerateEdge) {
		t.Errorf("AddEdge(a, a) = %v, want ErrDegenerateEdge", err)
	}
	if _, err := m.AddEdge(a, 7); !errors.Is(err, ErrVertexOutOfRange) {
		t.Errorf("AddEdge(a, 7) = %v, want ErrVertexOutOfRange", err)
	}
	if _, err := m.AddEdge(-1, a); !errors.Is(err, ErrVertexOutOfRange) {
		t.Errorf("AddEdge(-1, a) = %v, want ErrVertexOutOfRange", err)
	}
}

func TestMeshSelection(t *testing.T) {
	m, v, e := makePolyline(t,
		r3.Vector{X: 0}, r3.Vector{X: 1}, r3.Vector{X: 2}, r3.Vector{X: 3})
	m.SelectEdge(e[0], true)
	m.SelectEdge(e[2], true)

	if d := cmp.Diff([]EdgeID{e[0], e[2]}, m.SelectedEdges()); d != "" {
		t.Errorf("SelectedEdges() (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]VertexID{v[0], v[1], v[2], v[3]}, m.SelectedVertices()); d != "" {
		t.Errorf("SelectedVertices() (-want +got):\n%s", d)
	}

	m.SelectEdge(e[0], false)
	if d := cmp.Diff([]EdgeID{e[2]}, m.SelectedEdges()); d != "" {
		t.Errorf("SelectedEdges() after deselect (-want +got):\n%s", d)
	}
}

func TestMergeByDistanceCollapsedChain(t *testing.T) {
	// The three middle vertices already sit on the corner.
	m, v, e := makePolyline(t,
		r3.Vector{X: 3},
		r3.Vector{},
		r3.Vector{X: 0.0002},
		r3.Vector{Y: 0.0001},
		r3.Vector{Y: 3})
	for _, id := range e {
		m.SelectEdge(id, true)
	}

	if got := m.MergeByDistance(m.SelectedVertices(), 0.001); got != 2 {
		t.Fatalf("MergeByDistance() = %d, want 2", got)
	}
	if !m.VertexRemoved(v[2]) || !m.VertexRemoved(v[3]) {
		t.Errorf("vertices %d and %d should be removed", v[2], v[3])
	}
	if m.VertexRemoved(v[1]) {
		t.Errorf("vertex %d is the site and should survive", v[1])
	}
	if got := m.NumLiveEdges(); got != 2 {
		t.Errorf("NumLiveEdges() = %d, want 2", got)
	}
	if !m.EdgeRemoved(e[1]) || !m.EdgeRemoved(e[2]) {
		t.Errorf("edges %d and %d should be removed", e[1], e[2])
	}
	v0, v1 := m.EdgeVertices(e[3])
	if v0 != v[1] || v1 != v[4] {
		t.Errorf("EdgeVertices(%d) = (%d, %d), want (%d, %d)", e[3], v0, v1, v[1], v[4])
	}
	if d := cmp.Diff([]EdgeID{e[0], e[3]}, m.IncidentEdges(v[1])); d != "" {
		t.Errorf("IncidentEdges(%d) (-want +got):\n%s", v[1], d)
	}
	if d := cmp.Diff([]VertexID{v[0], v[1], v[4]}, m.SelectedVertices()); d != "" {
		t.Errorf("SelectedVertices() (-want +got):\n%s", d)
	}
}

func TestMergeByDistanceDuplicateEdges(t *testing.T) {
	// Two parallel edges a-b and c-d where c sits on a and d on b.
	m := New()
	a := m.AddVertex(r3.Vector{})
	b := m.AddVertex(r3.Vector{X: 1})
	c := m.AddVertex(r3.Vector{})
	d := m.AddVertex(r3.Vector{X: 1})
	ab, _ := m.AddEdge(a, b)
	cd, _ := m.AddEdge(c, d)
	m.SelectEdge(cd, true)

	if got := m.MergeByDistance([]VertexID{a, b, c, d}, 0.001); got != 2 {
		t.Fatalf("MergeByDistance() = %d, want 2", got)
	}
	if m.EdgeRemoved(ab) {
		t.Errorf("edge %d should survive", ab)
	}
	if !m.EdgeRemoved(cd) {
		t.Errorf("edge %d should be merged away", cd)
	}
	if !m.Edge(ab).Selected {
		t.Errorf("edge %d should inherit the selection of the merged edge", ab)
	}
	if got := len(m.IncidentEdges(b)); got != 1 {
		t.Errorf("len(IncidentEdges(b)) = %d, want 1", got)
	}
}

func TestMergeByDistanceKeepsDistantVertices(t *testing.T) {
	m, v, _ := makePolyline(t, r3.Vector{}, r3.Vector{X: 0.01}, r3.Vector{X: 0.02})
	if got := m.MergeByDistance(v, 0.001); got != 0 {
		t.Errorf("MergeByDistance() = %d, want 0", got)
	}
	if got := m.MergeByDistance(nil, 0.001); got != 0 {
		t.Errorf("MergeByDistance(nil) = %d, want 0", got)
	}
}

func TestBounds(t *testing.T) {
	m, _, _ := makePolyline(t,
		r3.Vector{X: 1, Y: -2, Z: 3},
		r3.Vector{X: -4, Y: 5, Z: 0},
		r3.Vector{X: 2, Y: 1, Z: -6})
	lo, hi := m.Bounds()
	if want := (r3.Vector{X: -4, Y: -2, Z: -6}); lo != want {
		t.Errorf("Bounds() lo = %v, want %v", lo, want)
	}
	if want := (r3.Vector{X: 2, Y: 5, Z: 3}); hi != want {
		t.Errorf("Bounds() hi = %v, want %v", hi, want)
	}

	lo, hi = New().Bounds()
	if lo != (r3.Vector{}) || hi != (r3.Vector{}) {
		t.Errorf("Bounds() of empty mesh = %v, %v, want zero", lo, hi)
	}
}
