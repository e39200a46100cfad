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
	"testing"

	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/meshtools/unbevel/mesh"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// addChain adds an open polyline through pts to m, selects every edge and
// returns the new vertices and edges in order.
func addChain(t *testing.T, m *mesh.Mesh, pts ...r3.Vector) ([]mesh.VertexID, []mesh.EdgeID) {
	t.Helper()
	var verts []mesh.VertexID
	for _, p := range pts {
		verts = append(verts, m.AddVertex(p))
	}
	var edges []mesh.EdgeID
	for i := 0; i+1 < len(verts); i++ {
		e, err := m.AddEdge(verts[i], verts[i+1])
		if err != nil {
			t.Fatalf("AddEdge(%d, %d) failed: %v", verts[i], verts[i+1], err)
		}
		m.SelectEdge(e, true)
		edges = append(edges, e)
	}
	return verts, edges
}

// cornerProfile is a 90 degree corner at the origin, beveled with one
// profile vertex: two supporting edges along the axes and two bevel edges.
var cornerProfile = []r3.Vector{
	{X: 3},
	{X: 1},
	{X: 0.4, Y: 0.4},
	{Y: 1},
	{Y: 3},
}

// uTurnProfile folds back on itself, so its supporting edges are
// anti-parallel.
var uTurnProfile = []r3.Vector{
	{},
	{X: 1},
	{X: 1.5, Y: 0.5},
	{X: 1, Y: 1},
	{Y: 1},
}

func translate(pts []r3.Vector, by r3.Vector) []r3.Vector {
	out := make([]r3.Vector, len(pts))
	for i, p := range pts {
		out[i] = p.Add(by)
	}
	return out
}

func positions(m *mesh.Mesh) []r3.Vector {
	out := make([]r3.Vector, m.NumVertices())
	for i := range out {
		out[i] = m.Position(mesh.VertexID(i))
	}
	return out
}

// fakeTopology is a Topology built from explicit incidence lists, so tests
// can describe shapes a mesh.Mesh refuses to hold.
type fakeTopology struct {
	edges    [][2]mesh.VertexID
	incident map[mesh.VertexID][]mesh.EdgeID
}

func newFakeTopology(edges ...[2]mesh.VertexID) *fakeTopology {
	f := &fakeTopology{edges: edges, incident: make(map[mesh.VertexID][]mesh.EdgeID)}
	for i, e := range edges {
		id := mesh.EdgeID(i)
		f.incident[e[0]] = append(f.incident[e[0]], id)
		if e[1] != e[0] {
			f.incident[e[1]] = append(f.incident[e[1]], id)
		}
	}
	return f
}

func (f *fakeTopology) EdgeVertices(e mesh.EdgeID) (mesh.VertexID, mesh.VertexID) {
	return f.edges[e][0], f.edges[e][1]
}

func (f *fakeTopology) IncidentEdges(v mesh.VertexID) []mesh.EdgeID {
	return f.incident[v]
}
