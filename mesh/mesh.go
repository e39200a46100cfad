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

// Package mesh is a minimal editable edge mesh. Vertices and edges live in
// arenas addressed by stable integer IDs, and each vertex keeps the list of
// edges incident to it. Faces are not represented.
package mesh

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/meshtools/unbevel/intersect"
)

var (
	// ErrVertexOutOfRange is returned when an edge refers to a vertex that
	// does not exist or has been removed.
	ErrVertexOutOfRange = errors.New("mesh: vertex out of range")

	// ErrDegenerateEdge is returned when both endpoints of an edge are the
	// same vertex.
	ErrDegenerateEdge = errors.New("mesh: degenerate edge")
)

// VertexID identifies a vertex of a Mesh.
type VertexID int32

// EdgeID identifies an edge of a Mesh.
type EdgeID int32

// Vertex is a point of the mesh.
type Vertex struct {
	Pos      r3.Vector
	Selected bool

	removed bool
}

// Edge connects two vertices.
type Edge struct {
	V0, V1   VertexID
	Selected bool

	removed bool
}

// OtherVertex returns the endpoint of e that is not v.
func (e Edge) OtherVertex(v VertexID) VertexID {
	if e.V0 == v {
		return e.V1
	}
	return e.V0
}

// Mesh is an arena of vertices and edges. IDs stay valid for the lifetime
// of the mesh; merged vertices and edges are marked removed rather than
// compacted.
type Mesh struct {
	vertices []Vertex
	edges    []Edge

	// Adjacency list for graph traversal.
	vertexEdges [][]EdgeID // vertexID -> []edgeIndices
}

// New returns an empty mesh.
func New() *Mesh {
	return &Mesh{}
}

// AddVertex appends a vertex at p and returns its ID.
func (m *Mesh) AddVertex(p r3.Vector) VertexID {
	m.vertices = append(m.vertices, Vertex{Pos: p})
	m.vertexEdges = append(m.vertexEdges, nil)
	return VertexID(len(m.vertices) - 1)
}

// AddEdge connects v0 and v1 and returns the new edge's ID.
func (m *Mesh) AddEdge(v0, v1 VertexID) (EdgeID, error) {
	if !m.live(v0) || !m.live(v1) {
		return -1, fmt.Errorf("%w: edge (%d, %d)", ErrVertexOutOfRange, v0, v1)
	}
	if v0 == v1 {
		return -1, fmt.Errorf("%w: vertex %d", ErrDegenerateEdge, v0)
	}
	id := EdgeID(len(m.edges))
	m.edges = append(m.edges, Edge{V0: v0, V1: v1})
	m.vertexEdges[v0] = append(m.vertexEdges[v0], id)
	m.vertexEdges[v1] = append(m.vertexEdges[v1], id)
	return id, nil
}

func (m *Mesh) live(v VertexID) bool {
	return v >= 0 && int(v) < len(m.vertices) && !m.vertices[v].removed
}

// NumVertices returns the number of vertex slots, including removed ones.
func (m *Mesh) NumVertices() int { return len(m.vertices) }

// NumEdges returns the number of edge slots, including removed ones.
func (m *Mesh) NumEdges() int { return len(m.edges) }

// Vertex returns the vertex with the given ID.
func (m *Mesh) Vertex(v VertexID) Vertex { return m.vertices[v] }

// Edge returns the edge with the given ID.
func (m *Mesh) Edge(e EdgeID) Edge { return m.edges[e] }

// VertexRemoved reports whether v was welded into another vertex.
func (m *Mesh) VertexRemoved(v VertexID) bool { return m.vertices[v].removed }

// EdgeRemoved reports whether e was removed by a merge.
func (m *Mesh) EdgeRemoved(e EdgeID) bool { return m.edges[e].removed }

// NumLiveEdges returns the number of edges that have not been removed.
func (m *Mesh) NumLiveEdges() int {
	n := 0
	for _, e := range m.edges {
		if !e.removed {
			n++
		}
	}
	return n
}

// IncidentEdges returns the edges touching v. The slice must not be
// modified.
func (m *Mesh) IncidentEdges(v VertexID) []EdgeID {
	if v < 0 || int(v) >= len(m.vertexEdges) {
		return nil
	}
	return m.vertexEdges[v]
}

// EdgeVertices returns the endpoints of e.
func (m *Mesh) EdgeVertices(e EdgeID) (VertexID, VertexID) {
	edge := m.edges[e]
	return edge.V0, edge.V1
}

// EdgeBetween returns the live edge joining a and b, if any.
func (m *Mesh) EdgeBetween(a, b VertexID) (EdgeID, bool) {
	for _, e := range m.IncidentEdges(a) {
		if m.edges[e].OtherVertex(a) == b {
			return e, true
		}
	}
	return -1, false
}

// Position returns the location of v.
func (m *Mesh) Position(v VertexID) r3.Vector { return m.vertices[v].Pos }

// SetPosition moves v to p.
func (m *Mesh) SetPosition(v VertexID, p r3.Vector) { m.vertices[v].Pos = p }

// Segment returns the endpoint positions of e in V0, V1 order.
func (m *Mesh) Segment(e EdgeID) intersect.Segment {
	edge := m.edges[e]
	return intersect.Segment{A: m.vertices[edge.V0].Pos, B: m.vertices[edge.V1].Pos}
}

// SelectEdge sets the selection state of e. Selecting an edge also selects
// its endpoints; deselecting leaves the vertices alone.
func (m *Mesh) SelectEdge(e EdgeID, selected bool) {
	edge := &m.edges[e]
	edge.Selected = selected
	if selected {
		m.vertices[edge.V0].Selected = true
		m.vertices[edge.V1].Selected = true
	}
}

// SelectedEdges returns the live selected edges in ID order.
func (m *Mesh) SelectedEdges() []EdgeID {
	var out []EdgeID
	for i, e := range m.edges {
		if e.Selected && !e.removed {
			out = append(out, EdgeID(i))
		}
	}
	return out
}

// SelectedVertices returns the live selected vertices in ID order.
func (m *Mesh) SelectedVertices() []VertexID {
	var out []VertexID
	for i, v := range m.vertices {
		if v.Selected && !v.removed {
			out = append(out, VertexID(i))
		}
	}
	return out
}
