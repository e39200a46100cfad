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
	"slices"

	"github.com/golang/geo/r3"
)

// weld records that vertex from is merged into vertex to.
type weld struct {
	from, to VertexID
}

// MergeByDistance welds together vertices of verts that lie within dist of
// each other and returns the number of vertices removed.
//
// Vertices are visited in the given order. Each one either joins the first
// existing site within dist or becomes a new site, so the result is
// deterministic but not optimal for long chains of nearly coincident
// points. Edges of a welded vertex are re-pointed to its site; edges that
// collapse to a point are removed, and edges that duplicate an existing
// edge are merged into it.
func (m *Mesh) MergeByDistance(verts []VertexID, dist float64) int {
	limit := dist * dist

	// Sites in SoA layout for the distance kernel.
	var xs, ys, zs []float64
	var sites []VertexID
	var distSq []float64
	var welds []weld

	seen := make(map[VertexID]bool, len(verts))
	for _, v := range verts {
		if !m.live(v) || seen[v] {
			continue
		}
		seen[v] = true
		p := m.vertices[v].Pos

		found := false
		if len(sites) > 0 {
			distSq = slices.Grow(distSq[:0], len(sites))[:len(sites)]
			BaseDistanceSqBatch(p.X, p.Y, p.Z, xs, ys, zs, distSq)
			for i, d := range distSq {
				if d <= limit {
					welds = append(welds, weld{from: v, to: sites[i]})
					found = true
					break
				}
			}
		}
		if !found {
			sites = append(sites, v)
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
			zs = append(zs, p.Z)
		}
	}

	for _, w := range welds {
		m.weldVertex(w.from, w.to)
	}
	return len(welds)
}

// weldVertex moves every edge of from onto to and removes from.
func (m *Mesh) weldVertex(from, to VertexID) {
	if m.vertices[from].Selected {
		m.vertices[to].Selected = true
	}
	for _, e := range m.vertexEdges[from] {
		edge := &m.edges[e]
		other := edge.OtherVertex(from)

		if other == to {
			// Collapsed to a point.
			edge.removed = true
			m.vertexEdges[to] = removeEdgeID(m.vertexEdges[to], e)
			continue
		}
		if dup, ok := m.EdgeBetween(to, other); ok {
			if edge.Selected {
				m.edges[dup].Selected = true
			}
			edge.removed = true
			m.vertexEdges[other] = removeEdgeID(m.vertexEdges[other], e)
			continue
		}

		if edge.V0 == from {
			edge.V0 = to
		} else {
			edge.V1 = to
		}
		m.vertexEdges[to] = append(m.vertexEdges[to], e)
	}
	m.vertexEdges[from] = nil
	m.vertices[from].removed = true
	m.vertices[from].Selected = false
}

func removeEdgeID(list []EdgeID, e EdgeID) []EdgeID {
	if i := slices.Index(list, e); i >= 0 {
		return slices.Delete(list, i, i+1)
	}
	return list
}

// Bounds returns the axis-aligned bounding box of the live vertices. It
// returns two zero vectors if there are none.
func (m *Mesh) Bounds() (lo, hi r3.Vector) {
	var xs, ys, zs []float64
	for _, v := range m.vertices {
		if v.removed {
			continue
		}
		xs = append(xs, v.Pos.X)
		ys = append(ys, v.Pos.Y)
		zs = append(zs, v.Pos.Z)
	}
	l, h := BaseBounds3(xs, ys, zs)
	return r3.Vector{X: l[0], Y: l[1], Z: l[2]}, r3.Vector{X: h[0], Y: h[1], Z: h[2]}
}
