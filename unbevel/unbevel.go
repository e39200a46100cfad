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


// Package unbevel reverses a bevel on an edge mesh.
//
// The user selects each side of a beveled strip as a chain of edges (a
// "ring") running from one supporting edge of the bevel, across the bevel
// profile, to the other supporting edge. Unbevel finds those rings,
// intersects the two supporting edges of each ring and moves the profile
// vertices onto the intersection, restoring the sharp corner. Coincident
// vertices are then welded by the host.
package unbevel

import (
	"log/slog"

	"github.com/meshtools/unbevel/mesh"
)

// Host is the editable mesh Unbevel operates on. *mesh.Mesh implements it.
type Host interface {
	Geometry
	// SelectedEdges returns the edges currently selected.
	SelectedEdges() []mesh.EdgeID
	// SelectedVertices returns the vertices currently selected.
	SelectedVertices() []mesh.VertexID
	// MergeByDistance welds vertices of verts closer than dist and returns
	// how many were removed.
	MergeByDistance(verts []mesh.VertexID, dist float64) int
}

var _ Host = (*mesh.Mesh)(nil)

// Unbevel collapses every ring of the host's edge selection.
//
// If the selection cannot be split into rings, the error is returned and
// the mesh is not modified. Otherwise each ring is collapsed on its own;
// rings that cannot be collapsed are skipped and counted in the report,
// and the selected vertices are merged once at the end.
func Unbevel(h Host, opts ...Option) (Report, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := Logger()

	sel := NewSelection(h.SelectedEdges()...)
	verts := h.SelectedVertices()

	rings, err := ExtractRings(h, sel)
	if err != nil {
		log.Debug("unbevel: extraction failed", slog.Int("edges", sel.Len()), slog.Any("err", err))
		return Report{}, err
	}

	var report Report
	if unreached := Unreached(sel, rings); len(unreached) > 0 {
		report.Unreached = len(unreached)
		log.Warn("unbevel: selected edges not on any ring", slog.Any("edges", unreached))
	}

	for i, ring := range rings {
		out := CollapseRing(h, ring, sel, o.keepSupport)
		report.Add(out)
		log.Debug("unbevel: ring",
			slog.Int("ring", i),
			slog.Int("edges", len(ring)),
			slog.String("result", out.Err.String()),
			slog.Int("moved", len(out.Moved)))
	}

	if o.mergeDistance >= 0 {
		report.Merged = h.MergeByDistance(verts, o.mergeDistance)
	}

	if report.HasErrors() {
		log.Warn(report.Warning(),
			slog.Int("parallel_ends", report.ParallelEnds),
			slog.Int("too_short", report.TooShort),
			slog.Int("malformed_ends", report.MalformedEnds))
	}
	log.Info("unbevel: done",
		slog.Int("rings", report.Rings),
		slog.Int("collapsed", report.Collapsed),
		slog.Int("merged", report.Merged))
	return report, nil
}
