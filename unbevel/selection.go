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

import "github.com/meshtools/unbevel/mesh"

// Selection is an ordered set of selected edges. Iteration follows
// insertion order so that ring discovery is deterministic.
type Selection struct {
	edges []mesh.EdgeID
	in    map[mesh.EdgeID]struct{}
}

// NewSelection returns a selection holding edges. Repeated edges are kept
// once, at their first position.
func NewSelection(edges ...mesh.EdgeID) *Selection {
	s := &Selection{in: make(map[mesh.EdgeID]struct{}, len(edges))}
	for _, e := range edges {
		if _, ok := s.in[e]; ok {
			continue
		}
		s.in[e] = struct{}{}
		s.edges = append(s.edges, e)
	}
	return s
}

// Has reports whether e is selected.
func (s *Selection) Has(e mesh.EdgeID) bool {
	_, ok := s.in[e]
	return ok
}

// Len returns the number of selected edges.
func (s *Selection) Len() int { return len(s.edges) }

// Edges returns the selected edges in order. The slice must not be
// modified.
func (s *Selection) Edges() []mesh.EdgeID { return s.edges }
