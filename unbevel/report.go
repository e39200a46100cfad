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

import "fmt"

// Report summarizes an Unbevel run. Per-ring failures are counted here and
// do not fail the operation.
type Report struct {
	Rings     int // rings found
	Collapsed int // rings collapsed
	Moved     int // vertices moved, summed over rings

	ParallelEnds  int // rings whose end edges are parallel
	TooShort      int // rings with fewer than three edges
	MalformedEnds int // rings without exactly two end edges

	Unreached int // selected edges not on any ring
	Merged    int // vertices removed by the final merge
}

// Add folds the outcome of one ring into r.
func (r *Report) Add(o RingOutcome) {
	r.Rings++
	switch o.Err {
	case RingOK:
		r.Collapsed++
		r.Moved += len(o.Moved)
	case RingParallelEnds:
		r.ParallelEnds++
	case RingTooShort:
		r.TooShort++
	case RingMalformedEnds:
		r.MalformedEnds++
	}
}

// HasErrors reports whether any ring was skipped.
func (r Report) HasErrors() bool {
	return r.ParallelEnds+r.TooShort+r.MalformedEnds > 0
}

// Warning describes the skipped rings. It returns "" if there are none.
func (r Report) Warning() string {
	if !r.HasErrors() {
		return ""
	}
	msg := fmt.Sprintf("unbevel can't be done on a path with parallel ends: %d\n"+
		"unbevel can't be done on a path with less than 3 edges: %d\n",
		r.ParallelEnds, r.TooShort)
	if r.MalformedEnds > 0 {
		msg += fmt.Sprintf("unbevel can't find the two ends of a path: %d\n", r.MalformedEnds)
	}
	return msg
}
