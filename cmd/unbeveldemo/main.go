// Command unbeveldemo builds a beveled strip, selects each side of the
// bevel and unbevels it back to a sharp corner.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/golang/geo/r3"

	"github.com/meshtools/unbevel/mesh"
	"github.com/meshtools/unbevel/unbevel"
)

func main() {
	var (
		segments    = flag.Int("segments", 3, "bevel segments")
		radius      = flag.Float64("radius", 0.5, "bevel radius")
		sides       = flag.Int("sides", 2, "number of selected sides along the strip")
		keepSupport = flag.Bool("keep-support", false, "keep the supporting edges of the bevel")
		mergeDist   = flag.Float64("merge-dist", unbevel.DefaultMergeDistance, "weld distance after collapse, negative to disable")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *segments < 1 || *sides < 1 {
		log.Fatalf("segments and sides must be at least 1")
	}
	if *verbose {
		unbevel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	m, err := bevelStrip(*segments, *radius, *sides)
	if err != nil {
		log.Fatalf("Failed to build mesh: %v", err)
	}
	lo, hi := m.Bounds()
	log.Printf("Beveled strip: %d vertices, %d edges, bounds %v - %v\n",
		m.NumVertices(), m.NumLiveEdges(), lo, hi)

	report, err := unbevel.Unbevel(m,
		unbevel.WithKeepSupport(*keepSupport),
		unbevel.WithMergeDistance(*mergeDist))
	if err != nil {
		log.Fatalf("Unbevel failed: %v", err)
	}
	if w := report.Warning(); w != "" {
		log.Print(w)
	}

	log.Printf("Collapsed %d of %d rings, moved %d vertices, merged %d\n",
		report.Collapsed, report.Rings, report.Moved, report.Merged)
	for i := 0; i < m.NumVertices(); i++ {
		v := mesh.VertexID(i)
		if m.VertexRemoved(v) || !m.Vertex(v).Selected {
			continue
		}
		log.Printf("  v%d %v\n", v, m.Position(v))
	}
}

// bevelStrip builds a 90 degree corner beveled with the given number of
// segments, repeated along z once per side. Every side is selected from one
// supporting edge, across the profile, to the other; the edges joining
// neighbouring sides are left unselected.
func bevelStrip(segments int, radius float64, sides int) (*mesh.Mesh, error) {
	const support = 3.0

	var profile []r3.Vector
	profile = append(profile, r3.Vector{X: support})
	for i := 0; i <= segments; i++ {
		a := math.Pi / 2 * float64(i) / float64(segments)
		profile = append(profile, r3.Vector{
			X: radius - radius*math.Sin(a),
			Y: radius - radius*math.Cos(a),
		})
	}
	profile = append(profile, r3.Vector{Y: support})

	m := mesh.New()
	var prev []mesh.VertexID
	for s := 0; s < sides; s++ {
		var cur []mesh.VertexID
		for _, p := range profile {
			cur = append(cur, m.AddVertex(p.Add(r3.Vector{Z: float64(s)})))
		}
		for i := 0; i+1 < len(cur); i++ {
			e, err := m.AddEdge(cur[i], cur[i+1])
			if err != nil {
				return nil, err
			}
			m.SelectEdge(e, true)
		}
		for i := range prev {
			if _, err := m.AddEdge(prev[i], cur[i]); err != nil {
				return nil, err
			}
		}
		prev = cur
	}
	return m, nil
}
