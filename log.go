// Package chartcore is the data-visualization toolkit's root: it
// holds the two package-level loggers shared by every subpackage and
// nothing else. Scales, axes, color spaces, shape generators, force
// simulation, hierarchy layouts, geo projections, interaction math,
// and the data pipeline all live in their own subpackages.
package chartcore

import (
	"log"
	"os"
)

// Warn logs recoverable anomalies from composite operations: a
// streaming source dropping points past MaxPoints, a polling source
// entering backoff, a force simulation seeded with coincident nodes.
// Pure numeric functions (scale, invert, interpolate, ticks) never
// log; they return well-defined fallbacks instead.
var Warn = log.New(os.Stderr, "chartcore: warning: ", 0)

// Debug logs verbose tracing that is off by default (SetOutput to
// enable). Disabled loggers write to io.Discard.
var Debug = log.New(os.Stdout, "chartcore: debug: ", 0)

func init() {
	Debug.SetOutput(discard{})
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
