package engine

import (
	"math"

	"slipstick/internal/format"
)

// Procedure computes a formula's scalar result from a resolved context and
// returns the substituted derivation steps it wants in the trace.
// One procedure per formula id; registration happens in init() across the
// per-discipline files.
type Procedure func(c Context) (float64, []string)

var procedures = make(map[string]Procedure)

func register(id string, p Procedure) {
	if _, dup := procedures[id]; dup {
		panic("engine: duplicate procedure for " + id)
	}
	procedures[id] = p
}

// Registered reports whether a dedicated procedure exists for the id.
// Unregistered ids evaluate via the fallback path.
func Registered(id string) bool {
	_, ok := procedures[id]
	return ok
}

// RegisteredIDs returns all procedure ids, for catalog consistency checks.
func RegisteredIDs() []string {
	ids := make([]string, 0, len(procedures))
	for id := range procedures {
		ids = append(ids, id)
	}
	return ids
}

// num is the shared step/display rendering for numbers.
func num(v float64) string { return format.Number(v) }

// radians converts a boundary-degrees angle for use with math trig.
// Angles are degrees at the interface everywhere in the catalog.
func radians(deg float64) float64 { return deg * math.Pi / 180 }
