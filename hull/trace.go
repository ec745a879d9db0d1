package hull

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/convexhull/dbg"
)

// Flip this on to watch the doubling search from the terminal. Group hulls
// get stable readable names within an attempt, colored by how degenerate
// they are.
const chansTrace = false

func traceAttempt(t, m int, hulls [][]*Point) {
	if !chansTrace {
		return
	}
	fmt.Printf("attempt %s: m = %d, %d group hulls\n", aurora.Yellow(fmt.Sprintf("t=%d", t)), m, len(hulls))
	for _, hullPts := range hulls {
		fmt.Printf("  %s: %d vertices\n", hullDbgName(hullPts), len(hullPts))
	}
}

func hullDbgName(hullPts []*Point) string {
	// The first vertex pointer identifies the hull; the slice itself can't be
	// a map key.
	name := dbg.Name(hullPts[0])
	if len(hullPts) < 3 { // Degenerate: a point or a segment, not a polygon
		return aurora.Red(name).String()
	}
	return aurora.Green(name).String()
}
