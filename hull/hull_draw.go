package hull

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

const dbgDrawPadding = 20

// Draw renders the point set and its hull outline onto the context. The
// context is expected to already be scaled and translated so the point
// coordinates land where the caller wants them.
func Draw(c *gg.Context, points, hullPts []*Point) {
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 2)
	}
	c.SetRGB(0.7, 0.7, 0.7)
	c.Fill()

	if len(hullPts) == 0 {
		return
	}
	c.MoveTo(hullPts[0].X, hullPts[0].Y)
	for _, p := range hullPts[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	c.SetRGB(0, 1, 1)
	c.SetLineWidth(2)
	c.Stroke()

	for _, p := range hullPts {
		c.DrawCircle(p.X, p.Y, 3)
	}
	c.SetRGB(0, 1, 0)
	c.Fill()
}

// Helper to draw and print a hull in the terminal (iTerm only) for debugging.
func dbgDraw(points, hullPts []*Point, scale float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	Draw(c, points, hullPts)

	c.SavePNG("/tmp/hull.png")
	imgcat.CatFile("/tmp/hull.png", os.Stdout)
}
