package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"github.com/pkg/profile"

	. "github.com/osuushi/convexhull"
	"github.com/osuushi/convexhull/hull"
)

// Demo of hull computation. Input on stdin should be newline separated points
// in the form "x y". The hull vertices are printed in counterclockwise order,
// and with -png, the point set and hull are rendered to a file.
func main() {
	pngPath := flag.String("png", "", "render the point set and hull to this PNG file")
	scale := flag.Float64("scale", 4, "pixels per input unit in the rendering")
	profileCPU := flag.Bool("profile", false, "write a CPU profile")
	flag.Parse()

	if *profileCPU {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	points := readPoints(os.Stdin)
	fmt.Printf("Read %d points\n", len(points))

	hullPts, err := ConvexHull(points)
	if err != nil {
		log.Fatalf("Could not compute hull: %v", err)
	}

	fmt.Printf("Hull has %d vertices:\n", len(hullPts))
	for _, p := range hullPts {
		fmt.Printf("%g %g\n", p.X, p.Y)
	}

	if *pngPath != "" && len(points) > 0 {
		render(*pngPath, *scale, points, hullPts)
	}
}

func readPoints(in *os.File) []*Point {
	points := []*Point{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		point := parsePoint(line)
		points = append(points, &point)
	}
	return points
}

func parsePoint(line string) Point {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		log.Fatalf("Invalid point line %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		log.Fatalf("Invalid x value %q: %v", parts[0], err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		log.Fatalf("Invalid y value %q: %v", parts[1], err)
	}
	return Point{X: x, Y: y}
}

func render(path string, scale float64, points, hullPts []*Point) {
	const padding = 20

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	width := int(scale*(maxX-minX)) + padding*2
	height := int(scale*(maxY-minY)) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(padding, padding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	hull.Draw(c, points, hullPts)

	if err := c.SavePNG(path); err != nil {
		log.Fatalf("Could not save %q: %v", path, err)
	}
}
