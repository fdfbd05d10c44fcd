package coord

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// Test paths come from SVG fixtures: one polyline element per robot, in
// document order, keyed 1..n. The XY coordinates are taken as metres at
// a fixed altitude. If anything goes wrong, the loader panics; fixtures
// are trusted.
//
// Fixtures are available by name in the fixtures/ directory, sans
// extension.

//go:embed fixtures
var fixtures embed.FS

const fixtureAltitude = 1.0

func LoadFixture(name string) map[int]*Path {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polylines := rootEl.FindAll("polyline")
	if len(polylines) == 0 {
		log.Fatalf("No polylines found in fixture %q", name)
	}

	paths := make(map[int]*Path, len(polylines))
	for i, el := range polylines {
		path := NewPath()
		for _, pointString := range strings.Fields(el.Attributes["points"]) {
			coords := strings.Split(pointString, ",")
			if len(coords) != 2 {
				log.Fatalf("Invalid point string %q in fixture %q", pointString, name)
			}
			x, err := strconv.ParseFloat(coords[0], 64)
			if err != nil {
				log.Fatalf("Invalid x value %q: %v", coords[0], err)
			}
			y, err := strconv.ParseFloat(coords[1], 64)
			if err != nil {
				log.Fatalf("Invalid y value %q: %v", coords[1], err)
			}
			path.AddPose(Point{X: x, Y: y, Z: fixtureAltitude}, 0)
		}
		paths[i+1] = path
	}
	return paths
}
