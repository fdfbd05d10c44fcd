// Command aircoord coordinates robot paths read from stdin and prints
// the timed trajectories. Input is newline separated waypoints in the
// form "x y z", with each robot's path separated by an extra newline.
// Robots are numbered 1..n in input order.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/hmeira/aircoord/coord"
	"github.com/hmeira/aircoord/dbg"
)

var (
	maxVel = kingpin.Flag("max-vel", "Velocity cap in m/s.").Default("0.5").Float64()
	margin = kingpin.Flag("margin", "Safety margin in metres.").Default("0.2").Float64()
	stub   = kingpin.Flag("stub", "Bypass coordination, pass paths through.").Bool()
	draw   = kingpin.Flag("draw", "Render the first pair's configuration space.").Bool()
	drawTo = kingpin.Flag("draw-to", "PNG file for --draw.").Default("/tmp/aircoord_delta.png").String()
)

func main() {
	kingpin.Parse()

	paths := readPaths(os.Stdin)
	fmt.Printf("Read %d paths\n", len(paths))

	c := coord.NewCoordinator()
	c.MaxVel = *maxVel
	c.Margin = *margin

	var timed map[int]*coord.Path
	if *stub {
		timed = coord.CoordinateStub(paths)
	} else {
		var err error
		timed, err = c.Coordinate(paths)
		if err != nil {
			log.Fatalf("coordination failed: %v", err)
		}
	}

	for id := 1; id <= len(timed); id++ {
		path := timed[id]
		fmt.Printf("%s %s (%d keyframes)\n",
			aurora.Cyan("robot"), aurora.Bold(dbg.Name(id)), path.Len())
		for i, pose := range path.Poses {
			fmt.Printf("  t=%-8.3f %g %g %g\n", path.Times[i], pose.X, pose.Y, pose.Z)
		}
	}

	if *draw && len(paths) >= 2 && !*stub {
		if err := c.LastDelta().DrawConfigSpace(1, 2,
			paths[1].Length(), paths[2].Length(), 100, *drawTo); err != nil {
			log.Fatalf("drawing configuration space: %v", err)
		}
	}
}

func readPaths(in *os.File) map[int]*coord.Path {
	paths := map[int]*coord.Path{}
	scanner := bufio.NewScanner(in)
	path := coord.NewPath()
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// A blank line after any waypoints ends the current path.
		if line == "" {
			if path.Len() > 0 {
				paths[len(paths)+1] = path
				path = coord.NewPath()
			}
			continue
		}

		path.AddPose(parsePoint(line), 0)
	}
	if path.Len() > 0 {
		paths[len(paths)+1] = path
	}
	return paths
}

func parsePoint(line string) coord.Point {
	parts := strings.Fields(line)
	if len(parts) < 3 {
		log.Fatalf("invalid waypoint %q, want \"x y z\"", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		log.Fatalf("invalid x value %q: %v", parts[0], err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		log.Fatalf("invalid y value %q: %v", parts[1], err)
	}
	z, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		log.Fatalf("invalid z value %q: %v", parts[2], err)
	}
	return coord.Point{X: x, Y: y, Z: z}
}
