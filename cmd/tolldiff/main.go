// README: Offline tool; diffs a tolled route against its toll-free
// alternative and prints where they split and rejoin. Useful for placing
// entry and exit points when mapping a new express-lane segment.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/twpayne/go-polyline"
)

type routeStep struct {
	Polyline     string `json:"polyline"`
	Instructions string `json:"instructions"`
}

func main() {
	tolledPath := flag.String("tolled", "", "JSON file with the tolled route's steps")
	tollFreePath := flag.String("tollfree", "", "JSON file with the toll-free route's steps")
	flag.Parse()

	if *tolledPath == "" || *tollFreePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	tolled, err := loadSteps(*tolledPath)
	if err != nil {
		log.Fatal(err)
	}
	tollFree, err := loadSteps(*tollFreePath)
	if err != nil {
		log.Fatal(err)
	}

	split, ok := firstDivergence(tolled, tollFree)
	if !ok {
		fmt.Println("routes are identical")
		return
	}
	rejoin := convergenceAfter(tolled, tollFree, split)

	fmt.Printf("routes diverge at step %d: %s\n", split, tolled[split].Instructions)
	printEndpoints("divergence", tolled[split].Polyline)

	if rejoin < 0 {
		fmt.Println("routes never converge again")
		return
	}
	fmt.Printf("routes converge at step %d: %s\n", rejoin, tolled[rejoin].Instructions)
	printEndpoints("convergence", tolled[rejoin].Polyline)
}

func loadSteps(path string) ([]routeStep, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var steps []routeStep
	if err := json.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return steps, nil
}

// firstDivergence returns the first step index where the two routes stop
// sharing geometry.
func firstDivergence(a, b []routeStep) (int, bool) {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].Polyline != b[i].Polyline {
			return i, true
		}
	}
	if len(a) != len(b) {
		return min(len(a), len(b)), true
	}
	return 0, false
}

// convergenceAfter finds the first step at or after the split whose geometry
// appears in both routes again. Steps are compared by polyline, so a lane
// change that rejoins the same road still matches.
func convergenceAfter(a, b []routeStep, split int) int {
	seen := make(map[string]bool, len(b))
	for _, step := range b[min(split, len(b)):] {
		seen[step.Polyline] = true
	}
	for i := split; i < len(a); i++ {
		if seen[a[i].Polyline] {
			return i
		}
	}
	return -1
}

func printEndpoints(label, encoded string) {
	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil || len(coords) == 0 {
		fmt.Printf("  %s geometry unavailable\n", label)
		return
	}
	first, last := coords[0], coords[len(coords)-1]
	fmt.Printf("  %s between %.6f,%.6f and %.6f,%.6f\n", label, first[0], first[1], last[0], last[1])
}
