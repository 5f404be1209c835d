// Profiling:
// go build ./profile/calculate
// go tool pprof -http=":8000" -nodefraction=0.001 ./calculate cpu.pprof
//
// BREADTH_CONFIG may point at a YAML store config.

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/edwinsyarief/breadth"
	"github.com/edwinsyarief/breadth/wide"
	"github.com/pkg/profile"
)

func main() {
	rounds := 50
	iters := 1000
	entities := 100000
	capacity := entities/wide.Lanes + 1
	var opts []breadth.Option
	if path := os.Getenv("BREADTH_CONFIG"); path != "" {
		c, err := breadth.LoadConfig(path)
		if err != nil {
			log.Fatal(err)
		}
		opts = c.Options()
		if c.Capacity > 0 {
			capacity = c.Capacity
		}
	}
	fmt.Println("isa:", wide.Capability())

	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	stats := run(rounds, iters, entities, capacity, opts)
	p.Stop()
	fmt.Printf("%+v\n", stats)
}

func run(rounds, iters, numEntities, capacity int, opts []breadth.Option) breadth.Stats {
	var stats breadth.Stats
	for range rounds {
		s := breadth.NewTransformStore(capacity, opts...)
		for j := range numEntities {
			f := float32(j)
			s.Push(wide.Translation(wide.NewVec3(f, 0, 0)), wide.NewVec3(1, f*0.01, 0), wide.NewVec3(0, -9.8, 0))
		}
		for range iters {
			s.Calculate(1.0 / 60)
		}
		stats = s.Stats()
	}
	return stats
}
