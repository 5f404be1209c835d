// Profiling:
// go build ./profile/churn
// go tool pprof -http=":8000" -nodefraction=0.001 ./churn mem.pprof
//
// BREADTH_CONFIG may point at a YAML store config.

package main

import (
	"log"
	"os"

	"github.com/edwinsyarief/breadth"
	"github.com/edwinsyarief/breadth/wide"
	"github.com/pkg/profile"
)

func main() {
	rounds := 50
	iters := 10000
	entities := 1000
	opts := loadOptions()
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities, opts)
	p.Stop()
}

func loadOptions() []breadth.Option {
	path := os.Getenv("BREADTH_CONFIG")
	if path == "" {
		return nil
	}
	c, err := breadth.LoadConfig(path)
	if err != nil {
		log.Fatal(err)
	}
	return c.Options()
}

func run(rounds, iters, numEntities int, opts []breadth.Option) {
	ids := make([]breadth.Index, 0, numEntities)
	for range rounds {
		s := breadth.NewTransformStore(numEntities/wide.Lanes+1, opts...)
		for range iters {
			ids = ids[:0]
			for j := range numEntities {
				v := wide.NewVec3(float32(j), 0, 0)
				ids = append(ids, s.Push(wide.Identity(), v, wide.Vec3{}))
			}
			s.Calculate(1.0 / 60)
			for _, idx := range ids {
				s.Release(idx)
			}
		}
	}
}
