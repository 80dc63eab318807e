// Command jumptable prints how high and how long the player jumps for each
// hold duration, using the tuning in prefabs/player.yaml.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"text/tabwriter"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/prefabs"
)

type arc struct {
	holdSteps int
	peak      float64
	airtime   float64
	distance  float64
}

// simulate jumps off an endless floor while holding jump for holdSteps
// ticks and running right when run is set.
func simulate(spec *prefabs.PlayerSpec, holdSteps int, run bool) arc {
	floor := obj.NewTransform(-1e6, 0, 2e6, 16)
	t := obj.NewTransform(0, -spec.Collider.Height, spec.Collider.Width, spec.Collider.Height)
	b := obj.NewBody(t, spec.Body)
	b.OnGround = true
	if run {
		b.Run()
		b.Velocity.X = b.RunSpeed
		b.SetForce(1, 0)
	}

	start := t.Y()
	top := start
	dt := common.FixedDelta
	steps := 0
	for i := range 10 * common.TPS {
		if i < holdSteps {
			b.Jump()
		} else {
			b.ReleaseJump()
		}
		b.Update(dt)
		b.Integrate(dt)
		b.CollideWith(floor)
		top = math.Min(top, t.Y())
		steps++
		if i > 0 && b.OnGround {
			break
		}
	}
	return arc{
		holdSteps: holdSteps,
		peak:      start - top,
		airtime:   float64(steps) * dt,
		distance:  t.X(),
	}
}

func main() {
	run := flag.Bool("run", false, "take off at run speed")
	step := flag.Int("step", 3, "hold steps between rows")
	flag.Parse()

	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatal(err)
	}
	if err := spec.Body.Validate(); err != nil {
		log.Fatal(err)
	}
	if *step < 1 {
		*step = 1
	}

	maxHold := int(math.Ceil(spec.Body.JumpMaxDuration/common.FixedDelta)) + 1
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "hold\tseconds\tpeak px\ttiles\tairtime s\tdistance px")
	for hold := 1; hold <= maxHold+*step; hold += *step {
		a := simulate(spec, hold, *run)
		fmt.Fprintf(w, "%d\t%.3f\t%.1f\t%.2f\t%.3f\t%.1f\n",
			a.holdSteps, float64(a.holdSteps)*common.FixedDelta,
			a.peak, a.peak/common.TileSize, a.airtime, a.distance)
	}
	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}
}
