package translator

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/reactor-lang/reactorc/internal/reactor"
)

// TestTranslatorSnapshotTickTrace runs a handful of programs to
// completion and snapshots their per-tick (update, value) trace.
func TestTranslatorSnapshotTickTrace(t *testing.T) {
	cases := map[string]string{
		"arithmetic": "let main = (1 + 2) * 3",
		"chain":      "let main = chain(1, 2)",
		"generic":    "let id(x: `T) = x\nlet main = id(1) + id(2)",
	}

	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			main, trigger, _ := runProgram(t, src)
			var trace string
			for tick := 0; tick < 8; tick++ {
				trace += fmt.Sprintf("tick %d: %s %v\n", tick, main.LastUpdate(), main.Value())
				if main.LastUpdate() == reactor.CompleteEval {
					break
				}
				trigger.Fire()
			}
			snaps.MatchSnapshot(t, trace)
		})
	}
}
