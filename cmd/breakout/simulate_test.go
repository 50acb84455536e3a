package main

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/game"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

func newSimGame(seed int64) *game.Game {
	cfg := config.DefaultConfig()
	return game.New(cfg, tui.BuildSheets(cfg), seed)
}

func TestParseScript(t *testing.T) {
	steps, err := parseScript("right:20, none:10,LEFT:5,both:1")
	if err != nil {
		t.Fatalf("parseScript() error = %v", err)
	}
	if len(steps) != 4 {
		t.Fatalf("got %d steps, expected 4", len(steps))
	}

	if !steps[0].input.Held(core.DirRight) || steps[0].input.Held(core.DirLeft) || steps[0].ticks != 20 {
		t.Errorf("step 0 = %+v", steps[0])
	}
	if steps[1].input.Held(core.DirRight) || steps[1].input.Held(core.DirLeft) {
		t.Errorf("step 1 should hold nothing")
	}
	if !steps[2].input.Held(core.DirLeft) || steps[2].ticks != 5 {
		t.Errorf("step 2 = %+v", steps[2])
	}
	if !steps[3].input.Held(core.DirLeft) || !steps[3].input.Held(core.DirRight) {
		t.Errorf("step 3 should hold both")
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"missing ticks", "right"},
		{"zero ticks", "right:0"},
		{"bad ticks", "right:x"},
		{"unknown keys", "up:10"},
		{"empty step", "right:10,,left:5"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseScript(tc.script); err == nil {
				t.Errorf("parseScript(%q) should fail", tc.script)
			}
		})
	}
}

func TestParseScriptEmpty(t *testing.T) {
	steps, err := parseScript("  ")
	if err != nil || steps != nil {
		t.Errorf("parseScript(blank) = %v, %v", steps, err)
	}
}

func TestInputAtRepeats(t *testing.T) {
	steps, err := parseScript("right:2,left:1")
	if err != nil {
		t.Fatal(err)
	}

	want := []core.Direction{core.DirRight, core.DirRight, core.DirLeft, core.DirRight, core.DirRight, core.DirLeft}
	for i, dir := range want {
		if !inputAt(steps, i).Held(dir) {
			t.Errorf("tick %d: expected %v held", i, dir)
		}
	}

	if in := inputAt(nil, 5); in.Held(core.DirLeft) || in.Held(core.DirRight) {
		t.Error("no script should hold nothing")
	}
}

func TestSimulateWithoutInputLosesBall(t *testing.T) {
	res := simulate(newSimGame(1), 600, nil, false)

	if res.Ticks != 600 {
		t.Errorf("Ticks = %d, expected 600", res.Ticks)
	}
	if res.Sessions < 2 {
		t.Errorf("Sessions = %d, expected the idle paddle to miss", res.Sessions)
	}
	if res.Longest <= 0 || res.Longest >= 600 {
		t.Errorf("Longest = %d, expected a partial run", res.Longest)
	}
}

func TestSimulateAutopilotKeepsBall(t *testing.T) {
	res := simulate(newSimGame(1), 3000, nil, true)

	if res.Sessions != 1 {
		t.Errorf("Sessions = %d, expected the autopilot never to miss", res.Sessions)
	}
	if res.Destroyed == 0 {
		t.Error("autopilot run should destroy bricks")
	}
	if res.Remaining != 78-res.Destroyed {
		t.Errorf("Remaining = %d, expected %d", res.Remaining, 78-res.Destroyed)
	}
	if res.Longest != 3000 {
		t.Errorf("Longest = %d, expected 3000", res.Longest)
	}
}

func TestSimulateDeterministic(t *testing.T) {
	steps, err := parseScript("right:15,none:5,left:25")
	if err != nil {
		t.Fatal(err)
	}

	a := simulate(newSimGame(9), 2000, steps, false)
	b := simulate(newSimGame(9), 2000, steps, false)
	if a != b {
		t.Errorf("runs differ: %+v vs %+v", a, b)
	}
}

func TestAutopilot(t *testing.T) {
	s := game.State{
		Ball:   game.Ball{X: 300},
		Paddle: game.Paddle{X: 100, Width: 50, Speed: 8},
	}
	if in := autopilot(s); !in.Held(core.DirRight) {
		t.Error("ball to the right should hold right")
	}

	s.Ball.X = 50
	if in := autopilot(s); !in.Held(core.DirLeft) {
		t.Error("ball to the left should hold left")
	}

	s.Ball.X = 127
	if in := autopilot(s); in.Held(core.DirLeft) || in.Held(core.DirRight) {
		t.Error("ball above the paddle center should hold nothing")
	}
}

func TestLoadConfigOverridesFPS(t *testing.T) {
	flagFPS = 120
	t.Cleanup(func() { flagFPS = 0 })

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Timing.TickRate != 120 {
		t.Errorf("TickRate = %d, expected 120", cfg.Timing.TickRate)
	}
	if cfg.Terminal.PollRate < 120 {
		t.Errorf("PollRate = %d, should keep up with the tick rate", cfg.Terminal.PollRate)
	}
}

func TestLoadConfigRejectsPreset(t *testing.T) {
	flagPreset = "nightmare"
	t.Cleanup(func() { flagPreset = "" })

	if _, err := loadConfig(); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestSimSeed(t *testing.T) {
	if got := simSeed(42); got != 42 {
		t.Errorf("simSeed(42) = %d, expected 42", got)
	}
	if got := simSeed(0); got == 0 {
		t.Error("simSeed(0) should pick a time based seed")
	}
}
