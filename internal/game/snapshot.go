package game

import "math"

// Snapshot contains the complete game state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64
	Sessions  int
	Destroyed int
	Phase     string

	BallX, BallY   float64
	BallDX, BallDY float64
	PaddleX        float64

	// Brick states, column-major (col*rows + row = index).
	// Each brick is 2 ints: Status, Color
	BrickData []int

	// RNG state for brick colors
	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	var brickData []int
	for _, column := range g.state.Bricks {
		for _, brick := range column {
			brickData = append(brickData, int(brick.Status), brick.Color)
		}
	}

	return Snapshot{
		Tick:      uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Sessions:  g.sessions,
		Destroyed: g.destroyed,
		Phase:     g.state.Phase,
		BallX:     g.state.Ball.X,
		BallY:     g.state.Ball.Y,
		BallDX:    g.state.Ball.DX,
		BallDY:    g.state.Ball.DY,
		PaddleX:   g.state.Paddle.X,
		BrickData: brickData,
		RNGState:  g.rng.state,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Sessions)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Destroyed) //#nosec G115 -- hash computation
	for _, ch := range []byte(snap.Phase) {
		h = h*31 + uint64(ch)
	}

	for _, f := range []float64{snap.BallX, snap.BallY, snap.BallDX, snap.BallDY, snap.PaddleX} {
		h = h*31 + math.Float64bits(f)
	}

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
