package golf

import (
	"math"

	"github.com/vovakirdan/twin-golf/internal/core"
)

// Simulate advances one board by dt milliseconds.
// Exactly one of capture, sink animation, rolling or rest applies per tick.
func Simulate(b *Board, dt float64, sink CueSink) {
	ball := &b.Ball

	switch {
	case !b.Done && ball.Pos.Dist(b.Hole) < CaptureRadius:
		b.Done = true
		ball.Speed = 0
		ball.Vel = core.Vec2{}
		sink.Cue(CueBallSunk)

	case b.Done && b.BallVisible():
		shrink := dt / sinkShrinkRate
		ball.Scale = ball.Scale.Sub(core.V(shrink, shrink))
		ball.Pos = ball.Pos.Add(b.HoleCenter().Sub(ball.Pos).Scale(sinkApproach * dt))

	case !b.Done && ball.Speed > Friction:
		roll(b, dt)

	default:
		ball.Vel = core.Vec2{}
		ball.Speed = 0
	}
}

// roll integrates one tick of motion. Velocity is never integrated on its
// own: it is rebuilt from the launch vector scaled by the remaining speed,
// with each axis signed by the board's rebound direction.
func roll(b *Board, dt float64) {
	ball := &b.Ball

	ball.Pos = ball.Pos.Add(ball.Vel.Scale(dt))
	ball.Speed -= Friction * dt

	v := ball.Launch.Scale(ball.Speed / ball.LaunchSpeed)
	ball.Vel = core.V(math.Abs(v.X)*float64(b.DirX), math.Abs(v.Y)*float64(b.DirY))

	reflectWalls(b)
	reflectObstacles(b, dt)
}

// reflectWalls pushes the ball back inside the board. The sign is forced,
// so a ball already heading inward keeps its direction.
func reflectWalls(b *Board) {
	ball := &b.Ball

	if ball.Pos.X < 0 {
		ball.Vel.X = math.Abs(ball.Vel.X)
		b.DirX = 1
	} else if ball.Pos.X >= core.BoardW-BallSize {
		ball.Vel.X = -math.Abs(ball.Vel.X)
		b.DirX = -1
	}

	if ball.Pos.Y < 0 {
		ball.Vel.Y = math.Abs(ball.Vel.Y)
		b.DirY = 1
	} else if ball.Pos.Y >= core.BoardH-BallSize {
		ball.Vel.Y = -math.Abs(ball.Vel.Y)
		b.DirY = -1
	}
}

// reflectObstacles tests the predicted position against every obstacle, one
// axis at a time, in list order. Each test uses the velocity left by the
// previous obstacle. A ball that has already penetrated a block hits it
// again after flipping, and the second flip cancels the first.
func reflectObstacles(b *Board, dt float64) {
	ball := &b.Ball

	for _, o := range b.Obstacles {
		box := o.Box()

		nextX := core.NewBox(core.V(ball.Pos.X+ball.Vel.X*dt, ball.Pos.Y), BallSize, BallSize)
		if nextX.Overlaps(box) {
			ball.Vel.X = -ball.Vel.X
			b.DirX = -b.DirX
		}

		nextY := core.NewBox(core.V(ball.Pos.X, ball.Pos.Y+ball.Vel.Y*dt), BallSize, BallSize)
		if nextY.Overlaps(box) {
			ball.Vel.Y = -ball.Vel.Y
			b.DirY = -b.DirY
		}
	}
}
