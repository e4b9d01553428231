package pong

import (
	"github.com/rs/zerolog"
)

// Simulator advances a GameState by one fixed step.
type Simulator struct {
	log        zerolog.Logger
	restartKey string
}

// NewSimulator creates a simulator that reports points on log. restartKey
// is the key label shown in the win notification.
func NewSimulator(log zerolog.Logger, restartKey string) *Simulator {
	return &Simulator{
		log:        log,
		restartKey: restartKey,
	}
}

// Step moves the ball, bounces it off walls and paddles, moves both paddles
// and checks both goal lines. It does nothing once the game is over.
func (sim *Simulator) Step(s *GameState) {
	if s.GameOver {
		return
	}

	ball := &s.Ball
	ball.X += ball.XVelocity
	ball.Y += ball.YVelocity

	// No position correction, the ball may overlap the wall for one step.
	if ball.Y <= 0 || ball.Y >= ScreenHeight-BallSize {
		ball.YVelocity = -ball.YVelocity
	}

	// Only the ball's top edge is checked against the paddle span and a
	// single X threshold, so a fast ball can tunnel past a paddle.
	if ball.X <= PaddleWidth && ball.Y >= s.Player1.Y && ball.Y <= s.Player1.Y+PaddleHeight {
		ball.XVelocity = -ball.XVelocity
	}
	if ball.X >= ScreenWidth-PaddleWidth-BallSize && ball.Y >= s.Player2.Y && ball.Y <= s.Player2.Y+PaddleHeight {
		ball.XVelocity = -ball.XVelocity
	}

	// Paddles are not clamped to the screen.
	if s.MoveUp {
		s.Player1.Y -= PaddleSpeed
	}
	if s.MoveDown {
		s.Player1.Y += PaddleSpeed
	}
	s.Player2.Y = ball.Y - PaddleHeight/2

	// Both goal lines are checked every step.
	if ball.X <= 0 {
		s.Player2.Score++
		s.GameOver = true
		sim.announce(2, s)
	}
	if ball.X >= ScreenWidth-BallSize {
		s.Player1.Score++
		s.GameOver = true
		sim.announce(1, s)
	}
}

func (sim *Simulator) announce(winner int, s *GameState) {
	sim.log.Info().
		Int("player1", s.Player1.Score).
		Int("player2", s.Player2.Score).
		Msgf("Player %d wins! Press '%s' to restart.", winner, sim.restartKey)
}
