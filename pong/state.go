package pong

// Ball is the ball position (top-left corner) and its velocity in pixels
// per tick.
type Ball struct {
	Position
	XVelocity int `json:"vx"`
	YVelocity int `json:"vy"`
}

// Paddle holds a paddle's top Y coordinate and its owner's score. X is fixed
// to the left or right wall.
type Paddle struct {
	Y     int `json:"y"`
	Score int `json:"score"`
}

// GameState is the whole simulation state. It has a single owner, the
// Driver, and is mutated in place every tick.
type GameState struct {
	Ball    Ball
	Player1 Paddle
	Player2 Paddle

	// Held-key state for paddle 1.
	MoveUp   bool
	MoveDown bool

	GameOver bool
}

// NewGameState returns the starting state: ball and paddles centered, zero
// scores, playing.
func NewGameState() *GameState {
	s := &GameState{}
	s.reset()
	return s
}

// reset puts ball and paddles back at their starting positions and resumes
// play. Scores are preserved.
func (s *GameState) reset() {
	s.Ball = Ball{
		Position:  GetCenter(BallSize, BallSize),
		XVelocity: initBallXVelocity,
		YVelocity: initBallYVelocity,
	}
	s.Player1.Y = GetCenter(PaddleWidth, PaddleHeight).Y
	s.Player2.Y = GetCenter(PaddleWidth, PaddleHeight).Y
	s.MoveUp = false
	s.MoveDown = false
	s.GameOver = false
}

// Phase reports whether the game is being played or frozen after a point.
func (s *GameState) Phase() Phase {
	if s.GameOver {
		return GameOverState
	}
	return PlayState
}
