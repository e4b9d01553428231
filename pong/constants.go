package pong

const (
	ScreenWidth  = 640
	ScreenHeight = 480

	PaddleWidth  = 10
	PaddleHeight = 60
	BallSize     = 10
	PaddleSpeed  = 5
)

const (
	initBallXVelocity = 5
	initBallYVelocity = 3
)

// Score label anchors, top-left corner of each label.
const (
	player1LabelX = 10
	player2LabelX = ScreenWidth - 150
	labelY        = 10
)
