package game

// Player is a seat at the table
type Player struct {
	Name string
}

// NewPlayer creates a player with the given name
func NewPlayer(name string) Player {
	return Player{Name: name}
}

// Game holds the two players and the turn counter
type Game struct {
	Player1     Player
	Player2     Player
	CurrentTurn int
}

// New starts a game between two players on turn 1
func New(player1, player2 string) *Game {
	return &Game{
		Player1:     NewPlayer(player1),
		Player2:     NewPlayer(player2),
		CurrentTurn: 1,
	}
}
