package model

const (
	DefaultGamesPage  = 1
	DefaultGamesLimit = 10
	MaxGamesLimit     = 100
)

type Game struct {
	ID   int64
	Name string
}

// GameQuery selects one page of the games listing. Page is 1-based.
type GameQuery struct {
	// Case-insensitive substring of the name; empty matches every game.
	Search string
	Page   int
	Limit  int
}

// Offset is the number of rows skipped before the page.
func (q GameQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

type GamePage struct {
	Games []Game
	// Number of games matching Search across all pages.
	Total int64
	Page  int
	Limit int
}
