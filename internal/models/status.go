package models

// GameStatus is the collection state of a game. The column is a plain
// string in the store; the closed set is enforced at the form boundary.
type GameStatus string

const (
	StatusOwned     GameStatus = "owned"
	StatusCompleted GameStatus = "completed"
	StatusBacklog   GameStatus = "backlog"
	StatusWishlist  GameStatus = "wishlist"
)

// GameStatuses returns every valid status in display order.
func GameStatuses() []GameStatus {
	return []GameStatus{StatusOwned, StatusCompleted, StatusBacklog, StatusWishlist}
}

// Valid reports whether s is one of the known statuses.
func (s GameStatus) Valid() bool {
	switch s {
	case StatusOwned, StatusCompleted, StatusBacklog, StatusWishlist:
		return true
	}
	return false
}
