package repository

// CreateBoardOptions holds the parameters for a new board.
type CreateBoardOptions struct {
	ChatGreeting string
	ChatReply    string
}
