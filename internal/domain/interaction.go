package domain

import "time"

// Favourite relates a user to a liked file. One per user and file.
type Favourite struct {
	FavouriteID int `json:"favourite_id,omitempty"`
	FileID      int `json:"file_id"`
	UserID      int `json:"user_id"`
}

type Comment struct {
	CommentID int       `json:"comment_id"`
	FileID    int       `json:"file_id"`
	UserID    int       `json:"user_id"`
	Comment   string    `json:"comment"`
	TimeAdded time.Time `json:"time_added,omitempty"`
}

type NewComment struct {
	FileID  int    `json:"file_id"`
	Comment string `json:"comment"`
}

// SeenMedia records a feed item the notifier has already handled.
type SeenMedia struct {
	FileID    int
	UserID    int
	Title     string
	CreatedAt time.Time
}
