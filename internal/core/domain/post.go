package domain

import "time"

// Post is the core aggregate for the feed. Likes and comments are embedded
// collections ordered most-recent-first. Any authenticated user may like or
// comment; deleting the post itself is restricted to its author.
type Post struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"user" bson:"user"`
	Text      string    `json:"text" bson:"text"`
	Name      string    `json:"name" bson:"name"`
	AvatarURL string    `json:"avatar" bson:"avatar"`
	Likes     []Like    `json:"likes" bson:"likes"`
	Comments  []Comment `json:"comments" bson:"comments"`
	CreatedAt time.Time `json:"date" bson:"date"`
}

// Like records one user's like. There is no separate like id; uniqueness is
// keyed on the liking user.
type Like struct {
	UserID string `json:"user" bson:"user"`
}

// EntryID keys a like by the liking user's id.
func (l Like) EntryID() string { return l.UserID }

// Comment is an embedded reply on a post with its own server-assigned id,
// independent of the commenter's user id.
type Comment struct {
	ID        string    `json:"id" bson:"id"`
	UserID    string    `json:"user" bson:"user"`
	Name      string    `json:"name" bson:"name"`
	AvatarURL string    `json:"avatar" bson:"avatar"`
	Text      string    `json:"text" bson:"text"`
	CreatedAt time.Time `json:"date" bson:"date"`
}

func (c Comment) EntryID() string { return c.ID }
