package interactions

import (
	"context"
	"time"
)

// Type discriminates the three kinds of interaction a user can record on a post.
type Type string

const (
	TypeLike    Type = "like"
	TypeDislike Type = "dislike"
	TypeComment Type = "comment"
)

// IsVote reports whether the type is a like or dislike.
func (t Type) IsVote() bool {
	return t == TypeLike || t == TypeDislike
}

// UserRef is a denormalized snapshot of the acting user, copied at interaction
// time. It is never re-resolved against the user store on read.
type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Interaction is a single like, dislike, or comment on a post. Records are
// immutable once written; a new vote supersedes the old one instead of
// mutating it.
type Interaction struct {
	ID          string    `json:"id"`
	PostID      string    `json:"post_id"`
	User        UserRef   `json:"user"`
	Type        Type      `json:"type"`
	CommentBody string    `json:"comment_body,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateInteractionRequest is the input for recording a new interaction.
// CommentBody is required for comments and forbidden for votes.
type CreateInteractionRequest struct {
	PostID      string `json:"post_id"`
	Type        string `json:"type"`
	CommentBody string `json:"comment_body,omitempty"`
}

// PostInfo is the slice of post state the interaction rules depend on.
type PostInfo struct {
	ID        string
	OwnerID   string
	ExpiresAt time.Time
}

// PostSource looks up the post a user is interacting with. Implemented by the
// posts package; declared here so this package stays free of a posts import.
type PostSource interface {
	// GetPostInfo returns ErrPostNotFound when no post exists with the given id.
	GetPostInfo(ctx context.Context, postID string) (*PostInfo, error)
}
