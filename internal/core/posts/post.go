package posts

import (
	"time"

	"Pulse/internal/core/interactions"
)

// Status is the derived liveness of a post. It is never stored; every read
// recomputes it from the post's expiry instant and the current clock.
type Status string

const (
	StatusLive    Status = "live"
	StatusExpired Status = "expired"
)

// Owner is a denormalized snapshot of the post's author, copied at creation
// time. The name is never updated if the user later renames themselves.
type Owner struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Post is the stored post entity. Status and remaining time are deliberately
// absent: they are derived at read time (see EvaluateLifecycle).
type Post struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body" db:"body"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	Topics    []string  `json:"topics" db:"topics"`
	Owner     Owner     `json:"owner"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreatePostRequest represents input for creating a new post.
// ExpiresIn is the requested time-to-live in minutes; the absolute expiry
// instant is fixed at creation and never recomputed from it afterwards.
type CreatePostRequest struct {
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	ExpiresIn int      `json:"expires_in"`
	Topics    []string `json:"topics"`
}

// UpdatePostRequest represents a partial update to a live post. Nil fields
// are left untouched. A non-nil ExpiresIn rebases the expiry from now.
type UpdatePostRequest struct {
	Title     *string  `json:"title,omitempty"`
	Body      *string  `json:"body,omitempty"`
	ExpiresIn *int     `json:"expires_in,omitempty"`
	Topics    []string `json:"topics,omitempty"`
}

// CommentView is a comment as it appears inside an enriched post.
type CommentView struct {
	ID        string               `json:"id"`
	User      interactions.UserRef `json:"user"`
	Body      string               `json:"body"`
	CreatedAt time.Time            `json:"created_at"`
}

// PostView is the enriched, externally visible post: the stored fields plus
// derived lifecycle state and aggregated engagement. Building one never
// mutates stored state.
type PostView struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Body         string        `json:"body"`
	Topics       []string      `json:"topics"`
	Owner        Owner         `json:"owner"`
	Status       Status        `json:"status"`
	ExpiresAt    time.Time     `json:"expires_at"`
	ExpiresIn    int           `json:"expires_in"`
	LikeCount    int           `json:"like_count"`
	DislikeCount int           `json:"dislike_count"`
	Comments     []CommentView `json:"comments"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Activity is the post's total vote volume (likes + dislikes).
func (v *PostView) Activity() int {
	return v.LikeCount + v.DislikeCount
}

// BuildView composes a stored post with its interaction records into the
// enriched representation, evaluated at the given instant. The post and its
// interactions may have been fetched at slightly different moments; that
// window is tolerated rather than guarded against.
func BuildView(post *Post, recs []interactions.Interaction, now time.Time) *PostView {
	lifecycle := EvaluateLifecycle(post.ExpiresAt, now)
	eng := interactions.Aggregate(recs)

	comments := make([]CommentView, 0, len(eng.Comments))
	for _, c := range eng.Comments {
		comments = append(comments, CommentView{
			ID:        c.ID,
			User:      c.User,
			Body:      c.CommentBody,
			CreatedAt: c.CreatedAt,
		})
	}

	return &PostView{
		ID:           post.ID,
		Title:        post.Title,
		Body:         post.Body,
		Topics:       post.Topics,
		Owner:        post.Owner,
		Status:       lifecycle.Status,
		ExpiresAt:    post.ExpiresAt,
		ExpiresIn:    lifecycle.ExpiresIn,
		LikeCount:    eng.Likes,
		DislikeCount: eng.Dislikes,
		Comments:     comments,
		CreatedAt:    post.CreatedAt,
		UpdatedAt:    post.UpdatedAt,
	}
}
