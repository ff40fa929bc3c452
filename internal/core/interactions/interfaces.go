package interactions

import "context"

// Service defines the business logic interface for interactions
type Service interface {
	// CreateInteraction records a like, dislike, or comment on a post.
	// Flow: validate shape -> load post -> enforce domain rules (post live,
	// actor is not the owner) -> write. Votes supersede the actor's prior
	// vote on the same post; comments always append.
	CreateInteraction(ctx context.Context, actor UserRef, req CreateInteractionRequest) (*Interaction, error)

	// ListForPost returns every interaction on a post in creation order.
	ListForPost(ctx context.Context, postID string) ([]Interaction, error)
}

// Repository defines the data access interface for interaction records
type Repository interface {
	// Insert appends a new interaction record. Used for comments, which
	// never supersede anything.
	Insert(ctx context.Context, rec *Interaction) (*Interaction, error)

	// ReplaceVote atomically removes any existing like-or-dislike by the
	// same user on the same post and inserts rec in its place, so at most
	// one vote per (post, user) is ever active.
	ReplaceVote(ctx context.Context, rec *Interaction) (*Interaction, error)

	// ListForPost returns all records for a post ordered by creation.
	ListForPost(ctx context.Context, postID string) ([]Interaction, error)
}
