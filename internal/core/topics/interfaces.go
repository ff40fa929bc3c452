package topics

import (
	"context"

	"Pulse/internal/core/posts"
)

// Service defines topic-scoped queries over the enriched post projection.
// Topic input is validated against the fixed vocabulary; unknown topics are a
// validation error, never a silent empty result.
type Service interface {
	// ListLiveByTopic returns enriched live posts for the topic in storage
	// order. No live posts is an empty list, not an error.
	ListLiveByTopic(ctx context.Context, topic string) ([]*posts.PostView, error)

	// ListExpiredByTopic returns enriched expired posts for the topic.
	// Returns ErrNoExpiredPosts when there are none.
	ListExpiredByTopic(ctx context.Context, topic string) ([]*posts.PostView, error)

	// MostActiveByTopic returns the live post with the highest likes +
	// dislikes total for the topic. Ties keep the first candidate seen, so
	// with creation-ordered storage the earliest post wins. Returns
	// ErrNoLivePosts when the topic has no live posts.
	MostActiveByTopic(ctx context.Context, topic string) (*posts.PostView, error)
}
