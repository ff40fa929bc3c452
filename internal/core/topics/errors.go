package topics

import "errors"

var (
	// ErrNoExpiredPosts is returned when a topic has no expired posts. The
	// expired listing reports this as not-found rather than an empty list;
	// the live listing does not.
	ErrNoExpiredPosts = errors.New("no expired posts found for topic")

	// ErrNoLivePosts is returned by the most-active query when the topic has
	// no live posts to rank.
	ErrNoLivePosts = errors.New("no live posts found for topic")
)
