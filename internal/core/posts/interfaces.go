package posts

import "context"

// Service defines the business logic interface for posts
type Service interface {
	// CreatePost creates a post owned by the acting principal. The expiry
	// instant is fixed here as now + requested minutes.
	CreatePost(ctx context.Context, owner Owner, req CreatePostRequest) (*PostView, error)

	// GetPost returns the enriched view of one post.
	GetPost(ctx context.Context, id string) (*PostView, error)

	// ListLivePosts returns enriched views of every post that is still live,
	// in storage order. An empty result is an empty list, not an error.
	ListLivePosts(ctx context.Context) ([]*PostView, error)

	// UpdatePost applies a partial update. Owner only, and only while the
	// post is still live.
	UpdatePost(ctx context.Context, actorID, id string, req UpdatePostRequest) (*PostView, error)

	// DeletePost removes a post. Owner only; posts are never deleted
	// implicitly on expiry.
	DeletePost(ctx context.Context, actorID, id string) error
}

// Repository defines the data access interface for posts
type Repository interface {
	Create(ctx context.Context, post *Post) (*Post, error)

	// GetByID returns ErrPostNotFound when no row matches.
	GetByID(ctx context.Context, id string) (*Post, error)

	// List returns all posts in creation order.
	List(ctx context.Context) ([]*Post, error)

	// GetByTopic returns all posts tagged with the canonical topic, in
	// creation order.
	GetByTopic(ctx context.Context, topic string) ([]*Post, error)

	Update(ctx context.Context, post *Post) (*Post, error)

	Delete(ctx context.Context, id string) error
}
