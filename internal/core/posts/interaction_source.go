package posts

import (
	"context"
	"errors"

	"Pulse/internal/core/interactions"
)

type interactionPostSource struct {
	repo Repository
}

// NewInteractionPostSource adapts the post repository to the narrow lookup
// interface the interaction service validates against.
func NewInteractionPostSource(repo Repository) interactions.PostSource {
	return &interactionPostSource{repo: repo}
}

func (s *interactionPostSource) GetPostInfo(ctx context.Context, postID string) (*interactions.PostInfo, error) {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return nil, interactions.ErrPostNotFound
		}
		return nil, err
	}
	return &interactions.PostInfo{
		ID:        post.ID,
		OwnerID:   post.Owner.ID,
		ExpiresAt: post.ExpiresAt,
	}, nil
}
