package topics

import (
	"context"
	"fmt"
	"time"

	"Pulse/internal/core/interactions"
	"Pulse/internal/core/posts"
)

type topicService struct {
	postRepo        posts.Repository
	interactionRepo interactions.Repository
}

// NewTopicService creates a new topic query service
func NewTopicService(postRepo posts.Repository, interactionRepo interactions.Repository) Service {
	return &topicService{
		postRepo:        postRepo,
		interactionRepo: interactionRepo,
	}
}

func (s *topicService) ListLiveByTopic(ctx context.Context, topic string) ([]*posts.PostView, error) {
	views, err := s.viewsByTopic(ctx, topic, posts.StatusLive)
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (s *topicService) ListExpiredByTopic(ctx context.Context, topic string) ([]*posts.PostView, error) {
	views, err := s.viewsByTopic(ctx, topic, posts.StatusExpired)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, ErrNoExpiredPosts
	}
	return views, nil
}

func (s *topicService) MostActiveByTopic(ctx context.Context, topic string) (*posts.PostView, error) {
	views, err := s.viewsByTopic(ctx, topic, posts.StatusLive)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, ErrNoLivePosts
	}

	// Left-to-right reduction with a strict comparison: on equal engagement
	// the earlier candidate keeps its slot.
	best := views[0]
	for _, view := range views[1:] {
		if view.Activity() > best.Activity() {
			best = view
		}
	}
	return best, nil
}

// viewsByTopic loads the topic's posts in storage order and builds enriched
// views for those whose derived status matches want.
func (s *topicService) viewsByTopic(ctx context.Context, topic string, want posts.Status) ([]*posts.PostView, error) {
	canonical, err := posts.NormalizeTopic(topic)
	if err != nil {
		return nil, err
	}

	stored, err := s.postRepo.GetByTopic(ctx, canonical)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts for topic %s: %w", canonical, err)
	}

	now := time.Now().UTC()
	views := []*posts.PostView{}
	for _, post := range stored {
		if posts.EvaluateLifecycle(post.ExpiresAt, now).Status != want {
			continue
		}
		recs, err := s.interactionRepo.ListForPost(ctx, post.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load interactions for post %s: %w", post.ID, err)
		}
		views = append(views, posts.BuildView(post, recs, now))
	}
	return views, nil
}
