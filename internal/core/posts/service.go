package posts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"Pulse/internal/core/interactions"
)

const (
	minTitleLength = 3
	maxTitleLength = 256
	minBodyLength  = 10
)

type postService struct {
	repo            Repository
	interactionRepo interactions.Repository
}

// NewPostService creates a new post service
func NewPostService(repo Repository, interactionRepo interactions.Repository) Service {
	return &postService{
		repo:            repo,
		interactionRepo: interactionRepo,
	}
}

func (s *postService) CreatePost(ctx context.Context, owner Owner, req CreatePostRequest) (*PostView, error) {
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}
	if err := validateBody(req.Body); err != nil {
		return nil, err
	}
	if req.ExpiresIn <= 0 {
		return nil, NewValidationError("expires_in", "expires_in must be a positive number of minutes")
	}
	topics, err := normalizeTopics(req.Topics)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := &Post{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(req.Title),
		Body:      strings.TrimSpace(req.Body),
		ExpiresAt: now.Add(time.Duration(req.ExpiresIn) * time.Minute),
		Topics:    topics,
		Owner:     owner,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	// A fresh post has no interactions yet.
	return BuildView(created, nil, time.Now().UTC()), nil
}

func (s *postService) GetPost(ctx context.Context, id string) (*PostView, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, post, time.Now().UTC())
}

func (s *postService) ListLivePosts(ctx context.Context) ([]*PostView, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	now := time.Now().UTC()
	views := []*PostView{}
	for _, post := range all {
		if EvaluateLifecycle(post.ExpiresAt, now).Status != StatusLive {
			continue
		}
		view, err := s.buildView(ctx, post, now)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *postService) UpdatePost(ctx context.Context, actorID, id string, req UpdatePostRequest) (*PostView, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.Owner.ID != actorID {
		return nil, ErrNotPostOwner
	}

	now := time.Now().UTC()
	if EvaluateLifecycle(post.ExpiresAt, now).Status == StatusExpired {
		return nil, ErrPostExpired
	}

	if req.Title != nil {
		if err := validateTitle(*req.Title); err != nil {
			return nil, err
		}
		post.Title = strings.TrimSpace(*req.Title)
	}
	if req.Body != nil {
		if err := validateBody(*req.Body); err != nil {
			return nil, err
		}
		post.Body = strings.TrimSpace(*req.Body)
	}
	if req.Topics != nil {
		topics, err := normalizeTopics(req.Topics)
		if err != nil {
			return nil, err
		}
		post.Topics = topics
	}
	if req.ExpiresIn != nil {
		if *req.ExpiresIn <= 0 {
			return nil, NewValidationError("expires_in", "expires_in must be a positive number of minutes")
		}
		post.ExpiresAt = now.Add(time.Duration(*req.ExpiresIn) * time.Minute)
	}

	updated, err := s.repo.Update(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return s.buildView(ctx, updated, now)
}

func (s *postService) DeletePost(ctx context.Context, actorID, id string) error {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post.Owner.ID != actorID {
		return ErrNotPostOwner
	}
	return s.repo.Delete(ctx, id)
}

// buildView loads a post's interactions and composes the enriched view. The
// two fetches are not transactional; a post deleted in between surfaces as
// the stored records simply going unused.
func (s *postService) buildView(ctx context.Context, post *Post, now time.Time) (*PostView, error) {
	recs, err := s.interactionRepo.ListForPost(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load interactions for post %s: %w", post.ID, err)
	}
	return BuildView(post, recs, now), nil
}

func validateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if len(trimmed) < minTitleLength {
		return NewValidationError("title",
			fmt.Sprintf("title must be at least %d characters", minTitleLength))
	}
	if len(trimmed) > maxTitleLength {
		return NewValidationError("title",
			fmt.Sprintf("title must be at most %d characters", maxTitleLength))
	}
	return nil
}

func validateBody(body string) error {
	if len(strings.TrimSpace(body)) < minBodyLength {
		return NewValidationError("body",
			fmt.Sprintf("body must be at least %d characters", minBodyLength))
	}
	return nil
}
