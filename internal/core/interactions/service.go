package interactions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxCommentLength = 2000

type interactionService struct {
	repo  Repository
	posts PostSource
}

// NewInteractionService creates a new interaction service
func NewInteractionService(repo Repository, posts PostSource) Service {
	return &interactionService{
		repo:  repo,
		posts: posts,
	}
}

func (s *interactionService) CreateInteraction(ctx context.Context, actor UserRef, req CreateInteractionRequest) (*Interaction, error) {
	recType, err := validateRequest(req)
	if err != nil {
		return nil, err
	}

	post, err := s.posts.GetPostInfo(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if !now.Before(post.ExpiresAt) {
		return nil, ErrPostExpired
	}
	if post.OwnerID == actor.ID {
		return nil, ErrOwnPost
	}

	rec := &Interaction{
		ID:          uuid.NewString(),
		PostID:      post.ID,
		User:        actor,
		Type:        recType,
		CommentBody: strings.TrimSpace(req.CommentBody),
		CreatedAt:   now,
	}

	if recType.IsVote() {
		return s.repo.ReplaceVote(ctx, rec)
	}
	return s.repo.Insert(ctx, rec)
}

func (s *interactionService) ListForPost(ctx context.Context, postID string) ([]Interaction, error) {
	if strings.TrimSpace(postID) == "" {
		return nil, NewValidationError("post_id", "post_id is required")
	}
	return s.repo.ListForPost(ctx, postID)
}

// validateRequest checks the request shape: known type, and comment_body
// present iff the type is comment.
func validateRequest(req CreateInteractionRequest) (Type, error) {
	if strings.TrimSpace(req.PostID) == "" {
		return "", NewValidationError("post_id", "post_id is required")
	}

	recType := Type(req.Type)
	switch recType {
	case TypeLike, TypeDislike:
		if req.CommentBody != "" {
			return "", NewValidationError("comment_body",
				fmt.Sprintf("comment_body is not allowed for type %q", recType))
		}
	case TypeComment:
		if strings.TrimSpace(req.CommentBody) == "" {
			return "", NewValidationError("comment_body", "comment_body is required for comments")
		}
		if len(req.CommentBody) > maxCommentLength {
			return "", NewValidationError("comment_body",
				fmt.Sprintf("comment too long (max %d characters)", maxCommentLength))
		}
	default:
		return "", NewValidationError("type",
			fmt.Sprintf("unknown interaction type %q (valid: like, dislike, comment)", req.Type))
	}

	return recType, nil
}
