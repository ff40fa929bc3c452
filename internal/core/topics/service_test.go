package topics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"Pulse/internal/core/interactions"
	"Pulse/internal/core/posts"
)

// MockPostRepository is a mock implementation of posts.Repository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id string) (*posts.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context) ([]*posts.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*posts.Post), args.Error(1)
}

func (m *MockPostRepository) GetByTopic(ctx context.Context, topic string) ([]*posts.Post, error) {
	args := m.Called(ctx, topic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*posts.Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockInteractionRepository is a mock implementation of interactions.Repository
type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) Insert(ctx context.Context, rec *interactions.Interaction) (*interactions.Interaction, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*interactions.Interaction), args.Error(1)
}

func (m *MockInteractionRepository) ReplaceVote(ctx context.Context, rec *interactions.Interaction) (*interactions.Interaction, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*interactions.Interaction), args.Error(1)
}

func (m *MockInteractionRepository) ListForPost(ctx context.Context, postID string) ([]interactions.Interaction, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]interactions.Interaction), args.Error(1)
}

func livePost(id string) *posts.Post {
	return &posts.Post{
		ID:        id,
		Title:     "A live post",
		Body:      "Still ticking along.",
		ExpiresAt: time.Now().UTC().Add(time.Hour),
		Topics:    []string{"tech"},
		Owner:     posts.Owner{ID: "owner-" + id, Name: "Author"},
	}
}

func expiredPost(id string) *posts.Post {
	p := livePost(id)
	p.ExpiresAt = time.Now().UTC().Add(-time.Hour)
	return p
}

func nVotes(n int) []interactions.Interaction {
	recs := make([]interactions.Interaction, n)
	for i := range recs {
		recs[i] = interactions.Interaction{Type: interactions.TypeLike}
	}
	return recs
}

func TestMostActiveByTopic_HighestActivityWins(t *testing.T) {
	mockPosts := new(MockPostRepository)
	mockInteractions := new(MockInteractionRepository)
	service := NewTopicService(mockPosts, mockInteractions)

	mockPosts.On("GetByTopic", mock.Anything, "tech").Return(
		[]*posts.Post{livePost("a"), livePost("b"), livePost("c")}, nil)
	mockInteractions.On("ListForPost", mock.Anything, "a").Return(nVotes(2), nil)
	mockInteractions.On("ListForPost", mock.Anything, "b").Return(nVotes(3), nil)
	mockInteractions.On("ListForPost", mock.Anything, "c").Return([]interactions.Interaction{}, nil)

	view, err := service.MostActiveByTopic(context.Background(), "tech")

	require.NoError(t, err)
	assert.Equal(t, "b", view.ID)
}

func TestMostActiveByTopic_TieKeepsEarlier(t *testing.T) {
	mockPosts := new(MockPostRepository)
	mockInteractions := new(MockInteractionRepository)
	service := NewTopicService(mockPosts, mockInteractions)

	// repository returns creation order; equal totals keep the earlier post
	mockPosts.On("GetByTopic", mock.Anything, "tech").Return(
		[]*posts.Post{livePost("first"), livePost("second")}, nil)
	mockInteractions.On("ListForPost", mock.Anything, "first").Return(nVotes(2), nil)
	mockInteractions.On("ListForPost", mock.Anything, "second").Return(nVotes(2), nil)

	view, err := service.MostActiveByTopic(context.Background(), "tech")

	require.NoError(t, err)
	assert.Equal(t, "first", view.ID)
}

func TestMostActiveByTopic_CommentsCountToo(t *testing.T) {
	mockPosts := new(MockPostRepository)
	mockInteractions := new(MockInteractionRepository)
	service := NewTopicService(mockPosts, mockInteractions)

	comments := []interactions.Interaction{
		{Type: interactions.TypeComment, CommentBody: "one"},
		{Type: interactions.TypeComment, CommentBody: "two"},
		{Type: interactions.TypeComment, CommentBody: "three"},
	}
	mockPosts.On("GetByTopic", mock.Anything, "tech").Return(
		[]*posts.Post{livePost("voted"), livePost("discussed")}, nil)
	mockInteractions.On("ListForPost", mock.Anything, "voted").Return(nVotes(2), nil)
	mockInteractions.On("ListForPost", mock.Anything, "discussed").Return(comments, nil)

	view, err := service.MostActiveByTopic(context.Background(), "tech")

	require.NoError(t, err)
	assert.Equal(t, "discussed", view.ID)
}

func TestMostActiveByTopic_NoLivePosts(t *testing.T) {
	mockPosts := new(MockPostRepository)
	mockInteractions := new(MockInteractionRepository)
	service := NewTopicService(mockPosts, mockInteractions)

	mockPosts.On("GetByTopic", mock.Anything, "sport").Return(
		[]*posts.Post{expiredPost("old")}, nil)

	_, err := service.MostActiveByTopic(context.Background(), "sport")
	assert.ErrorIs(t, err, ErrNoLivePosts)
}

func TestListLiveByTopic_EmptyIsNotAnError(t *testing.T) {
	mockPosts := new(MockPostRepository)
	mockInteractions := new(MockInteractionRepository)
	service := NewTopicService(mockPosts, mockInteractions)

	mockPosts.On("GetByTopic", mock.Anything, "health").Return([]*posts.Post{}, nil)

	views, err := service.ListLiveByTopic(context.Background(), "health")

	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestListLiveByTopic_NormalizesCase(t *testing.T) {
	mockPosts := new(MockPostRepository)
	mockInteractions := new(MockInteractionRepository)
	service := NewTopicService(mockPosts, mockInteractions)

	mockPosts.On("GetByTopic", mock.Anything, "politics").Return(
		[]*posts.Post{livePost("p1")}, nil)
	mockInteractions.On("ListForPost", mock.Anything, "p1").Return([]interactions.Interaction{}, nil)

	views, err := service.ListLiveByTopic(context.Background(), "Politics")

	require.NoError(t, err)
	require.Len(t, views, 1)
	mockPosts.AssertCalled(t, "GetByTopic", mock.Anything, "politics")
}

func TestListExpiredByTopic_EmptyIsNotFound(t *testing.T) {
	mockPosts := new(MockPostRepository)
	mockInteractions := new(MockInteractionRepository)
	service := NewTopicService(mockPosts, mockInteractions)

	// only live posts exist under the topic
	mockPosts.On("GetByTopic", mock.Anything, "tech").Return(
		[]*posts.Post{livePost("fresh")}, nil)

	_, err := service.ListExpiredByTopic(context.Background(), "tech")
	assert.ErrorIs(t, err, ErrNoExpiredPosts)
}

func TestListExpiredByTopic_ReturnsOnlyExpired(t *testing.T) {
	mockPosts := new(MockPostRepository)
	mockInteractions := new(MockInteractionRepository)
	service := NewTopicService(mockPosts, mockInteractions)

	mockPosts.On("GetByTopic", mock.Anything, "tech").Return(
		[]*posts.Post{livePost("fresh"), expiredPost("stale")}, nil)
	mockInteractions.On("ListForPost", mock.Anything, "stale").Return(nVotes(1), nil)

	views, err := service.ListExpiredByTopic(context.Background(), "tech")

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "stale", views[0].ID)
	assert.Equal(t, posts.StatusExpired, views[0].Status)
	assert.Equal(t, 0, views[0].ExpiresIn)
}

func TestTopicQueries_UnknownTopic(t *testing.T) {
	mockPosts := new(MockPostRepository)
	mockInteractions := new(MockInteractionRepository)
	service := NewTopicService(mockPosts, mockInteractions)

	_, err := service.ListLiveByTopic(context.Background(), "astrology")
	assert.True(t, posts.IsValidationError(err))

	_, err = service.MostActiveByTopic(context.Background(), "astrology")
	assert.True(t, posts.IsValidationError(err))

	mockPosts.AssertNotCalled(t, "GetByTopic", mock.Anything, mock.Anything)
}
