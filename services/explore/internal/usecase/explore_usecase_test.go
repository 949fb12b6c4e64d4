package usecase

import (
	"context"
	"errors"
	"testing"

	"itinera/pkg/logger"
	"itinera/services/explore/internal/entity"
	"itinera/services/explore/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type MockExploreRepository struct {
	mock.Mock
}

var _ persistent.ExploreRepository = (*MockExploreRepository)(nil)

func (m *MockExploreRepository) ListPublished() ([]*entity.Listing, bool, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]*entity.Listing), args.Bool(1), args.Error(2)
}

func TestSearch_AppliesFilter(t *testing.T) {
	repo := new(MockExploreRepository)
	repo.On("ListPublished").Return(catalogue(), true, nil)

	uc := NewExploreUseCase(repo, nil, logger.New())
	got, err := uc.Search(context.Background(), Filter{Query: "kyoto"})

	require.NoError(t, err)
	assert.Equal(t, []string{"kyoto"}, ids(got))
	repo.AssertExpectations(t)
}

func TestSearch_WithoutCreatorJoin(t *testing.T) {
	items := []*entity.Listing{{ID: "kyoto", Title: "Kyoto Secrets"}}
	repo := new(MockExploreRepository)
	repo.On("ListPublished").Return(items, false, nil)

	uc := NewExploreUseCase(repo, nil, logger.New())
	got, err := uc.Search(context.Background(), Filter{Sort: SortRating})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].CreatorName)
	assert.False(t, got[0].CreatorVerified)
}

func TestSearch_RepositoryError(t *testing.T) {
	repo := new(MockExploreRepository)
	repo.On("ListPublished").Return(nil, false, errors.New("relation \"itineraries\" does not exist"))

	uc := NewExploreUseCase(repo, nil, logger.New())
	_, err := uc.Search(context.Background(), Filter{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestTags(t *testing.T) {
	repo := new(MockExploreRepository)
	repo.On("ListPublished").Return(catalogue(), true, nil)

	uc := NewExploreUseCase(repo, nil, logger.New())
	got, err := uc.Tags(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "food", got[0].Tag)
	assert.Equal(t, 2, got[0].Count)
}

// cannedRedis answers GET with a fixed payload and accepts every other
// command without touching the network.
type cannedRedis struct {
	payload string
	sets    int
}

func (h *cannedRedis) DialHook(next redis.DialHook) redis.DialHook { return next }

func (h *cannedRedis) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		switch c := cmd.(type) {
		case *redis.StringCmd:
			c.SetVal(h.payload)
		case *redis.StatusCmd:
			h.sets++
			c.SetVal("OK")
		}
		return nil
	}
}

func (h *cannedRedis) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error { return nil }
}

func TestSearch_UnreadableCacheFallsBackAndLogsDecodeError(t *testing.T) {
	hook := &cannedRedis{payload: "{not json"}
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	client.AddHook(hook)
	defer client.Close()

	core, logs := observer.New(zapcore.WarnLevel)

	repo := new(MockExploreRepository)
	repo.On("ListPublished").Return(catalogue(), true, nil)

	uc := NewExploreUseCase(repo, client, logger.NewWithCore(core))
	got, err := uc.Search(context.Background(), Filter{Query: "kyoto"})

	require.NoError(t, err)
	assert.Equal(t, []string{"kyoto"}, ids(got))
	assert.Equal(t, 1, hook.sets)

	entries := logs.FilterMessageSnippet("Discarding unreadable explore cache").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Message, "invalid character")
	assert.NotContains(t, entries[0].Message, "<nil>")
	repo.AssertExpectations(t)
}
