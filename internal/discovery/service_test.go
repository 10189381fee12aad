package discovery

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/battlesim/internal/battle"
	"github.com/osse101/battlesim/internal/domain"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) HasDiscovered(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) MarkDiscovered(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockRepository) ListDiscovered(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ battle.DiscoveryRepository = (*Service)(nil)

func TestSecrets_MasksUndiscovered(t *testing.T) {
	ctx := context.Background()
	svc := NewService(battle.NewMemoryDiscovery(battle.TraitMomentum))

	secrets, err := svc.Secrets(ctx)
	require.NoError(t, err)
	require.Len(t, secrets, len(battle.Traits()))

	for _, s := range secrets {
		if s.Key == battle.TraitMomentum {
			assert.True(t, s.Discovered)
			assert.Equal(t, "Momentum", s.Name)
			assert.NotEmpty(t, s.Hint)
			continue
		}
		assert.False(t, s.Discovered)
		assert.Equal(t, battle.UndiscoveredTraitName, s.Name)
		assert.Empty(t, s.Hint)
	}
}

func TestMarkDiscovered(t *testing.T) {
	ctx := context.Background()
	svc := NewService(battle.NewMemoryDiscovery())

	require.NoError(t, svc.MarkDiscovered(ctx, battle.TraitWildLuck))
	ok, err := svc.HasDiscovered(ctx, battle.TraitWildLuck)
	require.NoError(t, err)
	assert.True(t, ok)

	err = svc.MarkDiscovered(ctx, "telekinesis")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSecrets_RepositoryError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("ListDiscovered", ctx).Return(nil, errors.New("down"))

	_, err := NewService(repo).Secrets(ctx)
	require.Error(t, err)
	repo.AssertExpectations(t)
}

func TestMarkDiscovered_PropagatesError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("MarkDiscovered", ctx, battle.TraitLastStand).Return(domain.ErrDatabaseError)

	err := NewService(repo).MarkDiscovered(ctx, battle.TraitLastStand)
	assert.ErrorIs(t, err, domain.ErrDatabaseError)
}
