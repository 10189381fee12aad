// Package discovery tracks which secret traits players have revealed.
package discovery

import (
	"context"
	"fmt"

	"github.com/osse101/battlesim/internal/battle"
	"github.com/osse101/battlesim/internal/domain"
	"github.com/osse101/battlesim/internal/logger"
	"github.com/osse101/battlesim/internal/repository"
)

const (
	LogMsgSecretRevealed = "Secret trait revealed"

	ErrMsgUnknownTrait   = "unknown trait key"
	ErrMsgListSecretsFmt = "failed to list discovered secrets: %w"
)

// Service exposes the global discovery set to battles and to players
type Service struct {
	repo repository.Discovery
}

// NewService wraps a discovery repository
func NewService(repo repository.Discovery) *Service {
	return &Service{repo: repo}
}

// HasDiscovered satisfies battle.DiscoveryRepository
func (s *Service) HasDiscovered(ctx context.Context, key string) (bool, error) {
	return s.repo.HasDiscovered(ctx, key)
}

// MarkDiscovered records a first reveal. Keys outside the trait pool are rejected.
func (s *Service) MarkDiscovered(ctx context.Context, key string) error {
	if _, ok := battle.TraitByKey(key); !ok {
		return fmt.Errorf("%w: %s: %q", domain.ErrInvalidInput, ErrMsgUnknownTrait, key)
	}
	if err := s.repo.MarkDiscovered(ctx, key); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgSecretRevealed, "trait", key)
	return nil
}

// Secrets lists the whole trait pool in assignment order, masking names
// and hints of traits nobody has revealed yet.
func (s *Service) Secrets(ctx context.Context) ([]domain.SecretInfo, error) {
	keys, err := s.repo.ListDiscovered(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListSecretsFmt, err)
	}
	found := make(map[string]bool, len(keys))
	for _, k := range keys {
		found[k] = true
	}

	traits := battle.Traits()
	out := make([]domain.SecretInfo, 0, len(traits))
	for _, t := range traits {
		info := domain.SecretInfo{Key: t.Key, Name: battle.UndiscoveredTraitName}
		if found[t.Key] {
			info.Name = t.Name
			info.Hint = t.Hint
			info.Discovered = true
		}
		out = append(out, info)
	}
	return out, nil
}
