package testutil

import (
	"context"

	"github.com/preston-bernstein/nfl-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nfl-stats-service/internal/providers"
)

// GoodProvider returns the provided players with no error.
type GoodProvider struct {
	Players []stats.PlayerStat
}

func (p GoodProvider) FetchLeaders(ctx context.Context, category stats.Category) ([]stats.PlayerStat, error) {
	return p.Players, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchLeaders(ctx context.Context, category stats.Category) ([]stats.PlayerStat, error) {
	return nil, p.Err
}

// EmptyProvider returns no players, no error.
type EmptyProvider struct{}

func (EmptyProvider) FetchLeaders(ctx context.Context, category stats.Category) ([]stats.PlayerStat, error) {
	return []stats.PlayerStat{}, nil
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchLeaders(ctx context.Context, category stats.Category) ([]stats.PlayerStat, error) {
	return nil, providers.ErrProviderUnavailable
}
