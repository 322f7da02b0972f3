package teststubs

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/nfl-stats-service/internal/domain/stats"
)

func TestStubProviderTracksCalls(t *testing.T) {
	err := errors.New("boom")
	p := &StubProvider{Err: err, Notify: make(chan struct{})}
	if _, got := p.FetchLeaders(context.Background(), stats.Category{Key: "receptions"}); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	_, _ = p.FetchLeaders(context.Background(), stats.Category{Key: "rushing_yards"})
	if p.Calls.Load() != 2 {
		t.Fatalf("expected call count 2, got %d", p.Calls.Load())
	}
	if got := p.Requested(); len(got) != 2 || got[0] != "receptions" || got[1] != "rushing_yards" {
		t.Fatalf("unexpected requested keys %v", got)
	}
	select {
	case <-p.Notify:
	default:
		t.Fatal("expected notify channel to be closed")
	}
}

func TestStubRefresher(t *testing.T) {
	r := &StubRefresher{}
	if err := r.RefreshAll(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	r.SetErr(errors.New("fail"))
	if err := r.RefreshAll(context.Background()); err == nil {
		t.Fatal("expected configured error")
	}
	if r.Calls.Load() != 2 {
		t.Fatalf("expected 2 calls, got %d", r.Calls.Load())
	}
}

func TestStubSnapshotStore(t *testing.T) {
	s := &StubSnapshotStore{
		Leaders: map[string][]stats.PlayerStat{
			"passing_yards": {{Name: "A", Team: "KC", Stat: stats.NumberValue(1)}},
		},
	}
	snap, err := s.LoadLeaders("passing_yards")
	if err != nil || len(snap.Players) != 1 || snap.StatType != "passing_yards" {
		t.Fatalf("unexpected snapshot %+v err %v", snap, err)
	}
	if _, err := s.LoadLeaders("missing"); err == nil {
		t.Fatal("expected not found error")
	}
	s.LoadErr = errors.New("disk")
	if _, err := s.LoadLeaders("passing_yards"); err == nil {
		t.Fatal("expected load error")
	}
}

func TestStubSnapshotWriter(t *testing.T) {
	w := &StubSnapshotWriter{}
	if err := w.WriteLeaders("receptions", []stats.PlayerStat{{Name: "A"}}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if players, ok := w.Written("receptions"); !ok || len(players) != 1 {
		t.Fatalf("expected write to be recorded")
	}

	w.Err = errors.New("fail")
	if err := w.WriteLeaders("receptions", nil); err == nil {
		t.Fatal("expected configured error")
	}
}
