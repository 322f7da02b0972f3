package providers

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestRateLimitErrorString(t *testing.T) {
	err := &RateLimitError{
		Provider:   "p",
		StatusCode: 429,
		Message:    "rate limited",
	}
	if got := err.Error(); got == "" || got == "rate limited" {
		t.Fatalf("expected status in error string, got %q", got)
	}

	rl, ok := AsRateLimitError(fmt.Errorf("wrapped: %w", err))
	if !ok || rl == nil {
		t.Fatalf("expected to unwrap rate limit error")
	}

	noStatus := &RateLimitError{}
	if got := noStatus.Error(); got == "" {
		t.Fatalf("expected fallback message")
	}
}

func TestRateLimitErrorStringIncludesRemaining(t *testing.T) {
	err := &RateLimitError{StatusCode: 429, Remaining: "0", Message: "rate limited"}
	if got := err.Error(); got != "rate limited (remaining=0) (status=429)" {
		t.Fatalf("unexpected error string %q", got)
	}
}

func TestStatusErrorString(t *testing.T) {
	if got := (&StatusError{Provider: "nflcom", StatusCode: 502}).Error(); got != "nflcom: unexpected status 502" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := (&StatusError{Provider: "nflcom", StatusCode: 500, Body: "oops"}).Error(); got != "nflcom: unexpected status 500: oops" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestIsPermanent(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"generic", errors.New("boom"), false},
		{"unavailable", ErrProviderUnavailable, true},
		{"canceled", context.Canceled, true},
		{"rate limited", &RateLimitError{StatusCode: 429}, false},
		{"not found", &StatusError{StatusCode: 404}, true},
		{"request timeout", &StatusError{StatusCode: 408}, false},
		{"server error", &StatusError{StatusCode: 503}, false},
	}
	for _, tc := range cases {
		if got := IsPermanent(tc.err); got != tc.want {
			t.Fatalf("%s: IsPermanent = %v, want %v", tc.name, got, tc.want)
		}
	}
}
