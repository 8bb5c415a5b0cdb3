package session

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeStore struct {
	live    map[string]time.Duration
	touches int
	err     error
}

func (f *fakeStore) Touch(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	f.touches++
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.live[id]; !ok {
		return false, nil
	}
	f.live[id] = ttl
	return true, nil
}

func (f *fakeStore) Save(ctx context.Context, id string, ttl time.Duration) error {
	if f.err != nil {
		return f.err
	}
	f.live[id] = ttl
	return nil
}

func TestResolveKeepsLiveSession(t *testing.T) {
	id := "6f1c2d7e-7a43-4b8e-9a57-8d1e2f3a4b5c"
	store := &fakeStore{live: map[string]time.Duration{id: time.Minute}}
	svc := NewService(store, time.Hour)

	got, err := svc.Resolve(context.Background(), id)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.ID != id || got.Created {
		t.Fatalf("expected existing session, got %+v", got)
	}
	if store.live[id] != time.Hour {
		t.Fatalf("expected ttl to slide to 1h, got %s", store.live[id])
	}
}

func TestResolveCreatesSession(t *testing.T) {
	for _, token := range []string{"", "not-a-uuid", "0b7f2c6e-1111-4222-8333-944455556666"} {
		store := &fakeStore{live: map[string]time.Duration{}}
		svc := NewService(store, time.Hour)

		got, err := svc.Resolve(context.Background(), token)
		if err != nil {
			t.Fatalf("%q: expected no error, got %v", token, err)
		}
		if !got.Created || got.ID == "" || got.ID == token {
			t.Fatalf("%q: expected fresh session, got %+v", token, got)
		}
		if _, ok := store.live[got.ID]; !ok {
			t.Fatalf("%q: expected session to be saved", token)
		}
	}
}

func TestResolveSkipsStoreLookupForMalformedToken(t *testing.T) {
	store := &fakeStore{live: map[string]time.Duration{}}
	svc := NewService(store, time.Hour)

	if _, err := svc.Resolve(context.Background(), "garbage"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if store.touches != 0 {
		t.Fatalf("expected no touch for malformed token, got %d", store.touches)
	}
}

func TestResolveStoreError(t *testing.T) {
	storeErr := errors.New("unavailable")
	svc := NewService(&fakeStore{live: map[string]time.Duration{}, err: storeErr}, time.Hour)

	if _, err := svc.Resolve(context.Background(), ""); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}
