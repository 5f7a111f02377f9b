package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"syllabus-tracker/internal/dashboard/repository"
	"syllabus-tracker/internal/dashboard/repository/memory"
	pkgLog "syllabus-tracker/pkg/log"
)

func TestCreateAndGet(t *testing.T) {
	repo := memory.New(pkgLog.NewNop(), 10, time.Hour)
	ctx := context.Background()

	id, b, err := repo.Create(ctx, repository.CreateBoardOptions{ChatGreeting: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" || b == nil {
		t.Fatalf("expected id and board")
	}

	got, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != b {
		t.Errorf("Get returned a different board")
	}
	if msgs := got.ChatMessages(); msgs[0].Text != "hi" {
		t.Errorf("chat greeting not applied: %+v", msgs)
	}
}

func TestGetUnknown(t *testing.T) {
	repo := memory.New(pkgLog.NewNop(), 10, time.Hour)

	for _, id := range []string{"", "not-a-uuid", "8c5f4c3e-4b6a-4f0e-9a8e-2f0a4d7b1c11"} {
		if _, err := repo.Get(context.Background(), id); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("Get(%q): expected ErrNotFound, got %v", id, err)
		}
	}
}

func TestEviction(t *testing.T) {
	repo := memory.New(pkgLog.NewNop(), 2, time.Hour)
	ctx := context.Background()

	first, _, _ := repo.Create(ctx, repository.CreateBoardOptions{})
	repo.Create(ctx, repository.CreateBoardOptions{})
	repo.Create(ctx, repository.CreateBoardOptions{})

	if repo.Len() != 2 {
		t.Errorf("expected 2 boards, got %d", repo.Len())
	}
	if _, err := repo.Get(ctx, first); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("oldest board should be evicted, got %v", err)
	}
}

func TestExpiry(t *testing.T) {
	repo := memory.New(pkgLog.NewNop(), 10, 50*time.Millisecond)
	ctx := context.Background()

	id, _, _ := repo.Create(ctx, repository.CreateBoardOptions{})
	time.Sleep(150 * time.Millisecond)

	if _, err := repo.Get(ctx, id); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected board to expire, got %v", err)
	}
}
