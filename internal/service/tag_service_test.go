package service

import (
	"context"
	"testing"
)

func TestTagService_CreateAndGet_RoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.tags.Create(ctx, "urgent")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := env.tags.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "urgent" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestTagService_Create_DuplicateNameConflicts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.tags.Create(ctx, "urgent"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := env.tags.Create(ctx, "urgent"); !IsDuplicate(err) {
		t.Fatalf("expected duplicate error, got %v", err)
	}

	tags, err := env.tags.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tags) != 1 {
		t.Fatalf("expected no write on conflict, got %d tags", len(tags))
	}
}

func TestTagService_Update_SelfAndTakenName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	urgent, _ := env.tags.Create(ctx, "urgent")
	later, _ := env.tags.Create(ctx, "later")

	if _, err := env.tags.Update(ctx, urgent.ID, "urgent"); err != nil {
		t.Fatalf("self-update failed: %v", err)
	}
	if _, err := env.tags.Update(ctx, later.ID, "urgent"); !IsDuplicate(err) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if _, err := env.tags.Update(ctx, 9999, "gone"); !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestTagService_Delete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.createUser(t, "alice", "a@x.com")
	tag, _ := env.tags.Create(ctx, "urgent")
	task := env.createTask(t, user.ID, TaskInput{Title: "Tagged", TagIDs: []uint{tag.ID}})

	if err := env.tags.Delete(ctx, tag.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := env.tags.Get(ctx, tag.ID); !IsNotFound(err) {
		t.Fatalf("expected not found after delete, got %v", err)
	}

	got, err := env.tasks.Get(ctx, task.ID, user.ID)
	if err != nil {
		t.Fatalf("get task after tag delete: %v", err)
	}
	if len(got.TagIDs) != 0 {
		t.Fatalf("expected tag association removed, got %+v", got.TagIDs)
	}

	if err := env.tags.Delete(ctx, tag.ID); !IsNotFound(err) {
		t.Fatalf("expected not found for absent id, got %v", err)
	}
}
