package service

import (
	"context"
	"testing"
	"time"

	"tasktracker/internal/model"
)

func TestTaskService_Create_Defaults(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice", "a@x.com")

	task := env.createTask(t, user.ID, TaskInput{Title: "Write spec"})

	if task.Status != model.StatusTodo {
		t.Fatalf("expected default status TODO, got %s", task.Status)
	}
	if task.Priority != model.PriorityMedium {
		t.Fatalf("expected default priority MEDIUM, got %s", task.Priority)
	}
	if task.CategoryID != nil || len(task.TagIDs) != 0 {
		t.Fatalf("expected no associations, got %+v", task)
	}
}

func TestTaskService_Create_ExplicitValuesPreserved(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice", "a@x.com")

	due := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	task := env.createTask(t, user.ID, TaskInput{
		Title:    "Ship release",
		Status:   model.StatusInProgress,
		Priority: model.PriorityHigh,
		DueDate:  &due,
	})

	if task.Status != model.StatusInProgress || task.Priority != model.PriorityHigh {
		t.Fatalf("explicit enums not preserved: %+v", task)
	}
	if task.DueDate == nil || !task.DueDate.Equal(due) {
		t.Fatalf("due date not preserved: %v", task.DueDate)
	}
}

func TestTaskService_Create_UnknownUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.tasks.Create(context.Background(), 42, TaskInput{Title: "Nobody's"})
	if !IsNotFound(err) {
		t.Fatalf("expected not found for unknown user, got %v", err)
	}
}

func TestTaskService_Create_ResolvesCategoryAndTags(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "alice", "a@x.com")

	work, _ := env.categories.Create(ctx, CategoryInput{Name: "Work"})
	t1, _ := env.tags.Create(ctx, "urgent")
	t2, _ := env.tags.Create(ctx, "review")

	task := env.createTask(t, user.ID, TaskInput{
		Title:      "Quarterly report",
		CategoryID: &work.ID,
		TagIDs:     []uint{t1.ID, t2.ID},
	})

	got, err := env.tasks.Get(ctx, task.ID, user.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CategoryName != "Work" {
		t.Fatalf("expected flattened category name, got %+v", got)
	}
	names := map[string]bool{}
	for _, n := range got.TagNames {
		names[n] = true
	}
	if len(got.TagIDs) != 2 || !names["urgent"] || !names["review"] {
		t.Fatalf("expected both tag names order-independent, got %+v", got.TagNames)
	}
}

func TestTaskService_Create_MissingAssociations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "alice", "a@x.com")

	missingCategory := uint(999)
	_, err := env.tasks.Create(ctx, user.ID, TaskInput{Title: "x", CategoryID: &missingCategory})
	if !IsNotFound(err) {
		t.Fatalf("expected not found for missing category, got %v", err)
	}

	_, err = env.tasks.Create(ctx, user.ID, TaskInput{Title: "x", TagIDs: []uint{999}})
	if !IsNotFound(err) {
		t.Fatalf("expected not found for missing tag, got %v", err)
	}
}

func TestTaskService_OwnershipScoping(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice", "a@x.com")
	bob := env.createUser(t, "bob", "b@x.com")

	task := env.createTask(t, alice.ID, TaskInput{Title: "Private"})

	if _, err := env.tasks.Get(ctx, task.ID, bob.ID); !IsNotFound(err) {
		t.Fatalf("get as non-owner: expected not found, got %v", err)
	}
	if _, err := env.tasks.Update(ctx, task.ID, bob.ID, TaskInput{
		Title: "Stolen", Status: model.StatusDone, Priority: model.PriorityLow,
	}); !IsNotFound(err) {
		t.Fatalf("update as non-owner: expected not found, got %v", err)
	}
	if err := env.tasks.Delete(ctx, task.ID, bob.ID); !IsNotFound(err) {
		t.Fatalf("delete as non-owner: expected not found, got %v", err)
	}

	// The owner still sees the task untouched.
	got, err := env.tasks.Get(ctx, task.ID, alice.ID)
	if err != nil {
		t.Fatalf("get as owner: %v", err)
	}
	if got.Title != "Private" {
		t.Fatalf("task mutated by non-owner: %+v", got)
	}
}

func TestTaskService_Update_FullReplace(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "alice", "a@x.com")

	work, _ := env.categories.Create(ctx, CategoryInput{Name: "Work"})
	tag, _ := env.tags.Create(ctx, "urgent")
	due := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	task := env.createTask(t, user.ID, TaskInput{
		Title:       "Draft",
		Description: "first pass",
		CategoryID:  &work.ID,
		TagIDs:      []uint{tag.ID},
		DueDate:     &due,
	})

	// Omitting description, dueDate, categoryId and tagIds clears them all.
	updated, err := env.tasks.Update(ctx, task.ID, user.ID, TaskInput{
		Title:    "Final",
		Status:   model.StatusDone,
		Priority: model.PriorityLow,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Final" || updated.Status != model.StatusDone || updated.Priority != model.PriorityLow {
		t.Fatalf("fields not replaced: %+v", updated)
	}
	if updated.Description != "" || updated.DueDate != nil {
		t.Fatalf("omitted fields not cleared: %+v", updated)
	}
	if updated.CategoryID != nil || updated.CategoryName != "" {
		t.Fatalf("category not cleared: %+v", updated)
	}
	if len(updated.TagIDs) != 0 || len(updated.TagNames) != 0 {
		t.Fatalf("tags not cleared: %+v", updated)
	}

	// Reload to make sure the clears persisted.
	got, err := env.tasks.Get(ctx, task.ID, user.ID)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.CategoryID != nil || len(got.TagIDs) != 0 {
		t.Fatalf("cleared associations persisted: %+v", got)
	}
}

func TestTaskService_Update_ReplacesTagSetWholesale(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "alice", "a@x.com")

	t1, _ := env.tags.Create(ctx, "one")
	t2, _ := env.tags.Create(ctx, "two")
	t3, _ := env.tags.Create(ctx, "three")

	task := env.createTask(t, user.ID, TaskInput{Title: "Tagged", TagIDs: []uint{t1.ID, t2.ID}})

	updated, err := env.tasks.Update(ctx, task.ID, user.ID, TaskInput{
		Title: "Tagged", Status: model.StatusTodo, Priority: model.PriorityMedium,
		TagIDs: []uint{t3.ID},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(updated.TagIDs) != 1 || updated.TagIDs[0] != t3.ID {
		t.Fatalf("expected wholesale tag replace, got %+v", updated.TagIDs)
	}

	// Explicitly empty list also clears.
	updated, err = env.tasks.Update(ctx, task.ID, user.ID, TaskInput{
		Title: "Tagged", Status: model.StatusTodo, Priority: model.PriorityMedium,
		TagIDs: []uint{},
	})
	if err != nil {
		t.Fatalf("update with empty tag list: %v", err)
	}
	if len(updated.TagIDs) != 0 {
		t.Fatalf("expected empty list to clear tags, got %+v", updated.TagIDs)
	}
}

func TestTaskService_Delete_OwnerThenGone(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "alice", "a@x.com")
	task := env.createTask(t, user.ID, TaskInput{Title: "Ephemeral"})

	if err := env.tasks.Delete(ctx, task.ID, user.ID); err != nil {
		t.Fatalf("delete as owner: %v", err)
	}
	if _, err := env.tasks.Get(ctx, task.ID, user.ID); !IsNotFound(err) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestTaskService_Filters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice", "a@x.com")
	bob := env.createUser(t, "bob", "b@x.com")

	work, _ := env.categories.Create(ctx, CategoryInput{Name: "Work"})
	urgent, _ := env.tags.Create(ctx, "urgent")

	sept := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)
	oct := time.Date(2026, 10, 10, 10, 0, 0, 0, time.UTC)

	env.createTask(t, alice.ID, TaskInput{
		Title: "a1", Status: model.StatusDone, Priority: model.PriorityHigh,
		CategoryID: &work.ID, TagIDs: []uint{urgent.ID}, DueDate: &sept,
	})
	env.createTask(t, alice.ID, TaskInput{Title: "a2", DueDate: &oct})
	env.createTask(t, bob.ID, TaskInput{
		Title: "b1", Status: model.StatusDone, Priority: model.PriorityHigh,
		CategoryID: &work.ID, TagIDs: []uint{urgent.ID}, DueDate: &sept,
	})

	byStatus, err := env.tasks.ListByStatus(ctx, alice.ID, model.StatusDone)
	if err != nil {
		t.Fatalf("by status: %v", err)
	}
	if len(byStatus) != 1 || byStatus[0].Title != "a1" {
		t.Fatalf("status filter leaked across users: %+v", byStatus)
	}

	byPriority, err := env.tasks.ListByPriority(ctx, alice.ID, model.PriorityHigh)
	if err != nil {
		t.Fatalf("by priority: %v", err)
	}
	if len(byPriority) != 1 || byPriority[0].Title != "a1" {
		t.Fatalf("priority filter wrong: %+v", byPriority)
	}

	byCategory, err := env.tasks.ListByCategory(ctx, alice.ID, work.ID)
	if err != nil {
		t.Fatalf("by category: %v", err)
	}
	if len(byCategory) != 1 || byCategory[0].Title != "a1" {
		t.Fatalf("category filter wrong: %+v", byCategory)
	}

	byTag, err := env.tasks.ListByTag(ctx, alice.ID, urgent.ID)
	if err != nil {
		t.Fatalf("by tag: %v", err)
	}
	if len(byTag) != 1 || byTag[0].Title != "a1" {
		t.Fatalf("tag filter wrong: %+v", byTag)
	}

	dueBetween, err := env.tasks.ListDueBetween(ctx, alice.ID,
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("due between: %v", err)
	}
	if len(dueBetween) != 1 || dueBetween[0].Title != "a1" {
		t.Fatalf("due-between filter wrong: %+v", dueBetween)
	}

	all, err := env.tasks.ListForUser(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list for user: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 tasks for alice, got %d", len(all))
	}
}
