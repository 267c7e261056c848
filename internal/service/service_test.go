package service

import (
	"context"
	"path/filepath"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"tasktracker/internal/auth"
	"tasktracker/internal/repository"
)

type testEnv struct {
	users      *UserService
	categories *CategoryService
	tags       *TagService
	tasks      *TaskService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := repository.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	tagRepo := repository.NewTagRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	return &testEnv{
		users:      NewUserService(userRepo, hasher),
		categories: NewCategoryService(categoryRepo),
		tags:       NewTagService(tagRepo),
		tasks:      NewTaskService(taskRepo, userRepo, categoryRepo, tagRepo),
	}
}

func (e *testEnv) createUser(t *testing.T, username, email string) *UserDTO {
	t.Helper()
	user, err := e.users.Create(context.Background(), UserInput{
		Username: username,
		Email:    email,
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func (e *testEnv) createTask(t *testing.T, userID uint, in TaskInput) *TaskDTO {
	t.Helper()
	task, err := e.tasks.Create(context.Background(), userID, in)
	if err != nil {
		t.Fatalf("create task %q: %v", in.Title, err)
	}
	return task
}
