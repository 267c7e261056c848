package service

import (
	"context"
	"errors"
	"time"

	"tasktracker/internal/model"
	"tasktracker/internal/repository"
)

// TaskInput carries the fields accepted when creating or updating a task.
// Updates have full-replace semantics: every field overwrites the stored
// value. CategoryID nil clears the category; TagIDs nil or empty clears the
// tag set, non-empty replaces it wholesale.
type TaskInput struct {
	Title       string
	Description string
	Status      model.Status
	Priority    model.Priority
	DueDate     *time.Time
	CategoryID  *uint
	TagIDs      []uint
}

// TaskDTO is the outward representation of a task. The owning user is never
// exposed; the category and tags are flattened.
type TaskDTO struct {
	ID           uint           `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description,omitempty"`
	Status       model.Status   `json:"status"`
	Priority     model.Priority `json:"priority"`
	DueDate      *time.Time     `json:"dueDate,omitempty"`
	CategoryID   *uint          `json:"categoryId,omitempty"`
	CategoryName string         `json:"categoryName,omitempty"`
	TagIDs       []uint         `json:"tagIds,omitempty"`
	TagNames     []string       `json:"tagNames,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// TaskService enforces ownership scoping and association resolution on top
// of the repositories.
type TaskService struct {
	taskRepo     *repository.TaskRepository
	userRepo     *repository.UserRepository
	categoryRepo *repository.CategoryRepository
	tagRepo      *repository.TagRepository
}

func NewTaskService(
	taskRepo *repository.TaskRepository,
	userRepo *repository.UserRepository,
	categoryRepo *repository.CategoryRepository,
	tagRepo *repository.TagRepository,
) *TaskService {
	return &TaskService{
		taskRepo:     taskRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
	}
}

func (s *TaskService) ListForUser(ctx context.Context, userID uint) ([]TaskDTO, error) {
	tasks, err := s.taskRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toTaskDTOs(tasks), nil
}

func (s *TaskService) Get(ctx context.Context, id, userID uint) (*TaskDTO, error) {
	task, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	dto := toTaskDTO(*task)
	return &dto, nil
}

func (s *TaskService) Create(ctx context.Context, userID uint, in TaskInput) (*TaskDTO, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundf("User not found with id: %d", userID)
		}
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = model.StatusTodo
	}
	priority := in.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	task := model.Task{
		UserID:      user.ID,
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     in.DueDate,
	}

	if in.CategoryID != nil {
		category, err := s.resolveCategory(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		task.CategoryID = &category.ID
		task.Category = category
	}

	tags, err := s.resolveTags(ctx, in.TagIDs)
	if err != nil {
		return nil, err
	}
	task.Tags = tags

	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, err
	}

	dto := toTaskDTO(task)
	return &dto, nil
}

func (s *TaskService) Update(ctx context.Context, id, userID uint, in TaskInput) (*TaskDTO, error) {
	task, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	task.Title = in.Title
	task.Description = in.Description
	task.Status = in.Status
	task.Priority = in.Priority
	task.DueDate = in.DueDate

	if in.CategoryID != nil {
		category, err := s.resolveCategory(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		task.CategoryID = &category.ID
		task.Category = category
	} else {
		task.CategoryID = nil
		task.Category = nil
	}

	tags, err := s.resolveTags(ctx, in.TagIDs)
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.Save(ctx, task, tags); err != nil {
		return nil, err
	}

	dto := toTaskDTO(*task)
	return &dto, nil
}

func (s *TaskService) Delete(ctx context.Context, id, userID uint) error {
	task, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	return s.taskRepo.Delete(ctx, task)
}

func (s *TaskService) ListByStatus(ctx context.Context, userID uint, status model.Status) ([]TaskDTO, error) {
	tasks, err := s.taskRepo.FindByUserAndStatus(ctx, userID, status)
	if err != nil {
		return nil, err
	}
	return toTaskDTOs(tasks), nil
}

func (s *TaskService) ListByPriority(ctx context.Context, userID uint, priority model.Priority) ([]TaskDTO, error) {
	tasks, err := s.taskRepo.FindByUserAndPriority(ctx, userID, priority)
	if err != nil {
		return nil, err
	}
	return toTaskDTOs(tasks), nil
}

func (s *TaskService) ListByCategory(ctx context.Context, userID, categoryID uint) ([]TaskDTO, error) {
	tasks, err := s.taskRepo.FindByUserAndCategory(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}
	return toTaskDTOs(tasks), nil
}

func (s *TaskService) ListByTag(ctx context.Context, userID, tagID uint) ([]TaskDTO, error) {
	tasks, err := s.taskRepo.FindByUserAndTag(ctx, userID, tagID)
	if err != nil {
		return nil, err
	}
	return toTaskDTOs(tasks), nil
}

func (s *TaskService) ListDueBetween(ctx context.Context, userID uint, start, end time.Time) ([]TaskDTO, error) {
	tasks, err := s.taskRepo.FindByUserDueBetween(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	return toTaskDTOs(tasks), nil
}

// findOwned loads a task through the ownership-scoped query, so a task owned
// by another user reports the same NotFound as a missing one.
func (s *TaskService) findOwned(ctx context.Context, id, userID uint) (*model.Task, error) {
	task, err := s.taskRepo.FindByIDForUser(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundf("Task not found with id: %d", id)
		}
		return nil, err
	}
	return task, nil
}

func (s *TaskService) resolveCategory(ctx context.Context, id uint) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundf("Category not found with id: %d", id)
		}
		return nil, err
	}
	return category, nil
}

// resolveTags loads every referenced tag, failing on the first missing id.
func (s *TaskService) resolveTags(ctx context.Context, ids []uint) ([]model.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	tags := make([]model.Tag, 0, len(ids))
	for _, id := range ids {
		tag, err := s.tagRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, notFoundf("Tag not found with id: %d", id)
			}
			return nil, err
		}
		tags = append(tags, *tag)
	}
	return tags, nil
}

func toTaskDTO(t model.Task) TaskDTO {
	dto := TaskDTO{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}

	if t.Category != nil {
		dto.CategoryID = &t.Category.ID
		dto.CategoryName = t.Category.Name
	}

	if len(t.Tags) > 0 {
		dto.TagIDs = make([]uint, 0, len(t.Tags))
		dto.TagNames = make([]string, 0, len(t.Tags))
		for _, tag := range t.Tags {
			dto.TagIDs = append(dto.TagIDs, tag.ID)
			dto.TagNames = append(dto.TagNames, tag.Name)
		}
	}

	return dto
}

func toTaskDTOs(tasks []model.Task) []TaskDTO {
	dtos := make([]TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		dtos = append(dtos, toTaskDTO(t))
	}
	return dtos
}
