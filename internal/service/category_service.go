package service

import (
	"context"
	"errors"

	"tasktracker/internal/model"
	"tasktracker/internal/repository"
)

// CategoryInput carries the fields accepted when creating or updating a
// category.
type CategoryInput struct {
	Name        string
	Description string
	ColorCode   string
}

// CategoryDTO is the outward representation of a category.
type CategoryDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ColorCode   string `json:"colorCode,omitempty"`
}

// CategoryService enforces the name-uniqueness invariant on categories.
type CategoryService struct {
	repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(ctx context.Context) ([]CategoryDTO, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, toCategoryDTO(c))
	}
	return dtos, nil
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*CategoryDTO, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundf("Category not found with id: %d", id)
		}
		return nil, err
	}
	dto := toCategoryDTO(*category)
	return &dto, nil
}

func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (*CategoryDTO, error) {
	if taken, err := s.repo.ExistsByName(ctx, in.Name); err != nil {
		return nil, err
	} else if taken {
		return nil, duplicatef("Category already exists: %s", in.Name)
	}

	category := model.Category{
		Name:        in.Name,
		Description: in.Description,
		ColorCode:   in.ColorCode,
	}

	if err := s.repo.Create(ctx, &category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, duplicatef("Category already exists: %s", in.Name)
		}
		return nil, err
	}

	dto := toCategoryDTO(category)
	return &dto, nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, in CategoryInput) (*CategoryDTO, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundf("Category not found with id: %d", id)
		}
		return nil, err
	}

	if in.Name != category.Name {
		if taken, err := s.repo.ExistsByName(ctx, in.Name); err != nil {
			return nil, err
		} else if taken {
			return nil, duplicatef("Category already exists: %s", in.Name)
		}
	}

	category.Name = in.Name
	category.Description = in.Description
	category.ColorCode = in.ColorCode

	if err := s.repo.Save(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, duplicatef("Category already exists: %s", in.Name)
		}
		return nil, err
	}

	dto := toCategoryDTO(*category)
	return &dto, nil
}

func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundf("Category not found with id: %d", id)
		}
		return err
	}
	return s.repo.Delete(ctx, category)
}

func toCategoryDTO(c model.Category) CategoryDTO {
	return CategoryDTO{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ColorCode:   c.ColorCode,
	}
}
