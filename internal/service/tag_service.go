package service

import (
	"context"
	"errors"

	"tasktracker/internal/model"
	"tasktracker/internal/repository"
)

// TagDTO is the outward representation of a tag.
type TagDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// TagService enforces the name-uniqueness invariant on tags.
type TagService struct {
	repo *repository.TagRepository
}

func NewTagService(repo *repository.TagRepository) *TagService {
	return &TagService{repo: repo}
}

func (s *TagService) List(ctx context.Context) ([]TagDTO, error) {
	tags, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]TagDTO, 0, len(tags))
	for _, t := range tags {
		dtos = append(dtos, toTagDTO(t))
	}
	return dtos, nil
}

func (s *TagService) Get(ctx context.Context, id uint) (*TagDTO, error) {
	tag, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundf("Tag not found with id: %d", id)
		}
		return nil, err
	}
	dto := toTagDTO(*tag)
	return &dto, nil
}

func (s *TagService) Create(ctx context.Context, name string) (*TagDTO, error) {
	if taken, err := s.repo.ExistsByName(ctx, name); err != nil {
		return nil, err
	} else if taken {
		return nil, duplicatef("Tag already exists: %s", name)
	}

	tag := model.Tag{Name: name}
	if err := s.repo.Create(ctx, &tag); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, duplicatef("Tag already exists: %s", name)
		}
		return nil, err
	}

	dto := toTagDTO(tag)
	return &dto, nil
}

func (s *TagService) Update(ctx context.Context, id uint, name string) (*TagDTO, error) {
	tag, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundf("Tag not found with id: %d", id)
		}
		return nil, err
	}

	if name != tag.Name {
		if taken, err := s.repo.ExistsByName(ctx, name); err != nil {
			return nil, err
		} else if taken {
			return nil, duplicatef("Tag already exists: %s", name)
		}
	}

	tag.Name = name
	if err := s.repo.Save(ctx, tag); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, duplicatef("Tag already exists: %s", name)
		}
		return nil, err
	}

	dto := toTagDTO(*tag)
	return &dto, nil
}

func (s *TagService) Delete(ctx context.Context, id uint) error {
	tag, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundf("Tag not found with id: %d", id)
		}
		return err
	}
	return s.repo.Delete(ctx, tag)
}

func toTagDTO(t model.Tag) TagDTO {
	return TagDTO{ID: t.ID, Name: t.Name}
}
