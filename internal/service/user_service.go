package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tasktracker/internal/model"
	"tasktracker/internal/repository"
)

// PasswordHasher abstracts the hashing primitive used for stored passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

// UserInput carries the fields accepted when creating or updating a user.
// On update, an empty Password keeps the stored hash.
type UserInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      model.Role
}

// UserDTO is the outward representation of a user. It deliberately has no
// password field.
type UserDTO struct {
	ID        uint       `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName,omitempty"`
	LastName  string     `json:"lastName,omitempty"`
	Role      model.Role `json:"role"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// UserService enforces the uniqueness invariants on accounts and keeps
// password handling behind the hasher collaborator.
type UserService struct {
	repo   *repository.UserRepository
	hasher PasswordHasher
}

func NewUserService(repo *repository.UserRepository, hasher PasswordHasher) *UserService {
	return &UserService{repo: repo, hasher: hasher}
}

func (s *UserService) List(ctx context.Context) ([]UserDTO, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, toUserDTO(u))
	}
	return dtos, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*UserDTO, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundf("User not found with id: %d", id)
		}
		return nil, err
	}
	dto := toUserDTO(*user)
	return &dto, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*UserDTO, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundf("User not found with username: %s", username)
		}
		return nil, err
	}
	dto := toUserDTO(*user)
	return &dto, nil
}

func (s *UserService) Create(ctx context.Context, in UserInput) (*UserDTO, error) {
	if taken, err := s.repo.ExistsByUsername(ctx, in.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, duplicatef("Username already exists: %s", in.Username)
	}

	if taken, err := s.repo.ExistsByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, duplicatef("Email already exists: %s", in.Email)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := in.Role
	if role == "" {
		role = model.RoleUser
	}

	user := model.User{
		Username:  in.Username,
		Email:     in.Email,
		Password:  hash,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Role:      role,
		Active:    true,
	}

	if err := s.repo.Create(ctx, &user); err != nil {
		// A lost uniqueness race surfaces the same way as the pre-check.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, duplicatef("Username or email already exists: %s", in.Username)
		}
		return nil, err
	}

	dto := toUserDTO(user)
	return &dto, nil
}

func (s *UserService) Update(ctx context.Context, id uint, in UserInput) (*UserDTO, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundf("User not found with id: %d", id)
		}
		return nil, err
	}

	// Uniqueness is only re-checked when the value actually changed, so an
	// update carrying the stored username or email never self-collides.
	if in.Username != user.Username {
		if taken, err := s.repo.ExistsByUsername(ctx, in.Username); err != nil {
			return nil, err
		} else if taken {
			return nil, duplicatef("Username already exists: %s", in.Username)
		}
	}

	if in.Email != user.Email {
		if taken, err := s.repo.ExistsByEmail(ctx, in.Email); err != nil {
			return nil, err
		} else if taken {
			return nil, duplicatef("Email already exists: %s", in.Email)
		}
	}

	user.Username = in.Username
	user.Email = in.Email
	user.FirstName = in.FirstName
	user.LastName = in.LastName

	if in.Password != "" {
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.Password = hash
	}

	if err := s.repo.Save(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, duplicatef("Username or email already exists: %s", in.Username)
		}
		return nil, err
	}

	dto := toUserDTO(*user)
	return &dto, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundf("User not found with id: %d", id)
		}
		return err
	}
	return s.repo.Delete(ctx, user)
}

// Authenticate verifies a username/password pair. Unknown usernames and
// wrong passwords yield the same error.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*UserDTO, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := s.hasher.Compare(user.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	dto := toUserDTO(*user)
	return &dto, nil
}

func toUserDTO(u model.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
