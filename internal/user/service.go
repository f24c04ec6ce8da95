package user

import (
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/hotelops/hotel-operations/internal"
	"github.com/hotelops/hotel-operations/internal/auth"
)

// Repository defines the data access methods for user accounts.
type Repository interface {
	Create(u *User) error
	GetByID(id int64) (*User, error)
	GetByEmail(email string) (*User, error)
	List() ([]User, error)
	Update(u *User) error
	Delete(id int64) error
}

// Service handles account administration.
type Service struct {
	repo       Repository
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo Repository, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// ListUsers returns every account, active or not.
func (s *Service) ListUsers() ([]User, error) {
	users, err := s.repo.List()
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

func (s *Service) GetUser(id int64) (*User, error) {
	return s.repo.GetByID(id)
}

// CreateUser creates an account with a freshly hashed password. Emails are
// stored lowercased and must be unique.
func (s *Service) CreateUser(dto CreateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("user validation failed", "error", err)
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(dto.Email))
	if existing, err := s.repo.GetByEmail(email); err == nil && existing != nil {
		return nil, internal.NewValidationError("email is already in use", internal.ErrCodeDuplicateEmail)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, internal.NewInternalError("failed to create user", err)
	}

	role, err := auth.ParseRole(dto.Role)
	if err != nil {
		return nil, internal.NewValidationError("invalid role", internal.ErrCodeValidationFailed)
	}

	u := &User{
		Email:        email,
		Name:         dto.Name,
		PasswordHash: string(hash),
		Role:         role,
		Department:   dto.Department,
		Location:     dto.Location,
		IsActive:     true,
	}

	if err := s.repo.Create(u); err != nil {
		s.logger.Error("failed to create user", "error", err, "email", email)
		return nil, err
	}

	s.logger.Info("user created", "user_id", u.ID, "role", u.Role)
	return u, nil
}

// UpdateUser applies a partial update, rehashing the password when provided.
func (s *Service) UpdateUser(id int64, dto UpdateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("user update validation failed", "error", err, "user_id", id)
		return nil, err
	}

	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*dto.Email))
		if email != u.Email {
			if existing, err := s.repo.GetByEmail(email); err == nil && existing != nil {
				return nil, internal.NewValidationError("email is already in use", internal.ErrCodeDuplicateEmail)
			}
			u.Email = email
		}
	}
	if dto.Name != nil {
		u.Name = *dto.Name
	}
	if dto.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*dto.Password), s.bcryptCost)
		if err != nil {
			s.logger.Error("failed to hash password", "error", err, "user_id", id)
			return nil, internal.NewInternalError("failed to update user", err)
		}
		u.PasswordHash = string(hash)
	}
	if dto.Role != nil {
		role, err := auth.ParseRole(*dto.Role)
		if err != nil {
			return nil, internal.NewValidationError("invalid role", internal.ErrCodeValidationFailed)
		}
		u.Role = role
	}
	if dto.Department != nil {
		u.Department = *dto.Department
	}
	if dto.Location != nil {
		u.Location = *dto.Location
	}
	if dto.IsActive != nil {
		u.IsActive = *dto.IsActive
	}

	if err := s.repo.Update(u); err != nil {
		s.logger.Error("failed to update user", "error", err, "user_id", id)
		return nil, err
	}

	s.logger.Info("user updated", "user_id", id)
	return u, nil
}

// DeactivateUser soft-disables an account; existing tokens stop resolving at
// the auth middleware.
func (s *Service) DeactivateUser(id int64) error {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}

	u.IsActive = false
	if err := s.repo.Update(u); err != nil {
		s.logger.Error("failed to deactivate user", "error", err, "user_id", id)
		return err
	}

	s.logger.Info("user deactivated", "user_id", id)
	return nil
}

// DeleteUser removes an account permanently.
func (s *Service) DeleteUser(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete user", "error", err, "user_id", id)
		return err
	}

	s.logger.Info("user deleted", "user_id", id)
	return nil
}
