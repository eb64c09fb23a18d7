package service

import (
	"context"

	"github.com/cosmopedia/internal/models"
	"github.com/cosmopedia/internal/repository"
	"github.com/cosmopedia/internal/session"
)

// UserService handles profile operations
type UserService struct {
	userRepo *repository.UserRepository
	sessions session.Store
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repository.UserRepository, sessions session.Store) *UserService {
	return &UserService{
		userRepo: userRepo,
		sessions: sessions,
	}
}

// UpdateProfileRequest represents the partial profile update. Username
// and password are immutable through this path.
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,max=150"`
	LastName  *string `json:"last_name" binding:"omitempty,max=150"`
	Email     *string `json:"email" binding:"omitempty,email"`
}

// UpdateProfile applies the supplied fields and returns the profile
func (s *UserService) UpdateProfile(user *models.User, req *UpdateProfileRequest) (*models.UserProfile, error) {
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user.Profile(), nil
}

// DeleteAccount permanently removes the account: authored comments are
// force-deleted, owned articles survive with their author cleared, and
// every session of the account is revoked.
func (s *UserService) DeleteAccount(ctx context.Context, user *models.User) error {
	if err := s.userRepo.DeleteCascade(user.ID); err != nil {
		return err
	}
	return s.sessions.DeleteByUser(ctx, user.ID)
}
