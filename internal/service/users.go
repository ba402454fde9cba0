package service

import (
	"context"
	"errors"
	"fmt"

	"vitta/internal/models"
	"vitta/internal/repository"
)

// ErrLastAdmin is returned when a change would leave no admin.
var ErrLastAdmin = errors.New("cannot remove the last admin")

type UserService struct {
	authRepo     repository.Authorization
	activityRepo repository.ActivityRepo
}

func NewUserService(authRepo repository.Authorization, activityRepo repository.ActivityRepo) *UserService {
	return &UserService{authRepo: authRepo, activityRepo: activityRepo}
}

func (s *UserService) ListUsers() ([]models.User, error) {
	return s.authRepo.List()
}

func (s *UserService) SetRole(ctx context.Context, id int, role string) error {
	if !models.ValidRole(role) {
		return fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}
	u, err := s.lookup(id)
	if err != nil {
		return err
	}
	if u.Role == role {
		return nil
	}
	if err := s.guardLastAdmin(u); err != nil {
		return err
	}
	if err := s.authRepo.UpdateRole(id, role); err != nil {
		return err
	}
	return record(ctx, s.activityRepo, models.ActivityUserRoleChanged,
		fmt.Sprintf("user %q role %s -> %s", u.Username, u.Role, role),
		map[string]any{"user_id": id, "from": u.Role, "to": role})
}

func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	u, err := s.lookup(id)
	if err != nil {
		return err
	}
	if err := s.guardLastAdmin(u); err != nil {
		return err
	}
	if err := s.authRepo.Delete(id); err != nil {
		return err
	}
	return record(ctx, s.activityRepo, models.ActivityUserDeleted,
		fmt.Sprintf("user %q deleted", u.Username),
		map[string]any{"user_id": id})
}

func (s *UserService) lookup(id int) (*models.User, error) {
	u, err := s.authRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

// guardLastAdmin fails when u is the only admin left.
func (s *UserService) guardLastAdmin(u *models.User) error {
	if u.Role != models.RoleAdmin {
		return nil
	}
	n, err := s.authRepo.CountByRole(models.RoleAdmin)
	if err != nil {
		return err
	}
	if n <= 1 {
		return ErrLastAdmin
	}
	return nil
}
