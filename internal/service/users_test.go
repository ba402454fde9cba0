package service

import (
	"context"
	"errors"
	"testing"

	"vitta/internal/models"
	"vitta/internal/repository"
)

// fakeUserRepo is an in-memory repository.Authorization keyed by id.
type fakeUserRepo struct {
	users map[int]models.User
}

func newFakeUserRepo(us ...models.User) *fakeUserRepo {
	f := &fakeUserRepo{users: map[int]models.User{}}
	for _, u := range us {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(username, hash, role string) (int, error) {
	id := len(f.users) + 1
	f.users[id] = models.User{ID: id, Username: username, PasswordHash: hash, Role: role}
	return id, nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByID(id int) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeUserRepo) List() ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateRole(id int, role string) error {
	u, ok := f.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Role = role
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) Delete(id int) error {
	if _, ok := f.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) CountByRole(role string) (int, error) {
	n := 0
	for _, u := range f.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func TestUserService_SetRole(t *testing.T) {
	tests := []struct {
		name     string
		users    []models.User
		id       int
		role     string
		wantErr  error
		wantRole string
		wantLogs int
	}{
		{
			name:     "promote viewer",
			users:    []models.User{{ID: 1, Username: "root", Role: models.RoleAdmin}, {ID: 2, Username: "ana", Role: models.RoleViewer}},
			id:       2,
			role:     models.RoleTechnician,
			wantRole: models.RoleTechnician,
			wantLogs: 1,
		},
		{
			name:     "same role is a no-op",
			users:    []models.User{{ID: 2, Username: "ana", Role: models.RoleViewer}},
			id:       2,
			role:     models.RoleViewer,
			wantRole: models.RoleViewer,
		},
		{
			name:    "unknown role",
			users:   []models.User{{ID: 2, Username: "ana", Role: models.RoleViewer}},
			id:      2,
			role:    "owner",
			wantErr: ErrValidation,
		},
		{
			name:    "unknown user",
			id:      7,
			role:    models.RoleAdmin,
			wantErr: ErrNotFound,
		},
		{
			name:     "cannot demote last admin",
			users:    []models.User{{ID: 1, Username: "root", Role: models.RoleAdmin}},
			id:       1,
			role:     models.RoleViewer,
			wantErr:  ErrLastAdmin,
			wantRole: models.RoleAdmin,
		},
		{
			name:     "can demote one of two admins",
			users:    []models.User{{ID: 1, Username: "root", Role: models.RoleAdmin}, {ID: 3, Username: "boss", Role: models.RoleAdmin}},
			id:       1,
			role:     models.RoleTechnician,
			wantRole: models.RoleTechnician,
			wantLogs: 1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepo(tt.users...)
			activity := &fakeActivityRepo{}
			svc := NewUserService(repo, activity)

			err := svc.SetRole(context.Background(), tt.id, tt.role)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SetRole err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantRole != "" && repo.users[tt.id].Role != tt.wantRole {
				t.Fatalf("role = %q, want %q", repo.users[tt.id].Role, tt.wantRole)
			}
			if len(activity.appended) != tt.wantLogs {
				t.Fatalf("activity entries = %d, want %d", len(activity.appended), tt.wantLogs)
			}
		})
	}
}

func TestUserService_DeleteUser(t *testing.T) {
	repo := newFakeUserRepo(
		models.User{ID: 1, Username: "root", Role: models.RoleAdmin},
		models.User{ID: 2, Username: "ana", Role: models.RoleTechnician},
	)
	activity := &fakeActivityRepo{}
	svc := NewUserService(repo, activity)
	ctx := context.Background()

	if err := svc.DeleteUser(ctx, 1); !errors.Is(err, ErrLastAdmin) {
		t.Fatalf("DeleteUser(admin) = %v, want ErrLastAdmin", err)
	}
	if err := svc.DeleteUser(ctx, 2); err != nil {
		t.Fatalf("DeleteUser(2) = %v", err)
	}
	if err := svc.DeleteUser(ctx, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second DeleteUser(2) = %v, want ErrNotFound", err)
	}

	users, err := svc.ListUsers()
	if err != nil || len(users) != 1 || users[0].Username != "root" {
		t.Fatalf("ListUsers = %+v, %v", users, err)
	}
	if len(activity.types()) != 1 || activity.types()[0] != models.ActivityUserDeleted {
		t.Fatalf("activity = %v", activity.types())
	}
}
