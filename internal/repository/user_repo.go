package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"vitta/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Authorization interface at compile time.
var _ Authorization = (*UserRepository)(nil)

const (
	insertUserSQL           = `INSERT INTO users (username, password_hash, role) VALUES (?, ?, ?)`
	selectUserByUsernameSQL = `SELECT id, username, password_hash, role FROM users WHERE username = ?`
	selectUserByIDSQL       = `SELECT id, username, password_hash, role FROM users WHERE id = ?`
	selectUsersSQL          = `SELECT id, username, password_hash, role FROM users ORDER BY id ASC`
	updateUserRoleSQL       = `UPDATE users SET role = ? WHERE id = ?`
	deleteUserSQL           = `DELETE FROM users WHERE id = ?`
	countUsersByRoleSQL     = `SELECT COUNT(*) FROM users WHERE role = ?`
)

// Create inserts a new user and returns its ID.
func (r *UserRepository) Create(username, passwordHash, role string) (int, error) {
	res, err := r.db.Exec(insertUserSQL, username, passwordHash, role)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", username, err)
	}
	return int(lastID), nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	u, err := r.getOne(selectUserByUsernameSQL, username)
	if err != nil {
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return u, nil
}

// GetByID fetches a user by ID. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(id int) (*models.User, error) {
	u, err := r.getOne(selectUserByIDSQL, id)
	if err != nil {
		return nil, fmt.Errorf("select user %d: %w", id, err)
	}
	return u, nil
}

func (r *UserRepository) getOne(q string, arg any) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(q, arg).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) List() ([]models.User, error) {
	rows, err := r.db.Query(selectUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UserRepository) UpdateRole(id int, role string) error {
	res, err := r.db.Exec(updateUserRoleSQL, role, id)
	if err != nil {
		return fmt.Errorf("update role for user %d: %w", id, err)
	}
	return requireAffected(res)
}

func (r *UserRepository) Delete(id int) error {
	res, err := r.db.Exec(deleteUserSQL, id)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return requireAffected(res)
}

func (r *UserRepository) CountByRole(role string) (int, error) {
	var n int
	if err := r.db.QueryRow(countUsersByRoleSQL, role).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users with role %q: %w", role, err)
	}
	return n, nil
}
