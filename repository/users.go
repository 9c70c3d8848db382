package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/hospice/hospital-locator-api/users"
)

var userColumns = []string{"id", "name", "email", "password_hash", "created_at"}

func insertUserQuery(user *users.User) sq.InsertBuilder {
	return psql.Insert("users").
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt)
}

func userByEmailQuery(email string) sq.SelectBuilder {
	return psql.Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": normalizeEmail(email)})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser stores user with a fresh id. A taken email yields ErrDuplicate.
func (repo *Repository) CreateUser(user *users.User) error {
	user.ID = uuid.NewString()
	user.Email = normalizeEmail(user.Email)
	user.CreatedAt = time.Now().UTC()

	if _, err := repo.exec(insertUserQuery(user)); err != nil {
		return fmt.Errorf("could not create user: %w", err)
	}

	return nil
}

func (repo *Repository) GetUserByEmail(email string) (*users.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	row, err := repo.queryRow(ctx, userByEmailQuery(email))
	if err != nil {
		return nil, err
	}

	var user users.User
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
		return nil, fmt.Errorf("could not query user: %w", translate(err))
	}

	return &user, nil
}
