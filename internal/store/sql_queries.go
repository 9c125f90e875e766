package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"gaia-backend/models"
)

const (
	createUser = `INSERT INTO users (id, username, password, email, first_name, last_name)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, username, password, email, first_name, last_name;`

	getUserByID = `SELECT id, username, password, email, first_name, last_name
    FROM users
    WHERE id = $1;`
)

// buildUpdateQuery dynamically builds the partial UPDATE statement with one
// SET clause per provided field. The caller guarantees at least one field is
// non-nil; squirrel rejects an UPDATE without SET clauses.
func buildUpdateQuery(id uuid.UUID, update models.UpdateUser) (string, []any, error) {
	builder := sq.Update("users").
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, username, password, email, first_name, last_name")

	if update.Username != nil {
		builder = builder.Set("username", *update.Username)
	}

	if update.Password != nil {
		builder = builder.Set("password", *update.Password)
	}

	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}

	if update.FirstName != nil {
		builder = builder.Set("first_name", *update.FirstName)
	}

	if update.LastName != nil {
		builder = builder.Set("last_name", *update.LastName)
	}

	return builder.ToSql()
}
