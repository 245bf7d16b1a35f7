package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/trackflow/trackflow-server/models"
)

const usersTable = "users"

// userColumns is the column order every user SELECT returns and
// scanUser expects.
var userColumns = []string{"id", "email", "password_hash", "name", "created_at", "updated_at"}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("email", "password_hash", "name", "created_at", "updated_at").
		Values(user.Email, user.PasswordHash, user.Name, user.CreatedAt, user.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
}

func buildFindUserByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
}

func buildListUsersQuery(b sq.StatementBuilderType, limit, offset int) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		OrderBy("id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
}

func buildCountUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(usersTable).
		ToSql()
}

func buildGetAllUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		OrderBy("id").
		ToSql()
}
