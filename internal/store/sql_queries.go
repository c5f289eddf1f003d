package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/film-vault/models"
)

const (
	usersTable             = "users"
	collectionEntriesTable = "collection_entries"
)

var userColumns = []string{"user_id", "username", "email", "password_hash", "created_at", "updated_at"}

// buildCreateUserQuery builds the INSERT of a complete user row. Ids and
// timestamps are generated by the caller so that the statement is the same
// for every dialect and needs no RETURNING clause.
func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.UserID, user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildFindUserQuery builds a single-user SELECT filtered by one column.
func buildFindUserQuery(b sq.StatementBuilderType, column string, value any) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpdateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Update(usersTable).
		Set("username", user.Username).
		Set("email", user.Email).
		Set("password_hash", user.PasswordHash).
		Set("updated_at", user.UpdatedAt).
		Where(sq.Eq{"user_id": user.UserID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteUserQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	query, args, err := b.Delete(usersTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildAddEntryQuery builds an idempotent INSERT: a conflicting
// (user_id, movie_id, kind) row leaves the table unchanged and reports zero
// affected rows.
func buildAddEntryQuery(b sq.StatementBuilderType, entry models.CollectionEntry) (string, []any, error) {
	query, args, err := b.Insert(collectionEntriesTable).
		Columns("user_id", "movie_id", "kind", "created_at").
		Values(entry.UserID, entry.MovieID, entry.Kind.String(), entry.CreatedAt).
		Suffix("ON CONFLICT (user_id, movie_id, kind) DO NOTHING").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildListMovieIDsQuery(b sq.StatementBuilderType, userID string, kind models.CollectionKind) (string, []any, error) {
	query, args, err := b.Select("movie_id").
		From(collectionEntriesTable).
		Where(sq.Eq{"user_id": userID, "kind": kind.String()}).
		OrderBy("entry_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildRemoveEntryQuery(b sq.StatementBuilderType, userID string, movieID int64, kind models.CollectionKind) (string, []any, error) {
	query, args, err := b.Delete(collectionEntriesTable).
		Where(sq.Eq{"user_id": userID, "movie_id": movieID, "kind": kind.String()}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
