package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	// Registering as "postgres" keeps sqlx's bindvar rebinding on $N,
	// matching what lib/pq does at runtime.
	return sqlx.NewDb(db, "postgres"), mock, func() { db.Close() }
}

func userColumns() []string {
	return []string{"id", "email", "password_hash", "name", "role", "grade_level", "is_active", "created_at"}
}

func TestUserRepositoryCreateReturnsID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewUserRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("ana@example.com", "hash", "Ana", models.RoleStudent, nil, true, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	user := &models.User{Email: "ana@example.com", PasswordHash: "hash", Name: "Ana", Role: models.RoleStudent, Active: true}
	require.NoError(t, repo.Create(context.Background(), user))
	require.EqualValues(t, 7, user.ID)
	require.False(t, user.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewUserRepository(db)
	rows := sqlmock.NewRows(userColumns()).
		AddRow(3, "ana@example.com", "hash", "Ana", "student", nil, true, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, name, role, grade_level, is_active, created_at FROM users WHERE email = $1")).
		WithArgs("ana@example.com").
		WillReturnRows(rows)

	user, err := repo.FindByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	require.EqualValues(t, 3, user.ID)
	require.Equal(t, models.RoleStudent, user.Role)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryFindByEmailMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewUserRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "ghost@example.com")
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryListWithFilters(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewUserRepository(db)
	grade := "5th"
	rows := sqlmock.NewRows(userColumns()).
		AddRow(1, "s1@example.com", "hash", "S1", "student", grade, true, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE role = $1 AND grade_level = $2 ORDER BY id")).
		WithArgs(models.RoleStudent, "5th").
		WillReturnRows(rows)

	role := models.RoleStudent
	users, err := repo.List(context.Background(), models.UserFilter{Role: &role, GradeLevel: "5th"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "S1", users[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryUpdateGradeAndDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewUserRepository(db)
	grade := "6th"
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET grade_level = $2 WHERE id = $1")).
		WithArgs(int64(4), &grade).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.UpdateGrade(context.Background(), 4, &grade))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), 4))
	require.NoError(t, mock.ExpectationsWereMet())
}
