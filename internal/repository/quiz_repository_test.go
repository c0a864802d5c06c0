package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"github.com/stretchr/testify/require"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
)

func TestQuizRepositoryRecordSubmissionCommitsBothWrites(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewQuizRepository(db)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO quiz_results")).
		WithArgs(int64(2), int64(1), 75.0, 4, 3, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO lesson_completions")).
		WithArgs(int64(1), int64(2), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result := &models.QuizResult{LessonID: 2, StudentID: 1, Score: 75, TotalQuestions: 4, CorrectAnswers: 3}
	require.NoError(t, repo.RecordSubmission(context.Background(), result))
	require.EqualValues(t, 11, result.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizRepositoryRecordSubmissionRollsBackOnFailure(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewQuizRepository(db)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO quiz_results")).
		WithArgs(int64(2), int64(1), 75.0, 4, 3, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO lesson_completions")).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	result := &models.QuizResult{LessonID: 2, StudentID: 1, Score: 75, TotalQuestions: 4, CorrectAnswers: 3}
	require.Error(t, repo.RecordSubmission(context.Background(), result))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizRepositoryListByStudentAndLessons(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewQuizRepository(db)
	rows := sqlmock.NewRows([]string{"id", "lesson_id", "student_id", "score", "total_questions", "correct_answers", "submitted_at"}).
		AddRow(1, 2, 1, 80.0, 5, 4, time.Now()).
		AddRow(2, 3, 1, 60.0, 5, 3, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM quiz_results WHERE student_id = $1 AND lesson_id IN ($2, $3)")).
		WithArgs(int64(1), int64(2), int64(3)).
		WillReturnRows(rows)

	results, err := repo.ListByStudentAndLessons(context.Background(), 1, []int64{2, 3})
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizRepositoryListByStudentAndLessonsEmptySet(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewQuizRepository(db)
	results, err := repo.ListByStudentAndLessons(context.Background(), 1, nil)
	require.NoError(t, err)
	require.Empty(t, results)
	require.NoError(t, mock.ExpectationsWereMet())
}
