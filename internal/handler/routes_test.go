package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sergiomvp10/Emunahacademy/internal/memstore"
	"github.com/sergiomvp10/Emunahacademy/internal/models"
	"github.com/sergiomvp10/Emunahacademy/internal/service"
	"github.com/sergiomvp10/Emunahacademy/pkg/config"
)

type testEnv struct {
	router *gin.Engine
	store  *memstore.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memstore.New()
	logger := zap.NewNop()
	jwtCfg := config.JWTConfig{Secret: "test-secret", Expiration: time.Hour, Issuer: "emunah-academy-test"}

	auth := service.NewAuthService(store.Users(), jwtCfg, nil, logger)
	progress := service.NewProgressService(store.Enrollments(), store.Courses(), store.Lessons(), store.Quizzes(), store.Evaluations(), store.Users(), logger)

	handlers := Handlers{
		Auth:         NewAuthHandler(auth),
		Users:        NewUserHandler(service.NewUserService(store.Users(), logger)),
		Courses:      NewCourseHandler(service.NewCourseService(store.Courses(), store.Users(), nil, logger)),
		Lessons:      NewLessonHandler(service.NewLessonService(store.Lessons(), store.Courses(), store.Users(), nil, logger)),
		Quizzes:      NewQuizHandler(service.NewQuizService(store.Quizzes(), store.Lessons(), store.Users(), nil, logger)),
		Evaluations:  NewEvaluationHandler(service.NewEvaluationService(store.Evaluations(), store.Courses(), store.Users(), nil, logger)),
		Calendar:     NewCalendarHandler(service.NewCalendarService(store.Calendar(), store.Users(), nil, logger)),
		Enrollments:  NewEnrollmentHandler(service.NewEnrollmentService(store.Enrollments(), store.Courses(), store.Users(), nil, logger)),
		Progress:     NewProgressHandler(progress),
		Parents:      NewParentHandler(service.NewParentService(store.Parents(), store.Users(), progress, nil, logger)),
		Messages:     NewMessageHandler(service.NewMessageService(store.Messages(), store.Users(), nil, logger)),
		Content:      NewContentHandler(service.NewContentService(store.Content(), nil, logger)),
		Applications: NewApplicationHandler(service.NewApplicationService(store.Applications(), store.Users(), nil, logger)),
		Stats:        NewStatsHandler(service.NewStatsService(store.Stats(), nil, 0, logger)),
	}

	router := gin.New()
	RegisterRoutes(router, "/api", handlers, auth)
	return &testEnv{router: router, store: store}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func (e *testEnv) seedUser(t *testing.T, email, name string, role models.UserRole) int64 {
	t.Helper()
	user := &models.User{Email: email, Name: name, Role: role, Active: true}
	require.NoError(t, e.store.Users().Create(context.Background(), user))
	return user.ID
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthFlowOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"email":    "ana@example.com",
		"name":     "Ana",
		"role":     "student",
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var token models.TokenResponse
	decodeData(t, rec, &token)
	require.NotEmpty(t, token.AccessToken)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	meRec := httptest.NewRecorder()
	env.router.ServeHTTP(meRec, req)
	require.Equal(t, http.StatusOK, meRec.Code)

	var me models.User
	decodeData(t, meRec, &me)
	assert.Equal(t, "ana@example.com", me.Email)

	// Missing bearer token is rejected.
	anonRec := env.do(t, http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, anonRec.Code)
}

func TestCourseLifecycleOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	teacherID := env.seedUser(t, "teacher@example.com", "Teacher", models.RoleTeacher)

	rec := env.do(t, http.MethodPost, fmt.Sprintf("/api/courses?teacher_id=%d", teacherID), map[string]interface{}{
		"title":       "Algebra",
		"description": "Equations",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var course models.Course
	decodeData(t, rec, &course)
	assert.False(t, course.Published)

	pubRec := env.do(t, http.MethodPost, fmt.Sprintf("/api/courses/%d/publish", course.ID), nil)
	require.Equal(t, http.StatusOK, pubRec.Code)

	listRec := env.do(t, http.MethodGet, "/api/courses?published_only=true", nil)
	require.Equal(t, http.StatusOK, listRec.Code)
	var courses []models.CourseDetail
	decodeData(t, listRec, &courses)
	require.Len(t, courses, 1)
	assert.Equal(t, "Teacher", courses[0].TeacherName)

	delRec := env.do(t, http.MethodDelete, fmt.Sprintf("/api/courses/%d", course.ID), nil)
	assert.Equal(t, http.StatusNoContent, delRec.Code)

	missingRec := env.do(t, http.MethodGet, fmt.Sprintf("/api/courses/%d", course.ID), nil)
	assert.Equal(t, http.StatusNotFound, missingRec.Code)
}

func TestQuizSubmitOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	teacherID := env.seedUser(t, "teacher@example.com", "Teacher", models.RoleTeacher)
	studentID := env.seedUser(t, "student@example.com", "Student", models.RoleStudent)

	course := &models.Course{Title: "Math", Description: "Numbers", TeacherID: teacherID}
	require.NoError(t, env.store.Courses().Create(ctx, course))
	lesson := &models.Lesson{
		CourseID: course.ID,
		Title:    "Quiz 1",
		Kind:     models.LessonQuiz,
		Content:  `[{"question":"1+1","options":["1","2"],"correct_answer":1}]`,
		Order:    1,
	}
	require.NoError(t, env.store.Lessons().Create(ctx, lesson))

	rec := env.do(t, http.MethodPost, fmt.Sprintf("/api/quizzes/submit?student_id=%d", studentID), map[string]interface{}{
		"lesson_id": lesson.ID,
		"answers":   []int{1},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var result models.QuizResult
	decodeData(t, rec, &result)
	assert.InDelta(t, 100.0, result.Score, 0.001)

	resultsRec := env.do(t, http.MethodGet, fmt.Sprintf("/api/quizzes/results/%d", studentID), nil)
	require.Equal(t, http.StatusOK, resultsRec.Code)
	var results []models.QuizResult
	decodeData(t, resultsRec, &results)
	assert.Len(t, results, 1)
}

func TestApplicationReviewOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	directorID := env.seedUser(t, "director@example.com", "Director", models.RoleDirector)

	rec := env.do(t, http.MethodPost, "/api/applications", map[string]interface{}{
		"student_name": "Noa Levi",
		"student_age":  9,
		"grade_level":  "4th",
		"parent_name":  "Dana Levi",
		"parent_email": "dana@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var app models.StudentApplication
	decodeData(t, rec, &app)
	assert.Equal(t, models.ApplicationPending, app.Status)

	reviewRec := env.do(t, http.MethodPut, fmt.Sprintf("/api/applications/%d/status?reviewed_by=%d", app.ID, directorID), map[string]interface{}{
		"status": "approved",
	})
	require.Equal(t, http.StatusOK, reviewRec.Code, reviewRec.Body.String())

	var reviewed models.StudentApplication
	decodeData(t, reviewRec, &reviewed)
	assert.Equal(t, models.ApplicationApproved, reviewed.Status)
	require.NotNil(t, reviewed.ReviewedBy)
	assert.Equal(t, directorID, *reviewed.ReviewedBy)
}

func TestSiteContentOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/site-content", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var sections []models.SiteContent
	decodeData(t, rec, &sections)
	assert.Len(t, sections, len(models.SiteSections))

	updRec := env.do(t, http.MethodPut, "/api/site-content/contact", map[string]interface{}{
		"content": map[string]string{"title": "Reach Out"},
	})
	require.Equal(t, http.StatusOK, updRec.Code, updRec.Body.String())

	badRec := env.do(t, http.MethodPut, "/api/site-content/blog", map[string]interface{}{
		"content": map[string]string{},
	})
	assert.Equal(t, http.StatusBadRequest, badRec.Code)
}

func TestProgressExportOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	studentID := env.seedUser(t, "student@example.com", "Student", models.RoleStudent)

	rec := env.do(t, http.MethodGet, fmt.Sprintf("/api/progress/%d/export?format=csv", studentID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")

	badRec := env.do(t, http.MethodGet, fmt.Sprintf("/api/progress/%d/export?format=xml", studentID), nil)
	assert.Equal(t, http.StatusBadRequest, badRec.Code)
}

func TestStatisticsOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "student@example.com", "Student", models.RoleStudent)

	rec := env.do(t, http.MethodGet, "/api/statistics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats models.Statistics
	decodeData(t, rec, &stats)
	assert.Equal(t, 1, stats.TotalUsers)
	assert.Equal(t, 1, stats.TotalStudents)
}
