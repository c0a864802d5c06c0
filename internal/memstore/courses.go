package memstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
)

// CourseStore provides course access over the in-memory store.
type CourseStore struct {
	s *Store
}

// List returns courses matching the filter with teacher names inlined.
func (c *CourseStore) List(ctx context.Context, filter models.CourseFilter) ([]models.CourseDetail, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	details := make([]models.CourseDetail, 0, len(c.s.courses))
	for _, course := range c.s.courses {
		if filter.TeacherID != 0 && course.TeacherID != filter.TeacherID {
			continue
		}
		if filter.PublishedOnly && !course.Published {
			continue
		}
		details = append(details, models.CourseDetail{Course: course, TeacherName: c.s.userName(course.TeacherID)})
	}
	return details, nil
}

// FindByID returns a course by identifier.
func (c *CourseStore) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	for i := range c.s.courses {
		if c.s.courses[i].ID == id {
			course := c.s.courses[i]
			return &course, nil
		}
	}
	return nil, sql.ErrNoRows
}

// FindDetailByID returns a course with the teacher name inlined.
func (c *CourseStore) FindDetailByID(ctx context.Context, id int64) (*models.CourseDetail, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	for i := range c.s.courses {
		if c.s.courses[i].ID == id {
			detail := models.CourseDetail{Course: c.s.courses[i], TeacherName: c.s.userName(c.s.courses[i].TeacherID)}
			return &detail, nil
		}
	}
	return nil, sql.ErrNoRows
}

// Create stores a new course and populates its id.
func (c *CourseStore) Create(ctx context.Context, course *models.Course) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now().UTC()
	}
	course.ID = c.s.nextID("course")
	c.s.courses = append(c.s.courses, *course)
	return nil
}

// Update replaces the editable course fields.
func (c *CourseStore) Update(ctx context.Context, id int64, req models.CourseRequest) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	for i := range c.s.courses {
		if c.s.courses[i].ID == id {
			c.s.courses[i].Title = req.Title
			c.s.courses[i].Description = req.Description
			c.s.courses[i].ThumbnailURL = req.ThumbnailURL
			c.s.courses[i].GradeLevel = req.GradeLevel
			return nil
		}
	}
	return nil
}

// Publish flips the published flag to true. Idempotent.
func (c *CourseStore) Publish(ctx context.Context, id int64) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	for i := range c.s.courses {
		if c.s.courses[i].ID == id {
			c.s.courses[i].Published = true
			return nil
		}
	}
	return nil
}

// Delete removes a course together with its lessons, completions, quiz
// results, enrollments, evaluations and submissions. Calendar events keep
// their row but lose the course reference.
func (c *CourseStore) Delete(ctx context.Context, id int64) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	for i := range c.s.courses {
		if c.s.courses[i].ID != id {
			continue
		}
		c.s.courses = append(c.s.courses[:i], c.s.courses[i+1:]...)

		lessonIDs := make(map[int64]bool)
		kept := c.s.lessons[:0]
		for _, l := range c.s.lessons {
			if l.CourseID == id {
				lessonIDs[l.ID] = true
				continue
			}
			kept = append(kept, l)
		}
		c.s.lessons = kept

		completions := c.s.completions[:0]
		for _, comp := range c.s.completions {
			if !lessonIDs[comp.LessonID] {
				completions = append(completions, comp)
			}
		}
		c.s.completions = completions

		results := c.s.quizResults[:0]
		for _, res := range c.s.quizResults {
			if !lessonIDs[res.LessonID] {
				results = append(results, res)
			}
		}
		c.s.quizResults = results

		enrollments := c.s.enrollments[:0]
		for _, e := range c.s.enrollments {
			if e.CourseID != id {
				enrollments = append(enrollments, e)
			}
		}
		c.s.enrollments = enrollments

		evalIDs := make(map[int64]bool)
		evaluations := c.s.evaluations[:0]
		for _, ev := range c.s.evaluations {
			if ev.CourseID == id {
				evalIDs[ev.ID] = true
				continue
			}
			evaluations = append(evaluations, ev)
		}
		c.s.evaluations = evaluations

		submissions := c.s.submissions[:0]
		for _, sub := range c.s.submissions {
			if !evalIDs[sub.EvaluationID] {
				submissions = append(submissions, sub)
			}
		}
		c.s.submissions = submissions

		for i := range c.s.events {
			if c.s.events[i].CourseID != nil && *c.s.events[i].CourseID == id {
				c.s.events[i].CourseID = nil
			}
		}
		return nil
	}
	return nil
}
