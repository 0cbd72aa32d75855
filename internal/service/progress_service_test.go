package service

import (
	"buriti_backend/internal/model"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetWatchedValidatesTuple(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "maria@example.com", model.Student)
	course := env.seedCourse(t, "Informática Básica")
	other := env.seedCourse(t, "Outro Curso")
	module := env.seedModule(t, course.ID, "Módulo 1", 1)
	otherModule := env.seedModule(t, other.ID, "Módulo X", 1)
	lesson := env.seedLesson(t, module.ID, "Aula 1", 1)

	// module from another course
	err := env.progress.SetWatched(user.ID, course.ID, otherModule.ID, lesson.ID, true)
	requireStatus(t, err, http.StatusNotFound)

	// lesson from another module
	foreign := env.seedLesson(t, otherModule.ID, "Aula X", 1)
	err = env.progress.SetWatched(user.ID, course.ID, module.ID, foreign.ID, true)
	requireStatus(t, err, http.StatusNotFound)

	// unknown ids
	err = env.progress.SetWatched(user.ID, course.ID, 999, lesson.ID, true)
	requireStatus(t, err, http.StatusNotFound)
	err = env.progress.SetWatched(user.ID, course.ID, module.ID, 999, true)
	requireStatus(t, err, http.StatusNotFound)

	var count int64
	require.NoError(t, env.db.Model(&model.ProgressRecord{}).Count(&count).Error)
	assert.EqualValues(t, 0, count, "rejected writes leave no orphan rows")

	require.NoError(t, env.progress.SetWatched(user.ID, course.ID, module.ID, lesson.ID, true))
}

func TestCourseProgressSummary(t *testing.T) {
	env := newTestEnv(t)
	maria := env.seedUser(t, "maria@example.com", model.Student)
	joao := env.seedUser(t, "joao@example.com", model.Student)
	course := env.seedCourse(t, "Informática Básica")
	module := env.seedModule(t, course.ID, "Módulo 1", 1)
	l1 := env.seedLesson(t, module.ID, "Aula 1", 1)
	l2 := env.seedLesson(t, module.ID, "Aula 2", 2)

	env.enroll(t, maria.ID, course.ID, model.EnrollmentActive)
	env.enroll(t, joao.ID, course.ID, model.EnrollmentActive)

	require.NoError(t, env.progress.SetWatched(maria.ID, course.ID, module.ID, l1.ID, true))
	require.NoError(t, env.progress.SetWatched(maria.ID, course.ID, module.ID, l2.ID, true))
	require.NoError(t, env.progress.SetWatched(joao.ID, course.ID, module.ID, l1.ID, true))

	summary, err := env.progress.CourseProgressSummary(course.ID)
	require.NoError(t, err)
	require.Len(t, summary, 2)

	byID := make(map[uint]int, len(summary))
	for _, s := range summary {
		byID[s.ID] = s.Progress
	}
	assert.Equal(t, 100, byID[maria.ID])
	assert.Equal(t, 50, byID[joao.ID])
}

func TestCourseProgressSummaryZeroLessonCourse(t *testing.T) {
	env := newTestEnv(t)
	maria := env.seedUser(t, "maria@example.com", model.Student)
	course := env.seedCourse(t, "Curso Vazio")
	env.enroll(t, maria.ID, course.ID, model.EnrollmentActive)

	summary, err := env.progress.CourseProgressSummary(course.ID)
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, 0, summary[0].Progress)
}
