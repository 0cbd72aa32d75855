package service

import (
	"buriti_backend/internal/model"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) seedQuiz(t *testing.T, moduleID uint, correct string, minGrade int) *model.Quiz {
	t.Helper()
	quiz := &model.Quiz{
		ModuleID: moduleID,
		Question: "Qual a resposta?",
		Options:  `["a","b","c"]`,
		Correct:  correct,
		MinGrade: minGrade,
		Ordem:    1,
	}
	require.NoError(t, e.db.Create(quiz).Error)
	return quiz
}

func TestSubmitQuizResponseGradesOnInsert(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "maria@example.com", model.Student)
	course := env.seedCourse(t, "Informática Básica")
	module := env.seedModule(t, course.ID, "Módulo 1", 1)
	quiz := env.seedQuiz(t, module.ID, "b", 7)
	env.enroll(t, user.ID, course.ID, model.EnrollmentActive)

	right, err := env.content.SubmitQuizResponse(user.ID, quiz.ID, "b")
	require.NoError(t, err)
	assert.True(t, right.Correct)
	assert.Equal(t, 7, right.Grade)

	wrong, err := env.content.SubmitQuizResponse(user.ID, quiz.ID, "a")
	require.NoError(t, err)
	assert.False(t, wrong.Correct)
	assert.Equal(t, 0, wrong.Grade)

	// attempts are append-only
	var count int64
	require.NoError(t, env.db.Model(&model.QuizResponse{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestSubmitQuizResponseRequiresEnrollment(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "maria@example.com", model.Student)
	course := env.seedCourse(t, "Informática Básica")
	module := env.seedModule(t, course.ID, "Módulo 1", 1)
	quiz := env.seedQuiz(t, module.ID, "b", 7)

	_, err := env.content.SubmitQuizResponse(user.ID, quiz.ID, "b")
	requireStatus(t, err, http.StatusForbidden)

	env.enroll(t, user.ID, course.ID, model.EnrollmentInactive)
	_, err = env.content.SubmitQuizResponse(user.ID, quiz.ID, "b")
	requireStatus(t, err, http.StatusForbidden)

	var count int64
	require.NoError(t, env.db.Model(&model.QuizResponse{}).Count(&count).Error)
	assert.EqualValues(t, 0, count, "a refused submission leaves no row")
}

func TestSubmitQuizResponseUnknownQuiz(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "maria@example.com", model.Student)

	// missing quiz answers 404, not 403, even without any enrollment
	_, err := env.content.SubmitQuizResponse(user.ID, 999, "b")
	requireStatus(t, err, http.StatusNotFound)
}

func TestReorderChecksModuleBelongsToCourse(t *testing.T) {
	env := newTestEnv(t)
	courseA := env.seedCourse(t, "Curso A")
	courseB := env.seedCourse(t, "Curso B")
	module := env.seedModule(t, courseA.ID, "Módulo 1", 1)
	v1 := &model.Video{ModuleID: module.ID, Title: "v1", URL: "/uploads/v1.mp4", Ordem: 1}
	require.NoError(t, env.db.Create(v1).Error)

	err := env.content.ReorderVideos(courseB.ID, module.ID, []uint{v1.ID})
	requireStatus(t, err, http.StatusNotFound)

	require.NoError(t, env.content.ReorderVideos(courseA.ID, module.ID, []uint{v1.ID}))
}

func TestCreateQuizValidation(t *testing.T) {
	env := newTestEnv(t)
	course := env.seedCourse(t, "Informática Básica")
	module := env.seedModule(t, course.ID, "Módulo 1", 1)

	err := env.content.CreateQuiz(module.ID, &model.Quiz{Question: "q", Correct: "a"}, nil)
	requireStatus(t, err, http.StatusBadRequest)

	err = env.content.CreateQuiz(module.ID, &model.Quiz{Question: "q", Correct: "a", MinGrade: 7}, nil)
	require.NoError(t, err)

	err = env.content.CreateQuiz(999, &model.Quiz{Question: "q", Correct: "a", MinGrade: 7}, nil)
	requireStatus(t, err, http.StatusNotFound)
}

func TestCreateLiveSessionAppends(t *testing.T) {
	env := newTestEnv(t)
	course := env.seedCourse(t, "Informática Básica")
	module := env.seedModule(t, course.ID, "Módulo 1", 1)

	when := time.Date(2026, time.September, 10, 19, 0, 0, 0, time.UTC)

	s1 := &model.LiveSession{Title: "Aula 1", MeetingURL: "https://meet.jit.si/a", ScheduledAt: when}
	require.NoError(t, env.content.CreateLiveSession(module.ID, s1, nil))
	assert.Equal(t, 1, s1.Ordem)

	s2 := &model.LiveSession{Title: "Aula 2", MeetingURL: "https://meet.jit.si/b", ScheduledAt: when}
	require.NoError(t, env.content.CreateLiveSession(module.ID, s2, nil))
	assert.Equal(t, 2, s2.Ordem)
}
