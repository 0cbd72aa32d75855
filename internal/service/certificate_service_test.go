package service

import (
	"buriti_backend/internal/model"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEligibleRequiresAtLeastOneLesson(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "maria@example.com", model.Student)
	course := env.seedCourse(t, "Curso Vazio")
	env.seedModule(t, course.ID, "Módulo 1", 1)

	eligible, err := env.certificate.IsEligible(user.ID, course.ID)
	require.NoError(t, err)
	assert.False(t, eligible, "a course with no lessons is never complete")
}

func TestIsEligibleOnlyWhenEveryLessonWatched(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "maria@example.com", model.Student)
	course := env.seedCourse(t, "Informática Básica")
	module := env.seedModule(t, course.ID, "Módulo 1", 1)
	l1 := env.seedLesson(t, module.ID, "Aula 1", 1)
	l2 := env.seedLesson(t, module.ID, "Aula 2", 2)

	markWatched := func(lessonID uint, watched bool) {
		require.NoError(t, env.progress.SetWatched(user.ID, course.ID, module.ID, lessonID, watched))
	}

	markWatched(l1.ID, true)
	eligible, err := env.certificate.IsEligible(user.ID, course.ID)
	require.NoError(t, err)
	assert.False(t, eligible)

	markWatched(l2.ID, true)
	eligible, err = env.certificate.IsEligible(user.ID, course.ID)
	require.NoError(t, err)
	assert.True(t, eligible)

	// unwatching revokes completion
	markWatched(l2.ID, false)
	eligible, err = env.certificate.IsEligible(user.ID, course.ID)
	require.NoError(t, err)
	assert.False(t, eligible)
}

func TestEligibilityFollowsCatalogChanges(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "maria@example.com", model.Student)
	course := env.seedCourse(t, "Informática Básica")
	module := env.seedModule(t, course.ID, "Módulo 1", 1)
	l1 := env.seedLesson(t, module.ID, "Aula 1", 1)

	require.NoError(t, env.progress.SetWatched(user.ID, course.ID, module.ID, l1.ID, true))

	eligible, err := env.certificate.IsEligible(user.ID, course.ID)
	require.NoError(t, err)
	assert.True(t, eligible)

	// a lesson added later reopens the course
	env.seedLesson(t, module.ID, "Aula 2", 2)
	eligible, err = env.certificate.IsEligible(user.ID, course.ID)
	require.NoError(t, err)
	assert.False(t, eligible)
}

func TestCertificateTextRefusedUntilComplete(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "maria@example.com", model.Student)
	course := env.seedCourse(t, "Informática Básica")
	module := env.seedModule(t, course.ID, "Módulo 1", 1)
	lesson := env.seedLesson(t, module.ID, "Aula 1", 1)

	_, err := env.certificate.CertificateText(user.ID, user.Name, course.ID)
	requireStatus(t, err, http.StatusForbidden)

	require.NoError(t, env.progress.SetWatched(user.ID, course.ID, module.ID, lesson.ID, true))

	text, err := env.certificate.CertificateText(user.ID, user.Name, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Certificado de conclusão: Informática Básica - Aluno(a): Maria Silva", text)
}

func TestCertificateTextUnknownCourse(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "maria@example.com", model.Student)

	_, err := env.certificate.CertificateText(user.ID, user.Name, 999)
	requireStatus(t, err, http.StatusNotFound)
}
