package service

import (
	"buriti_backend/internal/model"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForumCreateDenormalizesCourse(t *testing.T) {
	env := newTestEnv(t)
	course := env.seedCourse(t, "Informática Básica")
	module := env.seedModule(t, course.ID, "Módulo 1", 1)

	forum, err := env.forum.Create(module.ID, "Dúvidas", nil)
	require.NoError(t, err)
	assert.Equal(t, course.ID, forum.CourseID)
	assert.Equal(t, 1, forum.Ordem)
}

func TestForumListingFollowsActiveEnrollments(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "maria@example.com", model.Student)
	enrolled := env.seedCourse(t, "Curso Matriculado")
	outside := env.seedCourse(t, "Curso de Fora")
	mIn := env.seedModule(t, enrolled.ID, "Módulo 1", 1)
	mOut := env.seedModule(t, outside.ID, "Módulo 1", 1)

	visible, err := env.forum.Create(mIn.ID, "Visível", nil)
	require.NoError(t, err)
	_, err = env.forum.Create(mOut.ID, "Oculto", nil)
	require.NoError(t, err)

	env.enroll(t, user.ID, enrolled.ID, model.EnrollmentActive)

	forums, err := env.forum.ListForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, forums, 1)
	assert.Equal(t, visible.ID, forums[0].ID)
}

func TestForumMessagesBehindGuard(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "maria@example.com", model.Student)
	course := env.seedCourse(t, "Informática Básica")
	module := env.seedModule(t, course.ID, "Módulo 1", 1)
	forum, err := env.forum.Create(module.ID, "Dúvidas", nil)
	require.NoError(t, err)

	_, err = env.forum.PostMessage(user.ID, user.Name, forum.ID, "olá")
	requireStatus(t, err, http.StatusForbidden)
	_, err = env.forum.ListMessages(user.ID, forum.ID)
	requireStatus(t, err, http.StatusForbidden)

	env.enroll(t, user.ID, course.ID, model.EnrollmentActive)

	posted, err := env.forum.PostMessage(user.ID, user.Name, forum.ID, "olá")
	require.NoError(t, err)
	assert.Equal(t, user.Name, posted.UserName)

	messages, err := env.forum.ListMessages(user.ID, forum.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "olá", messages[0].Message)
}

func TestForumMessagesUnknownForumIs404(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "maria@example.com", model.Student)

	_, err := env.forum.PostMessage(user.ID, user.Name, 999, "olá")
	requireStatus(t, err, http.StatusNotFound)
}

func TestForumDeleteRemovesMessages(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "maria@example.com", model.Student)
	course := env.seedCourse(t, "Informática Básica")
	module := env.seedModule(t, course.ID, "Módulo 1", 1)
	forum, err := env.forum.Create(module.ID, "Dúvidas", nil)
	require.NoError(t, err)
	env.enroll(t, user.ID, course.ID, model.EnrollmentActive)
	_, err = env.forum.PostMessage(user.ID, user.Name, forum.ID, "olá")
	require.NoError(t, err)

	require.NoError(t, env.forum.Delete(forum.ID))

	var count int64
	require.NoError(t, env.db.Model(&model.ForumMessage{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
