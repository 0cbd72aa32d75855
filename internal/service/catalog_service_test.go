package service

import (
	"buriti_backend/internal/model"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateModuleAppendsToOrdering(t *testing.T) {
	env := newTestEnv(t)
	course := env.seedCourse(t, "Informática Básica")

	m1, err := env.catalog.CreateModule(course.ID, "Módulo 1", nil)
	require.NoError(t, err)
	m2, err := env.catalog.CreateModule(course.ID, "Módulo 2", nil)
	require.NoError(t, err)
	m3, err := env.catalog.CreateModule(course.ID, "Módulo 3", nil)
	require.NoError(t, err)

	assert.Equal(t, 1, m1.Ordem)
	assert.Equal(t, 2, m2.Ordem)
	assert.Equal(t, 3, m3.Ordem)
}

func TestCreateModuleUnknownCourse(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.catalog.CreateModule(999, "Módulo 1", nil)
	requireStatus(t, err, http.StatusNotFound)
}

func TestCreateLessonAppendsPerModule(t *testing.T) {
	env := newTestEnv(t)
	course := env.seedCourse(t, "Informática Básica")
	mA := env.seedModule(t, course.ID, "Módulo A", 1)
	mB := env.seedModule(t, course.ID, "Módulo B", 2)

	a1, err := env.catalog.CreateLesson(mA.ID, "Aula A1", nil)
	require.NoError(t, err)
	a2, err := env.catalog.CreateLesson(mA.ID, "Aula A2", nil)
	require.NoError(t, err)
	b1, err := env.catalog.CreateLesson(mB.ID, "Aula B1", nil)
	require.NoError(t, err)

	assert.Equal(t, 1, a1.Ordem)
	assert.Equal(t, 2, a2.Ordem)
	assert.Equal(t, 1, b1.Ordem, "ordering is scoped per module")
}

func TestCourseValidation(t *testing.T) {
	env := newTestEnv(t)

	err := env.catalog.CreateCourse(context.Background(), &model.Course{
		Title: "Sem duração", Description: "d",
	}, nil)
	requireStatus(t, err, http.StatusBadRequest)

	err = env.catalog.CreateCourse(context.Background(), &model.Course{
		Title: "Duração inválida", Description: "d", Duration: "40 horas",
	}, nil)
	requireStatus(t, err, http.StatusBadRequest)

	err = env.catalog.CreateCourse(context.Background(), &model.Course{
		Title: "Ok", Description: "d", Duration: "40h",
	}, nil)
	require.NoError(t, err)
}

func TestDeleteCourseCascades(t *testing.T) {
	env := newTestEnv(t)
	course := env.seedCourse(t, "Informática Básica")
	module := env.seedModule(t, course.ID, "Módulo 1", 1)
	env.seedLesson(t, module.ID, "Aula 1", 1)
	require.NoError(t, env.db.Create(&model.Quiz{
		ModuleID: module.ID, Question: "?", Correct: "a", MinGrade: 7, Ordem: 1,
	}).Error)
	forum, err := env.forum.Create(module.ID, "Dúvidas", nil)
	require.NoError(t, err)
	require.NoError(t, env.db.Create(&model.ForumMessage{
		ForumID: forum.ID, UserID: 1, Message: "olá",
	}).Error)

	require.NoError(t, env.catalog.DeleteCourse(context.Background(), course.ID))

	counts := map[string]interface{}{
		"courses":        &model.Course{},
		"modules":        &model.Module{},
		"lessons":        &model.Lesson{},
		"quizzes":        &model.Quiz{},
		"forums":         &model.Forum{},
		"forum_messages": &model.ForumMessage{},
	}
	for table, m := range counts {
		var count int64
		require.NoError(t, env.db.Model(m).Count(&count).Error)
		assert.EqualValues(t, 0, count, "table %s should be empty", table)
	}
}

func TestDeleteModuleLeavesSiblings(t *testing.T) {
	env := newTestEnv(t)
	course := env.seedCourse(t, "Informática Básica")
	m1 := env.seedModule(t, course.ID, "Módulo 1", 1)
	m2 := env.seedModule(t, course.ID, "Módulo 2", 2)
	env.seedLesson(t, m1.ID, "Aula 1", 1)
	keep := env.seedLesson(t, m2.ID, "Aula 2", 1)

	require.NoError(t, env.catalog.DeleteModule(context.Background(), m1.ID))

	var lessons []model.Lesson
	require.NoError(t, env.db.Find(&lessons).Error)
	require.Len(t, lessons, 1)
	assert.Equal(t, keep.ID, lessons[0].ID)
}

func TestReorderModulesThroughService(t *testing.T) {
	env := newTestEnv(t)
	course := env.seedCourse(t, "Informática Básica")
	m1 := env.seedModule(t, course.ID, "Módulo 1", 1)
	m2 := env.seedModule(t, course.ID, "Módulo 2", 2)

	require.NoError(t, env.catalog.ReorderModules(course.ID, []uint{m2.ID, m1.ID}))

	var modules []model.Module
	require.NoError(t, env.db.Where("course_id = ?", course.ID).Order("ordem").Find(&modules).Error)
	assert.Equal(t, m2.ID, modules[0].ID)
	assert.Equal(t, m1.ID, modules[1].ID)

	// unknown course resolves before the sequencer touches anything
	requireStatus(t, env.catalog.ReorderModules(999, []uint{m1.ID, m2.ID}), http.StatusNotFound)
}

func TestCourseContentOrdering(t *testing.T) {
	env := newTestEnv(t)
	course := env.seedCourse(t, "Informática Básica")
	m2 := env.seedModule(t, course.ID, "Segundo", 2)
	m1 := env.seedModule(t, course.ID, "Primeiro", 1)
	require.NoError(t, env.db.Create(&model.Video{
		ModuleID: m1.ID, Title: "v2", URL: "/uploads/v2.mp4", Ordem: 2,
	}).Error)
	require.NoError(t, env.db.Create(&model.Video{
		ModuleID: m1.ID, Title: "v1", URL: "/uploads/v1.mp4", Ordem: 1,
	}).Error)

	content, err := env.catalog.CourseContent(course.ID)
	require.NoError(t, err)
	require.Len(t, content, 2)
	assert.Equal(t, m1.ID, content[0].ID, "modules come back in ordem order")
	assert.Equal(t, m2.ID, content[1].ID)
	require.Len(t, content[0].Videos, 2)
	assert.Equal(t, "v1", content[0].Videos[0].Title)
	assert.Equal(t, "v2", content[0].Videos[1].Title)
}
