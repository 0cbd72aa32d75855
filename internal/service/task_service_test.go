package service

import (
	"buriti_backend/internal/model"
	"buriti_backend/internal/repository"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTaskService(env *testEnv) *TaskService {
	return NewTaskService(
		repository.NewTaskRepository(env.db),
		repository.NewCourseRepository(env.db),
		repository.NewEnrollmentRepository(env.db),
		env.enrollment,
		env.storage,
		env.db,
	)
}

func TestTaskListingFollowsActiveEnrollments(t *testing.T) {
	env := newTestEnv(t)
	tasks := newTaskService(env)
	user := env.seedUser(t, "maria@example.com", model.Student)
	enrolled := env.seedCourse(t, "Curso Matriculado")
	outside := env.seedCourse(t, "Curso de Fora")
	env.enroll(t, user.ID, enrolled.ID, model.EnrollmentActive)

	require.NoError(t, tasks.Create(&model.Task{CourseID: enrolled.ID, Title: "Tarefa 1", Description: "d"}))
	require.NoError(t, tasks.Create(&model.Task{CourseID: outside.ID, Title: "Tarefa 2", Description: "d"}))

	visible, err := tasks.ListForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Tarefa 1", visible[0].Title)
	assert.Equal(t, model.TaskPending, visible[0].Status)
}

func TestTaskCreateValidatesCourse(t *testing.T) {
	env := newTestEnv(t)
	tasks := newTaskService(env)

	err := tasks.Create(&model.Task{CourseID: 999, Title: "Tarefa", Description: "d"})
	requireStatus(t, err, http.StatusNotFound)

	err = tasks.Create(&model.Task{CourseID: 1, Title: "", Description: ""})
	requireStatus(t, err, http.StatusBadRequest)
}

func TestTaskStatusUpdate(t *testing.T) {
	env := newTestEnv(t)
	tasks := newTaskService(env)
	course := env.seedCourse(t, "Curso")
	task := &model.Task{CourseID: course.ID, Title: "Tarefa", Description: "d"}
	require.NoError(t, tasks.Create(task))

	updated, err := tasks.UpdateStatus(task.ID, model.TaskSubmitted)
	require.NoError(t, err)
	assert.Equal(t, model.TaskSubmitted, updated.Status)

	_, err = tasks.UpdateStatus(999, model.TaskSubmitted)
	requireStatus(t, err, http.StatusNotFound)
}

func TestTaskSubmitResponseRequiresFile(t *testing.T) {
	env := newTestEnv(t)
	tasks := newTaskService(env)
	user := env.seedUser(t, "maria@example.com", model.Student)
	course := env.seedCourse(t, "Curso")
	env.enroll(t, user.ID, course.ID, model.EnrollmentActive)
	task := &model.Task{CourseID: course.ID, Title: "Tarefa", Description: "d"}
	require.NoError(t, tasks.Create(task))

	_, err := tasks.SubmitResponse(t.Context(), user.ID, task.ID, nil)
	requireStatus(t, err, http.StatusBadRequest)
}
