package service

import (
	"buriti_backend/internal/model"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireActiveEnrollment(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "maria@example.com", model.Student)
	course := env.seedCourse(t, "Informática Básica")

	// no enrollment at all
	err := env.enrollment.RequireActiveEnrollment(user.ID, course.ID)
	requireStatus(t, err, http.StatusForbidden)

	// inactive does not grant access
	enrollment := env.enroll(t, user.ID, course.ID, model.EnrollmentInactive)
	err = env.enrollment.RequireActiveEnrollment(user.ID, course.ID)
	requireStatus(t, err, http.StatusForbidden)

	// flipping to active grants it on the very next call
	enrollment.Status = model.EnrollmentActive
	require.NoError(t, env.db.Save(enrollment).Error)
	require.NoError(t, env.enrollment.RequireActiveEnrollment(user.ID, course.ID))

	// and deactivating revokes it again, no cached entitlement
	enrollment.Status = model.EnrollmentInactive
	require.NoError(t, env.db.Save(enrollment).Error)
	err = env.enrollment.RequireActiveEnrollment(user.ID, course.ID)
	requireStatus(t, err, http.StatusForbidden)
}

func TestCreateRejectsDuplicateActiveEnrollment(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "maria@example.com", model.Student)
	course := env.seedCourse(t, "Informática Básica")

	first := &model.Enrollment{UserID: user.ID, CourseID: course.ID, Status: model.EnrollmentActive}
	require.NoError(t, env.enrollment.Create(first))

	second := &model.Enrollment{UserID: user.ID, CourseID: course.ID, Status: model.EnrollmentActive}
	err := env.enrollment.Create(second)
	requireStatus(t, err, http.StatusConflict)

	// an inactive duplicate is historical data and stays allowed
	third := &model.Enrollment{UserID: user.ID, CourseID: course.ID, Status: model.EnrollmentInactive}
	require.NoError(t, env.enrollment.Create(third))
}

func TestCreateValidatesReferences(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "maria@example.com", model.Student)
	course := env.seedCourse(t, "Informática Básica")

	err := env.enrollment.Create(&model.Enrollment{UserID: 999, CourseID: course.ID})
	requireStatus(t, err, http.StatusNotFound)

	err = env.enrollment.Create(&model.Enrollment{UserID: user.ID, CourseID: 999})
	requireStatus(t, err, http.StatusNotFound)
}

func TestUpdateStatusBlocksConflictingReactivation(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "maria@example.com", model.Student)
	course := env.seedCourse(t, "Informática Básica")

	active := env.enroll(t, user.ID, course.ID, model.EnrollmentActive)
	dormant := env.enroll(t, user.ID, course.ID, model.EnrollmentInactive)

	_, err := env.enrollment.UpdateStatus(dormant.ID, model.EnrollmentActive)
	requireStatus(t, err, http.StatusConflict)

	// deactivate the first, then the second may take its place
	_, err = env.enrollment.UpdateStatus(active.ID, model.EnrollmentInactive)
	require.NoError(t, err)

	updated, err := env.enrollment.UpdateStatus(dormant.ID, model.EnrollmentActive)
	require.NoError(t, err)
	assert.Equal(t, model.EnrollmentActive, updated.Status)
}

func TestDeleteEnrollment(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "maria@example.com", model.Student)
	course := env.seedCourse(t, "Informática Básica")
	enrollment := env.enroll(t, user.ID, course.ID, model.EnrollmentActive)

	require.NoError(t, env.enrollment.Delete(enrollment.ID))
	requireStatus(t, env.enrollment.Delete(enrollment.ID), http.StatusNotFound)

	err := env.enrollment.RequireActiveEnrollment(user.ID, course.ID)
	requireStatus(t, err, http.StatusForbidden)
}

func TestClassmatesShareActiveCourses(t *testing.T) {
	env := newTestEnv(t)
	maria := env.seedUser(t, "maria@example.com", model.Student)
	joao := env.seedUser(t, "joao@example.com", model.Student)
	ana := env.seedUser(t, "ana@example.com", model.Student)
	course := env.seedCourse(t, "Informática Básica")
	other := env.seedCourse(t, "Curso Avançado")

	env.enroll(t, maria.ID, course.ID, model.EnrollmentActive)
	env.enroll(t, joao.ID, course.ID, model.EnrollmentActive)
	env.enroll(t, ana.ID, other.ID, model.EnrollmentActive)

	classmates, err := env.enrollment.Classmates(maria.ID)
	require.NoError(t, err)
	require.Len(t, classmates, 1)
	assert.Equal(t, joao.ID, classmates[0].ID)
	assert.Equal(t, []string{"Informática Básica"}, classmates[0].Courses)
}
