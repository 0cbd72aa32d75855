package repository

import (
	"buriti_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLesson(t *testing.T, repo *ProgressRepository, moduleID uint, title string) *model.Lesson {
	t.Helper()
	lesson := &model.Lesson{ModuleID: moduleID, Title: title, Ordem: 1}
	require.NoError(t, repo.DB.Create(lesson).Error)
	return lesson
}

func TestSetWatchedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepository(db)
	course := seedCourse(t, db)
	module := seedModule(t, db, course.ID, "Módulo 1", 1)
	lesson := seedLesson(t, repo, module.ID, "Aula 1")
	user := seedUser(t, db, "aluno@example.com", model.Student)

	require.NoError(t, repo.SetWatched(user.ID, course.ID, module.ID, lesson.ID, true))
	require.NoError(t, repo.SetWatched(user.ID, course.ID, module.ID, lesson.ID, true))

	var count int64
	require.NoError(t, db.Model(&model.ProgressRecord{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "retries must collapse onto one row")

	records, err := repo.GetByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].Watched)
}

func TestSetWatchedTogglesExistingRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepository(db)
	course := seedCourse(t, db)
	module := seedModule(t, db, course.ID, "Módulo 1", 1)
	lesson := seedLesson(t, repo, module.ID, "Aula 1")
	user := seedUser(t, db, "aluno@example.com", model.Student)

	require.NoError(t, repo.SetWatched(user.ID, course.ID, module.ID, lesson.ID, true))
	require.NoError(t, repo.SetWatched(user.ID, course.ID, module.ID, lesson.ID, false))

	records, err := repo.GetByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.False(t, records[0].Watched)

	watched, err := repo.CountWatched(user.ID, course.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, watched)
}

func TestSetWatchedDistinctTuplesDistinctRows(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepository(db)
	course := seedCourse(t, db)
	module := seedModule(t, db, course.ID, "Módulo 1", 1)
	l1 := seedLesson(t, repo, module.ID, "Aula 1")
	l2 := seedLesson(t, repo, module.ID, "Aula 2")
	user := seedUser(t, db, "aluno@example.com", model.Student)

	require.NoError(t, repo.SetWatched(user.ID, course.ID, module.ID, l1.ID, true))
	require.NoError(t, repo.SetWatched(user.ID, course.ID, module.ID, l2.ID, true))

	watched, err := repo.CountWatched(user.ID, course.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, watched)
}

func TestCountLessonsSpansModules(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepository(db)
	course := seedCourse(t, db)
	m1 := seedModule(t, db, course.ID, "Módulo 1", 1)
	m2 := seedModule(t, db, course.ID, "Módulo 2", 2)
	seedLesson(t, repo, m1.ID, "Aula 1")
	seedLesson(t, repo, m2.ID, "Aula 2")
	seedLesson(t, repo, m2.ID, "Aula 3")

	other := seedCourse(t, db)
	mo := seedModule(t, db, other.ID, "Outro", 1)
	seedLesson(t, repo, mo.ID, "Fora")

	total, err := repo.CountLessons(course.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}
