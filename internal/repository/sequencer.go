package repository

import (
	"buriti_backend/internal/util"
	"fmt"

	"gorm.io/gorm"
)

// OrdinalScope identifies one reorderable sibling set: the rows of Table
// sharing a parent FK, each carrying a dense 1-based ordem. One scope value
// per content kind replaces the five near-identical reorder paths of the
// legacy system.
type OrdinalScope struct {
	Table        string
	ParentColumn string
}

var (
	ModuleScope      = OrdinalScope{Table: "modules", ParentColumn: "course_id"}
	LessonScope      = OrdinalScope{Table: "lessons", ParentColumn: "module_id"}
	VideoScope       = OrdinalScope{Table: "videos", ParentColumn: "module_id"}
	LiveSessionScope = OrdinalScope{Table: "live_sessions", ParentColumn: "module_id"}
	QuizScope        = OrdinalScope{Table: "quizzes", ParentColumn: "module_id"}
	UploadScope      = OrdinalScope{Table: "uploads", ParentColumn: "module_id"}
	ForumScope       = OrdinalScope{Table: "forums", ParentColumn: "module_id"}
)

type Sequencer struct {
	DB *gorm.DB
}

func NewSequencer(db *gorm.DB) *Sequencer {
	return &Sequencer{DB: db}
}

// NextOrder returns sibling count + 1. Creates without an explicit ordem
// append to the end; gaps left by deletes are never refilled.
func (s *Sequencer) NextOrder(tx *gorm.DB, scope OrdinalScope, parentID uint) (int, error) {
	var count int64
	err := tx.Table(scope.Table).
		Where(scope.ParentColumn+" = ?", parentID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count) + 1, nil
}

// Reorder assigns ordem = position+1 for the complete ordered sibling list.
// The list must contain exactly the current siblings of parentID — any
// omission, duplicate or foreign ID rejects the call before a single write.
// All assignments run in one transaction; a failed update rolls back every
// other one.
func (s *Sequencer) Reorder(scope OrdinalScope, parentID uint, orderedIDs []uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var currentIDs []uint
		if err := tx.Table(scope.Table).
			Where(scope.ParentColumn+" = ?", parentID).
			Pluck("id", &currentIDs).Error; err != nil {
			return err
		}

		if len(orderedIDs) != len(currentIDs) {
			return util.ConflictErr(fmt.Sprintf(
				"reorder list has %d items, scope has %d", len(orderedIDs), len(currentIDs)))
		}

		siblings := make(map[uint]bool, len(currentIDs))
		for _, id := range currentIDs {
			siblings[id] = true
		}
		for _, id := range orderedIDs {
			if !siblings[id] {
				return util.ConflictErr(fmt.Sprintf("id %d is not part of the scope or listed twice", id))
			}
			delete(siblings, id)
		}

		for pos, id := range orderedIDs {
			if err := tx.Table(scope.Table).
				Where("id = ?", id).
				Update("ordem", pos+1).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
