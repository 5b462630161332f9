package store

import (
	"errors"
	"time"

	"coursecraft/models"

	"gorm.io/gorm"
)

// SavePlan persists a new course plan and fills in its generated id.
func SavePlan(db *gorm.DB, plan *models.CoursePlan) error {
	return db.Create(plan).Error
}

// ListByOwner returns summaries of every plan owned by the user.
func ListByOwner(db *gorm.DB, userID uint) ([]models.CourseListItem, error) {
	items := []models.CourseListItem{}
	err := db.Model(&models.CoursePlan{}).
		Select("id", "title", "is_completed").
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").
		Find(&items).Error
	return items, err
}

// GetByIDAndOwner fetches one plan scoped to its owner. A plan owned by
// someone else is indistinguishable from a missing one.
func GetByIDAndOwner(db *gorm.DB, planID, userID uint) (*models.CoursePlan, error) {
	var plan models.CoursePlan
	if err := db.Where("id = ? AND user_id = ? AND is_deleted = ?", planID, userID, false).
		First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// SetModuleCompleted marks one module complete and, when that was the last
// incomplete module, marks the whole plan complete in the same transaction.
// It reports whether the (plan, owner, module) triple matched anything.
func SetModuleCompleted(db *gorm.DB, planID, userID uint, moduleID string) (bool, error) {
	matched := false
	err := db.Transaction(func(tx *gorm.DB) error {
		var plan models.CoursePlan
		if err := tx.Where("id = ? AND user_id = ? AND is_deleted = ?", planID, userID, false).
			First(&plan).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		found := false
		for i := range plan.Modules {
			if plan.Modules[i].ID == moduleID {
				plan.Modules[i].IsCompleted = true
				found = true
				break
			}
		}
		if !found {
			return nil
		}

		plan.IsCompleted = plan.AllModulesCompleted()
		if err := tx.Save(&plan).Error; err != nil {
			return err
		}
		matched = true
		return nil
	})
	return matched, err
}

// DeleteByIDAndOwner soft deletes a plan scoped to its owner and reports
// whether anything was deleted. A soft-deleted plan behaves exactly like a
// missing one on every read path.
func DeleteByIDAndOwner(db *gorm.DB, planID, userID uint) (bool, error) {
	res := db.Model(&models.CoursePlan{}).
		Where("id = ? AND user_id = ? AND is_deleted = ?", planID, userID, false).
		Update("is_deleted", true)
	return res.RowsAffected > 0, res.Error
}

// PurgeDeleted permanently removes plans soft deleted before the cutoff.
func PurgeDeleted(db *gorm.DB, before time.Time) (int64, error) {
	res := db.Where("is_deleted = ? AND updated_at < ?", true, before).
		Delete(&models.CoursePlan{})
	return res.RowsAffected, res.Error
}
