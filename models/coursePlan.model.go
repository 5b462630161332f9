package models

import (
	"time"

	"gorm.io/datatypes"
)

// Resource types a module may carry. The curation engine only produces
// videos today; article and project come from the generation step.
const (
	ResourceTypeVideo   = "video"
	ResourceTypeArticle = "article"
	ResourceTypeProject = "project"
)

// Resource is a single learning material attached to a module.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}

// Module is one week-sized unit of a course plan. Modules are embedded in
// the plan document rather than stored in their own table, so the whole
// plan reads and writes as one row.
type Module struct {
	ID            string     `json:"id"`
	Week          int        `json:"week"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	DurationHours int        `json:"durationHours"`
	Resources     []Resource `json:"resources"`
	IsCompleted   bool       `json:"isCompleted"`
}

// CoursePlan is the persisted course roadmap owned by a single user.
type CoursePlan struct {
	ID          uint                        `gorm:"primarykey" json:"id"`
	Title       string                      `gorm:"not null" json:"title"`
	UserID      uint                        `gorm:"index;not null" json:"userId"`
	Modules     datatypes.JSONSlice[Module] `json:"modules"`
	IsCompleted bool                        `gorm:"default:false" json:"isCompleted"`
	IsDeleted   bool                        `gorm:"default:false" json:"-"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

// AllModulesCompleted reports whether every module in the plan is done.
func (p *CoursePlan) AllModulesCompleted() bool {
	for _, m := range p.Modules {
		if !m.IsCompleted {
			return false
		}
	}
	return len(p.Modules) > 0
}

// CourseListItem is the summary row returned by the course listing.
type CourseListItem struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"isCompleted"`
}
