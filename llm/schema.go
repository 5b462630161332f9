package llm

import (
	"encoding/json"
	"fmt"

	"coursecraft/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// Draft structs mirror the JSON the model is instructed to emit.
type draftResource struct {
	Title string `json:"title" validate:"required"`
	URL   string `json:"url" validate:"required"`
	Type  string `json:"type" validate:"required,oneof=video article project"`
}

type draftModule struct {
	ID            string          `json:"id"`
	Week          int             `json:"week" validate:"required,gt=0"`
	Title         string          `json:"title" validate:"required"`
	Description   string          `json:"description" validate:"required"`
	DurationHours int             `json:"durationHours" validate:"required,gt=0"`
	Resources     []draftResource `json:"resources" validate:"dive"`
}

type draftPlan struct {
	Title   string        `json:"title" validate:"required"`
	Modules []draftModule `json:"modules" validate:"required,min=1,dive"`
}

// ParsePlan validates raw model output against the course plan schema and
// converts it into a CoursePlan draft. This is the trust boundary for
// everything the model produces: downstream code may assume any plan that
// passed here is well formed.
//
// A module that arrives without an id gets a fresh UUID. Two modules
// sharing an id reject the whole draft, since targeted completion updates
// depend on ids never colliding.
func ParsePlan(raw []byte) (*models.CoursePlan, error) {
	var draft draftPlan
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, fmt.Errorf("plan is not valid JSON: %w", err)
	}
	if err := validate.Struct(&draft); err != nil {
		return nil, fmt.Errorf("plan failed schema validation: %w", err)
	}

	seen := make(map[string]bool, len(draft.Modules))
	modules := make([]models.Module, 0, len(draft.Modules))
	for i, m := range draft.Modules {
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		if seen[m.ID] {
			return nil, fmt.Errorf("duplicate module id %q at position %d", m.ID, i)
		}
		seen[m.ID] = true

		resources := make([]models.Resource, 0, len(m.Resources))
		for _, r := range m.Resources {
			resources = append(resources, models.Resource{
				Title: r.Title,
				URL:   r.URL,
				Type:  r.Type,
			})
		}

		modules = append(modules, models.Module{
			ID:            m.ID,
			Week:          m.Week,
			Title:         m.Title,
			Description:   m.Description,
			DurationHours: m.DurationHours,
			Resources:     resources,
		})
	}

	return &models.CoursePlan{
		Title:   draft.Title,
		Modules: modules,
	}, nil
}
