package templates

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"frontdesk_backend/internals/constants"
	"frontdesk_backend/internals/features/templates/model"
)

//go:embed data_step_templates.json
var defaultTemplates []byte

type StepTemplateSeed struct {
	Flow        string  `json:"flow"`
	SessionType *string `json:"session_type"`
	StepName    string  `json:"step_name"`
	Description string  `json:"step_description"`
	StepOrder   int     `json:"step_order"`
}

type Store interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, row *model.StepTemplateModel) error
}

// Defaults decodes the bundled checklist.
func Defaults() ([]StepTemplateSeed, error) {
	var seeds []StepTemplateSeed
	if err := sonic.Unmarshal(defaultTemplates, &seeds); err != nil {
		return nil, fmt.Errorf("decode default step templates: %w", err)
	}
	for _, s := range seeds {
		if !constants.IsValidFlow(s.Flow) {
			return nil, fmt.Errorf("default step template %q: unknown flow %q", s.StepName, s.Flow)
		}
	}
	return seeds, nil
}

// SeedStepTemplates fills an empty step_templates table. A table that already
// holds rows (active or not) is left alone so admin edits survive restarts.
func SeedStepTemplates(ctx context.Context, store Store, log *zap.Logger) (int, error) {
	n, err := store.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.Debug("step templates present, skipping seed", zap.Int64("count", n))
		return 0, nil
	}

	seeds, err := Defaults()
	if err != nil {
		return 0, err
	}
	for _, s := range seeds {
		row := &model.StepTemplateModel{
			StepTemplateID:          uuid.New(),
			StepTemplateFlow:        s.Flow,
			StepTemplateSessionType: s.SessionType,
			StepTemplateName:        s.StepName,
			StepTemplateDescription: s.Description,
			StepTemplateOrder:       s.StepOrder,
			StepTemplateIsActive:    true,
		}
		if err := store.Create(ctx, row); err != nil {
			return 0, fmt.Errorf("seed step template %s/%s: %w", s.Flow, s.StepName, err)
		}
	}
	log.Info("default step templates seeded", zap.Int("count", len(seeds)))
	return len(seeds), nil
}
