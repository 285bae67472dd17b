package templates

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"frontdesk_backend/internals/constants"
	"frontdesk_backend/internals/features/templates/model"
)

type memStore struct {
	existing int64
	rows     []*model.StepTemplateModel
	err      error
}

func (m *memStore) Count(context.Context) (int64, error) { return m.existing, m.err }

func (m *memStore) Create(_ context.Context, row *model.StepTemplateModel) error {
	m.rows = append(m.rows, row)
	return nil
}

func TestDefaultsCoverBothFlows(t *testing.T) {
	seeds, err := Defaults()
	require.NoError(t, err)

	perFlow := map[string][]string{}
	for _, s := range seeds {
		perFlow[s.Flow] = append(perFlow[s.Flow], s.StepName)
	}
	assert.Equal(t, []string{"watch-video", "application", "interview-questions"}, perFlow[constants.FlowInfoSession])
	assert.Equal(t, []string{"policies", "safety-video"}, perFlow[constants.FlowOrientation])
}

func TestSeedStepTemplatesOnEmptyTable(t *testing.T) {
	store := &memStore{}
	n, err := SeedStepTemplates(context.Background(), store, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	require.Len(t, store.rows, 5)
	for _, r := range store.rows {
		assert.True(t, r.StepTemplateIsActive)
		assert.NotEqual(t, "", r.StepTemplateID.String())
	}
}

func TestSeedStepTemplatesSkipsPopulatedTable(t *testing.T) {
	store := &memStore{existing: 2}
	n, err := SeedStepTemplates(context.Background(), store, zap.NewNop())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, store.rows)
}

func TestSeedStepTemplatesCountError(t *testing.T) {
	store := &memStore{err: errors.New("db down")}
	_, err := SeedStepTemplates(context.Background(), store, zap.NewNop())
	assert.Error(t, err)
}
