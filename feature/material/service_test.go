package material

import (
	"context"
	"errors"
	"testing"

	"bolt-manager/core/naming"
	"bolt-manager/core/store"
	"bolt-manager/core/store/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestServiceTemplates(t *testing.T) {
	mockStore := new(mocks.Store)
	svc := NewService(mockStore, zap.NewNop())

	broken := validTemplate()
	broken.Name = "Brass - Bolt Thread Template"
	broken.Appearance = nil
	mockStore.On("Find", mock.Anything, naming.FindTemplates).
		Return([]*store.Material{validTemplate(), broken}, nil)

	reports, err := svc.Templates(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 2)

	// One invalid template never hides the others.
	assert.True(t, reports[0].Valid)
	assert.Equal(t, "Steel", reports[0].Result.Category)
	assert.False(t, reports[1].Valid)
	assert.Contains(t, reports[1].Result.Reason(), "no appearance asset")
	mockStore.AssertExpectations(t)
}

func TestServiceTemplatesFindFails(t *testing.T) {
	mockStore := new(mocks.Store)
	svc := NewService(mockStore, zap.NewNop())

	mockStore.On("Find", mock.Anything, naming.FindTemplates).
		Return(nil, errors.New("store unavailable"))

	_, err := svc.Templates(context.Background())
	assert.ErrorContains(t, err, "store unavailable")
}

func TestServiceMaterials(t *testing.T) {
	mockStore := new(mocks.Store)
	svc := NewService(mockStore, zap.NewNop())

	mockStore.On("Find", mock.Anything, naming.FindMaterials).
		Return([]*store.Material{
			{ID: "1", Name: "Steel - Bolt Thread M12"},
			{ID: "2", Name: "Brass - Bolt Thread M6"},
		}, nil)

	infos, err := svc.Materials(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, MaterialInfo{Name: "Steel - Bolt Thread M12", Category: "Steel", Diameter: 12}, infos[0])
	assert.Equal(t, MaterialInfo{Name: "Brass - Bolt Thread M6", Category: "Brass", Diameter: 6}, infos[1])
}
