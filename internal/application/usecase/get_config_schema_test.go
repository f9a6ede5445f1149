package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workbench/navstate/internal/application/port/mocks"
	"github.com/workbench/navstate/internal/application/usecase"
	"github.com/workbench/navstate/internal/domain/entity"
)

func TestGetConfigSchemaUseCase_Execute(t *testing.T) {
	keys := []entity.ConfigKeyInfo{
		{Key: "navigation.max_url_size", Type: "int", Default: "1900", Range: "1-1900", Section: "Navigation"},
		{Key: "logging.level", Type: "string", Default: "info", Values: []string{"trace", "debug", "info", "warn", "error"}, Section: "Logging"},
	}

	t.Run("returns all keys", func(t *testing.T) {
		provider := mocks.NewMockConfigSchemaProvider(t)
		provider.EXPECT().GetSchema().Return(keys)

		out, err := usecase.NewGetConfigSchemaUseCase(provider).Execute(context.Background(), usecase.GetConfigSchemaInput{})
		require.NoError(t, err)
		assert.Len(t, out.Keys, 2)
	})

	t.Run("filters by section", func(t *testing.T) {
		provider := mocks.NewMockConfigSchemaProvider(t)
		provider.EXPECT().GetSchema().Return(keys)

		out, err := usecase.NewGetConfigSchemaUseCase(provider).Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "logging"})
		require.NoError(t, err)
		require.Len(t, out.Keys, 1)
		assert.Equal(t, "logging.level", out.Keys[0].Key)
	})
}
