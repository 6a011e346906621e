package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlevashov/clientdesk/internal/config"
	"github.com/mlevashov/clientdesk/internal/logger"
)

func TestCatalogService_Defaults(t *testing.T) {
	svc, err := NewCatalogService(config.Catalog{}, logger.Nop())
	require.NoError(t, err)

	offerings := svc.ListOfferings(context.Background())
	require.NotEmpty(t, offerings)
	assert.Equal(t, defaultOfferings, offerings)

	// the returned slice is a copy
	offerings[0].Title = "tampered"
	assert.NotEqual(t, "tampered", svc.ListOfferings(context.Background())[0].Title)
}

func TestCatalogService_SeedFile(t *testing.T) {
	seedPath := filepath.Join(t.TempDir(), "catalog.json")
	seed := `[
		{"id": "custom-1", "title": "Custom package", "summary": "Tailored scope", "tier": "studio", "price": 120000}
	]`
	require.NoError(t, os.WriteFile(seedPath, []byte(seed), 0o600))

	svc, err := NewCatalogService(config.Catalog{SeedPath: seedPath}, logger.Nop())
	require.NoError(t, err)

	offerings := svc.ListOfferings(context.Background())
	require.Len(t, offerings, 1)
	assert.Equal(t, "custom-1", offerings[0].ID)
	assert.Equal(t, int64(120000), offerings[0].Price)
}

func TestCatalogService_SeedFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewCatalogService(config.Catalog{SeedPath: filepath.Join(t.TempDir(), "missing.json")}, logger.Nop())
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		seedPath := filepath.Join(t.TempDir(), "catalog.json")
		require.NoError(t, os.WriteFile(seedPath, []byte("not json"), 0o600))

		_, err := NewCatalogService(config.Catalog{SeedPath: seedPath}, logger.Nop())
		assert.Error(t, err)
	})
}

func TestCatalogService_FindOffering(t *testing.T) {
	svc, err := NewCatalogService(config.Catalog{}, logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	offering, err := svc.FindOffering(ctx, "web-landing")
	require.NoError(t, err)
	assert.Equal(t, "Landing page", offering.Title)

	_, err = svc.FindOffering(ctx, "no-such-offering")
	assert.ErrorIs(t, err, ErrUnknownOffering)
}
