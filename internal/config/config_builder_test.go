package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Auth: Auth{SessionIssuer: "clientdesk"}},
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:8080"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "clientdesk", cfg.Auth.SessionIssuer)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
}

// TestBuild_FirstNonZeroFieldWins verifies mergo's merge semantics: once a
// field is set by an earlier config, later configs do not override it.
func TestBuild_FirstNonZeroFieldWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{Driver: DriverFile}},
		&StructuredConfig{Storage: Storage{Driver: DriverMemory}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DriverFile, cfg.Storage.Driver)
}

// TestBuild_RejectsUnknownDriver verifies that validation fails on a driver
// the storage layer does not know.
func TestBuild_RejectsUnknownDriver(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{Driver: "etcd"}},
	)

	_, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_SQLDriverRequiresDSN verifies that sqlite/postgres drivers without
// a DSN fail validation.
func TestBuild_SQLDriverRequiresDSN(t *testing.T) {
	for _, driver := range []string{DriverSQLite, DriverPostgres} {
		b := newConfigBuilder()
		b.configs = append(b.configs,
			&StructuredConfig{Storage: Storage{Driver: driver}},
		)

		_, err := b.build()
		require.Error(t, err, driver)
		assert.ErrorIs(t, err, ErrInvalidStorageConfigs, driver)
	}
}
