package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load(writeConfigFile(t, `{}`))
	require.NoError(t, err)

	assert.Equal(t, DefaultTaxonomyPath, cfg.TaxonomyPath)
	assert.Equal(t, DefaultCatalogPath, cfg.CatalogPath)
	assert.Equal(t, 8000, cfg.Port)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoad_ExplicitValuesWin(t *testing.T) {
	cfg, err := Load(writeConfigFile(t, `{
		"taxonomy_path": "custom/skills.json",
		"catalog_path": "custom/jobs.csv",
		"port": 9090,
		"json_logs": true
	}`))
	require.NoError(t, err)

	assert.Equal(t, "custom/skills.json", cfg.TaxonomyPath)
	assert.Equal(t, "custom/jobs.csv", cfg.CatalogPath)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.JSONLogs)
}

func TestLoad_BadJSON(t *testing.T) {
	_, err := Load(writeConfigFile(t, `{not json`))
	assert.Error(t, err)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestApplyDefaults_DatabaseURLFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/test")

	cfg := &Config{}
	cfg.ApplyDefaults()
	assert.Equal(t, "postgres://localhost/test", cfg.DatabaseURL)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	taxonomy := filepath.Join(dir, "skills.json")
	catalog := filepath.Join(dir, "jobs.csv")
	require.NoError(t, os.WriteFile(taxonomy, []byte(`{}`), 0o644))
	require.NoError(t, os.WriteFile(catalog, []byte(`a,b`), 0o644))

	valid := &Config{TaxonomyPath: taxonomy, CatalogPath: catalog, Port: 8000}
	assert.NoError(t, valid.Validate())

	badPort := *valid
	badPort.Port = 0
	assert.Error(t, badPort.Validate())

	missingTaxonomy := *valid
	missingTaxonomy.TaxonomyPath = filepath.Join(dir, "nope.json")
	assert.Error(t, missingTaxonomy.Validate())

	missingCatalog := *valid
	missingCatalog.CatalogPath = filepath.Join(dir, "nope.csv")
	assert.Error(t, missingCatalog.Validate())
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, "test-secret", cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours)
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := NewJWTConfig()
	assert.Error(t, err)
}

func TestNewJWTConfig_BadExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("JWT_EXPIRATION_HOURS", "0")
	_, err := NewJWTConfig()
	assert.Error(t, err)

	t.Setenv("JWT_EXPIRATION_HOURS", "abc")
	_, err = NewJWTConfig()
	assert.Error(t, err)
}

func TestNewPasswordConfig_Defaults(t *testing.T) {
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("PASSWORD_PEPPER", "")

	cfg, err := NewPasswordConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestNewPasswordConfig_CostOutOfRange(t *testing.T) {
	t.Setenv("BCRYPT_COST", "4")
	_, err := NewPasswordConfig()
	assert.Error(t, err)
}

func TestHashAndVerifyPassword(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10, Pepper: "pepper"}

	hash, err := cfg.HashPassword("secret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-password", hash)

	assert.True(t, cfg.VerifyPassword("secret-password", hash))
	assert.False(t, cfg.VerifyPassword("wrong-password", hash))

	// A different pepper invalidates the hash.
	other := &PasswordConfig{BcryptCost: 10, Pepper: "different"}
	assert.False(t, other.VerifyPassword("secret-password", hash))
}
