package htmldot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arbor-dot/htmldot/domerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, domerr.Off, cfg.ComplianceLevel)
	assert.False(t, cfg.ScriptingEnabled)
	assert.False(t, cfg.IframeSrcdoc)
}

func TestNewConfig_Options(t *testing.T) {
	cfg := NewConfig(
		WithComplianceLevel(domerr.Strict),
		WithScripting(true),
		WithIframeSrcdoc(true),
	)
	assert.Equal(t, domerr.Strict, cfg.ComplianceLevel)
	assert.True(t, cfg.ScriptingEnabled)
	assert.True(t, cfg.IframeSrcdoc)
}

func TestLoadConfigYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "compliance_level: strict\nscripting_enabled: true\niframe_srcdoc: false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfigYAML(path)
	require.NoError(t, err)
	assert.Equal(t, domerr.Strict, cfg.ComplianceLevel)
	assert.True(t, cfg.ScriptingEnabled)
	assert.False(t, cfg.IframeSrcdoc)
}
