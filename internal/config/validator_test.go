package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "modforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidator_Validate(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(DefaultConfig()))
	})

	t.Run("absolute app dir", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.AppDir = "/app"

		err := v.Validate(cfg)
		require.Error(t, err)

		var verrs ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "appDir", verrs[0].Field)
	})

	t.Run("namespace without trailing separator", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.RootNamespace = "App"

		assert.Error(t, v.Validate(cfg))
	})
}

func TestValidator_ValidateFile(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	tests := []struct {
		name    string
		content string
		wantErr bool
		field   string
	}{
		{
			name:    "empty file",
			content: "",
		},
		{
			name: "full config",
			content: `basePath: .
appDir: app
modulesDir: Modules
rootNamespace: 'App\'
componentsDir: resources/js/components
viewsDir: resources/views
log:
  timestamps: true
`,
		},
		{
			name:    "nested namespace",
			content: "rootNamespace: 'Acme\\Shop\\'\n",
		},
		{
			name:    "unknown key",
			content: "registry: example.com\n",
			wantErr: true,
			field:   "registry",
		},
		{
			name:    "wrong type",
			content: "appDir: 42\n",
			wantErr: true,
			field:   "appDir",
		},
		{
			name:    "modules dir with separator",
			content: "modulesDir: a/b\n",
			wantErr: true,
			field:   "modulesDir",
		},
		{
			name:    "timestamps not bool",
			content: "log:\n  timestamps: sometimes\n",
			wantErr: true,
			field:   "log.timestamps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateFile(writeConfig(t, tt.content))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.field, verrs[0].Field)
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	assert.Equal(t, "no validation errors", ValidationErrors{}.Error())

	errs := ValidationErrors{{Field: "appDir", Message: "conflicting values"}}
	assert.Contains(t, errs.Error(), "appDir: conflicting values")
}

func TestFieldPath(t *testing.T) {
	tests := []struct {
		path []string
		want string
	}{
		{[]string{"#Config", "appDir"}, "appDir"},
		{[]string{"#Config", "log", "timestamps"}, "log.timestamps"},
		{[]string{"modulesDir"}, "modulesDir"},
		{[]string{"#Config"}, ""},
		{nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, fieldPath(tt.path))
		})
	}
}
