package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "xbind.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigFromPath(t *testing.T) {
	// Test: A config file is parsed into its sections
	path := writeConfig(t, t.TempDir(), `{
		"ast": "app.json",
		"manifest": "generated.txt",
		"cpp": {"out": "gen/cpp", "namespace": "app::gen"},
		"yaml": {"out": "gen/yaml", "outFileBase": "app"}
	}`)

	cfg, err := LoadConfigFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "app.json", cfg.AST)
	assert.Equal(t, "generated.txt", cfg.Manifest)
	require.NotNil(t, cfg.Cpp)
	assert.Equal(t, "app::gen", cfg.Cpp.Namespace)
	assert.Nil(t, cfg.Java)
}

func TestLoadConfigFromPath_BadJSON(t *testing.T) {
	// Test: Malformed JSON is reported as a parse failure
	path := writeConfig(t, t.TempDir(), `{"ast": `)

	_, err := LoadConfigFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLoadConfig_FindsParentDirectory(t *testing.T) {
	// Test: Discovery walks parent directories until it finds xbind.json
	root := t.TempDir()
	writeConfig(t, root, `{"ast": "app.json"}`)
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, dir, err := loadConfigFromDir(nested)
	require.NoError(t, err)
	assert.Equal(t, "app.json", cfg.AST)

	// Resolve symlinks so the comparison survives /tmp redirection.
	wantDir, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	gotDir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, wantDir, gotDir)
}

func TestLoadConfig_NotFound(t *testing.T) {
	// Test: A tree with no xbind.json yields a descriptive error
	_, _, err := loadConfigFromDir(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xbind.json")
}

func TestBuild_SectionsAndDefaults(t *testing.T) {
	// Test: Sections enable backends; absent sections leave them disabled
	cfg := &Config{
		Cpp:  &CppSection{Out: "gen/cpp", HeaderOut: "gen/include", Namespace: "app"},
		Java: &JavaSection{Out: "gen/java", Package: "com.example", CppException: "java.lang.RuntimeException"},
		Yaml: &YamlSection{Out: "gen/yaml"},
	}

	out, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(t, "gen/cpp", out.Cpp.OutDir)
	assert.Equal(t, "gen/include", out.Cpp.HeaderOutDir)
	assert.Equal(t, "com.example", out.Java.Package)
	assert.Equal(t, "gen/yaml", out.Yaml.OutDir)
	assert.Equal(t, "xbind", out.Yaml.OutFileBase)
	assert.Empty(t, out.Objc.OutDir)
	assert.Empty(t, out.Py.OutDir)
}

func TestBuild_IdentOverrides(t *testing.T) {
	// Test: Casing examples are inferred and installed on the right role
	cfg := &Config{
		Cpp: &CppSection{
			Out: "gen/cpp",
			IdentStyle: IdentOverrides{
				"method": "FooBar",
				"field":  "m_fooBar",
				"const":  "FOO_BAR",
			},
		},
	}

	out, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(t, "LoadImage", out.Cpp.Ident.Method("load_image"))
	assert.Equal(t, "m_imageData", out.Cpp.Ident.Field("image_data"))
	assert.Equal(t, "MAX_SIZE", out.Cpp.Ident.Const("max_size"))
}

func TestBuild_UnrecognizedCasingExample(t *testing.T) {
	// Test: An example that matches no known style fails the build
	cfg := &Config{
		Java: &JavaSection{
			Out:        "gen/java",
			IdentStyle: IdentOverrides{"method": "foo bar"},
		},
	}

	_, err := cfg.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "java.identStyle.method")
}

func TestBuild_UnknownRole(t *testing.T) {
	// Test: An unknown override role is rejected
	cfg := &Config{
		Py: &PySection{
			Out:        "gen/py",
			IdentStyle: IdentOverrides{"banana": "FooBar"},
		},
	}

	_, err := cfg.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown role")
}
