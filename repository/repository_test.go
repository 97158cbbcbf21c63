package repository

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	assert.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDetectProject(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{"name": "acme-dashboard", "version": "1.0.0"}`)
	writeFile(t, filepath.Join(root, "src", "components", "App.jsx"), "export default function App() {}")

	project, err := New().DetectProject(filepath.Join(root, "src", "components", "App.jsx"))
	assert.NoError(t, err)
	assert.Equal(t, "javascript", project.Type)
	assert.Equal(t, "acme-dashboard", project.Name)
	assert.Equal(t, "src/components/App.jsx", project.RelativePath)
}

func TestDetectProject_TypeScriptMarker(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "tsconfig.json"), `{}`)
	writeFile(t, filepath.Join(root, "src", "App.tsx"), "export {}")

	project, err := New().DetectProject(filepath.Join(root, "src", "App.tsx"))
	assert.NoError(t, err)
	assert.Equal(t, "typescript", project.Type)
	assert.Equal(t, filepath.Base(root), project.Name)
}

func TestDetectProject_NoMarker(t *testing.T) {
	// markers found in parents of TempDir would break this, so assert only
	// that detection still yields a usable relative path
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "orphan.jsx"), "export {}")

	project, err := New().DetectProject(filepath.Join(root, "orphan.jsx"))
	assert.NoError(t, err)
	assert.NotEmpty(t, project.RootPath)
	assert.NotEmpty(t, project.RelativePath)
}

func TestHash_Deterministic(t *testing.T) {
	first, err := Hash([]byte("src/App.jsx"))
	assert.NoError(t, err)
	second, err := Hash([]byte("src/App.jsx"))
	assert.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := Hash([]byte("src/Other.jsx"))
	assert.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestKeyResolver(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{"name": "acme"}`)
	writeFile(t, filepath.Join(root, "src", "App.jsx"), "export {}")
	target := filepath.Join(root, "src", "App.jsx")

	plain := NewKeyResolver(false).Resolve(target)
	assert.Equal(t, "src/App.jsx", plain)

	obfuscated := NewKeyResolver(true).Resolve(target)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}$`), obfuscated)
	assert.Equal(t, obfuscated, NewKeyResolver(true).Resolve(target))
}
