package repository

import (
	"context"
	"os"
	"path/filepath"
	"regexp"

	"github.com/viant/afs"
)

// Detector identifies project root folders for JSX-bearing sources.
type Detector struct {
	// Project root marker files/directories, checked in order.
	markers []string
}

// New creates a project detector with the default marker set.
func New() *Detector {
	return &Detector{
		markers: []string{
			"package.json",  // JavaScript/Node projects
			"tsconfig.json", // TypeScript projects
			"jsconfig.json", // JavaScript projects with explicit config
			".git",          // Generic VCS marker
		},
	}
}

// DetectProject identifies the project root for the given file path. When no
// marker is found the file's own directory becomes the root and the type is
// "unknown".
func (d *Detector) DetectProject(filePath string) (*Project, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}

	startDir := absPath
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !fileInfo.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	rootPath, projectType := d.findProjectRoot(startDir)

	info := &Project{
		Type:     "unknown",
		RootPath: startDir,
	}
	if rootPath != "" {
		info.RootPath = rootPath
		info.Type = projectType
	}

	relPath, err := filepath.Rel(info.RootPath, absPath)
	if err != nil {
		relPath = filepath.Base(absPath)
	}
	info.RelativePath = filepath.ToSlash(relPath)

	if projectType != "" {
		info.Name = extractPackageName(filepath.Join(rootPath, "package.json"))
	}
	if info.Name == "" {
		info.Name = filepath.Base(info.RootPath)
	}
	return info, nil
}

// findProjectRoot searches up from the start directory for project markers.
func (d *Detector) findProjectRoot(startDir string) (string, string) {
	dir := startDir
	for {
		for _, marker := range d.markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, determineProjectType(marker)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ""
}

var packageNameRegex = regexp.MustCompile(`"name"\s*:\s*"([^"]+)"`)

// extractPackageName pulls the "name" field out of package.json. A regex is
// enough here; a malformed manifest just falls back to the directory name.
func extractPackageName(packageJSONPath string) string {
	fs := afs.New()
	content, err := fs.DownloadWithURL(context.Background(), packageJSONPath)
	if err != nil || len(content) == 0 {
		return ""
	}
	matches := packageNameRegex.FindSubmatch(content)
	if len(matches) < 2 {
		return ""
	}
	return string(matches[1])
}

func determineProjectType(marker string) string {
	switch marker {
	case "package.json", "jsconfig.json":
		return "javascript"
	case "tsconfig.json":
		return "typescript"
	case ".git":
		return "git"
	default:
		return "unknown"
	}
}
