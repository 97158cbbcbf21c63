// Package inspector is the reference host runtime for the provenance engine:
// it parses JSX-bearing sources with tree-sitter, maps expressions into the
// engine's tagged union, and drives per-module collection and per-element
// tracing.
package inspector

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"

	"jsxtrace/engine"
)

// Config controls file selection during package inspection.
type Config struct {
	SkipTests         bool
	RecursivePackages bool
}

// DefaultConfig returns the configuration used when none is provided.
func DefaultConfig() *Config {
	return &Config{SkipTests: false, RecursivePackages: true}
}

// Inspector analyzes JSX-bearing source files and produces a module graph and
// per-element provenance traces for each.
type Inspector struct {
	config *Config
}

// NewInspector creates an Inspector with the provided configuration.
func NewInspector(config *Config) *Inspector {
	if config == nil {
		config = DefaultConfig()
	}
	return &Inspector{config: config}
}

// ElementAnalysis is the output for one JSX element.
type ElementAnalysis struct {
	Tag                 string      `json:"tag,omitempty" yaml:"tag,omitempty"`
	Span                engine.Span `json:"span" yaml:"span"`
	engine.ElementTrace `yaml:",inline"`
}

// FileAnalysis is the per-file output: the module graph plus one entry per
// JSX element, all plain data ready for the host to serialize.
type FileAnalysis struct {
	Path     string              `json:"path,omitempty" yaml:"path,omitempty"`
	FileKey  string              `json:"fileKey" yaml:"fileKey"`
	Graph    *engine.ModuleGraph `json:"graph" yaml:"graph"`
	Elements []ElementAnalysis   `json:"elements" yaml:"elements"`
}

// InspectSource analyzes source held in memory under the given file key,
// using the javascript grammar (which covers JSX).
func (i *Inspector) InspectSource(src []byte, fileKey string) (*FileAnalysis, error) {
	return i.inspect(src, fileKey, "", javascript.GetLanguage())
}

// InspectFile reads and analyzes a single file, picking the grammar from its
// extension. The file key defaults to the file path; hosts that obfuscate
// keys rewrite FileKey before serializing.
func (i *Inspector) InspectFile(filename string) (*FileAnalysis, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	analysis, err := i.inspect(src, filename, filename, languageFor(filename))
	if err != nil {
		return nil, fmt.Errorf("failed to inspect %s: %w", filename, err)
	}
	return analysis, nil
}

// InspectPackage analyzes every JSX-bearing file under a directory.
func (i *Inspector) InspectPackage(packagePath string) ([]*FileAnalysis, error) {
	absPath, err := filepath.Abs(packagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	var analyses []*FileAnalysis
	err = filepath.Walk(absPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if info.Name() == "node_modules" {
				return filepath.SkipDir
			}
			if !i.config.RecursivePackages && path != absPath {
				return filepath.SkipDir
			}
			return nil
		}
		if !InspectableFile(path) {
			return nil
		}
		if i.config.SkipTests && isTestFile(path) {
			return nil
		}
		analysis, err := i.InspectFile(path)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", path, err)
		}
		analyses = append(analyses, analysis)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking package directory: %w", err)
	}
	if len(analyses) == 0 {
		return nil, fmt.Errorf("no JSX-bearing files found in package: %s", packagePath)
	}
	return analyses, nil
}

func (i *Inspector) inspect(src []byte, fileKey, path string, language *sitter.Language) (*FileAnalysis, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(language)

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}

	c := newCollector(src, fileKey)
	c.collect(tree.RootNode())

	out := &FileAnalysis{
		Path:     path,
		FileKey:  fileKey,
		Graph:    c.analysis.Graph,
		Elements: []ElementAnalysis{},
	}
	for _, site := range c.elements {
		trace := c.analysis.AnalyzeElement(engine.Element{
			Span:     site.span,
			Scope:    site.scope,
			Attrs:    site.attrs,
			Children: site.children,
		})
		out.Elements = append(out.Elements, ElementAnalysis{Tag: site.tag, Span: site.span, ElementTrace: trace})
	}
	return out, nil
}

// InspectableFile reports whether the path carries a source kind this
// inspector understands.
func InspectableFile(path string) bool {
	switch filepath.Ext(path) {
	case ".js", ".jsx", ".ts", ".tsx", ".mjs":
		return true
	}
	return false
}

func isTestFile(path string) bool {
	base := filepath.Base(path)
	return strings.Contains(base, ".test.") || strings.Contains(base, ".spec.")
}

func languageFor(filename string) *sitter.Language {
	switch filepath.Ext(filename) {
	case ".ts", ".tsx":
		return tsx.GetLanguage()
	}
	return javascript.GetLanguage()
}
