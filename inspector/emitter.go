package inspector

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Emitter renders a FileAnalysis for the host to consume.
type Emitter interface {
	Emit(analysis *FileAnalysis) ([]byte, error)
}

// YAMLEmitter renders analyses as YAML.
type YAMLEmitter struct{}

func (e *YAMLEmitter) Emit(analysis *FileAnalysis) ([]byte, error) {
	return yaml.Marshal(analysis)
}

// JSONEmitter renders analyses as JSON, optionally indented.
type JSONEmitter struct {
	Indent bool
}

func (e *JSONEmitter) Emit(analysis *FileAnalysis) ([]byte, error) {
	if e.Indent {
		return json.MarshalIndent(analysis, "", "  ")
	}
	return json.Marshal(analysis)
}

// NewEmitter returns the emitter for a format name; unknown formats fall back
// to YAML.
func NewEmitter(format string) Emitter {
	switch format {
	case "json":
		return &JSONEmitter{Indent: true}
	default:
		return &YAMLEmitter{}
	}
}
