package repository

import (
	"fmt"

	"github.com/minio/highwayhash"
)

var hashKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// Hash computes the 64-bit highway hash used for obfuscated file keys and
// content fingerprints.
func Hash(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}

// KeyResolver derives the file key attached to every emitted span. Keys are
// project-relative paths by default; with Obfuscate set they become stable
// hex digests so traces can leave the machine without leaking the layout.
type KeyResolver struct {
	Obfuscate bool

	detector *Detector
}

// NewKeyResolver creates a resolver backed by the default project detector.
func NewKeyResolver(obfuscate bool) *KeyResolver {
	return &KeyResolver{Obfuscate: obfuscate, detector: New()}
}

// Resolve returns the file key for a source path. Detection failures fall
// back to the path itself so inspection never stalls on a stray file.
func (r *KeyResolver) Resolve(filePath string) string {
	key := filePath
	if project, err := r.detector.DetectProject(filePath); err == nil && project.RelativePath != "" {
		key = project.RelativePath
	}
	if !r.Obfuscate {
		return key
	}
	sum, err := Hash([]byte(key))
	if err != nil {
		return key
	}
	return fmt.Sprintf("%016x", sum)
}
