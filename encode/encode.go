// Package encode implements the payload codec used when provenance data is
// embedded into generated attributes: a keyed XOR pass wrapped in URL-safe
// base64. The point is transport hygiene, not secrecy.
package encode

import (
	"encoding/base64"
	"fmt"
)

// DefaultKey is used when a codec is created without an explicit key.
const DefaultKey = "jsxtrace"

// Codec encodes and decodes trace payloads.
type Codec struct {
	key []byte
}

// NewCodec creates a codec with the given key; an empty key falls back to
// DefaultKey.
func NewCodec(key string) *Codec {
	if key == "" {
		key = DefaultKey
	}
	return &Codec{key: []byte(key)}
}

// Encode obfuscates the payload and returns it as URL-safe base64.
func (c *Codec) Encode(payload []byte) string {
	return base64.URLEncoding.EncodeToString(c.xor(payload))
}

// Decode reverses Encode.
func (c *Codec) Decode(encoded string) ([]byte, error) {
	data, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}
	return c.xor(data), nil
}

// xor is an involution: applying it twice yields the input.
func (c *Codec) xor(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ c.key[i%len(c.key)]
	}
	return out
}
