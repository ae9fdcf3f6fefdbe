// Package kdf is the KDF registry described in the package overview: named
// lookup of an options schema plus derive_key(options, passphrase) ->
// (cipher_key, iv).
package kdf

import (
	"fmt"
	"sync"

	"github.com/postalsys/osshkey/internal/wire"
)

// KDF describes a named key-derivation function usable to turn a
// passphrase into an openssh-key-v1 cipher key and IV.
type KDF interface {
	Name() string

	// OptionsSchema is the ordered field schema for the kdf_options blob.
	OptionsSchema() wire.Schema

	// DeriveKey derives keyLen bytes of cipher key and ivLen bytes of IV
	// from passphrase and the decoded kdf_options record.
	DeriveKey(options wire.Record, passphrase string, keyLen, ivLen int) (key, iv []byte, err error)
}

// Registry is a named lookup of KDF implementations.
type Registry struct {
	mu   sync.RWMutex
	kdfs map[string]KDF
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{kdfs: make(map[string]KDF)}
}

// Register adds k to the registry, keyed by k.Name().
func (r *Registry) Register(k KDF) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kdfs[k.Name()] = k
}

// Lookup returns the KDF registered under name.
func (r *Registry) Lookup(name string) (KDF, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	k, ok := r.kdfs[name]
	if !ok {
		return nil, fmt.Errorf("unknown kdf %q", name)
	}
	return k, nil
}

// Default is the registry pre-populated with the KDFs this module ships:
// none and bcrypt.
var Default = buildDefault()

func buildDefault() *Registry {
	r := NewRegistry()
	r.Register(noneKDF{})
	r.Register(bcryptKDF{})
	return r
}
