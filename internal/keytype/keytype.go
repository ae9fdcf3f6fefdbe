// Package keytype is the tagged-variant registry for per-algorithm key
// parameter schemas (§9 design note: "natural systems-language shape is a
// tagged variant whose discriminant is the key_type string"). Each
// KeyType declares its public-params schema, private-params schema, and
// the projection from private params onto the public subset used for
// consistency checking and override_public_with_private.
package keytype

import (
	"fmt"
	"sync"

	"github.com/postalsys/osshkey/internal/wire"
)

// KeyType describes one openssh-key-v1 algorithm variant.
type KeyType interface {
	// Name is the wire key_type string, e.g. "ssh-ed25519".
	Name() string

	// PublicSchema is the ordered field schema for the public-params
	// record, read/written after the STRING key_type header field.
	PublicSchema() wire.Schema

	// PrivateSchema is the ordered field schema for the private-params
	// record, read/written after the STRING key_type header field.
	PrivateSchema() wire.Schema

	// PublicSubset projects a private-params record onto the fields the
	// public-params schema also carries.
	PublicSubset(private wire.Record) wire.Record
}

// Registry is a named lookup of KeyType implementations keyed by wire
// key_type string. The zero value is ready to use.
type Registry struct {
	mu    sync.RWMutex
	types map[string]KeyType
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]KeyType)}
}

// Register adds kt to the registry, keyed by kt.Name().
func (r *Registry) Register(kt KeyType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.types == nil {
		r.types = make(map[string]KeyType)
	}
	r.types[kt.Name()] = kt
}

// Lookup returns the KeyType registered under name.
func (r *Registry) Lookup(name string) (KeyType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kt, ok := r.types[name]
	if !ok {
		return nil, fmt.Errorf("unknown key type %q", name)
	}
	return kt, nil
}

// Default is the registry pre-populated with the key types this module
// ships: ssh-ed25519 and ssh-rsa.
var Default = buildDefault()

func buildDefault() *Registry {
	r := NewRegistry()
	r.Register(ed25519KeyType{})
	r.Register(rsaKeyType{})
	return r
}
