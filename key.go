package osshkey

import (
	"bytes"
	"reflect"
)

// PublicKey is one parsed or constructed public-key record: a header
// (carrying at least key_type), algorithm-specific params, a footer
// (empty for this format), and any trailing bytes found past the
// declared structure within its length-prefixed blob.
type PublicKey struct {
	Header    Record
	Params    Record
	Footer    Record
	Remainder []byte
}

// KeyType returns the header's key_type field, or "" if absent.
func (k PublicKey) KeyType() string {
	kt, _ := k.Header["key_type"].(string)
	return kt
}

// Equal reports whether k and other hold the same header, params,
// footer, and remainder.
func (k PublicKey) Equal(other PublicKey) bool {
	return reflect.DeepEqual(k.Header, other.Header) &&
		reflect.DeepEqual(k.Params, other.Params) &&
		reflect.DeepEqual(k.Footer, other.Footer) &&
		bytes.Equal(k.Remainder, other.Remainder)
}

// PrivateKey is one parsed or constructed private-key record: a header
// (key_type), algorithm-specific params, and a footer carrying the
// key's comment.
type PrivateKey struct {
	Header Record
	Params Record
	Footer Record
}

// KeyType returns the header's key_type field, or "" if absent.
func (k PrivateKey) KeyType() string {
	kt, _ := k.Header["key_type"].(string)
	return kt
}

// Comment returns the footer's comment field, or "" if absent.
func (k PrivateKey) Comment() string {
	c, _ := k.Footer["comment"].(string)
	return c
}

// Equal reports whether k and other hold the same header, params, and
// footer.
func (k PrivateKey) Equal(other PrivateKey) bool {
	return reflect.DeepEqual(k.Header, other.Header) &&
		reflect.DeepEqual(k.Params, other.Params) &&
		reflect.DeepEqual(k.Footer, other.Footer)
}

// PublicPrivateKeyPair couples a public and a private key record; most
// operations on a PrivateKeyList work a pair at a time.
type PublicPrivateKeyPair struct {
	Public  PublicKey
	Private PrivateKey
}

// Equal reports whether both halves of p and other are equal.
func (p PublicPrivateKeyPair) Equal(other PublicPrivateKeyPair) bool {
	return p.Public.Equal(other.Public) && p.Private.Equal(other.Private)
}

func cloneRecord(r Record) Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
