package osshkey

import (
	"reflect"

	"github.com/postalsys/osshkey/internal/keytype"
)

// checkConsistency runs the §4.7 checks for pair i, warning on diag
// without ever aborting.
func checkConsistency(pair PublicPrivateKeyPair, i int, diag Diagnostics) {
	if pair.Public.KeyType() != pair.Private.KeyType() {
		warnf(diag, i, "Inconsistency between private and public key types for key %d", i)
		return
	}

	kt, err := keytype.Default.Lookup(pair.Private.KeyType())
	if err != nil {
		// Unknown key type; nothing further to project or compare.
		return
	}
	projected := kt.PublicSubset(pair.Private.Params)
	if !reflect.DeepEqual(projected, pair.Public.Params) {
		warnf(diag, i, "Inconsistency between private and public values for key %d", i)
	}
}
