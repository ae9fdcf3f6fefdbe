package osshkey

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/postalsys/osshkey/internal/ciphersuite"
	"github.com/postalsys/osshkey/internal/kdf"
	"github.com/postalsys/osshkey/internal/keytype"
)

// authMagic is the 15-byte literal marking a v1 OpenSSH private key.
var authMagic = []byte("openssh-key-v1\x00")

var outerHeaderSchema = Schema{
	Fixed("auth_magic", len(authMagic)),
	{Name: "cipher", Tag: TagString},
	{Name: "kdf", Tag: TagString},
	{Name: "kdf_options", Tag: TagBytes},
	{Name: "num_keys", Tag: TagInt32},
}

var publicHeaderSchema = Schema{{Name: "key_type", Tag: TagString}}
var publicFooterSchema = Schema{}
var privateHeaderSchema = Schema{{Name: "key_type", Tag: TagString}}
var privateFooterSchema = Schema{{Name: "comment", Tag: TagString}}

var decipherHeaderSchema = Schema{
	{Name: "check_int_1", Tag: TagUint32},
	{Name: "check_int_2", Tag: TagUint32},
}

// PrivateKeyList is the parsed or constructed form of an openssh-key-v1
// container: the outer header, the decoded KDF options, the raw and
// deciphered ciphertext, and the ordered list of key pairs it carries.
type PrivateKeyList struct {
	Header              Record
	KDFOptions          Record
	CipherBytes         []byte
	DecipherBytes       []byte
	DecipherBytesHeader Record
	DecipherPadding     []byte
	Pairs               []PublicPrivateKeyPair

	// Bytes holds the original buffer when this list came from FromBytes
	// or FromString; nil for lists built with FromList.
	Bytes []byte
}

// Len returns the number of pairs in the list.
func (l *PrivateKeyList) Len() int { return len(l.Pairs) }

// Get returns the pair at index i, or an out-of-range error.
func (l *PrivateKeyList) Get(i int) (PublicPrivateKeyPair, error) {
	if i < 0 || i >= len(l.Pairs) {
		return PublicPrivateKeyPair{}, indexError(i, len(l.Pairs))
	}
	return l.Pairs[i], nil
}

// Equal reports whether l and other hold the same pairs, in the same
// order. Per property 1 (round-trip), this ignores the freshly drawn
// check integer exposed in DecipherBytesHeader.
func (l *PrivateKeyList) Equal(other *PrivateKeyList) bool {
	if other == nil || len(l.Pairs) != len(other.Pairs) {
		return false
	}
	for i := range l.Pairs {
		if !l.Pairs[i].Equal(other.Pairs[i]) {
			return false
		}
	}
	return true
}

// FromBytes parses an openssh-key-v1 binary container (§4.3). passphrase
// is invoked at most once, only if the container's kdf is not "none".
// diag receives every soft warning raised while parsing; a nil diag
// discards them.
func FromBytes(data []byte, passphrase PassphraseProvider, diag Diagnostics) (*PrivateKeyList, error) {
	if diag == nil {
		diag = DiscardDiagnostics
	}

	s := NewByteStreamReader(data)

	header, err := ReadFromFormatInstructionsDict(s, outerHeaderSchema)
	if err != nil {
		return nil, err
	}

	magic, _ := header["auth_magic"].([]byte)
	if !bytes.Equal(magic, authMagic) {
		return nil, newFormatError("Not an openssh-key-v1 key")
	}

	numKeys, _ := header["num_keys"].(int32)
	if numKeys < 0 {
		return nil, newFormatError("Cannot parse negative number of keys")
	}

	cipherName, _ := header["cipher"].(string)
	kdfName, _ := header["kdf"].(string)
	kdfOptionsBytes, _ := header["kdf_options"].([]byte)

	kdfImpl, err := kdf.Default.Lookup(kdfName)
	if err != nil {
		return nil, err
	}
	cipherImpl, err := ciphersuite.Default.Lookup(cipherName)
	if err != nil {
		return nil, err
	}

	kdfOptions, err := ReadFromFormatInstructionsDict(NewByteStreamReader(kdfOptionsBytes), kdfImpl.OptionsSchema())
	if err != nil {
		return nil, err
	}

	pairs := make([]PublicPrivateKeyPair, numKeys)
	for i := int32(0); i < numKeys; i++ {
		blob, err := readBytesField(s)
		if err != nil {
			return nil, err
		}
		blobStream := NewByteStreamReader(blob)

		pubHeader, err := ReadFromFormatInstructionsDict(blobStream, publicHeaderSchema)
		if err != nil {
			return nil, err
		}
		kt, err := keytype.Default.Lookup(headerKeyType(pubHeader))
		if err != nil {
			return nil, err
		}
		pubParams, err := ReadFromFormatInstructionsDict(blobStream, kt.PublicSchema())
		if err != nil {
			return nil, err
		}
		pubFooter, err := ReadFromFormatInstructionsDict(blobStream, publicFooterSchema)
		if err != nil {
			return nil, err
		}
		remainder := blobStream.ReadRemaining()
		if len(remainder) > 0 {
			warnf(diag, int(i), "Excess bytes in key")
		}

		pairs[i].Public = PublicKey{Header: pubHeader, Params: pubParams, Footer: pubFooter, Remainder: remainder}
	}

	cipherBytes, err := readBytesField(s)
	if err != nil {
		return nil, err
	}

	passphraseStr, err := invokePassphrase(kdfName, passphrase)
	if err != nil {
		return nil, err
	}

	key, iv, err := kdfImpl.DeriveKey(kdfOptions, passphraseStr, cipherImpl.KeyLength(), cipherImpl.IVLength())
	if err != nil {
		return nil, err
	}

	decipherBytes, err := cipherImpl.Decrypt(key, iv, cipherBytes)
	if err != nil {
		return nil, err
	}

	decipherStream := NewByteStreamReader(decipherBytes)
	decipherHeader, err := ReadFromFormatInstructionsDict(decipherStream, decipherHeaderSchema)
	if err != nil {
		return nil, err
	}
	check1, _ := decipherHeader["check_int_1"].(uint32)
	check2, _ := decipherHeader["check_int_2"].(uint32)
	if check1 != check2 {
		warnf(diag, -1, "Cipher header check numbers do not match")
	}

	for i := int32(0); i < numKeys; i++ {
		privHeader, err := ReadFromFormatInstructionsDict(decipherStream, privateHeaderSchema)
		if err != nil {
			return nil, err
		}
		kt, err := keytype.Default.Lookup(headerKeyType(privHeader))
		if err != nil {
			return nil, err
		}
		privParams, err := ReadFromFormatInstructionsDict(decipherStream, kt.PrivateSchema())
		if err != nil {
			return nil, err
		}
		privFooter, err := ReadFromFormatInstructionsDict(decipherStream, privateFooterSchema)
		if err != nil {
			return nil, err
		}
		pairs[i].Private = PrivateKey{Header: privHeader, Params: privParams, Footer: privFooter}
	}

	padding := decipherStream.ReadRemaining()
	if !validPadding(len(decipherBytes), padding, cipherImpl.BlockSize()) {
		warnf(diag, -1, "Incorrect padding at end of ciphertext")
	}

	for i := range pairs {
		checkConsistency(pairs[i], i, diag)
	}

	return &PrivateKeyList{
		Header:              header,
		KDFOptions:          kdfOptions,
		CipherBytes:         cipherBytes,
		DecipherBytes:       decipherBytes,
		DecipherBytesHeader: decipherHeader,
		DecipherPadding:     padding,
		Pairs:               pairs,
		Bytes:               append([]byte(nil), data...),
	}, nil
}

// FromString parses an armored key (§4.5): strips the first and last
// non-blank lines, validates them against the fixed BEGIN/END lines,
// base64-decodes the rest, and delegates to FromBytes.
func FromString(text string, passphrase PassphraseProvider, diag Diagnostics) (*PrivateKeyList, error) {
	lines := nonBlankLines(text)
	if len(lines) < 2 || lines[0] != beginLine || lines[len(lines)-1] != endLine {
		return nil, newFormatError("Not an openssh private key")
	}

	body := strings.Join(lines[1:len(lines)-1], "")
	data, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, newDecodingError("invalid base64 in armored key: %v", err)
	}
	return FromBytes(data, passphrase, diag)
}

// FromList constructs a PrivateKeyList from pairs directly, without
// parsing. cipherName and kdfName default to "none" when empty.
func FromList(pairs []PublicPrivateKeyPair, cipherName, kdfName string, kdfOptions Record) (*PrivateKeyList, error) {
	if cipherName == "" {
		cipherName = "none"
	}
	if kdfName == "" {
		kdfName = "none"
	}
	if kdfOptions == nil {
		kdfOptions = Record{}
	}

	for i, p := range pairs {
		if p.Public.Header == nil || p.Private.Header == nil {
			return nil, fmt.Errorf("pair %d: %w", i, ErrNotAKeyPair)
		}
	}

	return &PrivateKeyList{
		Header: Record{
			"auth_magic": append([]byte(nil), authMagic...),
			"cipher":     cipherName,
			"kdf":        kdfName,
			"num_keys":   int32(len(pairs)),
		},
		KDFOptions: kdfOptions,
		Pairs:      append([]PublicPrivateKeyPair(nil), pairs...),
	}, nil
}

// PackOptions controls PrivateKeyList.Pack / PackString.
type PackOptions struct {
	// IncludeIndices selects and orders which pairs to emit; nil means
	// every pair, in list order.
	IncludeIndices []int

	// NoOverridePublicWithPrivate disables the default rewrite (§4.4
	// step 2) that replaces each emitted pair's public half with one
	// freshly derived from its private half.
	NoOverridePublicWithPrivate bool
}

// Pack serializes the list to the binary container format (§4.4).
func (l *PrivateKeyList) Pack(opts PackOptions, passphrase PassphraseProvider) ([]byte, error) {
	selected, err := l.selectPairs(opts.IncludeIndices)
	if err != nil {
		return nil, err
	}

	if !opts.NoOverridePublicWithPrivate {
		for i, pair := range selected {
			kt, err := keytype.Default.Lookup(pair.Private.KeyType())
			if err != nil {
				return nil, err
			}
			selected[i].Public = PublicKey{
				Header: cloneRecord(pair.Private.Header),
				Params: kt.PublicSubset(pair.Private.Params),
				Footer: Record{},
			}
		}
	}

	cipherName, _ := l.Header["cipher"].(string)
	kdfName, _ := l.Header["kdf"].(string)

	kdfImpl, err := kdf.Default.Lookup(kdfName)
	if err != nil {
		return nil, err
	}
	cipherImpl, err := ciphersuite.Default.Lookup(cipherName)
	if err != nil {
		return nil, err
	}

	kdfOptionsStream := NewByteStreamWriter()
	if err := WriteFromFormatInstructionsDict(kdfOptionsStream, kdfImpl.OptionsSchema(), l.KDFOptions); err != nil {
		return nil, err
	}

	out := NewByteStreamWriter()
	outerHeader := Record{
		"auth_magic":  append([]byte(nil), authMagic...),
		"cipher":      cipherName,
		"kdf":         kdfName,
		"kdf_options": kdfOptionsStream.Bytes(),
		"num_keys":    int32(len(selected)),
	}
	if err := WriteFromFormatInstructionsDict(out, outerHeaderSchema, outerHeader); err != nil {
		return nil, err
	}

	for _, pair := range selected {
		pubStream := NewByteStreamWriter()
		if err := WriteFromFormatInstructionsDict(pubStream, publicHeaderSchema, pair.Public.Header); err != nil {
			return nil, err
		}
		kt, err := keytype.Default.Lookup(pair.Public.KeyType())
		if err != nil {
			return nil, err
		}
		if err := WriteFromFormatInstructionsDict(pubStream, kt.PublicSchema(), pair.Public.Params); err != nil {
			return nil, err
		}
		if err := WriteFromFormatInstructionsDict(pubStream, publicFooterSchema, pair.Public.Footer); err != nil {
			return nil, err
		}
		pubStream.Write(pair.Public.Remainder)
		if err := WriteFromFormatInstruction(out, TagBytes, 0, pubStream.Bytes()); err != nil {
			return nil, err
		}
	}

	plaintext := NewByteStreamWriter()
	checkInt, err := randomUint32()
	if err != nil {
		return nil, err
	}
	if err := WriteFromFormatInstructionsDict(plaintext, decipherHeaderSchema, Record{
		"check_int_1": checkInt,
		"check_int_2": checkInt,
	}); err != nil {
		return nil, err
	}
	for _, pair := range selected {
		if err := WriteFromFormatInstructionsDict(plaintext, privateHeaderSchema, pair.Private.Header); err != nil {
			return nil, err
		}
		kt, err := keytype.Default.Lookup(pair.Private.KeyType())
		if err != nil {
			return nil, err
		}
		if err := WriteFromFormatInstructionsDict(plaintext, kt.PrivateSchema(), pair.Private.Params); err != nil {
			return nil, err
		}
		if err := WriteFromFormatInstructionsDict(plaintext, privateFooterSchema, pair.Private.Footer); err != nil {
			return nil, err
		}
	}

	padded := padToBlockSize(plaintext.Bytes(), cipherImpl.BlockSize())

	passphraseStr, err := invokePassphrase(kdfName, passphrase)
	if err != nil {
		return nil, err
	}

	key, iv, err := kdfImpl.DeriveKey(l.KDFOptions, passphraseStr, cipherImpl.KeyLength(), cipherImpl.IVLength())
	if err != nil {
		return nil, err
	}

	ciphertext, err := cipherImpl.Encrypt(key, iv, padded)
	if err != nil {
		return nil, err
	}

	if err := WriteFromFormatInstruction(out, TagBytes, 0, ciphertext); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// PackString serializes the list and armors it (§4.6).
func (l *PrivateKeyList) PackString(opts PackOptions, passphrase PassphraseProvider) (string, error) {
	packed, err := l.Pack(opts, passphrase)
	if err != nil {
		return "", err
	}
	return armor(packed), nil
}

func (l *PrivateKeyList) selectPairs(includeIndices []int) ([]PublicPrivateKeyPair, error) {
	if includeIndices == nil {
		out := make([]PublicPrivateKeyPair, len(l.Pairs))
		copy(out, l.Pairs)
		return out, nil
	}
	out := make([]PublicPrivateKeyPair, len(includeIndices))
	for i, idx := range includeIndices {
		if idx < 0 || idx >= len(l.Pairs) {
			return nil, indexError(idx, len(l.Pairs))
		}
		out[i] = l.Pairs[idx]
	}
	return out, nil
}

func headerKeyType(h Record) string {
	kt, _ := h["key_type"].(string)
	return kt
}

func readBytesField(s *ByteStream) ([]byte, error) {
	v, err := ReadFromFormatInstruction(s, TagBytes, 0)
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func invokePassphrase(kdfName string, passphrase PassphraseProvider) (string, error) {
	if kdfName == "none" {
		return "", nil
	}
	if passphrase == nil {
		return "", ErrNoPassphraseProvider
	}
	return passphrase()
}

// validPadding checks the §3/§4.3 padding law: the deciphered length is a
// multiple of blockSize, and the trailing bytes read exactly 1, 2, …, k.
func validPadding(totalLen int, padding []byte, blockSize int) bool {
	if blockSize > 0 && totalLen%blockSize != 0 {
		return false
	}
	for i, b := range padding {
		if b != byte(i+1) {
			return false
		}
	}
	return true
}

// padToBlockSize appends the 1, 2, …, k padding tail needed to bring
// data up to a multiple of blockSize.
func padToBlockSize(data []byte, blockSize int) []byte {
	if blockSize <= 0 {
		return data
	}
	k := (blockSize - (len(data) % blockSize)) % blockSize
	out := make([]byte, len(data)+k)
	copy(out, data)
	for i := 0; i < k; i++ {
		out[len(data)+i] = byte(i + 1)
	}
	return out
}

func randomUint32() (uint32, error) {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

// nonBlankLines splits text on newlines, trims trailing \r, and drops
// leading/trailing fully-blank lines.
func nonBlankLines(text string) []string {
	raw := strings.Split(text, "\n")
	start, end := 0, len(raw)
	for start < end && strings.TrimSpace(raw[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(raw[end-1]) == "" {
		end--
	}
	out := make([]string, 0, end-start)
	for _, ln := range raw[start:end] {
		out = append(out, strings.TrimRight(ln, "\r"))
	}
	return out
}
