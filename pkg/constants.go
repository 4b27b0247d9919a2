package assethashmap

import "strings"

// Hash algorithm names accepted by GetHashAlgorithm
const (
	HashSHA1    = "sha1"
	HashMD5     = "md5"
	HashSHA256  = "sha256"
	HashSHA512  = "sha512"
	HashSHA3256 = "sha3-256"
	HashBLAKE3  = "blake3"
	HashXXH3    = "xxh3"
)

// DefaultHashAlgorithm matches the digest produced by the npm shasum package
const DefaultHashAlgorithm = HashSHA1

// Content encodings applied before hashing
const (
	EncodingUTF8   = "utf8"   // decode as UTF-8 text, invalid bytes become U+FFFD
	EncodingBinary = "binary" // hash raw bytes
)

// DefaultEncoding is the text decoding used when Options.Encoding is empty
const DefaultEncoding = EncodingUTF8

// Output formats for manifests
const (
	FormatShasum = "shasum"
	FormatJSON   = "json"
)

// Performance defaults
const (
	DefaultBufferSize = 64 * 1024 // read buffer per hashing goroutine
	MaxHashWorkers    = 256
	fallbackIOVMax    = 1024 // IOV_MAX on Linux
)

// ConfigFileName is looked up in the working directory by the CLI
const ConfigFileName = ".assethash"

// Debug flag names understood by IsDebugEnabled
const (
	DebugWalk   = "walk"
	DebugFilter = "filter"
	DebugHash   = "hash"
)

// hashAlgorithmNames lists the registry in a stable order for help text and errors
var hashAlgorithmNames = []string{
	HashSHA1, HashMD5, HashSHA256, HashSHA512, HashSHA3256, HashBLAKE3, HashXXH3,
}

// SupportedHashAlgorithms returns the registered algorithm names
func SupportedHashAlgorithms() []string {
	names := make([]string, len(hashAlgorithmNames))
	copy(names, hashAlgorithmNames)
	return names
}

// normaliseName lower-cases and trims a user supplied name
func normaliseName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
