package assethashmap

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"

	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/sha3"
)

// HashAlgorithm represents a hash algorithm configuration
type HashAlgorithm struct {
	Name    string
	Size    int // digest size in bytes
	NewFunc func() hash.Hash
}

// GetHashAlgorithm returns the hash algorithm configuration for the given name
func GetHashAlgorithm(name string) (*HashAlgorithm, error) {
	switch normaliseName(name) {
	case HashSHA1, "":
		return &HashAlgorithm{
			Name:    HashSHA1,
			Size:    sha1.Size,
			NewFunc: sha1.New,
		}, nil
	case HashMD5:
		return &HashAlgorithm{
			Name:    HashMD5,
			Size:    md5.Size,
			NewFunc: md5.New,
		}, nil
	case HashSHA256:
		return &HashAlgorithm{
			Name:    HashSHA256,
			Size:    sha256.Size,
			NewFunc: sha256.New,
		}, nil
	case HashSHA512:
		return &HashAlgorithm{
			Name:    HashSHA512,
			Size:    sha512.Size,
			NewFunc: sha512.New,
		}, nil
	case HashSHA3256, "sha3":
		return &HashAlgorithm{
			Name:    HashSHA3256,
			Size:    32,
			NewFunc: sha3.New256,
		}, nil
	case HashBLAKE3:
		return &HashAlgorithm{
			Name:    HashBLAKE3,
			Size:    32,
			NewFunc: func() hash.Hash { return blake3.New() },
		}, nil
	case HashXXH3:
		return &HashAlgorithm{
			Name:    HashXXH3,
			Size:    8,
			NewFunc: func() hash.Hash { return xxh3.New() },
		}, nil
	default:
		return nil, fmt.Errorf("unsupported hash algorithm: %s (supported: %s)",
			name, strings.Join(hashAlgorithmNames, ", "))
	}
}

// ValidateHashAlgorithm validates that a hash algorithm is supported
func ValidateHashAlgorithm(algorithm string) error {
	_, err := GetHashAlgorithm(algorithm)
	return err
}

// HexLength returns the length of a hex encoded digest
func (a *HashAlgorithm) HexLength() int {
	return a.Size * 2
}

// HashBytesToHexString hashes data and returns the lowercase hex digest
func HashBytesToHexString(data []byte, algorithm *HashAlgorithm) string {
	hasher := algorithm.NewFunc()
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}

// HashStringToHexString calculates the hash of a string and returns it as a hex string
func HashStringToHexString(data string, algorithm *HashAlgorithm) string {
	return HashBytesToHexString([]byte(data), algorithm)
}
