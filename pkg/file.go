package assethashmap

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ValidateEncoding validates a content encoding name
func ValidateEncoding(encoding string) error {
	switch normaliseName(encoding) {
	case "", EncodingUTF8, "utf-8", EncodingBinary:
		return nil
	default:
		return fmt.Errorf("unsupported encoding: %s (supported: %s, %s)", encoding, EncodingUTF8, EncodingBinary)
	}
}

// contentReader wraps r so that it yields the bytes the digest is computed over
func contentReader(r io.Reader, encoding string) io.Reader {
	if normaliseName(encoding) == EncodingBinary {
		return r
	}
	// Invalid sequences are replaced with U+FFFD, as a text read does
	return transform.NewReader(r, unicode.UTF8.NewDecoder())
}

// HashFile calculates the hex digest of a file's decoded content.
// The context is checked between buffer reads so a cancelled call stops early.
func HashFile(ctx context.Context, filePath string, algorithm *HashAlgorithm, encoding string, bufferSize int) (string, error) {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", &FileReadError{Path: filePath, Err: err}
	}
	defer file.Close()

	hasher := algorithm.NewFunc()
	reader := contentReader(file, encoding)
	buffer := make([]byte, bufferSize)

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		n, err := reader.Read(buffer)
		if n > 0 {
			hasher.Write(buffer[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", &FileReadError{Path: filePath, Err: err}
		}
	}

	DebugLog(DebugHash, "%s %s", algorithm.Name, filePath)

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
