package system

import (
	"fmt"
	"io/fs"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultEncoding is the text encoding used when none is declared.
const DefaultEncoding = "UTF-8"

// lookupEncoding resolves an IANA/WHATWG encoding label such as "UTF-8" or
// "ISO-8859-1". An empty label means DefaultEncoding.
func lookupEncoding(name string) (encoding.Encoding, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultEncoding
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown text encoding %q: %w", name, err)
	}
	return enc, nil
}

// ReadTextFile reads path and decodes it from the named encoding.
func ReadTextFile(fsys FileSystem, path, encodingName string) (string, error) {
	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return "", err
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return "", err
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s as %s: %w", path, encodingName, err)
	}
	return string(decoded), nil
}

// WriteTextFile encodes text in the named encoding and writes it to path.
func WriteTextFile(fsys FileSystem, path, text, encodingName string, perm fs.FileMode) error {
	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return err
	}

	encoded, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return fmt.Errorf("failed to encode %s as %s: %w", path, encodingName, err)
	}
	return fsys.WriteFile(path, encoded, perm)
}
