package files

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/harrylevesque/qrverify/internal/crypto"
)

const (
	// MasterKeyEnv holds the hex encoded master key.
	MasterKeyEnv = "MASTER_KEY_HEX"
	// MasterKeySize is the master key length in bytes.
	MasterKeySize = 32
)

var (
	// ErrNoMasterKey is returned when neither the env var nor the key file is present.
	ErrNoMasterKey = errors.New("master key not configured")
	// ErrKeyExists is returned when writing a key over an existing file.
	ErrKeyExists = errors.New("key file already exists")
)

// ReadMasterKey returns the master key from MASTER_KEY_HEX, or from the file
// at path when the variable is unset.
func ReadMasterKey(path string) ([]byte, error) {
	h := os.Getenv(MasterKeyEnv)
	if h == "" {
		if path == "" {
			return nil, ErrNoMasterKey
		}
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, ErrNoMasterKey
			}
			return nil, err
		}
		h = string(data)
	}
	return DecodeMasterKey(h)
}

// DecodeMasterKey parses a hex master key and checks its length.
func DecodeMasterKey(h string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimSpace(h))
	if err != nil {
		return nil, fmt.Errorf("master key hex decode error: %w", err)
	}
	if len(b) != MasterKeySize {
		return nil, fmt.Errorf("master key length must be %d bytes (hex %d chars)", MasterKeySize, MasterKeySize*2)
	}
	return b, nil
}

// WriteMasterKey generates a new key and writes it hex encoded to path.
// It refuses to overwrite an existing file.
func WriteMasterKey(path string) ([]byte, error) {
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrKeyExists, path)
	}
	key, err := crypto.RandomBytes(MasterKeySize)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, []byte(hex.EncodeToString(key)+"\n"), 0600); err != nil {
		return nil, err
	}
	return key, nil
}
