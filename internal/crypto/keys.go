package crypto

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	infoCookieHash  = "session-cookie-hash"
	infoCookieBlock = "session-cookie-block"
)

// CookieKeys are the securecookie keys used to sign and encrypt the session cookie.
type CookieKeys struct {
	Hash  []byte
	Block []byte
}

// DeriveCookieKeys derives a 64-byte HMAC key and a 32-byte AES key from the
// master key using HKDF-SHA256 with distinct info strings.
func DeriveCookieKeys(master []byte) (CookieKeys, error) {
	if len(master) == 0 {
		return CookieKeys{}, ErrInvalidKeyLength
	}
	hash, err := derive(master, infoCookieHash, 64)
	if err != nil {
		return CookieKeys{}, err
	}
	block, err := derive(master, infoCookieBlock, 32)
	if err != nil {
		return CookieKeys{}, err
	}
	return CookieKeys{Hash: hash, Block: block}, nil
}

func derive(secret []byte, info string, n int) ([]byte, error) {
	h := hkdf.New(sha256.New, secret, nil, []byte(info))
	out := make([]byte, n)
	if _, err := io.ReadFull(h, out); err != nil {
		return nil, err
	}
	return out, nil
}
