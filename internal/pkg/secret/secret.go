// Package secret encrypts values stored at rest with Fernet tokens.
package secret

import (
	"errors"
	"fmt"

	"github.com/fernet/fernet-go"
)

var ErrDecrypt = errors.New("failed to decrypt value")

type Box struct {
	keys []*fernet.Key
}

// New accepts one or more url-safe base64 keys. The first key encrypts, all keys decrypt,
// so a rotated key can still read old rows.
func New(keys ...string) (*Box, error) {
	if len(keys) == 0 {
		return nil, errors.New("no fernet key given")
	}
	b := &Box{}
	for _, k := range keys {
		key, err := fernet.DecodeKey(k)
		if err != nil {
			return nil, fmt.Errorf("failed to decode fernet key: %w", err)
		}
		b.keys = append(b.keys, key)
	}
	return b, nil
}

// GenerateKey returns a fresh encoded key.
func GenerateKey() (string, error) {
	var k fernet.Key
	if err := k.Generate(); err != nil {
		return "", fmt.Errorf("failed to generate fernet key: %w", err)
	}
	return k.Encode(), nil
}

func (b *Box) Encrypt(plain string) (string, error) {
	tok, err := fernet.EncryptAndSign([]byte(plain), b.keys[0])
	if err != nil {
		return "", fmt.Errorf("failed to encrypt value: %w", err)
	}
	return string(tok), nil
}

func (b *Box) Decrypt(token string) (string, error) {
	plain := fernet.VerifyAndDecrypt([]byte(token), 0, b.keys)
	if plain == nil {
		return "", ErrDecrypt
	}
	return string(plain), nil
}
