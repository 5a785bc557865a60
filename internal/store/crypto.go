package store

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"
)

// Key derivation parameters. Changing any of these invalidates every
// container already on disk.
const (
	kdfIterations = 100000
	saltLen       = 16
	keyLen        = 32
)

// ErrBadPassword is returned when a container cannot be opened and
// authenticated with the supplied password.
var ErrBadPassword = errors.New("wrong password or corrupted notes file")

// container is the on-disk form of an encrypted note set.
type container struct {
	Salt string `json:"salt"`
	Data string `json:"data"`
}

// deriveKey stretches a password into an AES key with PBKDF2-HMAC-SHA256.
func deriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, kdfIterations, keyLen, sha256.New)
}

// Encrypt seals plaintext into the {salt, data} container format using
// AES-256-GCM under a key derived from password. A fresh salt and nonce
// are drawn per call, so identical note sets produce distinct containers.
func Encrypt(plaintext []byte, password string) ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, errors.Wrap(err, "generate salt")
	}

	gcm, err := newGCM(password, salt)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, errors.Wrap(err, "generate nonce")
	}
	sealed := gcm.Seal(nonce, nonce, plaintext, nil)

	out, err := json.Marshal(container{
		Salt: base64.StdEncoding.EncodeToString(salt),
		Data: base64.StdEncoding.EncodeToString(sealed),
	})
	return out, errors.Wrap(err, "marshal container")
}

// Decrypt opens a {salt, data} container produced by Encrypt. Wrong
// passwords and tampered payloads both come back as ErrBadPassword; GCM
// cannot tell the two apart.
func Decrypt(data []byte, password string) ([]byte, error) {
	var c container
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, "parse container")
	}
	salt, err := base64.StdEncoding.DecodeString(c.Salt)
	if err != nil {
		return nil, errors.Wrap(err, "decode salt")
	}
	sealed, err := base64.StdEncoding.DecodeString(c.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode payload")
	}

	gcm, err := newGCM(password, salt)
	if err != nil {
		return nil, err
	}
	if len(sealed) < gcm.NonceSize() {
		return nil, ErrBadPassword
	}
	plaintext, err := gcm.Open(nil, sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():], nil)
	if err != nil {
		return nil, ErrBadPassword
	}
	return plaintext, nil
}

// IsEncrypted reports whether raw looks like an encrypted container
// rather than a plain snapshot array.
func IsEncrypted(raw []byte) bool {
	var c container
	if err := json.Unmarshal(raw, &c); err != nil {
		return false
	}
	return c.Salt != "" && c.Data != ""
}

func newGCM(password string, salt []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(deriveKey(password, salt))
	if err != nil {
		return nil, errors.Wrap(err, "init cipher")
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(err, "init gcm")
	}
	return gcm, nil
}
