package keystore

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// Encryption constants.
const (
	SaltSize = 32
	// Sealed format: [salt(32)][memory(4)][iterations(4)][parallelism(1)][nonce(24)][ciphertext...]
	headerSize = SaltSize + 4 + 4 + 1
)

// ErrWrongPassword is returned when a sealed phrase fails authentication.
var ErrWrongPassword = errors.New("wrong password or corrupted record")

// Params holds Argon2id parameters.
type Params struct {
	Memory      uint32 // in KiB
	Iterations  uint32
	Parallelism uint8
}

// DefaultParams returns recommended Argon2id parameters.
func DefaultParams() Params {
	return Params{
		Memory:      64 * 1024, // 64 MB
		Iterations:  3,
		Parallelism: 4,
	}
}

// Validate rejects parameters argon2 would refuse or that are uselessly weak.
func (p Params) Validate() error {
	if p.Memory < 8*uint32(p.Parallelism) {
		return fmt.Errorf("argon2 memory %d KiB below 8 KiB per lane", p.Memory)
	}
	if p.Iterations == 0 {
		return errors.New("argon2 iterations must be at least 1")
	}
	if p.Parallelism == 0 {
		return errors.New("argon2 parallelism must be at least 1")
	}
	return nil
}

func deriveKey(password, salt []byte, params Params) []byte {
	return argon2.IDKey(
		password,
		salt,
		params.Iterations,
		params.Memory,
		params.Parallelism,
		chacha20poly1305.KeySize,
	)
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// seal encrypts data with password using Argon2id + XChaCha20-Poly1305.
// The record name is bound as associated data so sealed blobs cannot be
// swapped between records.
func seal(data, password, name []byte, params Params) ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	key := deriveKey(password, salt, params)
	defer zero(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	out := make([]byte, 0, headerSize+len(nonce)+len(data)+aead.Overhead())
	out = append(out, salt...)
	out = binary.LittleEndian.AppendUint32(out, params.Memory)
	out = binary.LittleEndian.AppendUint32(out, params.Iterations)
	out = append(out, params.Parallelism)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, data, name), nil
}

// open decrypts data produced by seal.
func open(sealed, password, name []byte) ([]byte, error) {
	nonceSize := chacha20poly1305.NonceSizeX
	minSize := headerSize + nonceSize + chacha20poly1305.Overhead
	if len(sealed) < minSize {
		return nil, fmt.Errorf("sealed data too short: %d bytes, need at least %d", len(sealed), minSize)
	}

	params := Params{
		Memory:      binary.LittleEndian.Uint32(sealed[SaltSize:]),
		Iterations:  binary.LittleEndian.Uint32(sealed[SaltSize+4:]),
		Parallelism: sealed[SaltSize+8],
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("sealed header: %w", err)
	}

	salt := sealed[:SaltSize]
	nonce := sealed[headerSize : headerSize+nonceSize]
	ciphertext := sealed[headerSize+nonceSize:]

	key := deriveKey(password, salt, params)
	defer zero(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, name)
	if err != nil {
		return nil, ErrWrongPassword
	}
	return plaintext, nil
}
