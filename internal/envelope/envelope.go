package envelope

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"
)

const (
	// AssociatedData binds every envelope to this protocol version.
	AssociatedData = "stable-wallet-v1"

	MinMasterKeyLength = 16
	DefaultWorkFactor  = 16384

	saltLength = 16
	ivLength   = 12
	tagLength  = 16
	keyLength  = 32
	scryptR    = 8
	scryptP    = 1
)

var (
	ErrConfiguration = errors.New("envelope crypto is not configured")
	ErrIntegrity     = errors.New("envelope integrity check failed")
	ErrEmptySecret   = errors.New("plaintext is required")
)

// Envelope is a self-contained encrypted secret. All fields are base64 encoded.
type Envelope struct {
	CipherText string `json:"cipherText"`
	Salt       string `json:"salt"`
	IV         string `json:"iv"`
	AuthTag    string `json:"tag"`
}

// Sealer encrypts secrets under keys derived per call from a master secret.
type Sealer struct {
	masterKey  []byte
	workFactor int
	aad        []byte
	random     io.Reader
}

type Option func(*Sealer)

// WithWorkFactor overrides the scrypt cost parameter N. Ready rejects values
// that are not a power of two above 1.
func WithWorkFactor(n int) Option {
	return func(s *Sealer) {
		s.workFactor = n
	}
}

// ValidWorkFactor reports whether n is usable as scrypt N.
func ValidWorkFactor(n int) bool {
	return n > 1 && n&(n-1) == 0
}

// WithRandom replaces the entropy source used for salts and nonces.
func WithRandom(r io.Reader) Option {
	return func(s *Sealer) {
		s.random = r
	}
}

// NewSealer never fails; a missing or short master key surfaces as ErrConfiguration
// on every Seal/Open so callers can report the service as unavailable.
func NewSealer(masterKey string, opts ...Option) *Sealer {
	s := &Sealer{
		masterKey:  []byte(masterKey),
		workFactor: DefaultWorkFactor,
		aad:        []byte(AssociatedData),
		random:     rand.Reader,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ready reports whether the master key and work factor are usable.
func (s *Sealer) Ready() error {
	if len(s.masterKey) < MinMasterKeyLength {
		return fmt.Errorf("%w: master key missing or shorter than %d bytes", ErrConfiguration, MinMasterKeyLength)
	}
	if !ValidWorkFactor(s.workFactor) {
		return fmt.Errorf("%w: scrypt N %d is not a power of two above 1", ErrConfiguration, s.workFactor)
	}
	return nil
}

// Seal encrypts plaintext with a fresh salt and nonce.
func (s *Sealer) Seal(plaintext string) (Envelope, error) {
	if err := s.Ready(); err != nil {
		return Envelope{}, err
	}
	if plaintext == "" {
		return Envelope{}, ErrEmptySecret
	}

	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(s.random, salt); err != nil {
		return Envelope{}, fmt.Errorf("generate salt: %w", err)
	}
	iv := make([]byte, ivLength)
	if _, err := io.ReadFull(s.random, iv); err != nil {
		return Envelope{}, fmt.Errorf("generate iv: %w", err)
	}

	aead, err := s.aead(salt)
	if err != nil {
		return Envelope{}, err
	}

	sealed := aead.Seal(nil, iv, []byte(plaintext), s.aad)
	cipherText, tag := sealed[:len(sealed)-tagLength], sealed[len(sealed)-tagLength:]

	return Envelope{
		CipherText: base64.StdEncoding.EncodeToString(cipherText),
		Salt:       base64.StdEncoding.EncodeToString(salt),
		IV:         base64.StdEncoding.EncodeToString(iv),
		AuthTag:    base64.StdEncoding.EncodeToString(tag),
	}, nil
}

// Open decrypts an envelope. Any tampering, truncation or wrong master key
// yields ErrIntegrity and no plaintext.
func (s *Sealer) Open(env Envelope) (string, error) {
	if err := s.Ready(); err != nil {
		return "", err
	}

	salt, err := decodeField("salt", env.Salt, saltLength)
	if err != nil {
		return "", err
	}
	iv, err := decodeField("iv", env.IV, ivLength)
	if err != nil {
		return "", err
	}
	tag, err := decodeField("tag", env.AuthTag, tagLength)
	if err != nil {
		return "", err
	}
	cipherText, err := base64.StdEncoding.DecodeString(env.CipherText)
	if err != nil || len(cipherText) == 0 {
		return "", fmt.Errorf("%w: malformed cipher text", ErrIntegrity)
	}

	aead, err := s.aead(salt)
	if err != nil {
		return "", err
	}

	plain, err := aead.Open(nil, iv, append(cipherText, tag...), s.aad)
	if err != nil {
		return "", ErrIntegrity
	}

	return string(plain), nil
}

// Reseal decrypts env with s and encrypts the plaintext again with next.
func (s *Sealer) Reseal(env Envelope, next *Sealer) (Envelope, error) {
	plain, err := s.Open(env)
	if err != nil {
		return Envelope{}, fmt.Errorf("open with current key: %w", err)
	}

	resealed, err := next.Seal(plain)
	if err != nil {
		return Envelope{}, fmt.Errorf("seal with next key: %w", err)
	}

	return resealed, nil
}

func (s *Sealer) aead(salt []byte) (cipher.AEAD, error) {
	key, err := scrypt.Key(s.masterKey, salt, s.workFactor, scryptR, scryptP, keyLength)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return aead, nil
}

func decodeField(name, value string, size int) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil || len(raw) != size {
		return nil, fmt.Errorf("%w: malformed %s", ErrIntegrity, name)
	}
	return raw, nil
}
