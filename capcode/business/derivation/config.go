package derivation

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
)

type Variant string

const (
	VariantID Variant = "id"
)

// SaltMode selects whether all records share one salt or each record gets its own.
type SaltMode string

const (
	// SharedSaltMode reuses the configured salt for every record. Equal capcodes derive
	// equal values within a deployment.
	SharedSaltMode SaltMode = "shared"
	// PerRecordSaltMode draws a fresh salt for every run and embeds it in the output.
	PerRecordSaltMode SaltMode = "per_record"
)

const (
	DefaultTimeCost    uint32 = 3
	DefaultMemoryCost  uint32 = 4096
	DefaultParallelism uint8  = 1
	DefaultKeyLength   uint32 = 32

	perRecordSaltLength = 16
)

// DefaultSalt is used when no salt is configured. It is public knowledge, so every
// deployment running without a salt shares precomputation tables.
var DefaultSalt = []byte("defaultsalt")

var validate = validator.New()

type Config struct {
	Salt        []byte   `validate:"min=8"`
	TimeCost    uint32   `validate:"min=1"`
	MemoryCost  uint32   `validate:"min=8"`
	Parallelism uint8    `validate:"min=1"`
	Variant     Variant  `validate:"required"`
	KeyLength   uint32   `validate:"min=4"`
	SaltMode    SaltMode `validate:"omitempty,oneof=shared per_record"`
}

// DefaultConfig returns the baseline parameters with the default salt.
func DefaultConfig() Config {
	return Config{
		Salt:        DefaultSalt,
		TimeCost:    DefaultTimeCost,
		MemoryCost:  DefaultMemoryCost,
		Parallelism: DefaultParallelism,
		Variant:     VariantID,
		KeyLength:   DefaultKeyLength,
		SaltMode:    SharedSaltMode,
	}
}

// WithSalt returns a copy using salt, or DefaultSalt when salt is empty.
func (c Config) WithSalt(salt []byte) Config {
	if len(salt) == 0 {
		c.Salt = DefaultSalt
		return c
	}
	c.Salt = append([]byte(nil), salt...)
	return c
}

// UsesDefaultSalt reports whether derivation runs on the degraded default-salt path.
func (c Config) UsesDefaultSalt() bool {
	return c.SaltMode != PerRecordSaltMode && (len(c.Salt) == 0 || bytes.Equal(c.Salt, DefaultSalt))
}

// Validate checks the parameter combination accepted by the argon2 primitive.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.MemoryCost < 8*uint32(c.Parallelism) {
		return fmt.Errorf("memory cost %d below minimum %d for parallelism %d", c.MemoryCost, 8*uint32(c.Parallelism), c.Parallelism)
	}
	return nil
}

// ForRun resolves the config for a single pipeline run. In per-record mode the salt is
// replaced with fresh bytes from entropy.
func (c Config) ForRun(entropy io.Reader) (Config, error) {
	if c.SaltMode != PerRecordSaltMode {
		if len(c.Salt) == 0 {
			c.Salt = DefaultSalt
		}
		return c, nil
	}

	if entropy == nil {
		entropy = rand.Reader
	}
	salt := make([]byte, perRecordSaltLength)
	if _, err := io.ReadFull(entropy, salt); err != nil {
		return Config{}, fmt.Errorf("read salt: %w", err)
	}
	c.Salt = salt
	return c, nil
}
