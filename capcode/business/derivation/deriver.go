package derivation

import (
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"

	"encore.app/capcode/model"
)

var ErrUnsupportedVariant = errors.New("unsupported argon2 variant")

// DerivationError reports that the transformation produced no output.
type DerivationError struct {
	Cause error
}

func (e *DerivationError) Error() string {
	return e.Cause.Error()
}

func (e *DerivationError) Unwrap() error {
	return e.Cause
}

// Deriver irreversibly transforms identifiers before they are stored.
type Deriver interface {
	Derive(id model.Identifier, cfg Config) (model.TransformedIdentifier, error)
}

type deriver struct{}

func NewDeriver() Deriver {
	return &deriver{}
}

// Derive runs Argon2id over id and returns the PHC-encoded result. The output depends
// only on id and cfg.
func (d *deriver) Derive(id model.Identifier, cfg Config) (encoded model.TransformedIdentifier, err error) {
	if len(cfg.Salt) == 0 {
		cfg.Salt = DefaultSalt
	}
	if cfg.Variant != VariantID {
		return "", &DerivationError{Cause: fmt.Errorf("%w: %q", ErrUnsupportedVariant, cfg.Variant)}
	}
	if err := cfg.Validate(); err != nil {
		return "", &DerivationError{Cause: fmt.Errorf("invalid parameters: %w", err)}
	}

	// argon2 panics on parameter combinations it rejects and on allocation failure.
	defer func() {
		if r := recover(); r != nil {
			encoded = ""
			err = &DerivationError{Cause: fmt.Errorf("argon2: %v", r)}
		}
	}()

	key := argon2.IDKey([]byte(id), cfg.Salt, cfg.TimeCost, cfg.MemoryCost, cfg.Parallelism, cfg.KeyLength)

	return model.TransformedIdentifier(encode(cfg, key)), nil
}

// encode renders the PHC string format used by the reference argon2 implementations.
func encode(cfg Config, key []byte) string {
	return fmt.Sprintf("$argon2%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		cfg.Variant,
		argon2.Version,
		cfg.MemoryCost,
		cfg.TimeCost,
		cfg.Parallelism,
		base64.RawStdEncoding.EncodeToString(cfg.Salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
}
