package identifier

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"encore.app/capcode/model"
)

const (
	// Min and Max bound the capcode space, both inclusive.
	Min = 1_000_000
	Max = 9_999_999

	Width = 7
)

var span = big.NewInt(Max - Min + 1)

// Generator produces fresh capcodes.
type Generator interface {
	Generate() (model.Identifier, error)
}

type generator struct {
	entropy io.Reader
}

// NewGenerator creates a generator reading from crypto/rand.
func NewGenerator() Generator {
	return &generator{entropy: rand.Reader}
}

// NewGeneratorWithReader creates a generator reading from the given entropy source.
func NewGeneratorWithReader(entropy io.Reader) Generator {
	return &generator{entropy: entropy}
}

// Generate draws a value uniformly from [Min, Max]. A failing entropy source is not
// retried.
func (g *generator) Generate() (model.Identifier, error) {
	n, err := rand.Int(g.entropy, span)
	if err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return model.Identifier(fmt.Sprintf("%0*d", Width, n.Int64()+Min)), nil
}
