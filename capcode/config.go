package capcode

import (
	"encore.dev/beta/errs"
	"encore.dev/config"

	"encore.app/capcode/business/derivation"
)

type Config struct {
	TableName   config.String
	SaltMode    config.String
	HashSalt    config.String
	TimeCost    config.Int
	MemoryCost  config.Int
	Parallelism config.Int
}

var cfg = config.Load[*Config]()

// Settings is the validated configuration handed to the pipeline at startup.
type Settings struct {
	TableName   string `validate:"required,max=63"`
	SaltMode    string `validate:"oneof=shared per_record"`
	HashSalt    string
	TimeCost    int `validate:"min=1,max=4294967295"`
	MemoryCost  int `validate:"min=8,max=4294967295"`
	Parallelism int `validate:"min=1,max=255"`
}

func settingsFromConfig(c *Config) Settings {
	return Settings{
		TableName:   c.TableName(),
		SaltMode:    c.SaltMode(),
		HashSalt:    c.HashSalt(),
		TimeCost:    c.TimeCost(),
		MemoryCost:  c.MemoryCost(),
		Parallelism: c.Parallelism(),
	}
}

// Validate implements validation for Settings using go-playground/validator
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	if err := s.Derivation().Validate(); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}

// Derivation builds the transformation parameters. An empty HashSalt selects the
// default salt.
func (s Settings) Derivation() derivation.Config {
	c := derivation.DefaultConfig().WithSalt([]byte(s.HashSalt))
	c.SaltMode = derivation.SaltMode(s.SaltMode)
	c.TimeCost = uint32(s.TimeCost)
	c.MemoryCost = uint32(s.MemoryCost)
	c.Parallelism = uint8(s.Parallelism)
	return c
}
