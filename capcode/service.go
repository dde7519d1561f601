package capcode

import (
	"github.com/go-playground/validator/v10"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/capcode/business/derivation"
	"encore.app/capcode/business/identifier"
	"encore.app/capcode/business/issuance"
	"encore.app/capcode/repository"
	"encore.app/capcode/store"
)

var capcodeDB = sqldb.NewDatabase("capcode", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

var validate = validator.New()

//encore:service
type Service struct {
	business issuance.Business
}

func initService() (*Service, error) {
	settings := settingsFromConfig(cfg)
	if err := settings.Validate(); err != nil {
		rlog.Error("invalid capcode configuration", "error", err)
		return nil, err
	}

	derivationConfig := settings.Derivation()
	if derivationConfig.UsesDefaultSalt() {
		rlog.Warn("no hash salt configured, falling back to the default salt", "salt_mode", derivationConfig.SaltMode)
	}

	pgxdb := sqldb.Driver(capcodeDB)

	rlog.Info("Initializing Repository", "table", settings.TableName)
	repo := repository.NewRepository(pgxdb, settings.TableName)

	rlog.Info("Initializing Business", "salt_mode", derivationConfig.SaltMode, "time_cost", derivationConfig.TimeCost, "memory_cost", derivationConfig.MemoryCost)
	business := issuance.NewIssuanceBusiness(
		identifier.NewGenerator(),
		derivation.NewDeriver(),
		store.NewStore(repo),
		derivationConfig,
	)

	return &Service{
		business: business,
	}, nil
}
