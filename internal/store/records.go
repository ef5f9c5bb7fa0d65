package store

import (
	"encoding/json"
	"errors"

	"github.com/hance08/fixpay/internal/apperror"
	"github.com/hance08/fixpay/internal/constants"
	"github.com/hance08/fixpay/internal/model"
	"github.com/rs/zerolog"
)

// Records maps the three logical records (auth, config, transactions) onto
// the key-value store as JSON values. A record that fails to decode is
// treated as absent.
type Records struct {
	repo Repository
	log  zerolog.Logger
}

func NewRecords(repo Repository, log zerolog.Logger) *Records {
	return &Records{repo: repo, log: log}
}

func (r *Records) LoadAuth() (*model.User, error) {
	var user model.User
	found, err := r.load(constants.KeyAuth, &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

func (r *Records) SaveAuth(user model.User) error {
	return r.save(constants.KeyAuth, user)
}

func (r *Records) DeleteAuth() error {
	if err := r.repo.Delete(constants.KeyAuth); err != nil {
		return apperror.ErrStorage(err)
	}
	return nil
}

// LoadConfig returns nil when no config has been saved yet.
func (r *Records) LoadConfig() (*model.AppConfig, error) {
	var rec configRecord
	found, err := r.load(constants.KeyConfig, &rec)
	if err != nil || !found {
		return nil, err
	}

	if rec.SchemaVersion < constants.ConfigSchemaVersion {
		r.log.Debug().
			Int("from", rec.SchemaVersion).
			Int("to", constants.ConfigSchemaVersion).
			Msg("upgrading stored config in memory")
	}

	cfg := rec.upgrade()
	return &cfg, nil
}

func (r *Records) SaveConfig(cfg model.AppConfig) error {
	return r.save(constants.KeyConfig, newConfigRecord(cfg))
}

// LoadTransactions returns the stored ledger, most recent first.
func (r *Records) LoadTransactions() ([]model.Transaction, error) {
	var txns []model.Transaction
	found, err := r.load(constants.KeyTransactions, &txns)
	if err != nil {
		return nil, err
	}
	if !found || txns == nil {
		return []model.Transaction{}, nil
	}
	return txns, nil
}

func (r *Records) SaveTransactions(txns []model.Transaction) error {
	if txns == nil {
		txns = []model.Transaction{}
	}
	return r.save(constants.KeyTransactions, txns)
}

// Reset removes every stored record.
func (r *Records) Reset() error {
	err := r.repo.ExecTx(func(tx Repository) error {
		return tx.Clear()
	})
	if err != nil {
		return apperror.ErrStorage(err)
	}
	return nil
}

// Stored lists which record keys are present, without decoding them.
func (r *Records) Stored() ([]string, error) {
	var keys []string
	for _, key := range []string{constants.KeyAuth, constants.KeyConfig, constants.KeyTransactions} {
		ok, err := r.repo.Has(key)
		if err != nil {
			return nil, apperror.ErrStorage(err)
		}
		if ok {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func (r *Records) load(key string, dst any) (bool, error) {
	raw, err := r.repo.Get(key)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return false, nil
		}
		return false, apperror.ErrStorage(err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("stored record is corrupt, treating as absent")
		return false, nil
	}
	return true, nil
}

func (r *Records) save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return apperror.ErrStorage(err)
	}
	if err := r.repo.Put(key, raw); err != nil {
		return apperror.ErrStorage(err)
	}
	r.log.Debug().Str("key", key).Int("bytes", len(raw)).Msg("record persisted")
	return nil
}
