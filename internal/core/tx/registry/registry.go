// Package registry owns the canonical record of every asset, keyed by name.
package registry

import (
	"errors"

	"github.com/LeJamon/goMemeLedger/internal/core/amount"
	"github.com/LeJamon/goMemeLedger/internal/core/ledger/keylet"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/sle"
)

var (
	ErrDuplicateAsset = errors.New("asset already registered")
	ErrNotFound       = errors.New("asset not found")

	// ErrOverflow is returned when the running volume would exceed uint64.
	ErrOverflow = amount.ErrOverflow
)

// Registry reads and writes asset records in a view.
type Registry struct {
	view      sle.LedgerView
	domainTag string
}

// New returns a registry for the assets of domainTag.
func New(view sle.LedgerView, domainTag string) *Registry {
	return &Registry{view: view, domainTag: domainTag}
}

// Key returns the keylet of the record for name.
func (r *Registry) Key(name string) keylet.Keylet {
	return keylet.Asset(r.domainTag, name)
}

// Create stores a new record. At most one record exists per name.
func (r *Registry) Create(rec *sle.AssetRecord) error {
	k := r.Key(rec.Name)
	exists, err := r.view.Exists(k)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateAsset
	}

	data, err := sle.SerializeAssetRecord(rec)
	if err != nil {
		return err
	}
	return r.view.Insert(k, data)
}

// Get returns the record for name.
func (r *Registry) Get(name string) (*sle.AssetRecord, error) {
	rec, err := sle.ReadAssetRecord(r.view, r.Key(name))
	if errors.Is(err, sle.ErrEntryNotFound) {
		return nil, ErrNotFound
	}
	return rec, err
}

// Put writes back an existing record.
func (r *Registry) Put(rec *sle.AssetRecord) error {
	data, err := sle.SerializeAssetRecord(rec)
	if err != nil {
		return err
	}
	if err := r.view.Update(r.Key(rec.Name), data); err != nil {
		exists, existsErr := r.view.Exists(r.Key(rec.Name))
		if existsErr == nil && !exists {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ApplyVolumeDelta adds delta to the running volume of rec.
// On overflow rec is left unchanged.
func ApplyVolumeDelta(rec *sle.AssetRecord, delta uint64) error {
	total, err := amount.Add(rec.TotalVolume, delta)
	if err != nil {
		return ErrOverflow
	}
	rec.TotalVolume = total
	return nil
}
