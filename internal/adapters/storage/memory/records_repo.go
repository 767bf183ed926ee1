package memory

import (
	"context"
	"sync"

	"mediconnect/internal/domain/records"
)

// recordRepo sirve el dataset estático de visitas. Es de solo lectura, así
// que el RWMutex solo protege el índice durante la construcción.
type recordRepo struct {
	mu        sync.RWMutex
	byID      map[string]records.HospitalRecord
	ordered   []records.HospitalRecord
	hospitals []records.HospitalMeta
}

func NewRecordRepo() records.Repository {
	return NewRecordRepoFrom(records.Dataset(), records.Hospitals())
}

// NewRecordRepoFrom permite sembrar otro dataset (tests, fixtures).
func NewRecordRepoFrom(items []records.HospitalRecord, hospitals []records.HospitalMeta) records.Repository {
	r := &recordRepo{
		byID: make(map[string]records.HospitalRecord, len(items)),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range items {
		if _, dup := r.byID[it.ID]; dup {
			continue
		}
		c := it.Clone()
		r.byID[it.ID] = c
		r.ordered = append(r.ordered, c)
	}
	r.hospitals = append(r.hospitals, hospitals...)
	return r
}

func (r *recordRepo) GetByID(ctx context.Context, id string) (records.HospitalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return records.HospitalRecord{}, records.ErrNotFound
	}
	return rec.Clone(), nil
}

func (r *recordRepo) ListByHospital(ctx context.Context, hospitalID records.HospitalID) ([]records.HospitalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]records.HospitalRecord, 0, len(r.ordered))
	for _, rec := range r.ordered {
		if hospitalID != records.AllHospitals && rec.HospitalID != hospitalID {
			continue
		}
		out = append(out, rec.Clone())
	}
	return out, nil
}

func (r *recordRepo) Hospitals(ctx context.Context) ([]records.HospitalMeta, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]records.HospitalMeta, len(r.hospitals))
	copy(out, r.hospitals)
	return out, nil
}
