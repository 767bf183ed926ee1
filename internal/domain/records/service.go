package records

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type Service struct {
	repo Repository
	now  func() time.Time
	loc  *time.Location
}

// NewService crea el servicio de consultas. loc es el calendario con el que
// se evalúa "hoy" en los presets; nil usa time.Local.
func NewService(repo Repository, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		repo: repo,
		now:  time.Now,
		loc:  loc,
	}
}

// SetClock reemplaza el reloj (tests y comandos con fecha fija).
func (s *Service) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Today es la fecha de calendario actual en la zona del servicio.
func (s *Service) Today() Date {
	return DateOf(s.now().In(s.loc))
}

// GetRecordByID devuelve ok=false si no existe; err solo ante fallas de storage.
func (s *Service) GetRecordByID(ctx context.Context, id string) (HospitalRecord, bool, error) {
	if id == "" {
		return HospitalRecord{}, false, nil
	}

	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return HospitalRecord{}, false, nil
		}
		return HospitalRecord{}, false, err
	}
	return r, true, nil
}

// ListRecords filtra por hospital y preset, más reciente primero.
// Sin resultados devuelve un slice vacío.
func (s *Service) ListRecords(ctx context.Context, q Query) ([]HospitalRecord, error) {
	if !q.Preset.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, q.Preset)
	}

	items, err := s.repo.ListByHospital(ctx, q.hospital())
	if err != nil {
		return nil, err
	}

	out := Filter(items, q, s.now().In(s.loc))
	SortNewestFirst(out)
	return out, nil
}

func (s *Service) Hospitals(ctx context.Context) ([]HospitalMeta, error) {
	return s.repo.Hospitals(ctx)
}
