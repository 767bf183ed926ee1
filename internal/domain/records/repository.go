package records

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("record not found")

// Repository es el almacenamiento de visitas. Las implementaciones devuelven
// ErrNotFound (o un error que lo envuelva) cuando el ID no existe.
type Repository interface {
	GetByID(ctx context.Context, id string) (HospitalRecord, error)
	// ListByHospital con AllHospitals devuelve todo.
	ListByHospital(ctx context.Context, hospitalID HospitalID) ([]HospitalRecord, error)
	Hospitals(ctx context.Context) ([]HospitalMeta, error)
}
