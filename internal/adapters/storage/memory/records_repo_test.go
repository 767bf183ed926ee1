package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediconnect/internal/domain/records"
)

func TestRecordRepo_GetByID(t *testing.T) {
	repo := NewRecordRepo()
	ctx := context.Background()

	r, err := repo.GetByID(ctx, "AMC-2025-06-21-003")
	require.NoError(t, err)
	assert.Equal(t, "정형외과", r.Department)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, records.ErrNotFound)
}

func TestRecordRepo_ListByHospital(t *testing.T) {
	repo := NewRecordRepo()
	ctx := context.Background()

	all, err := repo.ListByHospital(ctx, records.AllHospitals)
	require.NoError(t, err)
	assert.Len(t, all, 6)

	amc, err := repo.ListByHospital(ctx, records.HospitalAMC)
	require.NoError(t, err)
	assert.Len(t, amc, 3)
	for _, r := range amc {
		assert.Equal(t, records.HospitalAMC, r.HospitalID)
	}

	none, err := repo.ListByHospital(ctx, "UNKNOWN")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestRecordRepo_ReturnsCopies(t *testing.T) {
	repo := NewRecordRepo()
	ctx := context.Background()

	items, err := repo.ListByHospital(ctx, records.AllHospitals)
	require.NoError(t, err)
	items[0].Medications[0] = "changed"

	again, err := repo.GetByID(ctx, items[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", again.Medications[0])
}

func TestRecordRepo_SkipsDuplicateIDs(t *testing.T) {
	d := records.MustParseDate("2025-01-01")
	repo := NewRecordRepoFrom([]records.HospitalRecord{
		{ID: "dup", HospitalID: "X", VisitDate: d, Notes: "first"},
		{ID: "dup", HospitalID: "X", VisitDate: d, Notes: "second"},
	}, nil)

	items, err := repo.ListByHospital(context.Background(), records.AllHospitals)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "first", items[0].Notes)

	hs, err := repo.Hospitals(context.Background())
	require.NoError(t, err)
	assert.Empty(t, hs)
}
