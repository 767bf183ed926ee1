package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediconnect/internal/domain/records"
	"mediconnect/internal/platform/logger"
)

type fakeSeeder struct {
	hospitals []records.HospitalID
	seen      map[string]bool
	failOn    string
}

func (f *fakeSeeder) UpsertHospital(ctx context.Context, h records.HospitalMeta, position int) error {
	f.hospitals = append(f.hospitals, h.ID)
	return nil
}

func (f *fakeSeeder) Insert(ctx context.Context, rec records.HospitalRecord) (bool, error) {
	if rec.ID == f.failOn {
		return false, errors.New("boom")
	}
	if f.seen[rec.ID] {
		return false, nil
	}
	f.seen[rec.ID] = true
	return true, nil
}

func TestSeedDataset_Idempotent(t *testing.T) {
	f := &fakeSeeder{seen: map[string]bool{}}

	n, err := seedDataset(context.Background(), f, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, []records.HospitalID{records.HospitalSNUH, records.HospitalAMC}, f.hospitals)

	n, err = seedDataset(context.Background(), f, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSeedDataset_Error(t *testing.T) {
	f := &fakeSeeder{seen: map[string]bool{}, failOn: "SNUH-2025-07-12-002"}

	n, err := seedDataset(context.Background(), f, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SNUH-2025-07-12-002")
	assert.Equal(t, 2, n)
}

func TestRunRecordsList(t *testing.T) {
	now := time.Date(2025, 9, 5, 10, 0, 0, 0, time.FixedZone("KST", 9*60*60))

	var buf bytes.Buffer
	require.NoError(t, runRecordsList(&buf, "ALL", "최근 7일", now))

	var got []recordLine
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "AMC-2025-09-01-001", got[0].ID)
	assert.Equal(t, "2025.09.01 (월)", got[0].DisplayDate)

	assert.Error(t, runRecordsList(&buf, "ALL", "forever", now))
}

func TestRunRecordsGet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runRecordsGet(&buf, "SNUH-2025-08-31-001"))
	assert.Contains(t, buf.String(), `"hospital": "서울대병원"`)

	assert.Error(t, runRecordsGet(&buf, "missing"))
}
