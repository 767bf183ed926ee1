package records

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kst = time.FixedZone("KST", 9*60*60)

func at(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, kst)
}

func ids(items []HospitalRecord) []string {
	out := make([]string, 0, len(items))
	for _, r := range items {
		out = append(out, r.ID)
	}
	return out
}

func TestListRecords_Last7Days_AllHospitals(t *testing.T) {
	got, err := ListRecords(Query{HospitalID: AllHospitals, Preset: PresetLast7Days}, at(2025, 9, 5, 10))
	require.NoError(t, err)

	assert.Equal(t, []string{"AMC-2025-09-01-001", "SNUH-2025-08-31-001"}, ids(got))
}

func TestListRecords_AMC_AllTime(t *testing.T) {
	got, err := ListRecords(Query{HospitalID: HospitalAMC, Preset: PresetAllTime}, at(2025, 9, 5, 10))
	require.NoError(t, err)

	assert.Equal(t, []string{"AMC-2025-09-01-001", "AMC-2025-06-21-003", "AMC-2025-04-10-005"}, ids(got))
	for _, r := range got {
		assert.Equal(t, HospitalAMC, r.HospitalID)
	}
}

func TestListRecords_SNUH_ThisYear(t *testing.T) {
	got, err := ListRecords(Query{HospitalID: HospitalSNUH, Preset: PresetThisYear}, at(2025, 12, 31, 23))
	require.NoError(t, err)
	assert.Equal(t, []string{"SNUH-2025-08-31-001", "SNUH-2025-07-12-002", "SNUH-2025-05-05-004"}, ids(got))

	next, err := ListRecords(Query{HospitalID: HospitalSNUH, Preset: PresetThisYear}, at(2026, 1, 1, 0))
	require.NoError(t, err)
	assert.NotNil(t, next)
	assert.Empty(t, next)
}

func TestListRecords_EmptyHospitalIsWildcard(t *testing.T) {
	now := at(2025, 9, 5, 10)

	wild, err := ListRecords(Query{Preset: PresetAllTime}, now)
	require.NoError(t, err)
	all, err := ListRecords(Query{HospitalID: AllHospitals, Preset: PresetAllTime}, now)
	require.NoError(t, err)

	assert.Equal(t, ids(all), ids(wild))
	assert.Len(t, all, len(Dataset()))
}

func TestListRecords_HospitalMatchIsExact(t *testing.T) {
	got, err := ListRecords(Query{HospitalID: "amc", Preset: PresetAllTime}, at(2025, 9, 5, 10))
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = ListRecords(Query{HospitalID: "KUMC", Preset: PresetAllTime}, at(2025, 9, 5, 10))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListRecords_UnknownPreset(t *testing.T) {
	_, err := ListRecords(Query{Preset: "last_90_days"}, at(2025, 9, 5, 10))
	assert.ErrorIs(t, err, ErrUnknownPreset)

	_, err = ListRecords(Query{}, at(2025, 9, 5, 10))
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestListRecords_Deterministic(t *testing.T) {
	now := at(2025, 9, 20, 8)
	for _, p := range Presets() {
		a, err := ListRecords(Query{Preset: p}, now)
		require.NoError(t, err)
		b, err := ListRecords(Query{Preset: p}, now)
		require.NoError(t, err)
		assert.Equal(t, a, b, "preset %s", p)
	}
}

func TestListRecords_SortedDescending(t *testing.T) {
	got, err := ListRecords(Query{Preset: PresetAllTime}, at(2025, 9, 5, 10))
	require.NoError(t, err)

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].VisitDate.Compare(got[i].VisitDate), 0)
	}
}

func TestListRecords_PresetMonotonicity(t *testing.T) {
	nows := []time.Time{at(2025, 9, 1, 0), at(2025, 9, 8, 12), at(2025, 10, 1, 9), at(2026, 3, 1, 9)}
	hospitals := []HospitalID{AllHospitals, HospitalSNUH, HospitalAMC}

	for _, now := range nows {
		for _, h := range hospitals {
			week, err := ListRecords(Query{HospitalID: h, Preset: PresetLast7Days}, now)
			require.NoError(t, err)
			month, err := ListRecords(Query{HospitalID: h, Preset: PresetLast30Days}, now)
			require.NoError(t, err)
			all, err := ListRecords(Query{HospitalID: h, Preset: PresetAllTime}, now)
			require.NoError(t, err)

			assert.Subset(t, ids(month), ids(week), "now=%s hospital=%s", now, h)
			assert.Subset(t, ids(all), ids(month), "now=%s hospital=%s", now, h)
		}
	}
}

func TestInPreset_WindowBoundaries(t *testing.T) {
	visit := MustParseDate("2025-08-31")

	assert.True(t, InPreset(visit, PresetLast7Days, at(2025, 8, 31, 0)), "same day")
	assert.True(t, InPreset(visit, PresetLast7Days, at(2025, 9, 7, 23)), "exactly 7 days")
	assert.False(t, InPreset(visit, PresetLast7Days, at(2025, 9, 8, 0)), "8 days")

	assert.True(t, InPreset(visit, PresetLast30Days, at(2025, 9, 30, 12)), "exactly 30 days")
	assert.False(t, InPreset(visit, PresetLast30Days, at(2025, 10, 1, 0)), "31 days")
}

func TestInPreset_FutureVisitExcludedFromWindows(t *testing.T) {
	future := MustParseDate("2025-09-03")
	now := at(2025, 9, 1, 12)

	assert.False(t, InPreset(future, PresetLast7Days, now))
	assert.False(t, InPreset(future, PresetLast30Days, now))
	assert.True(t, InPreset(future, PresetThisYear, now))
	assert.True(t, InPreset(future, PresetAllTime, now))
}

func TestInPreset_UsesCalendarOfNow(t *testing.T) {
	visit := MustParseDate("2025-01-01")
	// 2024-12-31 15:00 UTC ya es 2025-01-01 en KST.
	utc := time.Date(2024, 12, 31, 15, 0, 0, 0, time.UTC)

	assert.False(t, InPreset(visit, PresetThisYear, utc))
	assert.True(t, InPreset(visit, PresetThisYear, utc.In(kst)))
}

func TestSortNewestFirst_TieBreakByID(t *testing.T) {
	d := MustParseDate("2025-05-05")
	items := []HospitalRecord{
		{ID: "b", VisitDate: d},
		{ID: "c", VisitDate: MustParseDate("2025-05-06")},
		{ID: "a", VisitDate: d},
	}
	SortNewestFirst(items)
	assert.Equal(t, []string{"c", "a", "b"}, ids(items))
}

func TestGetRecordByID(t *testing.T) {
	r, ok := GetRecordByID("SNUH-2025-07-12-002")
	require.True(t, ok)
	assert.Equal(t, "가정의학과", r.Department)
	assert.Equal(t, []string{"위염 의심"}, r.Diagnosis)

	_, ok = GetRecordByID("does-not-exist")
	assert.False(t, ok)
}

func TestGetRecordByID_RoundTrip(t *testing.T) {
	for _, want := range Dataset() {
		got, ok := GetRecordByID(want.ID)
		require.True(t, ok, want.ID)
		assert.Equal(t, want, got)
	}
}

func TestDataset_IsNotMutableThroughCopies(t *testing.T) {
	r, ok := GetRecordByID("AMC-2025-09-01-001")
	require.True(t, ok)

	r.Diagnosis[0] = "changed"
	*r.Vitals.HeartRate = 1
	r.Attachments[0].Name = "changed"

	again, _ := GetRecordByID("AMC-2025-09-01-001")
	assert.Equal(t, "고혈압", again.Diagnosis[0])
	assert.Equal(t, 88, *again.Vitals.HeartRate)
	assert.Equal(t, "심전도_결과.pdf", again.Attachments[0].Name)
}

func TestDataset_UniqueIDsAndKnownHospitals(t *testing.T) {
	seen := map[string]struct{}{}
	for _, r := range Dataset() {
		_, dup := seen[r.ID]
		assert.False(t, dup, "duplicate id %s", r.ID)
		seen[r.ID] = struct{}{}

		name, ok := HospitalName(r.HospitalID)
		assert.True(t, ok, r.ID)
		assert.Equal(t, name, r.HospitalName)
	}
	assert.Len(t, seen, 6)
}

func TestFormatDisplayDate(t *testing.T) {
	cases := map[string]string{
		"2025-09-01": "2025.09.01 (월)",
		"2025-08-31": "2025.08.31 (일)",
		"2025-04-10": "2025.04.10 (목)",
		"2024-02-29": "2024.02.29 (목)",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatDisplayDate(MustParseDate(in)), in)
	}
}

func TestParsePreset(t *testing.T) {
	cases := map[string]DatePreset{
		"last_7_days":  PresetLast7Days,
		"LAST_30_DAYS": PresetLast30Days,
		"최근 7일":        PresetLast7Days,
		"최근 30일":       PresetLast30Days,
		"올해":           PresetThisYear,
		" 전체 ":         PresetAllTime,
	}
	for in, want := range cases {
		got, err := ParsePreset(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePreset("yesterday")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}
