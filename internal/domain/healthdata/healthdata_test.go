package healthdata

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_SeriesShapeAndBounds(t *testing.T) {
	g := NewGenerator(rand.NewPCG(1, 2))

	week := g.Series(RangeWeek)
	require.Len(t, week, 7)
	assert.Equal(t, "D1", week[0].Label)
	assert.Equal(t, "D7", week[6].Label)

	month := g.Series(RangeMonth)
	require.Len(t, month, 30)
	assert.Equal(t, "1", month[0].Label)
	assert.Equal(t, "30", month[29].Label)

	for _, p := range append(week, month...) {
		assert.GreaterOrEqual(t, p.Temperature, 36.4)
		assert.LessOrEqual(t, p.Temperature, 37.3)
		assert.GreaterOrEqual(t, p.HeartRate, 65)
		assert.LessOrEqual(t, p.HeartRate, 85)
		assert.GreaterOrEqual(t, p.Sleep, 6.0)
		assert.LessOrEqual(t, p.Sleep, 8.5)
		assert.GreaterOrEqual(t, p.Medication, 85)
		assert.LessOrEqual(t, p.Medication, 100)
	}
}

func TestGenerator_DeterministicWithSameSeed(t *testing.T) {
	a := NewGenerator(rand.NewPCG(7, 7)).Series(RangeMonth)
	b := NewGenerator(rand.NewPCG(7, 7)).Series(RangeMonth)
	assert.Equal(t, a, b)
}

func TestSummarize(t *testing.T) {
	points := []Point{
		{Temperature: 36.5, HeartRate: 70, Sleep: 7.0, Medication: 90},
		{Temperature: 37.1, HeartRate: 80, Sleep: 6.5, Medication: 100},
		{Temperature: 36.6, HeartRate: 75, Sleep: 8.2, Medication: 95},
	}

	assert.Equal(t, Summary{Avg: 36.7, Min: 36.5, Max: 37.1}, Summarize(points, MetricTemperature))
	assert.Equal(t, Summary{Avg: 75, Min: 70, Max: 80}, Summarize(points, MetricHeartRate))
	assert.Equal(t, Summary{Avg: 7.2, Min: 6.5, Max: 8.2}, Summarize(points, MetricSleep))
	assert.Equal(t, Summary{Avg: 95, Min: 90, Max: 100}, Summarize(points, MetricMedication))

	assert.Equal(t, Summary{}, Summarize(nil, MetricSleep))
}

func TestSummaryText(t *testing.T) {
	got := SummaryText(RangeWeek, MetricTemperature, Summary{Avg: 36.8, Min: 36.4, Max: 37.2})
	assert.Equal(t, "최근 7일 체온 평균은 36.8℃, 최소 36.4℃, 최대 37.2℃입니다.", got)

	got = SummaryText(RangeMonth, MetricHeartRate, Summary{Avg: 74.5, Min: 65, Max: 85})
	assert.Equal(t, "최근 30일 심박수 평균은 74.5bpm, 최소 65bpm, 최대 85bpm입니다.", got)
}

func TestScale_Ratio(t *testing.T) {
	s := ScaleFor(MetricHeartRate)
	assert.Equal(t, 0.0, s.Ratio(40))
	assert.Equal(t, 0.5, s.Ratio(75))
	assert.Equal(t, 1.0, s.Ratio(120))
	assert.Equal(t, 0.0, Scale{Min: 1, Max: 1}.Ratio(5))
}

func TestParse(t *testing.T) {
	m, err := ParseMetric(" HR ")
	require.NoError(t, err)
	assert.Equal(t, MetricHeartRate, m)

	_, err = ParseMetric("weight")
	assert.ErrorIs(t, err, ErrInvalidInput)

	r, err := ParseRange("month")
	require.NoError(t, err)
	assert.Equal(t, RangeMonth, r)

	_, err = ParseRange("year")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Chart(t *testing.T) {
	svc := NewService(NewGenerator(rand.NewPCG(3, 4)))
	c := svc.Chart(RangeWeek, MetricSleep)

	require.Len(t, c.Points, 7)
	assert.Equal(t, Summarize(c.Points, MetricSleep), c.Summary)
	assert.Equal(t, ScaleFor(MetricSleep), c.Scale)
	assert.Contains(t, c.Text, "최근 7일 수면 평균은")
}

func TestToday(t *testing.T) {
	st := Today()
	assert.Equal(t, "Good", st.Level)
	require.Len(t, st.Metrics, 4)
	assert.Equal(t, "92%", st.Metrics[3].Value)
	assert.Contains(t, st.Summary, "복약 이행률 92%")
}
