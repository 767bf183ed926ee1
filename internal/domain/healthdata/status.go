package healthdata

// StatusMetric es una tarjeta del resumen diario.
type StatusMetric struct {
	Metric Metric
	Label  string
	Value  string
	Sub    string
}

type Status struct {
	Level    string // "Good"
	Headline string
	Advice   string
	Metrics  []StatusMetric
	Summary  string
}

// Today devuelve el estado del día. Por ahora es un snapshot fijo hasta
// conectar datos reales.
func Today() Status {
	return Status{
		Level:    "Good",
		Headline: "오늘은 건강 상태가 좋아요!",
		Advice:   "최신 데이터 기준으로 이상 징후가 없어요. 가벼운 스트레칭과 수분 섭취를 권장합니다.",
		Metrics: []StatusMetric{
			{Metric: MetricTemperature, Label: "체온", Value: "36.7°C", Sub: "정상"},
			{Metric: MetricHeartRate, Label: "심박수", Value: "72 bpm", Sub: "안정"},
			{Metric: MetricSleep, Label: "수면", Value: "7h 40m", Sub: "양호"},
			{Metric: MetricMedication, Label: "복약", Value: "92%", Sub: "금주 11/12회"},
		},
		Summary: "오늘은 전반적으로 양호한 상태예요. 체온 36.7도, 심박수 안정, 수면 7시간 40분, 복약 이행률 92%입니다. 불편감은 특별히 보고되지 않았습니다.",
	}
}
