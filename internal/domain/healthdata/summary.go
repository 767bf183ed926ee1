package healthdata

import (
	"fmt"
	"strconv"
)

// Summarize calcula promedio (1 decimal), mínimo y máximo del indicador.
func Summarize(points []Point, m Metric) Summary {
	if len(points) == 0 {
		return Summary{}
	}

	first := points[0].Value(m)
	s := Summary{Min: first, Max: first}
	var sum float64
	for _, p := range points {
		v := p.Value(m)
		sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Avg = round1(sum / float64(len(points)))
	return s
}

// SummaryText arma la frase que la app lee en voz alta, ej.
// "최근 7일 체온 평균은 36.8℃, 최소 36.4℃, 최대 37.2℃입니다."
func SummaryText(r Range, m Metric, s Summary) string {
	u := m.Unit()
	return fmt.Sprintf("%s %s 평균은 %s%s, 최소 %s%s, 최대 %s%s입니다.",
		r.Label(), m.Title(),
		formatNumber(s.Avg), u,
		formatNumber(s.Min), u,
		formatNumber(s.Max), u,
	)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
