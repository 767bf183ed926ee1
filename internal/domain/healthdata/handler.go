package healthdata

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/health-data", chartHandler(svc))
	r.Get("/status/today", todayHandler(svc))
}

type pointResponse struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Ratio float64 `json:"ratio"` // altura relativa de la barra, 0..1
}

type summaryResponse struct {
	Avg float64 `json:"avg"`
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type chartResponse struct {
	Range       Range           `json:"range" enums:"week,month"`
	Metric      Metric          `json:"metric" enums:"temp,hr,sleep,med"`
	Title       string          `json:"title"`
	Unit        string          `json:"unit"`
	Points      []pointResponse `json:"points"`
	Summary     summaryResponse `json:"summary"`
	ScaleMin    float64         `json:"scale_min"`
	ScaleMax    float64         `json:"scale_max"`
	SummaryText string          `json:"summary_text"`
}

type statusMetricResponse struct {
	Metric Metric `json:"metric"`
	Label  string `json:"label"`
	Value  string `json:"value"`
	Sub    string `json:"sub"`
}

type statusResponse struct {
	Level       string                 `json:"level"`
	Headline    string                 `json:"headline"`
	Advice      string                 `json:"advice"`
	Metrics     []statusMetricResponse `json:"metrics"`
	SummaryText string                 `json:"summary_text"`
}

// chartHandler godoc
// @Summary Serie de un indicador de salud
// @Description Devuelve la serie diaria (datos de prueba), su resumen y la frase de resumen.
// @Tags health-data
// @Produce json
// @Param range query string false "week o month (por defecto week)"
// @Param metric query string false "temp, hr, sleep o med (por defecto temp)"
// @Success 200 {object} chartResponse
// @Failure 400 {string} string "invalid input"
// @Router /health-data [get]
func chartHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rng := RangeWeek
		if v := r.URL.Query().Get("range"); v != "" {
			parsed, err := ParseRange(v)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			rng = parsed
		}

		metric := MetricTemperature
		if v := r.URL.Query().Get("metric"); v != "" {
			parsed, err := ParseMetric(v)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			metric = parsed
		}

		c := svc.Chart(rng, metric)
		points := lo.Map(c.Points, func(p Point, _ int) pointResponse {
			v := p.Value(metric)
			return pointResponse{Label: p.Label, Value: v, Ratio: c.Scale.Ratio(v)}
		})

		out := chartResponse{
			Range:       c.Range,
			Metric:      c.Metric,
			Title:       c.Metric.Title(),
			Unit:        c.Metric.Unit(),
			Points:      points,
			Summary:     summaryResponse{Avg: c.Summary.Avg, Min: c.Summary.Min, Max: c.Summary.Max},
			ScaleMin:    c.Scale.Min,
			ScaleMax:    c.Scale.Max,
			SummaryText: c.Text,
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// todayHandler godoc
// @Summary Estado de salud del día
// @Tags health-data
// @Produce json
// @Success 200 {object} statusResponse
// @Router /status/today [get]
func todayHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		st := svc.Today()
		metrics := lo.Map(st.Metrics, func(m StatusMetric, _ int) statusMetricResponse {
			return statusMetricResponse{Metric: m.Metric, Label: m.Label, Value: m.Value, Sub: m.Sub}
		})

		out := statusResponse{
			Level:       st.Level,
			Headline:    st.Headline,
			Advice:      st.Advice,
			Metrics:     metrics,
			SummaryText: st.Summary,
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
