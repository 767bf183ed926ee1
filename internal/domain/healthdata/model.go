package healthdata

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

// Metric es el indicador que se grafica.
// @Enum temp, hr, sleep, med
type Metric string

const (
	MetricTemperature Metric = "temp"
	MetricHeartRate   Metric = "hr"
	MetricSleep       Metric = "sleep"
	MetricMedication  Metric = "med" // adherencia a la medicación, %
)

func Metrics() []Metric {
	return []Metric{MetricTemperature, MetricHeartRate, MetricSleep, MetricMedication}
}

func ParseMetric(s string) (Metric, error) {
	m := Metric(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case MetricTemperature, MetricHeartRate, MetricSleep, MetricMedication:
		return m, nil
	}
	return "", fmt.Errorf("%w: unknown metric %q", ErrInvalidInput, s)
}

// Title es el nombre que muestra (y lee) la app.
func (m Metric) Title() string {
	switch m {
	case MetricTemperature:
		return "체온"
	case MetricHeartRate:
		return "심박수"
	case MetricSleep:
		return "수면"
	case MetricMedication:
		return "복약 이행률"
	default:
		return ""
	}
}

func (m Metric) Unit() string {
	switch m {
	case MetricTemperature:
		return "℃"
	case MetricHeartRate:
		return "bpm"
	case MetricSleep:
		return "h"
	case MetricMedication:
		return "%"
	default:
		return ""
	}
}

// Range es la ventana de la serie.
// @Enum week, month
type Range string

const (
	RangeWeek  Range = "week"
	RangeMonth Range = "month"
)

func ParseRange(s string) (Range, error) {
	r := Range(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case RangeWeek, RangeMonth:
		return r, nil
	}
	return "", fmt.Errorf("%w: unknown range %q", ErrInvalidInput, s)
}

// Points es la cantidad de puntos de la serie.
func (r Range) Points() int {
	if r == RangeMonth {
		return 30
	}
	return 7
}

// Label es la etiqueta de período para textos ("최근 7일").
func (r Range) Label() string {
	if r == RangeMonth {
		return "최근 30일"
	}
	return "최근 7일"
}

// Point es una muestra diaria de todos los indicadores.
type Point struct {
	Label       string  // D1..D7 o 1..30
	Temperature float64 // ℃, 1 decimal
	HeartRate   int     // bpm
	Sleep       float64 // horas, 1 decimal
	Medication  int     // %
}

func (p Point) Value(m Metric) float64 {
	switch m {
	case MetricTemperature:
		return p.Temperature
	case MetricHeartRate:
		return float64(p.HeartRate)
	case MetricSleep:
		return p.Sleep
	case MetricMedication:
		return float64(p.Medication)
	default:
		return 0
	}
}

type Summary struct {
	Avg float64
	Min float64
	Max float64
}

// Scale son los límites de referencia del gráfico de barras.
type Scale struct {
	Min float64
	Max float64
}

func ScaleFor(m Metric) Scale {
	switch m {
	case MetricTemperature:
		return Scale{Min: 35.5, Max: 37.8}
	case MetricHeartRate:
		return Scale{Min: 50, Max: 100}
	case MetricSleep:
		return Scale{Min: 0, Max: 9.5}
	default:
		return Scale{Min: 0, Max: 100}
	}
}

// Ratio ubica v dentro de la escala, acotado a [0,1].
func (s Scale) Ratio(v float64) float64 {
	if s.Max <= s.Min {
		return 0
	}
	r := (v - s.Min) / (s.Max - s.Min)
	switch {
	case r < 0:
		return 0
	case r > 1:
		return 1
	default:
		return r
	}
}
