package records

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

var ErrUnknownPreset = errors.New("unknown date preset")

// DatePreset selecciona una ventana de fechas relativa a "hoy".
// @Enum last_7_days, last_30_days, this_year, all_time
type DatePreset string

const (
	PresetLast7Days  DatePreset = "last_7_days"
	PresetLast30Days DatePreset = "last_30_days"
	PresetThisYear   DatePreset = "this_year"
	PresetAllTime    DatePreset = "all_time"
)

// DefaultPreset es el que usa la app cuando el usuario no elige.
const DefaultPreset = PresetLast30Days

var presetLabels = map[DatePreset]string{
	PresetLast7Days:  "최근 7일",
	PresetLast30Days: "최근 30일",
	PresetThisYear:   "올해",
	PresetAllTime:    "전체",
}

// Presets devuelve los presets en el orden en que se muestran.
func Presets() []DatePreset {
	return []DatePreset{PresetLast7Days, PresetLast30Days, PresetThisYear, PresetAllTime}
}

func (p DatePreset) Label() string {
	return presetLabels[p]
}

func (p DatePreset) Valid() bool {
	_, ok := presetLabels[p]
	return ok
}

// ParsePreset acepta la clave ("last_7_days") o la etiqueta ("최근 7일").
func ParsePreset(s string) (DatePreset, error) {
	s = strings.TrimSpace(s)
	if p := DatePreset(strings.ToLower(s)); p.Valid() {
		return p, nil
	}
	for p, label := range presetLabels {
		if label == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
}

// windowDays es el umbral de los presets "últimos N días".
func (p DatePreset) windowDays() (int, bool) {
	switch p {
	case PresetLast7Days:
		return 7, true
	case PresetLast30Days:
		return 30, true
	default:
		return 0, false
	}
}

// Query es el filtro de ListRecords. HospitalID vacío equivale a AllHospitals;
// cualquier otro valor se compara tal cual (sin trim, sensible a mayúsculas).
type Query struct {
	HospitalID HospitalID
	Preset     DatePreset
}

func (q Query) hospital() HospitalID {
	if q.HospitalID == "" {
		return AllHospitals
	}
	return q.HospitalID
}

// InPreset indica si una visita cae en la ventana del preset respecto a now
// (la fecha de "hoy" se toma en la zona de now).
// Las ventanas de N días incluyen el día N y excluyen fechas futuras.
func InPreset(visit Date, preset DatePreset, now time.Time) bool {
	today := DateOf(now)

	if preset == PresetAllTime {
		return true
	}
	if preset == PresetThisYear {
		return visit.Year == today.Year
	}
	if n, ok := preset.windowDays(); ok {
		diff := visit.DaysUntil(today)
		return diff >= 0 && diff <= n
	}
	return false
}

// Filter aplica el filtro de hospital y el de fechas. Nunca devuelve nil.
func Filter(items []HospitalRecord, q Query, now time.Time) []HospitalRecord {
	hospital := q.hospital()

	out := make([]HospitalRecord, 0, len(items))
	for _, r := range items {
		if hospital != AllHospitals && r.HospitalID != hospital {
			continue
		}
		if !InPreset(r.VisitDate, q.Preset, now) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// SortNewestFirst ordena por fecha de visita desc; empates por ID asc.
func SortNewestFirst(items []HospitalRecord) {
	sort.SliceStable(items, func(i, j int) bool {
		if c := items[i].VisitDate.Compare(items[j].VisitDate); c != 0 {
			return c > 0
		}
		return items[i].ID < items[j].ID
	})
}

// ListRecords consulta el dataset estático.
func ListRecords(q Query, now time.Time) ([]HospitalRecord, error) {
	if !q.Preset.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, q.Preset)
	}
	out := Filter(Dataset(), q, now)
	SortNewestFirst(out)
	return out, nil
}

// GetRecordByID busca en el dataset estático; ok=false si no existe.
func GetRecordByID(id string) (HospitalRecord, bool) {
	for _, r := range dataset {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return HospitalRecord{}, false
}

var koreanWeekdays = [...]string{"일", "월", "화", "수", "목", "금", "토"}

// FormatDisplayDate formatea "YYYY.MM.DD (요일)", ej. "2025.09.01 (월)".
func FormatDisplayDate(d Date) string {
	return fmt.Sprintf("%04d.%02d.%02d (%s)", d.Year, int(d.Month), d.Day, koreanWeekdays[d.Weekday()])
}
