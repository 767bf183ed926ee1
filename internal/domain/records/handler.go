package records

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/hospitals", listHospitalsHandler(svc))

	r.Route("/records", func(rr chi.Router) {
		rr.Get("/", listRecordsHandler(svc))
		rr.Get("/presets", listPresetsHandler())
		rr.Get("/{recordID}", getRecordHandler(svc))
	})
}

type hospitalResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type presetResponse struct {
	Key   DatePreset `json:"key" enums:"last_7_days,last_30_days,this_year,all_time"`
	Label string     `json:"label"`
}

type vitalsResponse struct {
	BloodPressure *string  `json:"bp,omitempty"`
	HeartRate     *int     `json:"hr,omitempty"`
	Temperature   *float64 `json:"temp,omitempty"`
}

type attachmentResponse struct {
	Type AttachmentKind `json:"type" enums:"document,image"`
	Name string         `json:"name"`
}

// recordResponse representa una visita hospitalaria devuelta por la API.
type recordResponse struct {
	ID           string               `json:"id"`
	HospitalID   string               `json:"hospital_id"`
	HospitalName string               `json:"hospital_name"`
	VisitDate    string               `json:"visit_date"`   // YYYY-MM-DD
	DisplayDate  string               `json:"display_date"` // YYYY.MM.DD (요일)
	Department   string               `json:"department"`
	Doctor       string               `json:"doctor"`
	Diagnosis    []string             `json:"diagnosis"`
	Medications  []string             `json:"medications"`
	Notes        string               `json:"notes"`
	Vitals       *vitalsResponse      `json:"vitals,omitempty"`
	Attachments  []attachmentResponse `json:"attachments,omitempty"`
}

// listHospitalsHandler godoc
// @Summary Listar hospitales conocidos
// @Tags records
// @Produce json
// @Success 200 {array} hospitalResponse
// @Failure 500 {string} string "internal error"
// @Router /hospitals [get]
func listHospitalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Hospitals(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, lo.Map(items, func(h HospitalMeta, _ int) hospitalResponse {
			return hospitalResponse{ID: string(h.ID), Name: h.Name}
		}))
	}
}

// listPresetsHandler godoc
// @Summary Listar presets de fecha
// @Tags records
// @Produce json
// @Success 200 {array} presetResponse
// @Router /records/presets [get]
func listPresetsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, lo.Map(Presets(), func(p DatePreset, _ int) presetResponse {
			return presetResponse{Key: p, Label: p.Label()}
		}))
	}
}

// listRecordsHandler godoc
// @Summary Listar visitas hospitalarias
// @Description Filtra por hospital y por preset de fecha; ordena por fecha de visita descendente.
// @Tags records
// @Produce json
// @Param hospital_id query string false "ID de hospital o ALL (por defecto ALL)"
// @Param preset query string false "last_7_days, last_30_days, this_year, all_time o su etiqueta (por defecto last_30_days)"
// @Success 200 {array} recordResponse
// @Failure 400 {string} string "unknown date preset"
// @Failure 500 {string} string "internal error"
// @Router /records [get]
func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := Query{
			HospitalID: HospitalID(r.URL.Query().Get("hospital_id")),
			Preset:     DefaultPreset,
		}
		if v := strings.TrimSpace(r.URL.Query().Get("preset")); v != "" {
			p, err := ParsePreset(v)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			q.Preset = p
		}

		items, err := svc.ListRecords(r.Context(), q)
		if err != nil {
			if errors.Is(err, ErrUnknownPreset) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, lo.Map(items, func(rec HospitalRecord, _ int) recordResponse {
			return toRecordResponse(rec)
		}))
	}
}

// getRecordHandler godoc
// @Summary Obtener una visita por ID
// @Tags records
// @Produce json
// @Param recordID path string true "ID de la visita"
// @Success 200 {object} recordResponse
// @Failure 404 {string} string "record not found"
// @Failure 500 {string} string "internal error"
// @Router /records/{recordID} [get]
func getRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, ok, err := svc.GetRecordByID(r.Context(), chi.URLParam(r, "recordID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toRecordResponse(rec))
	}
}

func toRecordResponse(r HospitalRecord) recordResponse {
	out := recordResponse{
		ID:           r.ID,
		HospitalID:   string(r.HospitalID),
		HospitalName: r.HospitalName,
		VisitDate:    r.VisitDate.String(),
		DisplayDate:  FormatDisplayDate(r.VisitDate),
		Department:   r.Department,
		Doctor:       r.Doctor,
		Diagnosis:    nonNil(r.Diagnosis),
		Medications:  nonNil(r.Medications),
		Notes:        r.Notes,
	}
	if r.Vitals != nil {
		out.Vitals = &vitalsResponse{
			BloodPressure: r.Vitals.BloodPressure,
			HeartRate:     r.Vitals.HeartRate,
			Temperature:   r.Vitals.Temperature,
		}
	}
	for _, a := range r.Attachments {
		out.Attachments = append(out.Attachments, attachmentResponse{Type: a.Kind, Name: a.Name})
	}
	return out
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
