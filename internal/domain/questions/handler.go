package questions

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"mediconnect/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/questions", func(qr chi.Router) {
		qr.Get("/chips", listChipsHandler())
		qr.Post("/", submitQuestionHandler(svc))
		qr.Get("/", listMyQuestionsHandler(svc))
	})
}

type submitQuestionRequest struct {
	Text  string   `json:"text"`
	Chips []string `json:"chips"` // opcional: se agregan como "- chip"
}

type questionResponse struct {
	ID          string    `json:"id"`
	CaregiverID string    `json:"caregiver_id"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"created_at"`
}

// listChipsHandler godoc
// @Summary Atajos de síntomas frecuentes
// @Tags questions
// @Produce json
// @Success 200 {array} string
// @Router /questions/chips [get]
func listChipsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, QuickChips())
	}
}

// submitQuestionHandler godoc
// @Summary Enviar pregunta o síntomas
// @Description Guarda la pregunta del cuidador para el paciente. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>`.
// @Tags questions
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID del cuidador"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body submitQuestionRequest true "Texto de la pregunta"
// @Success 201 {object} questionResponse
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /questions [post]
func submitQuestionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req submitQuestionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		text := req.Text
		for _, c := range req.Chips {
			text = AppendChip(text, c)
		}

		q, err := svc.Submit(r.Context(), claims.UserID, text)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "질문 또는 증상 내용을 입력해주세요.", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toQuestionResponse(q))
	}
}

// listMyQuestionsHandler godoc
// @Summary Listar mis preguntas
// @Tags questions
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID del cuidador"
// @Param Authorization header string false "Bearer token en producción"
// @Param limit query int false "Máximo a devolver (1-200). Por defecto 50"
// @Success 200 {array} questionResponse
// @Failure 400 {string} string "invalid limit"
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /questions [get]
func listMyQuestionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				http.Error(w, "invalid limit", http.StatusBadRequest)
				return
			}
			limit = n
		}

		items, err := svc.ListByCaregiver(r.Context(), claims.UserID, limit)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, lo.Map(items, func(q Question, _ int) questionResponse {
			return toQuestionResponse(q)
		}))
	}
}

func toQuestionResponse(q Question) questionResponse {
	return questionResponse{
		ID:          q.ID,
		CaregiverID: q.CaregiverID,
		Text:        q.Text,
		CreatedAt:   q.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
