package trivia

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	httperrors "github.com/Reomar/trivia-api/pkg/http/errors"
)

// HTTPHandlers exposes the trivia REST surface. Handlers stay thin: parse,
// delegate to the Service, shape the JSON response. The empty-page-as-404
// policy lives here, not in the paginator.
type HTTPHandlers struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandlers constructs the trivia HTTP handlers.
func NewHTTPHandlers(svc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "trivia_http").Logger(),
	}
}

type categoriesResponse struct {
	Success    bool        `json:"success"`
	Categories CategoryMap `json:"categories"`
}

type questionListResponse struct {
	Success         bool        `json:"success"`
	Questions       []Question  `json:"questions"`
	TotalQuestions  int         `json:"total_questions"`
	Categories      CategoryMap `json:"categories,omitempty"`
	CurrentCategory *int        `json:"current_category"`
}

type quizResponse struct {
	Success  bool      `json:"success"`
	Question *Question `json:"question"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// GetCategories handles GET /categories.
func (h *HTTPHandlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	mapping, err := h.svc.Categories(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("category listing failed")
		httperrors.RespondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if len(mapping) == 0 {
		httperrors.RespondNotFound(w)
		return
	}
	respondJSON(w, http.StatusOK, categoriesResponse{Success: true, Categories: mapping})
}

// ListQuestions handles GET /questions?page=N. The total reflects the whole
// question bank; the categories map rides along for the client's sidebar.
func (h *HTTPHandlers) ListQuestions(w http.ResponseWriter, r *http.Request) {
	page := ParsePage(r.URL.Query().Get("page"))

	result, err := h.svc.ListPage(r.Context(), page)
	if err != nil {
		h.logger.Error().Err(err).Int("page", page).Msg("question listing failed")
		httperrors.RespondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if len(result.Questions) == 0 {
		httperrors.RespondNotFound(w)
		return
	}

	mapping, err := h.svc.Categories(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("category listing failed")
		httperrors.RespondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondJSON(w, http.StatusOK, questionListResponse{
		Success:        true,
		Questions:      result.Questions,
		TotalQuestions: result.Total,
		Categories:     mapping,
	})
}

// DeleteQuestion handles DELETE /questions/{id}.
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httperrors.RespondNotFound(w)
			return
		}
		h.logger.Error().Err(err).Int("question_id", id).Msg("question delete failed")
		httperrors.RespondUnprocessable(w)
		return
	}
	respondJSON(w, http.StatusOK, successResponse{Success: true})
}

// CreateQuestion handles POST /questions. Every required key is checked for
// presence individually, then for a usable value; either failure is 422.
func (h *HTTPHandlers) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question   *string `json:"question"`
		Answer     *string `json:"answer"`
		Difficulty *int    `json:"difficulty"`
		Category   *int    `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondUnprocessable(w)
		return
	}
	if req.Question == nil || req.Answer == nil || req.Difficulty == nil || req.Category == nil {
		httperrors.RespondUnprocessable(w)
		return
	}

	_, err := h.svc.Create(r.Context(), CreateQuestionInput{
		Question:   *req.Question,
		Answer:     *req.Answer,
		Difficulty: *req.Difficulty,
		Category:   *req.Category,
	})
	if err != nil {
		if !errors.Is(err, ErrInvalidInput) {
			h.logger.Error().Err(err).Msg("question create failed")
		}
		httperrors.RespondUnprocessable(w)
		return
	}
	respondJSON(w, http.StatusOK, successResponse{Success: true})
}

// SearchQuestions handles POST /questions/search. The total counts matches,
// not the global bank; an empty result page is 404.
func (h *HTTPHandlers) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SearchTerm string `json:"searchTerm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondUnprocessable(w)
		return
	}
	page := ParsePage(r.URL.Query().Get("page"))

	result, err := h.svc.SearchPage(r.Context(), req.SearchTerm, page)
	if err != nil {
		h.logger.Error().Err(err).Str("term", req.SearchTerm).Msg("question search failed")
		httperrors.RespondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if len(result.Questions) == 0 {
		httperrors.RespondNotFound(w)
		return
	}

	respondJSON(w, http.StatusOK, questionListResponse{
		Success:        true,
		Questions:      result.Questions,
		TotalQuestions: result.Total,
	})
}

// CategoryQuestions handles GET /categories/{id}/questions.
func (h *HTTPHandlers) CategoryQuestions(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}
	page := ParsePage(r.URL.Query().Get("page"))

	result, err := h.svc.CategoryPage(r.Context(), id, page)
	if err != nil {
		h.logger.Error().Err(err).Int("category", id).Msg("category listing failed")
		httperrors.RespondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if len(result.Questions) == 0 {
		httperrors.RespondNotFound(w)
		return
	}

	respondJSON(w, http.StatusOK, questionListResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.Total,
		CurrentCategory: &id,
	})
}

// QuizQuestion handles POST /quizzes. Both previous_questions and
// quiz_category must be present; a null question in the response means the
// candidate pool is exhausted.
func (h *HTTPHandlers) QuizQuestion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		QuizCategory *struct {
			ID   int    `json:"id"`
			Type string `json:"type"`
		} `json:"quiz_category"`
		PreviousQuestions *[]int `json:"previous_questions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondUnprocessable(w)
		return
	}
	if req.QuizCategory == nil {
		httperrors.RespondUnprocessable(w)
		return
	}
	if req.PreviousQuestions == nil {
		httperrors.RespondUnprocessable(w)
		return
	}

	question, err := h.svc.Draw(r.Context(), req.QuizCategory.ID, *req.PreviousQuestions)
	if err != nil {
		h.logger.Error().Err(err).Int("category", req.QuizCategory.ID).Msg("quiz draw failed")
		httperrors.RespondUnprocessable(w)
		return
	}
	respondJSON(w, http.StatusOK, quizResponse{Success: true, Question: question})
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
