package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"promptforge/internal/domain"
)

type generateResponse struct {
	ID       string                `json:"id"`
	Prompt   string                `json:"prompt"`
	Metadata domain.PromptMetadata `json:"metadata"`
}

// GeneratePrompt assembles a prompt from the posted selections. Validation
// failures reject the request; every other lookup miss degrades inside the
// assembler. `?format=text` returns the bare prompt for download.
func (a *App) GeneratePrompt(w http.ResponseWriter, r *http.Request) {
	var req domain.PromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	result, err := a.Assembler.Assemble(req)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			a.error(w, http.StatusUnprocessableEntity, "validation_failed", err.Error())
			return
		}
		a.Logger.Error().Err(err).Msg("prompt assembly failed")
		a.error(w, http.StatusInternalServerError, "internal", "prompt assembly failed")
		return
	}

	rec := &domain.PromptRecord{
		ID:        uuid.NewString(),
		Prompt:    result.Prompt,
		Metadata:  result.Metadata,
		CreatedAt: time.Now(),
	}
	if a.History != nil {
		if err := a.History.Save(r.Context(), rec); err != nil {
			// History is best-effort; the prompt is still returned.
			a.Logger.Warn().Err(err).Msg("failed to save prompt history")
		}
	}

	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(result.Prompt))
		return
	}
	a.json(w, http.StatusOK, generateResponse{ID: rec.ID, Prompt: result.Prompt, Metadata: result.Metadata})
}

func (a *App) ListPrompts(w http.ResponseWriter, r *http.Request) {
	limit := a.HistoryListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	records, err := a.History.List(r.Context(), limit)
	if err != nil {
		a.Logger.Error().Err(err).Msg("failed to list prompt history")
		a.error(w, http.StatusInternalServerError, "internal", "failed to list prompts")
		return
	}
	if records == nil {
		records = []domain.PromptRecord{}
	}
	a.json(w, http.StatusOK, map[string]any{"items": records})
}

func (a *App) GetPrompt(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, err := a.History.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "prompt not found")
			return
		}
		a.Logger.Error().Err(err).Str("id", id).Msg("failed to fetch prompt")
		a.error(w, http.StatusInternalServerError, "internal", "failed to fetch prompt")
		return
	}
	a.json(w, http.StatusOK, rec)
}
