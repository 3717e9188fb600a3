package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"promptforge/internal/providers/ollama"
)

type enhanceRequest struct {
	Prompt string `json:"prompt"`
	Model  string `json:"model"`
	Mode   string `json:"mode"`
}

type enhanceResponse struct {
	Prompt   string `json:"prompt"`
	Enhanced bool   `json:"enhanced"`
}

// EnhancePrompt sends the prompt to the local Ollama endpoint for a
// rewrite. Failures are soft: the caller always gets a prompt back, with
// the enhanced flag reporting whether the rewrite happened.
func (a *App) EnhancePrompt(w http.ResponseWriter, r *http.Request) {
	var req enhanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "prompt is required")
		return
	}
	mode := ollama.ModeCreative
	if req.Mode == string(ollama.ModeStrict) {
		mode = ollama.ModeStrict
	}
	enhanced, ok := a.Enhancer.Enhance(r.Context(), req.Prompt, req.Model, mode)
	a.json(w, http.StatusOK, enhanceResponse{Prompt: enhanced, Enhanced: ok})
}

func (a *App) Models(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"models": a.Enhancer.Models(r.Context())})
}

func (a *App) EnhancerStatus(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, a.Enhancer.Status(r.Context()))
}
