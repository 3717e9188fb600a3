package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"promptforge/internal/domain"
	"promptforge/internal/promptgen"
	"promptforge/internal/providers/ollama"
)

// App bundles the handler dependencies: the assembler, the enhancement
// client and the history store.
type App struct {
	Logger           zerolog.Logger
	Assembler        *promptgen.Assembler
	Enhancer         *ollama.Client
	History          domain.PromptRepository
	HistoryListLimit int
}

func NewApp(logger zerolog.Logger, assembler *promptgen.Assembler, enhancer *ollama.Client, history domain.PromptRepository, historyListLimit int) *App {
	if historyListLimit <= 0 {
		historyListLimit = 20
	}
	return &App{
		Logger:           logger,
		Assembler:        assembler,
		Enhancer:         enhancer,
		History:          history,
		HistoryListLimit: historyListLimit,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
