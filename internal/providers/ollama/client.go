// Package ollama talks to a locally running Ollama instance to rewrite
// assembled prompts and to discover installed models. Every failure is a
// soft failure: callers always get a usable prompt back.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Mode selects the rewrite instruction sent ahead of the prompt.
type Mode string

const (
	ModeStrict   Mode = "strict"
	ModeCreative Mode = "creative"
)

const (
	DefaultBaseURL = "http://127.0.0.1:11434"

	defaultGenerateTimeout = 60 * time.Second
	defaultListTimeout     = 5 * time.Second
	defaultModelCacheTTL   = 5 * time.Minute

	modelsCacheKey = "models"
)

const (
	strictInstruction = "Rewrite the following prompt for clarity, grammar, and readability, " +
		"without altering any factual or technical details. " +
		"Preserve all realism and lighting instructions."
	creativeInstruction = "Rewrite the following prompt in a cinematic and emotionally rich style, " +
		"keeping all photographic and realism specifications intact. " +
		"Enhance flow and immersion."
)

// Options configures a Client. Zero values get sensible defaults.
type Options struct {
	BaseURL         string
	HTTPClient      *http.Client
	GenerateTimeout time.Duration
	ListTimeout     time.Duration
	ModelCacheTTL   time.Duration
	OnFallback      func(reason string, err error)
}

// Client is an HTTP client for the Ollama REST API.
type Client struct {
	baseURL         string
	client          *http.Client
	generateTimeout time.Duration
	listTimeout     time.Duration
	cache           *gocache.Cache
	onFallback      func(reason string, err error)
}

func NewClient(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	generateTimeout := opts.GenerateTimeout
	if generateTimeout <= 0 {
		generateTimeout = defaultGenerateTimeout
	}
	listTimeout := opts.ListTimeout
	if listTimeout <= 0 {
		listTimeout = defaultListTimeout
	}
	cacheTTL := opts.ModelCacheTTL
	if cacheTTL <= 0 {
		cacheTTL = defaultModelCacheTTL
	}
	return &Client{
		baseURL:         baseURL,
		client:          client,
		generateTimeout: generateTimeout,
		listTimeout:     listTimeout,
		cache:           gocache.New(cacheTTL, 2*cacheTTL),
		onFallback:      opts.OnFallback,
	}
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

type generateResponse struct {
	Response string `json:"response"`
}

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// Enhance asks the model to rewrite prompt. The bool reports whether the
// rewrite happened; on any failure (no model, network error, non-2xx,
// empty body) the original prompt comes back unchanged.
func (c *Client) Enhance(ctx context.Context, prompt, model string, mode Mode) (string, bool) {
	if strings.TrimSpace(model) == "" {
		return prompt, false
	}
	instruction := creativeInstruction
	if mode == ModeStrict {
		instruction = strictInstruction
	}
	payload := generateRequest{
		Model:  model,
		Prompt: fmt.Sprintf("%s\n\nPrompt:\n%s\n\nEnhanced version:", instruction, prompt),
		Stream: false,
		Options: generateOptions{
			Temperature: 0.6,
			NumPredict:  400,
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		c.emitFallback("encode_request", err)
		return prompt, false
	}
	ctx, cancel := context.WithTimeout(ctx, c.generateTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", &buf)
	if err != nil {
		c.emitFallback("build_request", err)
		return prompt, false
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		c.emitFallback("http_request", err)
		return prompt, false
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 300 {
		c.emitFallback(fmt.Sprintf("http_%d", resp.StatusCode), fmt.Errorf("ollama status %d", resp.StatusCode))
		return prompt, false
	}
	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.emitFallback("decode_response", err)
		return prompt, false
	}
	text := strings.TrimSpace(out.Response)
	if text == "" {
		c.emitFallback("empty_response", errors.New("empty response"))
		return prompt, false
	}
	return text, true
}

// Models lists installed model names, sorted. Results are cached for a
// short TTL; any failure yields an empty list and is never cached.
func (c *Client) Models(ctx context.Context) []string {
	if cached, ok := c.cache.Get(modelsCacheKey); ok {
		if models, ok := cached.([]string); ok {
			return models
		}
	}
	models, err := c.fetchModels(ctx)
	if err != nil {
		c.emitFallback("list_models", err)
		return []string{}
	}
	c.cache.SetDefault(modelsCacheKey, models)
	return models
}

// Status reports whether the endpoint answers and which models it serves.
// Unlike Models it always queries live, bypassing the cache.
type Status struct {
	Online bool     `json:"online"`
	Models []string `json:"models"`
}

func (c *Client) Status(ctx context.Context) Status {
	models, err := c.fetchModels(ctx)
	if err != nil {
		return Status{Online: false, Models: []string{}}
	}
	return Status{Online: true, Models: models}
}

func (c *Client) fetchModels(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.listTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama status %d", resp.StatusCode)
	}
	var out tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	models := make([]string, 0, len(out.Models))
	for _, m := range out.Models {
		if m.Name != "" {
			models = append(models, m.Name)
		}
	}
	sort.Strings(models)
	return models, nil
}

func (c *Client) emitFallback(reason string, err error) {
	if c.onFallback != nil {
		c.onFallback(reason, err)
	}
}
