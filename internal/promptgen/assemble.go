package promptgen

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"promptforge/internal/catalog"
	"promptforge/internal/domain"
)

// Version marks the metadata format emitted with every assembled prompt.
const Version = "1.0.0"

var defaultNegatives = []string{
	"plastic skin", "airbrushed", "CGI", "3D render", "digital painting",
	"artificial smoothing", "unrealistic textures", "synthetic appearance",
	"overly smooth skin", "fake materials",
}

// Assembler turns a PromptRequest into the final prompt text plus its
// metadata snapshot. It holds no mutable state beyond the injected random
// source, so a single instance serves concurrent callers.
type Assembler struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

// Options configures an Assembler. Both fields are injectable for
// deterministic tests.
type Options struct {
	Rand *rand.Rand
	Now  func() time.Time
}

func NewAssembler(opts Options) *Assembler {
	rnd := opts.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Assembler{rnd: rnd, now: now}
}

// Assemble builds the prompt. Only subject/setting validation can fail;
// every catalog lookup after that degrades to a fallback so a bad or
// custom key still yields a usable prompt.
func (a *Assembler) Assemble(req domain.PromptRequest) (*domain.PromptResult, error) {
	subject := Sanitize(req.Subject)
	setting := Sanitize(req.Setting)
	if !validFreeText(subject) {
		return nil, fmt.Errorf("%w: subject must be at least %d characters", domain.ErrValidation, minFreeTextLen)
	}
	if !validFreeText(setting) {
		return nil, fmt.Errorf("%w: setting must be at least %d characters", domain.ErrValidation, minFreeTextLen)
	}

	lighting, mood, color, lens := req.Lighting, req.Mood, req.Color, req.Lens
	if req.Randomize {
		a.mu.Lock()
		lighting = catalog.Lighting.RandomKey(a.rnd)
		mood = catalog.Mood.RandomKey(a.rnd)
		color = catalog.Color.RandomKey(a.rnd)
		lensKeys := catalog.LensKeys()
		lens = lensKeys[a.rnd.Intn(len(lensKeys))]
		a.mu.Unlock()
	}

	ratio := catalog.AspectRatios.Describe(req.AspectRatio)
	cameraDesc := buildCameraDescription(req.CameraBody, lens, req.ISO)

	textureMode := req.TextureMode
	if textureMode == "" {
		textureMode = domain.TextureModeSingle
	}
	var textureDesc string
	switch {
	case textureMode == domain.TextureModeAllCombined:
		textureDesc = CombineAllTextures()
	case textureMode == domain.TextureModePrimarySecondary && req.TextureSecondary != "":
		textureDesc = CombineTextures(req.TexturePrimary, req.TextureSecondary)
	default:
		textureDesc = CombineTextures(req.TexturePrimary, "")
	}

	parts := []string{
		fmt.Sprintf("A photorealistic %s photograph of %s, set in %s.", strings.ToLower(req.Mode), subject, setting),
		fmt.Sprintf("The scene is illuminated by %s.", catalog.Lighting.Describe(lighting)),
		fmt.Sprintf("The image is %s, %s.", cameraDesc, catalog.Composition.Describe(req.Composition)),
		fmt.Sprintf("The photograph is %s, %s.", catalog.Quality.Describe(req.Quality), textureDesc),
		fmt.Sprintf("%s %s.", strings.TrimSuffix(catalog.Mood.Describe(mood), "."), catalog.Color.Describe(color)),
		fmt.Sprintf("Image format: %s aspect ratio.", ratio),
	}
	prompt := cleanupGrammar(strings.Join(parts, " "))
	prompt = cleanupGrammar(prompt + " " + catalog.RealismAnchors.Describe(req.RealismMode))

	negatives := make([]string, 0, len(defaultNegatives)+1)
	if neg := Sanitize(req.Negative); neg != "" {
		negatives = append(negatives, neg)
	}
	negatives = append(negatives, defaultNegatives...)
	prompt += "\n\nAvoid: " + strings.Join(negatives, ", ")

	meta := domain.PromptMetadata{
		Timestamp:        a.now(),
		Version:          Version,
		Mode:             req.Mode,
		CameraBody:       req.CameraBody,
		Lens:             lens,
		ISO:              req.ISO,
		Lighting:         lighting,
		Composition:      req.Composition,
		TexturePrimary:   req.TexturePrimary,
		TextureSecondary: req.TextureSecondary,
		TextureMode:      textureMode,
		Quality:          req.Quality,
		Mood:             mood,
		Color:            color,
		AspectRatio:      ratio,
		RealismMode:      req.RealismMode,
		Randomized:       req.Randomize,
	}
	return &domain.PromptResult{Prompt: prompt, Metadata: meta}, nil
}

// buildCameraDescription composes the camera+lens clause. An unknown lens
// keeps the raw string the caller sent; an unknown camera drops the body
// clause entirely.
func buildCameraDescription(cameraBody, lensKey string, iso int) string {
	var lensDesc string
	if lens, ok := catalog.LensByKey(lensKey); ok {
		lensDesc = fmt.Sprintf("using a %s at ISO %d, %s", lens.Description, iso, lens.Characteristics)
	} else {
		lensDesc = fmt.Sprintf("using a %s lens at ISO %d", lensKey, iso)
	}
	if cam, ok := catalog.CameraByKey(cameraBody); ok {
		return fmt.Sprintf("captured on a %s (%s) %s", cameraBody, cam.Sensor, lensDesc)
	}
	return "captured " + lensDesc
}
