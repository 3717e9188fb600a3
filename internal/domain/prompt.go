package domain

import "time"

// TextureMode selects how the assembler resolves the texture sentence.
const (
	TextureModeSingle           = "single"
	TextureModePrimarySecondary = "primary_secondary"
	TextureModeAllCombined      = "all_combined"
)

// PromptRequest carries one full set of user selections for prompt assembly.
// Catalog fields hold catalog keys; unknown keys degrade to fallbacks during
// assembly and never fail the request.
type PromptRequest struct {
	Mode             string `json:"mode"`
	Subject          string `json:"subject"`
	Setting          string `json:"setting"`
	CameraBody       string `json:"camera_body"`
	Lens             string `json:"lens"`
	ISO              int    `json:"iso"`
	Lighting         string `json:"lighting"`
	Composition      string `json:"composition"`
	TexturePrimary   string `json:"texture_primary"`
	TextureSecondary string `json:"texture_secondary,omitempty"`
	TextureMode      string `json:"texture_mode"`
	Quality          string `json:"quality"`
	Mood             string `json:"mood"`
	Color            string `json:"color"`
	AspectRatio      string `json:"aspect_ratio"`
	RealismMode      string `json:"realism_mode"`
	Negative         string `json:"negative,omitempty"`
	Randomize        bool   `json:"randomize,omitempty"`
}

// PromptMetadata records every resolved selection, including values chosen
// by randomization, alongside a timestamp and a format version marker.
type PromptMetadata struct {
	Timestamp        time.Time `json:"timestamp"`
	Version          string    `json:"version"`
	Mode             string    `json:"mode"`
	CameraBody       string    `json:"camera_body"`
	Lens             string    `json:"lens"`
	ISO              int       `json:"iso"`
	Lighting         string    `json:"lighting"`
	Composition      string    `json:"composition"`
	TexturePrimary   string    `json:"texture_primary"`
	TextureSecondary string    `json:"texture_secondary,omitempty"`
	TextureMode      string    `json:"texture_mode"`
	Quality          string    `json:"quality"`
	Mood             string    `json:"mood"`
	Color            string    `json:"color"`
	AspectRatio      string    `json:"aspect_ratio"`
	RealismMode      string    `json:"realism_mode"`
	Randomized       bool      `json:"randomized"`
}

// PromptResult is the output of one assembly call: the final prompt text and
// the metadata snapshot. It has no identity beyond the call that produced it.
type PromptResult struct {
	Prompt   string         `json:"prompt"`
	Metadata PromptMetadata `json:"metadata"`
}

// PromptRecord is a generated prompt persisted to history.
type PromptRecord struct {
	ID        string         `json:"id"`
	Prompt    string         `json:"prompt"`
	Metadata  PromptMetadata `json:"metadata"`
	CreatedAt time.Time      `json:"created_at"`
}
