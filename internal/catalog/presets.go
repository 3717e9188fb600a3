package catalog

import "promptforge/internal/domain"

// Preset is a named, complete set of selections that can be loaded as a
// ready-to-assemble request.
type Preset struct {
	Name    string               `json:"name"`
	Request domain.PromptRequest `json:"request"`
}

var presets = []Preset{
	{
		Name: "Portrait - Studio Canon R5",
		Request: domain.PromptRequest{
			Mode:             "Portrait",
			Subject:          "professional model with natural expression",
			Setting:          "clean studio environment",
			CameraBody:       "Canon EOS R5 Mark II",
			Lens:             "85mm f/1.4",
			ISO:              100,
			Lighting:         "Studio Professional",
			Composition:      "Rule of Thirds",
			TexturePrimary:   "skin_realistic",
			TextureSecondary: "fabric_detailed",
			TextureMode:      domain.TextureModePrimarySecondary,
			Quality:          "Photorealistic 8K",
			Mood:             "Confident Powerful",
			Color:            "Neutral Accurate",
			AspectRatio:      "Portrait (2:3)",
			RealismMode:      "strict_no_cgi",
		},
	},
	{
		Name: "Editorial - Fashion Sony A1",
		Request: domain.PromptRequest{
			Mode:             "Editorial",
			Subject:          "fashion model in designer clothing",
			Setting:          "minimalist urban backdrop",
			CameraBody:       "Sony A1",
			Lens:             "135mm f/1.8",
			ISO:              100,
			Lighting:         "Dramatic Side",
			Composition:      "Negative Space",
			TexturePrimary:   "fabric_detailed",
			TextureSecondary: "skin_realistic",
			TextureMode:      domain.TextureModePrimarySecondary,
			Quality:          "Editorial Commercial",
			Mood:             "Confident Powerful",
			Color:            "Cool Cinematic",
			AspectRatio:      "Standard (3:2)",
			RealismMode:      "natural_unretouched",
		},
	},
	{
		Name: "Portrait - Natural 35mm",
		Request: domain.PromptRequest{
			Mode:             "Portrait",
			Subject:          "candid portrait with authentic expression",
			Setting:          "natural indoor environment near window",
			CameraBody:       "Canon EOS R6 Mark II",
			Lens:             "35mm f/1.4",
			ISO:              100,
			Lighting:         "Window Side",
			Composition:      "Environmental Context",
			TexturePrimary:   "skin_realistic",
			TextureSecondary: "natural_imperfections",
			TextureMode:      domain.TextureModePrimarySecondary,
			Quality:          "Raw DSLR",
			Mood:             "Intimate Warm",
			Color:            "Warm Golden",
			AspectRatio:      "Portrait (2:3)",
			RealismMode:      "photojournalism",
		},
	},
	{
		Name: "Product - Macro Detail",
		Request: domain.PromptRequest{
			Mode:             "Product",
			Subject:          "artisan product with intricate details",
			Setting:          "neutral backdrop with subtle gradient",
			CameraBody:       "Fujifilm GFX 100 II",
			Lens:             "100mm f/2.8 Macro",
			ISO:              100,
			Lighting:         "Studio Professional",
			Composition:      "Centered Symmetrical",
			TexturePrimary:   "macro_detail",
			TextureSecondary: "sharp_micro",
			TextureMode:      domain.TextureModePrimarySecondary,
			Quality:          "Photorealistic 8K",
			Mood:             "Serene Peaceful",
			Color:            "Neutral Accurate",
			AspectRatio:      "Square (1:1)",
			RealismMode:      "standard",
		},
	},
}

// Presets returns all presets in definition order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// PresetByName looks up a preset by its display name.
func PresetByName(name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
