package catalog

import (
	"encoding/json"
	"fmt"
)

// Intensity is the ordinal strength of a texture descriptor.
type Intensity int

const (
	IntensityLow Intensity = iota
	IntensityMedium
	IntensityHigh
	IntensityVeryHigh
)

func (i Intensity) String() string {
	switch i {
	case IntensityLow:
		return "low"
	case IntensityMedium:
		return "medium"
	case IntensityHigh:
		return "high"
	case IntensityVeryHigh:
		return "very_high"
	default:
		return fmt.Sprintf("intensity(%d)", int(i))
	}
}

// MarshalJSON renders the intensity as its string form.
func (i Intensity) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

// Texture is a catalog entry carrying a category, an intensity and the
// directed set of texture keys it may be paired with. The compatibility
// relation is not symmetric in the source data and is kept directed.
type Texture struct {
	Key            string    `json:"key"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Intensity      Intensity `json:"intensity"`
	CompatibleWith []string  `json:"compatible_with"`
}

var textures = []Texture{
	{
		Key:            "skin_realistic",
		Description:    "natural skin texture with visible pores, fine lines, and individual hair strands",
		Category:       "organic",
		Intensity:      IntensityHigh,
		CompatibleWith: []string{"fabric_detailed", "environmental_rich"},
	},
	{
		Key:            "skin_pores",
		Description:    "visible skin pores and natural skin texture detail",
		Category:       "organic",
		Intensity:      IntensityMedium,
		CompatibleWith: []string{"skin_realistic", "fabric_detailed"},
	},
	{
		Key:            "hair_strands",
		Description:    "individual hair strands with natural flyaways and texture",
		Category:       "organic",
		Intensity:      IntensityHigh,
		CompatibleWith: []string{"skin_realistic", "fabric_detailed"},
	},
	{
		Key:            "fabric_detailed",
		Description:    "realistic fabric weave, natural folds, and authentic material reflectance",
		Category:       "material",
		Intensity:      IntensityHigh,
		CompatibleWith: []string{"skin_realistic", "environmental_rich"},
	},
	{
		Key:            "fabric_weave",
		Description:    "visible fabric weave patterns and textile structure",
		Category:       "material",
		Intensity:      IntensityMedium,
		CompatibleWith: []string{"fabric_detailed", "sharp_micro"},
	},
	{
		Key:            "material_reflectance",
		Description:    "accurate material reflectance and surface properties",
		Category:       "material",
		Intensity:      IntensityMedium,
		CompatibleWith: []string{"fabric_detailed", "environmental_rich"},
	},
	{
		Key:            "environmental_rich",
		Description:    "atmospheric depth with fine surface details and accurate material properties",
		Category:       "environment",
		Intensity:      IntensityHigh,
		CompatibleWith: []string{"skin_realistic", "fabric_detailed", "weathered_aged"},
	},
	{
		Key:            "atmospheric_depth",
		Description:    "atmospheric haze and depth perception with distance falloff",
		Category:       "environment",
		Intensity:      IntensityMedium,
		CompatibleWith: []string{"environmental_rich", "sharp_micro"},
	},
	{
		Key:            "dust_particles",
		Description:    "visible dust particles and air particulates in lighting",
		Category:       "environment",
		Intensity:      IntensityLow,
		CompatibleWith: []string{"environmental_rich", "atmospheric_depth"},
	},
	{
		Key:            "sharp_micro",
		Description:    "crisp high-frequency texture detail from foreground to background",
		Category:       "technical",
		Intensity:      IntensityHigh,
		CompatibleWith: []string{"fabric_weave", "weathered_aged", "macro_detail"},
	},
	{
		Key:            "macro_detail",
		Description:    "extreme close-up detail with microscopic surface features",
		Category:       "technical",
		Intensity:      IntensityVeryHigh,
		CompatibleWith: []string{"sharp_micro", "material_reflectance"},
	},
	{
		Key:            "weathered_aged",
		Description:    "aged surfaces with wear patterns and patina of time",
		Category:       "aging",
		Intensity:      IntensityMedium,
		CompatibleWith: []string{"environmental_rich", "sharp_micro"},
	},
	{
		Key:            "wear_patterns",
		Description:    "natural wear patterns and use marks on surfaces",
		Category:       "aging",
		Intensity:      IntensityMedium,
		CompatibleWith: []string{"weathered_aged", "environmental_rich"},
	},
	{
		Key:            "natural_imperfections",
		Description:    "authentic natural imperfections and organic irregularities",
		Category:       "realism",
		Intensity:      IntensityMedium,
		CompatibleWith: []string{"skin_realistic", "weathered_aged"},
	},
	{
		Key:            "unretouched_authentic",
		Description:    "unretouched authentic appearance without digital smoothing",
		Category:       "realism",
		Intensity:      IntensityHigh,
		CompatibleWith: []string{"skin_realistic", "natural_imperfections"},
	},
}

var textureIndex = func() map[string]int {
	idx := make(map[string]int, len(textures))
	for i, t := range textures {
		idx[t.Key] = i
	}
	return idx
}()

// TextureRealismCategory is the category whose descriptors always close a
// fully combined texture description.
const TextureRealismCategory = "realism"

// Textures returns all textures in definition order.
func Textures() []Texture {
	out := make([]Texture, len(textures))
	copy(out, textures)
	return out
}

// TextureByKey looks up a texture by exact key.
func TextureByKey(key string) (Texture, bool) {
	if i, ok := textureIndex[key]; ok {
		return textures[i], true
	}
	return Texture{}, false
}

// TextureKeys returns all texture keys in definition order.
func TextureKeys() []string {
	keys := make([]string, len(textures))
	for i, t := range textures {
		keys[i] = t.Key
	}
	return keys
}

// TextureCategories returns the distinct categories in definition order.
func TextureCategories() []string {
	seen := make(map[string]struct{})
	var cats []string
	for _, t := range textures {
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		cats = append(cats, t.Category)
	}
	return cats
}

// TexturesByCategory returns the textures of one category in definition
// order.
func TexturesByCategory(category string) []Texture {
	var out []Texture
	for _, t := range textures {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// CompatibleTextures returns the directed compatibility set of a texture,
// or nil when the key is unknown.
func CompatibleTextures(key string) []string {
	t, ok := TextureByKey(key)
	if !ok {
		return nil
	}
	out := make([]string, len(t.CompatibleWith))
	copy(out, t.CompatibleWith)
	return out
}
