package promptgen

import (
	"strings"

	"promptforge/internal/catalog"
)

// TextureFallback is returned whenever the primary texture key is unknown.
const TextureFallback = "realistic natural texture detail"

// CombineTextures merges two texture descriptors into one phrase. The
// secondary is ignored unless it appears in the primary's directed
// compatibility set; when it does, the connective depends on whether the
// two textures share a category.
func CombineTextures(primary, secondary string) string {
	p, ok := catalog.TextureByKey(primary)
	if !ok {
		return TextureFallback
	}
	s, ok := catalog.TextureByKey(secondary)
	if !ok {
		return p.Description
	}
	compatible := false
	for _, key := range p.CompatibleWith {
		if key == secondary {
			compatible = true
			break
		}
	}
	if !compatible {
		return p.Description
	}
	if p.Category == s.Category {
		return p.Description + ", additionally " + s.Description
	}
	return p.Description + ", complemented by " + s.Description
}

// CombineAllTextures builds the ultra-detailed description: the first two
// descriptors of every category in catalog order, with the realism
// descriptors appended last.
func CombineAllTextures() string {
	var parts []string
	for _, category := range catalog.TextureCategories() {
		if category == catalog.TextureRealismCategory {
			continue
		}
		for i, t := range catalog.TexturesByCategory(category) {
			if i == 2 {
				break
			}
			parts = append(parts, t.Description)
		}
	}
	for _, t := range catalog.TexturesByCategory(catalog.TextureRealismCategory) {
		parts = append(parts, t.Description)
	}
	return strings.Join(parts, ", ")
}
