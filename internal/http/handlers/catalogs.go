package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"promptforge/internal/catalog"
)

var titleCaser = cases.Title(language.English)

// displayName turns a snake_case catalog key into a human-facing label,
// e.g. "skin_realistic" -> "Skin Realistic".
func displayName(key string) string {
	return titleCaser.String(strings.ReplaceAll(key, "_", " "))
}

type catalogOption struct {
	Key         string `json:"key"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
}

func optionsWithDisplayNames(set catalog.Set) []catalogOption {
	items := set.Options()
	out := make([]catalogOption, len(items))
	for i, item := range items {
		out[i] = catalogOption{Key: item.Key, DisplayName: displayName(item.Key), Description: item.Description}
	}
	return out
}

// Catalogs returns a summary of every catalog and its size.
func (a *App) Catalogs(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"cameras":       len(catalog.Cameras()),
		"lenses":        len(catalog.Lenses()),
		"lighting":      catalog.Lighting.Len(),
		"composition":   catalog.Composition.Len(),
		"quality":       catalog.Quality.Len(),
		"color":         catalog.Color.Len(),
		"mood":          catalog.Mood.Len(),
		"aspect_ratios": catalog.AspectRatios.Len(),
		"textures":      len(catalog.Textures()),
		"realism_modes": catalog.RealismAnchors.Len(),
		"presets":       len(catalog.Presets()),
	})
}

type textureEntry struct {
	catalog.Texture
	DisplayName string `json:"display_name"`
}

type cameraGroup struct {
	Brand   string           `json:"brand"`
	Cameras []catalog.Camera `json:"cameras"`
}

type lensGroup struct {
	Type   string         `json:"type"`
	Lenses []catalog.Lens `json:"lenses"`
}

// CatalogByName lists the entries of one catalog. Cameras are grouped by
// brand and lenses by type, mirroring how selections are presented.
func (a *App) CatalogByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	switch name {
	case "cameras":
		var groups []cameraGroup
		for _, brand := range catalog.CameraBrands() {
			g := cameraGroup{Brand: brand}
			for _, c := range catalog.Cameras() {
				if c.Brand == brand {
					g.Cameras = append(g.Cameras, c)
				}
			}
			groups = append(groups, g)
		}
		a.json(w, http.StatusOK, map[string]any{"groups": groups})
	case "lenses":
		var groups []lensGroup
		for _, lensType := range catalog.LensTypes() {
			g := lensGroup{Type: lensType}
			for _, l := range catalog.Lenses() {
				if l.Type == lensType {
					g.Lenses = append(g.Lenses, l)
				}
			}
			groups = append(groups, g)
		}
		a.json(w, http.StatusOK, map[string]any{"groups": groups})
	case "textures":
		items := catalog.Textures()
		out := make([]textureEntry, len(items))
		for i, t := range items {
			out[i] = textureEntry{Texture: t, DisplayName: displayName(t.Key)}
		}
		a.json(w, http.StatusOK, map[string]any{"items": out})
	case "lighting":
		a.json(w, http.StatusOK, map[string]any{"items": optionsWithDisplayNames(catalog.Lighting)})
	case "composition":
		a.json(w, http.StatusOK, map[string]any{"items": optionsWithDisplayNames(catalog.Composition)})
	case "quality":
		a.json(w, http.StatusOK, map[string]any{"items": optionsWithDisplayNames(catalog.Quality)})
	case "color":
		a.json(w, http.StatusOK, map[string]any{"items": optionsWithDisplayNames(catalog.Color)})
	case "mood":
		a.json(w, http.StatusOK, map[string]any{"items": optionsWithDisplayNames(catalog.Mood)})
	case "aspect_ratios":
		a.json(w, http.StatusOK, map[string]any{"items": catalog.AspectRatios.Options()})
	case "realism_modes":
		a.json(w, http.StatusOK, map[string]any{"items": optionsWithDisplayNames(catalog.RealismAnchors)})
	default:
		a.error(w, http.StatusNotFound, "not_found", "unknown catalog "+name)
	}
}

// TextureCompatible lists the directed compatibility set of one texture.
func (a *App) TextureCompatible(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if _, ok := catalog.TextureByKey(key); !ok {
		a.error(w, http.StatusNotFound, "not_found", "unknown texture "+key)
		return
	}
	compatible := catalog.CompatibleTextures(key)
	if compatible == nil {
		compatible = []string{}
	}
	a.json(w, http.StatusOK, map[string]any{"key": key, "compatible_with": compatible})
}

func (a *App) Presets(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"items": catalog.Presets()})
}

func (a *App) PresetByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	preset, ok := catalog.PresetByName(name)
	if !ok {
		a.error(w, http.StatusNotFound, "not_found", "unknown preset "+name)
		return
	}
	a.json(w, http.StatusOK, preset)
}
