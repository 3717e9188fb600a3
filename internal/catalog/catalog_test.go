package catalog

import (
	"math/rand"
	"testing"
)

func TestTextureCompatibilityKeysResolve(t *testing.T) {
	t.Parallel()
	for _, tex := range Textures() {
		for _, key := range tex.CompatibleWith {
			if _, ok := TextureByKey(key); !ok {
				t.Errorf("texture %q lists unknown compatible key %q", tex.Key, key)
			}
			if key == tex.Key {
				t.Errorf("texture %q lists itself as compatible", tex.Key)
			}
		}
	}
}

func TestSetDescribeFallsBack(t *testing.T) {
	t.Parallel()
	sets := []Set{Lighting, Composition, Quality, Color, Mood, AspectRatios, RealismAnchors}
	for _, s := range sets {
		s := s
		t.Run(s.Name(), func(t *testing.T) {
			t.Parallel()
			want := s.Describe(s.FallbackKey())
			if got := s.Describe("definitely-not-a-key"); got != want {
				t.Fatalf("Describe(unknown) = %q, want fallback %q", got, want)
			}
			if !s.Contains(s.FallbackKey()) {
				t.Fatalf("fallback key %q missing from its own set", s.FallbackKey())
			}
		})
	}
}

func TestAspectRatioDescriptions(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"Standard (3:2)":      "3:2",
		"Square (1:1)":        "1:1",
		"Portrait (2:3)":      "2:3",
		"Widescreen (16:9)":   "16:9",
		"Portrait Wide (9:16)": "9:16",
		"Cinema (2.39:1)":     "2.39:1",
	}
	for label, ratio := range cases {
		if got := AspectRatios.Describe(label); got != ratio {
			t.Errorf("AspectRatios.Describe(%q) = %q, want %q", label, got, ratio)
		}
	}
}

func TestPresetsReferenceKnownCatalogEntries(t *testing.T) {
	t.Parallel()
	for _, p := range Presets() {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			t.Parallel()
			req := p.Request
			if _, ok := CameraByKey(req.CameraBody); !ok {
				t.Errorf("camera %q not in catalog", req.CameraBody)
			}
			if _, ok := LensByKey(req.Lens); !ok {
				t.Errorf("lens %q not in catalog", req.Lens)
			}
			if !Lighting.Contains(req.Lighting) {
				t.Errorf("lighting %q not in catalog", req.Lighting)
			}
			if !Composition.Contains(req.Composition) {
				t.Errorf("composition %q not in catalog", req.Composition)
			}
			if !Quality.Contains(req.Quality) {
				t.Errorf("quality %q not in catalog", req.Quality)
			}
			if !Mood.Contains(req.Mood) {
				t.Errorf("mood %q not in catalog", req.Mood)
			}
			if !Color.Contains(req.Color) {
				t.Errorf("color %q not in catalog", req.Color)
			}
			if !AspectRatios.Contains(req.AspectRatio) {
				t.Errorf("aspect ratio %q not in catalog", req.AspectRatio)
			}
			if !RealismAnchors.Contains(req.RealismMode) {
				t.Errorf("realism mode %q not in catalog", req.RealismMode)
			}
			if _, ok := TextureByKey(req.TexturePrimary); !ok {
				t.Errorf("primary texture %q not in catalog", req.TexturePrimary)
			}
			if req.TextureSecondary != "" {
				if _, ok := TextureByKey(req.TextureSecondary); !ok {
					t.Errorf("secondary texture %q not in catalog", req.TextureSecondary)
				}
			}
		})
	}
}

func TestPresetByName(t *testing.T) {
	t.Parallel()
	p, ok := PresetByName("Portrait - Studio Canon R5")
	if !ok {
		t.Fatal("studio portrait preset missing")
	}
	if p.Request.CameraBody != "Canon EOS R5 Mark II" {
		t.Fatalf("preset camera = %q, want Canon EOS R5 Mark II", p.Request.CameraBody)
	}
	if _, ok := PresetByName("No Such Preset"); ok {
		t.Fatal("unknown preset name must not resolve")
	}
}

func TestTextureCategoriesOrdered(t *testing.T) {
	t.Parallel()
	want := []string{"organic", "material", "environment", "technical", "aging", "realism"}
	got := TextureCategories()
	if len(got) != len(want) {
		t.Fatalf("TextureCategories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("TextureCategories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCompatibleTextures(t *testing.T) {
	t.Parallel()
	got := CompatibleTextures("skin_realistic")
	want := []string{"fabric_detailed", "environmental_rich"}
	if len(got) != len(want) {
		t.Fatalf("CompatibleTextures(skin_realistic) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("CompatibleTextures(skin_realistic)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if CompatibleTextures("nope") != nil {
		t.Fatal("unknown texture must return nil compatibility")
	}
}

func TestSetRandomKeyStaysInSet(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		if key := Lighting.RandomKey(r); !Lighting.Contains(key) {
			t.Fatalf("RandomKey returned %q, not in set", key)
		}
	}
}

func TestCameraBrandsAndLensTypes(t *testing.T) {
	t.Parallel()
	brands := CameraBrands()
	if len(brands) == 0 || brands[0] != "Canon" {
		t.Fatalf("CameraBrands() = %v, want Canon first", brands)
	}
	seen := make(map[string]struct{})
	for _, b := range brands {
		if _, dup := seen[b]; dup {
			t.Fatalf("duplicate brand %q", b)
		}
		seen[b] = struct{}{}
	}
	types := LensTypes()
	if len(types) == 0 || types[0] != "ultra-wide" {
		t.Fatalf("LensTypes() = %v, want ultra-wide first", types)
	}
}

func TestIntensityString(t *testing.T) {
	t.Parallel()
	cases := map[Intensity]string{
		IntensityLow:      "low",
		IntensityMedium:   "medium",
		IntensityHigh:     "high",
		IntensityVeryHigh: "very_high",
	}
	for in, want := range cases {
		if got := in.String(); got != want {
			t.Errorf("Intensity(%d).String() = %q, want %q", int(in), got, want)
		}
	}
}
