package promptgen

import (
	"strings"
	"testing"

	"promptforge/internal/catalog"
)

func mustTexture(t *testing.T, key string) catalog.Texture {
	t.Helper()
	tex, ok := catalog.TextureByKey(key)
	if !ok {
		t.Fatalf("texture %q missing from catalog", key)
	}
	return tex
}

func TestCombineTexturesCrossCategory(t *testing.T) {
	t.Parallel()
	primary := mustTexture(t, "skin_realistic")
	secondary := mustTexture(t, "fabric_detailed")

	got := CombineTextures("skin_realistic", "fabric_detailed")
	want := primary.Description + ", complemented by " + secondary.Description
	if got != want {
		t.Fatalf("CombineTextures() = %q, want %q", got, want)
	}
}

func TestCombineTexturesSameCategory(t *testing.T) {
	t.Parallel()
	// skin_pores lists skin_realistic as compatible and both are organic.
	primary := mustTexture(t, "skin_pores")
	secondary := mustTexture(t, "skin_realistic")

	got := CombineTextures("skin_pores", "skin_realistic")
	want := primary.Description + ", additionally " + secondary.Description
	if got != want {
		t.Fatalf("CombineTextures() = %q, want %q", got, want)
	}
}

func TestCombineTexturesIncompatibleSecondaryIgnored(t *testing.T) {
	t.Parallel()
	primary := mustTexture(t, "skin_realistic")
	if got := CombineTextures("skin_realistic", "macro_detail"); got != primary.Description {
		t.Fatalf("CombineTextures() = %q, want primary description alone", got)
	}
}

func TestCombineTexturesDirectedCompatibility(t *testing.T) {
	t.Parallel()
	// skin_pores -> skin_realistic is allowed but the reverse direction is
	// not present in the catalog; the relation stays directed.
	primary := mustTexture(t, "skin_realistic")
	if got := CombineTextures("skin_realistic", "skin_pores"); got != primary.Description {
		t.Fatalf("CombineTextures() = %q, want primary description alone", got)
	}
}

func TestCombineTexturesUnknownPrimary(t *testing.T) {
	t.Parallel()
	if got := CombineTextures("no_such_texture", "fabric_detailed"); got != TextureFallback {
		t.Fatalf("CombineTextures() = %q, want %q", got, TextureFallback)
	}
}

func TestCombineTexturesMissingSecondary(t *testing.T) {
	t.Parallel()
	primary := mustTexture(t, "skin_realistic")
	if got := CombineTextures("skin_realistic", ""); got != primary.Description {
		t.Fatalf("CombineTextures() with empty secondary = %q, want primary description", got)
	}
	if got := CombineTextures("skin_realistic", "bogus"); got != primary.Description {
		t.Fatalf("CombineTextures() with unknown secondary = %q, want primary description", got)
	}
}

func TestCombineAllTextures(t *testing.T) {
	t.Parallel()
	got := CombineAllTextures()

	// Two descriptors per category, in catalog order, with the realism
	// descriptors at the tail.
	first := mustTexture(t, "skin_realistic").Description
	if !strings.HasPrefix(got, first) {
		t.Fatalf("combined textures should start with %q, got %q", first, got)
	}
	last := mustTexture(t, "unretouched_authentic").Description
	if !strings.HasSuffix(got, last) {
		t.Fatalf("combined textures should end with %q, got %q", last, got)
	}
	// hair_strands is the third organic texture and must be skipped.
	if strings.Contains(got, mustTexture(t, "hair_strands").Description) {
		t.Fatalf("combined textures should only take two descriptors per category: %q", got)
	}
	realism := mustTexture(t, "natural_imperfections").Description
	if !strings.Contains(got, realism) {
		t.Fatalf("combined textures should include realism anchors: %q", got)
	}
}

func TestCombineAllTexturesStable(t *testing.T) {
	t.Parallel()
	if CombineAllTextures() != CombineAllTextures() {
		t.Fatal("combined texture description must be identical across calls")
	}
}
