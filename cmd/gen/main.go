// Command gen assembles a single prompt from flags and prints it to
// stdout, optionally passing it through a local Ollama model first.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"promptforge/internal/catalog"
	"promptforge/internal/domain"
	"promptforge/internal/promptgen"
	"promptforge/internal/providers/ollama"
)

func main() {
	var (
		presetName  = flag.String("preset", "", "start from a named preset")
		listPresets = flag.Bool("list-presets", false, "list preset names and exit")
		asJSON      = flag.Bool("json", false, "print prompt and metadata as JSON")

		mode             = flag.String("mode", "Portrait", "photography mode")
		subject          = flag.String("subject", "", "subject description")
		setting          = flag.String("setting", "", "setting/environment description")
		camera           = flag.String("camera", "Canon EOS R5 Mark II", "camera body")
		lens             = flag.String("lens", "85mm f/1.4", "lens")
		iso              = flag.Int("iso", 100, "ISO sensitivity")
		lighting         = flag.String("lighting", "Soft Natural", "lighting setup")
		composition      = flag.String("composition", "Rule of Thirds", "composition style")
		texturePrimary   = flag.String("texture", "skin_realistic", "primary texture")
		textureSecondary = flag.String("texture2", "", "secondary texture")
		textureMode      = flag.String("texture-mode", domain.TextureModeSingle, "single | primary_secondary | all_combined")
		quality          = flag.String("quality", "Photorealistic 8K", "quality/rendering")
		mood             = flag.String("mood", "Serene Peaceful", "mood/atmosphere")
		color            = flag.String("color", "Neutral Accurate", "color treatment")
		aspectRatio      = flag.String("aspect", "Standard (3:2)", "aspect ratio label")
		realismMode      = flag.String("realism", "strict_no_cgi", "realism anchor mode")
		negative         = flag.String("negative", "", "additional negative terms")
		randomize        = flag.Bool("randomize", false, "randomize lighting, mood, color and lens")

		enhanceModel = flag.String("enhance-model", "", "ollama model for rewriting (empty disables)")
		enhanceMode  = flag.String("enhance-mode", string(ollama.ModeCreative), "strict | creative")
		ollamaBase   = flag.String("ollama-base", ollama.DefaultBaseURL, "ollama base URL")
	)
	flag.Parse()

	if *listPresets {
		for _, p := range catalog.Presets() {
			fmt.Println(p.Name)
		}
		return
	}

	req := domain.PromptRequest{
		Mode:             *mode,
		Subject:          *subject,
		Setting:          *setting,
		CameraBody:       *camera,
		Lens:             *lens,
		ISO:              *iso,
		Lighting:         *lighting,
		Composition:      *composition,
		TexturePrimary:   *texturePrimary,
		TextureSecondary: *textureSecondary,
		TextureMode:      *textureMode,
		Quality:          *quality,
		Mood:             *mood,
		Color:            *color,
		AspectRatio:      *aspectRatio,
		RealismMode:      *realismMode,
		Negative:         *negative,
		Randomize:        *randomize,
	}
	if *presetName != "" {
		preset, ok := catalog.PresetByName(*presetName)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown preset %q\n", *presetName)
			os.Exit(1)
		}
		req = preset.Request
		if *subject != "" {
			req.Subject = *subject
		}
		if *setting != "" {
			req.Setting = *setting
		}
	}

	assembler := promptgen.NewAssembler(promptgen.Options{})
	result, err := assembler.Assemble(req)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	prompt := result.Prompt
	if *enhanceModel != "" {
		client := ollama.NewClient(ollama.Options{BaseURL: *ollamaBase})
		enhanced, ok := client.Enhance(context.Background(), prompt, *enhanceModel, ollama.Mode(*enhanceMode))
		if !ok {
			fmt.Fprintln(os.Stderr, "enhancement unavailable, using original prompt")
		}
		prompt = enhanced
	}

	if *asJSON {
		out := map[string]any{"prompt": prompt, "metadata": result.Metadata}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}
	fmt.Println(prompt)
}
