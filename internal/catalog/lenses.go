package catalog

// Lens describes a lens option. FocalLength is a string because zooms carry
// a range ("70-200") where primes carry a single value.
type Lens struct {
	Key             string   `json:"key"`
	FocalLength     string   `json:"focal_length"`
	MaxAperture     float64  `json:"max_aperture"`
	Type            string   `json:"type"`
	Description     string   `json:"description"`
	UseCases        []string `json:"use_cases"`
	Characteristics string   `json:"characteristics"`
}

var lenses = []Lens{
	{
		Key:             "16mm f/2.8",
		FocalLength:     "16",
		MaxAperture:     2.8,
		Type:            "ultra-wide",
		Description:     "ultra-wide 16mm f/2.8 lens for dramatic environmental perspective",
		UseCases:        []string{"landscape", "architecture", "environmental"},
		Characteristics: "extreme field of view with minimal distortion",
	},
	{
		Key:             "24mm f/1.4",
		FocalLength:     "24",
		MaxAperture:     1.4,
		Type:            "wide",
		Description:     "wide-angle 24mm f/1.4 lens with excellent low-light capability",
		UseCases:        []string{"landscape", "environmental", "astrophotography"},
		Characteristics: "sharp across the frame with beautiful bokeh",
	},
	{
		Key:             "24mm f/2.8",
		FocalLength:     "24",
		MaxAperture:     2.8,
		Type:            "wide",
		Description:     "compact 24mm f/2.8 wide-angle lens",
		UseCases:        []string{"landscape", "street", "documentary"},
		Characteristics: "lightweight and portable with good sharpness",
	},
	{
		Key:             "35mm f/1.4",
		FocalLength:     "35",
		MaxAperture:     1.4,
		Type:            "wide-normal",
		Description:     "versatile 35mm f/1.4 lens with natural perspective",
		UseCases:        []string{"street", "documentary", "portrait", "environmental"},
		Characteristics: "excellent for storytelling with shallow depth of field",
	},
	{
		Key:             "35mm f/1.8",
		FocalLength:     "35",
		MaxAperture:     1.8,
		Type:            "wide-normal",
		Description:     "compact 35mm f/1.8 lens for everyday photography",
		UseCases:        []string{"street", "documentary", "travel"},
		Characteristics: "lightweight with natural field of view",
	},
	{
		Key:             "35mm f/2",
		FocalLength:     "35",
		MaxAperture:     2.0,
		Type:            "wide-normal",
		Description:     "35mm f/2 lens balancing size and performance",
		UseCases:        []string{"street", "travel", "general"},
		Characteristics: "compact and sharp with pleasant rendering",
	},
	{
		Key:             "50mm f/1.2",
		FocalLength:     "50",
		MaxAperture:     1.2,
		Type:            "standard",
		Description:     "premium 50mm f/1.2 lens with ultra-shallow depth of field",
		UseCases:        []string{"portrait", "low-light", "artistic"},
		Characteristics: "exceptional bokeh and subject isolation",
	},
	{
		Key:             "50mm f/1.4",
		FocalLength:     "50",
		MaxAperture:     1.4,
		Type:            "standard",
		Description:     "classic 50mm f/1.4 standard lens with natural perspective",
		UseCases:        []string{"portrait", "street", "general"},
		Characteristics: "versatile focal length with excellent low-light performance",
	},
	{
		Key:             "50mm f/1.8",
		FocalLength:     "50",
		MaxAperture:     1.8,
		Type:            "standard",
		Description:     "affordable 50mm f/1.8 standard lens",
		UseCases:        []string{"portrait", "general", "beginner"},
		Characteristics: "sharp and lightweight at all apertures",
	},
	{
		Key:             "85mm f/1.2",
		FocalLength:     "85",
		MaxAperture:     1.2,
		Type:            "portrait",
		Description:     "premium 85mm f/1.2 portrait lens with legendary bokeh",
		UseCases:        []string{"portrait", "fashion", "fine-art"},
		Characteristics: "creamy bokeh and exceptional subject separation",
	},
	{
		Key:             "85mm f/1.4",
		FocalLength:     "85",
		MaxAperture:     1.4,
		Type:            "portrait",
		Description:     "professional 85mm f/1.4 portrait lens",
		UseCases:        []string{"portrait", "wedding", "editorial"},
		Characteristics: "beautiful compression and smooth out-of-focus rendering",
	},
	{
		Key:             "85mm f/1.8",
		FocalLength:     "85",
		MaxAperture:     1.8,
		Type:            "portrait",
		Description:     "compact 85mm f/1.8 portrait lens",
		UseCases:        []string{"portrait", "event", "street"},
		Characteristics: "sharp with pleasant bokeh at accessible price",
	},
	{
		Key:             "105mm f/1.4",
		FocalLength:     "105",
		MaxAperture:     1.4,
		Type:            "portrait-tele",
		Description:     "unique 105mm f/1.4 portrait lens with extreme bokeh",
		UseCases:        []string{"portrait", "artistic", "fashion"},
		Characteristics: "exceptional subject isolation and dreamy bokeh",
	},
	{
		Key:             "135mm f/1.8",
		FocalLength:     "135",
		MaxAperture:     1.8,
		Type:            "telephoto-portrait",
		Description:     "telephoto 135mm f/1.8 lens with strong compression",
		UseCases:        []string{"portrait", "fashion", "sports"},
		Characteristics: "strong perspective compression and ultra-shallow DOF",
	},
	{
		Key:             "135mm f/2",
		FocalLength:     "135",
		MaxAperture:     2.0,
		Type:            "telephoto-portrait",
		Description:     "classic 135mm f/2 telephoto portrait lens",
		UseCases:        []string{"portrait", "wedding", "sports"},
		Characteristics: "flattering compression with smooth bokeh",
	},
	{
		Key:             "90mm f/2.8 Macro",
		FocalLength:     "90",
		MaxAperture:     2.8,
		Type:            "macro",
		Description:     "90mm f/2.8 1:1 macro lens for extreme detail",
		UseCases:        []string{"macro", "product", "portrait"},
		Characteristics: "1:1 magnification with exceptional sharpness",
	},
	{
		Key:             "100mm f/2.8 Macro",
		FocalLength:     "100",
		MaxAperture:     2.8,
		Type:            "macro",
		Description:     "100mm f/2.8 1:1 macro lens with image stabilization",
		UseCases:        []string{"macro", "product", "nature"},
		Characteristics: "true 1:1 reproduction with superb micro-contrast",
	},
	{
		Key:             "200mm f/2",
		FocalLength:     "200",
		MaxAperture:     2.0,
		Type:            "telephoto",
		Description:     "professional 200mm f/2 telephoto lens",
		UseCases:        []string{"sports", "wildlife", "portrait"},
		Characteristics: "extreme compression and background isolation",
	},
	{
		Key:             "70-200mm f/2.8",
		FocalLength:     "70-200",
		MaxAperture:     2.8,
		Type:            "telephoto-zoom",
		Description:     "professional 70-200mm f/2.8 zoom lens",
		UseCases:        []string{"portrait", "wedding", "sports", "event"},
		Characteristics: "versatile range with constant f/2.8 aperture",
	},
}

var lensIndex = func() map[string]int {
	idx := make(map[string]int, len(lenses))
	for i, l := range lenses {
		idx[l.Key] = i
	}
	return idx
}()

// Lenses returns all lenses in definition order.
func Lenses() []Lens {
	out := make([]Lens, len(lenses))
	copy(out, lenses)
	return out
}

// LensByKey looks up a lens by exact key.
func LensByKey(key string) (Lens, bool) {
	if i, ok := lensIndex[key]; ok {
		return lenses[i], true
	}
	return Lens{}, false
}

// LensKeys returns all lens keys in definition order.
func LensKeys() []string {
	keys := make([]string, len(lenses))
	for i, l := range lenses {
		keys[i] = l.Key
	}
	return keys
}

// LensTypes returns the distinct lens types in definition order.
func LensTypes() []string {
	seen := make(map[string]struct{})
	var types []string
	for _, l := range lenses {
		if _, ok := seen[l.Type]; ok {
			continue
		}
		seen[l.Type] = struct{}{}
		types = append(types, l.Type)
	}
	return types
}
