package catalog

// Camera describes a professional camera body.
type Camera struct {
	Key         string `json:"key"`
	Mount       string `json:"mount"`
	Sensor      string `json:"sensor"`
	Description string `json:"description"`
	Tier        string `json:"tier"`
	Brand       string `json:"brand"`
}

var cameras = []Camera{
	{
		Key:         "Canon EOS R5 Mark II",
		Mount:       "Canon RF",
		Sensor:      "Full-frame 45MP",
		Description: "Professional mirrorless flagship",
		Tier:        "flagship",
		Brand:       "Canon",
	},
	{
		Key:         "Canon EOS R5",
		Mount:       "Canon RF",
		Sensor:      "Full-frame 45MP",
		Description: "High-resolution hybrid camera",
		Tier:        "professional",
		Brand:       "Canon",
	},
	{
		Key:         "Canon EOS R6 Mark II",
		Mount:       "Canon RF",
		Sensor:      "Full-frame 24MP",
		Description: "Versatile full-frame mirrorless",
		Tier:        "professional",
		Brand:       "Canon",
	},
	{
		Key:         "Canon EOS R3",
		Mount:       "Canon RF",
		Sensor:      "Full-frame 24MP stacked",
		Description: "Professional sports camera",
		Tier:        "flagship",
		Brand:       "Canon",
	},
	{
		Key:         "Sony A1",
		Mount:       "Sony E",
		Sensor:      "Full-frame 50MP stacked",
		Description: "Professional flagship mirrorless",
		Tier:        "flagship",
		Brand:       "Sony",
	},
	{
		Key:         "Sony A7R V",
		Mount:       "Sony E",
		Sensor:      "Full-frame 61MP",
		Description: "High-resolution specialist",
		Tier:        "professional",
		Brand:       "Sony",
	},
	{
		Key:         "Sony A7 IV",
		Mount:       "Sony E",
		Sensor:      "Full-frame 33MP",
		Description: "Versatile hybrid camera",
		Tier:        "prosumer",
		Brand:       "Sony",
	},
	{
		Key:         "Nikon Z9",
		Mount:       "Nikon Z",
		Sensor:      "Full-frame 45MP stacked",
		Description: "Professional flagship",
		Tier:        "flagship",
		Brand:       "Nikon",
	},
	{
		Key:         "Nikon Z8",
		Mount:       "Nikon Z",
		Sensor:      "Full-frame 45MP stacked",
		Description: "Compact professional body",
		Tier:        "professional",
		Brand:       "Nikon",
	},
	{
		Key:         "Fujifilm X-H2S",
		Mount:       "Fujifilm X",
		Sensor:      "APS-C 26MP stacked",
		Description: "Professional sports camera",
		Tier:        "professional",
		Brand:       "Fujifilm",
	},
	{
		Key:         "Fujifilm GFX 100 II",
		Mount:       "Fujifilm G",
		Sensor:      "Medium format 102MP",
		Description: "Medium format powerhouse",
		Tier:        "flagship",
		Brand:       "Fujifilm",
	},
	{
		Key:         "Leica SL3",
		Mount:       "Leica L",
		Sensor:      "Full-frame 60MP",
		Description: "Premium professional camera",
		Tier:        "flagship",
		Brand:       "Leica",
	},
	{
		Key:         "Hasselblad X2D 100C",
		Mount:       "Hasselblad X",
		Sensor:      "Medium format 100MP",
		Description: "Ultimate medium format",
		Tier:        "flagship",
		Brand:       "Hasselblad",
	},
}

var cameraIndex = func() map[string]int {
	idx := make(map[string]int, len(cameras))
	for i, c := range cameras {
		idx[c.Key] = i
	}
	return idx
}()

// Cameras returns all camera bodies in definition order.
func Cameras() []Camera {
	out := make([]Camera, len(cameras))
	copy(out, cameras)
	return out
}

// CameraByKey looks up a camera body by exact key.
func CameraByKey(key string) (Camera, bool) {
	if i, ok := cameraIndex[key]; ok {
		return cameras[i], true
	}
	return Camera{}, false
}

// CameraBrands returns the distinct brands in definition order.
func CameraBrands() []string {
	seen := make(map[string]struct{})
	var brands []string
	for _, c := range cameras {
		if _, ok := seen[c.Brand]; ok {
			continue
		}
		seen[c.Brand] = struct{}{}
		brands = append(brands, c.Brand)
	}
	return brands
}
