package catalog

// Flat style catalogs. Each carries a fallback entry so a bad key in a
// request degrades to sensible prose instead of failing assembly.

var Lighting = newSet("lighting", "Soft Natural", []Option{
	{Key: "Soft Natural", Description: "soft, warm natural daylight streaming through a nearby window, creating gentle shadows with a natural falloff"},
	{Key: "Golden Hour", Description: "golden hour sunlight bathing the scene in warm amber tones with soft ambient bounce light"},
	{Key: "Studio Professional", Description: "professional three-point studio lighting with soft key light, subtle fill, and rim lighting for depth"},
	{Key: "Dramatic Side", Description: "high-contrast dramatic lighting from the side, casting deep, moody shadows"},
	{Key: "Overcast Diffused", Description: "evenly diffused daylight from an overcast sky, eliminating harsh shadows"},
	{Key: "Backlit Atmospheric", Description: "strong backlighting creating a glowing rim around the subject with atmospheric depth"},
	{Key: "Night Urban", Description: "neon lights in blues and pinks reflecting off surfaces, creating a moody urban atmosphere"},
	{Key: "Window Side", Description: "soft window light from the side, creating dimensional modeling with gentle shadows"},
	{Key: "Rembrandt", Description: "classic Rembrandt lighting with triangular highlight on shadow-side cheek"},
	{Key: "Butterfly", Description: "butterfly lighting from above creating symmetrical shadow under nose"},
})

var Composition = newSet("composition", "Rule of Thirds", []Option{
	{Key: "Rule of Thirds", Description: "composed using the rule of thirds, with the main subject positioned off-center for dynamic visual interest"},
	{Key: "Centered Symmetrical", Description: "framed with perfect symmetry, the subject centered for balance and powerful impact"},
	{Key: "Leading Lines", Description: "incorporating strong leading lines that naturally guide the viewer's eye toward the main subject"},
	{Key: "Negative Space", Description: "utilizing generous negative space around the subject for a minimalist, focused composition"},
	{Key: "Environmental Context", Description: "placing the subject within their environment, showing context and telling a broader visual story"},
	{Key: "Dutch Angle", Description: "shot with a tilted Dutch angle for dramatic tension"},
	{Key: "Frame in Frame", Description: "using natural framing elements within the composition"},
})

var Quality = newSet("quality", "Photorealistic 8K", []Option{
	{Key: "Photorealistic 8K", Description: "ultra-realistic with physically-based rendering, accurate global illumination, and 8K detail"},
	{Key: "Film Analog - Portra 400", Description: "shot on Kodak Portra 400 film stock, featuring subtle organic grain and natural color response"},
	{Key: "Film Analog - Tri-X 400", Description: "captured on Kodak Tri-X 400 black and white film with classic grain structure"},
	{Key: "Editorial Commercial", Description: "high-end editorial quality with precise color grading and commercial-grade polish"},
	{Key: "Raw DSLR", Description: "unprocessed DSLR aesthetic with natural dynamic range and authentic sensor characteristics"},
	{Key: "Large Format Film", Description: "captured on large format 4x5 film with exceptional detail and tonal range"},
})

var Color = newSet("color", "Neutral Accurate", []Option{
	{Key: "Neutral Accurate", Description: "with neutral, true-to-life color tones maintaining accurate color reproduction"},
	{Key: "Warm Golden", Description: "with a warm color grade emphasizing golden and amber tones throughout"},
	{Key: "Cool Cinematic", Description: "with cool cinematic color temperature featuring blue and teal hues"},
	{Key: "Muted Earthy", Description: "with a desaturated, muted palette of subtle earth tones"},
	{Key: "Vibrant Saturated", Description: "with enhanced saturation for punchy, vivid colors while maintaining photorealistic quality"},
	{Key: "Monochrome B&W", Description: "rendered in rich black and white with deep shadows and bright highlights"},
})

var Mood = newSet("mood", "Serene Peaceful", []Option{
	{Key: "Serene Peaceful", Description: "The overall mood is serene and calm, creating a peaceful, contemplative atmosphere"},
	{Key: "Confident Powerful", Description: "The atmosphere conveys strength and self-assurance with subtle but commanding intensity"},
	{Key: "Intimate Warm", Description: "Creating an intimate, warm emotional connection with soft, inviting energy"},
	{Key: "Mysterious Dramatic", Description: "Establishing a mysterious, dramatic atmosphere with rich shadows and intrigue"},
	{Key: "Energetic Dynamic", Description: "Capturing dynamic energy with a sense of vibrant motion and vitality"},
	{Key: "Contemplative Quiet", Description: "Evoking a thoughtful, introspective quiet moment of reflection"},
})

// AspectRatios maps display labels to the ratio string emitted in the
// prompt's format sentence.
var AspectRatios = newSet("aspect_ratio", "Standard (3:2)", []Option{
	{Key: "Standard (3:2)", Description: "3:2"},
	{Key: "Square (1:1)", Description: "1:1"},
	{Key: "Portrait (2:3)", Description: "2:3"},
	{Key: "Widescreen (16:9)", Description: "16:9"},
	{Key: "Portrait Wide (9:16)", Description: "9:16"},
	{Key: "Cinema (2.39:1)", Description: "2.39:1"},
})
