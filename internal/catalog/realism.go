package catalog

// RealismAnchors are the fixed closing sentences that steer an image
// generator away from synthetic, CGI-looking output. Unrecognized modes
// resolve to the "standard" anchor.
var RealismAnchors = newSet("realism_mode", "standard", []Option{
	{
		Key: "standard",
		Description: "This should look like an authentic photograph taken with a professional DSLR camera, " +
			"with natural lighting physics, realistic material properties, and lifelike detail.",
	},
	{
		Key: "strict_no_cgi",
		Description: "Render as authentic photography with zero CGI, plastic, or airbrushed effects. " +
			"Maintain natural skin texture, visible pores, real fabric weave, and organic imperfections. " +
			"Avoid any artificial smoothing, digital retouching, or computer-generated appearance. " +
			"This must look like it was captured with a real camera sensor.",
	},
	{
		Key: "natural_unretouched",
		Description: "Completely natural and unretouched photography with authentic textures. " +
			"No digital smoothing, no plastic skin, no airbrushing, no CGI elements. " +
			"Real camera optics, natural lighting physics, genuine material properties.",
	},
	{
		Key: "photojournalism",
		Description: "Documentary-style authentic photography with journalistic integrity. " +
			"No manipulation, no artificial enhancement, true-to-life representation " +
			"with all natural imperfections and organic characteristics preserved.",
	},
})
