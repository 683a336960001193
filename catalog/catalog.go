// Package catalog holds the fixed set of visual categories and the text
// prompts used to derive one embedding per category. Each category carries
// two or more prompts that are averaged into a single vector; prompts
// describe what an image looks like, not metadata about it.
package catalog

import "sort"

var categories = map[string][]string{
	// Nature & scenery
	"nature": {
		"a photograph of natural scenery",
		"beautiful nature landscape with plants",
	},
	"forest": {
		"a dense forest with tall trees",
		"woodland photography with green foliage",
	},
	"ocean": {
		"ocean waves and sea water",
		"beach and coastline photography",
	},
	"mountain": {
		"mountain peaks and alpine landscape",
		"rocky mountains with snow",
	},
	"desert": {
		"sandy desert landscape with dunes",
		"arid desert environment",
	},
	"tropical": {
		"tropical beach with palm trees",
		"exotic tropical paradise",
	},
	"snow": {
		"snowy winter landscape with ice",
		"cold frozen winter scenery covered in white snow",
	},
	"rain": {
		"rainy weather with wet streets and puddles",
		"atmospheric rain falling on a moody scene",
	},
	"autumn": {
		"autumn foliage with red orange and yellow leaves",
		"fall season landscape with warm tones",
	},
	"flowers": {
		"close up of beautiful flowers blooming",
		"colorful flower field or garden photography",
	},
	"underwater": {
		"underwater ocean scene with fish and coral",
		"deep sea aquatic photography",
	},
	"sky": {
		"dramatic cloud formations in the sky",
		"wide open sky with atmospheric clouds",
	},
	"waterfall": {
		"waterfall cascading over rocks",
		"scenic waterfall in lush nature setting",
	},

	// Urban & architecture
	"city": {
		"urban cityscape with buildings and skyscrapers",
		"city skyline at night",
	},
	"urban": {
		"urban street scene",
		"metropolitan urban environment",
	},
	"architecture": {
		"architectural photography of buildings",
		"beautiful architecture",
	},
	"ruins": {
		"ancient ruins and overgrown abandoned architecture",
		"crumbling medieval ruins in a fantasy setting",
	},
	"castle": {
		"medieval castle or fortress on a hill",
		"grand fantasy castle with towers and turrets",
	},
	"neon": {
		"neon lights glowing in a dark city",
		"colorful neon signs and reflections at night",
	},

	// Abstract & minimal
	"abstract": {
		"abstract art with geometric patterns",
		"surreal abstract digital artwork",
	},
	"minimal": {
		"minimalist design with clean simple lines",
		"sparse minimalist composition",
	},
	"geometric": {
		"geometric patterns and shapes",
		"mathematical geometric artwork",
	},

	// Style / era
	"vintage": {
		"vintage retro style photography",
		"old fashioned vintage aesthetic",
	},
	"retro": {
		"retro 80s 90s aesthetic",
		"synthwave retro style artwork",
	},
	"steampunk": {
		"steampunk machinery with brass gears and steam",
		"victorian era steampunk aesthetic with mechanical elements",
	},
	"gothic": {
		"dark gothic architecture and atmosphere",
		"spooky gothic style with gargoyles and cathedrals",
	},
	"art_nouveau": {
		"art nouveau decorative illustration style",
		"ornate flowing organic art nouveau design",
	},
	"vaporwave": {
		"vaporwave aesthetic with pink purple and blue",
		"retro vaporwave style with greek statues and palm trees",
	},
	"watercolor": {
		"soft watercolor painting with flowing colors",
		"delicate watercolor art illustration",
	},
	"oil_painting": {
		"classical oil painting with rich brush strokes",
		"traditional oil painting fine art style",
	},
	"line_art": {
		"clean line art illustration with ink outlines",
		"black and white line drawing artwork",
	},
	"3d_render": {
		"photorealistic 3D rendered scene",
		"computer generated 3D artwork with realistic lighting",
	},
	"photography": {
		"professional photography with sharp detail",
		"real world photograph with natural lighting",
	},
	"illustration": {
		"hand drawn digital illustration artwork",
		"artistic illustration with bold lines and colors",
	},
	"digital_art": {
		"polished digital art created on a computer",
		"modern digital artwork with vivid colors and detail",
	},

	// Mood / atmosphere
	"dark": {
		"dark moody atmosphere",
		"shadowy low-key scene at night",
	},
	"bright": {
		"bright and vibrant colorful scene",
		"sunny cheerful high-key photography",
	},
	"sunset": {
		"sunset sky with golden orange colors",
		"golden hour twilight photography",
	},
	"pastel": {
		"soft pastel colors",
		"gentle muted pastel tones",
	},
	"vibrant": {
		"vibrant saturated colors",
		"colorful high contrast imagery",
	},
	"cozy": {
		"cozy warm comfortable interior",
		"homey relaxing atmosphere",
	},
	"serene": {
		"peaceful serene calm tranquil scene",
		"relaxing meditative quiet landscape",
	},
	"dramatic": {
		"dramatic intense scene with strong contrast",
		"epic dramatic lighting with dark clouds and light rays",
	},
	"horror": {
		"creepy horror scene with eerie atmosphere",
		"dark disturbing unsettling nightmare imagery",
	},

	// Anime & manga
	"anime": {
		"anime art style illustration",
		"japanese animation manga artwork",
	},
	"chibi": {
		"cute chibi character with big head small body",
		"kawaii super deformed chibi anime style",
	},
	"mecha": {
		"giant robot mecha anime illustration",
		"mechanical mech suit from japanese anime",
	},
	"shoujo": {
		"soft sparkly shoujo manga art with flowers",
		"romantic shoujo anime style with elegant characters",
	},

	// Fantasy & sci-fi
	"fantasy": {
		"fantasy magical landscape",
		"mythical enchanted fantasy artwork",
	},
	"sci_fi": {
		"futuristic science fiction scene with advanced technology",
		"sci-fi spaceship or space station environment",
	},
	"cyberpunk": {
		"cyberpunk neon city aesthetic",
		"futuristic technology neon lights",
	},
	"dragon": {
		"dragon mythical creature flying or breathing fire",
		"epic fantasy dragon illustration",
	},
	"samurai": {
		"japanese samurai warrior with katana sword",
		"samurai in traditional armor artwork",
	},
	"magic": {
		"magical spell casting with glowing runes and energy",
		"wizard or witch using mystical magical powers",
	},
	"space": {
		"outer space with stars and galaxies",
		"cosmic nebula and planets",
	},

	// Orientation / composition
	"portrait": {
		"portrait orientation vertical image",
		"tall vertical composition",
	},
	"landscape_orientation": {
		"landscape orientation horizontal wide image",
		"panoramic wide view",
	},
}

// Prompts returns a copy of the category to prompt mapping.
func Prompts() map[string][]string {
	out := make(map[string][]string, len(categories))
	for name, prompts := range categories {
		copied := make([]string, len(prompts))
		copy(copied, prompts)
		out[name] = copied
	}
	return out
}

// Names returns all category names in lexicographic order.
func Names() []string {
	out := make([]string, 0, len(categories))
	for name := range categories {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of categories in the catalog.
func Len() int {
	return len(categories)
}
