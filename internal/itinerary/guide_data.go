package itinerary

import "github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/domain"

const guideLang = "es-ES"

// AudioGuides returns the narration catalog, keyed by activity. Tracks are
// pre-written scripts handed to the speech collaborator verbatim.
func AudioGuides() []domain.AudioTrack {
	out := make([]domain.AudioTrack, len(audioTracks))
	copy(out, audioTracks)
	return out
}

// Pronunciations returns the phrasebook for local place names
func Pronunciations() []domain.Pronunciation {
	out := make([]domain.Pronunciation, len(pronunciations))
	copy(out, pronunciations)
	return out
}

var audioTracks = []domain.AudioTrack{
	// On board the Flåm Railway (activity 4)
	{
		ID: "train-1", ActivityID: "4", Lang: guideLang,
		Title: "1. Leaving the Fjord (0-10 min)",
		Text:  "Welcome aboard the Flåmsbana. We are leaving the emerald waters of the Aurlandsfjord behind; in under an hour we will climb from sea level to almost nine hundred meters. Construction of this line began in 1923 and took nearly twenty years.",
	},
	{
		ID: "train-2", ActivityID: "4", Lang: guideLang,
		Title: "2. The Valley and Flåm Farm (10-25 min)",
		Text:  "The valley narrows here around the old Flåm farmsteads. Notice how quickly the coastal climate gives way to high-mountain terrain over only twenty kilometers of track.",
	},
	{
		ID: "train-3", ActivityID: "4", Lang: guideLang,
		Title: "3. Tunnels and Engineering (25-40 min)",
		Text:  "Twenty tunnels pierce the mountainside on this line, eighteen of them dug by hand. The track climbs at a gradient of one in eighteen, among the steepest of any standard-gauge railway in the world.",
	},
	{
		ID: "train-4", ActivityID: "4", Lang: guideLang,
		Title: "4. The Magic Stop: Kjosfossen (40-50 min)",
		Text:  "The train pauses at the Kjosfossen waterfall, a ninety-three meter drop fed by mountain snowmelt. Step out onto the platform for photos, and keep an eye out for the dancing huldra of the legend.",
	},
	{
		ID: "train-5", ActivityID: "4", Lang: guideLang,
		Title: "5. Arrival: Myrdal and the High Mountain (50-60 min)",
		Text:  "Myrdal station sits at eight hundred and sixty-seven meters, a junction on the Bergen line surrounded by bare mountain. Enjoy the view before the descent retraces the whole climb.",
	},

	// Fjord cruise (activity 6)
	{
		ID: "cruise-1", ActivityID: "6", Lang: guideLang,
		Title: "1. Sailing the Aurlandsfjord (0-30 min)",
		Text:  "We sail out over water more than four hundred meters deep, flanked by walls over a thousand meters tall. The Aurlandsfjord is a branch of the Sognefjord, the longest fjord in Norway.",
	},
	{
		ID: "cruise-2", ActivityID: "6", Lang: guideLang,
		Title: "2. The Turn into the Unknown (30-60 min)",
		Text:  "The boat turns into the Nærøyfjord, the narrowest fjord arm in the world and a UNESCO World Heritage site. At its tightest it is only two hundred and fifty meters wide.",
	},
	{
		ID: "cruise-3", ActivityID: "6", Lang: guideLang,
		Title: "3. The Narrow Pass: Bakka and the Silence (60-90 min)",
		Text:  "The hamlet of Bakka and its white wooden church appear on the starboard side. Listen: the electric boat makes almost no sound, and the silence here is part of the landscape.",
	},
	{
		ID: "cruise-4", ActivityID: "6", Lang: guideLang,
		Title: "4. Gudvangen, Land of Vikings (90-120 min)",
		Text:  "We dock at Gudvangen, home to a reconstructed Viking village. The name means the field of the gods, and markets were held on this shore for a thousand years.",
	},
	{
		ID: "cruise-5", ActivityID: "6", Lang: guideLang,
		Title: "5. The Return Bus through the Nærøy Valley (approx. 20 min)",
		Text:  "The shuttle bus returns through the Nærøydalen valley, past the old postal road and some of the steepest farmland in the country.",
	},

	// Stegastein bus tour (activity 7)
	{
		ID: "stegastein-1", ActivityID: "7", Lang: guideLang,
		Title: "1. Leaving Flåm: the Fjord at Ground Level (0-10 min)",
		Text:  "The bus follows the shoreline toward Aurland. From down here the scale of the fjord walls is at its most overwhelming.",
	},
	{
		ID: "stegastein-2", ActivityID: "7", Lang: guideLang,
		Title: "2. Aurland Village (10-20 min)",
		Text:  "Aurland is the administrative heart of the municipality, famous for its centuries-old shoe workshop and its salmon river.",
	},
	{
		ID: "stegastein-3", ActivityID: "7", Lang: guideLang,
		Title: "3. The Climb: the Snow Road (20-30 min)",
		Text:  "We climb the old Aurlandsfjellet snow road through eleven hairpin turns. The road is closed in winter and this stretch is the gateway to the high plateau.",
	},
	{
		ID: "stegastein-4", ActivityID: "7", Lang: guideLang,
		Title: "4. Arrival: the Stegastein Viewpoint (30-35 min)",
		Text:  "The platform hangs six hundred and fifty meters above the fjord. Walk to the glass edge and look straight down the Aurlandsfjord toward Flåm.",
	},

	// Flåm village center (activity 8)
	{
		ID: "flam-1", ActivityID: "8", Lang: guideLang,
		Title: "1. Flåm: the Hidden Treasure",
		Text:  "Flåm means little plain between steep mountains. Fewer than four hundred people live here year round, yet the village hosts hundreds of thousands of visitors every season.",
	},
	{
		ID: "flam-2", ActivityID: "8", Lang: guideLang,
		Title: "2. Atmosphere and Nature",
		Text:  "The contrast is the point: a working farm village wedged between waterfalls, with the fjord as its only road for most of its history.",
	},
	{
		ID: "flam-3", ActivityID: "8", Lang: guideLang,
		Title: "3. The Activity Center",
		Text:  "Around the harbor you will find the railway museum, the bakery and the wool shops. Everything is within five minutes on foot.",
	},
}

var pronunciations = []domain.Pronunciation{
	{Word: "Flåm", Phonetic: "/floːm/", Simplified: "FLAWM", Meaning: "Small plain"},
	{Word: "Flåmsbana", Phonetic: "/flɔmsbɑːnɑ/", Simplified: "FLAWMS-bah-na", Meaning: "The Flåm railway"},
	{Word: "Myrdal", Phonetic: "/myːrdɑl/", Simplified: "MUER-dahl", Meaning: "Marshy valley"},
	{Word: "Ægir", Phonetic: "/ˈɛːjiɾ/", Simplified: "EH-yir", Meaning: "Giant of the sea"},
	{Word: "Nærøyfjord", Phonetic: "/ˈnɛːrœɪfjɔr/", Simplified: "NEHR-oy-fyord", Meaning: "Narrow fjord"},
	{Word: "Stegastein", Phonetic: "/ˈstɛgɑstɑɪn/", Simplified: "STEH-ga-stine", Meaning: "Path stone"},
	{Word: "Gudvangen", Phonetic: "/ˈgʉdʋɑŋən/", Simplified: "GOOD-vang-en", Meaning: "Field of the gods"},
	{Word: "Takk", Phonetic: "/tak/", Simplified: "TAHK", Meaning: "Thank you"},
}
