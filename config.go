package main

// Hero image path inside the repo (relative).
// Recommended: 1280-1600px wide, ~400px tall.
const heroImagePath = "hero.jpg"

// targetLineChars is the target total characters per project line
// before the description gets truncated.
const targetLineChars = 120

// maxPerCategory caps items per category section (0 = unlimited).
const maxPerCategory = 0

// bio is the first-person profile paragraph.
const bio = "Mycologist, researcher, educator, consultant and keynote speaker " +
	"specializing in DNA barcoding, field photography, and fungal microscopy."

var taglineItems = []string{
	"Mycology + DNA barcoding",
	"Field photography",
	"Fungal microscopy",
}

type profileLink struct {
	Label string
	URL   string
}

// profileLinks are rendered as named markdown links at the bottom of
// the document, in this order.
var profileLinks = []profileLink{
	{"iNaturalist observations", "https://www.inaturalist.org/observations/alan_rockefeller"},
	{"Mushroom Observer", "https://mushroomobserver.org/observations?user=123"},
	{"Instagram", "https://www.instagram.com/alan_rockefeller"},
}

// otherCategory gathers repos without a curated assignment, sorted by
// stars then recency.
const otherCategory = "Other tools"

var categoryOrder = []string{
	"iNaturalist tools",
	"DNA & phylogenetics",
	"Photography & media",
	"Utilities",
}

type repoCategory struct {
	Repo     string
	Category string
}

// repoCategories assigns repos to their category heading. Ordering
// within a category follows the list order here.
var repoCategories = []repoCategory{
	// iNaturalist tools
	{"inat.label.py", "iNaturalist tools"},
	{"inat.finder.py", "iNaturalist tools"},
	{"inat.nearbyobservations.py", "iNaturalist tools"},
	{"inat.visualizer.py", "iNaturalist tools"},
	{"inat.photodownloader.py", "iNaturalist tools"},
	{"inat.orders.py", "iNaturalist tools"},
	{"motoinat.py", "iNaturalist tools"},
	{"inat-gb-name.pl", "iNaturalist tools"},
	// DNA & phylogenetics
	{"fixfasta.py", "DNA & phylogenetics"},
	{"Treecraft", "DNA & phylogenetics"},
	{"TreeWeaver", "DNA & phylogenetics"},
	{"convert.treebase.nexus.to.fasta.py", "DNA & phylogenetics"},
	// Photography & media
	{"faststack", "Photography & media"},
	{"stackcopy", "Photography & media"},
	{"findphotodates.py", "Photography & media"},
	{"video-rename", "Photography & media"},
	{"photos_to_presentation", "Photography & media"},
	// Utilities
	{"printfunction.sh", "Utilities"},
	{"rmdup.py", "Utilities"},
	{"stock.crash.monitor.py", "Utilities"},
}

// curatedBlurbs override GitHub descriptions for selected repos.
var curatedBlurbs = map[string]string{
	"inat.label.py":              "iNaturalist → herbarium label generator (RTF output)",
	"inat.finder.py":             "Fix mistyped iNaturalist observation IDs via permutation search",
	"faststack":                  "Fast photo viewer + lightweight editing + upload workflow",
	"inat.nearbyobservations.py": "Find nearby same-genus iNaturalist observations (CLI + browser extension)",
	"stackcopy":                  "Olympus import tool that understands in-camera focus stacking",
	"motoinat.py":                "Map Mushroom Observer observation IDs → iNaturalist IDs",
	"findphotodates.py":          "Inventory photos/videos by capture date (exiftool-backed)",
	"printfunction.sh":           "Print Python function definitions via AST (fast context for reviews)",
}

// boilerplatePrefixes are stripped from GitHub descriptions that
// weren't curated. Lowercase; matching is case-insensitive.
var boilerplatePrefixes = []string{
	"a python script which ",
	"a python script that ",
	"a python program which ",
	"a python program that ",
	"a perl script which ",
	"a perl script that ",
	"a bash script which ",
	"a bash script that ",
	"a gui ",
}
