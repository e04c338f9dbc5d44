package wordforms

// InflectionRule pairs a singular suffix with its plural counterpart.
// Rules are evaluated in declaration order and the first rule whose
// suffix matches wins, so longer suffixes must precede the shorter
// ones they contain ("ies" before the bare "s" fallback).
type InflectionRule struct {
	// Singular is the suffix of the singular form. Empty means the
	// rule matches any singular word (the "+s" fallback).
	Singular string
	// Plural is the suffix of the plural form.
	Plural string
	// ConsonantBefore requires the letter immediately preceding the
	// matched suffix to be a consonant. This keeps "boy" out of the
	// y→ies rule while "party" stays in.
	ConsonantBefore bool
	// Exceptions lists full words (either form) the rule must skip.
	// An excepted word falls through to the remaining rules.
	Exceptions []string
}

// defaultRules is the ordered suffix-rule table. Within each rule the
// plural suffix is tested before the singular one, so a rule can both
// classify and transform in a single pass.
var defaultRules = []InflectionRule{
	{Singular: "ss", Plural: "sses", Exceptions: []string{"posses"}},
	{Singular: "sh", Plural: "shes"},
	{Singular: "ch", Plural: "ches", Exceptions: []string{
		"stomach", "stomachs", "monarch", "monarchs", "epoch", "epochs",
		"matriarch", "matriarchs", "patriarch", "patriarchs",
		"ache", "aches", "headache", "headaches", "toothache", "toothaches",
		"cache", "caches", "niche", "niches", "avalanche", "avalanches",
		"mustache", "mustaches", "quiche", "quiches", "brioche", "brioches",
	}},
	{Singular: "x", Plural: "xes"},
	{Singular: "zz", Plural: "zzes"},
	{Singular: "y", Plural: "ies", ConsonantBefore: true, Exceptions: []string{
		"ties", "pies", "lies", "dies", "movies", "cookies", "zombies",
		"calories", "rookies", "selfies", "smoothies", "goalies",
		"birdies", "genies", "sorties",
	}},
	{Singular: "o", Plural: "oes", ConsonantBefore: true, Exceptions: []string{
		"photo", "photos", "piano", "pianos", "halo", "halos",
		"solo", "solos", "logo", "logos", "memo", "memos",
		"kilo", "kilos", "zero", "zeros", "pro", "pros",
		"auto", "autos", "taco", "tacos", "avocado", "avocados",
		"burrito", "burritos", "hello", "hellos",
		"shoes", "toes", "goes", "canoes", "oboes", "woes", "foes",
		"hoes", "throes", "aloes",
	}},
	{Singular: "", Plural: "s"},
}

// defaultIrregulars maps irregular singulars to their plurals. Both
// directions are consulted before any suffix rule.
var defaultIrregulars = map[string]string{
	"person": "people",
	"man":    "men",
	"woman":  "women",
	"child":  "children",
	"tooth":  "teeth",
	"foot":   "feet",
	"goose":  "geese",
	"mouse":  "mice",
	"louse":  "lice",
	"ox":     "oxen",

	"datum":      "data",
	"medium":     "media",
	"criterion":  "criteria",
	"phenomenon": "phenomena",
	"bacterium":  "bacteria",
	"curriculum": "curricula",
	"memorandum": "memoranda",
	"millennium": "millennia",
	"stratum":    "strata",

	"analysis":    "analyses",
	"axis":        "axes",
	"basis":       "bases",
	"crisis":      "crises",
	"diagnosis":   "diagnoses",
	"ellipsis":    "ellipses",
	"emphasis":    "emphases",
	"hypothesis":  "hypotheses",
	"oasis":       "oases",
	"parenthesis": "parentheses",
	"synopsis":    "synopses",
	"synthesis":   "syntheses",
	"thesis":      "theses",

	"alumnus":  "alumni",
	"cactus":   "cacti",
	"fungus":   "fungi",
	"nucleus":  "nuclei",
	"radius":   "radii",
	"stimulus": "stimuli",
	"syllabus": "syllabi",
	"corpus":   "corpora",
	"genus":    "genera",

	"wolf":  "wolves",
	"shelf": "shelves",
	"half":  "halves",
	"calf":  "calves",
	"self":  "selves",
	"elf":   "elves",
	"leaf":  "leaves",
	"loaf":  "loaves",
	"sheaf": "sheaves",
	"thief": "thieves",
	"scarf": "scarves",
	"wharf": "wharves",
	"dwarf": "dwarves",
	"hoof":  "hooves",
	"knife": "knives",
	"wife":  "wives",
	"life":  "lives",

	"quiz":    "quizzes",
	"waltz":   "waltzes",
	"fez":     "fezzes",
	"gas":     "gases",
	"bus":     "buses",
	"lens":    "lenses",
	"iris":    "irises",
	"atlas":   "atlases",
	"alias":   "aliases",
	"canvas":  "canvases",
	"bias":    "biases",
	"virus":   "viruses",
	"status":  "statuses",
	"campus":  "campuses",
	"census":  "censuses",
	"bonus":   "bonuses",
	"genius":  "geniuses",
	"circus":  "circuses",
	"octopus": "octopuses",
	"walrus":  "walruses",

	"index":    "indices",
	"matrix":   "matrices",
	"vertex":   "vertices",
	"appendix": "appendices",
}

// defaultUncountables are invariant nouns: the same surface form serves
// as singular and plural, so IsPlural and IsSingular both report true.
// Pluralia tantum ("scissors") are folded in since they behave the same
// way for query expansion.
var defaultUncountables = []string{
	"sheep", "deer", "fish", "moose", "swine", "bison",
	"salmon", "trout", "species", "series", "aircraft",
	"news", "information", "money", "rice", "water", "advice",
	"equipment", "furniture", "luggage", "clothing", "software",
	"feedback", "research", "evidence", "traffic", "music",
	"homework", "weather", "gold", "wood", "staff", "headquarters",
	"pants", "jeans", "shorts", "scissors", "trousers", "clothes",
}
