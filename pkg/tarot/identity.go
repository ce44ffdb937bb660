package tarot

// Arcana classifies a tarot card as a trump or a suited card
type Arcana string

const (
	ArcanaMajor Arcana = "major"
	ArcanaMinor Arcana = "minor"
)

// Suit is one of the four Minor Arcana suits. Major Arcana cards carry no suit.
type Suit string

const (
	SuitWands     Suit = "wands"
	SuitCups      Suit = "cups"
	SuitSwords    Suit = "swords"
	SuitPentacles Suit = "pentacles"
)

// CardIdentity is the canonical identity a filename resolves to.
// When IsCardBack is set the remaining fields are meaningless.
type CardIdentity struct {
	Name       string
	Arcana     Arcana
	Suit       Suit // empty for Major Arcana
	Number     *int // 0-21 for Major, 1-14 for Minor, nil when unresolved
	IsCardBack bool
}

type majorCard struct {
	name   string
	number int
}

// majorArcana maps normalized filename tokens to the 22 trump cards.
// Every card is keyed both with and without the leading article so that
// "the_fool" and "fool" resolve identically.
var majorArcana = map[string]majorCard{
	"the_fool":             {"The Fool", 0},
	"fool":                 {"The Fool", 0},
	"the_magician":         {"The Magician", 1},
	"magician":             {"The Magician", 1},
	"the_high_priestess":   {"The High Priestess", 2},
	"high_priestess":       {"The High Priestess", 2},
	"the_empress":          {"The Empress", 3},
	"empress":              {"The Empress", 3},
	"the_emperor":          {"The Emperor", 4},
	"emperor":              {"The Emperor", 4},
	"the_hierophant":       {"The Hierophant", 5},
	"hierophant":           {"The Hierophant", 5},
	"the_lovers":           {"The Lovers", 6},
	"lovers":               {"The Lovers", 6},
	"the_chariot":          {"The Chariot", 7},
	"chariot":              {"The Chariot", 7},
	"the_strength":         {"Strength", 8},
	"strength":             {"Strength", 8},
	"the_hermit":           {"The Hermit", 9},
	"hermit":               {"The Hermit", 9},
	"the_wheel_of_fortune": {"Wheel of Fortune", 10},
	"wheel_of_fortune":     {"Wheel of Fortune", 10},
	"the_justice":          {"Justice", 11},
	"justice":              {"Justice", 11},
	"the_hanged_man":       {"The Hanged Man", 12},
	"hanged_man":           {"The Hanged Man", 12},
	"the_death":            {"Death", 13},
	"death":                {"Death", 13},
	"the_temperance":       {"Temperance", 14},
	"temperance":           {"Temperance", 14},
	"the_devil":            {"The Devil", 15},
	"devil":                {"The Devil", 15},
	"the_tower":            {"The Tower", 16},
	"tower":                {"The Tower", 16},
	"the_star":             {"The Star", 17},
	"star":                 {"The Star", 17},
	"the_moon":             {"The Moon", 18},
	"moon":                 {"The Moon", 18},
	"the_sun":              {"The Sun", 19},
	"sun":                  {"The Sun", 19},
	"the_judgement":        {"Judgement", 20},
	"judgement":            {"Judgement", 20},
	"the_world":            {"The World", 21},
	"world":                {"The World", 21},
}

// rankTokens maps every accepted rank spelling to its numeric rank.
// Numerals 1-9 are accepted both bare and zero-padded, and the spelled-out
// words two..ten cover alternate deck naming conventions.
var rankTokens = map[string]int{
	"ace": 1, "1": 1, "01": 1,
	"2": 2, "02": 2, "two": 2,
	"3": 3, "03": 3, "three": 3,
	"4": 4, "04": 4, "four": 4,
	"5": 5, "05": 5, "five": 5,
	"6": 6, "06": 6, "six": 6,
	"7": 7, "07": 7, "seven": 7,
	"8": 8, "08": 8, "eight": 8,
	"9": 9, "09": 9, "nine": 9,
	"10": 10, "ten": 10,
	"page":   11,
	"knight": 12,
	"queen":  13,
	"king":   14,
}

// rankNames gives the display word for each Minor Arcana rank.
var rankNames = map[int]string{
	1: "Ace", 2: "Two", 3: "Three", 4: "Four", 5: "Five",
	6: "Six", 7: "Seven", 8: "Eight", 9: "Nine", 10: "Ten",
	11: "Page", 12: "Knight", 13: "Queen", 14: "King",
}

// suits in canonical deck order, used for substring scanning during resolution.
var suits = []Suit{SuitWands, SuitCups, SuitSwords, SuitPentacles}

// suitNames gives the display word for each suit.
var suitNames = map[Suit]string{
	SuitWands:     "Wands",
	SuitCups:      "Cups",
	SuitSwords:    "Swords",
	SuitPentacles: "Pentacles",
}
