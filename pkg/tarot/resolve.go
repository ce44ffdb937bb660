package tarot

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// embeddedNumber matches the first 1-2 digit run in a token. Used by the loose
// Minor Arcana fallback; this is a heuristic and will happily pick up digits
// that belong to a date or resolution tag embedded in a filename.
var embeddedNumber = regexp.MustCompile(`\d{1,2}`)

// ResolveCardName maps a normalized filename token to a card identity.
// It is a total function: any input produces some identity, unrecognized
// tokens fall back to a best-effort display name in the Major bucket.
//
// Resolution order is significant and matches the upload pipeline's contract:
// card-back detection first, then the Major Arcana table, then structured and
// loose Minor Arcana matching, then the generic fallback.
func ResolveCardName(token string) CardIdentity {
	// "cardback_wands" is a card back, not a Wands card.
	if strings.Contains(token, "back") {
		return CardIdentity{IsCardBack: true}
	}

	if major, ok := majorArcana[token]; ok {
		number := major.number
		return CardIdentity{
			Name:   major.name,
			Arcana: ArcanaMajor,
			Number: &number,
		}
	}

	for _, suit := range suits {
		if !strings.Contains(token, string(suit)) {
			continue
		}

		// Structured match: any underscore-delimited part that is a known
		// rank token, so "ace_of_wands", "ace_wands" and "01_wands" all hit.
		for _, part := range strings.Split(token, "_") {
			if rank, ok := rankTokens[part]; ok {
				return minorIdentity(suit, rank)
			}
		}

		// Loose fallback: a suit is present but no rank token matched, try
		// any embedded 1-2 digit number in the valid rank range.
		if digits := embeddedNumber.FindString(token); digits != "" {
			if rank, err := strconv.Atoi(digits); err == nil && rank >= 1 && rank <= 14 {
				return minorIdentity(suit, rank)
			}
		}
	}

	// Unresolved: not a classification, just a readable display name.
	return CardIdentity{
		Name:   titleCase(token),
		Arcana: ArcanaMajor,
	}
}

func minorIdentity(suit Suit, rank int) CardIdentity {
	number := rank
	return CardIdentity{
		Name:   fmt.Sprintf("%s of %s", rankNames[rank], suitNames[suit]),
		Arcana: ArcanaMinor,
		Suit:   suit,
		Number: &number,
	}
}

// titleCase turns "my_weird_file_17" into "My Weird File 17".
func titleCase(token string) string {
	words := strings.Fields(strings.ReplaceAll(token, "_", " "))
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
