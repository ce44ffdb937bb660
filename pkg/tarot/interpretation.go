package tarot

// interpretations holds the canned reading text for cards that ship with the
// default deck. Everything else gets the generic line.
var interpretations = map[string]string{
	"The Fool":           "This card suggests that you are at the beginning of a significant life journey. Trust your instincts and embrace new opportunities with an open heart and mind.",
	"The Magician":       "You have all the tools and resources needed to manifest your desires. Focus your will and take decisive action to transform your dreams into reality.",
	"The High Priestess": "Listen to your inner voice and trust your intuition. There are hidden truths and deeper knowledge waiting to be discovered through quiet reflection.",
}

// Interpretation returns the reading text for a card name.
func Interpretation(cardName string) string {
	if text, ok := interpretations[cardName]; ok {
		return text
	}
	return "The universe is guiding you toward new understanding. Reflect on the symbols and imagery to unlock this card's personal message for you."
}
