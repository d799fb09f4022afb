package analytics

// Lexicon is a fixed, hand-maintained word-to-sentiment lookup table.
// This is closed-list classification, not a trained model: tokens absent
// from the lexicon are neutral by default rather than discarded.
type Lexicon map[string]Sentiment

// Classify returns the sentiment of a lowercase token.
func (l Lexicon) Classify(token string) Sentiment {
	if s, ok := l[token]; ok {
		return s
	}
	return SentimentNeutral
}

// DefaultLexicon is the built-in English sentiment word list. A swappable
// table so the list can be extended or localized without touching the
// extraction algorithms.
var DefaultLexicon = Lexicon{
	// positive
	"happy":     SentimentPositive,
	"joy":       SentimentPositive,
	"joyful":    SentimentPositive,
	"excited":   SentimentPositive,
	"grateful":  SentimentPositive,
	"thankful":  SentimentPositive,
	"love":      SentimentPositive,
	"loved":     SentimentPositive,
	"great":     SentimentPositive,
	"amazing":   SentimentPositive,
	"wonderful": SentimentPositive,
	"peaceful":  SentimentPositive,
	"relaxed":   SentimentPositive,
	"proud":     SentimentPositive,
	"hopeful":   SentimentPositive,
	"energetic": SentimentPositive,
	"euphoric":  SentimentPositive,
	"content":   SentimentPositive,
	"calm":      SentimentPositive,
	"fun":       SentimentPositive,
	"good":      SentimentPositive,
	"better":    SentimentPositive,
	"motivated": SentimentPositive,
	"inspired":  SentimentPositive,

	// negative
	"sad":         SentimentNegative,
	"angry":       SentimentNegative,
	"anxious":     SentimentNegative,
	"anxiety":     SentimentNegative,
	"stressed":    SentimentNegative,
	"stress":      SentimentNegative,
	"depressed":   SentimentNegative,
	"overwhelmed": SentimentNegative,
	"lonely":      SentimentNegative,
	"tired":       SentimentNegative,
	"exhausted":   SentimentNegative,
	"worried":     SentimentNegative,
	"afraid":      SentimentNegative,
	"scared":      SentimentNegative,
	"hopeless":    SentimentNegative,
	"terrible":    SentimentNegative,
	"awful":       SentimentNegative,
	"bad":         SentimentNegative,
	"worse":       SentimentNegative,
	"hurt":        SentimentNegative,
	"pain":        SentimentNegative,
	"frustrated":  SentimentNegative,
	"irritable":   SentimentNegative,
	"restless":    SentimentNegative,
	"crying":      SentimentNegative,
}
