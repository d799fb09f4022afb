package analytics

import (
	"sort"
	"strings"
	"unicode"
)

// tokenize splits free text into lowercase word tokens on non-alphabetic
// boundaries. "I feel great!" yields ["i", "feel", "great"].
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

// ExtractEmotionCloud tokenizes every non-empty journal note and every
// sub-mood tag, classifies each token against the lexicon, and returns
// the full list of distinct words ranked by frequency. Unknown tokens
// are kept as neutral. No truncation happens here; "top N" is a
// presentation concern.
func ExtractEmotionCloud(entries []Entry, lexicon Lexicon) []EmotionWord {
	counts := make(map[string]int)

	for _, e := range entries {
		if strings.TrimSpace(e.Notes) != "" {
			for _, token := range tokenize(e.Notes) {
				counts[token]++
			}
		}
		for _, tag := range e.SubMoods {
			for _, token := range tokenize(tag) {
				counts[token]++
			}
		}
	}

	cloud := make([]EmotionWord, 0, len(counts))
	for word, count := range counts {
		cloud = append(cloud, EmotionWord{
			Word:      word,
			Count:     count,
			Sentiment: lexicon.Classify(word),
		})
	}

	sort.Slice(cloud, func(i, j int) bool {
		if cloud[i].Count != cloud[j].Count {
			return cloud[i].Count > cloud[j].Count
		}
		return cloud[i].Word < cloud[j].Word
	})
	return cloud
}

// SentimentOverTime produces one signed sentiment value per day bucket:
// (positive token occurrences - negative) / total sentiment-bearing
// occurrences, in [-1, 1]. Days with no sentiment-bearing tokens emit a
// neutral 0 with HasSignal false instead of being dropped, preserving a
// continuous series for charting.
func SentimentOverTime(buckets []DayBucket, lexicon Lexicon) []SentimentPoint {
	points := make([]SentimentPoint, 0, len(buckets))

	for _, b := range buckets {
		var positive, negative int
		for _, e := range b.Entries {
			tokens := tokenize(e.Notes)
			for _, tag := range e.SubMoods {
				tokens = append(tokens, tokenize(tag)...)
			}
			for _, token := range tokens {
				switch lexicon.Classify(token) {
				case SentimentPositive:
					positive++
				case SentimentNegative:
					negative++
				}
			}
		}

		point := SentimentPoint{Date: b.Date}
		if total := positive + negative; total > 0 {
			point.Score = round2(float64(positive-negative) / float64(total))
			point.HasSignal = true
		}
		points = append(points, point)
	}
	return points
}
