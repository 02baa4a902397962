package analyzer

import "yomu/internal/models"

// Segment groups tokens into words. Punctuation is always a word of its own.
// A token whose base equals its surface is not a conjugated form and closes
// the word in progress; any other token extends it.
func Segment(tokens []models.Token) models.Sentence {
	var (
		words   models.Sentence
		current []models.Token
	)
	flush := func() {
		if len(current) > 0 {
			words = append(words, models.NewWord(current))
			current = nil
		}
	}

	for _, t := range tokens {
		switch {
		case t.Class == models.ClassDummy:
			continue
		case t.IsPunctuation():
			flush()
			words = append(words, models.NewWord([]models.Token{t}))
		case t.Surface == t.Base:
			current = append(current, t)
			flush()
		default:
			current = append(current, t)
		}
	}
	flush()
	return words
}
