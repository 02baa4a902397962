package db

import "yomu/internal/models"

func meaning(gloss string, pos ...string) models.Meaning {
	return models.Meaning{Gloss: gloss, PartOfSpeech: pos, Misc: []string{}}
}

// DevEntries is a small fixture dictionary covering the demo sentences,
// including several readings of た so disambiguation has something to narrow.
var DevEntries = []models.Entry{
	{Sequence: 1008630, Readings: []string{"とても", "とっても"}, Meanings: []models.Meaning{
		meaning("very; awfully; exceedingly", "&adv;"),
		meaning("(not) at all; by no means", "&adv;"),
	}},
	{Sequence: 1605820, Kanji: []string{"良い", "善い", "好い"}, Readings: []string{"よい", "いい"}, Meanings: []models.Meaning{
		meaning("good; excellent; fine; nice", "&adj-i;"),
		meaning("sufficient; enough", "&adj-i;"),
	}},
	{Sequence: 1582640, Kanji: []string{"寒い"}, Readings: []string{"さむい"}, Meanings: []models.Meaning{
		meaning("cold (e.g. weather)", "&adj-i;"),
	}},
	{Sequence: 1628500, Readings: []string{"です"}, Meanings: []models.Meaning{
		meaning("be; is", "&cop;", "&aux-v;"),
	}},
	{Sequence: 2654250, Readings: []string{"た"}, Meanings: []models.Meaning{
		meaning("did / (have) done", "&aux-v;"),
	}},
	{Sequence: 1442730, Kanji: []string{"田"}, Readings: []string{"た"}, Meanings: []models.Meaning{
		meaning("rice field", "&n;"),
	}},
	{Sequence: 1578170, Kanji: []string{"他"}, Readings: []string{"た", "ほか"}, Meanings: []models.Meaning{
		meaning("other (esp. people and abstract matters)", "&n;", "&adj-no;"),
	}},
	{Sequence: 1416870, Kanji: []string{"多"}, Readings: []string{"た"}, Meanings: []models.Meaning{
		meaning("multi-", "&pref;"),
	}},
	{Sequence: 1467640, Kanji: []string{"猫"}, Readings: []string{"ねこ"}, Meanings: []models.Meaning{
		meaning("cat (esp. the domestic cat)", "&n;"),
	}},
}
