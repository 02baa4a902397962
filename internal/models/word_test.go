package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSentence() Sentence {
	yoi := Entry{
		Sequence: 1605820,
		Kanji:    []string{"良い", "善い"},
		Readings: []string{"よい"},
		Meanings: []Meaning{{Gloss: "good", PartOfSpeech: []string{"&adj-i;"}, Misc: []string{}}},
	}
	ta := Entry{
		Sequence: 2654250,
		Readings: []string{"た"},
		Meanings: []Meaning{{Gloss: "did / (have) done", PartOfSpeech: []string{"&aux-v;"}, Misc: nil}},
	}
	return Sentence{
		{
			Surface: "とても",
			Tokens: []Token{{
				ID: 48613, Class: ClassKnown, Surface: "とても",
				POS:  []string{"副詞", "助詞類接続", "*", "*", "*"},
				Base: "とても", Reading: "トテモ", Pron: "トテモ",
			}},
		},
		NewWord([]Token{
			{
				ID: 327871, Class: ClassKnown, Surface: "良かっ",
				POS:  []string{"形容詞", "自立", "*", "*", "形容詞・アウオ段"},
				Base: "良い", Reading: "ヨカッ", Pron: "ヨカッ",
				Entries: []Entry{yoi},
			},
			{
				ID: 39233, Class: ClassKnown, Surface: "た",
				POS:  []string{"助動詞", "*", "*", "*", "特殊・タ"},
				Base: "た", Reading: "タ", Pron: "タ",
				Entries: []Entry{ta},
			},
		}),
		{
			Surface: "です",
			Tokens: []Token{{
				ID: 22049, Class: ClassKnown, Surface: "です",
				POS:  []string{"助動詞", "*", "*", "*", "特殊・デス"},
				Base: "です", Reading: "デス", Pron: "デス",
				Entries: []Entry{},
			}},
			Entries: []Entry{},
		},
		{
			Surface: "。",
			Tokens: []Token{{
				ID: 98, Class: ClassKnown, Surface: "。",
				POS:  []string{"記号", "句点", "*", "*", "*"},
				Base: "。", Reading: "。", Pron: "。",
			}},
		},
	}
}

func TestSentence_RoundTrip(t *testing.T) {
	s := sampleSentence()

	data, err := EncodeSentence(s)
	require.NoError(t, err)

	decoded, err := DecodeSentence(data)
	require.NoError(t, err)
	assert.Equal(t, s, decoded)
}

func TestNewWord_ConcatenatesSurface(t *testing.T) {
	w := sampleSentence()[1]
	assert.Equal(t, "良かった", w.Surface)
	assert.Len(t, w.Tokens, 2)
}

func TestSentence_Word(t *testing.T) {
	s := sampleSentence()

	tests := []struct {
		name  string
		index int
		ok    bool
	}{
		{"first", 0, true},
		{"last", 3, true},
		{"negative", -1, false},
		{"past end", 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, ok := s.Word(tt.index)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, s[tt.index].Surface, w.Surface)
			}
		})
	}
}

func TestDecodeSentence_MissingEntries(t *testing.T) {
	body := `[{"surface":"。","tokens":[{"id":1,"class":"KNOWN","surface":"。",
		"pos":["記号","句点","*","*","*"],"base":"。","reading":"。","pron":"。"}]}]`

	s, err := DecodeSentence([]byte(body))
	require.NoError(t, err)
	require.Len(t, s, 1)
	assert.Nil(t, s[0].Entries)
	assert.Nil(t, s[0].Tokens[0].Entries)
}

func TestDecodeSentence_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name:    "empty array",
			body:    `[]`,
			wantErr: ErrEmptySentence,
		},
		{
			name:    "word without tokens",
			body:    `[{"surface":"x","tokens":[]}]`,
			wantErr: ErrWordWithoutTokens,
		},
		{
			name:    "bad class",
			body:    `[{"surface":"x","tokens":[{"id":1,"class":"OTHER","surface":"x","pos":["名詞"]}]}]`,
			wantErr: ErrInvalidTokenClass,
		},
		{
			name:    "pos path too deep",
			body:    `[{"surface":"x","tokens":[{"id":1,"class":"KNOWN","surface":"x","pos":["a","b","c","d","e","f"]}]}]`,
			wantErr: ErrPOSTooDeep,
		},
		{
			name: "entry without readings",
			body: `[{"surface":"x","tokens":[{"id":1,"class":"KNOWN","surface":"x","pos":["名詞"],
				"entries":[{"sequence":1,"kanji":null,"readings":[],"meanings":null}]}]}]`,
			wantErr: ErrEntryWithoutReadings,
		},
		{
			name: "duplicate token id",
			body: `[{"surface":"猫","tokens":[{"id":3,"class":"KNOWN","surface":"猫","pos":["名詞"]}]},
				{"surface":"猫","tokens":[{"id":3,"class":"KNOWN","surface":"猫","pos":["名詞"]}]}]`,
			wantErr: ErrDuplicateTokenID,
		},
		{
			name: "legacy flat meanings",
			body: `[{"surface":"とても","tokens":[{"id":1,"class":"KNOWN","surface":"とても","pos":["副詞"],
				"entries":[{"sequence":1008630,"kanji":["迚も"],"readings":["とても"],"meanings":["very","awfully"]}]}]}]`,
			wantErr: ErrLegacyEntry,
		},
		{
			name: "legacy entry-level partofspeech",
			body: `[{"surface":"とても","tokens":[{"id":1,"class":"KNOWN","surface":"とても","pos":["副詞"]}],
				"entries":[{"sequence":1008630,"kanji":["迚も"],"readings":["とても"],"meanings":null,"partofspeech":"adverb (fukushi)"}]}]`,
			wantErr: ErrLegacyEntry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSentence([]byte(tt.body))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecodeSentence_NotJSON(t *testing.T) {
	_, err := DecodeSentence([]byte(`<html>oops</html>`))
	assert.Error(t, err)

	_, err = DecodeSentence([]byte(`{"surface":"x"}`))
	assert.Error(t, err)
}

func TestDecodeSentence_NullEntryPartOfSpeech(t *testing.T) {
	body := `[{"surface":"た","tokens":[{"id":1,"class":"KNOWN","surface":"た","pos":["助動詞"],
		"entries":[{"sequence":2654250,"kanji":null,"readings":["た"],"partofspeech":null,
		"meanings":[{"gloss":"did / (have) done","partofspeech":["&aux-v;"],"misc":[]}]}]}]}]`

	s, err := DecodeSentence([]byte(body))
	require.NoError(t, err)
	require.Len(t, s[0].Tokens[0].Entries, 1)
	assert.True(t, s[0].Tokens[0].Entries[0].DeclaresPartOfSpeech("&aux-v;"))
}
