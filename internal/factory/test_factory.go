package factory

import (
	"time"

	"github.com/mcoot/scrabble-go/internal/dependencies/mocks"
	"github.com/mcoot/scrabble-go/internal/model"
	"github.com/mcoot/scrabble-go/internal/storage/memory"
	"github.com/mcoot/scrabble-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// The mock random source never shuffles, so bags draw in symbol order.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, store, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestDictionary loads a small dictionary for testing
func (t *TestApp) LoadTestDictionary() error {
	words := []string{
		// 2-letter words
		"aa", "ab", "ad", "ae", "ag", "ah", "ai", "al", "am", "an", "ar", "as", "at",
		"aw", "ax", "ay", "ba", "be", "bi", "bo", "by", "da", "de", "do", "ed", "ef",
		"eh", "el", "em", "en", "er", "es", "ex", "fa", "go", "ha", "he", "hi", "ho",
		"id", "if", "in", "is", "it", "jo", "ka", "la", "li", "lo", "ma", "me", "mi",
		"mo", "mu", "my", "na", "ne", "no", "nu", "od", "oe", "of", "oh", "oi", "om",
		"on", "op", "or", "os", "ow", "ox", "oy", "pa", "pe", "pi", "qi", "re", "sh",
		"si", "so", "ta", "ti", "to", "uh", "um", "un", "up", "us", "ut", "we", "wo",
		"xi", "xu", "ya", "ye", "yo", "za",
		// 3-letter words
		"ace", "act", "add", "age", "aid", "air", "and", "ant", "arc", "are", "art",
		"bad", "bag", "bat", "bed", "bee", "big", "cab", "can", "cat", "cob", "cow",
		"dab", "day", "den", "dog", "ear", "eat", "egg", "fab", "fan", "gab", "god",
		"hat", "ice", "ink", "jab", "jar", "key", "lab", "mat", "nab", "net", "oat",
		"odd", "pat", "rat", "sat", "tab", "tan", "tea", "ten", "urn", "van", "wax",
		"yak", "zap", "zoo",
		// 4-letter words
		"aced", "bade", "bead", "cafe", "cats", "dace", "face", "fade", "jade",
		"qadi", "quiz", "zone",
	}
	return t.DictionaryService.LoadWords(words)
}

// RigGame fixes the racks and bag of a game, see testutil.RigGame
func (t *TestApp) RigGame(game *model.Game, bagSize int, racks ...string) error {
	return testutil.RigGame(game, bagSize, racks...)
}
