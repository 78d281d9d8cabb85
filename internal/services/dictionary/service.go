package dictionary

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru"

	"github.com/mcoot/scrabble-go/internal/model"
	"github.com/mcoot/scrabble-go/internal/storage"
)

// DefaultBlankCacheSize bounds the number of memoized blank patterns
const DefaultBlankCacheSize = 4096

// Service provides dictionary/word validation functionality
type Service struct {
	storage storage.WordStore
	logger  *slog.Logger

	mu     sync.RWMutex
	words  map[string]struct{}
	loaded bool

	// blankCache maps a pattern such as "C*T" to a resolution
	blankCache *lru.Cache
}

// resolution is a cached outcome of a blank search
type resolution struct {
	word string
	ok   bool
}

var errEmptyWordList = fmt.Errorf("%w: word list is empty", model.ErrDictionaryLoadFailure)

// New creates a new DictionaryService
func New(storage storage.WordStore, logger *slog.Logger) *Service {
	cache, _ := lru.New(DefaultBlankCacheSize)
	return &Service{
		storage:    storage,
		logger:     logger,
		words:      make(map[string]struct{}),
		blankCache: cache,
	}
}

// LoadFromStorage loads dictionary words from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	return s.loadWords(words)
}

// LoadFromFile loads dictionary words from a file (one word per line)
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return s.LoadFromReader(ctx, file)
}

// LoadFromReader loads newline-delimited words and saves them to storage
func (s *Service) LoadFromReader(ctx context.Context, r io.Reader) error {
	words, err := ReadWordList(r)
	if err != nil {
		return err
	}

	// An empty list must not replace the stored one
	if len(words) == 0 {
		return errEmptyWordList
	}
	if err := s.storage.SaveDictionaryWords(ctx, words); err != nil {
		return err
	}

	return s.loadWords(words)
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	return s.loadWords(words)
}

// ReadWordList reads one word per line, skipping blank lines
func ReadWordList(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func (s *Service) loadWords(words []string) error {
	if len(words) == 0 {
		return errEmptyWordList
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.words = make(map[string]struct{}, len(words))
	for _, word := range words {
		// Store uppercase to match tile letters
		s.words[strings.ToUpper(word)] = struct{}{}
	}
	s.loaded = true
	s.blankCache.Purge()

	s.logger.Info("dictionary loaded", slog.Int("word_count", len(s.words)))
	return nil
}

// IsValidWord checks if a word exists in the dictionary.
// Each blank marker may stand for any letter A-Z.
// Words must be at least 2 characters.
func (s *Service) IsValidWord(word string) bool {
	_, ok := s.Resolve(word)
	return ok
}

// Resolve returns the dictionary word matched by word, with any blanks
// replaced by the letters that make it valid
func (s *Service) Resolve(word string) (string, bool) {
	if len(word) < 2 {
		return "", false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return "", false
	}

	upper := strings.ToUpper(word)
	if !strings.ContainsRune(upper, rune(model.Blank)) {
		_, ok := s.words[upper]
		return upper, ok
	}

	if cached, ok := s.blankCache.Get(upper); ok {
		r := cached.(resolution)
		return r.word, r.ok
	}

	chars := []byte(upper)
	ok := s.backtrackBlanks(chars, 0)
	r := resolution{ok: ok}
	if ok {
		r.word = string(chars)
	}
	s.blankCache.Add(upper, r)

	s.logger.Debug("resolved blank pattern",
		slog.String("pattern", upper),
		slog.Bool("valid", ok),
	)
	return r.word, r.ok
}

// backtrackBlanks tries every letter in each blank position from index on.
// On success chars holds the matching word. Callers must hold s.mu.
func (s *Service) backtrackBlanks(chars []byte, index int) bool {
	for index < len(chars) && chars[index] != byte(model.Blank) {
		index++
	}
	if index == len(chars) {
		_, ok := s.words[string(chars)]
		return ok
	}

	for c := byte('A'); c <= 'Z'; c++ {
		chars[index] = c
		if s.backtrackBlanks(chars, index+1) {
			return true
		}
	}
	chars[index] = byte(model.Blank)
	return false
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// Interface check
type ServiceInterface interface {
	IsValidWord(word string) bool
	Resolve(word string) (string, bool)
	IsLoaded() bool
	WordCount() int
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadFromReader(ctx context.Context, r io.Reader) error
	LoadWords(words []string) error
}

var _ ServiceInterface = (*Service)(nil)
