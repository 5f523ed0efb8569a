// Package words provides the candidate word source for phrase selection.
// A list is a line-delimited text resource indexed by character count and is
// immutable once parsed.
package words

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

//go:embed words.txt
var defaultWords []byte

var (
	// ErrEmptyList is returned when a source contains no usable entries.
	ErrEmptyList = errors.New("words: list is empty")
	// ErrUnplayable is returned for phrases with characters that cannot be
	// typed as a letter guess.
	ErrUnplayable = errors.New("words: phrase must contain only letters and spaces")
)

// Normalize NFC-composes s so every character is a single rune.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// Playable reports whether every rune of s is a letter or whitespace, and s
// has at least one letter.
func Playable(s string) bool {
	letters := 0
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			letters++
		case unicode.IsSpace(r):
		default:
			return false
		}
	}
	return letters > 0
}

// CheckPhrase normalizes a user-supplied phrase and rejects it if any
// character could never be guessed.
func CheckPhrase(s string) (string, error) {
	phrase := Normalize(strings.TrimSpace(s))
	if !Playable(phrase) {
		return "", fmt.Errorf("%w: %q", ErrUnplayable, s)
	}
	return phrase, nil
}

// List is an immutable word list indexed by length.
type List struct {
	byLength map[int][]string
	total    int
}

// Parse reads one word per line. Surrounding whitespace is trimmed, blank lines
// and lines starting with '#' are skipped, entries are NFC-normalized and
// de-duplicated case-insensitively (first spelling wins). Entries that are not
// Playable are skipped.
func Parse(r io.Reader) (*List, error) {
	l := &List{byLength: make(map[int][]string)}
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word := Normalize(line)
		if !Playable(word) {
			continue
		}
		key := strings.ToUpper(word)
		if seen[key] {
			continue
		}
		seen[key] = true

		n := utf8.RuneCountInString(word)
		l.byLength[n] = append(l.byLength[n], word)
		l.total++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("words: read list: %w", err)
	}

	if l.total == 0 {
		return nil, ErrEmptyList
	}
	return l, nil
}

// Load parses the list stored at path.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()

	l, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("words: %s: %w", path, err)
	}
	return l, nil
}

// Default returns the list embedded in the binary.
func Default() (*List, error) {
	return Parse(bytes.NewReader(defaultWords))
}

// LoadOrDefault loads path, or the embedded list when path is empty.
func LoadOrDefault(path string) (*List, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// WordsOfLength returns a copy of all entries with exactly n characters.
func (l *List) WordsOfLength(n int) []string {
	return slices.Clone(l.byLength[n])
}

// Count returns the number of entries with exactly n characters.
func (l *List) Count(n int) int {
	return len(l.byLength[n])
}

// Lengths returns the distinct entry lengths in ascending order.
func (l *List) Lengths() []int {
	lengths := make([]int, 0, len(l.byLength))
	for n := range l.byLength {
		lengths = append(lengths, n)
	}
	slices.Sort(lengths)
	return lengths
}

// Len returns the total number of entries.
func (l *List) Len() int {
	return l.total
}
