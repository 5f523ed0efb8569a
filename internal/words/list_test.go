package words

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

// Compile-time check that a List can feed the engine.
var _ hangman.WordSource = (*List)(nil)

func TestParse(t *testing.T) {
	input := `# comment
tree

  bird
Tree
planet
`
	l, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if l.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", l.Len())
	}
	if got := l.WordsOfLength(4); !slices.Equal(got, []string{"tree", "bird"}) {
		t.Errorf("WordsOfLength(4) = %v, expected [tree bird]", got)
	}
	if got := l.WordsOfLength(6); !slices.Equal(got, []string{"planet"}) {
		t.Errorf("WordsOfLength(6) = %v, expected [planet]", got)
	}
	if got := l.WordsOfLength(5); len(got) != 0 {
		t.Errorf("WordsOfLength(5) = %v, expected empty", got)
	}
	if got := l.Lengths(); !slices.Equal(got, []int{4, 6}) {
		t.Errorf("Lengths() = %v, expected [4 6]", got)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, input := range []string{"", "\n\n", "# only comments\n"} {
		if _, err := Parse(strings.NewReader(input)); !errors.Is(err, ErrEmptyList) {
			t.Errorf("Parse(%q) error = %v, expected ErrEmptyList", input, err)
		}
	}
}

func TestParseNormalizesComposition(t *testing.T) {
	// "café" spelled with a combining acute accent is five code points but
	// four characters once composed.
	l, err := Parse(strings.NewReader("cafe\u0301\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	got := l.WordsOfLength(4)
	if len(got) != 1 || got[0] != "caf\u00e9" {
		t.Errorf("WordsOfLength(4) = %q, expected [café]", got)
	}
}

func TestParseSkipsUnplayable(t *testing.T) {
	input := "rock-n-roll\ndon't\nr2d2\nice cream\ntree\n"
	l, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if l.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", l.Len())
	}
	if got := l.WordsOfLength(9); !slices.Equal(got, []string{"ice cream"}) {
		t.Errorf("WordsOfLength(9) = %v, expected [ice cream]", got)
	}

	if _, err := Parse(strings.NewReader("1234\n--\n")); !errors.Is(err, ErrEmptyList) {
		t.Errorf("Parse(no letters) error = %v, expected ErrEmptyList", err)
	}
}

func TestCheckPhrase(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"open sesame", "open sesame", true},
		{"  cat  ", "cat", true},
		{"cafe\u0301", "caf\u00e9", true},
		{"don't", "", false},
		{"r2d2", "", false},
		{"rock-n-roll", "", false},
		{"   ", "", false},
		{"\u0301", "", false},
	}

	for _, tt := range tests {
		got, err := CheckPhrase(tt.input)
		if tt.ok {
			if err != nil || got != tt.want {
				t.Errorf("CheckPhrase(%q) = %q, %v; expected %q", tt.input, got, err, tt.want)
			}
			continue
		}
		if !errors.Is(err, ErrUnplayable) {
			t.Errorf("CheckPhrase(%q) error = %v, expected ErrUnplayable", tt.input, err)
		}
	}
}

func TestDefaultListIsPlayable(t *testing.T) {
	l, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	for _, n := range l.Lengths() {
		for _, w := range l.WordsOfLength(n) {
			if !Playable(w) {
				t.Errorf("default word %q is not playable", w)
			}
		}
	}
}

func TestWordsOfLengthReturnsCopy(t *testing.T) {
	l, err := Parse(strings.NewReader("tree\nbird\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	got := l.WordsOfLength(4)
	got[0] = "XXXX"
	if l.WordsOfLength(4)[0] != "tree" {
		t.Error("WordsOfLength must not expose internal storage")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.txt")
	if err := os.WriteFile(path, []byte("kite\nrocket\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if l.Count(4) != 1 || l.Count(6) != 1 {
		t.Errorf("Count(4)=%d Count(6)=%d, expected 1 and 1", l.Count(4), l.Count(6))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestDefaultCoversDifficultyLengths(t *testing.T) {
	l, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	for _, d := range hangman.Difficulties() {
		n := d.ImpliedWordLength()
		if l.Count(n) == 0 {
			t.Errorf("default list has no words of length %d (%v)", n, d)
		}
		for _, w := range l.WordsOfLength(n) {
			if utf8.RuneCountInString(w) != n {
				t.Errorf("word %q listed under length %d", w, n)
			}
		}
	}
}

func TestLoadOrDefault(t *testing.T) {
	l, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault(\"\") failed: %v", err)
	}
	if l.Len() == 0 {
		t.Error("embedded list should not be empty")
	}
}
