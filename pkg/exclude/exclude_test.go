package exclude

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	apperrors "github.com/matzehuels/addonscan/pkg/errors"
)

func TestNew(t *testing.T) {
	s := New([]string{"my-fork", "sabers", ""}, []string{"my-fork"})

	for _, name := range []string{"sabers", "@eugeneware/rocksdb", "node-gyp", "my-fork"} {
		if !s.Contains(name) {
			t.Errorf("Contains(%q) = false", name)
		}
	}
	if s.Contains("leveldown") {
		t.Error("Contains(leveldown) = true")
	}
	if s.Contains("") {
		t.Error("empty name should never be excluded")
	}

	want := len(New().Names()) + 1
	if s.Len() != want {
		t.Errorf("Len() = %d, want %d", s.Len(), want)
	}
}

func TestNamesSorted(t *testing.T) {
	names := New().Names()
	if !slices.IsSorted(names) {
		t.Error("Names() not sorted")
	}
}

func TestNilSet(t *testing.T) {
	var s *Set
	if s.Contains("sabers") || s.Len() != 0 || s.Names() != nil {
		t.Error("nil set should be empty")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		file    string
		content string
		want    []string
	}{
		{"list.yaml", "names:\n  - foo\n  - \"@scope/bar\"\n", []string{"foo", "@scope/bar"}},
		{"bare.yml", "- foo\n- bar\n", []string{"foo", "bar"}},
		{"empty.yaml", "", nil},
		{"list.toml", "names = [\"foo\", \"bar\"]\n", []string{"foo", "bar"}},
		{"list.txt", "# comment\nfoo\n\n  bar  # trailing\n", []string{"foo", "bar"}},
		{"noext", "foo\n", []string{"foo"}},
	}

	for _, tt := range tests {
		path := filepath.Join(dir, tt.file)
		if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
			t.Fatal(err)
		}
		got, err := Load(path)
		if err != nil {
			t.Errorf("Load(%s): %v", tt.file, err)
			continue
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("Load(%s) = %q, want %q", tt.file, got, tt.want)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.txt"))
	if !apperrors.Is(err, apperrors.ErrCodeFileNotFound) {
		t.Errorf("missing file: err = %v, want FILE_NOT_FOUND", err)
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("names = [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !apperrors.Is(err, apperrors.ErrCodeInvalidConfig) {
		t.Errorf("bad toml: err = %v, want INVALID_CONFIG", err)
	}
}
