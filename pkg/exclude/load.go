package exclude

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	apperrors "github.com/matzehuels/addonscan/pkg/errors"
)

// list is the document shape shared by the YAML and TOML forms.
type list struct {
	Names []string `yaml:"names" toml:"names"`
}

// Load reads extra names from path. The format follows the extension:
//
//   - .yaml, .yml: a "names:" list or a bare sequence
//   - .toml: names = ["a", "b"]
//   - anything else: one name per line, "#" starts a comment
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "exclude file %s", path)
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "read exclude file %s", path)
	}

	var names []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		names, err = parseYAML(data)
	case ".toml":
		names, err = parseTOML(data)
	default:
		names, err = parseLines(data)
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "parse exclude file %s", path)
	}
	return names, nil
}

func parseYAML(data []byte) ([]string, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}
	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		var names []string
		err := root.Decode(&names)
		return names, err
	}
	var l list
	err := root.Decode(&l)
	return l.Names, err
}

func parseTOML(data []byte) ([]string, error) {
	var l list
	if _, err := toml.Decode(string(data), &l); err != nil {
		return nil, err
	}
	return l.Names, nil
}

func parseLines(data []byte) ([]string, error) {
	var names []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	return names, sc.Err()
}
