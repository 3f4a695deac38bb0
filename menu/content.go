package menu

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/selmenu/buffer"
)

// contentFile is the YAML form of menu content:
//
//	groups:
//	  - - label: Bold
//	      key: ctrl+b
//	      when: selection
type contentFile struct {
	Groups [][]itemSpec `yaml:"groups"`
}

type itemSpec struct {
	Label string `yaml:"label"`
	Key   string `yaml:"key"`
	When  string `yaml:"when"`
}

// Conditions accepted in an item's "when" field.
const (
	WhenAlways     = "always"
	WhenSelection  = "selection"
	WhenSingleLine = "single-line"
	WhenMultiLine  = "multi-line"
)

// LoadContentFile reads menu content from a YAML file.
func LoadContentFile(path string) ([]Group, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	groups, err := LoadContent(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return groups, nil
}

// LoadContent decodes YAML menu content. Every item needs a label; "when"
// maps to the item's Enable predicate.
func LoadContent(r io.Reader) ([]Group, error) {
	var file contentFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoContent
		}
		return nil, fmt.Errorf("decode menu content: %w", err)
	}

	groups := make([]Group, 0, len(file.Groups))
	for gi, specs := range file.Groups {
		group := make(Group, 0, len(specs))
		for ii, spec := range specs {
			label := strings.TrimSpace(spec.Label)
			if label == "" {
				return nil, fmt.Errorf("group %d item %d: label is required", gi, ii)
			}
			enable, err := enablePredicate(spec.When)
			if err != nil {
				return nil, fmt.Errorf("group %d item %d (%s): %w", gi, ii, label, err)
			}
			group = append(group, Item{Label: label, Key: strings.TrimSpace(spec.Key), Enable: enable})
		}
		groups = append(groups, group)
	}
	if countItems(groups) == 0 {
		return nil, ErrNoContent
	}
	return groups, nil
}

func enablePredicate(when string) (func(buffer.State) bool, error) {
	switch strings.ToLower(strings.TrimSpace(when)) {
	case "", WhenAlways:
		return nil, nil
	case WhenSelection:
		return func(s buffer.State) bool { return !s.Selection.Empty() }, nil
	case WhenSingleLine:
		return func(s buffer.State) bool {
			return !s.Selection.Empty() && s.Selection.Anchor.Row == s.Selection.Head.Row
		}, nil
	case WhenMultiLine:
		return func(s buffer.State) bool { return s.Selection.Anchor.Row != s.Selection.Head.Row }, nil
	default:
		return nil, fmt.Errorf("unknown condition %q", when)
	}
}
