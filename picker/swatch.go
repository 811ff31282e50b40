package picker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/example/chromapick/colormodel"
)

// Swatch is a saved, named color.
type Swatch struct {
	Name  string         `yaml:"name"`
	Color colormodel.RGB `yaml:"color"`
}

// Swatches is an ordered list of saved colors.
type Swatches struct {
	items []Swatch
	seq   int
}

type swatchFile struct {
	Swatches []Swatch `yaml:"swatches"`
}

// Add appends c under name. A blank name gets "swatch N".
func (s *Swatches) Add(name string, c colormodel.RGB) Swatch {
	s.seq++
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("swatch %d", s.seq)
	}
	sw := Swatch{Name: name, Color: c}
	s.items = append(s.items, sw)
	return sw
}

// Remove deletes the swatch at index i.
func (s *Swatches) Remove(i int) error {
	if i < 0 || i >= len(s.items) {
		return errors.Errorf("swatch index %d out of range [0,%d)", i, len(s.items))
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return nil
}

// At returns the swatch at index i.
func (s *Swatches) At(i int) (Swatch, bool) {
	if i < 0 || i >= len(s.items) {
		return Swatch{}, false
	}
	return s.items[i], true
}

func (s *Swatches) Len() int { return len(s.items) }

// Last returns the most recently added swatch.
func (s *Swatches) Last() (Swatch, bool) {
	return s.At(len(s.items) - 1)
}

// List returns a copy of the swatches.
func (s *Swatches) List() []Swatch {
	return append([]Swatch(nil), s.items...)
}

// Replace swaps in a new list.
func (s *Swatches) Replace(items []Swatch) {
	s.items = append([]Swatch(nil), items...)
	if len(s.items) > s.seq {
		s.seq = len(s.items)
	}
}

// Save writes the swatches to a YAML file, creating parent directories.
func (s *Swatches) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "create swatch directory")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create swatch file")
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(swatchFile{Swatches: s.items}); err != nil {
		return errors.Wrapf(err, "encode swatches to %s", path)
	}
	return enc.Close()
}

// LoadSwatches reads a file written by Save.
func LoadSwatches(path string) (*Swatches, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read swatch file")
	}
	var sf swatchFile
	if err := yaml.Unmarshal(b, &sf); err != nil {
		return nil, errors.Wrapf(err, "decode swatches from %s", path)
	}
	s := &Swatches{}
	s.Replace(sf.Swatches)
	return s, nil
}

// Merge appends other's swatches, skipping ones that already exist with
// the same name and color.
func (s *Swatches) Merge(other *Swatches) int {
	added := 0
	for _, sw := range other.items {
		dup := false
		for _, have := range s.items {
			if have == sw {
				dup = true
				break
			}
		}
		if !dup {
			s.items = append(s.items, sw)
			added++
		}
	}
	if len(s.items) > s.seq {
		s.seq = len(s.items)
	}
	return added
}
