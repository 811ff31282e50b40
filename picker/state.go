package picker

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/example/chromapick/colormodel"
)

// State is what the picker remembers between runs.
type State struct {
	Color    colormodel.RGB `yaml:"color"`
	Swatches []Swatch       `yaml:"swatches,omitempty"`
}

type stateFile struct {
	Color    *colormodel.RGB `yaml:"color"`
	Swatches []Swatch        `yaml:"swatches,omitempty"`
}

// SaveState writes s as YAML to statePath.
func SaveState(statePath string, s State) error {
	b, err := encodeState(s)
	if err != nil {
		return err
	}
	return writeState(statePath, b)
}

func encodeState(s State) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&s); err != nil {
		return nil, errors.Wrap(err, "encode state")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "encode state")
	}
	return buf.Bytes(), nil
}

// writeState replaces statePath by renaming a finished temp file over it,
// so readers see either the old document or the new one.
func writeState(statePath string, b []byte) error {
	dir := filepath.Dir(statePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "create state directory")
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(statePath)+".*")
	if err != nil {
		return errors.Wrap(err, "write state")
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(err, "write state")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "write state")
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "write state")
	}
	if err := os.Rename(tmp.Name(), statePath); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "write state")
	}
	return nil
}

// LoadState reads a state file written by SaveState. A document without
// a color is rejected.
func LoadState(statePath string) (State, error) {
	b, err := os.ReadFile(statePath)
	if err != nil {
		return State{}, err
	}
	return decodeState(statePath, b)
}

func decodeState(statePath string, b []byte) (State, error) {
	var sf stateFile
	if err := yaml.Unmarshal(b, &sf); err != nil {
		return State{}, errors.Wrapf(err, "decode state %s", statePath)
	}
	if sf.Color == nil {
		return State{}, errors.Errorf("state %s: missing color", statePath)
	}
	return State{Color: *sf.Color, Swatches: sf.Swatches}, nil
}
