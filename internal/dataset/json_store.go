package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/julianstephens/lumibot/internal/models"
)

//go:embed fixtures/children.json
var defaultFixture []byte

// JSONStore serves children decoded once from a JSON fixture. It has no write path.
type JSONStore struct {
	children []models.Child
	index    map[string]int
}

// New builds a store from children, validating ids. The slice is deep-copied.
func New(children []models.Child) (*JSONStore, error) {
	if len(children) == 0 {
		return nil, fmt.Errorf("dataset must contain at least one child")
	}

	s := &JSONStore{
		children: make([]models.Child, 0, len(children)),
		index:    make(map[string]int, len(children)),
	}
	for _, c := range children {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("invalid dataset: %w", err)
		}
		if _, dup := s.index[c.ID]; dup {
			return nil, fmt.Errorf("invalid dataset: duplicate child id %q", c.ID)
		}
		s.index[c.ID] = len(s.children)
		s.children = append(s.children, c.Clone())
	}
	return s, nil
}

// Default returns the store for the built-in mock dataset.
func Default() (*JSONStore, error) {
	return Load(bytes.NewReader(defaultFixture))
}

// Load decodes a JSON array of children from r.
func Load(r io.Reader) (*JSONStore, error) {
	var children []models.Child
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&children); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	return New(children)
}

// LoadFile reads a dataset fixture from path.
func LoadFile(path string) (*JSONStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func (s *JSONStore) ListChildren() []models.Child {
	out := make([]models.Child, len(s.children))
	for i, c := range s.children {
		out[i] = c.Clone()
	}
	return out
}

func (s *JSONStore) GetChild(id string) (models.Child, error) {
	i, ok := s.index[id]
	if !ok {
		return models.Child{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return s.children[i].Clone(), nil
}

func (s *JSONStore) Tabs() []models.Tab {
	return slices.Clone(models.Tabs)
}

func (s *JSONStore) FirstChildID() string {
	return s.children[0].ID
}
