// Package settings persists video settings and parses start arguments.
package settings

import (
	"fmt"

	"github.com/quasilyte/gdata"
	"gopkg.in/yaml.v3"
)

// DefaultItem is the gdata item the video settings live in.
const DefaultItem = "video"

// Store loads and saves settings as key/value strings.
type Store interface {
	Load() (map[string]string, error)
	Save(values map[string]string) error
}

// GdataStore keeps the settings as a YAML document in a gdata item.
type GdataStore struct {
	manager *gdata.Manager
	item    string
}

func OpenGdata(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open settings storage: %w", err)
	}
	return &GdataStore{manager: m, item: DefaultItem}, nil
}

// Load returns an empty map when nothing was saved yet.
func (s *GdataStore) Load() (map[string]string, error) {
	data, err := s.manager.LoadItem(s.item)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.item, err)
	}
	return decode(data)
}

func (s *GdataStore) Save(values map[string]string) error {
	data, err := encode(values)
	if err != nil {
		return err
	}
	if err := s.manager.SaveItem(s.item, data); err != nil {
		return fmt.Errorf("save %s: %w", s.item, err)
	}
	return nil
}

func decode(data []byte) (map[string]string, error) {
	values := map[string]string{}
	if len(data) == 0 {
		return values, nil
	}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return values, nil
}

func encode(values map[string]string) ([]byte, error) {
	data, err := yaml.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	return data, nil
}

// MemoryStore is a Store held in memory, encoded the same way as on disk.
type MemoryStore struct {
	data []byte
}

func NewMemoryStore(values map[string]string) *MemoryStore {
	s := &MemoryStore{}
	if values != nil {
		s.data, _ = encode(values)
	}
	return s
}

func (s *MemoryStore) Load() (map[string]string, error) {
	return decode(s.data)
}

func (s *MemoryStore) Save(values map[string]string) error {
	data, err := encode(values)
	if err != nil {
		return err
	}
	s.data = data
	return nil
}

// Raw returns the encoded document.
func (s *MemoryStore) Raw() []byte {
	return s.data
}
