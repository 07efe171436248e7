package application

import (
	"context"
	"encoding/json"
	"log/slog"

	"roadmap/internal/domain"
	"roadmap/internal/ports"
)

// DefaultStorageKey is the key the catalog is stored under
const DefaultStorageKey = "roadmapData"

// EncodeCatalog serialises the catalog as compact JSON for storage
func EncodeCatalog(c domain.Catalog) ([]byte, error) {
	if c == nil {
		c = domain.Catalog{}
	}
	return json.Marshal(c)
}

// EncodeExport serialises the catalog as two-space indented JSON
func EncodeExport(c domain.Catalog) ([]byte, error) {
	if c == nil {
		c = domain.Catalog{}
	}
	return json.MarshalIndent(c, "", "  ")
}

// DecodeCatalog validates and parses a progress document
func DecodeCatalog(data []byte) (domain.Catalog, error) {
	if err := ValidateDocument(data); err != nil {
		return nil, err
	}

	var c domain.Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	if c == nil {
		c = domain.Catalog{}
	}
	return c, nil
}

// Persistence stores the catalog as one JSON document in a key-value store
type Persistence struct {
	kv     ports.KeyValueStore
	key    string
	logger *slog.Logger
}

// NewPersistence creates a persistence adapter. An empty key uses DefaultStorageKey.
func NewPersistence(kv ports.KeyValueStore, key string, logger *slog.Logger) *Persistence {
	if key == "" {
		key = DefaultStorageKey
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Persistence{kv: kv, key: key, logger: logger}
}

// Key returns the storage key
func (p *Persistence) Key() string {
	return p.key
}

// Load returns the stored catalog, or nil when nothing is stored
func (p *Persistence) Load(ctx context.Context) (domain.Catalog, error) {
	data, err := p.kv.Get(ctx, p.key)
	if err != nil {
		return nil, &PersistenceError{Op: "read", Err: err}
	}
	if data == nil {
		return nil, nil
	}

	c, err := DecodeCatalog(data)
	if err != nil {
		return nil, &PersistenceError{Op: "decode", Err: err}
	}
	return c, nil
}

// Save writes the catalog
func (p *Persistence) Save(ctx context.Context, c domain.Catalog) error {
	data, err := EncodeCatalog(c)
	if err != nil {
		return &PersistenceError{Op: "encode", Err: err}
	}
	if err := p.kv.Put(ctx, p.key, data); err != nil {
		return &PersistenceError{Op: "write", Err: err}
	}
	p.logger.Debug("catalog saved", "key", p.key, "bytes", len(data))
	return nil
}

// Clear removes the stored catalog
func (p *Persistence) Clear(ctx context.Context) error {
	if err := p.kv.Delete(ctx, p.key); err != nil {
		return &PersistenceError{Op: "delete", Err: err}
	}
	return nil
}
