// Package diskv stores progress documents as flat files using diskv.
package diskv

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/peterbourgon/diskv/v3"
)

var validKey = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Store is a diskv-backed implementation of ports.KeyValueStore.
// Every key is one file directly under the base path.
type Store struct {
	d        *diskv.Diskv
	basePath string
}

// New creates a store rooted at basePath
func New(basePath string) (*Store, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", basePath, err)
	}
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    func(string) []string { return []string{} },
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
	}, nil
}

// BasePath returns the directory files are written to
func (s *Store) BasePath() string {
	return s.basePath
}

func checkKey(key string) error {
	if !validKey.MatchString(key) {
		return fmt.Errorf("invalid key %q: only letters, digits, '.', '_' and '-' are allowed", key)
	}
	return nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	if !s.d.Has(key) {
		return nil, nil
	}
	v, err := s.d.Read(key)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}

func (s *Store) Put(_ context.Context, key string, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	return s.d.Write(key, value)
}

func (s *Store) Delete(_ context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if !s.d.Has(key) {
		return nil
	}
	return s.d.Erase(key)
}

// Close is a no-op; diskv holds no open handles
func (s *Store) Close() error {
	return nil
}
