// Package curriculum provides the learning roadmap a fresh tracker starts from.
package curriculum

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"roadmap/internal/domain"
)

//go:embed default.yaml
var defaultYAML []byte

type document struct {
	Sections []section `yaml:"sections"`
}

type section struct {
	Title string  `yaml:"title"`
	Items []topic `yaml:"items"`
}

type topic struct {
	Title        string `yaml:"title"`
	Difficulty   string `yaml:"difficulty"`
	TimeEstimate string `yaml:"timeEstimate"`
}

// Default returns the embedded curriculum with every topic incomplete
func Default() domain.Catalog {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded curriculum is invalid: %v", err))
	}
	return c
}

// LoadFile reads a curriculum from a YAML file. An empty path yields the default.
func LoadFile(path string) (domain.Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading curriculum: %w", err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing curriculum %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a curriculum document. Progress fields are never read from
// a curriculum, so every topic starts incomplete.
func Parse(data []byte) (domain.Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Sections) == 0 {
		return nil, fmt.Errorf("curriculum has no sections")
	}

	c := make(domain.Catalog, 0, len(doc.Sections))
	for i, s := range doc.Sections {
		if strings.TrimSpace(s.Title) == "" {
			return nil, fmt.Errorf("section %d has no title", i)
		}
		sec := domain.Section{Title: s.Title, Items: make([]domain.Topic, 0, len(s.Items))}
		for j, t := range s.Items {
			if strings.TrimSpace(t.Title) == "" {
				return nil, fmt.Errorf("topic %d.%d has no title", i, j)
			}
			sec.Items = append(sec.Items, domain.Topic{
				Title:        t.Title,
				Difficulty:   domain.Difficulty(t.Difficulty),
				TimeEstimate: t.TimeEstimate,
			})
		}
		c = append(c, sec)
	}
	return c, nil
}
