// Package content holds the portfolio copy and its YAML loader.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Stat is an about-section counter.
type Stat struct {
	Number int    `yaml:"number"`
	Label  string `yaml:"label"`
	Suffix string `yaml:"suffix"`
}

// Skill is a skill card with a progress bar.
type Skill struct {
	Name     string `yaml:"name"`
	Level    int    `yaml:"level"`
	Category string `yaml:"category"`
}

// Project is a project card.
type Project struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Technologies []string `yaml:"technologies"`
	Image        string   `yaml:"image"`
	GitHub       string   `yaml:"github"`
	Live         string   `yaml:"live"`
	Featured     bool     `yaml:"featured"`
}

// ContactEntry is a contact info card.
type ContactEntry struct {
	Title       string `yaml:"title"`
	Value       string `yaml:"value"`
	Description string `yaml:"description"`
}

// Link is a social link shown in the hero.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Hero is the banner copy.
type Hero struct {
	Title    string `yaml:"title"`
	Accent   string `yaml:"accent"`
	Subtitle string `yaml:"subtitle"`
	Resume   string `yaml:"resume"`
	Social   []Link `yaml:"social"`
}

// About is the about-section copy.
type About struct {
	Paragraphs []string `yaml:"paragraphs"`
	Tags       []string `yaml:"tags"`
	Stats      []Stat   `yaml:"stats"`
}

// Portfolio is the whole page content.
type Portfolio struct {
	Name     string         `yaml:"name"`
	Hero     Hero           `yaml:"hero"`
	About    About          `yaml:"about"`
	Skills   []Skill        `yaml:"skills"`
	Projects []Project      `yaml:"projects"`
	Contact  []ContactEntry `yaml:"contact"`
}

// Load reads a portfolio from a YAML file.
func Load(path string) (Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Portfolio{}, fmt.Errorf("failed to read content: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates portfolio YAML. Unknown keys are rejected.
func Parse(data []byte) (Portfolio, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var p Portfolio
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Portfolio{}, fmt.Errorf("content is empty")
		}
		return Portfolio{}, fmt.Errorf("failed to decode content: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Portfolio{}, err
	}
	return p, nil
}

// Marshal encodes p as YAML.
func Marshal(p Portfolio) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("failed to encode content: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode content: %w", err)
	}
	return buf.Bytes(), nil
}

// Validate reports every problem in p that the page cannot render.
func (p Portfolio) Validate() error {
	var problems []string
	if strings.TrimSpace(p.Hero.Title) == "" {
		problems = append(problems, "hero.title must not be empty")
	}
	for i, s := range p.About.Stats {
		if s.Number < 0 {
			problems = append(problems, fmt.Sprintf("about.stats[%d].number must be >= 0", i))
		}
	}
	seen := map[string]struct{}{}
	for i, s := range p.Skills {
		if s.Level < 0 || s.Level > 100 {
			problems = append(problems, fmt.Sprintf("skills[%d].level must be between 0 and 100", i))
		}
		if _, ok := seen[s.Name]; ok {
			problems = append(problems, fmt.Sprintf("skills[%d].name %q is duplicated", i, s.Name))
		}
		seen[s.Name] = struct{}{}
	}
	for i, pr := range p.Projects {
		if strings.TrimSpace(pr.Title) == "" {
			problems = append(problems, fmt.Sprintf("projects[%d].title must not be empty", i))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid content:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}
