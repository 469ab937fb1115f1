package taxonomy

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Parse builds a Taxonomy from a line-oriented document.
//
// A trimmed line ending with ':' opens a category. A trimmed line starting
// with '-' is "- name: description" under the current category; only the
// first colon separates name from description. Everything else is ignored.
// Repeated keys overwrite earlier ones, and a reopened category starts
// empty again. Categories left without subcategories are dropped.
func Parse(lines []string) (Taxonomy, error) {
	b := newBuilder()
	current := -1
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		switch {
		case strings.HasSuffix(line, ":"):
			current = b.open(strings.TrimSuffix(line, ":"))
		case strings.HasPrefix(line, "-"):
			if current < 0 {
				return Taxonomy{}, &MalformedError{Line: i + 1, Text: raw, Reason: "subcategory before any category"}
			}
			name, desc, ok := strings.Cut(line[1:], ":")
			if !ok {
				return Taxonomy{}, &MalformedError{Line: i + 1, Text: raw, Reason: "subcategory without ':' separator"}
			}
			b.put(current, strings.TrimSpace(name), strings.TrimSpace(desc))
		}
	}
	return b.build(), nil
}

// ParseText splits text into lines and parses it. Used on model answers.
func ParseText(text string) (Taxonomy, error) {
	return Parse(strings.Split(text, "\n"))
}

// Load reads and parses a taxonomy file.
func Load(path string) (Taxonomy, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return Taxonomy{}, err
	}
	return Parse(lines)
}

// ReadLines returns the lines of a taxonomy document on disk.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open taxonomy: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read taxonomy: %w", err)
	}
	return lines, nil
}

// Serialize renders t in the grammar Parse accepts, so that
// Parse(Serialize(t)) reproduces t.
func Serialize(t Taxonomy) string {
	var sb strings.Builder
	for i, c := range t.categories {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(c.Name)
		sb.WriteString(":\n")
		for _, s := range c.Subcategories {
			fmt.Fprintf(&sb, " - %s: %s\n", s.Name, s.Description)
		}
	}
	return sb.String()
}

type builder struct {
	categories []Category
	index      map[string]int
}

func newBuilder() *builder {
	return &builder{index: map[string]int{}}
}

// open returns the position of the named category, clearing it if it
// already exists.
func (b *builder) open(name string) int {
	if i, ok := b.index[name]; ok {
		b.categories[i].Subcategories = nil
		return i
	}
	b.categories = append(b.categories, Category{Name: name})
	b.index[name] = len(b.categories) - 1
	return len(b.categories) - 1
}

func (b *builder) put(cat int, name, desc string) {
	subs := b.categories[cat].Subcategories
	for i := range subs {
		if subs[i].Name == name {
			subs[i].Description = desc
			return
		}
	}
	b.categories[cat].Subcategories = append(subs, Subcategory{Name: name, Description: desc})
}

func (b *builder) build() Taxonomy {
	t := Taxonomy{index: map[string]int{}}
	for _, c := range b.categories {
		if len(c.Subcategories) == 0 {
			continue
		}
		t.index[c.Name] = len(t.categories)
		t.categories = append(t.categories, c)
	}
	return t
}
