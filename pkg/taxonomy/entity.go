package taxonomy

import (
	"errors"
	"fmt"
)

// Subcategory — одна операция внутри категории.
type Subcategory struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Category — именованная группа операций в порядке документа.
type Category struct {
	Name          string        `json:"name"`
	Subcategories []Subcategory `json:"subcategories"`
}

// Taxonomy — упорядоченное отображение категория → подкатегория → описание.
// Нулевое значение — пустая таксономия. После Parse не изменяется.
type Taxonomy struct {
	categories []Category
	index      map[string]int
}

var (
	ErrUnknownCategory    = errors.New("unknown category")
	ErrUnknownSubcategory = errors.New("unknown subcategory")
	ErrEmptyTopic         = errors.New("topic is empty")
)

// Len возвращает число категорий.
func (t Taxonomy) Len() int { return len(t.categories) }

// Categories — имена категорий в порядке документа.
func (t Taxonomy) Categories() []string {
	out := make([]string, 0, len(t.categories))
	for _, c := range t.categories {
		out = append(out, c.Name)
	}
	return out
}

// Subcategories возвращает копию подкатегорий указанной категории.
func (t Taxonomy) Subcategories(category string) ([]Subcategory, bool) {
	i, ok := t.index[category]
	if !ok {
		return nil, false
	}
	subs := t.categories[i].Subcategories
	out := make([]Subcategory, len(subs))
	copy(out, subs)
	return out, true
}

// Describe ищет описание пары категория/подкатегория.
func (t Taxonomy) Describe(category, subcategory string) (string, bool) {
	i, ok := t.index[category]
	if !ok {
		return "", false
	}
	for _, s := range t.categories[i].Subcategories {
		if s.Name == subcategory {
			return s.Description, true
		}
	}
	return "", false
}

// Map раскладывает таксономию во вложенные map, порядок теряется.
func (t Taxonomy) Map() map[string]map[string]string {
	out := make(map[string]map[string]string, len(t.categories))
	for _, c := range t.categories {
		subs := make(map[string]string, len(c.Subcategories))
		for _, s := range c.Subcategories {
			subs[s.Name] = s.Description
		}
		out[c.Name] = subs
	}
	return out
}

// Selection — проверенная тройка (тема, категория, подкатегория).
type Selection struct {
	Topic       string `json:"topic"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Description string `json:"description"`
}

// NewSelection проверяет выбор по таксономии t.
func NewSelection(t Taxonomy, topic, category, subcategory string) (Selection, error) {
	if topic == "" {
		return Selection{}, ErrEmptyTopic
	}
	if _, ok := t.index[category]; !ok {
		return Selection{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	desc, ok := t.Describe(category, subcategory)
	if !ok {
		return Selection{}, fmt.Errorf("%w: %q in %q", ErrUnknownSubcategory, subcategory, category)
	}
	return Selection{
		Topic:       topic,
		Category:    category,
		Subcategory: subcategory,
		Description: desc,
	}, nil
}
