package interaction

import "context"

// Record — итог одной сессии: тема, выбор в таксономии, улучшенный промпт и ответ.
type Record struct {
	Topic          string `json:"topic"`
	Category       string `json:"category"`
	Subcategory    string `json:"subcategory"`
	EnhancedPrompt string `json:"enhancedPrompt"`
	EnhancedAnswer string `json:"enhancedAnswer"`
}

// Repository — порт хранения записей. Таблица только дополняется.
type Repository interface {
	EnsureSchema(ctx context.Context) error
	Insert(ctx context.Context, rec Record) error
	List(ctx context.Context, limit, offset int) ([]Record, error)
}
