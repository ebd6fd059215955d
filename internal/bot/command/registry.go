package command

import (
	"github.com/Matthew11K/wa-media-bot/internal/domain/models"
)

// Registry хранит определения команд и разрешает токены (включая алиасы)
// в определение. Регистрация выполняется один раз при старте процесса,
// поэтому структура не защищена от конкурентных мутаций.
type Registry struct {
	defs    map[string]*models.CommandDefinition
	primary map[string]struct{}
	order   []string
}

func NewRegistry() *Registry {
	return &Registry{
		defs:    make(map[string]*models.CommandDefinition),
		primary: make(map[string]struct{}),
	}
}

// Register добавляет команду под её именем и всеми алиасами.
// Повторная регистрация того же имени молча перезаписывает предыдущее
// определение (последняя регистрация выигрывает) - это задокументированная
// опасность, а не защищаемый инвариант.
func (r *Registry) Register(def *models.CommandDefinition) {
	if _, seen := r.primary[def.Name]; !seen {
		r.primary[def.Name] = struct{}{}
		r.order = append(r.order, def.Name)
	}

	r.defs[def.Name] = def

	for _, alias := range def.Aliases {
		r.defs[alias] = def
	}
}

// Resolve выполняет точный регистрозависимый поиск: вызывающая сторона
// приводит токен к нижнему регистру до вызова.
func (r *Registry) Resolve(token string) (*models.CommandDefinition, bool) {
	def, ok := r.defs[token]
	return def, ok
}

// ListByCategory возвращает определения категории в порядке регистрации.
// Алиасы в перечисление не попадают: определение выводится только под
// основным именем.
func (r *Registry) ListByCategory(category models.Category) []*models.CommandDefinition {
	list := make([]*models.CommandDefinition, 0)

	for _, name := range r.order {
		def, ok := r.defs[name]
		if !ok || def.Name != name {
			continue
		}

		if def.Category == category {
			list = append(list, def)
		}
	}

	return list
}

// All возвращает все зарегистрированные определения в порядке регистрации.
func (r *Registry) All() []*models.CommandDefinition {
	list := make([]*models.CommandDefinition, 0, len(r.order))

	for _, name := range r.order {
		def, ok := r.defs[name]
		if !ok || def.Name != name {
			continue
		}

		list = append(list, def)
	}

	return list
}
