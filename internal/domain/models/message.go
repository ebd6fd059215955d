package models

// IncomingMessage - нормализованное входящее текстовое событие,
// единственный вход ядра диспетчеризации.
type IncomingMessage struct {
	Text   string
	Caller CallerContext
}
