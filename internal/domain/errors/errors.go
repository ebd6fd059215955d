package errors

import (
	"fmt"
)

type ErrUserNotFound struct {
	JID string
}

func (e *ErrUserNotFound) Error() string {
	return "пользователь не найден: " + e.JID
}

func (e *ErrUserNotFound) Is(target error) bool {
	_, ok := target.(*ErrUserNotFound)
	return ok
}

type ErrUnknownCommand struct {
	Command string
}

func (e *ErrUnknownCommand) Error() string {
	return "неизвестная команда: " + e.Command
}

type ErrEmptyQuery struct {
	Command string
}

func (e *ErrEmptyQuery) Error() string {
	return fmt.Sprintf("не указан поисковый запрос для команды %s", e.Command)
}

func (e *ErrEmptyQuery) Is(target error) bool {
	_, ok := target.(*ErrEmptyQuery)
	return ok
}

type ErrNoPendingSelection struct {
	CallerJID string
}

func (e *ErrNoPendingSelection) Error() string {
	return "нет ожидающего выбора для отправителя: " + e.CallerJID
}

func (e *ErrNoPendingSelection) Is(target error) bool {
	_, ok := target.(*ErrNoPendingSelection)
	return ok
}

type ErrInvalidSelection struct {
	Number int
	Max    int
}

func (e *ErrInvalidSelection) Error() string {
	return fmt.Sprintf("некорректный номер выбора: %d (доступно вариантов: %d)", e.Number, e.Max)
}

func (e *ErrInvalidSelection) Is(target error) bool {
	_, ok := target.(*ErrInvalidSelection)
	return ok
}

type ErrHandlerPanic struct {
	Command string
	Value   any
}

func (e *ErrHandlerPanic) Error() string {
	return fmt.Sprintf("паника в обработчике команды %s: %v", e.Command, e.Value)
}

type ErrUnknownSelectionKind struct {
	Kind string
}

func (e *ErrUnknownSelectionKind) Error() string {
	return "неизвестный вид ожидающего выбора: " + e.Kind
}

type ErrUnknownDBAccessType struct {
	AccessType string
}

func (e *ErrUnknownDBAccessType) Error() string {
	return fmt.Sprintf("неизвестный тип доступа к базе данных: %s", e.AccessType)
}

type ErrBuildSQLQuery struct {
	Operation string
	Cause     error
}

func (e *ErrBuildSQLQuery) Error() string {
	return fmt.Sprintf("ошибка при построении SQL запроса для %s: %v", e.Operation, e.Cause)
}

func (e *ErrBuildSQLQuery) Unwrap() error {
	return e.Cause
}

type ErrSQLExecution struct {
	Operation string
	Cause     error
}

func (e *ErrSQLExecution) Error() string {
	return fmt.Sprintf("ошибка при выполнении SQL запроса для %s: %v", e.Operation, e.Cause)
}

func (e *ErrSQLExecution) Unwrap() error {
	return e.Cause
}

type ErrSQLScan struct {
	Entity string
	Cause  error
}

func (e *ErrSQLScan) Error() string {
	return fmt.Sprintf("ошибка при сканировании %s: %v", e.Entity, e.Cause)
}

func (e *ErrSQLScan) Unwrap() error {
	return e.Cause
}

type ErrMissingChatInEvent struct {
	JobID string
}

func (e *ErrMissingChatInEvent) Error() string {
	return "отсутствует идентификатор чата во входящем событии"
}

func (e *ErrMissingChatInEvent) Is(target error) bool {
	_, ok := target.(*ErrMissingChatInEvent)
	return ok
}

type ErrDownloadFailed struct {
	JobID   string
	Message string
}

func (e *ErrDownloadFailed) Error() string {
	return fmt.Sprintf("загрузка %s завершилась с ошибкой: %s", e.JobID, e.Message)
}

type ErrSearchAPIStatus struct {
	Service    string
	StatusCode int
}

func (e *ErrSearchAPIStatus) Error() string {
	return fmt.Sprintf("API %s вернул статус: %d", e.Service, e.StatusCode)
}

func (e *ErrSearchAPIStatus) Is(target error) bool {
	_, ok := target.(*ErrSearchAPIStatus)
	return ok
}

type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error: %d", e.StatusCode)
}
