// Package docstore описывает документное хранилище: коллекции JSON-документов
// с доступом по id, запросами по равенству полей и подпиской на изменения.
// Даты хранятся в нативном формате хранилища (Timestamp) и приводятся
// к time.Time конвертерами из convert.go.
package docstore

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound возвращается, когда документ не найден
	ErrNotFound = errors.New("docstore: document not found")

	// ErrAlreadyExists возвращается Create, если документ с таким id уже есть
	ErrAlreadyExists = errors.New("docstore: document already exists")

	// ErrInvalidDocument возвращается, когда данные нельзя сохранить или прочитать
	ErrInvalidDocument = errors.New("docstore: invalid document")

	// ErrUnavailable возвращается при ошибках нижележащего хранилища
	ErrUnavailable = errors.New("docstore: store unavailable")
)

// Document сырой документ хранилища
// Data содержит значения в нативном формате хранилища (Timestamp как вложенный объект)
type Document struct {
	ID         string
	Collection string
	Data       map[string]interface{}
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Filter условие равенства поля документа значению
type Filter struct {
	Field string
	Value interface{}
}

// Eq создает условие field == value
func Eq(field string, value interface{}) Filter {
	return Filter{Field: field, Value: value}
}

// ChangeOp тип изменения документа
type ChangeOp string

const (
	OpCreated ChangeOp = "created"
	OpUpdated ChangeOp = "updated"
)

// Change уведомление об изменении документа
type Change struct {
	Collection string   `json:"collection"`
	ID         string   `json:"id"`
	Op         ChangeOp `json:"op"`
}

// Subscription активная подписка на изменения коллекции
type Subscription interface {
	Close() error
}

// Store клиент документного хранилища
type Store interface {
	// Get возвращает документ по id или ErrNotFound
	Get(ctx context.Context, collection, id string) (*Document, error)

	// Query возвращает документы коллекции, удовлетворяющие всем фильтрам,
	// в порядке создания. Без фильтров возвращает всю коллекцию.
	Query(ctx context.Context, collection string, filters ...Filter) ([]*Document, error)

	// Add сохраняет документ со сгенерированным id и возвращает этот id
	Add(ctx context.Context, collection string, data map[string]interface{}) (string, error)

	// Create сохраняет документ с заданным id, только если его ещё нет (ErrAlreadyExists)
	Create(ctx context.Context, collection, id string, data map[string]interface{}) error

	// Set создает или полностью перезаписывает документ
	Set(ctx context.Context, collection, id string, data map[string]interface{}) error

	// Update сливает поля верхнего уровня с документом или возвращает ErrNotFound
	Update(ctx context.Context, collection, id string, fields map[string]interface{}) error

	// Subscribe вызывает fn на каждое изменение документов коллекции до Close или отмены ctx
	Subscribe(ctx context.Context, collection string, fn func(Change)) (Subscription, error)
}
