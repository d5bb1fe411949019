// Package postgres реализует docstore.Store поверх одной JSONB-таблицы PostgreSQL
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-TravelBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-TravelBooking/pkg/docstore"
	"github.com/m04kA/SMC-TravelBooking/pkg/psqlbuilder"
)

// Store документное хранилище на PostgreSQL
// Запросы идут через транзакцию из контекста, если она есть (txmanager).
type Store struct {
	db          DBExecutor
	listenerDSN string
	logger      Logger
}

// Option настройка Store
type Option func(*Store)

// WithListenerDSN включает подписки через LISTEN/NOTIFY на отдельном соединении
func WithListenerDSN(dsn string) Option {
	return func(s *Store) {
		s.listenerDSN = dsn
	}
}

// WithLogger задает логгер для фоновых подписок
func WithLogger(logger Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore создает новое хранилище
func NewStore(db DBExecutor, opts ...Option) *Store {
	s := &Store{db: db}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ docstore.Store = (*Store)(nil)

// Get возвращает документ по id
func (s *Store) Get(ctx context.Context, collection, id string) (*docstore.Document, error) {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	query, args, err := psqlbuilder.Select("id", "data", "created_at", "updated_at").
		From(TableName).
		Where(squirrel.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	doc, err := scanDocument(collection, executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, docstore.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get %s/%s: %w", docstore.ErrUnavailable, collection, id, err)
	}
	return doc, nil
}

// Query возвращает документы коллекции, у которых все поля фильтров равны значениям
func (s *Store) Query(ctx context.Context, collection string, filters ...docstore.Filter) ([]*docstore.Document, error) {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	builder := psqlbuilder.Select("id", "data", "created_at", "updated_at").
		From(TableName).
		Where(squirrel.Eq{"collection": collection}).
		OrderBy("created_at", "id")

	if len(filters) > 0 {
		containment, err := containmentOf(filters)
		if err != nil {
			return nil, err
		}
		builder = builder.Where(squirrel.Expr("data @> ?::jsonb", string(containment)))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Query - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Query %s: %w", docstore.ErrUnavailable, collection, err)
	}
	defer rows.Close()

	docs := make([]*docstore.Document, 0)
	for rows.Next() {
		doc, err := scanDocument(collection, rows)
		if err != nil {
			return nil, fmt.Errorf("%w: Query %s - scan: %w", docstore.ErrUnavailable, collection, err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Query %s - rows: %w", docstore.ErrUnavailable, collection, err)
	}
	return docs, nil
}

// Add сохраняет документ с новым UUID
func (s *Store) Add(ctx context.Context, collection string, data map[string]interface{}) (string, error) {
	id := uuid.NewString()
	if err := s.Create(ctx, collection, id, data); err != nil {
		return "", err
	}
	return id, nil
}

// Create сохраняет документ, если документа с таким id ещё нет
func (s *Store) Create(ctx context.Context, collection, id string, data map[string]interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	raw, err := encodeFields(data)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Insert(TableName).
		Columns("collection", "id", "data").
		Values(collection, id, squirrel.Expr("?::jsonb", string(raw))).
		Suffix("ON CONFLICT (collection, id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Create %s/%s: %w", docstore.ErrUnavailable, collection, id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Create %s/%s - rows affected: %w", docstore.ErrUnavailable, collection, id, err)
	}
	if affected == 0 {
		return docstore.ErrAlreadyExists
	}
	return nil
}

// Set создает или перезаписывает документ целиком
func (s *Store) Set(ctx context.Context, collection, id string, data map[string]interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	raw, err := encodeFields(data)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Insert(TableName).
		Columns("collection", "id", "data").
		Values(collection, id, squirrel.Expr("?::jsonb", string(raw))).
		Suffix("ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set %s/%s: %w", docstore.ErrUnavailable, collection, id, err)
	}
	return nil
}

// Update сливает поля верхнего уровня с существующим документом
func (s *Store) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	raw, err := encodeFields(fields)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Update(TableName).
		Set("data", squirrel.Expr("data || ?::jsonb", string(raw))).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update %s/%s: %w", docstore.ErrUnavailable, collection, id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update %s/%s - rows affected: %w", docstore.ErrUnavailable, collection, id, err)
	}
	if affected == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDocument(collection string, row rowScanner) (*docstore.Document, error) {
	var (
		id                   string
		raw                  []byte
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &raw, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	data, err := docstore.DecodeData(raw)
	if err != nil {
		return nil, err
	}

	return &docstore.Document{
		ID:         id,
		Collection: collection,
		Data:       data,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}, nil
}

func encodeFields(fields map[string]interface{}) ([]byte, error) {
	encoded, err := docstore.EncodeValue(fields)
	if err != nil {
		return nil, err
	}
	m, _ := encoded.(map[string]interface{})
	return docstore.EncodeData(m)
}

// containmentOf собирает JSON-объект для оператора @> из фильтров равенства
func containmentOf(filters []docstore.Filter) ([]byte, error) {
	obj := make(map[string]interface{}, len(filters))
	for _, f := range filters {
		v, err := docstore.EncodeValue(f.Value)
		if err != nil {
			return nil, err
		}
		obj[f.Field] = v
	}
	return docstore.EncodeData(obj)
}
