package memory

import (
	"context"
	"sync"
)

type txKey struct{}

type journalKey struct {
	store      *Store
	collection string
	id         string
}

// journal хранит состояние документов до первой записи в транзакции
// nil означает, что документа не было.
type journal struct {
	mu    sync.Mutex
	saved map[journalKey]*entry
	order []journalKey
}

func newJournal() *journal {
	return &journal{saved: make(map[journalKey]*entry)}
}

// remember вызывается под s.mu до изменения документа
func (j *journal) remember(s *Store, collection, id string, prev *entry) {
	key := journalKey{store: s, collection: collection, id: id}

	j.mu.Lock()
	defer j.mu.Unlock()

	if _, ok := j.saved[key]; ok {
		return
	}
	if prev != nil {
		cp := *prev
		prev = &cp
	}
	j.saved[key] = prev
	j.order = append(j.order, key)
}

func (j *journal) rollback() {
	j.mu.Lock()
	saved, order := j.saved, j.order
	j.saved = make(map[journalKey]*entry)
	j.order = nil
	j.mu.Unlock()

	for i := len(order) - 1; i >= 0; i-- {
		key := order[i]
		key.store.restore(key.collection, key.id, saved[key])
	}
}

func journalFrom(ctx context.Context) *journal {
	j, _ := ctx.Value(txKey{}).(*journal)
	return j
}

// TxManager сериализует транзакции над Store в памяти
// Транзакции выполняются строго по одной, вложенный вызов переиспользует внешнюю.
// Если fn вернула ошибку, записи, сделанные через контекст транзакции, откатываются.
type TxManager struct {
	mu sync.Mutex
}

// NewTxManager создает менеджер транзакций для хранилища в памяти
func NewTxManager() *TxManager {
	return &TxManager{}
}

// Do выполняет fn под общей блокировкой
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if journalFrom(ctx) != nil {
		return fn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	j := newJournal()
	if err := fn(context.WithValue(ctx, txKey{}, j)); err != nil {
		j.rollback()
		return err
	}
	return nil
}

// DoSerializable выполняет fn под общей блокировкой
func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

// DoReadOnly выполняет fn под общей блокировкой
func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}
