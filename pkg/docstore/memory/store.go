// Package memory реализует docstore.Store в памяти процесса.
// Используется в тестах и при storage.driver = "memory".
package memory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TravelBooking/pkg/docstore"
)

type entry struct {
	raw       []byte
	createdAt time.Time
	updatedAt time.Time
	seq       uint64
}

type subscriber struct {
	collection string
	fn         func(docstore.Change)
}

// Store хранилище документов в памяти
// Документы хранятся сериализованными, поэтому читающий код видит
// то же представление данных, что и с PostgreSQL.
type Store struct {
	mu          sync.RWMutex
	collections map[string]map[string]*entry
	seq         uint64

	subsMu  sync.RWMutex
	subs    map[uint64]subscriber
	nextSub uint64

	now func() time.Time
}

// Option настройка Store
type Option func(*Store)

// WithClock подменяет источник времени для created/updated меток
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore создает пустое хранилище
func NewStore(opts ...Option) *Store {
	s := &Store{
		collections: make(map[string]map[string]*entry),
		subs:        make(map[uint64]subscriber),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ docstore.Store = (*Store)(nil)

// Get возвращает документ по id
func (s *Store) Get(ctx context.Context, collection, id string) (*docstore.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	e, ok := s.collections[collection][id]
	s.mu.RUnlock()
	if !ok {
		return nil, docstore.ErrNotFound
	}
	return toDocument(collection, id, e)
}

// Query возвращает документы коллекции в порядке создания
func (s *Store) Query(ctx context.Context, collection string, filters ...docstore.Filter) ([]*docstore.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	expected := make(map[string][]byte, len(filters))
	for _, f := range filters {
		raw, err := encodeValue(f.Value)
		if err != nil {
			return nil, err
		}
		expected[f.Field] = raw
	}

	type item struct {
		id string
		e  *entry
	}

	s.mu.RLock()
	items := make([]item, 0, len(s.collections[collection]))
	for id, e := range s.collections[collection] {
		items = append(items, item{id: id, e: e})
	}
	s.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		if !items[i].e.createdAt.Equal(items[j].e.createdAt) {
			return items[i].e.createdAt.Before(items[j].e.createdAt)
		}
		return items[i].e.seq < items[j].e.seq
	})

	docs := make([]*docstore.Document, 0, len(items))
	for _, it := range items {
		doc, err := toDocument(collection, it.id, it.e)
		if err != nil {
			return nil, err
		}
		if matches(doc.Data, expected) {
			docs = append(docs, doc)
		}
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
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := encodeFields(data)
	if err != nil {
		return err
	}

	s.mu.Lock()
	coll := s.collection(collection)
	if _, exists := coll[id]; exists {
		s.mu.Unlock()
		return docstore.ErrAlreadyExists
	}
	s.remember(ctx, collection, id, nil)
	coll[id] = s.newEntry(raw)
	s.mu.Unlock()

	s.notify(docstore.Change{Collection: collection, ID: id, Op: docstore.OpCreated})
	return nil
}

// Set создает или перезаписывает документ целиком
func (s *Store) Set(ctx context.Context, collection, id string, data map[string]interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := encodeFields(data)
	if err != nil {
		return err
	}

	op := docstore.OpCreated

	s.mu.Lock()
	coll := s.collection(collection)
	e, exists := coll[id]
	s.remember(ctx, collection, id, e)
	if exists {
		e.raw = raw
		e.updatedAt = s.now()
		op = docstore.OpUpdated
	} else {
		coll[id] = s.newEntry(raw)
	}
	s.mu.Unlock()

	s.notify(docstore.Change{Collection: collection, ID: id, Op: op})
	return nil
}

// Update сливает поля верхнего уровня с существующим документом
func (s *Store) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	patchRaw, err := encodeFields(fields)
	if err != nil {
		return err
	}
	patch, err := docstore.DecodeData(patchRaw)
	if err != nil {
		return err
	}

	s.mu.Lock()
	e, exists := s.collections[collection][id]
	if !exists {
		s.mu.Unlock()
		return docstore.ErrNotFound
	}

	data, err := docstore.DecodeData(e.raw)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	for k, v := range patch {
		data[k] = v
	}

	raw, err := docstore.EncodeData(data)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.remember(ctx, collection, id, e)
	e.raw = raw
	e.updatedAt = s.now()
	s.mu.Unlock()

	s.notify(docstore.Change{Collection: collection, ID: id, Op: docstore.OpUpdated})
	return nil
}

// Subscribe регистрирует fn на изменения коллекции
// fn вызывается синхронно в горутине, выполнившей запись.
func (s *Store) Subscribe(ctx context.Context, collection string, fn func(docstore.Change)) (docstore.Subscription, error) {
	s.subsMu.Lock()
	s.nextSub++
	id := s.nextSub
	s.subs[id] = subscriber{collection: collection, fn: fn}
	s.subsMu.Unlock()

	sub := &subscription{store: s, id: id, done: make(chan struct{})}
	go func() {
		select {
		case <-ctx.Done():
			_ = sub.Close()
		case <-sub.done:
		}
	}()
	return sub, nil
}

type subscription struct {
	store *Store
	id    uint64
	done  chan struct{}
	once  sync.Once
}

// Close отменяет подписку
func (s *subscription) Close() error {
	s.once.Do(func() {
		s.store.subsMu.Lock()
		delete(s.store.subs, s.id)
		s.store.subsMu.Unlock()
		close(s.done)
	})
	return nil
}

func (s *Store) notify(change docstore.Change) {
	s.subsMu.RLock()
	fns := make([]func(docstore.Change), 0, len(s.subs))
	for _, sub := range s.subs {
		if sub.collection == change.Collection {
			fns = append(fns, sub.fn)
		}
	}
	s.subsMu.RUnlock()

	for _, fn := range fns {
		fn(change)
	}
}

// collection вызывается под s.mu
func (s *Store) collection(name string) map[string]*entry {
	coll, ok := s.collections[name]
	if !ok {
		coll = make(map[string]*entry)
		s.collections[name] = coll
	}
	return coll
}

// remember вызывается под s.mu
func (s *Store) remember(ctx context.Context, collection, id string, prev *entry) {
	if j := journalFrom(ctx); j != nil {
		j.remember(s, collection, id, prev)
	}
}

// restore возвращает документ к сохранённому состоянию, nil удаляет документ
func (s *Store) restore(collection, id string, saved *entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if saved == nil {
		delete(s.collections[collection], id)
		return
	}
	cp := *saved
	s.collection(collection)[id] = &cp
}

// newEntry вызывается под s.mu
func (s *Store) newEntry(raw []byte) *entry {
	s.seq++
	now := s.now()
	return &entry{raw: raw, createdAt: now, updatedAt: now, seq: s.seq}
}

func toDocument(collection, id string, e *entry) (*docstore.Document, error) {
	data, err := docstore.DecodeData(e.raw)
	if err != nil {
		return nil, err
	}
	return &docstore.Document{
		ID:         id,
		Collection: collection,
		Data:       data,
		CreatedAt:  e.createdAt,
		UpdatedAt:  e.updatedAt,
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

func encodeValue(v interface{}) ([]byte, error) {
	encoded, err := docstore.EncodeValue(v)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", docstore.ErrInvalidDocument, err)
	}
	return raw, nil
}

// matches сравнивает поля документа с ожидаемыми значениями по их JSON-представлению
func matches(data map[string]interface{}, expected map[string][]byte) bool {
	for field, want := range expected {
		value, ok := data[field]
		if !ok {
			return false
		}
		got, err := json.Marshal(value)
		if err != nil || !bytes.Equal(got, want) {
			return false
		}
	}
	return true
}
