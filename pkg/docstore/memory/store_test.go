package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TravelBooking/pkg/docstore"
)

func fixedClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	now := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Second)
		return now
	}
}

func TestStore_CreateGet(t *testing.T) {
	ctx := context.Background()
	store := NewStore(WithClock(fixedClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))))

	require.NoError(t, store.Create(ctx, "rooms", "r1", map[string]interface{}{"title": "Suite", "price": 100}))

	doc, err := store.Get(ctx, "rooms", "r1")
	require.NoError(t, err)
	assert.Equal(t, "r1", doc.ID)
	assert.Equal(t, "rooms", doc.Collection)
	assert.Equal(t, "Suite", doc.Data["title"])
	assert.Equal(t, "100", doc.Data["price"].(interface{ String() string }).String())
	assert.False(t, doc.CreatedAt.IsZero())

	err = store.Create(ctx, "rooms", "r1", map[string]interface{}{"title": "Other"})
	assert.ErrorIs(t, err, docstore.ErrAlreadyExists)

	_, err = store.Get(ctx, "rooms", "missing")
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestStore_AddGeneratesID(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	id1, err := store.Add(ctx, "hotels", map[string]interface{}{"name": "A"})
	require.NoError(t, err)
	id2, err := store.Add(ctx, "hotels", map[string]interface{}{"name": "B"})
	require.NoError(t, err)

	assert.NotEmpty(t, id1)
	assert.NotEqual(t, id1, id2)
}

func TestStore_QueryFiltersAndOrder(t *testing.T) {
	ctx := context.Background()
	store := NewStore(WithClock(fixedClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))))

	require.NoError(t, store.Create(ctx, "bookings", "b", map[string]interface{}{"roomId": "r1", "status": "confirmed"}))
	require.NoError(t, store.Create(ctx, "bookings", "a", map[string]interface{}{"roomId": "r1", "status": "cancelled"}))
	require.NoError(t, store.Create(ctx, "bookings", "c", map[string]interface{}{"roomId": "r2", "status": "confirmed"}))
	require.NoError(t, store.Create(ctx, "bookings", "d", map[string]interface{}{"roomId": "r1", "status": "confirmed"}))

	docs, err := store.Query(ctx, "bookings", docstore.Eq("roomId", "r1"), docstore.Eq("status", "confirmed"))
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "b", docs[0].ID)
	assert.Equal(t, "d", docs[1].ID)

	all, err := store.Query(ctx, "bookings")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	none, err := store.Query(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_QueryByNumberAndTime(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	night := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.Create(ctx, "nights", "n1", map[string]interface{}{"night": night, "deck": 2}))
	require.NoError(t, store.Create(ctx, "nights", "n2", map[string]interface{}{"night": night.AddDate(0, 0, 1), "deck": 1}))

	docs, err := store.Query(ctx, "nights", docstore.Eq("night", night))
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "n1", docs[0].ID)

	docs, err = store.Query(ctx, "nights", docstore.Eq("deck", 1))
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "n2", docs[0].ID)
}

func TestStore_UpdateMergesFields(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	cancelledAt := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.Create(ctx, "bookings", "b1", map[string]interface{}{"status": "confirmed", "userId": "u1"}))
	require.NoError(t, store.Update(ctx, "bookings", "b1", map[string]interface{}{"status": "cancelled", "cancelledAt": cancelledAt}))

	doc, err := store.Get(ctx, "bookings", "b1")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", doc.Data["status"])
	assert.Equal(t, "u1", doc.Data["userId"])
	assert.Equal(t, cancelledAt, docstore.Normalize(doc.Data["cancelledAt"]))

	err = store.Update(ctx, "bookings", "missing", map[string]interface{}{"status": "cancelled"})
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.Set(ctx, "users", "u1", map[string]interface{}{"name": "Ann", "email": "a@x"}))
	require.NoError(t, store.Set(ctx, "users", "u1", map[string]interface{}{"name": "Bob"}))

	doc, err := store.Get(ctx, "users", "u1")
	require.NoError(t, err)
	assert.Equal(t, "Bob", doc.Data["name"])
	assert.NotContains(t, doc.Data, "email")
}

func TestStore_Subscribe(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	var (
		mu      sync.Mutex
		changes []docstore.Change
	)
	sub, err := store.Subscribe(ctx, "bookings", func(c docstore.Change) {
		mu.Lock()
		defer mu.Unlock()
		changes = append(changes, c)
	})
	require.NoError(t, err)

	require.NoError(t, store.Create(ctx, "bookings", "b1", map[string]interface{}{"status": "confirmed"}))
	require.NoError(t, store.Create(ctx, "rooms", "r1", map[string]interface{}{}))
	require.NoError(t, store.Update(ctx, "bookings", "b1", map[string]interface{}{"status": "cancelled"}))

	require.NoError(t, sub.Close())
	require.NoError(t, store.Create(ctx, "bookings", "b2", map[string]interface{}{}))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []docstore.Change{
		{Collection: "bookings", ID: "b1", Op: docstore.OpCreated},
		{Collection: "bookings", ID: "b1", Op: docstore.OpUpdated},
	}, changes)
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStore().Get(ctx, "rooms", "r1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTxManager_SerializesReadModifyWrite(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	tx := NewTxManager()

	require.NoError(t, store.Set(ctx, "counters", "c", map[string]interface{}{"value": 0}))

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := tx.DoSerializable(ctx, func(txCtx context.Context) error {
				doc, err := store.Get(txCtx, "counters", "c")
				if err != nil {
					return err
				}
				n, err := doc.Data["value"].(interface{ Int64() (int64, error) }).Int64()
				if err != nil {
					return err
				}
				return store.Update(txCtx, "counters", "c", map[string]interface{}{"value": n + 1})
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	doc, err := store.Get(ctx, "counters", "c")
	require.NoError(t, err)
	assert.Equal(t, "20", doc.Data["value"].(interface{ String() string }).String())
}

func TestTxManager_NestedCallDoesNotDeadlock(t *testing.T) {
	tx := NewTxManager()
	calls := 0

	err := tx.DoSerializable(context.Background(), func(ctx context.Context) error {
		return tx.DoSerializable(ctx, func(context.Context) error {
			calls++
			return nil
		})
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestTxManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	tx := NewTxManager()

	require.NoError(t, store.Set(ctx, "rooms", "r1", map[string]interface{}{"title": "Suite", "price": 100}))
	require.NoError(t, store.Set(ctx, "rooms", "r2", map[string]interface{}{"title": "Single"}))
	failure := errors.New("capacity check failed")

	err := tx.Do(ctx, func(txCtx context.Context) error {
		if err := store.Update(txCtx, "rooms", "r1", map[string]interface{}{"title": "Changed"}); err != nil {
			return err
		}
		if err := store.Update(txCtx, "rooms", "r1", map[string]interface{}{"price": 50}); err != nil {
			return err
		}
		if err := store.Set(txCtx, "rooms", "r2", map[string]interface{}{"title": "Double"}); err != nil {
			return err
		}
		if err := store.Create(txCtx, "rooms", "r3", map[string]interface{}{"title": "New"}); err != nil {
			return err
		}
		return failure
	})
	require.ErrorIs(t, err, failure)

	r1, err := store.Get(ctx, "rooms", "r1")
	require.NoError(t, err)
	assert.Equal(t, "Suite", r1.Data["title"])
	assert.Equal(t, "100", r1.Data["price"].(interface{ String() string }).String())

	r2, err := store.Get(ctx, "rooms", "r2")
	require.NoError(t, err)
	assert.Equal(t, "Single", r2.Data["title"])

	_, err = store.Get(ctx, "rooms", "r3")
	assert.ErrorIs(t, err, docstore.ErrNotFound)

	// Повторное создание после отката проходит
	require.NoError(t, store.Create(ctx, "rooms", "r3", map[string]interface{}{"title": "New"}))
}

func TestTxManager_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	tx := NewTxManager()

	err := tx.Do(ctx, func(txCtx context.Context) error {
		return tx.Do(txCtx, func(inner context.Context) error {
			return store.Create(inner, "rooms", "r1", map[string]interface{}{"title": "Suite"})
		})
	})
	require.NoError(t, err)

	doc, err := store.Get(ctx, "rooms", "r1")
	require.NoError(t, err)
	assert.Equal(t, "Suite", doc.Data["title"])
}

func TestTxManager_NestedErrorRollsBackWholeTransaction(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	tx := NewTxManager()
	failure := errors.New("nested failure")

	err := tx.Do(ctx, func(txCtx context.Context) error {
		if err := store.Create(txCtx, "rooms", "r1", map[string]interface{}{"title": "Suite"}); err != nil {
			return err
		}
		return tx.Do(txCtx, func(inner context.Context) error {
			if err := store.Create(inner, "rooms", "r2", map[string]interface{}{"title": "Single"}); err != nil {
				return err
			}
			return failure
		})
	})
	require.ErrorIs(t, err, failure)

	_, err = store.Get(ctx, "rooms", "r1")
	assert.ErrorIs(t, err, docstore.ErrNotFound)
	_, err = store.Get(ctx, "rooms", "r2")
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}
