package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-TravelBooking/pkg/docstore"
)

const (
	listenerMinReconnect = 10 * time.Second
	listenerMaxReconnect = time.Minute
)

// subscription подписка на канал NOTIFY с фильтрацией по коллекции
type subscription struct {
	listener *pq.Listener
	done     chan struct{}
	once     sync.Once
}

// Close останавливает подписку и закрывает соединение LISTEN
func (s *subscription) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		err = s.listener.Close()
	})
	return err
}

// Subscribe слушает уведомления триггера documents_notify и вызывает fn
// для изменений указанной коллекции. fn вызывается из отдельной горутины.
func (s *Store) Subscribe(ctx context.Context, collection string, fn func(docstore.Change)) (docstore.Subscription, error) {
	if s.listenerDSN == "" {
		return nil, ErrListenerDisabled
	}

	listener := pq.NewListener(s.listenerDSN, listenerMinReconnect, listenerMaxReconnect,
		func(ev pq.ListenerEventType, err error) {
			if err != nil && s.logger != nil {
				s.logger.Warn("docstore listener event=%d: %v", ev, err)
			}
		})

	if err := listener.Listen(ChangesChannel); err != nil {
		listener.Close()
		return nil, fmt.Errorf("%w: Subscribe %s - listen: %w", docstore.ErrUnavailable, collection, err)
	}

	sub := &subscription{listener: listener, done: make(chan struct{})}
	go s.dispatch(ctx, sub, collection, fn)

	return sub, nil
}

func (s *Store) dispatch(ctx context.Context, sub *subscription, collection string, fn func(docstore.Change)) {
	for {
		select {
		case <-ctx.Done():
			_ = sub.Close()
			return
		case <-sub.done:
			return
		case n, ok := <-sub.listener.Notify:
			if !ok {
				return
			}
			// nil приходит после переподключения: часть уведомлений могла потеряться
			if n == nil {
				if s.logger != nil {
					s.logger.Warn("docstore listener reconnected, collection=%s", collection)
				}
				continue
			}

			var change docstore.Change
			if err := json.Unmarshal([]byte(n.Extra), &change); err != nil {
				if s.logger != nil {
					s.logger.Error("docstore listener: bad payload %q: %v", n.Extra, err)
				}
				continue
			}
			if change.Collection == collection {
				fn(change)
			}
		}
	}
}
