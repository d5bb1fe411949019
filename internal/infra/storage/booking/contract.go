package booking

import (
	"context"

	"github.com/m04kA/SMC-TravelBooking/pkg/docstore"
)

// DocumentStore операции документного хранилища, которые использует репозиторий
type DocumentStore interface {
	Get(ctx context.Context, collection, id string) (*docstore.Document, error)
	Query(ctx context.Context, collection string, filters ...docstore.Filter) ([]*docstore.Document, error)
	Create(ctx context.Context, collection, id string, data map[string]interface{}) error
	Set(ctx context.Context, collection, id string, data map[string]interface{}) error
	Update(ctx context.Context, collection, id string, fields map[string]interface{}) error
}
