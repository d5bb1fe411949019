package user

import (
	"context"

	"github.com/m04kA/SMC-TravelBooking/pkg/docstore"
)

// DocumentStore операции документного хранилища, которые использует репозиторий
type DocumentStore interface {
	Get(ctx context.Context, collection, id string) (*docstore.Document, error)
	Set(ctx context.Context, collection, id string, data map[string]interface{}) error
}
