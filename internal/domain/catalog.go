package domain

import "context"

// Source fetches the canonical book list. Implementations exist for
// HTTP resources and local files; tests supply fakes.
type Source interface {
	FetchCatalog(ctx context.Context) ([]Book, error)
}
