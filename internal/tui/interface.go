package tui

import "context"

// ItemFetcher abstracts the viewer's data source.
// client.ItemsClient implements this over HTTP; tests supply stubs.
type ItemFetcher interface {
	FetchItems(ctx context.Context) ([]string, error)
}
