package tui

// BubbleTea message types produced by the fetch command

// ItemsLoadedMsg delivers a successfully fetched item collection
type ItemsLoadedMsg struct {
	Items []string
}

// FetchFailedMsg signals that the fetch did not produce a usable collection.
// Network errors, non-2xx statuses, and malformed bodies all arrive here.
type FetchFailedMsg struct {
	Err error
}
