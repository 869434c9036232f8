package model

// PublishResult is the per-record outcome of a catalog submission. It is
// never persisted; runs report it and move on.
type PublishResult struct {
	Title string
	OK    bool
	Err   error
}
