package forest

// Bookmark is a copyable value wrapping a node identifier and nothing else.
// It resolves in the context of some Handle: see Handle.GotoBookmark.
type Bookmark struct {
	id Id
}
