package order

import "errors"

// ErrClipboardUnavailable reports that the host cannot reach a
// clipboard; callers recover with a copy-it-manually fallback.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Env is the host capability surface the composition flow depends on.
// The web layer adapts each request into one; tests supply fakes.
type Env interface {
	// CopyText places text on the host clipboard, or returns
	// ErrClipboardUnavailable.
	CopyText(text string) error
	// Embedded reports whether the UI runs inside a nested browsing
	// context known to refuse wa.me navigation, so the caller can
	// lead with the copy-link fallback.
	Embedded() bool
}
