package statspanel

import "sync"

// Target is the output region a Controller fully owns. Each SetContent replaces
// the previous content entirely.
type Target interface {
	SetContent(html string)
}

// TargetFunc adapts a function to Target.
type TargetFunc func(html string)

func (f TargetFunc) SetContent(html string) { f(html) }

// Element is an in-process target identified by ID, safe for concurrent writers.
// Concurrent writers race; the last SetContent wins.
type Element struct {
	id string

	// notifyMu serializes writers so onChange sees writes in order; mu guards content only.
	notifyMu sync.Mutex
	mu       sync.RWMutex
	content  string
	onChange func(string)
}

// NewElement creates an empty element. onChange, when non-nil, observes every write in order
// and may read Content, but must not call SetContent on the same element.
func NewElement(id string, onChange func(string)) *Element {
	return &Element{id: id, onChange: onChange}
}

// ID returns the element identifier.
func (e *Element) ID() string {
	return e.id
}

// SetContent replaces the element content.
func (e *Element) SetContent(html string) {
	e.notifyMu.Lock()
	defer e.notifyMu.Unlock()

	e.mu.Lock()
	e.content = html
	e.mu.Unlock()

	if e.onChange != nil {
		e.onChange(html)
	}
}

// Content returns the current content.
func (e *Element) Content() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.content
}
