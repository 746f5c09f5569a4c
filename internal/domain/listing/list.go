package listing

import (
	"fmt"
	"slices"
)

// DefaultThreshold is the number of records shown before the list is expanded.
const DefaultThreshold = 5

// State is a snapshot of an ExpandableList.
type State struct {
	Expanded    bool
	Visible     []Record
	Total       int
	Hidden      int
	ShowToggle  bool
	ToggleLabel string
}

// Option configures an ExpandableList.
type Option func(*ExpandableList)

// WithThreshold sets how many records are visible while collapsed.
func WithThreshold(n int) Option {
	return func(l *ExpandableList) {
		l.threshold = n
	}
}

// ExpandableList shows the first threshold records until it is toggled open.
// It is not safe for concurrent use; each view mounts its own.
type ExpandableList struct {
	items       []Record
	threshold   int
	expanded    bool
	subscribers map[int]func(State)
	nextID      int
}

// New validates items and returns a collapsed list over a copy of them.
func New(items []Record, opts ...Option) (*ExpandableList, error) {
	l := &ExpandableList{
		threshold:   DefaultThreshold,
		subscribers: make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.threshold <= 0 {
		return nil, fmt.Errorf("%w: threshold must be positive, got %d", ErrInvalidInput, l.threshold)
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	l.items = slices.Clone(items)
	return l, nil
}

// Items returns every record in input order.
func (l *ExpandableList) Items() []Record { return slices.Clone(l.items) }

// Len returns the number of records.
func (l *ExpandableList) Len() int { return len(l.items) }

// Threshold returns the collapsed visible count.
func (l *ExpandableList) Threshold() int { return l.threshold }

// Expanded reports whether every record is visible.
func (l *ExpandableList) Expanded() bool { return l.expanded }

// ShowToggle reports whether a toggle control should be rendered.
func (l *ExpandableList) ShowToggle() bool { return len(l.items) > l.threshold }

// Hidden returns how many records the collapsed view leaves out.
func (l *ExpandableList) Hidden() int {
	if !l.ShowToggle() {
		return 0
	}
	return len(l.items) - l.threshold
}

// Visible returns the records currently shown, always a prefix of Items.
func (l *ExpandableList) Visible() []Record {
	if l.expanded || len(l.items) <= l.threshold {
		return slices.Clone(l.items)
	}
	return slices.Clone(l.items[:l.threshold])
}

// ToggleLabel returns the toggle control text, or "" when there is none.
func (l *ExpandableList) ToggleLabel() string {
	if !l.ShowToggle() {
		return ""
	}
	if l.expanded {
		return "Show less"
	}
	return fmt.Sprintf("Show more... (%d more)", l.Hidden())
}

// State returns a snapshot of the list.
func (l *ExpandableList) State() State {
	return State{
		Expanded:    l.expanded,
		Visible:     l.Visible(),
		Total:       len(l.items),
		Hidden:      l.Hidden(),
		ShowToggle:  l.ShowToggle(),
		ToggleLabel: l.ToggleLabel(),
	}
}

// Toggle flips the expanded flag and notifies subscribers synchronously.
func (l *ExpandableList) Toggle() State {
	l.expanded = !l.expanded
	st := l.State()
	ids := make([]int, 0, len(l.subscribers))
	for id := range l.subscribers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if fn, ok := l.subscribers[id]; ok {
			fn(st)
		}
	}
	return st
}

// Subscribe registers fn to be called after every Toggle, in registration
// order. The returned func removes the registration.
func (l *ExpandableList) Subscribe(fn func(State)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	id := l.nextID
	l.nextID++
	l.subscribers[id] = fn
	return func() {
		delete(l.subscribers, id)
	}
}
