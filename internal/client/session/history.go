// Package session tracks the client's position in the directory tree and
// the visit history behind back/forward navigation.
package session

import "strings"

// Navigator keeps an ordered visit history with a cursor. Navigating to a
// new path truncates any forward entries, the way browser history does.
type Navigator struct {
	history []string
	cursor  int
}

func NewNavigator() *Navigator {
	return &Navigator{history: []string{"/"}}
}

// Current returns the path at the cursor.
func (n *Navigator) Current() string {
	return n.history[n.cursor]
}

// NavigateTo records a visit to path and moves the cursor to it. Entries
// ahead of the cursor are discarded.
func (n *Navigator) NavigateTo(path string) {
	if path == "" {
		path = "/"
	}
	if n.cursor < len(n.history)-1 {
		n.history = n.history[:n.cursor+1]
	}
	n.history = append(n.history, path)
	n.cursor++
}

// Back moves the cursor one step back. Returns the new current path and
// whether a move happened.
func (n *Navigator) Back() (string, bool) {
	if n.cursor == 0 {
		return n.Current(), false
	}
	n.cursor--
	return n.Current(), true
}

// Forward moves the cursor one step forward. Returns the new current path
// and whether a move happened.
func (n *Navigator) Forward() (string, bool) {
	if n.cursor >= len(n.history)-1 {
		return n.Current(), false
	}
	n.cursor++
	return n.Current(), true
}

// Up navigates to the parent of the current path. The parent of the root
// is the root itself, and the move is still recorded as a visit.
func (n *Navigator) Up() string {
	parent := parentOf(n.Current())
	n.NavigateTo(parent)
	return parent
}

// Child returns the path of a child entry under the current path.
func (n *Navigator) Child(name string) string {
	cur := n.Current()
	if cur == "/" {
		return "/" + name
	}
	return cur + "/" + name
}

func parentOf(path string) string {
	trimmed := strings.TrimSuffix(path, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx <= 0 {
		return "/"
	}
	return trimmed[:idx]
}
