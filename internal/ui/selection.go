package ui

import "github.com/weidesh/docdeck/internal/catalog"

// reconcileSelection maintains the selection invariant: whenever the
// visible set is non-empty and does not contain the active id, the
// selection snaps to the first visible entry. An empty visible set leaves
// the prior selection alone so it survives a transient over-narrow filter.
func reconcileSelection(visible []catalog.Document, activeID string) string {
	if len(visible) == 0 {
		return activeID
	}
	for _, d := range visible {
		if d.ID == activeID {
			return activeID
		}
	}
	return visible[0].ID
}

// visibleIndex returns the position of id in the visible set, or 0.
func visibleIndex(visible []catalog.Document, id string) int {
	for i, d := range visible {
		if d.ID == id {
			return i
		}
	}
	return 0
}
