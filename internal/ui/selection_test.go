package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weidesh/docdeck/internal/catalog"
)

func docs(ids ...string) []catalog.Document {
	out := make([]catalog.Document, len(ids))
	for i, id := range ids {
		out[i] = catalog.Document{ID: id}
	}
	return out
}

func TestReconcileSelectionKeepsVisibleActive(t *testing.T) {
	assert.Equal(t, "b", reconcileSelection(docs("a", "b", "c"), "b"))
}

func TestReconcileSelectionSnapsToFirstVisible(t *testing.T) {
	assert.Equal(t, "a", reconcileSelection(docs("a", "b"), "gone"))
}

func TestReconcileSelectionEmptySetKeepsPrior(t *testing.T) {
	assert.Equal(t, "prior", reconcileSelection(nil, "prior"))
}

func TestVisibleIndex(t *testing.T) {
	v := docs("a", "b", "c")
	assert.Equal(t, 2, visibleIndex(v, "c"))
	assert.Equal(t, 0, visibleIndex(v, "missing"))
}
