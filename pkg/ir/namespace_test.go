package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamespaceAllocate(t *testing.T) {
	ns := NewNamespace("Top")
	// Fresh base is returned unchanged.
	assert.Equal(t, "Top_m", ns.Allocate("Top_m"))
	// Colliding bases receive deterministic suffixes.
	assert.Equal(t, "Top_m_1", ns.Allocate("Top_m"))
	assert.Equal(t, "Top_m_2", ns.Allocate("Top_m"))
	// Seeded names collide as well.
	assert.Equal(t, "Top_1", ns.Allocate("Top"))
	//
	assert.True(t, ns.Contains("Top_m_2"))
	assert.False(t, ns.Contains("Top_m_3"))
}

func TestNamespaceOfCircuit(t *testing.T) {
	circuit := NewCircuit("Top",
		NewModule("Top", nil, NewBlock()),
		NewExtModule("mem_ext", nil))
	//
	ns := NamespaceOf(circuit)
	assert.True(t, ns.Contains("Top"))
	assert.True(t, ns.Contains("mem_ext"))
	assert.Equal(t, "mem_ext_1", ns.Allocate("mem_ext"))
}
