package ir

import (
	"testing"

	"github.com/silicore/go-seqmem/pkg/util"
	"github.com/stretchr/testify/assert"
)

func TestRenameMap(t *testing.T) {
	var (
		renames = NewRenameMap()
		from    = util.NewPath("Top", "m")
		to      = util.NewPath("Top", "m", "m_ext")
	)
	//
	renames.Rename(from, to)
	//
	tos, ok := renames.Get(from)
	assert.True(t, ok)
	assert.Len(t, tos, 1)
	assert.True(t, tos[0].Equals(to))
	assert.Equal(t, uint(1), renames.Size())
	// Unrenamed paths resolve to nothing.
	other := util.NewPath("Top", "n")
	_, ok = renames.Get(other)
	assert.False(t, ok)
	// Appending to an existing source does not duplicate it.
	renames.Rename(from, util.NewPath("Top", "m", "other"))
	assert.Equal(t, uint(1), renames.Size())
	//
	tos, _ = renames.Get(from)
	assert.Len(t, tos, 2)
}
