package conf

import (
	"bytes"
	"testing"

	"github.com/silicore/go-seqmem/pkg/util"
	"github.com/stretchr/testify/assert"
)

func TestRecordRendering(t *testing.T) {
	tests := []struct {
		name     string
		record   Record
		expected string
	}{
		{
			"unmasked",
			Record{Name: "m_ext", Depth: 16, Width: 2, Ports: []string{ReadPort, WritePort}},
			"name m_ext depth 16 width 2 ports read,write",
		},
		{
			"masked",
			Record{Name: "m_ext", Depth: 1024, Width: 32, Ports: []string{MaskedReadWritePort}, MaskGran: util.Some(uint(8))},
			"name m_ext depth 1024 width 32 ports mrw mask_gran 8",
		},
		{
			"multi-port",
			Record{Name: "buf_ext", Depth: 64, Width: 8, Ports: []string{ReadPort, ReadPort, MaskedWritePort}, MaskGran: util.Some(uint(1))},
			"name buf_ext depth 64 width 8 ports read,read,mwrite mask_gran 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.String())
		})
	}
}

func TestWriterFlushOnce(t *testing.T) {
	var (
		buffer bytes.Buffer
		writer = NewTextWriter(&buffer)
	)
	//
	writer.Append(Record{Name: "a_ext", Depth: 2, Width: 1, Ports: []string{ReadWritePort}})
	writer.Append(Record{Name: "b_ext", Depth: 4, Width: 2, Ports: []string{ReadPort}})
	//
	assert.NoError(t, writer.Flush())
	assert.Equal(t, "name a_ext depth 2 width 1 ports rw\nname b_ext depth 4 width 2 ports read\n", buffer.String())
	// Further flushes have no effect.
	assert.NoError(t, writer.Flush())
	assert.Equal(t, "name a_ext depth 2 width 1 ports rw\nname b_ext depth 4 width 2 ports read\n", buffer.String())
}
