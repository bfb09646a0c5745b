package binfile

import (
	"bytes"
	"testing"

	"github.com/silicore/go-seqmem/pkg/ir"
	"github.com/silicore/go-seqmem/pkg/util"
	"github.com/stretchr/testify/assert"
)

func TestCircuitRoundTrip(t *testing.T) {
	var (
		mem = ir.DefMemory{
			Name:         "m",
			DataType:     ir.NewVector(ir.NewUInt(8), 4),
			Depth:        64,
			ReadLatency:  1,
			WriteLatency: 1,
			Readers:      []string{"r"},
			Writers:      []string{"w"},
			MaskGran:     util.Some(uint(8)),
		}
		//
		ports = []ir.Port{
			ir.NewPort("clk", ir.Input, ir.ClockType{}),
			ir.NewPort("out", ir.Output, ir.NewBundle(ir.NewField("x", ir.NewSInt(3)))),
		}
		//
		circuit = &ir.Circuit{
			Main: "Top",
			Modules: []ir.Module{
				ir.NewModule("Top", ports, ir.NewBlock(mem, ir.NewInstance("u", "Sub"))),
				ir.NewExtModule("Sub", ports),
			},
			Annotations: []ir.Annotation{ir.NewPinAnnotation("pwr_en")},
		}
		//
		buffer bytes.Buffer
	)
	//
	assert.NoError(t, Encode(&buffer, circuit))
	//
	decoded, err := Decode(&buffer)
	assert.NoError(t, err)
	assert.Equal(t, circuit, decoded)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not a circuit file at all")))
	assert.Error(t, err)
	// Truncated input fails cleanly too.
	_, err = Decode(bytes.NewReader([]byte{'S', 'E', 'Q'}))
	assert.Error(t, err)
}
