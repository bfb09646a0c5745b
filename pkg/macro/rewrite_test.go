package macro

import (
	"bytes"
	"errors"
	"testing"

	"github.com/silicore/go-seqmem/pkg/conf"
	"github.com/silicore/go-seqmem/pkg/ir"
	"github.com/silicore/go-seqmem/pkg/util"
	"github.com/stretchr/testify/assert"
)

// run transforms the given circuit, rendering configuration records into a
// buffer.
func run(t *testing.T, circuit *ir.Circuit) (Result, string) {
	var buffer bytes.Buffer
	//
	result, err := Run(circuit, conf.NewTextWriter(&buffer))
	assert.NoError(t, err)
	//
	return result, buffer.String()
}

// scalarMemCircuit builds the reference single-module circuit: memory "m" in
// module "Top" with one reader, one writer and a 2-bit unsigned element.
func scalarMemCircuit(gran util.Option[uint]) *ir.Circuit {
	mem := ir.DefMemory{
		Name:         "m",
		DataType:     ir.NewUInt(2),
		Depth:        16,
		ReadLatency:  1,
		WriteLatency: 1,
		Readers:      []string{"r"},
		Writers:      []string{"w"},
		MaskGran:     gran,
	}
	//
	return ir.NewCircuit("Top", ir.NewModule("Top", nil, ir.NewBlock(mem)))
}

func bodyStrings(m ir.Module) []string {
	var strs []string
	//
	for _, s := range m.(*ir.DefModule).Body.Stmts {
		strs = append(strs, s.String())
	}
	//
	return strs
}

func TestExtractScalarMemory(t *testing.T) {
	result, confstr := run(t, scalarMemCircuit(util.None[uint]()))
	// Rewritten modules first, generated modules after in creation order.
	assert.Len(t, result.Circuit.Modules, 3)
	assert.Equal(t, "Top", result.Circuit.Modules[0].Name())
	assert.Equal(t, "Top_m", result.Circuit.Modules[1].Name())
	assert.Equal(t, "m_ext", result.Circuit.Modules[2].Name())
	// The memory is replaced by an instance of the wrapper, keeping its
	// name.
	assert.Equal(t, []string{"inst m of Top_m"}, bodyStrings(result.Circuit.Modules[0]))
	// The blackbox is external, the wrapper is not.
	assert.False(t, result.Circuit.Modules[1].IsExternal())
	assert.True(t, result.Circuit.Modules[2].IsExternal())
	// Both carry one port per memory port.
	for _, m := range result.Circuit.Modules[1:] {
		ports := m.Ports()
		assert.Len(t, ports, 2)
		assert.Equal(t, "r", ports[0].Name)
		assert.Equal(t, "w", ports[1].Name)
	}
	// Wrapper wiring: blackbox instance, pass-throughs, unpack and pack.
	wiring := bodyStrings(result.Circuit.Modules[1])
	assert.Contains(t, wiring, "inst m_ext of m_ext")
	assert.Contains(t, wiring, "m_ext.r.clk <= r.clk")
	assert.Contains(t, wiring, "m_ext.r.en <= r.en")
	assert.Contains(t, wiring, "m_ext.r.addr <= r.addr")
	assert.Contains(t, wiring, "r.data <= bits(m_ext.r.data, 1, 0)")
	assert.Contains(t, wiring, "m_ext.w.data <= w.data")
	// No mask wiring for an unmasked memory.
	for _, s := range wiring {
		assert.NotContains(t, s, "mask")
	}
	// One configuration record.
	assert.Equal(t, "name m_ext depth 16 width 2 ports read,write\n", confstr)
	// Rename map redirects the memory to the two-level instance path.
	assert.Equal(t, uint(1), result.Renames.Size())
	//
	tos, ok := result.Renames.Get(util.NewPath("Top", "m"))
	assert.True(t, ok)
	assert.Len(t, tos, 1)
	assert.Equal(t, "Top.m.m_ext", tos[0].String())
}

func TestExtractMaskedScalarMemory(t *testing.T) {
	result, confstr := run(t, scalarMemCircuit(util.Some(uint(1))))
	//
	var (
		wrapper = result.Circuit.Modules[1]
		bb      = result.Circuit.Modules[2]
	)
	// The writer port gains a structured mask on the wrapper ...
	wb := wrapper.Ports()[1].Type.(ir.BundleType)
	mask, ok := wb.Field("mask")
	assert.True(t, ok)
	assert.Equal(t, ir.Type(ir.Bool()), mask.Type)
	// ... and a flattened 2-bit mask on the blackbox.
	fb := bb.Ports()[1].Type.(ir.BundleType)
	mask, ok = fb.Field("mask")
	assert.True(t, ok)
	assert.Equal(t, ir.Type(ir.NewUInt(2)), mask.Type)
	// A connect packs the structured mask into the flattened mask.
	assert.Contains(t, bodyStrings(wrapper), "m_ext.w.mask <= rep(w.mask, 2)")
	//
	assert.Equal(t, "name m_ext depth 16 width 2 ports read,mwrite mask_gran 1\n", confstr)
}

// Two memories in different modules carrying a canonical reference to a
// shared original: exactly one wrapper/blackbox pair is generated, and both
// sites instance the identical wrapper.  Module order deliberately places
// the aliases before their canonical declaration.
func TestCanonicalDeduplication(t *testing.T) {
	var (
		canon = ir.MemRef{Module: "A", Memory: "m1"}
		//
		mem = func(name string, canonical util.Option[ir.MemRef]) ir.DefMemory {
			return ir.DefMemory{
				Name:      name,
				DataType:  ir.NewUInt(8),
				Depth:     256,
				Readers:   []string{"r"},
				Writers:   []string{"w"},
				Canonical: canonical,
			}
		}
	)
	//
	circuit := ir.NewCircuit("A",
		ir.NewModule("B", nil, ir.NewBlock(mem("m2", util.Some(canon)))),
		ir.NewModule("C", nil, ir.NewBlock(mem("m3", util.Some(canon)))),
		ir.NewModule("A", nil, ir.NewBlock(mem("m1", util.None[ir.MemRef]()))))
	//
	result, confstr := run(t, circuit)
	// Exactly one wrapper/blackbox pair generated.
	assert.Len(t, result.Circuit.Modules, 5)
	assert.Equal(t, "A_m1", result.Circuit.Modules[3].Name())
	assert.Equal(t, "m1_ext", result.Circuit.Modules[4].Name())
	// All three sites instance the identical wrapper module.
	assert.Equal(t, []string{"inst m2 of A_m1"}, bodyStrings(result.Circuit.Modules[0]))
	assert.Equal(t, []string{"inst m3 of A_m1"}, bodyStrings(result.Circuit.Modules[1]))
	assert.Equal(t, []string{"inst m1 of A_m1"}, bodyStrings(result.Circuit.Modules[2]))
	// One configuration record despite three declarations.
	assert.Equal(t, "name m1_ext depth 256 width 8 ports read,write\n", confstr)
	// Rename completeness: one entry per rewritten memory.
	assert.Equal(t, uint(3), result.Renames.Size())
	//
	for _, tt := range []struct{ module, memory string }{
		{"B", "m2"}, {"C", "m3"}, {"A", "m1"},
	} {
		tos, ok := result.Renames.Get(util.NewPath(tt.module, tt.memory))
		assert.True(t, ok, "%s.%s", tt.module, tt.memory)
		assert.Len(t, tos, 1)
		assert.Equal(t, tt.module+"."+tt.memory+".m1_ext", tos[0].String())
	}
}

func TestUnresolvedCanonicalReference(t *testing.T) {
	mem := ir.DefMemory{
		Name:      "m",
		DataType:  ir.NewUInt(8),
		Depth:     16,
		Readers:   []string{"r"},
		Canonical: util.Some(ir.MemRef{Module: "X", Memory: "nope"}),
	}
	//
	circuit := ir.NewCircuit("Top", ir.NewModule("Top", nil, ir.NewBlock(mem)))
	//
	_, err := Run(circuit, conf.NewTextWriter(&bytes.Buffer{}))
	assert.Error(t, err)
	//
	var ierr *InternalError
	assert.True(t, errors.As(err, &ierr))
}

func TestUnsupportedLayoutReportsContext(t *testing.T) {
	mem := ir.DefMemory{
		Name:     "m",
		DataType: ir.NewBundle(ir.NewField("a", ir.NewUInt(4))),
		Depth:    16,
		Writers:  []string{"w"},
		MaskGran: util.Some(uint(1)),
	}
	//
	circuit := ir.NewCircuit("Top", ir.NewModule("Top", nil, ir.NewBlock(mem)))
	//
	_, err := Run(circuit, conf.NewTextWriter(&bytes.Buffer{}))
	assert.Error(t, err)
	//
	var lerr *LayoutError
	assert.True(t, errors.As(err, &lerr))
	assert.Equal(t, "Top", lerr.Module)
	assert.Equal(t, "m", lerr.Memory)
}

func TestPinAnnotationDistribution(t *testing.T) {
	circuit := scalarMemCircuit(util.None[uint]())
	circuit.Annotations = []ir.Annotation{
		ir.NewPinAnnotation("pwr_en", "clamp"),
		ir.NewSinkAnnotation("Other", "x"),
	}
	//
	result, _ := run(t, circuit)
	// One sink per pin per generated blackbox, followed by the input
	// annotations unchanged.
	assert.Len(t, result.Circuit.Annotations, 4)
	assert.Equal(t, ir.NewSinkAnnotation("m_ext", "pwr_en"), result.Circuit.Annotations[0])
	assert.Equal(t, ir.NewSinkAnnotation("m_ext", "clamp"), result.Circuit.Annotations[1])
	assert.Equal(t, circuit.Annotations[0], result.Circuit.Annotations[2])
	assert.Equal(t, circuit.Annotations[1], result.Circuit.Annotations[3])
}

func TestDuplicatePinAnnotationAborts(t *testing.T) {
	circuit := scalarMemCircuit(util.None[uint]())
	circuit.Annotations = []ir.Annotation{
		ir.NewPinAnnotation("pwr_en"),
		ir.NewPinAnnotation("clamp"),
	}
	//
	_, err := Run(circuit, conf.NewTextWriter(&bytes.Buffer{}))
	assert.Error(t, err)
	//
	var ierr *InternalError
	assert.True(t, errors.As(err, &ierr))
}

// Repeated runs over equivalent circuits must produce identical output,
// since downstream artifacts are diffed across builds.
func TestDeterministicOutput(t *testing.T) {
	_, conf1 := run(t, scalarMemCircuit(util.Some(uint(1))))
	_, conf2 := run(t, scalarMemCircuit(util.Some(uint(1))))
	//
	assert.Equal(t, conf1, conf2)
}

// Statements other than memory declarations survive rewriting untouched, in
// their original positions.
func TestNonMemoryStatementsPreserved(t *testing.T) {
	var (
		connect = ir.NewConnect(ir.NewReference("a"), ir.NewReference("b"))
		mem     = ir.DefMemory{
			Name:     "m",
			DataType: ir.NewUInt(2),
			Depth:    4,
			Readers:  []string{"r"},
		}
	)
	//
	circuit := ir.NewCircuit("Top",
		ir.NewModule("Top", nil, ir.NewBlock(connect, mem, ir.NewInstance("u", "Sub"))))
	//
	result, _ := run(t, circuit)
	//
	assert.Equal(t, []string{"a <= b", "inst m of Top_m", "inst u of Sub"},
		bodyStrings(result.Circuit.Modules[0]))
}
