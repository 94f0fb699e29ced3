package att

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChainSafe/asm-lens/asmparser"
	"github.com/ChainSafe/asm-lens/profile"
)

func TestClassify(t *testing.T) {
	r := NewResolver(profile.Default())
	cases := map[string]Class{
		".globl":   ClassDirective,
		".section": ClassDirective,
		".GLOBL":   ClassUnknown,
		"movl":     ClassInstruction,
		"mov":      ClassInstruction,
		"ret":      ClassInstruction,
		"main":     ClassUnknown,
		".L2":      ClassUnknown,
	}
	for name, want := range cases {
		assert.Equal(t, want, r.Classify(name), name)
	}
}

func TestResolveInstructionSuffix(t *testing.T) {
	isa := profile.Default()
	r := NewResolver(isa)
	for _, spec := range isa.Instructions {
		base, ok := r.ResolveInstruction(spec.Mnemonic)
		require.True(t, ok, spec.Mnemonic)
		for _, suffix := range []string{"b", "w", "l", "q"} {
			name := spec.Mnemonic + suffix
			if _, known := isa.Opcode(name); known {
				continue
			}
			op, ok := r.ResolveInstruction(name)
			if assert.True(t, ok, name) {
				assert.Equal(t, base, op, name)
			}
		}
	}
}

func TestResolveInstructionStripsOnce(t *testing.T) {
	r := NewResolver(profile.Default())

	_, ok := r.ResolveInstruction("movlq")
	assert.False(t, ok)

	_, ok = r.ResolveInstruction("l")
	assert.False(t, ok)

	// An exact match wins over stripping.
	op, ok := r.ResolveInstruction("shl")
	require.True(t, ok)
	assert.Equal(t, "shl", op.Mnemonic())

	op, size, ok := r.resolveMnemonic("shll")
	require.True(t, ok)
	assert.Equal(t, "shl", op.Mnemonic())
	assert.Equal(t, asmparser.SizeLong, size)

	_, size, ok = r.resolveMnemonic("cltq")
	require.True(t, ok)
	assert.Equal(t, asmparser.SizeNone, size)
}

func TestResolveRegisterSigil(t *testing.T) {
	isa := profile.Default()
	r := NewResolver(isa)
	for _, spec := range isa.Registers {
		plain, ok := r.ResolveRegister(spec.Name)
		require.True(t, ok, spec.Name)
		sigil, ok := r.ResolveRegister("%" + spec.Name)
		require.True(t, ok, spec.Name)
		assert.Same(t, plain, sigil, spec.Name)
	}

	_, ok := r.ResolveRegister("%%eax")
	assert.False(t, ok)
	_, ok = r.ResolveRegister("%nope")
	assert.False(t, ok)
}

func TestResolverWithoutModel(t *testing.T) {
	r := NewResolver(nil)
	assert.Equal(t, ClassDirective, r.Classify(".text"))
	assert.Equal(t, ClassUnknown, r.Classify("movl"))
	_, ok := r.ResolveRegister("%eax")
	assert.False(t, ok)
}
