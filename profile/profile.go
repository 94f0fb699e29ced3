// Package profile loads instruction set profiles: the instructions and
// registers of an architecture together with its AT&T syntax settings.
package profile

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ChainSafe/asm-lens/asmparser"
)

//go:embed x86_64.yaml
var x86_64 []byte

var (
	defaultOnce    sync.Once
	defaultProfile *ISAProfile
)

// ISAProfile represents the instruction set of an architecture.
type ISAProfile struct {
	Name         string            `yaml:"name"`
	Syntax       Syntax            `yaml:"syntax"`
	Registers    []RegisterSpec    `yaml:"registers"`
	Instructions []InstructionSpec `yaml:"instructions"`

	registers map[string]*register
	opcodes   map[string]*opcode
}

// Syntax holds the syntax settings of the profile.
type Syntax struct {
	MemoryOpen  string `yaml:"memory_open"`
	MemoryClose string `yaml:"memory_close"`
}

// RegisterSpec describes one register.
type RegisterSpec struct {
	Name  string `yaml:"name"`
	Width int    `yaml:"width"`
}

// InstructionSpec describes one mnemonic. Argument indexes follow Intel
// operand order: index 0 is the destination.
type InstructionSpec struct {
	Mnemonic string     `yaml:"mnemonic"`
	Reads    []int      `yaml:"reads"`
	Writes   []int      `yaml:"writes"`
	Forms    [][]string `yaml:"forms"`
}

// Default returns the built-in x86-64 profile.
func Default() *ISAProfile {
	defaultOnce.Do(func() {
		prof, err := Decode(x86_64)
		if err != nil {
			panic(fmt.Sprintf("invalid built-in profile: %v", err))
		}
		defaultProfile = prof
	})
	return defaultProfile
}

// LoadProfile loads an instruction set profile from a YAML file.
func LoadProfile(filename string) (*ISAProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}
	prof, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", filename, err)
	}
	return prof, nil
}

// Decode parses and validates a YAML profile.
func Decode(data []byte) (*ISAProfile, error) {
	var prof ISAProfile
	if err := yaml.Unmarshal(data, &prof); err != nil {
		return nil, err
	}
	if err := prof.index(); err != nil {
		return nil, err
	}
	return &prof, nil
}

func (p *ISAProfile) index() error {
	if p.Syntax.MemoryOpen == "" {
		p.Syntax.MemoryOpen = "("
	}
	if p.Syntax.MemoryClose == "" {
		p.Syntax.MemoryClose = ")"
	}
	p.registers = make(map[string]*register, len(p.Registers))
	for _, spec := range p.Registers {
		if spec.Name == "" {
			return errors.New("register without a name")
		}
		if _, exists := p.registers[spec.Name]; exists {
			return fmt.Errorf("duplicate register %s", spec.Name)
		}
		p.registers[spec.Name] = &register{name: spec.Name, width: spec.Width}
	}
	p.opcodes = make(map[string]*opcode, len(p.Instructions))
	for _, spec := range p.Instructions {
		if spec.Mnemonic == "" {
			return errors.New("instruction without a mnemonic")
		}
		if _, exists := p.opcodes[spec.Mnemonic]; exists {
			return fmt.Errorf("duplicate instruction %s", spec.Mnemonic)
		}
		op, err := newOpcode(spec)
		if err != nil {
			return err
		}
		p.opcodes[spec.Mnemonic] = op
	}
	return nil
}

// Opcode implements asmparser.InstructionSet.
func (p *ISAProfile) Opcode(mnemonic string) (asmparser.Opcode, bool) {
	op, ok := p.opcodes[mnemonic]
	if !ok {
		return nil, false
	}
	return op, true
}

// Register implements asmparser.InstructionSet.
func (p *ISAProfile) Register(name string) (asmparser.Register, bool) {
	reg, ok := p.registers[name]
	if !ok {
		return nil, false
	}
	return reg, true
}

type register struct {
	name  string
	width int
}

func (r *register) Name() string { return r.name }
func (r *register) Width() int { return r.width }
func (r *register) String() string {
	return "%" + r.name
}

type opcode struct {
	mnemonic string
	reads    map[int]bool
	writes   map[int]bool
	forms    [][]string
}

func newOpcode(spec InstructionSpec) (*opcode, error) {
	op := &opcode{
		mnemonic: spec.Mnemonic,
		reads:    make(map[int]bool, len(spec.Reads)),
		writes:   make(map[int]bool, len(spec.Writes)),
		forms:    spec.Forms,
	}
	for _, i := range spec.Reads {
		if i < 0 {
			return nil, fmt.Errorf("instruction %s: negative read argument %d", spec.Mnemonic, i)
		}
		op.reads[i] = true
	}
	for _, i := range spec.Writes {
		if i < 0 {
			return nil, fmt.Errorf("instruction %s: negative write argument %d", spec.Mnemonic, i)
		}
		op.writes[i] = true
	}
	return op, nil
}

func (o *opcode) Mnemonic() string { return o.mnemonic }
func (o *opcode) ReadsArg(index int) bool { return o.reads[index] }
func (o *opcode) WritesArg(index int) bool { return o.writes[index] }
func (o *opcode) Forms() [][]string { return o.forms }
