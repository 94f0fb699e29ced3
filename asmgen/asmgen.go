// Package asmgen produces AT&T assembly input for the parser.
package asmgen

type Source int64

const (
	// SourceAssembly is an assembly file used as-is.
	SourceAssembly Source = iota + 1
	// SourceC is a C file compiled to assembly.
	SourceC
)

// ParseSource maps a --source-type value to a Source.
func ParseSource(name string) (Source, bool) {
	switch name {
	case "", "asm":
		return SourceAssembly, true
	case "c":
		return SourceC, true
	default:
		return 0, false
	}
}

type Generator interface {
	// Generate produces the assembly of target and returns the path of the
	// assembly file. An empty outputPath leaves the choice of file to the
	// generator.
	Generate(mode Source, target string, outputPath string) (string, error)
}

type Type int64

const (
	TypeCC Type = iota + 1
)
