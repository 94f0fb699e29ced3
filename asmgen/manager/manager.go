package manager

import (
	"errors"

	"github.com/ChainSafe/asm-lens/asmgen"
	"github.com/ChainSafe/asm-lens/asmgen/cc"
)

func NewGenerator(typ asmgen.Type, compiler string, flags ...string) (asmgen.Generator, error) {
	switch typ {
	case asmgen.TypeCC:
		return cc.New(compiler, flags...), nil
	default:
		return nil, errors.New("assembly generator not supported")
	}
}
