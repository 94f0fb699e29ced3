package att

// directives lists the assembler directive spellings recognised verbatim.
var directives = map[string]struct{}{
	".align":                 {},
	".ascii":                 {},
	".asciz":                 {},
	".att_syntax":            {},
	".balign":                {},
	".bss":                   {},
	".byte":                  {},
	".cfi_adjust_cfa_offset": {},
	".cfi_def_cfa":           {},
	".cfi_def_cfa_offset":    {},
	".cfi_def_cfa_register":  {},
	".cfi_endproc":           {},
	".cfi_lsda":              {},
	".cfi_offset":            {},
	".cfi_personality":       {},
	".cfi_remember_state":    {},
	".cfi_restore":           {},
	".cfi_restore_state":     {},
	".cfi_sections":          {},
	".cfi_startproc":         {},
	".code16":                {},
	".code32":                {},
	".code64":                {},
	".comm":                  {},
	".data":                  {},
	".double":                {},
	".else":                  {},
	".elseif":                {},
	".end":                   {},
	".endif":                 {},
	".endm":                  {},
	".endr":                  {},
	".equ":                   {},
	".err":                   {},
	".error":                 {},
	".extern":                {},
	".file":                  {},
	".fill":                  {},
	".float":                 {},
	".global":                {},
	".globl":                 {},
	".hidden":                {},
	".ident":                 {},
	".if":                    {},
	".ifdef":                 {},
	".ifndef":                {},
	".incbin":                {},
	".include":               {},
	".int":                   {},
	".intel_syntax":          {},
	".internal":              {},
	".lcomm":                 {},
	".loc":                   {},
	".local":                 {},
	".long":                  {},
	".macro":                 {},
	".nops":                  {},
	".org":                   {},
	".p2align":               {},
	".popsection":            {},
	".previous":              {},
	".protected":             {},
	".pushsection":           {},
	".quad":                  {},
	".rept":                  {},
	".rodata":                {},
	".section":               {},
	".set":                   {},
	".short":                 {},
	".size":                  {},
	".skip":                  {},
	".sleb128":               {},
	".space":                 {},
	".string":                {},
	".subsection":            {},
	".symver":                {},
	".tbss":                  {},
	".tdata":                 {},
	".text":                  {},
	".type":                  {},
	".uleb128":               {},
	".value":                 {},
	".warning":               {},
	".weak":                  {},
	".weakref":               {},
	".word":                  {},
	".zero":                  {},
}

// Directives that declare the symbols following them as visible outside the
// function they appear in.
var globalDirectives = map[string]struct{}{
	".globl":  {},
	".global": {},
	".local":  {},
}

// Operands of a .type directive marking a symbol as a function.
var functionTypes = map[string]struct{}{
	"function":  {},
	"%function": {},
	"STT_FUNC":  {},
}

// IsDirective reports whether name is a known directive spelling.
func IsDirective(name string) bool {
	_, ok := directives[name]
	return ok
}
