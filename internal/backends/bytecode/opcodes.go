package bytecode

import "fmt"

type OpCode byte

const (
	OP_CONST OpCode = iota // CONST valor
	OP_ADD                 // ADD
	OP_SUB                 // SUB
	OP_MUL                 // MUL
	OP_DIV                 // DIV
	OP_LOAD                // LOAD variavel_index
	OP_STORE               // STORE variavel_index
	OP_PRINT               // PRINT
	OP_HALT                // HALT
)

type Instruction struct {
	OpCode  OpCode
	Operand int64
	Line    int // para debug
}

// String formata a instrução como aparece na listagem .bc
func (i Instruction) String() string {
	switch i.OpCode {
	case OP_CONST, OP_LOAD, OP_STORE:
		return fmt.Sprintf("%s %d", i.OpCode, i.Operand)
	default:
		return i.OpCode.String()
	}
}

func (op OpCode) String() string {
	switch op {
	case OP_CONST:
		return "CONST"
	case OP_ADD:
		return "ADD"
	case OP_SUB:
		return "SUB"
	case OP_MUL:
		return "MUL"
	case OP_DIV:
		return "DIV"
	case OP_LOAD:
		return "LOAD"
	case OP_STORE:
		return "STORE"
	case OP_PRINT:
		return "PRINT"
	case OP_HALT:
		return "HALT"
	default:
		return "UNKNOWN"
	}
}
