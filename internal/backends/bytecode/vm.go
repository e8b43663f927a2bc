package bytecode

import (
	"errors"
	"fmt"
	"io"

	"github.com/khevencolino/Nano/internal/debug"
)

const tamanhoPilha = 256

var (
	ErrPilhaCheia = errors.New("stack overflow")
	ErrPilhaVazia = errors.New("stack underflow")
)

type VM struct {
	stack     []int64
	stackTop  int
	variables []int64
	pc        int // program counter
	saida     io.Writer
}

// NewVM cria uma VM com varCount variáveis zeradas; PRINT escreve em saida
func NewVM(varCount int, saida io.Writer) *VM {
	return &VM{
		stack:     make([]int64, tamanhoPilha), // stack fixo
		stackTop:  0,
		variables: make([]int64, varCount),
		pc:        0,
		saida:     saida,
	}
}

func (vm *VM) Execute(instructions []Instruction) error {
	debug.Printf("Executando %d instruções na VM...\n", len(instructions))

	for vm.pc < len(instructions) {
		instr := instructions[vm.pc]

		switch instr.OpCode {
		case OP_CONST:
			if err := vm.push(instr.Operand); err != nil {
				return err
			}

		case OP_ADD, OP_SUB, OP_MUL, OP_DIV:
			b, err := vm.pop()
			if err != nil {
				return err
			}
			a, err := vm.pop()
			if err != nil {
				return err
			}
			resultado, err := aplicar(instr, a, b)
			if err != nil {
				return err
			}
			if err := vm.push(resultado); err != nil {
				return err
			}

		case OP_LOAD:
			if int(instr.Operand) >= len(vm.variables) {
				return fmt.Errorf("índice de variável inválido: %d", instr.Operand)
			}
			if err := vm.push(vm.variables[instr.Operand]); err != nil {
				return err
			}

		case OP_STORE:
			value, err := vm.pop()
			if err != nil {
				return err
			}
			if int(instr.Operand) >= len(vm.variables) {
				return fmt.Errorf("índice de variável inválido: %d", instr.Operand)
			}
			vm.variables[instr.Operand] = value

		case OP_PRINT:
			value, err := vm.pop()
			if err != nil {
				return err
			}
			fmt.Fprintf(vm.saida, "%d\n", value)

		case OP_HALT:
			debug.Printf("Execução concluída\n")
			return nil

		default:
			return fmt.Errorf("opcode desconhecido: %d", instr.OpCode)
		}

		vm.pc++
	}

	return nil
}

// aplicar executa uma operação aritmética com a = esquerdo e b = direito
func aplicar(instr Instruction, a, b int64) (int64, error) {
	switch instr.OpCode {
	case OP_ADD:
		return a + b, nil
	case OP_SUB:
		return a - b, nil
	case OP_MUL:
		return a * b, nil
	default:
		if b == 0 {
			return 0, fmt.Errorf("divisão por zero na linha %d", instr.Line)
		}
		// Divisão inteira do Go trunca em direção a zero, como idiv
		return a / b, nil
	}
}

func (vm *VM) push(value int64) error {
	if vm.stackTop >= len(vm.stack) {
		return ErrPilhaCheia
	}
	vm.stack[vm.stackTop] = value
	vm.stackTop++
	return nil
}

func (vm *VM) pop() (int64, error) {
	if vm.stackTop <= 0 {
		return 0, ErrPilhaVazia
	}
	vm.stackTop--
	return vm.stack[vm.stackTop], nil
}
