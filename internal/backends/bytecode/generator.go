package bytecode

import (
	"fmt"
	"io"

	"github.com/khevencolino/Nano/internal/backends"
	"github.com/khevencolino/Nano/internal/debug"
	"github.com/khevencolino/Nano/internal/parser"
)

// BytecodeBackend gera bytecode de pilha e serve de referência executável
// para a semântica do assembly
type BytecodeBackend struct {
	instructions []Instruction
	variables    map[string]int // nome -> índice
	varCount     int
}

func NewBytecodeBackend() *BytecodeBackend {
	return &BytecodeBackend{
		instructions: make([]Instruction, 0),
		variables:    make(map[string]int),
	}
}

func (b *BytecodeBackend) GetName() string      { return "Bytecode + VM" }
func (b *BytecodeBackend) GetExtension() string { return ".bc" }

// Compile gera o bytecode e escreve a listagem, uma instrução por linha
func (b *BytecodeBackend) Compile(programa *parser.ListaComandos, saida io.Writer) error {
	if err := b.Gerar(programa); err != nil {
		return err
	}

	for i, instr := range b.instructions {
		if _, err := fmt.Fprintf(saida, "%03d: %s\n", i, instr); err != nil {
			return err
		}
	}
	return nil
}

// Gerar produz o bytecode sem escrever nada
func (b *BytecodeBackend) Gerar(programa *parser.ListaComandos) error {
	debug.Printf("Compilando para Bytecode...\n")

	b.instructions = b.instructions[:0]
	clear(b.variables)
	b.varCount = 0

	if programa == nil {
		return backends.ErrRaizInvalida
	}

	for i, comando := range programa.Comandos {
		debug.Printf("  Processando comando %d...\n", i+1)
		if err := b.visitar(comando); err != nil {
			return err
		}
	}

	b.emit(OP_HALT, 0, 0)
	return nil
}

// Executar roda na VM o bytecode da última chamada a Gerar
func (b *BytecodeBackend) Executar(saida io.Writer) error {
	debug.Printf("Executando na Virtual Machine...\n")

	vm := NewVM(b.varCount, saida)
	return vm.Execute(b.instructions)
}

// Instrucoes retorna o bytecode gerado
func (b *BytecodeBackend) Instrucoes() []Instruction {
	return b.instructions
}

func (b *BytecodeBackend) visitar(no parser.No) error {
	if no == nil {
		return fmt.Errorf("%w: nó ausente", backends.ErrNoDesconhecido)
	}
	if resultado := no.Aceitar(b); resultado != nil {
		return resultado.(error)
	}
	return nil
}

// Implementação da interface visitor
func (b *BytecodeBackend) ListaComandos(lista *parser.ListaComandos) interface{} {
	return fmt.Errorf("%w: lista de comandos aninhada", backends.ErrNoDesconhecido)
}

func (b *BytecodeBackend) Atribuicao(atribuicao *parser.Atribuicao) interface{} {
	if err := b.visitar(atribuicao.Valor); err != nil {
		return err
	}
	varIndex := b.declareVariable(atribuicao.Nome)
	b.emit(OP_STORE, int64(varIndex), atribuicao.Token.Position.Line)
	return nil
}

func (b *BytecodeBackend) Imprime(imprime *parser.Imprime) interface{} {
	if err := b.visitar(imprime.Valor); err != nil {
		return err
	}
	b.emit(OP_PRINT, 0, imprime.Token.Position.Line)
	return nil
}

func (b *BytecodeBackend) Constante(constante *parser.Constante) interface{} {
	b.emit(OP_CONST, constante.Valor, constante.Token.Position.Line)
	return nil
}

func (b *BytecodeBackend) Variavel(variavel *parser.Variavel) interface{} {
	// Variável lida antes de atribuída ganha um índice e vale 0
	varIndex := b.declareVariable(variavel.Nome)
	b.emit(OP_LOAD, int64(varIndex), variavel.Token.Position.Line)
	return nil
}

func (b *BytecodeBackend) OperacaoBinaria(operacao *parser.OperacaoBinaria) interface{} {
	if err := b.visitar(operacao.OperandoEsquerdo); err != nil {
		return err
	}
	if err := b.visitar(operacao.OperandoDireito); err != nil {
		return err
	}

	switch operacao.Operador {
	case parser.ADICAO:
		b.emit(OP_ADD, 0, operacao.Token.Position.Line)
	case parser.SUBTRACAO:
		b.emit(OP_SUB, 0, operacao.Token.Position.Line)
	case parser.MULTIPLICACAO:
		b.emit(OP_MUL, 0, operacao.Token.Position.Line)
	case parser.DIVISAO:
		b.emit(OP_DIV, 0, operacao.Token.Position.Line)
	default:
		return fmt.Errorf("%w: operador %d", backends.ErrNoDesconhecido, operacao.Operador)
	}
	return nil
}

func (b *BytecodeBackend) emit(op OpCode, operand int64, line int) {
	b.instructions = append(b.instructions, Instruction{
		OpCode:  op,
		Operand: operand,
		Line:    line,
	})
}

func (b *BytecodeBackend) declareVariable(nome string) int {
	if index, exists := b.variables[nome]; exists {
		return index
	}

	index := b.varCount
	b.variables[nome] = index
	b.varCount++
	return index
}
