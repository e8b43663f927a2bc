package llvm

import (
	"fmt"
	"io"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"github.com/khevencolino/Nano/internal/backends"
	"github.com/khevencolino/Nano/internal/debug"
	"github.com/khevencolino/Nano/internal/parser"
)

const formatoImpressao = "%ld\n\x00"

// LLVMBackend gera LLVM IR textual: um alloca i64 por variável e printf para print
type LLVMBackend struct {
	module    *ir.Module
	block     *ir.Block
	printf    *ir.Func
	formato   *ir.Global
	variables map[string]*ir.InstAlloca
	ordem     []string
}

func NewLLVMBackend() *LLVMBackend {
	return &LLVMBackend{
		variables: make(map[string]*ir.InstAlloca),
	}
}

func (l *LLVMBackend) GetName() string      { return "LLVM IR" }
func (l *LLVMBackend) GetExtension() string { return ".ll" }

func (l *LLVMBackend) Compile(programa *parser.ListaComandos, saida io.Writer) error {
	module, err := l.Gerar(programa)
	if err != nil {
		return err
	}
	_, err = io.WriteString(saida, module.String())
	return err
}

// Gerar constrói o módulo LLVM com a função main
func (l *LLVMBackend) Gerar(programa *parser.ListaComandos) (*ir.Module, error) {
	debug.Printf("Compilando para LLVM IR...\n")

	clear(l.variables)
	l.ordem = l.ordem[:0]

	if programa == nil {
		return nil, backends.ErrRaizInvalida
	}

	l.module = ir.NewModule()

	l.printf = l.module.NewFunc("printf", types.I32, ir.NewParam("format", types.NewPointer(types.I8)))
	l.printf.Sig.Variadic = true

	l.formato = l.module.NewGlobalDef(".fmt_d", constant.NewCharArrayFromString(formatoImpressao))
	l.formato.Immutable = true

	funcaoMain := l.module.NewFunc("main", types.I32)
	l.block = funcaoMain.NewBlock("")

	for i, comando := range programa.Comandos {
		debug.Printf("  Processando comando %d...\n", i+1)
		if _, err := l.visitar(comando); err != nil {
			return nil, err
		}
	}

	l.block.NewRet(constant.NewInt(types.I32, 0))
	return l.module, nil
}

// Variaveis retorna as variáveis na ordem dos allocas
func (l *LLVMBackend) Variaveis() []string {
	return l.ordem
}

func (l *LLVMBackend) visitar(no parser.No) (value.Value, error) {
	if no == nil {
		return nil, fmt.Errorf("%w: nó ausente", backends.ErrNoDesconhecido)
	}
	switch resultado := no.Aceitar(l).(type) {
	case error:
		return nil, resultado
	case value.Value:
		return resultado, nil
	default:
		return nil, nil
	}
}

// endereco retorna o alloca da variável, criando-o (com valor 0) na primeira referência
func (l *LLVMBackend) endereco(nome string) *ir.InstAlloca {
	if alloca, ok := l.variables[nome]; ok {
		return alloca
	}
	alloca := l.block.NewAlloca(types.I64)
	alloca.SetName(nome)
	l.block.NewStore(constant.NewInt(types.I64, 0), alloca)
	l.variables[nome] = alloca
	l.ordem = append(l.ordem, nome)
	return alloca
}

// Implementação da interface visitor
func (l *LLVMBackend) ListaComandos(lista *parser.ListaComandos) interface{} {
	return fmt.Errorf("%w: lista de comandos aninhada", backends.ErrNoDesconhecido)
}

func (l *LLVMBackend) Atribuicao(atribuicao *parser.Atribuicao) interface{} {
	valor, err := l.visitar(atribuicao.Valor)
	if err != nil {
		return err
	}
	l.block.NewStore(valor, l.endereco(atribuicao.Nome))
	return nil
}

func (l *LLVMBackend) Imprime(imprime *parser.Imprime) interface{} {
	valor, err := l.visitar(imprime.Valor)
	if err != nil {
		return err
	}
	ponteiro := l.block.NewGetElementPtr(types.NewArray(uint64(len(formatoImpressao)), types.I8), l.formato,
		constant.NewInt(types.I64, 0), constant.NewInt(types.I64, 0))
	l.block.NewCall(l.printf, ponteiro, valor)
	return nil
}

func (l *LLVMBackend) Constante(constante *parser.Constante) interface{} {
	return constant.NewInt(types.I64, constante.Valor)
}

func (l *LLVMBackend) Variavel(variavel *parser.Variavel) interface{} {
	return l.block.NewLoad(types.I64, l.endereco(variavel.Nome))
}

func (l *LLVMBackend) OperacaoBinaria(operacao *parser.OperacaoBinaria) interface{} {
	esquerda, err := l.visitar(operacao.OperandoEsquerdo)
	if err != nil {
		return err
	}
	direita, err := l.visitar(operacao.OperandoDireito)
	if err != nil {
		return err
	}

	switch operacao.Operador {
	case parser.ADICAO:
		return l.block.NewAdd(esquerda, direita)
	case parser.SUBTRACAO:
		return l.block.NewSub(esquerda, direita)
	case parser.MULTIPLICACAO:
		return l.block.NewMul(esquerda, direita)
	case parser.DIVISAO:
		// Sem proteção contra divisor zero, igual ao assembly
		return l.block.NewSDiv(esquerda, direita)
	default:
		return fmt.Errorf("%w: operador %d", backends.ErrNoDesconhecido, operacao.Operador)
	}
}
