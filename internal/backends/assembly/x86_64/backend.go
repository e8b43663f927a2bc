package x86_64

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/khevencolino/Nano/internal/backends"
	"github.com/khevencolino/Nano/internal/backends/assembly/quadro"
	"github.com/khevencolino/Nano/internal/debug"
	"github.com/khevencolino/Nano/internal/parser"
)

// rotuloFormato é o único símbolo da seção de dados: "%d\n" para o printf
const rotuloFormato = ".L_fmt_d"

// X86_64Backend gera assembly AT&T para a convenção System V.
// O resultado da expressão corrente fica em %rax; valores intermediários
// vão para a pilha com push/pop.
type X86_64Backend struct {
	// ReservaAntecipada coloca o `subq $N, %rsp` no prólogo em vez de depois
	// dos comandos. Desligado por padrão, ver DESIGN.md.
	ReservaAntecipada bool

	output strings.Builder
	corpo  strings.Builder
	quadro *quadro.Tabela
}

func NewX86_64Backend() *X86_64Backend {
	return &X86_64Backend{
		quadro: quadro.NovaTabela(),
	}
}

func (a *X86_64Backend) GetName() string      { return "Assembly x86-64" }
func (a *X86_64Backend) GetExtension() string { return ".s" }

// Variaveis retorna as variáveis da última compilação, na ordem dos slots
func (a *X86_64Backend) Variaveis() []string {
	return a.quadro.Nomes()
}

func (a *X86_64Backend) Compile(programa *parser.ListaComandos, saida io.Writer) error {
	debug.Printf("Compilando para Assembly x86-64...\n")

	a.output.Reset()
	a.corpo.Reset()
	a.quadro.Reiniciar()

	if programa == nil {
		return backends.ErrRaizInvalida
	}

	for i, comando := range programa.Comandos {
		debug.Printf("  Processando comando %d...\n", i+1)
		if err := a.gerar(comando); err != nil {
			return err
		}
	}

	a.gerarPrologo()
	if a.ReservaAntecipada {
		a.gerarReserva()
	}
	a.output.WriteString(a.corpo.String())
	if !a.ReservaAntecipada {
		// O tamanho do quadro só é conhecido depois de todos os comandos
		a.gerarReserva()
	}
	a.gerarEpilogo()

	_, err := io.WriteString(saida, a.output.String())
	return err
}

// gerar visita um nó e devolve o erro produzido pelo visitor, se houver
func (a *X86_64Backend) gerar(no parser.No) error {
	if no == nil {
		return fmt.Errorf("%w: nó ausente", backends.ErrNoDesconhecido)
	}
	if resultado := no.Aceitar(a); resultado != nil {
		return resultado.(error)
	}
	return nil
}

func (a *X86_64Backend) emitir(formato string, args ...interface{}) {
	a.corpo.WriteString("\t")
	a.corpo.WriteString(fmt.Sprintf(formato, args...))
	a.corpo.WriteString("\n")
}

// Implementação da interface visitor
func (a *X86_64Backend) ListaComandos(lista *parser.ListaComandos) interface{} {
	return fmt.Errorf("%w: lista de comandos aninhada", backends.ErrNoDesconhecido)
}

func (a *X86_64Backend) Atribuicao(atribuicao *parser.Atribuicao) interface{} {
	if err := a.gerar(atribuicao.Valor); err != nil {
		return err
	}
	offset, err := a.quadro.Resolver(atribuicao.Nome)
	if err != nil {
		return err
	}
	a.emitir("movq\t%%rax, %d(%%rbp)", offset)
	return nil
}

func (a *X86_64Backend) Imprime(imprime *parser.Imprime) interface{} {
	if err := a.gerar(imprime.Valor); err != nil {
		return err
	}
	a.emitir("movq\t%%rax, %%rsi")
	a.emitir("leaq\t%s(%%rip), %%rdi", rotuloFormato)
	a.emitir("movl\t$0, %%eax") // printf é variádico: nenhum registrador vetorial usado
	a.emitir("call\tprintf@PLT")
	return nil
}

func (a *X86_64Backend) Constante(constante *parser.Constante) interface{} {
	if constante.Valor < math.MinInt32 || constante.Valor > math.MaxInt32 {
		// movq só aceita imediato de 32 bits com extensão de sinal
		a.emitir("movabsq\t$%d, %%rax", constante.Valor)
		return nil
	}
	a.emitir("movq\t$%d, %%rax", constante.Valor)
	return nil
}

func (a *X86_64Backend) Variavel(variavel *parser.Variavel) interface{} {
	offset, err := a.quadro.Resolver(variavel.Nome)
	if err != nil {
		return err
	}
	a.emitir("movq\t%d(%%rbp), %%rax", offset)
	return nil
}

func (a *X86_64Backend) OperacaoBinaria(operacao *parser.OperacaoBinaria) interface{} {
	// Operando esquerdo
	if err := a.gerar(operacao.OperandoEsquerdo); err != nil {
		return err
	}
	a.emitir("pushq\t%%rax")

	// Operando direito: a partir daqui %rax tem o direito e a pilha o esquerdo
	if err := a.gerar(operacao.OperandoDireito); err != nil {
		return err
	}

	switch operacao.Operador {
	case parser.ADICAO:
		a.emitir("popq\t%%rbx")
		a.emitir("addq\t%%rbx, %%rax")
	case parser.MULTIPLICACAO:
		a.emitir("popq\t%%rbx")
		a.emitir("imulq\t%%rbx, %%rax")
	case parser.SUBTRACAO:
		// %rbx = esquerdo - direito
		a.emitir("popq\t%%rbx")
		a.emitir("subq\t%%rax, %%rbx")
		a.emitir("movq\t%%rbx, %%rax")
	case parser.DIVISAO:
		// Dividendo (esquerdo) em %rdx:%rax, divisor (direito) em %rbx.
		// Divisor zero não é verificado.
		a.emitir("popq\t%%rcx")
		a.emitir("movq\t%%rax, %%rbx")
		a.emitir("movq\t%%rcx, %%rax")
		a.emitir("cqto")
		a.emitir("idivq\t%%rbx")
	default:
		return fmt.Errorf("%w: operador %d", backends.ErrNoDesconhecido, operacao.Operador)
	}

	return nil
}

func (a *X86_64Backend) gerarPrologo() {
	a.output.WriteString(".data\n")
	a.output.WriteString(rotuloFormato + ":\n")
	a.output.WriteString("\t.string \"%d\\n\"\n")
	a.output.WriteString(".text\n")
	a.output.WriteString(".globl main\n")
	a.output.WriteString("main:\n")
	a.output.WriteString("\tpushq\t%rbp\n")
	a.output.WriteString("\tmovq\t%rsp, %rbp\n")
}

// gerarReserva reserva o quadro de uma vez, apenas se alguma variável foi alocada
func (a *X86_64Backend) gerarReserva() {
	if a.quadro.Quantidade() == 0 {
		return
	}
	a.output.WriteString(fmt.Sprintf("\tsubq\t$%d, %%rsp\n", a.quadro.TamanhoQuadro()))
}

func (a *X86_64Backend) gerarEpilogo() {
	a.output.WriteString("\tmovl\t$0, %eax\n")
	a.output.WriteString("\tleave\n")
	a.output.WriteString("\tret\n")
}
