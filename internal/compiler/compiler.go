package compiler

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/khevencolino/Nano/internal/backends"
	"github.com/khevencolino/Nano/internal/backends/assembly"
	"github.com/khevencolino/Nano/internal/backends/bytecode"
	"github.com/khevencolino/Nano/internal/backends/llvm"
	"github.com/khevencolino/Nano/internal/backends/tac"
	"github.com/khevencolino/Nano/internal/debug"
	"github.com/khevencolino/Nano/internal/lexer"
	"github.com/khevencolino/Nano/internal/parser"
	"github.com/khevencolino/Nano/internal/utils"
)

// Opcoes configura uma compilação
type Opcoes struct {
	Backends          []string          // Backends a executar, em ordem
	Arch              string            // Arquitetura do backend assembly
	Saidas            map[string]string // Backend -> arquivo de saída
	MostrarTokens     bool              // Imprime os tokens (debug)
	MostrarArvore     bool              // Desenha a AST com treedrawer
	Executar          bool              // Roda o programa na VM de bytecode
	ReservaAntecipada bool              // Reserva o quadro no prólogo do assembly
}

// OpcoesPadrao reproduz o comportamento clássico: output.s e output.tac
func OpcoesPadrao() Opcoes {
	return Opcoes{
		Backends: []string{"assembly", "tac"},
		Arch:     "x86_64",
		Saidas: map[string]string{
			"assembly": "output.s",
			"tac":      "output.tac",
			"llvm":     "output.ll",
			"bytecode": "output.bc",
		},
	}
}

// Compiler representa o compilador principal
type Compiler struct {
	saida io.Writer // Mensagens de progresso e saída da VM
	erros io.Writer // Diagnósticos
}

// NovoCompilador cria um compilador que escreve em stdout/stderr
func NovoCompilador() *Compiler {
	return NovoCompiladorCom(os.Stdout, os.Stderr)
}

// NovoCompiladorCom cria um compilador com saídas próprias
func NovoCompiladorCom(saida, erros io.Writer) *Compiler {
	return &Compiler{saida: saida, erros: erros}
}

// CompilarArquivo compila um arquivo fonte
func (c *Compiler) CompilarArquivo(arquivoEntrada string, opcoes Opcoes) error {
	conteudo, err := utils.LerArquivo(arquivoEntrada)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.saida, "Iniciando compilação do arquivo: %s\n", arquivoEntrada)

	raiz, err := c.Analisar(conteudo, opcoes)
	if err != nil {
		return fmt.Errorf("análise falhou: %w", err)
	}
	defer func() {
		liberacao := parser.Liberar(raiz)
		debug.Printf("AST liberada: %d nós, %d nomes\n", liberacao.Nos, liberacao.Nomes)
	}()

	fmt.Fprintf(c.saida, "Análise concluída. AST construída.\n")

	if opcoes.MostrarArvore {
		parser.NovoVisualizador().ImprimirArvore(c.saida, raiz)
	}

	if err := c.GerarCodigo(raiz, opcoes); err != nil {
		return err
	}

	if opcoes.Executar {
		if err := c.executar(raiz); err != nil {
			return err
		}
	}

	fmt.Fprintf(c.saida, "Compilação finalizada com sucesso.\n")
	return nil
}

// Analisar faz a análise léxica e sintática, entregando a raiz da árvore
func (c *Compiler) Analisar(conteudo string, opcoes Opcoes) (*parser.ListaComandos, error) {
	tokens, err := lexer.NovoLexer(conteudo).Tokenizar()
	if err != nil {
		return nil, err
	}

	if opcoes.MostrarTokens {
		lexer.ImprimirTokens(c.saida, tokens)
	}

	if err := lexer.ValidarParenteses(tokens); err != nil {
		return nil, err
	}

	return parser.NovoParser(tokens).AnalisarPrograma()
}

// GerarCodigo roda os backends escolhidos, um de cada vez, sobre a mesma árvore.
// Falha ao abrir um arquivo de saída só pula aquele backend; qualquer outro erro aborta.
func (c *Compiler) GerarCodigo(raiz parser.No, opcoes Opcoes) error {
	programa, ok := raiz.(*parser.ListaComandos)
	if !ok || programa == nil {
		return backends.ErrRaizInvalida
	}

	for _, nome := range opcoes.Backends {
		backend, err := novoBackend(nome, opcoes)
		if err != nil {
			return err
		}

		arquivoSaida := opcoes.Saidas[nome]
		if arquivoSaida == "" {
			arquivoSaida = "output" + backend.GetExtension()
		}

		fmt.Fprintf(c.saida, "Gerando %s em: %s\n", backend.GetName(), arquivoSaida)
		if err := c.gerarArquivo(backend, programa, arquivoSaida); err != nil {
			var erroSaida *utils.ErroSaida
			if errors.As(err, &erroSaida) {
				fmt.Fprintf(c.erros, "Aviso: %v\n", err)
				continue
			}
			return fmt.Errorf("%s: %w", backend.GetName(), err)
		}
	}

	fmt.Fprintf(c.saida, "Geração de código concluída.\n")
	return nil
}

func (c *Compiler) gerarArquivo(backend backends.Backend, programa *parser.ListaComandos, arquivoSaida string) (err error) {
	arquivo, err := utils.CriarArquivo(arquivoSaida)
	if err != nil {
		return err
	}
	defer func() {
		if errFechar := arquivo.Close(); errFechar != nil && err == nil {
			err = &utils.ErroSaida{Arquivo: arquivoSaida, Err: errFechar}
		}
	}()

	return backend.Compile(programa, arquivo)
}

// executar roda o programa na VM de bytecode, imprimindo como o printf do assembly
func (c *Compiler) executar(programa *parser.ListaComandos) error {
	vm := bytecode.NewBytecodeBackend()
	if err := vm.Gerar(programa); err != nil {
		return err
	}
	return vm.Executar(c.saida)
}

// novoBackend cria um backend novo, com estado próprio, a partir do nome
func novoBackend(nome string, opcoes Opcoes) (backends.Backend, error) {
	switch nome {
	case "assembly", "asm", "native":
		return assembly.NewAssemblyBackend(opcoes.Arch, opcoes.ReservaAntecipada)
	case "tac", "ir":
		return tac.NewTACBackend(), nil
	case "llvm", "llvmir":
		return llvm.NewLLVMBackend(), nil
	case "bytecode", "bc":
		return bytecode.NewBytecodeBackend(), nil
	default:
		return nil, fmt.Errorf("backend desconhecido: %s", nome)
	}
}
