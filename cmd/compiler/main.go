package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khevencolino/Nano/internal/compiler"
	"github.com/khevencolino/Nano/internal/debug"
)

var opcoes = compiler.OpcoesPadrao()

var rootCmd = &cobra.Command{
	Use:   "nano [flags] <arquivo>",
	Short: "Compilador Nano - atribuições e prints inteiros para assembly x86-64 e TAC",
	Long: `Compilador Nano

Lê um programa com atribuições e prints de expressões inteiras e gera:
    assembly   Assembly x86-64 (AT&T, System V), linkado com printf
    tac        Código de três endereços
    llvm       LLVM IR (clang output.ll -o programa)
    bytecode   Listagem de bytecode para a VM de referência`,
	Example: `    nano programa.nano                          # output.s e output.tac
    nano --backend=assembly,llvm programa.nano  # Assembly e LLVM IR
    nano --arvore --executar programa.nano      # Desenha a AST e roda na VM`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          func(cmd *cobra.Command, args []string) error {
		compilador := compiler.NovoCompilador()
		if err := compilador.CompilarArquivo(args[0], opcoes); err != nil {
			return fmt.Errorf("erro de compilação: %w", err)
		}
		return nil
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringSliceVarP(&opcoes.Backends, "backend", "b", opcoes.Backends, "Backends a usar (assembly, tac, llvm, bytecode)")
	flags.StringVar(&opcoes.Arch, "arch", opcoes.Arch, "Arquitetura para assembly (x86_64)")
	flags.StringToStringVarP(&opcoes.Saidas, "saida", "o", opcoes.Saidas, "Arquivo de saída por backend, ex.: assembly=prog.s")
	flags.BoolVar(&opcoes.MostrarTokens, "tokens", false, "Imprime os tokens")
	flags.BoolVar(&opcoes.MostrarArvore, "arvore", false, "Desenha a árvore sintática")
	flags.BoolVar(&opcoes.Executar, "executar", false, "Executa o programa na VM de bytecode")
	flags.BoolVar(&opcoes.ReservaAntecipada, "reserva-antecipada", false, "Reserva o quadro de pilha no prólogo do assembly")
	flags.BoolVar(&debug.Enabled, "debug", false, "Ativar mensagens de debug")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}
