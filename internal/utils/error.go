package utils

import (
	"fmt"
	"strings"
)

// CompilerError representa um erro do compilador com informações de posição
type CompilerError struct {
	Mensagem string // Mensagem de erro
	Linha    int    // Linha onde ocorreu o erro
	Coluna   int    // Coluna onde ocorreu o erro
	Detalhes string // Detalhes adicionais do erro
}

// Error implementa a interface error
func (e *CompilerError) Error() string {
	var builder strings.Builder
	builder.WriteString(e.Mensagem)
	if e.Linha > 0 && e.Coluna > 0 {
		builder.WriteString(fmt.Sprintf(" em linha %d, coluna %d", e.Linha, e.Coluna))
	}
	if e.Detalhes != "" {
		builder.WriteString(" (")
		builder.WriteString(e.Detalhes)
		builder.WriteString(")")
	}
	return builder.String()
}

// NovoErro cria um novo erro do compilador
func NovoErro(mensagem string, linha, coluna int, detalhes string) *CompilerError {
	return &CompilerError{
		Mensagem: mensagem,
		Linha:    linha,
		Coluna:   coluna,
		Detalhes: detalhes,
	}
}

// ErroSaida indica que um arquivo de saída não pôde ser criado.
// É o único erro recuperável: o backend afetado é pulado e os demais seguem.
type ErroSaida struct {
	Arquivo string
	Err     error
}

func (e *ErroSaida) Error() string {
	return fmt.Sprintf("erro ao abrir arquivo de saída %s: %v", e.Arquivo, e.Err)
}

func (e *ErroSaida) Unwrap() error {
	return e.Err
}
