package tac

import (
	"fmt"
	"io"
)

/*
Código de três endereços gerado a partir da árvore. Cada instrução ocupa uma linha:
 * Copia(Destino, Valor)                 - `destino = valor`
 * Operacao(Destino, Esquerdo, Op, Dir)  - `destino = esquerdo op direito`
 * Imprime(Valor)                        - `print valor`
Um operando é um literal inteiro, um nome de variável ou um temporário tN.
*/

type Programa struct {
	Instrucoes []Instrucao
}

// Print escreve uma instrução por linha
func (p Programa) Print(saida io.Writer) error {
	for _, instrucao := range p.Instrucoes {
		if _, err := fmt.Fprintln(saida, instrucao); err != nil {
			return err
		}
	}
	return nil
}

type Instrucao interface {
	fmt.Stringer
	// GetDestino retorna o nome escrito pela instrução, ou "" se nenhum
	GetDestino() string
}

type Copia struct {
	Destino string
	Valor   string
}

func (c Copia) String() string {
	return fmt.Sprintf("%s = %s", c.Destino, c.Valor)
}

func (c Copia) GetDestino() string {
	return c.Destino
}

type Operacao struct {
	Destino  string
	Esquerdo string
	Operador string
	Direito  string
}

func (o Operacao) String() string {
	return fmt.Sprintf("%s = %s %s %s", o.Destino, o.Esquerdo, o.Operador, o.Direito)
}

func (o Operacao) GetDestino() string {
	return o.Destino
}

type Imprime struct {
	Valor string
}

func (i Imprime) String() string {
	return fmt.Sprintf("print %s", i.Valor)
}

func (i Imprime) GetDestino() string {
	return ""
}
