package quadro

import (
	"errors"
	"fmt"
)

const (
	// MaxVariaveis é o limite de variáveis distintas por unidade de compilação
	MaxVariaveis = 64
	// TamanhoSlot é o tamanho em bytes de cada variável no quadro
	TamanhoSlot = 8
	// alinhamentoPilha é o alinhamento exigido pela ABI System V
	alinhamentoPilha = 16
)

// ErrMuitasVariaveis é fatal: a compilação é abortada
var ErrMuitasVariaveis = errors.New("muitas variáveis")

type simbolo struct {
	nome   string
	offset int
}

// Tabela associa cada variável a um deslocamento negativo a partir de %rbp,
// na ordem da primeira referência
type Tabela struct {
	simbolos []simbolo
	indice   map[string]int
	cursor   int // Último deslocamento alocado; começa em 0
}

// NovaTabela cria uma tabela vazia
func NovaTabela() *Tabela {
	return &Tabela{indice: make(map[string]int)}
}

// Resolver retorna o deslocamento da variável, alocando um slot novo na primeira referência
func (t *Tabela) Resolver(nome string) (int, error) {
	if i, ok := t.indice[nome]; ok {
		return t.simbolos[i].offset, nil
	}

	if len(t.simbolos) >= MaxVariaveis {
		return 0, fmt.Errorf("%w (máximo %d): '%s'", ErrMuitasVariaveis, MaxVariaveis, nome)
	}

	t.cursor -= TamanhoSlot
	t.indice[nome] = len(t.simbolos)
	t.simbolos = append(t.simbolos, simbolo{nome: nome, offset: t.cursor})
	return t.cursor, nil
}

// Reiniciar esvazia a tabela e zera o cursor
func (t *Tabela) Reiniciar() {
	t.simbolos = t.simbolos[:0]
	clear(t.indice)
	t.cursor = 0
}

// Quantidade retorna o número de variáveis alocadas
func (t *Tabela) Quantidade() int {
	return len(t.simbolos)
}

// Nomes retorna as variáveis na ordem de alocação
func (t *Tabela) Nomes() []string {
	nomes := make([]string, len(t.simbolos))
	for i, s := range t.simbolos {
		nomes[i] = s.nome
	}
	return nomes
}

// TamanhoQuadro retorna o espaço a reservar: o maior deslocamento em módulo,
// arredondado para múltiplo de 16
func (t *Tabela) TamanhoQuadro() int {
	return (-t.cursor + alinhamentoPilha - 1) &^ (alinhamentoPilha - 1)
}
