package parser

import (
	"fmt"
	"strings"

	"github.com/khevencolino/Nano/internal/lexer"
)

// capacidadeInicialComandos é a capacidade inicial de uma lista de comandos
const capacidadeInicialComandos = 4

// No representa a interface base para todos os nós da AST
type No interface {
	Aceitar(visitante Visitante) interface{}
	String() string
}

// Expressao é um nó que produz um valor inteiro
type Expressao interface {
	No
	expressao()
}

// Comando é um nó que pode aparecer numa lista de comandos
type Comando interface {
	No
	comando()
}

// estadoNo guarda o estado de ciclo de vida comum a todos os nós
type estadoNo struct {
	liberado bool
}

// Liberado indica se o nó já passou por Liberar
func (e *estadoNo) Liberado() bool {
	return e.liberado
}

// ListaComandos é a raiz de todo programa: comandos em ordem de execução
type ListaComandos struct {
	estadoNo
	Comandos []Comando
}

// NovaListaComandos cria uma lista de comandos vazia
func NovaListaComandos() *ListaComandos {
	return &ListaComandos{Comandos: make([]Comando, 0, capacidadeInicialComandos)}
}

// Adicionar transfere a posse do comando para a lista
func (l *ListaComandos) Adicionar(comando Comando) {
	l.Comandos = append(l.Comandos, comando)
}

// Aceitar implementa o padrão visitor para ListaComandos
func (l *ListaComandos) Aceitar(visitante Visitante) interface{} {
	return visitante.ListaComandos(l)
}

// String retorna os comandos separados por "; "
func (l *ListaComandos) String() string {
	partes := make([]string, 0, len(l.Comandos))
	for _, comando := range l.Comandos {
		partes = append(partes, comando.String()+";")
	}
	return strings.Join(partes, " ")
}

// Atribuicao representa `nome = expressão`
type Atribuicao struct {
	estadoNo
	Nome  string
	Valor Expressao
	Token lexer.Token
}

// NovaAtribuicao cria uma atribuição com uma cópia própria do nome
func NovaAtribuicao(nome string, valor Expressao) *Atribuicao {
	return &Atribuicao{Nome: strings.Clone(nome), Valor: valor}
}

// Aceitar implementa o padrão visitor para Atribuicao
func (a *Atribuicao) Aceitar(visitante Visitante) interface{} {
	return visitante.Atribuicao(a)
}

// String retorna representação em string da atribuição
func (a *Atribuicao) String() string {
	return fmt.Sprintf("%s = %s", a.Nome, a.Valor)
}

func (a *Atribuicao) comando() {}

// Imprime representa `print expressão`
type Imprime struct {
	estadoNo
	Valor Expressao
	Token lexer.Token
}

// NovoImprime cria um comando de impressão
func NovoImprime(valor Expressao) *Imprime {
	return &Imprime{Valor: valor}
}

// Aceitar implementa o padrão visitor para Imprime
func (i *Imprime) Aceitar(visitante Visitante) interface{} {
	return visitante.Imprime(i)
}

// String retorna representação em string do comando
func (i *Imprime) String() string {
	return fmt.Sprintf("print %s", i.Valor)
}

func (i *Imprime) comando() {}

// Constante representa um literal inteiro na árvore
type Constante struct {
	estadoNo
	Valor int64
	Token lexer.Token
}

// NovaConstante cria um literal inteiro
func NovaConstante(valor int64) *Constante {
	return &Constante{Valor: valor}
}

// Aceitar implementa o padrão visitor para Constante
func (c *Constante) Aceitar(visitante Visitante) interface{} {
	return visitante.Constante(c)
}

// String retorna representação em string da constante
func (c *Constante) String() string {
	return fmt.Sprintf("%d", c.Valor)
}

func (c *Constante) expressao() {}

// Variavel representa uma referência a variável
type Variavel struct {
	estadoNo
	Nome  string
	Token lexer.Token
}

// NovaVariavel cria uma referência com uma cópia própria do nome
func NovaVariavel(nome string) *Variavel {
	return &Variavel{Nome: strings.Clone(nome)}
}

// Aceitar implementa o padrão visitor para Variavel
func (v *Variavel) Aceitar(visitante Visitante) interface{} {
	return visitante.Variavel(v)
}

// String retorna o nome da variável
func (v *Variavel) String() string {
	return v.Nome
}

func (v *Variavel) expressao() {}

// OperacaoBinaria representa uma operação binária na árvore
type OperacaoBinaria struct {
	estadoNo
	OperandoEsquerdo Expressao
	Operador         TipoOperador
	OperandoDireito  Expressao
	Token            lexer.Token
}

// NovaOperacaoBinaria cria uma operação binária que passa a possuir os dois operandos
func NovaOperacaoBinaria(operador TipoOperador, esquerdo, direito Expressao) *OperacaoBinaria {
	return &OperacaoBinaria{
		OperandoEsquerdo: esquerdo,
		Operador:         operador,
		OperandoDireito:  direito,
	}
}

// Aceitar implementa o padrão visitor para OperacaoBinaria
func (o *OperacaoBinaria) Aceitar(visitante Visitante) interface{} {
	return visitante.OperacaoBinaria(o)
}

// String retorna representação em string da operação
func (o *OperacaoBinaria) String() string {
	return fmt.Sprintf("(%s %s %s)",
		o.OperandoEsquerdo.String(),
		o.Operador.String(),
		o.OperandoDireito.String())
}

func (o *OperacaoBinaria) expressao() {}

// TipoOperador representa os tipos de operadores
type TipoOperador int

const (
	ADICAO TipoOperador = iota
	SUBTRACAO
	MULTIPLICACAO
	DIVISAO
)

// String retorna representação em string do operador
func (t TipoOperador) String() string {
	switch t {
	case ADICAO:
		return "+"
	case SUBTRACAO:
		return "-"
	case MULTIPLICACAO:
		return "*"
	case DIVISAO:
		return "/"
	default:
		return "?"
	}
}

// Visitante define a interface para o padrão visitor.
// Todo percurso da árvore implementa os seis métodos, então um tipo de nó
// novo só compila depois de tratado em todos os backends.
type Visitante interface {
	ListaComandos(lista *ListaComandos) interface{}
	Atribuicao(atribuicao *Atribuicao) interface{}
	Imprime(imprime *Imprime) interface{}
	OperacaoBinaria(operacao *OperacaoBinaria) interface{}
	Constante(constante *Constante) interface{}
	Variavel(variavel *Variavel) interface{}
}
