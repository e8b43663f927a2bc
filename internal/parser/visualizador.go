package parser

import (
	"fmt"
	"io"
	"strconv"

	"github.com/m1gwings/treedrawer/tree"
)

// VisualizadorArvore cria representações visuais da AST
type VisualizadorArvore struct{}

// NovoVisualizador cria um novo visualizador
func NovoVisualizador() *VisualizadorArvore {
	return &VisualizadorArvore{}
}

// CriarArvore converte a AST para o formato do treedrawer
func (v *VisualizadorArvore) CriarArvore(no No) *tree.Tree {
	arvore := tree.NewTree(tree.NodeString(rotulo(no)))
	v.adicionarFilhos(arvore, no)
	return arvore
}

// ImprimirArvore escreve a árvore desenhada na saída
func (v *VisualizadorArvore) ImprimirArvore(saida io.Writer, no No) {
	fmt.Fprintln(saida, "=== Árvore Sintática ===")
	fmt.Fprintln(saida, v.CriarArvore(no))
	fmt.Fprintln(saida)
}

// adicionarFilhos pendura os filhos de no sob o nó correspondente do desenho
func (v *VisualizadorArvore) adicionarFilhos(pai *tree.Tree, no No) {
	for _, filho := range filhos(no) {
		novoFilho := pai.AddChild(tree.NodeString(rotulo(filho)))
		v.adicionarFilhos(novoFilho, filho)
	}
}

// rotulo retorna o texto exibido para um nó
func rotulo(no No) string {
	switch n := no.(type) {
	case *ListaComandos:
		return "programa"
	case *Atribuicao:
		return n.Nome + " ="
	case *Imprime:
		return "print"
	case *OperacaoBinaria:
		return n.Operador.String()
	case *Constante:
		return strconv.FormatInt(n.Valor, 10)
	case *Variavel:
		return n.Nome
	default:
		return "?"
	}
}

// filhos retorna os filhos diretos de um nó, na ordem de avaliação
func filhos(no No) []No {
	switch n := no.(type) {
	case *ListaComandos:
		resultado := make([]No, 0, len(n.Comandos))
		for _, comando := range n.Comandos {
			resultado = append(resultado, comando)
		}
		return resultado
	case *Atribuicao:
		return []No{n.Valor}
	case *Imprime:
		return []No{n.Valor}
	case *OperacaoBinaria:
		return []No{n.OperandoEsquerdo, n.OperandoDireito}
	default:
		return nil
	}
}
