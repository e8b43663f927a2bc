package tac

import (
	"errors"
	"strings"
	"testing"

	"github.com/khevencolino/Nano/internal/backends"
	"github.com/khevencolino/Nano/internal/parser"
)

func programa(comandos ...parser.Comando) *parser.ListaComandos {
	lista := parser.NovaListaComandos()
	for _, comando := range comandos {
		lista.Adicionar(comando)
	}
	return lista
}

func bin(op parser.TipoOperador, esquerdo, direito parser.Expressao) parser.Expressao {
	return parser.NovaOperacaoBinaria(op, esquerdo, direito)
}

func num(v int64) parser.Expressao { return parser.NovaConstante(v) }

func id(nome string) parser.Expressao { return parser.NovaVariavel(nome) }

func compilar(t *testing.T, backend *TACBackend, lista *parser.ListaComandos) string {
	t.Helper()
	var saida strings.Builder
	if err := backend.Compile(lista, &saida); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return saida.String()
}

func TestCompile(t *testing.T) {
	testCases := []struct {
		name     string
		programa *parser.ListaComandos
		expected string
	}{
		{
			name: "soma e impressao",
			programa: programa(
				parser.NovaAtribuicao("a", bin(parser.ADICAO, num(2), num(3))),
				parser.NovoImprime(id("a")),
			),
			expected: "t1 = 2 + 3\na = t1\nprint a\n",
		},
		{
			name: "subtracao com variavel",
			programa: programa(
				parser.NovaAtribuicao("x", num(5)),
				parser.NovaAtribuicao("y", bin(parser.SUBTRACAO, id("x"), num(2))),
				parser.NovoImprime(id("y")),
			),
			expected: "x = 5\nt1 = x - 2\ny = t1\nprint y\n",
		},
		{
			name:     "divisao",
			programa: programa(parser.NovoImprime(bin(parser.DIVISAO, num(10), num(3)))),
			expected: "t1 = 10 / 3\nprint t1\n",
		},
		{
			name: "aninhada",
			programa: programa(parser.NovoImprime(bin(parser.SUBTRACAO,
				bin(parser.MULTIPLICACAO, id("a"), num(-2)),
				bin(parser.DIVISAO, id("b"), id("c"))))),
			expected: "t1 = a * -2\nt2 = b / c\nt3 = t1 - t2\nprint t3\n",
		},
		{
			name:     "vazio",
			programa: programa(),
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := compilar(t, NewTACBackend(), tc.programa); got != tc.expected {
				t.Errorf("TAC =\n%s\nesperado\n%s", got, tc.expected)
			}
		})
	}
}

func TestTemporariosRecomecam(t *testing.T) {
	backend := NewTACBackend()
	lista := programa(parser.NovoImprime(bin(parser.ADICAO, bin(parser.ADICAO, num(1), num(2)), num(3))))

	primeiro := compilar(t, backend, lista)
	segundo := compilar(t, backend, lista)

	if primeiro != segundo {
		t.Errorf("numeração mudou entre chamadas:\n%s\n---\n%s", primeiro, segundo)
	}
	if !strings.HasPrefix(segundo, "t1 = 1 + 2\nt2 = t1 + 3\n") {
		t.Errorf("temporários não recomeçaram em t1:\n%s", segundo)
	}
}

func TestUmaLinhaPrincipalPorComando(t *testing.T) {
	lista := programa(
		parser.NovaAtribuicao("a", bin(parser.ADICAO, num(1), bin(parser.MULTIPLICACAO, num(2), num(3)))),
		parser.NovaAtribuicao("b", id("a")),
		parser.NovoImprime(bin(parser.SUBTRACAO, id("b"), id("a"))),
		parser.NovoImprime(num(7)),
	)

	resultado, err := NewTACBackend().Gerar(lista)
	if err != nil {
		t.Fatalf("Gerar: %v", err)
	}

	var principais []string
	for _, instrucao := range resultado.Instrucoes {
		if destino := instrucao.GetDestino(); destino == "" || !strings.HasPrefix(destino, "t") {
			principais = append(principais, instrucao.String())
		}
	}

	expected := []string{"a = t2", "b = a", "print t3", "print 7"}
	if strings.Join(principais, "|") != strings.Join(expected, "|") {
		t.Errorf("linhas principais = %v, esperado %v", principais, expected)
	}
}

func TestErros(t *testing.T) {
	if _, err := NewTACBackend().Gerar(nil); !errors.Is(err, backends.ErrRaizInvalida) {
		t.Errorf("raiz nil: erro = %v", err)
	}

	var saida strings.Builder
	err := NewTACBackend().Compile(programa(parser.NovaAtribuicao("a", nil)), &saida)
	if !errors.Is(err, backends.ErrNoDesconhecido) {
		t.Errorf("nó ausente: erro = %v", err)
	}
	if saida.Len() != 0 {
		t.Errorf("saída parcial escrita: %q", saida.String())
	}
}
