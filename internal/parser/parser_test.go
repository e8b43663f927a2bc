package parser

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/m1gwings/treedrawer/tree"

	"github.com/khevencolino/Nano/internal/lexer"
	"github.com/khevencolino/Nano/internal/utils"
)

func analisar(t *testing.T, entrada string) (*ListaComandos, error) {
	t.Helper()
	tokens, err := lexer.NovoLexer(entrada).Tokenizar()
	if err != nil {
		t.Fatalf("erro léxico: %v", err)
	}
	return NovoParser(tokens).AnalisarPrograma()
}

func TestAnalisarPrograma(t *testing.T) {
	testCases := []struct {
		name     string
		entrada  string
		expected string
	}{
		{"soma atribuida", "a = 2 + 3; print a;", "a = (2 + 3); print a;"},
		{"divisao", "print 10 / 3;", "print (10 / 3);"},
		{"subtracao com variavel", "x = 5; y = x - 2; print y;", "x = 5; y = (x - 2); print y;"},
		{"precedencia", "print 1 + 2 * 3;", "print (1 + (2 * 3));"},
		{"associatividade a esquerda", "print 8 - 4 - 2;", "print ((8 - 4) - 2);"},
		{"divisao a esquerda", "print 100 / 10 / 5;", "print ((100 / 10) / 5);"},
		{"parenteses", "print (1 + 2) * 3;", "print ((1 + 2) * 3);"},
		{"literal negativo", "n = -7; print n - -1;", "n = -7; print (n - -1);"},
		{"comentario", "// nada\nprint 1; // fim", "print 1;"},
		{"vazio", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			programa, err := analisar(t, tc.entrada)
			if err != nil {
				t.Fatalf("erro inesperado: %v", err)
			}
			if got := programa.String(); got != tc.expected {
				t.Errorf("AST = %q, esperado %q", got, tc.expected)
			}
		})
	}
}

func TestAnalisarProgramaGuardaTokens(t *testing.T) {
	programa, err := analisar(t, "x = 1;\nprint x;")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	imprime := programa.Comandos[1].(*Imprime)
	if imprime.Token.Position.Line != 2 {
		t.Errorf("print na linha %d, esperado 2", imprime.Token.Position.Line)
	}
	if v := imprime.Valor.(*Variavel); v.Token.Position.Column != 7 {
		t.Errorf("variável na coluna %d, esperado 7", v.Token.Position.Column)
	}
}

func TestAnalisarProgramaErros(t *testing.T) {
	testCases := []struct {
		name     string
		entrada  string
		mensagem string
	}{
		{"sem ponto e virgula", "print 1", "esperado SEMICOLON"},
		{"sem atribuicao", "x 1;", "esperado ASSIGN"},
		{"comando invalido", "1 + 2;", "comando inválido"},
		{"expressao vazia", "print ;", "expressão inválida"},
		{"parentese aberto", "print (1 + 2;", "esperado RPAREN"},
		{"numero grande", "print 99999999999999999999;", "erro ao converter número"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			programa, err := analisar(t, tc.entrada)
			if err == nil {
				t.Fatalf("esperado erro, obtido %v", programa)
			}
			if programa != nil {
				t.Errorf("nenhuma árvore deveria ser produzida")
			}
			var erroCompilador *utils.CompilerError
			if !errors.As(err, &erroCompilador) {
				t.Errorf("erro %T não é CompilerError", err)
			}
			if !strings.Contains(err.Error(), tc.mensagem) {
				t.Errorf("erro %q não contém %q", err, tc.mensagem)
			}
		})
	}
}

func TestImprimirArvore(t *testing.T) {
	programa, err := analisar(t, "a = 2 + 3; print a;")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	var saida bytes.Buffer
	NovoVisualizador().ImprimirArvore(&saida, programa)
	desenho := saida.String()

	for _, rotulo := range []string{"programa", "a =", "print", "+", "2", "3"} {
		if !strings.Contains(desenho, rotulo) {
			t.Errorf("desenho não contém %q:\n%s", rotulo, desenho)
		}
	}
}

func TestCriarArvoreFilhos(t *testing.T) {
	raiz := NovaOperacaoBinaria(SUBTRACAO, NovaVariavel("x"), NovaConstante(2))
	arvore := NovoVisualizador().CriarArvore(raiz)

	esquerdo, err := arvore.Child(0)
	if err != nil {
		t.Fatalf("sem filho esquerdo: %v", err)
	}
	direito, err := arvore.Child(1)
	if err != nil {
		t.Fatalf("sem filho direito: %v", err)
	}
	if esquerdo.Val() != tree.NodeString("x") || direito.Val() != tree.NodeString("2") {
		t.Errorf("filhos = %v, %v", esquerdo.Val(), direito.Val())
	}
}
