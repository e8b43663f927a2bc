package compiler

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/khevencolino/Nano/internal/backends"
	"github.com/khevencolino/Nano/internal/parser"
)

// preparar escreve o fonte num diretório temporário e aponta as saídas para ele
func preparar(t *testing.T, fonte string) (string, Opcoes) {
	t.Helper()
	dir := t.TempDir()
	arquivo := filepath.Join(dir, "programa.nano")
	if err := os.WriteFile(arquivo, []byte(fonte), 0644); err != nil {
		t.Fatal(err)
	}

	opcoes := OpcoesPadrao()
	for nome, saida := range opcoes.Saidas {
		opcoes.Saidas[nome] = filepath.Join(dir, saida)
	}
	return arquivo, opcoes
}

func ler(t *testing.T, arquivo string) string {
	t.Helper()
	conteudo, err := os.ReadFile(arquivo)
	if err != nil {
		t.Fatalf("saída ausente: %v", err)
	}
	return string(conteudo)
}

func TestCompilarArquivo(t *testing.T) {
	arquivo, opcoes := preparar(t, "x = 5;\ny = x - 2;\nprint y;\n")

	var saida, erros bytes.Buffer
	if err := NovoCompiladorCom(&saida, &erros).CompilarArquivo(arquivo, opcoes); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if tac := ler(t, opcoes.Saidas["tac"]); tac != "x = 5\nt1 = x - 2\ny = t1\nprint y\n" {
		t.Errorf("TAC inesperado:\n%s", tac)
	}

	asm := ler(t, opcoes.Saidas["assembly"])
	for _, esperado := range []string{".globl main", "movq\t%rax, -8(%rbp)", "movq\t%rax, -16(%rbp)", "subq\t$16, %rsp", "call\tprintf@PLT"} {
		if !strings.Contains(asm, esperado) {
			t.Errorf("assembly não contém %q", esperado)
		}
	}

	if !strings.Contains(saida.String(), "Compilação finalizada com sucesso.") {
		t.Errorf("mensagem final ausente:\n%s", saida.String())
	}
	if erros.Len() != 0 {
		t.Errorf("diagnósticos inesperados: %s", erros.String())
	}
}

func TestCompilarArquivoTodosBackends(t *testing.T) {
	arquivo, opcoes := preparar(t, "print 10 / 3;")
	opcoes.Backends = []string{"assembly", "tac", "llvm", "bytecode"}
	opcoes.Executar = true

	var saida bytes.Buffer
	if err := NovoCompiladorCom(&saida, &bytes.Buffer{}).CompilarArquivo(arquivo, opcoes); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	for _, nome := range opcoes.Backends {
		if ler(t, opcoes.Saidas[nome]) == "" {
			t.Errorf("%s: arquivo vazio", nome)
		}
	}
	if !strings.Contains(saida.String(), "\n3\n") {
		t.Errorf("VM não imprimiu 3:\n%s", saida.String())
	}
}

func TestSaidaInacessivelPulaBackend(t *testing.T) {
	arquivo, opcoes := preparar(t, "a = 2 + 3; print a;")

	// Um arquivo comum no lugar do diretório impede a criação da saída
	bloqueio := filepath.Join(filepath.Dir(arquivo), "bloqueio")
	if err := os.WriteFile(bloqueio, nil, 0644); err != nil {
		t.Fatal(err)
	}
	opcoes.Saidas["assembly"] = filepath.Join(bloqueio, "output.s")

	var erros bytes.Buffer
	if err := NovoCompiladorCom(&bytes.Buffer{}, &erros).CompilarArquivo(arquivo, opcoes); err != nil {
		t.Fatalf("falha de saída não deveria abortar: %v", err)
	}

	if !strings.Contains(erros.String(), "Aviso:") {
		t.Errorf("aviso ausente: %q", erros.String())
	}
	if tac := ler(t, opcoes.Saidas["tac"]); tac != "t1 = 2 + 3\na = t1\nprint a\n" {
		t.Errorf("TAC inesperado:\n%s", tac)
	}
}

func TestCompilarArquivoErros(t *testing.T) {
	testCases := []struct {
		name     string
		fonte    string
		mensagem string
	}{
		{"sintaxe", "print 1", "análise falhou"},
		{"lexico", "x = 1 # 2;", "caractere inválido"},
		{"parenteses", "print (1;", "análise falhou"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			arquivo, opcoes := preparar(t, tc.fonte)
			err := NovoCompiladorCom(&bytes.Buffer{}, &bytes.Buffer{}).CompilarArquivo(arquivo, opcoes)
			if err == nil || !strings.Contains(err.Error(), tc.mensagem) {
				t.Errorf("erro = %v, esperado %q", err, tc.mensagem)
			}
			if _, errStat := os.Stat(opcoes.Saidas["assembly"]); !os.IsNotExist(errStat) {
				t.Errorf("nenhuma saída deveria ser criada")
			}
		})
	}
}

func TestMuitasVariaveisAborta(t *testing.T) {
	var fonte strings.Builder
	for i := 0; i <= 64; i++ {
		fonte.WriteString("v")
		fonte.WriteString(strings.Repeat("a", i+1))
		fonte.WriteString(" = 1;\n")
	}
	arquivo, opcoes := preparar(t, fonte.String())

	err := NovoCompiladorCom(&bytes.Buffer{}, &bytes.Buffer{}).CompilarArquivo(arquivo, opcoes)
	if err == nil || !strings.Contains(err.Error(), "máximo 64") {
		t.Errorf("erro = %v, esperado estouro de variáveis", err)
	}
}

func TestGerarCodigoRaizInvalida(t *testing.T) {
	compilador := NovoCompiladorCom(&bytes.Buffer{}, &bytes.Buffer{})

	for _, raiz := range []parser.No{nil, parser.NovaConstante(1), (*parser.ListaComandos)(nil)} {
		if err := compilador.GerarCodigo(raiz, OpcoesPadrao()); !errors.Is(err, backends.ErrRaizInvalida) {
			t.Errorf("GerarCodigo(%T) = %v, esperado ErrRaizInvalida", raiz, err)
		}
	}
}

func TestBackendDesconhecido(t *testing.T) {
	opcoes := OpcoesPadrao()
	opcoes.Backends = []string{"wasm"}
	err := NovoCompiladorCom(&bytes.Buffer{}, &bytes.Buffer{}).GerarCodigo(parser.NovaListaComandos(), opcoes)
	if err == nil || !strings.Contains(err.Error(), "backend desconhecido") {
		t.Errorf("erro = %v", err)
	}
}

func TestAnalisarMostraTokens(t *testing.T) {
	var saida bytes.Buffer
	opcoes := OpcoesPadrao()
	opcoes.MostrarTokens = true

	raiz, err := NovoCompiladorCom(&saida, &bytes.Buffer{}).Analisar("print 1;", opcoes)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if raiz.String() != "print 1;" {
		t.Errorf("AST = %q", raiz.String())
	}
	if !strings.Contains(saida.String(), "PRINT") {
		t.Errorf("tokens não listados:\n%s", saida.String())
	}
}
