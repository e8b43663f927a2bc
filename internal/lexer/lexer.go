package lexer

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/khevencolino/Nano/internal/utils"
)

// Lexer representa o analisador léxico
type Lexer struct {
	entrada string // Código fonte de entrada
	posicao int    // Posição atual no código
	linha   int    // Linha atual
	coluna  int    // Coluna atual
}

// padroes guarda as regex de cada tipo de token; a ordem de ordemPadroes importa
var padroes = map[TokenType]*regexp.Regexp{
	NUMBER:     regexp.MustCompile(`^\d+`),                    // Números: 123, 456
	IDENTIFIER: regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*`), // Nomes de variáveis e palavras reservadas
	ASSIGN:     regexp.MustCompile(`^=`),                      // Atribuição: =
	SEMICOLON:  regexp.MustCompile(`^;`),                      // Fim de comando: ;
	PLUS:       regexp.MustCompile(`^\+`),                     // Adição: +
	MINUS:      regexp.MustCompile(`^-`),                      // Subtração: -
	MULTIPLY:   regexp.MustCompile(`^\*`),                     // Multiplicação: *
	DIVIDE:     regexp.MustCompile(`^/`),                      // Divisão: /
	LPAREN:     regexp.MustCompile(`^\(`),                     // Parêntese esquerdo: (
	RPAREN:     regexp.MustCompile(`^\)`),                     // Parêntese direito: )
	WHITESPACE: regexp.MustCompile(`^\s+`),                    // Espaços em branco
	COMMENT:    regexp.MustCompile(`^//.*`),                   // Comentarios //
}

// COMMENT antes de DIVIDE para que // não vire duas divisões
var ordemPadroes = []TokenType{COMMENT, IDENTIFIER, NUMBER, ASSIGN, SEMICOLON, PLUS, MINUS, MULTIPLY, DIVIDE, LPAREN, RPAREN, WHITESPACE}

// NovoLexer cria um novo analisador léxico
func NovoLexer(entrada string) *Lexer {
	return &Lexer{
		entrada: entrada,
		linha:   1,
		coluna:  1,
	}
}

// Tokenizar converte a entrada em uma lista de tokens terminada por EOF
func (l *Lexer) Tokenizar() ([]Token, error) {
	var tokens []Token

	for {
		token, err := l.proximoToken()
		if err != nil {
			return nil, err
		}

		// Pula espaços em branco e comentários
		if token.Type != WHITESPACE && token.Type != COMMENT {
			tokens = append(tokens, token)
		}

		if token.Type == EOF {
			break
		}
	}

	return tokens, nil
}

// proximoToken encontra o próximo token
func (l *Lexer) proximoToken() (Token, error) {
	if !l.temMais() {
		return NovoToken(EOF, "", l.obterPosicaoAtual()), nil
	}

	posicaoAtual := l.obterPosicaoAtual()
	restante := l.entrada[l.posicao:]

	for _, tipoToken := range ordemPadroes {
		if match := padroes[tipoToken].FindString(restante); match != "" {
			if tipoToken == IDENTIFIER {
				if reservada, ok := palavrasReservadas[match]; ok {
					tipoToken = reservada
				}
			}
			token := NovoToken(tipoToken, match, posicaoAtual)
			l.avancar(len(match))
			return token, nil
		}
	}

	// Caractere inválido
	caractereInvalido := string(l.espiar())
	l.avancar(1)
	return NovoToken(INVALID, caractereInvalido, posicaoAtual),
		utils.NovoErro("caractere inválido", posicaoAtual.Line, posicaoAtual.Column, fmt.Sprintf("'%s'", caractereInvalido))
}

// obterPosicaoAtual retorna a posição atual no código fonte
func (l *Lexer) obterPosicaoAtual() Position {
	return NovaPosicao(l.linha, l.coluna, l.posicao)
}

// avancar move a posição do lexer para frente
func (l *Lexer) avancar(comprimento int) {
	for i := 0; i < comprimento; i++ {
		if l.posicao < len(l.entrada) {
			if l.entrada[l.posicao] == '\n' {
				l.linha++
				l.coluna = 1
			} else {
				l.coluna++
			}
			l.posicao++
		}
	}
}

// espiar retorna o caractere atual sem avançar
func (l *Lexer) espiar() byte {
	if l.posicao >= len(l.entrada) {
		return 0
	}
	return l.entrada[l.posicao]
}

// temMais verifica se há mais caracteres para processar
func (l *Lexer) temMais() bool {
	return l.posicao < len(l.entrada)
}

// ValidarParenteses verifica se os parênteses estão balanceados
func ValidarParenteses(tokens []Token) error {
	contadorParenteses := 0
	for _, token := range tokens {
		switch token.Type {
		case LPAREN:
			contadorParenteses++
		case RPAREN:
			contadorParenteses--
			if contadorParenteses < 0 {
				return utils.NovoErro("parênteses não balanceados", token.Position.Line, token.Position.Column, "')' extra")
			}
		}
	}

	if contadorParenteses > 0 {
		return utils.NovoErro("parênteses não balanceados", 0, 0, fmt.Sprintf("%d '(' sem ')' correspondente", contadorParenteses))
	}

	return nil
}

// ImprimirTokens imprime todos os tokens de forma formatada
func ImprimirTokens(saida io.Writer, tokens []Token) {
	fmt.Fprintf(saida, "%-12s %-15s %-20s\n", "TIPO", "VALOR", "POSIÇÃO")
	fmt.Fprintln(saida, strings.Repeat("-", 50))

	for _, token := range tokens {
		if token.Type != EOF {
			fmt.Fprintf(saida, "%-12s %-15s %-20s\n", token.Type, token.Value, token.Position)
		}
	}
}
