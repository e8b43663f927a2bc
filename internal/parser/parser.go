package parser

import (
	"fmt"
	"strconv"

	"github.com/khevencolino/Nano/internal/lexer"
	"github.com/khevencolino/Nano/internal/utils"
)

// Precedencia define a precedência dos operadores
type Precedencia int

const (
	PRECEDENCIA_NENHUMA       Precedencia = iota
	PRECEDENCIA_SOMA                      // + -
	PRECEDENCIA_MULTIPLICACAO             // * /
)

// Parser representa o analisador sintático
type Parser struct {
	tokens       []lexer.Token
	posicaoAtual int
}

// NovoParser cria um novo analisador sintático
func NovoParser(tokens []lexer.Token) *Parser {
	return &Parser{
		tokens:       tokens,
		posicaoAtual: 0,
	}
}

// obterPrecedencia retorna a precedência de um operador
func (p *Parser) obterPrecedencia(tokenType lexer.TokenType) Precedencia {
	switch tokenType {
	case lexer.PLUS, lexer.MINUS:
		return PRECEDENCIA_SOMA
	case lexer.MULTIPLY, lexer.DIVIDE:
		return PRECEDENCIA_MULTIPLICACAO
	default:
		return PRECEDENCIA_NENHUMA
	}
}

// AnalisarPrograma analisa o programa inteiro e entrega a raiz da árvore.
// Em caso de erro nenhuma árvore é produzida.
func (p *Parser) AnalisarPrograma() (*ListaComandos, error) {
	programa := NovaListaComandos()

	for !p.chegouAoFim() {
		comando, err := p.analisarComando()
		if err != nil {
			Liberar(programa)
			return nil, err
		}
		programa.Adicionar(comando)

		if err := p.verificarProximoToken(lexer.SEMICOLON); err != nil {
			Liberar(programa)
			return nil, err
		}
	}

	return programa, nil
}

// analisarComando reconhece `nome = expr` ou `print expr`
func (p *Parser) analisarComando() (Comando, error) {
	token := p.proximoToken()

	switch token.Type {
	case lexer.PRINT:
		valor, err := p.analisarExpressao(PRECEDENCIA_NENHUMA)
		if err != nil {
			return nil, err
		}
		imprime := NovoImprime(valor)
		imprime.Token = token
		return imprime, nil

	case lexer.IDENTIFIER:
		if err := p.verificarProximoToken(lexer.ASSIGN); err != nil {
			return nil, err
		}
		valor, err := p.analisarExpressao(PRECEDENCIA_NENHUMA)
		if err != nil {
			return nil, err
		}
		atribuicao := NovaAtribuicao(token.Value, valor)
		atribuicao.Token = token
		return atribuicao, nil

	default:
		return nil, utils.NovoErro(
			"comando inválido",
			token.Position.Line,
			token.Position.Column,
			fmt.Sprintf("esperado atribuição ou 'print', encontrado '%s'", token.Value),
		)
	}
}

// analisarExpressao implementa precedência de operadores usando o algoritmo Pratt
func (p *Parser) analisarExpressao(precedenciaMinima Precedencia) (Expressao, error) {
	esquerda, err := p.analisarPrefixo()
	if err != nil {
		return nil, err
	}

	for {
		tokenAtual := p.tokenAtual()

		precedenciaAtual := p.obterPrecedencia(tokenAtual.Type)
		if precedenciaAtual == PRECEDENCIA_NENHUMA || precedenciaAtual < precedenciaMinima {
			break
		}

		// Todos os operadores são associativos à esquerda
		proximaPrecedencia := precedenciaAtual + 1

		operadorToken := p.proximoToken()
		operador, err := p.tokenParaOperador(operadorToken)
		if err != nil {
			return nil, err
		}

		direita, err := p.analisarExpressao(proximaPrecedencia)
		if err != nil {
			return nil, err
		}

		operacao := NovaOperacaoBinaria(operador, esquerda, direita)
		operacao.Token = operadorToken
		esquerda = operacao
	}

	return esquerda, nil
}

// analisarPrefixo analisa números, variáveis e expressões parentizadas
func (p *Parser) analisarPrefixo() (Expressao, error) {
	token := p.proximoToken()

	switch token.Type {
	case lexer.NUMBER:
		return p.criarConstante(token, token.Value)

	case lexer.MINUS:
		// Literal negativo: -5
		if p.tokenAtual().Type == lexer.NUMBER {
			numero := p.proximoToken()
			return p.criarConstante(token, "-"+numero.Value)
		}

	case lexer.IDENTIFIER:
		variavel := NovaVariavel(token.Value)
		variavel.Token = token
		return variavel, nil

	case lexer.LPAREN:
		expressao, err := p.analisarExpressao(PRECEDENCIA_NENHUMA)
		if err != nil {
			return nil, err
		}

		if err := p.verificarProximoToken(lexer.RPAREN); err != nil {
			return nil, err
		}

		return expressao, nil
	}

	return nil, utils.NovoErro(
		"expressão inválida",
		token.Position.Line,
		token.Position.Column,
		fmt.Sprintf("esperado número, variável ou '(', encontrado '%s'", token.Value),
	)
}

func (p *Parser) criarConstante(token lexer.Token, texto string) (Expressao, error) {
	valor, err := strconv.ParseInt(texto, 10, 64)
	if err != nil {
		return nil, utils.NovoErro(
			"erro ao converter número",
			token.Position.Line,
			token.Position.Column,
			err.Error(),
		)
	}
	constante := NovaConstante(valor)
	constante.Token = token
	return constante, nil
}

// tokenParaOperador converte um token em um TipoOperador
func (p *Parser) tokenParaOperador(token lexer.Token) (TipoOperador, error) {
	switch token.Type {
	case lexer.PLUS:
		return ADICAO, nil
	case lexer.MINUS:
		return SUBTRACAO, nil
	case lexer.MULTIPLY:
		return MULTIPLICACAO, nil
	case lexer.DIVIDE:
		return DIVISAO, nil
	default:
		return 0, utils.NovoErro(
			"operador inválido",
			token.Position.Line,
			token.Position.Column,
			fmt.Sprintf("esperado operador (+, -, *, /), encontrado '%s'", token.Value),
		)
	}
}

// proximoToken retorna o próximo token e avança a posição
func (p *Parser) proximoToken() lexer.Token {
	if p.chegouAoFim() {
		return lexer.NovoToken(lexer.EOF, "", lexer.NovaPosicao(0, 0, 0))
	}

	token := p.tokens[p.posicaoAtual]
	p.posicaoAtual++
	return token
}

// verificarProximoToken verifica se o próximo token é do tipo esperado
func (p *Parser) verificarProximoToken(tipoEsperado lexer.TokenType) error {
	token := p.proximoToken()
	if token.Type != tipoEsperado {
		msg := fmt.Sprintf("esperado %s, encontrado %s", tipoEsperado, token.Type)
		if token.Type == lexer.EOF && tipoEsperado == lexer.RPAREN {
			msg += ", possível parêntese não fechado"
		}
		return utils.NovoErro("token inesperado", token.Position.Line, token.Position.Column, msg)
	}
	return nil
}

// tokenAtual retorna o token atual sem avançar
func (p *Parser) tokenAtual() lexer.Token {
	if p.chegouAoFim() {
		return lexer.NovoToken(lexer.EOF, "", lexer.NovaPosicao(0, 0, 0))
	}
	return p.tokens[p.posicaoAtual]
}

// chegouAoFim verifica se chegou ao fim dos tokens
func (p *Parser) chegouAoFim() bool {
	return p.posicaoAtual >= len(p.tokens) ||
		p.tokens[p.posicaoAtual].Type == lexer.EOF
}
