package backends

import (
	"errors"
	"io"

	"github.com/khevencolino/Nano/internal/parser"
)

// ErrNoDesconhecido indica um nó fora do lugar durante a geração de código,
// por exemplo um comando onde se esperava uma expressão
var ErrNoDesconhecido = errors.New("tipo de nó desconhecido")

// ErrRaizInvalida indica que a raiz entregue não é uma lista de comandos
var ErrRaizInvalida = errors.New("raiz da AST inválida")

// Backend gera um artefato a partir da árvore. Cada valor guarda o próprio
// estado de geração, reiniciado no início de Compile.
type Backend interface {
	Compile(programa *parser.ListaComandos, saida io.Writer) error
	GetName() string
	GetExtension() string
}
