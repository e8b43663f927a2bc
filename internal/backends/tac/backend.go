package tac

import (
	"fmt"
	"io"
	"strconv"

	"github.com/khevencolino/Nano/internal/backends"
	"github.com/khevencolino/Nano/internal/debug"
	"github.com/khevencolino/Nano/internal/parser"
)

// TACBackend rebaixa a árvore para código de três endereços, sem otimização:
// cada subexpressão binária ganha um temporário novo.
type TACBackend struct {
	programa    Programa
	temporarios int
}

func NewTACBackend() *TACBackend {
	return &TACBackend{}
}

func (t *TACBackend) GetName() string      { return "Código de três endereços" }
func (t *TACBackend) GetExtension() string { return ".tac" }

func (t *TACBackend) Compile(programa *parser.ListaComandos, saida io.Writer) error {
	resultado, err := t.Gerar(programa)
	if err != nil {
		return err
	}
	return resultado.Print(saida)
}

// Gerar produz o programa TAC; a numeração de temporários recomeça em t1
func (t *TACBackend) Gerar(programa *parser.ListaComandos) (Programa, error) {
	debug.Printf("Gerando código de três endereços...\n")

	t.programa = Programa{}
	t.temporarios = 0

	if programa == nil {
		return Programa{}, backends.ErrRaizInvalida
	}

	for _, comando := range programa.Comandos {
		if _, err := t.visitar(comando); err != nil {
			return Programa{}, err
		}
	}

	debug.Printf("  %d instruções, %d temporários\n", len(t.programa.Instrucoes), t.temporarios)
	return t.programa, nil
}

// visitar devolve o operando que representa o nó (vazio para comandos)
func (t *TACBackend) visitar(no parser.No) (string, error) {
	if no == nil {
		return "", fmt.Errorf("%w: nó ausente", backends.ErrNoDesconhecido)
	}
	switch resultado := no.Aceitar(t).(type) {
	case error:
		return "", resultado
	case string:
		return resultado, nil
	default:
		return "", nil
	}
}

func (t *TACBackend) novoTemporario() string {
	t.temporarios++
	return "t" + strconv.Itoa(t.temporarios)
}

func (t *TACBackend) emitir(instrucao Instrucao) {
	t.programa.Instrucoes = append(t.programa.Instrucoes, instrucao)
}

// Implementação da interface visitor
func (t *TACBackend) ListaComandos(lista *parser.ListaComandos) interface{} {
	return fmt.Errorf("%w: lista de comandos aninhada", backends.ErrNoDesconhecido)
}

func (t *TACBackend) Atribuicao(atribuicao *parser.Atribuicao) interface{} {
	valor, err := t.visitar(atribuicao.Valor)
	if err != nil {
		return err
	}
	t.emitir(Copia{Destino: atribuicao.Nome, Valor: valor})
	return nil
}

func (t *TACBackend) Imprime(imprime *parser.Imprime) interface{} {
	valor, err := t.visitar(imprime.Valor)
	if err != nil {
		return err
	}
	t.emitir(Imprime{Valor: valor})
	return nil
}

func (t *TACBackend) OperacaoBinaria(operacao *parser.OperacaoBinaria) interface{} {
	esquerdo, err := t.visitar(operacao.OperandoEsquerdo)
	if err != nil {
		return err
	}
	direito, err := t.visitar(operacao.OperandoDireito)
	if err != nil {
		return err
	}

	destino := t.novoTemporario()
	t.emitir(Operacao{
		Destino:  destino,
		Esquerdo: esquerdo,
		Operador: operacao.Operador.String(),
		Direito:  direito,
	})
	return destino
}

func (t *TACBackend) Constante(constante *parser.Constante) interface{} {
	return strconv.FormatInt(constante.Valor, 10)
}

func (t *TACBackend) Variavel(variavel *parser.Variavel) interface{} {
	return variavel.Nome
}
