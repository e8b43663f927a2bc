package parser

// Liberacao contabiliza o que uma chamada a Liberar soltou
type Liberacao struct {
	Nos   int // Nós liberados
	Nomes int // Nomes próprios (Atribuicao/Variavel) liberados
}

// Liberar solta a árvore em pós-ordem: filhos antes do próprio nó.
// Nomes e ligações com filhos são zerados, e cada nó é contado uma única vez;
// liberar nil ou um nó já liberado não faz nada.
func Liberar(no No) Liberacao {
	if no == nil {
		return Liberacao{}
	}
	l := &liberador{}
	no.Aceitar(l)
	return l.total
}

// liberador percorre a árvore somando o que foi solto
type liberador struct {
	total Liberacao
}

func (l *liberador) visitar(no No) {
	if no != nil {
		no.Aceitar(l)
	}
}

func (l *liberador) marcar(estado *estadoNo) {
	estado.liberado = true
	l.total.Nos++
}

func (l *liberador) ListaComandos(lista *ListaComandos) interface{} {
	if lista == nil || lista.liberado {
		return nil
	}
	for _, comando := range lista.Comandos {
		l.visitar(comando)
	}
	lista.Comandos = nil
	l.marcar(&lista.estadoNo)
	return nil
}

func (l *liberador) Atribuicao(atribuicao *Atribuicao) interface{} {
	if atribuicao == nil || atribuicao.liberado {
		return nil
	}
	l.visitar(atribuicao.Valor)
	atribuicao.Valor = nil
	atribuicao.Nome = ""
	l.total.Nomes++
	l.marcar(&atribuicao.estadoNo)
	return nil
}

func (l *liberador) Imprime(imprime *Imprime) interface{} {
	if imprime == nil || imprime.liberado {
		return nil
	}
	l.visitar(imprime.Valor)
	imprime.Valor = nil
	l.marcar(&imprime.estadoNo)
	return nil
}

func (l *liberador) OperacaoBinaria(operacao *OperacaoBinaria) interface{} {
	if operacao == nil || operacao.liberado {
		return nil
	}
	l.visitar(operacao.OperandoEsquerdo)
	l.visitar(operacao.OperandoDireito)
	operacao.OperandoEsquerdo = nil
	operacao.OperandoDireito = nil
	l.marcar(&operacao.estadoNo)
	return nil
}

func (l *liberador) Constante(constante *Constante) interface{} {
	if constante == nil || constante.liberado {
		return nil
	}
	l.marcar(&constante.estadoNo)
	return nil
}

func (l *liberador) Variavel(variavel *Variavel) interface{} {
	if variavel == nil || variavel.liberado {
		return nil
	}
	variavel.Nome = ""
	l.total.Nomes++
	l.marcar(&variavel.estadoNo)
	return nil
}
