package utils

import (
	"os"
	"path/filepath"
)

// LerArquivo lê um arquivo e retorna seu conteúdo
func LerArquivo(nomeArquivo string) (string, error) {
	bytesConteudo, err := os.ReadFile(nomeArquivo)
	if err != nil {
		return "", NovoErro("erro ao ler arquivo", 0, 0, err.Error())
	}
	return string(bytesConteudo), nil
}

// CriarArquivo cria (ou trunca) um arquivo de saída, criando o diretório se preciso
func CriarArquivo(nomeArquivo string) (*os.File, error) {
	diretorio := filepath.Dir(nomeArquivo)
	if err := os.MkdirAll(diretorio, 0755); err != nil {
		return nil, &ErroSaida{Arquivo: nomeArquivo, Err: err}
	}

	arquivo, err := os.Create(nomeArquivo)
	if err != nil {
		return nil, &ErroSaida{Arquivo: nomeArquivo, Err: err}
	}
	return arquivo, nil
}
