package assembly

import (
	"fmt"

	"github.com/khevencolino/Nano/internal/backends"
	"github.com/khevencolino/Nano/internal/backends/assembly/x86_64"
)

// NewAssemblyBackend escolhe o gerador de assembly pela arquitetura
func NewAssemblyBackend(arch string, reservaAntecipada bool) (backends.Backend, error) {
	switch arch {
	case "x86_64", "amd64":
		backend := x86_64.NewX86_64Backend()
		backend.ReservaAntecipada = reservaAntecipada
		return backend, nil
	default:
		return nil, fmt.Errorf("arquitetura de assembly não suportada: %s", arch)
	}
}
