package assembly

import (
	"strings"
	"testing"

	"github.com/khevencolino/Nano/internal/backends/assembly/x86_64"
)

func TestNewAssemblyBackend(t *testing.T) {
	for _, arch := range []string{"x86_64", "amd64"} {
		backend, err := NewAssemblyBackend(arch, true)
		if err != nil {
			t.Fatalf("%s: %v", arch, err)
		}
		x86, ok := backend.(*x86_64.X86_64Backend)
		if !ok || !x86.ReservaAntecipada {
			t.Errorf("%s: backend = %#v", arch, backend)
		}
	}

	if _, err := NewAssemblyBackend("riscv64", false); err == nil || !strings.Contains(err.Error(), "riscv64") {
		t.Errorf("arquitetura desconhecida: erro = %v", err)
	}
}
