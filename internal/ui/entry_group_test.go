package ui

import (
	"sync"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/termoapp/termo-desk/internal/form"
)

// Server errors arrive on the submission goroutine while the user can still
// click the add button, so annotation routing must tolerate rows changing
// under it.
func TestEntryGroup_AnnotateWhileRowsChange(t *testing.T) {
	test.NewApp()

	state := form.NewState()
	eg := NewEntryGroup(state, NewLocalization(), func(string) {})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			eg.Annotate("patrimonio_0", "Formato inválido. Use um destes formatos: CEL001, PC123, FON456, MO789, NOT101, IMP202, FRAG303, CAD404")
		}
	}()

	for i := 0; i < 5; i++ {
		eg.onAdd()
		state.SettleAdd()
	}
	wg.Wait()

	if got := len(eg.rows); got != 6 {
		t.Fatalf("Expected 6 rows, got %d", got)
	}
	if !eg.Annotate("observacao_5", "Observação deve ter no máximo 500 caracteres") {
		t.Error("Expected the last row to accept an annotation")
	}
	if eg.Annotate("patrimonio_9", "mensagem") {
		t.Error("Expected an out-of-range index to be rejected")
	}
}

func TestEntryGroup_AnnotateRouting(t *testing.T) {
	test.NewApp()

	state := form.NewState()
	eg := NewEntryGroup(state, NewLocalization(), func(string) {})

	// The cross-field error lands on the first row
	if !eg.Annotate("patrimonio", "Pelo menos um patrimônio é obrigatório") {
		t.Error("Expected the cross-field error to be routed")
	}
	// Scalar fields are not the group's to annotate
	if eg.Annotate("nome", "Nome é obrigatório") {
		t.Error("Expected scalar fields to be rejected")
	}
	if eg.Annotate("patrimonio_x", "mensagem") {
		t.Error("Expected a malformed index to be rejected")
	}
}
