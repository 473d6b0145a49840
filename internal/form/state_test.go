package form

import (
	"testing"

	"github.com/termoapp/termo-desk/internal/model"
)

func TestNewState_StartsWithOneEntry(t *testing.T) {
	s := NewState()

	if count := s.EntryCount(); count != 1 {
		t.Errorf("Expected 1 initial entry, got %d", count)
	}
	if width := s.ContainerWidth(); width != BaseWidth {
		t.Errorf("Expected base width %v, got %v", BaseWidth, width)
	}
}

func TestAddEntry_GuardDebouncesRapidAdds(t *testing.T) {
	s := NewState()

	entry, ok, err := s.AddEntry()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("Expected first add to succeed")
	}
	if entry.ID == 0 {
		t.Error("Expected a non-zero entry id")
	}

	// Until the transition settles, further adds are no-ops
	for i := 0; i < 5; i++ {
		if _, ok, _ := s.AddEntry(); ok {
			t.Fatalf("Expected add %d to be a no-op while settling", i)
		}
	}
	if count := s.EntryCount(); count != 2 {
		t.Errorf("Expected 2 entries after debounced adds, got %d", count)
	}

	s.SettleAdd()
	if _, ok, _ := s.AddEntry(); !ok {
		t.Error("Expected add to work again after settling")
	}
}

func TestAddEntry_IDsAreUniqueAndNeverReused(t *testing.T) {
	s := NewState()
	seen := map[int64]bool{}
	for _, entry := range s.Entries() {
		seen[entry.ID] = true
	}

	for i := 0; i < 5; i++ {
		entry, ok, err := s.AddEntry()
		if err != nil || !ok {
			t.Fatalf("Add %d failed: ok=%v err=%v", i, ok, err)
		}
		if seen[entry.ID] {
			t.Fatalf("Entry id %d reused", entry.ID)
		}
		seen[entry.ID] = true
		s.SettleAdd()

		// Removing and re-adding must not resurrect the id
		if _, ok := s.RemoveEntry(entry.ID); !ok {
			t.Fatalf("Remove of entry %d failed", entry.ID)
		}
		entry, ok, err = s.AddEntry()
		if err != nil || !ok {
			t.Fatalf("Re-add %d failed: ok=%v err=%v", i, ok, err)
		}
		if seen[entry.ID] {
			t.Fatalf("Entry id %d reused after removal", entry.ID)
		}
		seen[entry.ID] = true
		s.SettleAdd()
	}
}

func TestAddEntry_MaxAssets(t *testing.T) {
	s := NewState()
	for s.EntryCount() < MaxAssets {
		if _, ok, err := s.AddEntry(); !ok || err != nil {
			t.Fatalf("Add failed at count %d: %v", s.EntryCount(), err)
		}
		s.SettleAdd()
	}

	if _, _, err := s.AddEntry(); err != ErrMaxAssets {
		t.Errorf("Expected ErrMaxAssets, got %v", err)
	}
	if count := s.EntryCount(); count != MaxAssets {
		t.Errorf("Expected count to stay at %d, got %d", MaxAssets, count)
	}
}

func TestRemoveEntry_CollapseAtOne(t *testing.T) {
	s := NewState()
	first := s.Entries()[0]

	second, _, _ := s.AddEntry()
	s.SettleAdd()
	third, _, _ := s.AddEntry()
	s.SettleAdd()

	collapsed, ok := s.RemoveEntry(second.ID)
	if !ok {
		t.Fatal("Expected remove to succeed")
	}
	if collapsed {
		t.Error("Expected no collapse with 2 entries remaining")
	}

	collapsed, ok = s.RemoveEntry(third.ID)
	if !ok {
		t.Fatal("Expected remove to succeed")
	}
	if !collapsed {
		t.Error("Expected collapse when 1 entry remains")
	}
	if width := s.ContainerWidth(); width != BaseWidth {
		t.Errorf("Expected width back at base %v, got %v", BaseWidth, width)
	}

	// The last entry can never be removed
	if _, ok := s.RemoveEntry(first.ID); ok {
		t.Error("Expected removing the last entry to be a no-op")
	}
}

func TestRemoveEntry_PreservesValues(t *testing.T) {
	s := NewState()
	first := s.Entries()[0]
	s.SetEntryAsset(first.ID, "PC123")

	second, _, _ := s.AddEntry()
	s.SettleAdd()
	s.SetEntryAsset(second.ID, "CEL001")
	s.SetEntryNote(second.ID, "tela trincada")

	if _, ok := s.RemoveEntry(first.ID); !ok {
		t.Fatal("Expected remove to succeed")
	}

	entries := s.Entries()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Asset != "CEL001" || entries[0].Note != "tela trincada" {
		t.Errorf("Expected surviving entry to keep its values, got %+v", entries[0])
	}
}

func TestContainerWidth_GrowsPerEntry(t *testing.T) {
	s := NewState()
	for i := 1; i < 4; i++ {
		expected := BaseWidth + float32(i-1)*WidthStep
		if width := s.ContainerWidth(); width != expected {
			t.Errorf("Expected width %v with %d entries, got %v", expected, i, width)
		}
		s.AddEntry()
		s.SettleAdd()
	}
}

func fillValid(s *State) {
	s.SetValue(model.FieldNome, "João Silva")
	s.SetValue(model.FieldFuncao, "tecnico")
	s.SetValue(model.FieldDepartamento, "ti")
	s.SetValue(model.FieldTelefone, "31933334444")
	s.SetValue(model.FieldEmpresa, "matriz")
	s.SetEntryAsset(s.Entries()[0].ID, "PC123")
}

func TestValidateAll_ValidForm(t *testing.T) {
	s := NewState()
	fillValid(s)

	if errors := s.ValidateAll(); len(errors) != 0 {
		t.Errorf("Expected no errors, got %v", errors)
	}
}

func TestValidateAll_CrossFieldAssetRequired(t *testing.T) {
	s := NewState()
	fillValid(s)
	s.SetEntryAsset(s.Entries()[0].ID, "   ")

	errors := s.ValidateAll()
	if len(errors) != 1 {
		t.Fatalf("Expected 1 error, got %v", errors)
	}
	if errors[0].Field != model.FieldPatrimonio {
		t.Errorf("Expected field %q, got %q", model.FieldPatrimonio, errors[0].Field)
	}
	if errors[0].Message != "Pelo menos um patrimônio é obrigatório" {
		t.Errorf("Unexpected message %q", errors[0].Message)
	}
}

func TestValidateAll_IndexedEntryErrors(t *testing.T) {
	s := NewState()
	fillValid(s)

	second, _, _ := s.AddEntry()
	s.SettleAdd()
	s.SetEntryAsset(second.ID, "XYZ999")

	errors := s.ValidateAll()
	if len(errors) != 1 {
		t.Fatalf("Expected 1 error, got %v", errors)
	}
	if errors[0].Field != "patrimonio_1" {
		t.Errorf("Expected indexed field patrimonio_1, got %q", errors[0].Field)
	}
}

func TestValidateAll_ConditionalRole(t *testing.T) {
	s := NewState()
	fillValid(s)
	s.SetValue(model.FieldFuncao, "outros")

	errors := s.ValidateAll()
	if len(errors) != 1 {
		t.Fatalf("Expected 1 error, got %v", errors)
	}
	if errors[0].Field != model.FieldOutrosFuncao {
		t.Errorf("Expected field %q, got %q", model.FieldOutrosFuncao, errors[0].Field)
	}

	s.SetValue(model.FieldOutrosFuncao, "Analista de Redes")
	if errors := s.ValidateAll(); len(errors) != 0 {
		t.Errorf("Expected no errors after filling the role, got %v", errors)
	}

	// Reverting the select lifts the requirement without stale state
	s.SetValue(model.FieldFuncao, "tecnico")
	s.SetValue(model.FieldOutrosFuncao, "")
	if errors := s.ValidateAll(); len(errors) != 0 {
		t.Errorf("Expected no errors after reverting the role, got %v", errors)
	}
}

func TestPayload_OrderedParallelLists(t *testing.T) {
	s := NewState()
	fillValid(s)

	second, _, _ := s.AddEntry()
	s.SettleAdd()
	s.SetEntryAsset(second.ID, "CEL001")
	s.SetEntryNote(second.ID, "sem carregador")

	payload := s.Payload()
	assets := payload["patrimonio[]"]
	notes := payload["observacao[]"]

	if len(assets) != 2 || len(notes) != 2 {
		t.Fatalf("Expected parallel lists of 2, got %d assets and %d notes", len(assets), len(notes))
	}
	if assets[0] != "PC123" || assets[1] != "CEL001" {
		t.Errorf("Expected assets in display order, got %v", assets)
	}
	if notes[0] != "" || notes[1] != "sem carregador" {
		t.Errorf("Expected notes parallel to assets, got %v", notes)
	}
	if payload.Get("nome") != "João Silva" {
		t.Errorf("Expected nome in payload, got %q", payload.Get("nome"))
	}
}

func TestReset_ClearsFormAndKeepsIDsFresh(t *testing.T) {
	s := NewState()
	fillValid(s)
	second, _, _ := s.AddEntry()
	s.SettleAdd()

	s.Reset()

	if count := s.EntryCount(); count != 1 {
		t.Errorf("Expected 1 entry after reset, got %d", count)
	}
	if v := s.Value(model.FieldNome); v != "" {
		t.Errorf("Expected cleared values after reset, got %q", v)
	}
	if id := s.Entries()[0].ID; id <= second.ID {
		t.Errorf("Expected a fresh id after reset, got %d (previous %d)", id, second.ID)
	}
}

func TestField_StatusLifecycle(t *testing.T) {
	s := NewState()

	if got := s.Field(model.FieldNome).Status; got != model.FieldStatusPristine {
		t.Errorf("Expected Pristine before any validation, got %s", got)
	}

	s.SetValue(model.FieldNome, "J")
	if result := s.ValidateField(model.FieldNome); result.Valid {
		t.Fatal("Expected a one-letter name to be invalid")
	}
	if got := s.Field(model.FieldNome).Status; got != model.FieldStatusInvalid {
		t.Errorf("Expected Invalid after a failed validation, got %s", got)
	}

	// Editing puts the field back to Pristine until it is validated again
	s.SetValue(model.FieldNome, "João Silva")
	if got := s.Field(model.FieldNome).Status; got != model.FieldStatusPristine {
		t.Errorf("Expected Pristine after editing, got %s", got)
	}

	s.ValidateField(model.FieldNome)
	field := s.Field(model.FieldNome)
	if field.Status != model.FieldStatusValid {
		t.Errorf("Expected Valid after a passing validation, got %s", field.Status)
	}
	if field.Name != model.FieldNome || field.Value != "João Silva" {
		t.Errorf("Expected field %s=%q, got %s=%q", model.FieldNome, "João Silva", field.Name, field.Value)
	}

	s.Reset()
	if got := s.Field(model.FieldNome).Status; got != model.FieldStatusPristine {
		t.Errorf("Expected Pristine after reset, got %s", got)
	}
}

func TestValidateAll_RecordsFieldStatuses(t *testing.T) {
	s := NewState()
	fillValid(s)
	s.SetValue(model.FieldTelefone, "123")

	errors := s.ValidateAll()
	if len(errors) != 1 {
		t.Fatalf("Expected 1 error, got %d", len(errors))
	}
	if got := s.Field(model.FieldTelefone).Status; got != model.FieldStatusInvalid {
		t.Errorf("Expected telefone Invalid, got %s", got)
	}
	if got := s.Field(model.FieldNome).Status; got != model.FieldStatusValid {
		t.Errorf("Expected nome Valid, got %s", got)
	}
}
