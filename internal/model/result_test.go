package model

import (
	"strings"
	"testing"
)

func TestDeliveryFileName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"João Silva!!", "Termo_de_entrega_Joao_Silva.pdf"},
		{"Maria", "Termo_de_entrega_Maria.pdf"},
		{"  José   da  Costa  ", "Termo_de_entrega_Jose_da_Costa.pdf"},
		{"Ana-Lúcia_2", "Termo_de_entrega_Ana-Lucia_2.pdf"},
		{"@#$%", "Termo_de_entrega_colaborador.pdf"},
		{"", "Termo_de_entrega_colaborador.pdf"},
	}

	for _, test := range tests {
		result := DeliveryFileName(test.name)
		if result != test.expected {
			t.Errorf("DeliveryFileName(%q) = %q, expected %q", test.name, result, test.expected)
		}
	}
}

func TestField_IsEmpty(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"x", false},
		{"  x  ", false},
	}

	for _, test := range tests {
		field := &Field{Name: FieldNome, Value: test.value}
		if field.IsEmpty() != test.expected {
			t.Errorf("Field{Value: %q}.IsEmpty() = %v, expected %v", test.value, field.IsEmpty(), test.expected)
		}
	}
}

func TestAssetEntry_IsEmpty(t *testing.T) {
	entry := &AssetEntry{ID: 1, Asset: "  ", Note: "only a note"}
	if !entry.IsEmpty() {
		t.Error("Entry with blank asset code should be empty even when the note is set")
	}

	entry.Asset = "CEL001"
	if entry.IsEmpty() {
		t.Error("Entry with an asset code should not be empty")
	}
}

func TestDeliveryFileName_Prefix(t *testing.T) {
	result := DeliveryFileName("Qualquer Nome")
	if !strings.HasPrefix(result, "Termo_de_entrega_") {
		t.Errorf("Expected delivery filename prefix, got %q", result)
	}
	if !strings.HasSuffix(result, ".pdf") {
		t.Errorf("Expected .pdf suffix, got %q", result)
	}
}
