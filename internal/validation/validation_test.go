package validation

import (
	"strings"
	"testing"

	"github.com/termoapp/termo-desk/internal/model"
)

func lookupFor(values map[string]string) func(string) string {
	return func(name string) string {
		return values[name]
	}
}

func TestValidate_Name(t *testing.T) {
	rule := Rules()[model.FieldNome]

	tests := []struct {
		name    string
		value   string
		valid   bool
		check   CheckKind
		message string
	}{
		{"valid name", "João Silva", true, "", ""},
		{"valid accented", "José da Conceição", true, "", ""},
		{"empty", "", false, CheckRequired, "Nome é obrigatório"},
		{"whitespace only", "   ", false, CheckRequired, "Nome é obrigatório"},
		{"too short", "A", false, CheckMinLength, "Nome deve ter pelo menos 2 caracteres"},
		{"too long", strings.Repeat("a", 101), false, CheckMaxLength, "Nome deve ter no máximo 100 caracteres"},
		{"digits rejected", "Maria 2", false, CheckPattern, "Nome deve conter apenas letras e espaços"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.value, rule, nil)
			if result.Valid != tt.valid {
				t.Errorf("Expected valid=%v, got %v", tt.valid, result.Valid)
			}
			if result.Check != tt.check {
				t.Errorf("Expected check %q, got %q", tt.check, result.Check)
			}
			if result.Message != tt.message {
				t.Errorf("Expected message %q, got %q", tt.message, result.Message)
			}
		})
	}
}

func TestValidate_CheckOrder(t *testing.T) {
	// A value that breaks both the max length and the pattern must report
	// the max length message: checks run in a fixed order and stop at the
	// first failure.
	rule := Rules()[model.FieldNome]
	value := strings.Repeat("9", 150)

	result := Validate(value, rule, nil)
	if result.Valid {
		t.Fatal("Expected validation to fail")
	}
	if result.Check != CheckMaxLength {
		t.Errorf("Expected max length to win over pattern, got %q", result.Check)
	}
	if result.Message != "Nome deve ter no máximo 100 caracteres" {
		t.Errorf("Expected max length message, got %q", result.Message)
	}
}

func TestValidate_EmptyOptionalIsValid(t *testing.T) {
	rule := Rules()[model.FieldObservacao]

	result := Validate("", rule, nil)
	if !result.Valid {
		t.Errorf("Expected empty optional field to be valid, got check %q", result.Check)
	}

	result = Validate("   ", rule, nil)
	if !result.Valid {
		t.Errorf("Expected blank optional field to be valid, got check %q", result.Check)
	}
}

func TestValidate_ConditionalRequired(t *testing.T) {
	rule := Rules()[model.FieldOutrosFuncao]

	tests := []struct {
		name   string
		funcao string
		value  string
		valid  bool
		check  CheckKind
	}{
		{"not required when role is fixed", "tecnico", "", true, ""},
		{"required when role is outros", "outros", "", false, CheckRequired},
		{"filled when required", "outros", "Analista de Redes", true, ""},
		{"min length still applies", "outros", "Ab", false, CheckMinLength},
		{"reverting role lifts the requirement", "supervisor", "", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := lookupFor(map[string]string{model.FieldFuncao: tt.funcao})
			result := Validate(tt.value, rule, lookup)
			if result.Valid != tt.valid {
				t.Errorf("Expected valid=%v, got %v (check %q)", tt.valid, result.Valid, result.Check)
			}
			if result.Check != tt.check {
				t.Errorf("Expected check %q, got %q", tt.check, result.Check)
			}
		})
	}
}

func TestValidate_Phone(t *testing.T) {
	rule := Rules()[model.FieldTelefone]

	tests := []struct {
		name    string
		value   string
		valid   bool
		check   CheckKind
		message string
	}{
		{"ten digits", "3133334444", true, "", ""},
		{"eleven digits", "31933334444", true, "", ""},
		{"formatted", "(31) 93333-4444", true, "", ""},
		{"empty", "", false, CheckRequired, "Telefone é obrigatório"},
		{"nine digits", "313333444", false, CheckPhoneMin, "Telefone deve ter pelo menos 10 dígitos"},
		{"twelve digits", "553193333444", false, CheckPhoneMax, "Telefone deve ter no máximo 11 dígitos"},
		{"formatting ignored for count", "(31) 3333-444", false, CheckPhoneMin, "Telefone deve ter pelo menos 10 dígitos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.value, rule, nil)
			if result.Valid != tt.valid {
				t.Errorf("Expected valid=%v, got %v", tt.valid, result.Valid)
			}
			if result.Check != tt.check {
				t.Errorf("Expected check %q, got %q", tt.check, result.Check)
			}
			if result.Message != tt.message {
				t.Errorf("Expected message %q, got %q", tt.message, result.Message)
			}
		})
	}
}

func TestValidate_Asset(t *testing.T) {
	rule := Rules()[model.FieldPatrimonio]

	tests := []struct {
		name  string
		value string
		valid bool
		check CheckKind
	}{
		{"empty is valid per field", "", true, ""},
		{"cel code", "CEL001", true, ""},
		{"lowercase accepted", "pc123", true, ""},
		{"frag code", "FRAG303", true, ""},
		{"single letter", "C001", false, CheckAssetShape},
		{"no digits", "CEL", false, CheckAssetShape},
		{"unknown prefix", "XYZ001", false, CheckAssetFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.value, rule, nil)
			if result.Valid != tt.valid {
				t.Errorf("Expected valid=%v, got %v (check %q)", tt.valid, result.Valid, result.Check)
			}
			if result.Check != tt.check {
				t.Errorf("Expected check %q, got %q", tt.check, result.Check)
			}
		})
	}
}

func TestValidate_Selects(t *testing.T) {
	rules := Rules()

	for _, field := range []string{model.FieldDepartamento, model.FieldEmpresa, model.FieldFuncao} {
		result := Validate("", rules[field], nil)
		if result.Valid {
			t.Errorf("Expected empty %s to be invalid", field)
		}
		if result.Check != CheckRequired {
			t.Errorf("Expected required check for %s, got %q", field, result.Check)
		}

		result = Validate("ti", rules[field], nil)
		if !result.Valid {
			t.Errorf("Expected selected %s to be valid, got %q", field, result.Check)
		}
	}
}
