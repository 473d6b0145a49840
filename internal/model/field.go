package model

import "strings"

// Field names used by the submission form. They match the server multipart
// field names, so they double as payload keys.
const (
	FieldNome         = "nome"
	FieldFuncao       = "funcao"
	FieldOutrosFuncao = "outrosFuncao"
	FieldDepartamento = "departamento"
	FieldTelefone     = "telefone"
	FieldEmpresa      = "empresa"
	FieldPatrimonio   = "patrimonio"
	FieldObservacao   = "observacao"
)

// Field represents a single scalar form field
type Field struct {
	Name   string
	Value  string
	Status FieldStatus
}

// TrimmedValue returns the field value with surrounding whitespace removed
func (f *Field) TrimmedValue() string {
	return strings.TrimSpace(f.Value)
}

// IsEmpty returns true if the field holds no value after trimming
func (f *Field) IsEmpty() bool {
	return f.TrimmedValue() == ""
}

// AssetEntry represents one repeatable asset group: a patrimony code plus an
// optional note. IDs are allocated monotonically and never reused, even after
// the entry is removed.
type AssetEntry struct {
	ID    int64
	Asset string
	Note  string
}

// IsEmpty returns true if the entry has no asset code after trimming
func (e *AssetEntry) IsEmpty() bool {
	return strings.TrimSpace(e.Asset) == ""
}
