package validation

import (
	"regexp"

	"github.com/termoapp/termo-desk/internal/model"
)

var (
	nameRe = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]+$`)
)

// Rules returns the rule set for the delivery form, keyed by field name.
// Messages are the ones the server produces so client and server agree on
// what the user sees. The map is rebuilt on every call so callers may not
// mutate shared state by accident.
func Rules() map[string]Rule {
	return map[string]Rule{
		model.FieldNome: {
			Required:  true,
			MinLength: 2,
			MaxLength: 100,
			Pattern:   nameRe,
			Messages: map[CheckKind]string{
				CheckRequired:  "Nome é obrigatório",
				CheckMinLength: "Nome deve ter pelo menos 2 caracteres",
				CheckMaxLength: "Nome deve ter no máximo 100 caracteres",
				CheckPattern:   "Nome deve conter apenas letras e espaços",
			},
		},
		model.FieldFuncao: {
			Required: true,
			Messages: map[CheckKind]string{
				CheckRequired: "Função é obrigatório",
			},
		},
		model.FieldOutrosFuncao: {
			RequiredIf: &Condition{Field: model.FieldFuncao, Equals: "outros"},
			MinLength:  3,
			MaxLength:  100,
			Messages: map[CheckKind]string{
				CheckRequired:  "Função específica é obrigatório",
				CheckMinLength: "Função deve ter pelo menos 3 caracteres",
				CheckMaxLength: "Função deve ter no máximo 100 caracteres",
			},
		},
		model.FieldDepartamento: {
			Required: true,
			Messages: map[CheckKind]string{
				CheckRequired: "Departamento é obrigatório",
			},
		},
		model.FieldTelefone: {
			Required: true,
			Special:  SpecialPhone,
			Messages: map[CheckKind]string{
				CheckRequired: "Telefone é obrigatório",
				CheckPhoneMin: "Telefone deve ter pelo menos 10 dígitos",
				CheckPhoneMax: "Telefone deve ter no máximo 11 dígitos",
			},
		},
		model.FieldEmpresa: {
			Required: true,
			Messages: map[CheckKind]string{
				CheckRequired: "Empresa é obrigatório",
			},
		},
		model.FieldPatrimonio: {
			Special: SpecialAsset,
			Messages: map[CheckKind]string{
				CheckAssetShape:  "Patrimônio deve ter pelo menos 2 letras seguidas de números",
				CheckAssetFormat: "Formato inválido. Use um destes formatos: CEL001, PC123, FON456, MO789, NOT101, IMP202, FRAG303, CAD404",
			},
		},
		model.FieldObservacao: {
			MaxLength: 500,
			Messages: map[CheckKind]string{
				CheckMaxLength: "Observação deve ter no máximo 500 caracteres",
			},
		},
	}
}
