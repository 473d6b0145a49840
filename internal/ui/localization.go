package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySubmit            = "submit"
	KeySubmitting        = "submitting"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeyName              = "name"
	KeyRole              = "role"
	KeyOtherRole         = "other_role"
	KeyDepartment        = "department"
	KeyPhone             = "phone"
	KeyCompany           = "company"
	KeyAsset             = "asset"
	KeyNote              = "note"
	KeyAddAsset          = "add_asset"
	KeyRemoveAsset       = "remove_asset"
	KeyServerURL         = "server_url"
	KeyRequestTimeout    = "request_timeout"
	KeyDownloadDirectory = "download_directory"
	KeyAutoReveal        = "auto_reveal"
	KeySettingsSaved     = "settings_saved"
	KeyErrorsFoundOne    = "errors_found_one"
	KeyErrorsFoundMany   = "errors_found_many"
	KeySuccessTitle      = "success_title"
	KeySuccessSaved      = "success_saved"
	KeyOpen              = "open"
	KeyReveal            = "reveal"
	KeyErrorOpeningFile  = "error_opening_file"
	KeySelectOption      = "select_option"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "pt",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// The form and its server messages are Portuguese, default to pt
		lang = "pt"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to Portuguese
	if texts, exists := l.texts["pt"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Termo de Entrega",
		KeySubmit:            "Gerar Termo",
		KeySubmitting:        "Gerando...",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeyName:              "Nome completo",
		KeyRole:              "Função",
		KeyOtherRole:         "Função específica",
		KeyDepartment:        "Departamento",
		KeyPhone:             "Telefone",
		KeyCompany:           "Empresa",
		KeyAsset:             "Patrimônio",
		KeyNote:              "Observação",
		KeyAddAsset:          "Adicionar patrimônio",
		KeyRemoveAsset:       "Remover",
		KeyServerURL:         "Endereço do servidor",
		KeyRequestTimeout:    "Tempo limite (segundos)",
		KeyDownloadDirectory: "Pasta de documentos",
		KeyAutoReveal:        "Mostrar arquivo após gerar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyErrorsFoundOne:    "1 erro encontrado no formulário",
		KeyErrorsFoundMany:   "%d erros encontrados no formulário",
		KeySuccessTitle:      "Termo gerado com sucesso!",
		KeySuccessSaved:      "Documento salvo em",
		KeyOpen:              "Abrir",
		KeyReveal:            "Mostrar na pasta",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeySelectOption:      "Selecione...",
	}

	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Delivery Form",
		KeySubmit:            "Generate Document",
		KeySubmitting:        "Generating...",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeyName:              "Full name",
		KeyRole:              "Role",
		KeyOtherRole:         "Specific role",
		KeyDepartment:        "Department",
		KeyPhone:             "Phone",
		KeyCompany:           "Company",
		KeyAsset:             "Asset code",
		KeyNote:              "Note",
		KeyAddAsset:          "Add asset",
		KeyRemoveAsset:       "Remove",
		KeyServerURL:         "Server address",
		KeyRequestTimeout:    "Request timeout (seconds)",
		KeyDownloadDirectory: "Documents folder",
		KeyAutoReveal:        "Reveal file after generating",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyErrorsFoundOne:    "1 error found in the form",
		KeyErrorsFoundMany:   "%d errors found in the form",
		KeySuccessTitle:      "Document generated successfully!",
		KeySuccessSaved:      "Saved to",
		KeyOpen:              "Open",
		KeyReveal:            "Reveal in folder",
		KeyErrorOpeningFile:  "Error opening file",
		KeySelectOption:      "Select...",
	}
}
