package model

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// ResultKind classifies a terminal submission outcome
type ResultKind string

const (
	// ResultSuccess means the server produced the delivery document
	ResultSuccess ResultKind = "Success"

	// ResultValidationFailure means the server rejected one or more fields
	ResultValidationFailure ResultKind = "ValidationFailure"

	// ResultTransportFailure means the round trip itself failed
	ResultTransportFailure ResultKind = "TransportFailure"
)

// FieldError is one itemized server-side validation error. Field may be
// empty for errors that do not map to a form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SubmissionResult is the tagged outcome of one submission round trip.
// Exactly the fields matching Kind are populated.
type SubmissionResult struct {
	Kind        ResultKind
	PDF         []byte       // Success: the generated document bytes
	ContentType string       // Success: response content type
	Errors      []FieldError // ValidationFailure: itemized errors in server order
	Message     string       // TransportFailure: generic description
}

// DefaultNameToken is used in the delivery filename when the collaborator
// name sanitizes down to nothing.
const DefaultNameToken = "colaborador"

// DeliveryFileName derives the download filename from the collaborator name:
// accents are folded to ASCII, characters outside letters, digits,
// underscore, hyphen, and space are stripped, and whitespace runs collapse
// to single underscores.
func DeliveryFileName(name string) string {
	folded := foldAccents(name)

	var b strings.Builder
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '_' || r == '-' || r == ' ':
			b.WriteRune(r)
		}
	}

	token := strings.Join(strings.Fields(b.String()), "_")
	if token == "" {
		token = DefaultNameToken
	}

	return "Termo_de_entrega_" + token + ".pdf"
}

// foldAccents decomposes the string and drops combining marks, so that
// "João" becomes "Joao".
func foldAccents(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
