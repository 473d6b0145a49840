package validation

import (
	"regexp"
	"strings"
)

// CheckKind identifies one validation check. It doubles as the key into a
// rule's message table.
type CheckKind string

const (
	CheckRequired    CheckKind = "required"
	CheckMinLength   CheckKind = "min_length"
	CheckMaxLength   CheckKind = "max_length"
	CheckPattern     CheckKind = "pattern"
	CheckPhoneMin    CheckKind = "phone_min"
	CheckPhoneMax    CheckKind = "phone_max"
	CheckAssetShape  CheckKind = "asset_shape"
	CheckAssetFormat CheckKind = "asset_format"
)

// SpecialCheck selects a field-specific check evaluated after the generic ones
type SpecialCheck string

const (
	// SpecialNone disables the specialized check
	SpecialNone SpecialCheck = ""

	// SpecialPhone counts digits only and enforces 10..11 of them
	SpecialPhone SpecialCheck = "phone"

	// SpecialAsset enforces the patrimony code format
	SpecialAsset SpecialCheck = "asset"
)

// Condition derives a rule's required flag from another field's current value
type Condition struct {
	Field  string
	Equals string
}

// Rule holds the constraints for one field. Rules are immutable configuration;
// RequiredIf is resolved against live form values on every validation pass.
type Rule struct {
	Required   bool
	RequiredIf *Condition
	MinLength  int
	MaxLength  int
	Pattern    *regexp.Regexp
	Special    SpecialCheck
	Messages   map[CheckKind]string
}

// Result is the outcome of validating a single value against a rule
type Result struct {
	Valid   bool
	Check   CheckKind // first failing check when invalid
	Message string
}

var (
	digitsRe     = regexp.MustCompile(`\D`)
	assetShapeRe = regexp.MustCompile(`^[A-Z]{2,}\d+$`)
	assetCodeRe  = regexp.MustCompile(`^(CEL|PC|FON|MO|NOT|IMP|FRAG|CAD)\d+$`)
)

// Validate evaluates value against rule. Checks run in a fixed order and the
// first failure wins: required, then (for non-empty values only) minLength,
// maxLength, pattern, and the specialized check. A derived required flag is
// resolved through lookup before anything else. The ordering is part of the
// contract: callers and tests rely on which message is reported when several
// checks fail at once.
func Validate(value string, rule Rule, lookup func(name string) string) Result {
	required := rule.Required
	if rule.RequiredIf != nil {
		required = false
		if lookup != nil && lookup(rule.RequiredIf.Field) == rule.RequiredIf.Equals {
			required = true
		}
	}

	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if required {
			return fail(rule, CheckRequired)
		}
		return Result{Valid: true}
	}

	if rule.MinLength > 0 && len([]rune(trimmed)) < rule.MinLength {
		return fail(rule, CheckMinLength)
	}

	if rule.MaxLength > 0 && len([]rune(trimmed)) > rule.MaxLength {
		return fail(rule, CheckMaxLength)
	}

	if rule.Pattern != nil && !rule.Pattern.MatchString(trimmed) {
		return fail(rule, CheckPattern)
	}

	switch rule.Special {
	case SpecialPhone:
		digits := digitsRe.ReplaceAllString(trimmed, "")
		if len(digits) < 10 {
			return fail(rule, CheckPhoneMin)
		}
		if len(digits) > 11 {
			return fail(rule, CheckPhoneMax)
		}
	case SpecialAsset:
		code := strings.ToUpper(trimmed)
		if !assetShapeRe.MatchString(code) {
			return fail(rule, CheckAssetShape)
		}
		if !assetCodeRe.MatchString(code) {
			return fail(rule, CheckAssetFormat)
		}
	}

	return Result{Valid: true}
}

func fail(rule Rule, check CheckKind) Result {
	return Result{
		Valid:   false,
		Check:   check,
		Message: rule.Messages[check],
	}
}
