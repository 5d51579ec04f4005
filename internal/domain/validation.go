package domain

import (
	"regexp"

	"github.com/google/uuid"
)

// Wire names of the card request fields, as reported in ValidationError.
const (
	FieldCustomerID     = "customerId"
	FieldOrgID          = "orgId"
	FieldProgramID      = "programId"
	FieldAccountID      = "accountId"
	FieldPrintedName    = "printedName"
	FieldPassword       = "password"
	FieldCVV            = "cvv"
	FieldExpirationDate = "expirationDate"
	FieldKind           = "kind"
)

// canonicalUUIDLength is the length of the 8-4-4-4-12 hexadecimal form.
const canonicalUUIDLength = 36

var (
	printedNamePattern    = regexp.MustCompile(`^[A-Z\s]+$`)
	passwordPattern       = regexp.MustCompile(`^\d{6}$`)
	cvvPattern            = regexp.MustCompile(`^\d{3}\d?$`)
	expirationDatePattern = regexp.MustCompile(`^(0\d|1[0-2])\d{2}$`)
)

// ValidatedCard holds the typed values of a card request that passed every
// field rule. Its fields are unexported so the only way to obtain one is
// ValidateCardRequest.
type ValidatedCard struct {
	customerID     uuid.UUID
	orgID          uuid.UUID
	programID      uuid.UUID
	accountID      uuid.UUID
	printedName    string
	password       string
	cvv            string
	expirationDate string
	kind           Kind
}

// ProgramID returns the validated program identifier.
func (v *ValidatedCard) ProgramID() uuid.UUID {
	return v.programID
}

// fieldRule checks one request field and, on success, stores its typed value.
type fieldRule struct {
	name  string
	value func(*CardRequest) string
	apply func(string, *ValidatedCard) bool
}

// cardRules is evaluated top to bottom; callers rely on this order to know
// which field is reported when several are invalid.
var cardRules = []fieldRule{
	{
		name:  FieldCustomerID,
		value: func(r *CardRequest) string { return r.CustomerID },
		apply: identifierRule(func(v *ValidatedCard, id uuid.UUID) { v.customerID = id }),
	},
	{
		name:  FieldOrgID,
		value: func(r *CardRequest) string { return r.OrgID },
		apply: identifierRule(func(v *ValidatedCard, id uuid.UUID) { v.orgID = id }),
	},
	{
		name:  FieldProgramID,
		value: func(r *CardRequest) string { return r.ProgramID },
		apply: identifierRule(func(v *ValidatedCard, id uuid.UUID) { v.programID = id }),
	},
	{
		name:  FieldAccountID,
		value: func(r *CardRequest) string { return r.AccountID },
		apply: identifierRule(func(v *ValidatedCard, id uuid.UUID) { v.accountID = id }),
	},
	{
		name:  FieldPrintedName,
		value: func(r *CardRequest) string { return r.PrintedName },
		apply: patternRule(printedNamePattern, func(v *ValidatedCard, s string) { v.printedName = s }),
	},
	{
		name:  FieldPassword,
		value: func(r *CardRequest) string { return r.Password },
		apply: patternRule(passwordPattern, func(v *ValidatedCard, s string) { v.password = s }),
	},
	{
		name:  FieldCVV,
		value: func(r *CardRequest) string { return r.CVV },
		apply: patternRule(cvvPattern, func(v *ValidatedCard, s string) { v.cvv = s }),
	},
	{
		name:  FieldExpirationDate,
		value: func(r *CardRequest) string { return r.ExpirationDate },
		apply: patternRule(expirationDatePattern, func(v *ValidatedCard, s string) { v.expirationDate = s }),
	},
	{
		name:  FieldKind,
		value: func(r *CardRequest) string { return r.Kind },
		apply: func(s string, v *ValidatedCard) bool {
			kind, err := ParseKind(s)
			if err != nil {
				return false
			}
			v.kind = kind
			return true
		},
	},
}

// CardFields returns the validated request fields in the order they are checked.
func CardFields() []string {
	names := make([]string, len(cardRules))
	for i, rule := range cardRules {
		names[i] = rule.name
	}
	return names
}

// ValidateCardRequest runs every field rule in order and stops at the first
// failure. The returned error, when non-nil, is always a *ValidationError.
func ValidateCardRequest(req CardRequest) (*ValidatedCard, error) {
	validated := &ValidatedCard{}
	for _, rule := range cardRules {
		raw := rule.value(&req)
		if !rule.apply(raw, validated) {
			return nil, NewValidationError(rule.name, raw)
		}
	}
	return validated, nil
}

// ParseIdentifier parses a unique identifier in its canonical
// 8-4-4-4-12 hexadecimal form. Braced, URN, and undashed forms are rejected.
func ParseIdentifier(s string) (uuid.UUID, error) {
	if len(s) != canonicalUUIDLength {
		return uuid.Nil, ErrValidation
	}
	return uuid.Parse(s)
}

func identifierRule(set func(*ValidatedCard, uuid.UUID)) func(string, *ValidatedCard) bool {
	return func(s string, v *ValidatedCard) bool {
		id, err := ParseIdentifier(s)
		if err != nil {
			return false
		}
		set(v, id)
		return true
	}
}

func patternRule(re *regexp.Regexp, set func(*ValidatedCard, string)) func(string, *ValidatedCard) bool {
	return func(s string, v *ValidatedCard) bool {
		if !re.MatchString(s) {
			return false
		}
		set(v, s)
		return true
	}
}
