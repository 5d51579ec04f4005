package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// IssuingDateLayout is the textual format of CardRecord.IssuingDate.
const IssuingDateLayout = time.RFC3339

// CardRequest is the untrusted, flat record a caller submits to create a card.
// Every field is a string and absent fields decode as the empty string.
// ID, IssuingDate, PAN and Status are ignored on input.
type CardRequest struct {
	ID             string `json:"id"`
	CustomerID     string `json:"customerId"`
	OrgID          string `json:"orgId"`
	ProgramID      string `json:"programId"`
	AccountID      string `json:"accountId"`
	PrintedName    string `json:"printedName"`
	Password       string `json:"password"`
	ExpirationDate string `json:"expirationDate"`
	IssuingDate    string `json:"issuingDate"`
	PAN            string `json:"pan"`
	Kind           string `json:"kind"`
	Status         string `json:"status"`
	CVV            string `json:"cvv"`
}

// CardRecord is the external representation of a created card. It shares
// the wire shape of CardRequest with every field populated.
type CardRecord CardRequest

// Card is the validated, typed representation of an issued card.
type Card struct {
	ID             uuid.UUID
	CustomerID     uuid.UUID
	OrgID          uuid.UUID
	ProgramID      uuid.UUID
	AccountID      uuid.UUID
	PrintedName    string
	Password       string
	ExpirationDate string
	CVV            string
	Kind           Kind
	Status         Status
	IssuingDate    time.Time
	PAN            string
}

// NewCard assembles a Card from validated request fields, drawing its ID,
// issuing date and PAN from the given generators. New cards are always
// StatusEnabled. A generator failure is returned as a *GenerationError.
func NewCard(
	ctx context.Context,
	v *ValidatedCard,
	ids IDGenerator,
	clock Clock,
	numbers NumberGenerator,
) (*Card, error) {
	id, err := ids.Generate()
	if err != nil {
		return nil, &GenerationError{Generator: "identifier", Err: err}
	}

	pan, err := numbers.Generate(ctx, v.programID)
	if err != nil {
		return nil, &GenerationError{Generator: "number", Err: err}
	}

	return &Card{
		ID:             id,
		CustomerID:     v.customerID,
		OrgID:          v.orgID,
		ProgramID:      v.programID,
		AccountID:      v.accountID,
		PrintedName:    v.printedName,
		Password:       v.password,
		ExpirationDate: v.expirationDate,
		CVV:            v.cvv,
		Kind:           v.kind,
		Status:         StatusEnabled,
		IssuingDate:    clock.Now(),
		PAN:            pan,
	}, nil
}

// ToRecord converts the card to its external record.
func (c *Card) ToRecord() CardRecord {
	return CardRecord{
		ID:             c.ID.String(),
		CustomerID:     c.CustomerID.String(),
		OrgID:          c.OrgID.String(),
		ProgramID:      c.ProgramID.String(),
		AccountID:      c.AccountID.String(),
		PrintedName:    c.PrintedName,
		Password:       c.Password,
		ExpirationDate: c.ExpirationDate,
		IssuingDate:    c.IssuingDate.UTC().Format(IssuingDateLayout),
		PAN:            c.PAN,
		Kind:           c.Kind.String(),
		Status:         c.Status.String(),
		CVV:            c.CVV,
	}
}
