package request

import (
	"encoding/json"
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

// FlexibleID is an opaque external identifier that Dolibarr sends
// either as a JSON string or as a bare number, depending on version.
type FlexibleID string

func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexibleID(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexibleID(n.String())

	return nil
}

type DolibarrWebhookRequest struct {
	CustomerIdentification string     `json:"customer_identification"`
	CustomerID             FlexibleID `json:"customer_id"`
	CustomerName           string     `json:"customer_name"`
	CustomerEmail          string     `json:"customer_email"`
	CustomerPhone          string     `json:"customer_phone"`
	CustomerAddress        string     `json:"customer_address"`

	// TotalAmount tolerates both a JSON number and a numeric string;
	// decimal.Decimal accepts either. nil means the field was absent.
	TotalAmount *decimal.Decimal `json:"total_amount"`

	Ref       string     `json:"ref"`
	FactureID FlexibleID `json:"facture_id"`
}

// Identification returns the customer identity key, falling back to
// customer_id when customer_identification is absent.
func (req *DolibarrWebhookRequest) Identification() string {
	if ident := strings.TrimSpace(req.CustomerIdentification); ident != "" {
		return ident
	}

	return strings.TrimSpace(string(req.CustomerID))
}

func (req *DolibarrWebhookRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CustomerIdentification, validation.By(func(interface{}) error {
			if req.Identification() == "" {
				return errors.New("customer_identification is required")
			}
			return nil
		})),
		validation.Field(&req.TotalAmount, validation.Required.Error("total_amount is required")),
	)
}
