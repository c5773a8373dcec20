package checkout

import (
	"fmt"

	"github.com/pankecas/backend/internal/domain/shared"
)

// PaymentMethod represents how the customer intends to pay
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "dinheiro"
	PaymentPix  PaymentMethod = "pix"
	PaymentCard PaymentMethod = "cartao"
)

// IsValid checks if the method is a valid PaymentMethod
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentPix, PaymentCard:
		return true
	}
	return false
}

// Label returns the customer-facing label for the method
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentPix:
		return "PIX"
	case PaymentCard:
		return "Cartão de Crédito/Débito"
	default:
		return "Dinheiro"
	}
}

// Draft is the checkout form state for one session. Fields are updated
// freely; cross-field validation only runs at submission time.
type Draft struct {
	Name          string        `json:"name"`
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	AddressNote   string        `json:"address_note"`
	PickupInStore bool          `json:"pickup_in_store"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

// NewDraft returns an empty draft with the default payment method
func NewDraft() Draft {
	return Draft{PaymentMethod: PaymentCash}
}

// SetField updates a single draft field by name without validating the
// draft as a whole
func (d *Draft) SetField(field string, value any) error {
	switch field {
	case "name":
		return d.setString(&d.Name, field, value)
	case "phone":
		return d.setString(&d.Phone, field, value)
	case "address":
		return d.setString(&d.Address, field, value)
	case "address_note":
		return d.setString(&d.AddressNote, field, value)
	case "pickup_in_store":
		b, ok := value.(bool)
		if !ok {
			return shared.NewDomainError("INVALID_FIELD_VALUE", fmt.Sprintf("Field %q expects a boolean", field))
		}
		d.PickupInStore = b
		return nil
	case "payment_method":
		var method PaymentMethod
		switch v := value.(type) {
		case PaymentMethod:
			method = v
		case string:
			method = PaymentMethod(v)
		default:
			return shared.NewDomainError("INVALID_FIELD_VALUE", fmt.Sprintf("Field %q expects a payment method", field))
		}
		if !method.IsValid() {
			return shared.NewDomainError("INVALID_PAYMENT_METHOD", fmt.Sprintf("Unknown payment method %q", method))
		}
		d.PaymentMethod = method
		return nil
	default:
		return shared.NewDomainError("UNKNOWN_FIELD", fmt.Sprintf("Unknown checkout field %q", field))
	}
}

func (d *Draft) setString(target *string, field string, value any) error {
	s, ok := value.(string)
	if !ok {
		return shared.NewDomainError("INVALID_FIELD_VALUE", fmt.Sprintf("Field %q expects a string", field))
	}
	*target = s
	return nil
}

// Validate applies the submission rules: name and phone are always
// required, and the address is required unless the order is picked up in
// store. The draft itself is left untouched so the customer can correct it.
func (d Draft) Validate() error {
	if d.Name == "" || d.Phone == "" || (!d.PickupInStore && d.Address == "") {
		return shared.NewDomainError("REQUIRED_FIELDS", "Por favor, preencha todos os campos obrigatórios.")
	}
	if !d.PaymentMethod.IsValid() {
		return shared.NewDomainError("INVALID_PAYMENT_METHOD", fmt.Sprintf("Unknown payment method %q", d.PaymentMethod))
	}
	return nil
}
