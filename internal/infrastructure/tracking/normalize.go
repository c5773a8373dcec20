package tracking

import (
	"strconv"
	"strings"

	"github.com/pankecas/backend/internal/domain/checkout"
)

const (
	// countryCode is the Brazilian international dialing prefix
	countryCode = "55"
	// minLocalDigits is DDD plus an eight-digit local number
	minLocalDigits = 10

	// PickupAddress is the sentinel address sent when the customer picks
	// the order up in store
	PickupAddress = "Retirar na loja"

	DeliveryModePickup  = "retirada"
	DeliveryModeCourier = "entrega"
)

// NormalizePhone converts a free-form Brazilian phone number to digits
// with the international prefix. Non-digits are stripped; numbers already
// starting with the country code pass through, full local numbers get the
// code prepended, and anything shorter is returned as bare digits.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if strings.HasPrefix(digits, countryCode) {
		return digits
	}
	if len(digits) >= minLocalDigits {
		return countryCode + digits
	}
	return digits
}

// SplitName splits a full name into first name and the remainder
func SplitName(full string) (first, last string) {
	fields := strings.Fields(full)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

// DeliveryMode maps the pickup flag to the payload delivery mode
func DeliveryMode(pickupInStore bool) string {
	if pickupInStore {
		return DeliveryModePickup
	}
	return DeliveryModeCourier
}

// DeliveryAddress returns the address for the payload, substituting the
// pickup sentinel when no delivery is requested
func DeliveryAddress(d checkout.Draft) string {
	if d.PickupInStore {
		return PickupAddress
	}
	return d.Address
}

// itemID renders a numeric product ID the way analytics consumers
// expect it
func itemID(id int) string {
	return strconv.Itoa(id)
}
