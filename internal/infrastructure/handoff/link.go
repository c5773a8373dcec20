package handoff

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildLink assembles a wa.me deep link that opens a chat with the
// store number and the order summary prefilled. Spaces are encoded as
// %20 rather than '+' because the messaging app does not decode
// form-style query encoding.
func BuildLink(storeNumber, summary string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(summary), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", storeNumber, encoded)
}
