package handoff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildLink(t *testing.T) {
	link := BuildLink("5527999999154", "*Novo Pedido - Pankeca's*\n\n*Total:* R$ 36.00")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/5527999999154?text="))
	assert.NotContains(t, link, "+", "spaces must be percent-encoded, not form-encoded")
	assert.Contains(t, link, "%20")
	assert.Contains(t, link, "%0A") // newlines survive encoding
	assert.Contains(t, link, "%2A") // asterisks are escaped
}

func TestBuildLink_EmptySummary(t *testing.T) {
	assert.Equal(t, "https://wa.me/5527999999154?text=", BuildLink("5527999999154", ""))
}
