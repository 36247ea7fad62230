package country

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveKnownCountry(t *testing.T) {
	data := Resolve("BR")
	assert.Equal(t, "BRL", data.Currency)
	assert.Equal(t, "CPF", data.DocumentType)
	assert.NotEmpty(t, data.DocumentNumber)
}

func TestResolveFallsBackToHomeCountry(t *testing.T) {
	unknown := Resolve("ZZ")
	home := Resolve(HomeCountry)
	assert.Equal(t, home, unknown)
	assert.Equal(t, "COP", unknown.Currency)
}

func TestResolveIsDeterministic(t *testing.T) {
	assert.Equal(t, Resolve("MX"), Resolve("MX"))
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("CO"))
	assert.False(t, Known("XX"))
	assert.False(t, Known(""))
}
