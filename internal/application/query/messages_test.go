package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// El matcher de locales resuelve variantes regionales y cae al español ante
// cualquier cosa irreconocible.
func TestMessagesFor_ResolucionDeLocale(t *testing.T) {
	cases := []struct {
		locale string
		want   string
	}{
		{"es", "¿Qué producto buscas?"},
		{"es-MX", "¿Qué producto buscas?"},
		{"en", "Which product are you looking for?"},
		{"en-US", "Which product are you looking for?"},
		{"", "¿Qué producto buscas?"},
		{"zz-invalid", "¿Qué producto buscas?"},
	}
	for _, tc := range cases {
		m := MessagesFor(tc.locale)
		assert.Equal(t, tc.want, m.Get(msgWhichProduct), "locale %q", tc.locale)
	}
}

func TestMessages_Formato(t *testing.T) {
	m := MessagesFor("es")
	assert.Equal(t, "Estos son los productos encontrados (3):\n", m.F(msgProductsFound, 3))
	assert.NotEmpty(t, m.Unknown())
	assert.NotEmpty(t, m.NoAnswer())
	assert.NotEmpty(t, m.Apology())
}
