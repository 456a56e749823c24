package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/fleet-report/pkg/models/domain"
)

func TestFill(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		args []string
		want string
	}{
		{"single", "<h2>{0}</h2>", []string{"bigip-01"}, "<h2>bigip-01</h2>"},
		{"repeated", "<title>{0}</title><h1>{0}</h1>", []string{"Fleet"}, "<title>Fleet</title><h1>Fleet</h1>"},
		{"multiple", `<th colspan="{0}">{1}</th>`, []string{"4", "Pools"}, `<th colspan="4">Pools</th>`},
		{"unmatched placeholder stays", "{0} and {1}", []string{"a"}, "a and {1}"},
		{"no placeholders", "<hr>", []string{"x"}, "<hr>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fill(tt.tmpl, tt.args...))
		})
	}
}

func TestFor_KnownFamilies(t *testing.T) {
	for _, family := range []Family{DynamicGrid, EmailFriendly} {
		set, err := For(family)
		require.NoError(t, err)
		assert.NotEmpty(t, set.DocOpen)
		assert.NotEmpty(t, set.Banner)
		// Every width class has a container.
		for _, w := range []domain.WidthClass{
			domain.WidthFull, domain.WidthThreeFourths, domain.WidthHalf,
			domain.WidthThird, domain.WidthTwoThirds, domain.WidthFourth,
		} {
			assert.Contains(t, set.Container(w), "{0}")
		}
	}
}

func TestFor_UnknownFamilyIsAnError(t *testing.T) {
	_, err := For("Gopher")
	assert.Error(t, err)
}
