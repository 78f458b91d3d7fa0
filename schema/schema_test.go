package schema_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/synless-go/synless/notation"
	"github.com/synless-go/synless/schema"
)

func TestStaticSchemaLookup(t *testing.T) {
	sch := schema.StaticSchema{
		"iden": schema.ArityText(),
		"plus": schema.ArityFixed(2),
		"args": schema.ArityExtendable(0),
	}

	a, ok := sch.ArityOf("iden")
	require.True(t, ok)
	require.Equal(t, schema.ArityText(), a)

	a, ok = sch.ArityOf("plus")
	require.True(t, ok)
	require.Equal(t, schema.Fixed, a.Kind)
	require.Equal(t, 2, a.Count)

	_, ok = sch.ArityOf("nonexistent")
	require.False(t, ok)
}

func TestArityKindString(t *testing.T) {
	require.Equal(t, "Text", schema.Text.String())
	require.Equal(t, "Fixed", schema.Fixed.String())
	require.Equal(t, "Extendable", schema.Extendable.String())
}

func TestNotationSetLookup(t *testing.T) {
	ns := schema.NotationSet{
		"iden": notation.Text{},
	}

	n, ok := ns.Lookup("iden")
	require.True(t, ok)
	require.Equal(t, notation.Text{}, n)

	_, ok = ns.Lookup("missing")
	require.False(t, ok)
}
