package money

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatter_Default(t *testing.T) {
	f := Default()

	require.Equal(t, "₹2,499", f.Format(2499))
	require.Equal(t, "₹1,999", f.Format(1999))
	require.Equal(t, "₹4,498", f.Format(4498))
	require.Equal(t, "₹999", f.Format(999))
	require.Equal(t, "₹0", f.Format(0))
}

func TestFormatter_CustomSymbol(t *testing.T) {
	f, err := NewFormatter("en-US", "$")

	require.NoError(t, err)
	require.Equal(t, "$1,599", f.Format(1599))
	require.Equal(t, "-$1,599", f.Format(-1599))
}

func TestNewFormatter_InvalidLocale(t *testing.T) {
	_, err := NewFormatter("??", "₹")

	require.Error(t, err)
}
