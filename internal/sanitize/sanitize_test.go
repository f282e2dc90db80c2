package sanitize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	require.Equal(t, "Sedans", Clean("Sedans"))
	require.Equal(t, "alert(1)", Clean("<script>alert(1)</script>"))
	require.Equal(t, "blue", Clean(`<img src=x onerror=alert(1)>blue`))
	require.Equal(t, "", Clean(""))
}
