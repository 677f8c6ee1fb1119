package flatlru

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointerWidth(t *testing.T) {
	for _, tc := range []struct {
		capacity int
		bits     int
	}{
		{capacity: 1, bits: 8},
		{capacity: 2, bits: 8},
		{capacity: 255, bits: 8},
		{capacity: 256, bits: 8},
		{capacity: 257, bits: 16},
		{capacity: 65535, bits: 16},
		{capacity: 65536, bits: 16},
		{capacity: 65537, bits: 32},
		{capacity: 1 << 20, bits: 32},
	} {
		t.Run(fmt.Sprintf("%d", tc.capacity), func(t *testing.T) {
			require.Equal(t, tc.bits, PointerWidth(tc.capacity))
		})
	}
}
