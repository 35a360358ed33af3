package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlipVertically(t *testing.T) {
	// 1x3 RGBA image: three rows of one pixel each.
	src := []byte{
		1, 1, 1, 1, // bottom row in GL order
		2, 2, 2, 2,
		3, 3, 3, 3, // top row
	}
	dst := make([]byte, len(src))

	flipVertically(src, dst, 1, 3)

	assert.Equal(t, []byte{
		3, 3, 3, 3,
		2, 2, 2, 2,
		1, 1, 1, 1,
	}, dst)
}

func TestFlipVerticallyWiderRow(t *testing.T) {
	// 2x2 RGBA image; rows swap, pixel order within a row is preserved.
	src := []byte{
		1, 2, 3, 4, 5, 6, 7, 8,
		9, 10, 11, 12, 13, 14, 15, 16,
	}
	dst := make([]byte, len(src))

	flipVertically(src, dst, 2, 2)

	assert.Equal(t, []byte{
		9, 10, 11, 12, 13, 14, 15, 16,
		1, 2, 3, 4, 5, 6, 7, 8,
	}, dst)
}
