package combine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputImageSetData(t *testing.T) {
	out := NewOutputImage(Dimensions{Width: 2, Height: 2}, "out.png")
	assert.Nil(t, out.Data(), "A new output image holds no data")

	data := pixels(4, 'P')
	require.NoError(t, out.SetData(data))
	assert.Equal(t, data, out.Data())

	m, err := out.toImage()
	require.NoError(t, err)
	assert.Equal(t, 8, m.Stride)
	assert.Equal(t, 2, m.Bounds().Dx())
	assert.Equal(t, 2, m.Bounds().Dy())
}

func TestOutputImageRejectsWrongLength(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "Too short", data: make([]byte, 12)},
		{name: "Too long", data: make([]byte, 20)},
		{name: "Empty", data: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewOutputImage(Dimensions{Width: 2, Height: 2}, "out.png")
			err := out.SetData(tt.data)
			assert.True(t, IsKind(err, BufferTooSmall), "got %v", err)
			assert.Nil(t, out.Data(), "Rejected data must not be stored")
		})
	}
}

func TestOutputImageUnfilledCannotBeViewed(t *testing.T) {
	out := NewOutputImage(Dimensions{Width: 3, Height: 1}, "out.png")
	_, err := out.toImage()
	assert.True(t, IsKind(err, BufferTooSmall))
}

func TestOutputImageViewSharesBuffer(t *testing.T) {
	out := NewOutputImage(Dimensions{Width: 2, Height: 1}, "out.png")
	require.NoError(t, out.SetData(pixels(2, 'V')))

	m := out.view()
	assert.Equal(t, 8, m.Stride)
	m.Pix[0] = 0xAB
	assert.Equal(t, byte(0xAB), out.Data()[0], "The view must not copy the pixels")
}
