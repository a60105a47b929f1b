package product

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct_Validation(t *testing.T) {
	cases := []struct {
		name  string
		title string
		desc  string
		price float64
		want  error
	}{
		{"empty title", "", "", 10, ErrTitleRequired},
		{"whitespace title", "   ", "", 10, ErrTitleRequired},
		{"title too long", strings.Repeat("x", MaxTitleLength+1), "", 10, ErrTitleTooLong},
		{"negative price", "Bike", "", -0.01, ErrNegativePrice},
		{"description too long", "Bike", strings.Repeat("x", MaxDescriptionLength+1), 10, ErrDescriptionTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewProduct("u1", "alice", tc.title, tc.desc, tc.price, "")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewProduct_ImagePlaceholder(t *testing.T) {
	p, err := NewProduct("u1", "alice", "Bike", "", 0, "  ")
	require.NoError(t, err)
	assert.Equal(t, DefaultImageURL, p.ImageURL)

	p, err = NewProduct("u1", "alice", "Bike", "", 0, "https://img.example/bike.png")
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/bike.png", p.ImageURL)
}

func TestApplyUpdate_PartialAndAtomic(t *testing.T) {
	p, err := NewProduct("u1", "alice", "Bike", "red frame", 120, "")
	require.NoError(t, err)

	price := 99.0
	require.NoError(t, p.ApplyUpdate(nil, nil, &price, nil))
	assert.Equal(t, 99.0, p.Price)
	assert.Equal(t, "Bike", p.Title)

	bad := ""
	err = p.ApplyUpdate(&bad, nil, nil, nil)
	assert.ErrorIs(t, err, ErrTitleRequired)
	assert.Equal(t, "Bike", p.Title, "a rejected edit leaves the listing unchanged")
}
