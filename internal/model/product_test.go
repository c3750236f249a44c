package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_ComputeDiscountedPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		discount string
		expected string
	}{
		{
			name:     "Ten percent off",
			price:    "100",
			discount: "10",
			expected: "90",
		},
		{
			name:     "No discount means full price",
			price:    "50",
			discount: "",
			expected: "50",
		},
		{
			name:     "Fractional result",
			price:    "99",
			discount: "33",
			expected: "66.33",
		},
		{
			name:     "Full discount",
			price:    "250",
			discount: "100",
			expected: "0",
		},
		{
			name:     "Decimal price",
			price:    "19.99",
			discount: "50",
			expected: "9.995",
		},
		{
			name:     "Unparseable discount treated as zero",
			price:    "80",
			discount: "abc",
			expected: "80",
		},
		{
			name:     "Unparseable price kept as-is",
			price:    "free",
			discount: "10",
			expected: "free",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Price: tt.price, Discount: tt.discount}
			p.ComputeDiscountedPrice()
			assert.Equal(t, tt.expected, p.DiscountedPrice)
		})
	}
}

func TestImage_MarshalJSON(t *testing.T) {
	t.Run("Zero image serialises as the placeholder URL", func(t *testing.T) {
		data, err := json.Marshal(Image{})
		require.NoError(t, err)
		assert.JSONEq(t, `"`+DefaultProductImage+`"`, string(data))
	})

	t.Run("Uploaded image serialises as an object", func(t *testing.T) {
		img := Image{
			FileName: "rice.jpg",
			FilePath: "https://bucket.s3.us-east-1.amazonaws.com/products/rice.jpg",
			FileType: "image/jpeg",
			FileSize: "12.34 KB",
		}

		data, err := json.Marshal(img)
		require.NoError(t, err)

		var decoded map[string]string
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, "rice.jpg", decoded["fileName"])
		assert.Equal(t, "image/jpeg", decoded["fileType"])
	})
}

func TestImage_UnmarshalJSON(t *testing.T) {
	t.Run("Bare URL form decodes to the zero image", func(t *testing.T) {
		var img Image
		require.NoError(t, json.Unmarshal([]byte(`"`+DefaultProductImage+`"`), &img))
		assert.True(t, img.IsZero())
	})

	t.Run("Object form decodes the upload metadata", func(t *testing.T) {
		var img Image
		require.NoError(t, json.Unmarshal([]byte(`{"fileName":"a.png","filePath":"https://x/a.png","fileType":"image/png","fileSize":"1.00 KB"}`), &img))
		assert.False(t, img.IsZero())
		assert.Equal(t, "a.png", img.FileName)
		assert.Equal(t, "https://x/a.png", img.FilePath)
	})
}
