package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	n := NewNormalizer("cn")

	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{"china mobile", "138 0013 8000", "+8613800138000", true},
		{"china with code", "+86 138-0013-8000", "+8613800138000", true},
		{"us with code", "+1 650-253-0000", "+16502530000", true},
		{"partial kept", "  1380013  ", "1380013", false},
		{"text kept", "ask front desk", "ask front desk", false},
		{"empty", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := n.Normalize(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestNormalizer_DefaultRegion(t *testing.T) {
	n := NewNormalizer("")
	got, ok := n.Normalize("13800138000")
	assert.True(t, ok)
	assert.Equal(t, "+8613800138000", got)
	assert.Equal(t, "CN", Region(got))
	assert.Equal(t, "", Region("not a number"))
}
