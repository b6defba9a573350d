package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskID(t *testing.T) {
	assert.Equal(t, "a***", MaskID("alice123"))
	assert.Equal(t, "", MaskID(""))
}

func TestMaskName(t *testing.T) {
	assert.Equal(t, "홍**", MaskName("홍길동"))
	assert.Equal(t, "A", MaskName("A"))
	assert.Equal(t, "", MaskName(""))
}

func TestMaskTel(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{in: "010-1234-5678", want: "***-****-5678"},
		{in: "01012345678", want: "*******5678"},
		{in: "555-0001", want: "***-0001"},
		{in: "123", want: "123"},
		{in: "", want: ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, MaskTel(tc.in), tc.in)
	}
}
