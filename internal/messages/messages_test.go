package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT_Templates(t *testing.T) {
	assert.Equal(t, "value should have been no more than '3' characters", T("maxLength", map[string]string{Expected: "3"}))
	assert.Equal(t, "the value was of type number when it should have been of type string",
		T(TypeMismatch, map[string]string{Actual: "number", Wanted: "string"}))
	assert.Equal(t, "value should have been true", T("isTrue", nil))
}

func TestT_UnknownCode(t *testing.T) {
	assert.Equal(t, "myCheck", T("myCheck", nil))
}

func TestPick(t *testing.T) {
	assert.Equal(t, "custom", Pick([]string{"", "custom"}, "isTrue", nil))
	assert.Equal(t, "value should have been false", Pick(nil, "isFalse", nil))
}
