package guard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"docnav/internal/models"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims whitespace", "  hello world  ", "hello world"},
		{"strips html tags", "hello <b>world</b>", "hello world"},
		{"strips script tags", "<script>alert(1)</script>what is cuda", "alert(1)what is cuda"},
		{"nested tag shapes leave no tags behind", "<<b>>mig<</b>>", ">mig>"},
		{"strips control characters", "what\x00 is\x07 mig\x7f?", "what is mig?"},
		{"keeps tab and newline", "line one\nline\ttwo", "line one\nline\ttwo"},
		{"empty input", "", ""},
		{"only tags", "<a><b></b></a>", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input, 0))
		})
	}
}

func TestSanitizeTruncates(t *testing.T) {
	long := strings.Repeat("a", 5000)
	got := Sanitize(long, 4000)
	assert.Len(t, got, 4000)
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"  hello <b>world</b>  ",
		"<<b>>mig<</b>>",
		"what\x00is\x1fmig",
		strings.Repeat("x ", 3000),
		"plain question about cuda",
		"",
	}
	for _, in := range inputs {
		once := Sanitize(in, 4000)
		twice := Sanitize(once, 4000)
		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestValidateQuery(t *testing.T) {
	assert.NoError(t, ValidateQuery("how do I enable mig?", 4000))

	err := ValidateQuery("hi", 4000)
	assert.ErrorIs(t, err, models.ErrValidation)

	err = ValidateQuery("", 4000)
	assert.ErrorIs(t, err, models.ErrValidation)

	err = ValidateQuery(strings.Repeat("a", 4001), 4000)
	assert.ErrorIs(t, err, models.ErrValidation)
}
