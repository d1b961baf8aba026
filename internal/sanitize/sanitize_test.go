package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text untouched", input: "Hello World", want: "Hello World"},
		{name: "simple tag stripped", input: "<b>Hi</b>", want: "Hi"},
		{name: "nested tags stripped", input: "<div><i>Hello</i> there</div>", want: "Hello there"},
		{name: "script removed entirely", input: "before<script>alert(1)</script>after", want: "beforeafter"},
		{name: "attributes do not leak", input: `<a href="https://evil.example">link</a>`, want: "link"},
		{name: "ampersand round-trips", input: "fish & chips", want: "fish & chips"},
		{name: "whitespace trimmed", input: "  <p> padded </p>  ", want: "padded"},
		{name: "empty input", input: "", want: ""},
		{name: "only tags", input: "<br><hr>", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripTags(tt.input))
		})
	}
}
