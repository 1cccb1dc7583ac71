package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "My First Post", "my-first-post"},
		{"already a slug", "my-first-post", "my-first-post"},
		{"diacritics stripped", "Hướng dẫn xây dựng API", "huong-dan-xay-dung-api"},
		{"special characters dropped", "Go 1.24: What's New?", "go-124-whats-new"},
		{"runs of separators collapse", "a  --  b", "a-b"},
		{"leading and trailing separators trimmed", "  hello world  ", "hello-world"},
		{"digits kept", "Top 10 Tips", "top-10-tips"},
		{"only special characters", "!!!", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.title))
		})
	}
}
