package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"latin", "new title", "new-title"},
		{"mixed case and punctuation", "Hello, World!", "hello-world"},
		{"cyrillic is transliterated", "Заметка", "zametka"},
		{"soft sign dropped", "Новость для теста", "novost-dlya-testa"},
		{"multi-letter sounds", "Щука, Жук и Юла", "schuka-zhuk-i-yula"},
		{"yo and hard sign", "Объём", "obyom"},
		{"ukrainian letters", "Їжак і ґанок", "yizhak-i-ganok"},
		{"digits kept", "Top 10 ideas", "top-10-ideas"},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestSlugify_Truncates(t *testing.T) {
	title := strings.Repeat("a", MaxSlugLength+50)

	got := Slugify(title)

	assert.Len(t, got, MaxSlugLength)
}

func TestSlugify_URLSafe(t *testing.T) {
	got := Slugify("Новость для теста №1")

	assert.NotEmpty(t, got)
	for _, r := range got {
		ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_'
		assert.Truef(t, ok, "unexpected rune %q in slug %q", r, got)
	}
}
