package utils

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var ErrEmptySlug = errors.New("name produces an empty slug")

// Slugify derives the URL-safe tenant key from a display name.
// "Acme Motors", "acme_motors" and "Acme Motors!!" all map to "acme-motors".
// Accented Latin letters are folded to ASCII, so "Automóveis São João" becomes "automoveis-sao-joao".
// Letters of other scripts are kept: "Авто Мир" becomes "авто-мир".
func Slugify(name string) (string, error) {
	var b strings.Builder
	for _, r := range strings.ToLower(norm.NFC.String(name)) {
		r = foldLatin(r)
		switch {
		case unicode.IsSpace(r) || r == '_':
			b.WriteByte('-')
		case r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		}
	}

	slug := b.String()
	if strings.Trim(slug, "-") == "" {
		return "", ErrEmptySlug
	}
	return slug, nil
}

// foldLatin maps a precomposed letter whose base is an ASCII letter to that base: 'ó' to 'o', 'ç' to 'c'
func foldLatin(r rune) rune {
	if r < utf8.RuneSelf {
		return r
	}
	base, _ := utf8.DecodeRuneInString(norm.NFD.String(string(r)))
	if base < utf8.RuneSelf && unicode.IsLetter(base) {
		return base
	}
	return r
}
