// Package symbols derives Go constant identifiers from catalog keys and
// assembles them into the binding table the emitters render.
package symbols

import (
	"fmt"
	"strings"
	"unicode"
)

// Derive maps a catalog key to a constant identifier: the prefix followed
// by the UpperCamel form of the key, split on '_', '-', '.' and space.
// "icon_bell" with prefix "ImageName" becomes "ImageNameIconBell". The
// derivation is pure; identical input always yields identical output.
func Derive(prefix, key string) (string, error) {
	var b strings.Builder
	b.WriteString(prefix)

	upperNext := true
	for _, r := range key {
		switch {
		case r == '_' || r == '-' || r == '.' || r == ' ':
			upperNext = true
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if upperNext {
				r = unicode.ToUpper(r)
				upperNext = false
			}
			b.WriteRune(r)
		default:
			return "", fmt.Errorf("resource %q: character %q cannot appear in an identifier", key, r)
		}
	}

	name := b.String()
	if name == prefix {
		return "", fmt.Errorf("resource %q: derivation yields an empty identifier", key)
	}
	if !validIdentifier(name) {
		return "", fmt.Errorf("resource %q: derived name %q is not a valid identifier", key, name)
	}
	return name, nil
}

// unexport lowers the first rune, turning an exported identifier into a
// package-private one.
func unexport(name string) string {
	r := []rune(name)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func validIdentifier(name string) bool {
	for i, r := range name {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if unicode.IsDigit(r) && i > 0 {
			continue
		}
		return false
	}
	return name != "" && name != "_"
}
