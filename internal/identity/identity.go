// Package identity draws pt-BR flavoured personal and company names from a
// caller supplied random stream. Every function consumes a fixed, documented
// sequence of draws so output is reproducible for a given stream state.
package identity

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Source is the subset of the random stream used here
type Source interface {
	IntRange(min, max int) int
	RandomString(a []string) string
}

// Name draws gender, format, then the name parts left to right.
func Name(src Source) string {
	first, prefixes := maleFirstNames, malePrefixes
	if src.IntRange(0, 1) == 1 {
		first, prefixes = femaleFirstNames, femalePrefixes
	}

	switch src.IntRange(0, 6) {
	case 0, 1, 2, 3:
		return src.RandomString(first) + " " + src.RandomString(lastNames)
	case 4, 5:
		f := src.RandomString(first)
		l1 := src.RandomString(lastNames)
		return f + " " + l1 + " " + src.RandomString(lastNames)
	default:
		p := src.RandomString(prefixes)
		f := src.RandomString(first)
		return p + " " + f + " " + src.RandomString(lastNames)
	}
}

// Email builds an address on a free mail domain. It is not derived from Name.
func Email(src Source) (string, error) {
	var user string
	switch src.IntRange(0, 3) {
	case 0:
		l := src.RandomString(lastNames)
		user = l + "." + anyFirstName(src)
	case 1:
		f := anyFirstName(src)
		user = f + "." + src.RandomString(lastNames)
	case 2:
		f := anyFirstName(src)
		user = fmt.Sprintf("%s%02d", f, src.IntRange(0, 99))
	default:
		letter := string(rune('a' + src.IntRange(0, 25)))
		user = letter + src.RandomString(lastNames)
	}

	local, err := slug(user)
	if err != nil {
		return "", fmt.Errorf("failed to fold email user %q: %w", user, err)
	}
	return local + "@" + src.RandomString(freeEmailDomains), nil
}

// City draws a plausible municipality name.
func City(src Source) string {
	switch src.IntRange(0, 3) {
	case 0:
		return src.RandomString(cityPrefixes) + " " + src.RandomString(lastNames)
	case 1, 2:
		l := src.RandomString(lastNames)
		return l + " " + src.RandomString(citySuffixes)
	default:
		l := src.RandomString(lastNames)
		return l + " de " + src.RandomString(lastNames)
	}
}

// StateAbbr draws one of the 27 federative unit abbreviations.
func StateAbbr(src Source) string {
	return src.RandomString(stateAbbrs)
}

// Company draws a company display name.
func Company(src Source) string {
	switch src.IntRange(0, 3) {
	case 0:
		l := src.RandomString(lastNames)
		return l + " " + src.RandomString(companySuffixes)
	case 1:
		l1 := src.RandomString(lastNames)
		l2 := src.RandomString(lastNames)
		return l1 + " " + l2 + " " + src.RandomString(companySuffixes)
	case 2:
		l1 := src.RandomString(lastNames)
		return l1 + " - " + src.RandomString(lastNames)
	default:
		return src.RandomString(lastNames)
	}
}

func anyFirstName(src Source) string {
	if src.IntRange(0, 1) == 1 {
		return src.RandomString(femaleFirstNames)
	}
	return src.RandomString(maleFirstNames)
}

// slug lowercases, strips accents and keeps [a-z0-9.]
func slug(s string) (string, error) {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, s)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}
