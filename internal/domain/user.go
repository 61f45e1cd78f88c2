package domain

import (
	"strings"
	"unicode"
)

// DefaultUserName is the display name given to a simulated login without a usable email.
const DefaultUserName = "Founder"

// User is the transient identity created by a simulated login.
type User struct {
	Name     string
	Initials string
}

// NewUser builds a User, deriving initials from the first two words of name.
// A single word yields its first two letters, except the default name,
// which keeps the "FD" badge.
func NewUser(name string) User {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultUserName
	}
	return User{Name: name, Initials: initials(name)}
}

func initials(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) == 0 {
		return "??"
	}
	if len(words) >= 2 {
		return strings.ToUpper(firstRune(words[0]) + firstRune(words[1]))
	}
	if name == DefaultUserName {
		return "FD"
	}
	runes := []rune(words[0])
	if len(runes) == 1 {
		return strings.ToUpper(string(runes))
	}
	return strings.ToUpper(string(runes[:2]))
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

// NameFromEmail title-cases the local part of an email address
// ("jane.doe@x.io" -> "Jane Doe"). Returns "" when nothing usable remains.
func NameFromEmail(email string) string {
	local, _, _ := strings.Cut(strings.TrimSpace(email), "@")
	parts := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})
	for i, p := range parts {
		runes := []rune(strings.ToLower(p))
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}
