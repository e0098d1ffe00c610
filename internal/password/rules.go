// Package password holds the strength rules applied to new passwords.
package password

import (
	"fmt"
	"regexp"
	"unicode/utf16"

	"github.com/ecowaste/site/internal/domain"
)

// MinLength is the shortest accepted password.
const MinLength = 8

// Rule is a single strength predicate with the text shown next to it.
type Rule struct {
	Text  string
	Check func(string) bool
}

// Requirement is a Rule evaluated against a concrete password.
type Requirement struct {
	Text string `json:"text"`
	Met  bool   `json:"met"`
}

var (
	upperRe   = regexp.MustCompile(`[A-Z]`)
	lowerRe   = regexp.MustCompile(`[a-z]`)
	digitRe   = regexp.MustCompile(`[0-9]`)
	specialRe = regexp.MustCompile(`[!@#$%^&*]`)
)

// Length counts s in UTF-16 code units, the way browsers measure form input,
// so multibyte letters count once.
func Length(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// Rules are evaluated in this order and rendered in this order.
var Rules = []Rule{
	{Text: "At least 8 characters", Check: func(s string) bool { return Length(s) >= MinLength }},
	{Text: "One uppercase letter", Check: upperRe.MatchString},
	{Text: "One lowercase letter", Check: lowerRe.MatchString},
	{Text: "One number", Check: digitRe.MatchString},
	{Text: "One special character", Check: specialRe.MatchString},
}

// Evaluate checks pw against every rule.
func Evaluate(pw string) []Requirement {
	reqs := make([]Requirement, len(Rules))
	for i, r := range Rules {
		reqs[i] = Requirement{Text: r.Text, Met: r.Check(pw)}
	}
	return reqs
}

// AllMet reports whether pw satisfies every rule.
func AllMet(pw string) bool {
	for _, r := range Rules {
		if !r.Check(pw) {
			return false
		}
	}
	return true
}

// Unmet returns the text of every rule pw fails.
func Unmet(pw string) []string {
	var out []string
	for _, r := range Rules {
		if !r.Check(pw) {
			out = append(out, r.Text)
		}
	}
	return out
}

// CheckChange validates a new password and its confirmation. The mismatch
// is reported before strength so the user fixes the confirmation first.
func CheckChange(newPassword, confirm string) error {
	if newPassword != confirm {
		return domain.ErrPasswordMismatch
	}
	if unmet := Unmet(newPassword); len(unmet) > 0 {
		return fmt.Errorf("%w: %d of %d rules unmet", domain.ErrWeakPassword, len(unmet), len(Rules))
	}
	return nil
}

// CanSubmit reports whether a change form with these values may be submitted.
func CanSubmit(newPassword, confirm string) bool {
	return CheckChange(newPassword, confirm) == nil
}
