// Package scoring holds the pure risk and strength heuristics used by the API.
package scoring

import (
	"regexp"
	"unicode/utf8"
)

// Strength is the coarse classification of a password score.
type Strength string

const (
	StrengthInvalid Strength = "Invalid"
	StrengthWeak    Strength = "Weak"
	StrengthMedium  Strength = "Medium"
	StrengthStrong  Strength = "Strong"
)

const (
	criterionPoints = 15
	noPatternPoints = 10

	strongThreshold = 80
	mediumThreshold = 60

	feedbackMissing = "Password is required"
	feedbackStrong  = "Excellent password strength!"
	feedbackMedium  = "Good password, but could be stronger"
	feedbackWeak    = "Consider adding more character types and length"
)

var (
	upperRe         = regexp.MustCompile(`[A-Z]`)
	lowerRe         = regexp.MustCompile(`[a-z]`)
	digitRe         = regexp.MustCompile(`[0-9]`)
	symbolRe        = regexp.MustCompile(`[^A-Za-z0-9]`)
	bannedPatternRe = regexp.MustCompile(`(?i)(123|abc|qwerty|password|admin)`)
)

// PasswordCriteria records which of the fixed checks a password passed.
type PasswordCriteria struct {
	Length8    bool `json:"length8"`
	Length12   bool `json:"length12"`
	Uppercase  bool `json:"uppercase"`
	Lowercase  bool `json:"lowercase"`
	Numbers    bool `json:"numbers"`
	Symbols    bool `json:"symbols"`
	NoPatterns bool `json:"noPatterns"`
}

// StrengthResult is the outcome of CalculatePasswordStrength.
type StrengthResult struct {
	Strength Strength         `json:"strength"`
	Score    int              `json:"score"`
	Criteria PasswordCriteria `json:"criteria"`
	Feedback string           `json:"feedback"`
}

// CalculatePasswordStrength scores a password out of 100.
// Every criterion is evaluated independently; the six length and character
// class checks are worth 15 points each and the banned-pattern check 10.
func CalculatePasswordStrength(password string) StrengthResult {
	if password == "" {
		return StrengthResult{
			Strength: StrengthInvalid,
			Score:    0,
			Feedback: feedbackMissing,
		}
	}

	length := utf8.RuneCountInString(password)
	criteria := PasswordCriteria{
		Length8:    length >= 8,
		Length12:   length >= 12,
		Uppercase:  upperRe.MatchString(password),
		Lowercase:  lowerRe.MatchString(password),
		Numbers:    digitRe.MatchString(password),
		Symbols:    symbolRe.MatchString(password),
		NoPatterns: !bannedPatternRe.MatchString(password),
	}

	score := 0
	for _, passed := range []bool{
		criteria.Length8,
		criteria.Length12,
		criteria.Uppercase,
		criteria.Lowercase,
		criteria.Numbers,
		criteria.Symbols,
	} {
		if passed {
			score += criterionPoints
		}
	}
	if criteria.NoPatterns {
		score += noPatternPoints
	}

	result := StrengthResult{
		Strength: StrengthWeak,
		Score:    score,
		Criteria: criteria,
		Feedback: feedbackWeak,
	}
	switch {
	case score >= strongThreshold:
		result.Strength = StrengthStrong
		result.Feedback = feedbackStrong
	case score >= mediumThreshold:
		result.Strength = StrengthMedium
		result.Feedback = feedbackMedium
	}
	return result
}
