package scoring

import (
	"regexp"
	"strings"
)

// URLStatus is the binary classification of a scored URL.
type URLStatus string

const (
	StatusSafe     URLStatus = "SAFE"
	StatusPhishing URLStatus = "PHISHING"
)

const (
	maxRiskScore = 100

	phishingThreshold = 50

	insecurePoints     = 30
	longURLPoints      = 20
	longURLLength      = 60
	keywordPoints      = 10
	specialCharsPoints = 20
	specialCharsLimit  = 10
)

var (
	urlShapeRe     = regexp.MustCompile(`^(https?://)?([\w-]+\.)+[\w-]+(/[\w\-._~:/?#\[\]@!$&'()*+,;=]*)?$`)
	alphanumericRe = regexp.MustCompile(`[a-zA-Z0-9]`)

	suspiciousKeywords = []string{"login", "secure", "update", "verify", "bank", "paypal"}
)

// URLRiskAssessment is the outcome of CalculateURLRisk.
type URLRiskAssessment struct {
	RiskScore int       `json:"riskScore"`
	Status    URLStatus `json:"status"`
}

// IsPhishing reports whether the assessment crossed the phishing threshold.
func (a URLRiskAssessment) IsPhishing() bool {
	return a.Status == StatusPhishing
}

// ValidURLShape reports whether url looks like a host with an optional path.
func ValidURLShape(url string) bool {
	return urlShapeRe.MatchString(url)
}

// CalculateURLRisk applies the canonical rule set to url.
// Malformed URLs are treated as certain phishing.
func CalculateURLRisk(url string) URLRiskAssessment {
	if !ValidURLShape(url) {
		return URLRiskAssessment{RiskScore: maxRiskScore, Status: StatusPhishing}
	}

	score := RiskScore(url)
	status := StatusSafe
	if score >= phishingThreshold {
		status = StatusPhishing
	}
	return URLRiskAssessment{RiskScore: score, Status: status}
}

// RiskScore sums the heuristic rule weights for url, capped at 100.
// It does not validate the URL shape.
func RiskScore(url string) int {
	score := 0

	if !strings.HasPrefix(url, "https://") {
		score += insecurePoints
	}

	if len(url) > longURLLength {
		score += longURLPoints
	}

	lower := strings.ToLower(url)
	for _, kw := range suspiciousKeywords {
		if strings.Contains(lower, kw) {
			score += keywordPoints
		}
	}

	if len(alphanumericRe.ReplaceAllString(url, "")) > specialCharsLimit {
		score += specialCharsPoints
	}

	return min(score, maxRiskScore)
}
