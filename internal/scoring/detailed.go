package scoring

import (
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"
)

// RiskLevel is the five-band label produced by AnalyzeURLDetailed.
type RiskLevel string

const (
	LevelSafe         RiskLevel = "Safe"
	LevelLowRisk      RiskLevel = "Low Risk"
	LevelMediumRisk   RiskLevel = "Medium Risk"
	LevelHighRisk     RiskLevel = "High Risk"
	LevelVeryHighRisk RiskLevel = "Very High Risk"
)

var (
	suspiciousTLDs = []string{".tk", ".ml", ".ga", ".cf", ".gq", ".xyz", ".top", ".club", ".online", ".site"}
	urlShorteners  = []string{"bit.ly", "tinyurl.com", "t.co", "goo.gl", "is.gd", "buff.ly", "ow.ly"}
	hostKeywords   = []string{
		"login", "bank", "secure", "account", "verify", "update", "confirm",
		"paypal", "amazon", "facebook", "google",
	}
	loginPathMarkers = []string{"login", "signin", "auth"}
	encodedMarkers   = []string{"%20", "%22", "%27"}

	hostDigitRe = regexp.MustCompile(`\d`)
	ipv4HostRe  = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`)
)

// Analysis explains how a detailed score was reached.
type Analysis struct {
	Domain               string   `json:"domain"`
	Protocol             string   `json:"protocol"`
	HasHTTPS             bool     `json:"hasHttps"`
	SuspiciousPatterns   []string `json:"suspiciousPatterns"`
	LegitimateIndicators []string `json:"legitimateIndicators"`
	Recommendations      []string `json:"recommendations"`
}

// DetailedAnalysis is the outcome of AnalyzeURLDetailed.
type DetailedAnalysis struct {
	Status    URLStatus `json:"status"`
	RiskScore int       `json:"riskScore"`
	RiskLevel RiskLevel `json:"riskLevel"`
	Analysis  Analysis  `json:"analysis"`
}

// AnalyzeURLDetailed runs the explanatory rule set over a fully qualified URL.
// It weighs the parsed host, path and query separately and is not consistent
// with CalculateURLRisk; callers must not mix the two scores.
func AnalyzeURLDetailed(raw string) DetailedAnalysis {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return DetailedAnalysis{
			Status:    StatusPhishing,
			RiskScore: maxRiskScore,
			RiskLevel: LevelVeryHighRisk,
			Analysis: Analysis{
				Domain:               "Invalid",
				Protocol:             "Invalid",
				SuspiciousPatterns:   []string{"Invalid URL format"},
				LegitimateIndicators: []string{},
				Recommendations:      []string{"Please enter a valid URL"},
			},
		}
	}

	a := Analysis{
		Protocol:             u.Scheme + ":",
		HasHTTPS:             u.Scheme == "https",
		SuspiciousPatterns:   []string{},
		LegitimateIndicators: []string{},
		Recommendations:      []string{},
	}
	score := 0

	if a.HasHTTPS {
		a.LegitimateIndicators = append(a.LegitimateIndicators, "Uses HTTPS encryption")
		score += 10
	} else {
		a.SuspiciousPatterns = append(a.SuspiciousPatterns, "Uses HTTP instead of HTTPS")
		a.Recommendations = append(a.Recommendations, "Avoid HTTP websites for sensitive activities")
		score += 30
	}

	domain := strings.ToLower(u.Hostname())
	a.Domain = domain

	tld := domain
	if i := strings.LastIndex(domain, "."); i >= 0 {
		tld = domain[i:]
	}
	if slices.Contains(suspiciousTLDs, tld) {
		a.SuspiciousPatterns = append(a.SuspiciousPatterns, fmt.Sprintf("Suspicious TLD: %s", tld))
		a.Recommendations = append(a.Recommendations, "Be cautious with uncommon domain extensions")
		score += 15
	}

	if hostDigitRe.MatchString(domain) {
		a.SuspiciousPatterns = append(a.SuspiciousPatterns, "Contains numbers in domain name")
		score += 10
	}

	if len(strings.Split(domain, "."))-2 > 2 {
		a.SuspiciousPatterns = append(a.SuspiciousPatterns, "Excessive subdomains")
		a.Recommendations = append(a.Recommendations, "Multiple subdomains can indicate suspicious activity")
		score += 15
	}

	if containsAny(domain, urlShorteners) {
		a.SuspiciousPatterns = append(a.SuspiciousPatterns, "URL shortener detected")
		a.Recommendations = append(a.Recommendations, "URL shorteners can hide malicious destinations")
		score += 25
	}

	if containsAny(domain, hostKeywords) {
		a.SuspiciousPatterns = append(a.SuspiciousPatterns, "Contains sensitive keywords in domain")
		a.Recommendations = append(a.Recommendations, "Domains mimicking trusted services are common in phishing")
		score += 20
	}

	if containsAny(strings.ToLower(u.EscapedPath()), loginPathMarkers) {
		a.SuspiciousPatterns = append(a.SuspiciousPatterns, "Login-related path detected")
		score += 15
	}

	if len(u.Query().Encode()) > 100 {
		a.SuspiciousPatterns = append(a.SuspiciousPatterns, "Excessive query parameters")
		score += 10
	}

	if containsAny(raw, encodedMarkers) {
		a.SuspiciousPatterns = append(a.SuspiciousPatterns, "Contains encoded characters")
		score += 10
	}

	if len(raw) > 200 {
		a.SuspiciousPatterns = append(a.SuspiciousPatterns, "Unusually long URL")
		score += 5
	}

	if ipv4HostRe.MatchString(domain) {
		a.SuspiciousPatterns = append(a.SuspiciousPatterns, "Uses IP address instead of domain name")
		a.Recommendations = append(a.Recommendations, "Legitimate websites rarely use IP addresses")
		score += 30
	}

	score = max(0, min(maxRiskScore, score))
	level := riskLevel(score)
	status := StatusSafe
	if score > 40 {
		status = StatusPhishing
	}

	return DetailedAnalysis{
		Status:    status,
		RiskScore: score,
		RiskLevel: level,
		Analysis:  a,
	}
}

func riskLevel(score int) RiskLevel {
	switch {
	case score <= 20:
		return LevelSafe
	case score <= 40:
		return LevelLowRisk
	case score <= 60:
		return LevelMediumRisk
	case score <= 80:
		return LevelHighRisk
	default:
		return LevelVeryHighRisk
	}
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
