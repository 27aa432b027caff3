package features

import (
	"hash/fnv"
	"math"
	"net"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/publicsuffix"

	"earlywarn/internal/domain"
)

// AgeUnknown is the DomainAgeDays sentinel used when no registrable domain
// can be derived from the input.
const AgeUnknown = -1

// pseudoAgeSpanDays bounds the simulated domain age at roughly ten years.
const pseudoAgeSpanDays = 3650

// Extract computes the lexical/structural feature vector for a raw URL
// string. It is a total function: malformed input degrades to conservative,
// maximally suspicious defaults instead of failing, since obfuscated input is
// itself a threat signal.
func Extract(rawURL string) domain.URLFeatures {
	raw := strings.TrimSpace(rawURL)
	lower := strings.ToLower(raw)

	f := domain.URLFeatures{
		Length:        len(raw),
		DotCount:      strings.Count(raw, "."),
		DomainAgeDays: AgeUnknown,
		Entropy:       shannonEntropy(raw),
	}
	for _, kw := range suspiciousKeywords {
		if strings.Contains(lower, kw) {
			f.SuspiciousKeywordCount++
		}
	}

	host, scheme, ok := splitHost(raw)
	if !ok {
		// No recoverable host. Treated like an IP-literal host: both defeat
		// human readability.
		f.HasIPHost = true
		return f
	}
	f.UsesHTTPS = scheme == "https"
	f.HasIPHost = isIPLiteral(host)
	if f.HasIPHost {
		return f
	}

	suffix, _ := publicsuffix.PublicSuffix(host)
	if _, risky := highRiskTLDs[suffix]; risky {
		f.TLDRiskScore = 1.0
	}

	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return f
	}
	f.DomainAgeDays = pseudoAge(registrable)
	if n := labelCount(host) - labelCount(registrable); n > 0 {
		f.SubdomainCount = n
	}
	return f
}

// splitHost recovers the host and scheme from a raw URL. Scheme-less input
// like "example.com/login" is reparsed so the host lands in the authority
// component instead of the path.
func splitHost(raw string) (host, scheme string, ok bool) {
	u, err := url.Parse(raw)
	if err == nil && u.Host == "" && !strings.Contains(raw, "://") {
		u, err = url.Parse("//" + raw)
	}
	if err != nil {
		return "", "", false
	}
	host = strings.ToLower(u.Hostname())
	if host == "" {
		return "", "", false
	}
	return host, strings.ToLower(u.Scheme), true
}

// isIPLiteral reports whether the host is an IP rather than a name. Besides
// canonical IPv4/IPv6 forms it accepts dotted hex and octal labels, the
// inet_aton spellings browsers happily navigate to.
func isIPLiteral(host string) bool {
	if net.ParseIP(host) != nil {
		return true
	}
	labels := strings.Split(host, ".")
	if len(labels) > 4 {
		return false
	}
	for _, l := range labels {
		if l == "" {
			return false
		}
		if _, err := strconv.ParseUint(l, 0, 32); err != nil {
			return false
		}
	}
	return true
}

func shannonEntropy(s string) float64 {
	if s == "" {
		return 0
	}
	freq := make(map[rune]int)
	total := 0
	for _, r := range s {
		freq[r]++
		total++
	}
	var h float64
	for _, n := range freq {
		p := float64(n) / float64(total)
		h -= p * math.Log2(p)
	}
	return h
}

// pseudoAge derives a stable simulated age in days from the registrable
// domain. This is not a WHOIS lookup; it only gives repeated analyses of the
// same domain a consistent weak signal.
func pseudoAge(registrable string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(registrable))
	return int(h.Sum32() % pseudoAgeSpanDays)
}

func labelCount(host string) int {
	return strings.Count(host, ".") + 1
}
