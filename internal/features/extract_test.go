package features

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_KnownSafeURL(t *testing.T) {
	f := Extract("https://google.com")

	assert.Equal(t, len("https://google.com"), f.Length)
	assert.Equal(t, 1, f.DotCount)
	assert.False(t, f.HasIPHost)
	assert.Equal(t, 0, f.SuspiciousKeywordCount)
	assert.True(t, f.UsesHTTPS)
	assert.Equal(t, 0, f.SubdomainCount)
	assert.Equal(t, 0.0, f.TLDRiskScore)
	assert.Greater(t, f.Entropy, 0.0)
	assert.Less(t, f.Entropy, 4.0)
	assert.GreaterOrEqual(t, f.DomainAgeDays, 0)
	assert.Less(t, f.DomainAgeDays, pseudoAgeSpanDays)
}

func TestExtract_TotalOnArbitraryStrings(t *testing.T) {
	inputs := []string{
		"",
		"not a url at all",
		"http://exa mple.com/path",
		"%%%",
		"https://" + strings.Repeat("a.", 200) + "com",
		"ftp://example.com/file",
		"javascript:alert(1)",
	}
	for _, in := range inputs {
		f := Extract(in)
		assert.Equal(t, len(in), f.Length, "input %q", in)
		assert.Equal(t, strings.Count(in, "."), f.DotCount, "input %q", in)
		assert.GreaterOrEqual(t, f.SuspiciousKeywordCount, 0)
		assert.GreaterOrEqual(t, f.SubdomainCount, 0)
		assert.GreaterOrEqual(t, f.Entropy, 0.0)
	}
}

func TestExtract_IPHosts(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"dotted quad", "http://192.168.1.1/pay", true},
		{"hex labels", "http://0x7f.0x0.0x0.0x1/", true},
		{"octal labels", "http://0177.0.0.1/", true},
		{"single decimal", "http://2130706433/", true},
		{"ipv6 literal", "https://[2001:db8::1]/index", true},
		{"quad out of ip range but numeric", "http://999.1.1.1/", true},
		{"plain domain", "https://example.com", false},
		{"numeric-looking domain", "https://365days.example.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Extract(tt.url)
			assert.Equal(t, tt.want, f.HasIPHost)
		})
	}
}

func TestExtract_MalformedInputDegrades(t *testing.T) {
	// A space in the host makes the URL unparsable; the extractor must still
	// return, flagging the input as IP-equivalent and non-HTTPS.
	f := Extract("http://exa mple.com/download")

	assert.True(t, f.HasIPHost)
	assert.False(t, f.UsesHTTPS)
	assert.Equal(t, AgeUnknown, f.DomainAgeDays)
	assert.Equal(t, 1, f.SuspiciousKeywordCount) // "download"
}

func TestExtract_SchemelessInput(t *testing.T) {
	f := Extract("example.com/login")

	assert.False(t, f.HasIPHost)
	assert.False(t, f.UsesHTTPS)
	assert.Equal(t, 1, f.SuspiciousKeywordCount)
	assert.Equal(t, 0, f.SubdomainCount)
	assert.GreaterOrEqual(t, f.DomainAgeDays, 0)
}

func TestExtract_KeywordsCountedOncePerTerm(t *testing.T) {
	f := Extract("https://secure-login-update.example.com/verify")
	assert.Equal(t, 4, f.SuspiciousKeywordCount)

	repeated := Extract("https://example.com/verify/verify/verify")
	assert.Equal(t, 1, repeated.SuspiciousKeywordCount)
}

func TestExtract_TLDRisk(t *testing.T) {
	assert.Equal(t, 1.0, Extract("https://promo-codes.xyz").TLDRiskScore)
	assert.Equal(t, 1.0, Extract("http://cheap.loan").TLDRiskScore)
	assert.Equal(t, 0.0, Extract("https://example.com").TLDRiskScore)
	assert.Equal(t, 0.0, Extract("https://example.co.uk").TLDRiskScore)
}

func TestExtract_SubdomainCount(t *testing.T) {
	tests := []struct {
		url  string
		want int
	}{
		{"https://example.com", 0},
		{"https://www.example.com", 1},
		{"https://a.b.c.example.com", 3},
		{"https://deep.login.portal.example.co.uk", 3},
	}
	for _, tt := range tests {
		f := Extract(tt.url)
		assert.Equal(t, tt.want, f.SubdomainCount, "url %s", tt.url)
	}
}

func TestExtract_Deterministic(t *testing.T) {
	const u = "https://update.microsoft.xyz/verify"
	first := Extract(u)
	second := Extract(u)
	require.Equal(t, first, second)
}

func TestExtract_DomainAgeIsSimulatedButStable(t *testing.T) {
	a := Extract("https://example.com/one")
	b := Extract("https://example.com/two")
	assert.Equal(t, a.DomainAgeDays, b.DomainAgeDays, "same registrable domain must map to the same pseudo-age")

	ip := Extract("http://10.0.0.1/")
	assert.Equal(t, AgeUnknown, ip.DomainAgeDays)
}

func TestShannonEntropy(t *testing.T) {
	assert.Equal(t, 0.0, shannonEntropy(""))
	assert.Equal(t, 0.0, shannonEntropy("aaaa"))
	assert.InDelta(t, 1.0, shannonEntropy("abab"), 1e-9)
	assert.InDelta(t, 2.0, shannonEntropy("abcd"), 1e-9)
}
