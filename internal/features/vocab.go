package features

// suspiciousKeywords is the fixed vocabulary of phishing/ransomware pretext
// terms. Each keyword is counted at most once per URL, case-insensitively.
var suspiciousKeywords = []string{
	"account",
	"banking",
	"bitcoin",
	"confirm",
	"crypto",
	"decrypt",
	"download",
	"encrypt",
	"free",
	"gift",
	"invoice",
	"login",
	"password",
	"payment",
	"secure",
	"signin",
	"support",
	"suspend",
	"unlock",
	"update",
	"urgent",
	"verify",
	"wallet",
}

// highRiskTLDs maps public suffixes with a disproportionate share of abuse
// reports. Membership contributes 1.0 to TLDRiskScore; everything else is 0.
var highRiskTLDs = map[string]struct{}{
	"ru":     {},
	"cn":     {},
	"tk":     {},
	"xyz":    {},
	"top":    {},
	"pw":     {},
	"cc":     {},
	"ws":     {},
	"info":   {},
	"work":   {},
	"click":  {},
	"link":   {},
	"site":   {},
	"loan":   {},
	"date":   {},
	"racing": {},
	"gq":     {},
	"ml":     {},
	"ga":     {},
	"cf":     {},
}
