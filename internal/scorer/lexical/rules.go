package lexical

import "regexp"

// Keyword is a suspicious token and the score it adds when present.
type Keyword struct {
	Token  string
	Weight float64
}

// Rules is the rule table evaluated by the lexical scorer.
type Rules struct {
	// Brands are impersonation targets. A domain containing a brand adds
	// BrandWeight unless it ends with the brand followed by one of BrandSuffixes.
	Brands        []string
	BrandSuffixes []string
	BrandWeight   float64

	// Keywords add their weight when found in the domain or the full URL.
	Keywords []Keyword

	// SuspiciousTLDs add TLDWeight each when the domain ends with them.
	SuspiciousTLDs []string
	TLDWeight      float64

	// ManyHyphens applies above HyphenHigh hyphens, SomeHyphens to any other non-zero count.
	HyphenHigh  int
	ManyHyphens float64
	SomeHyphens float64

	// LongDomain applies above LengthHigh characters, MediumDomain above LengthMedium.
	LengthHigh   int
	LengthMedium int
	LongDomain   float64
	MediumDomain float64

	// IPLiteral applies when the host is a dotted quad.
	IPLiteral float64

	// DeepSubdomains applies above DotsHigh dots, SomeSubdomains above DotsMedium.
	DotsHigh       int
	DotsMedium     int
	DeepSubdomains float64
	SomeSubdomains float64

	// Patterns are matched against the lowercased URL and add PatternWeight each.
	Patterns      []*regexp.Regexp
	PatternWeight float64
}

// SuspiciousTLDs are top-level domains overrepresented in phishing campaigns.
func SuspiciousTLDs() []string {
	return []string{".xyz", ".top", ".club", ".loan", ".tk", ".ml", ".ga", ".cf"}
}

// DefaultRules returns the production rule table.
func DefaultRules() Rules {
	return Rules{
		Brands: []string{
			"paypal", "google", "facebook", "amazon", "apple",
			"microsoft", "netflix", "bankofamerica", "wellsfargo",
			"chase", "citibank", "linkedin", "twitter", "instagram",
		},
		BrandSuffixes: []string{".com", ".org", ".net"},
		BrandWeight:   35,

		Keywords: []Keyword{
			{Token: "login", Weight: 15},
			{Token: "verify", Weight: 20},
			{Token: "account", Weight: 15},
			{Token: "secure", Weight: 15},
			{Token: "banking", Weight: 25},
			{Token: "update", Weight: 20},
			{Token: "signin", Weight: 15},
			{Token: "security", Weight: 20},
			{Token: "validation", Weight: 20},
			{Token: "confirm", Weight: 15},
			{Token: "billing", Weight: 20},
		},

		SuspiciousTLDs: SuspiciousTLDs(),
		TLDWeight:      20,

		HyphenHigh:  2,
		ManyHyphens: 25,
		SomeHyphens: 10,

		LengthHigh:   35,
		LengthMedium: 25,
		LongDomain:   15,
		MediumDomain: 10,

		IPLiteral: 30,

		DotsHigh:       3,
		DotsMedium:     2,
		DeepSubdomains: 20,
		SomeSubdomains: 10,

		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`paypal.*security.*verification`),
			regexp.MustCompile(`bank.*login.*secure`),
			regexp.MustCompile(`verify.*account.*update`),
			regexp.MustCompile(`secure.*login.*portal`),
			regexp.MustCompile(`identity.*verification.*required`),
		},
		PatternWeight: 40,
	}
}
