// Package normalize converts mixed-language, mixed-notation source
// text into TTS-ready Russian prose. Every conversion function is
// total: input that cannot be parsed is returned unchanged, never an
// error.
package normalize

// CodeBlockMode selects how fenced code blocks are spoken.
type CodeBlockMode string

const (
	// CodeBlockFull reads code token by token.
	CodeBlockFull CodeBlockMode = "full"
	// CodeBlockBrief replaces each block with a one-line description.
	CodeBlockBrief CodeBlockMode = "brief"
)

// URLDetail selects how much of a URL gets spoken.
type URLDetail string

const (
	URLDetailFull       URLDetail = "full"
	URLDetailDomainOnly URLDetail = "domainOnly"
	URLDetailMinimal    URLDetail = "minimal"
)

// IPReadMode selects how IP address octets are read.
type IPReadMode string

const (
	// IPReadNumbers reads each octet as a whole number.
	IPReadNumbers IPReadMode = "numbers"
	// IPReadDigits reads octets digit by digit.
	IPReadDigits IPReadMode = "digits"
)

// Options configures a normalizer set. Immutable during a single
// processing call; may be changed between documents.
type Options struct {
	CodeBlockMode CodeBlockMode
	URLDetail     URLDetail
	ReadOperators bool
	IPReadMode    IPReadMode

	// CustomTerms extends the built-in English term table. Keys are
	// matched case-insensitively; multi-word keys are matched as
	// phrases before single terms. The built-in tables are never
	// mutated.
	CustomTerms map[string]string

	// CustomAbbreviations are literal source-text expansions applied
	// before any other text pass.
	CustomAbbreviations map[string]string
}

// DefaultOptions returns the option set used when nothing is
// configured.
func DefaultOptions() Options {
	return Options{
		CodeBlockMode: CodeBlockBrief,
		URLDetail:     URLDetailDomainOnly,
		ReadOperators: false,
		IPReadMode:    IPReadNumbers,
	}
}
