package domain

// Case is the letter-casing shape of a word.
type Case string

const (
	CaseTitle Case = "title"
	CaseLower Case = "lower"
	CaseUpper Case = "upper"
	CaseMixed Case = "mixed"
	CaseNone  Case = ""
)

// CaseReportOrder is the order cases are listed in an analysis report.
var CaseReportOrder = []Case{CaseUpper, CaseTitle, CaseLower, CaseMixed, CaseNone}

// Key is the bucket a word is classified into. Disabled axes hold their zero value.
type Key struct {
	Case   Case
	Letter string
	Length int
}

// WordStats holds corpus statistics for one word.
type WordStats struct {
	Count      int
	Percent    float64
	Annotation string
}

// Occurrences counts how often each word appears in the corpus.
type Occurrences map[string]int

// Token is a raw token split into surrounding punctuation and its core word.
type Token struct {
	Prefix string
	Core   string
	Suffix string
}

// String reassembles the token.
func (t Token) String() string {
	return t.Prefix + t.Core + t.Suffix
}
