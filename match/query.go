package match

import (
	"strings"

	"github.com/flightbag/flightbag"
)

// airportNames maps airport identifiers to the city or field name used
// in their published procedure titles, so a query like "IAD5" expands
// to "DULLES FIVE" rather than the literal identifier.
var airportNames = map[string]string{
	"IAD": "DULLES",
	"DCA": "WASHINGTON",
	"BWI": "BALTIMORE",
	"RIC": "RICHMOND",
	"ORF": "NORFOLK",
	"RDU": "RALEIGH",
	"OAK": "OAKLAND",
}

// digitWords spells out the single trailing digit of procedure
// shorthand like "CNDEL5", since published titles spell the number.
var digitWords = map[byte]string{
	'1': "ONE",
	'2': "TWO",
	'3': "THREE",
	'4': "FOUR",
	'5': "FIVE",
	'6': "SIX",
	'7': "SEVEN",
	'8': "EIGHT",
	'9': "NINE",
}

// Query is a canonicalized chart search query.
type Query struct {
	// Tokens are the normalized comparison tokens.
	Tokens []string

	// Type is the chart classification inferred from the query text.
	// ChartUnknown disables the type affinity bonus during scoring.
	Type flightbag.ChartType
}

// NewQuery canonicalizes user search terms for the given airport.
// Beyond plain normalization it rewrites common shorthand: "TAXI"
// addresses the airport diagram, and trailing-digit procedure names
// ("CNDEL5", "IAD5") expand to the spelled-out form used on charts.
func NewQuery(airport string, terms []string) Query {
	s := strings.ToUpper(strings.TrimSpace(strings.Join(terms, " ")))
	if s == "TAXI" {
		s = "AIRPORT DIAGRAM"
	} else if base, digit, ok := splitTrailingDigit(s); ok {
		if name, known := airportNames[base]; known && base == flightbag.NormalizeIdent(airport) {
			base = name
		}
		word, known := digitWords[digit]
		if !known {
			word = string(digit)
		}
		s = base + " " + word
	}
	return Query{
		Tokens: Tokenize(Normalize(s)),
		Type:   flightbag.InferChartType(s),
	}
}

// splitTrailingDigit matches shorthand of the form LETTERS+DIGIT, e.g.
// "CNDEL5" into ("CNDEL", '5').
func splitTrailingDigit(s string) (base string, digit byte, ok bool) {
	if len(s) < 2 {
		return "", 0, false
	}
	last := s[len(s)-1]
	if last < '0' || last > '9' {
		return "", 0, false
	}
	base = s[:len(s)-1]
	for i := 0; i < len(base); i++ {
		if base[i] < 'A' || base[i] > 'Z' {
			return "", 0, false
		}
	}
	return base, last, true
}
