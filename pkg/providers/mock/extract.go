package mock

import "regexp"

// Match is the outcome of target extraction.
type Match struct {
	Token   string
	Pattern string
	OK      bool
}

type extractor struct {
	name    string
	pattern *regexp.Regexp
}

// extractors run in order; the first match wins and only its first capture
// group is used.
var extractors = []extractor{
	{"quoted", regexp.MustCompile(`(?i)length.*?(?:of|for).*?["']([^"']+)["']`)},
	{"of_word_colon", regexp.MustCompile(`(?i)length.*?(?:of|for).*?(?:word|text).*?:\s*([A-Za-z]+)`)},
	{"of_word", regexp.MustCompile(`(?i)length.*?(?:of|for).*?(?:word|text)\s+([A-Za-z]+)`)},
	{"word_colon", regexp.MustCompile(`(?i)(?:word|text)\s*:\s*([A-Za-z]+)`)},
	{"length_colon", regexp.MustCompile(`(?i)length.*?:\s*([A-Za-z]+)`)},
	{"uppercase", regexp.MustCompile(`\b([A-Z]+)\b`)},
}

// ExtractTarget finds the word a length question is about.
func ExtractTarget(prompt string) Match {
	for _, ex := range extractors {
		if sub := ex.pattern.FindStringSubmatch(prompt); len(sub) > 1 {
			return Match{Token: sub[1], Pattern: ex.name, OK: true}
		}
	}
	return Match{}
}
