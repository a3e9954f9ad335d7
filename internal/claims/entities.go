package claims

import (
	"regexp"
	"strings"

	"github.com/apex-assurance/claims-backend/internal/models"
)

var (
	policyNumberRe = regexp.MustCompile(`[A-Z]{2,3}-\d{8}-[A-Z]`)

	dateRes = []*regexp.Regexp{
		regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4}`),
		regexp.MustCompile(`\d{1,2}-\d{1,2}-\d{2,4}`),
		regexp.MustCompile(`(?i)(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* \d{1,2},? \d{4}`),
		regexp.MustCompile(`\d{4}-\d{2}-\d{2}`),
	}

	dollarAmountRe  = regexp.MustCompile(`\$[\d,]+(?:\.\d{2})?`)
	wordedAmountRe  = regexp.MustCompile(`(?i)(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)\s*(?:dollars?|USD)`)
	phoneRe         = regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	emailRe         = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	vehicleYearRe   = regexp.MustCompile(`(?:19|20)\d{2}\s+[A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)?`)
)

const vehicleSliceLen = 30

// ExtractEntities pulls structured tokens out of free text. Pattern
// families run independently; each category is deduplicated. Adversarial
// input yields empty lists, not errors.
func ExtractEntities(text string) models.ExtractedEntities {
	entities := models.ExtractedEntities{
		PolicyNumbers: dedupe(policyNumberRe.FindAllString(strings.ToUpper(text), -1)),
		Names:         []string{},
		Locations:     []string{},
	}

	var dates []string
	for _, re := range dateRes {
		dates = append(dates, re.FindAllString(text, -1)...)
	}
	entities.Dates = dedupe(dates)

	amounts := dollarAmountRe.FindAllString(text, -1)
	for _, m := range wordedAmountRe.FindAllStringSubmatch(text, -1) {
		amounts = append(amounts, "$"+m[1])
	}
	entities.Amounts = dedupe(amounts)

	entities.PhoneNumbers = dedupe(phoneRe.FindAllString(text, -1))
	entities.Emails = dedupe(emailRe.FindAllString(text, -1))
	entities.VehicleInfo = dedupe(vehicleSlices(text))

	return entities
}

// vehicleSlices anchors a short free-text slice at each year+make match,
// truncated at the first comma.
func vehicleSlices(text string) []string {
	var out []string
	for _, loc := range vehicleYearRe.FindAllStringIndex(text, -1) {
		end := loc[0] + vehicleSliceLen
		if end > len(text) {
			end = len(text)
		}
		slice := strings.ToValidUTF8(text[loc[0]:end], "")
		if i := strings.Index(slice, ","); i >= 0 {
			slice = slice[:i]
		}
		slice = strings.TrimSpace(slice)
		if slice != "" {
			out = append(out, slice)
		}
	}
	return out
}

// dedupe keeps the first occurrence of each token. Category results are
// sets; callers must not rely on ordering.
func dedupe(in []string) []string {
	out := []string{}
	seen := map[string]struct{}{}
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
