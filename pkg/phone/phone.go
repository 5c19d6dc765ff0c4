package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is used for numbers written without a country code
const DefaultRegion = "CN"

// Normalizer formats phone numbers to E.164 for one default region
type Normalizer struct {
	region string
}

// NewNormalizer creates a normalizer; region is an ISO 3166 code such as "CN"
func NewNormalizer(region string) *Normalizer {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		region = DefaultRegion
	}
	return &Normalizer{region: region}
}

// Normalize returns the E.164 form of raw when it parses as a valid number.
// Anything else is returned trimmed and unchanged, with ok false; contact
// details typed on a phone are often partial and must not be rejected.
func (n *Normalizer) Normalize(raw string) (normalized string, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	parsed, err := phonenumbers.Parse(raw, n.region)
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return raw, false
	}
	return phonenumbers.Format(parsed, phonenumbers.E164), true
}

// Region returns the region code of a normalized number, or "" if unknown
func Region(e164 string) string {
	parsed, err := phonenumbers.Parse(e164, "")
	if err != nil {
		return ""
	}
	return phonenumbers.GetRegionCodeForNumber(parsed)
}
