package reconcile

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// GeneratedIDPrefix marks identifiers derived from record content.
const GeneratedIDPrefix = "gen_"

// GenerateID derives a stable identifier from the identifying fields of an
// application. Absent parts contribute an empty segment, so equal content
// always yields the same identifier.
func GenerateID(companyName, jobTitle, jobURL, appliedDate string) string {
	joined := strings.Join([]string{companyName, jobTitle, jobURL, appliedDate}, "_")
	sum := sha256.Sum256([]byte(joined))
	return GeneratedIDPrefix + hex.EncodeToString(sum[:])[:12]
}
