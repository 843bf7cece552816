package domain

// VDPPath is the well-known path a domain is expected to publish its
// Vulnerability Disclosure Policy at.
const VDPPath = "/vulnerability-disclosure-policy"

// CheckOutcome is the result of checking a single domain for a VDP.
// The zero value is the outcome of a domain that could not be reached at all.
type CheckOutcome struct {
	// VisitedURL is the final URL reached, empty when no fetch succeeded.
	VisitedURL string `json:"visitedUrl"`
	// IsRedirect reports whether VisitedURL differs from the requested URL.
	IsRedirect bool `json:"isRedirect"`
	// VDPPresent is true only when the final response status was 200.
	VDPPresent bool `json:"vdpPresent"`
	// Hash is the content hash of the policy, set only when VDPPresent is true.
	Hash string `json:"hash"`
}

// Valid reports whether the outcome holds its invariants: a hash implies a
// present VDP and a present VDP implies a visited URL.
func (o CheckOutcome) Valid() bool {
	if o.Hash != "" && !o.VDPPresent {
		return false
	}
	if o.VDPPresent && o.VisitedURL == "" {
		return false
	}

	return true
}
