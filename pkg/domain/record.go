package domain

// MissingSecurityContact is the value a GSA formatted domain list uses to mark
// a domain without a security contact.
const MissingSecurityContact = "(blank)"

// DomainRecord is a single row of a DotGov domain listing.
type DomainRecord struct {
	// Domain is the fully qualified domain name. It is used as the processing
	// order key.
	Domain string `json:"domain"`
	// Agency is the federal agency owning the domain.
	Agency string `json:"agency"`
	// Organization is the organization listed for the domain, it may be empty.
	Organization string `json:"organization"`
	// SecurityContact is the listed security contact email or the missing
	// contact sentinel.
	SecurityContact string `json:"securityContact"`
}

// HasSecurityContact reports whether the record lists a real security contact,
// i.e. a non-empty value that differs from the missing contact sentinel.
func (r DomainRecord) HasSecurityContact(missingSentinel string) bool {
	return r.SecurityContact != "" && r.SecurityContact != missingSentinel
}
