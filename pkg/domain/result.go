package domain

import "strconv"

// DomainHeader is the fixed header of the domain level results table. It is
// positionally aligned with DomainResult.Row.
var DomainHeader = []string{ //nolint: gochecknoglobals
	"Domain",
	"Agency",
	"Organization",
	"Security Contact Email",
	"Visited URL",
	"Was it Redirected",
	"VDP is Published",
	"VDP Hash",
}

// AgencyHeader is the fixed header of the agency level results table. It is
// positionally aligned with AgencyTally.Row.
var AgencyHeader = []string{ //nolint: gochecknoglobals
	"Agency",
	"Total Domains",
	"Domains with Security Contact Listed",
	"Domains with Organization Listed",
	"Domains with Matching Organization and Agency",
	"Domains with Published VDP",
}

// DomainResult is the flat combination of a domain record and its check outcome.
type DomainResult struct {
	DomainRecord
	CheckOutcome
}

// Row renders the result as table cells in DomainHeader order.
func (r DomainResult) Row() []string {
	return []string{
		r.Domain,
		r.Agency,
		r.Organization,
		r.SecurityContact,
		r.VisitedURL,
		formatBool(r.IsRedirect),
		formatBool(r.VDPPresent),
		r.Hash,
	}
}

// AgencyTally holds the running counters for a single agency.
type AgencyTally struct {
	Agency                    string `json:"agency"`
	TotalDomains              int    `json:"totalDomains"`
	SecurityContactListed     int    `json:"securityContactListed"`
	OrganizationListed        int    `json:"organizationListed"`
	OrganizationMatchesAgency int    `json:"organizationMatchesAgency"`
	VDPPublished              int    `json:"vdpPublished"`
}

// Row renders the tally as table cells in AgencyHeader order.
func (t AgencyTally) Row() []string {
	return []string{
		t.Agency,
		strconv.Itoa(t.TotalDomains),
		strconv.Itoa(t.SecurityContactListed),
		strconv.Itoa(t.OrganizationListed),
		strconv.Itoa(t.OrganizationMatchesAgency),
		strconv.Itoa(t.VDPPublished),
	}
}

// booleans are rendered the way the DotGov reports always have.
func formatBool(b bool) string {
	if b {
		return "True"
	}

	return "False"
}
