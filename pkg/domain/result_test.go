package domain_test

import (
	"testing"

	"vdpscanner/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestCheckOutcome_Valid(t *testing.T) {
	cases := []struct {
		name    string
		outcome domain.CheckOutcome
		valid   bool
	}{
		{name: "zero value", outcome: domain.CheckOutcome{}, valid: true},
		{
			name:    "present with hash",
			outcome: domain.CheckOutcome{VisitedURL: "https://a.gov/x", VDPPresent: true, Hash: "abc"},
			valid:   true,
		},
		{
			name:    "absent with visited url",
			outcome: domain.CheckOutcome{VisitedURL: "http://a.gov/x", IsRedirect: true},
			valid:   true,
		},
		{name: "hash without presence", outcome: domain.CheckOutcome{VisitedURL: "https://a.gov", Hash: "abc"}},
		{name: "presence without url", outcome: domain.CheckOutcome{VDPPresent: true}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.valid, tc.outcome.Valid())
		})
	}
}

func TestDomainResult_Row(t *testing.T) {
	res := domain.DomainResult{
		DomainRecord: domain.DomainRecord{
			Domain:          "example.gov",
			Agency:          "ACME",
			Organization:    "ACME",
			SecurityContact: "sec@example.gov",
		},
		CheckOutcome: domain.CheckOutcome{
			VisitedURL: "https://example.gov/vulnerability-disclosure-policy",
			VDPPresent: true,
			Hash:       "abc123",
		},
	}

	row := res.Row()
	require.Len(t, row, len(domain.DomainHeader))
	require.Equal(t, []string{
		"example.gov",
		"ACME",
		"ACME",
		"sec@example.gov",
		"https://example.gov/vulnerability-disclosure-policy",
		"False",
		"True",
		"abc123",
	}, row)
}

func TestAgencyTally_Row(t *testing.T) {
	tally := domain.AgencyTally{
		Agency:                    "ACME",
		TotalDomains:              3,
		SecurityContactListed:     2,
		OrganizationListed:        3,
		OrganizationMatchesAgency: 1,
		VDPPublished:              0,
	}

	row := tally.Row()
	require.Len(t, row, len(domain.AgencyHeader))
	require.Equal(t, []string{"ACME", "3", "2", "3", "1", "0"}, row)
}

func TestDomainRecord_HasSecurityContact(t *testing.T) {
	require.True(t, domain.DomainRecord{SecurityContact: "a@b.gov"}.HasSecurityContact(domain.MissingSecurityContact))
	require.False(t, domain.DomainRecord{SecurityContact: ""}.HasSecurityContact(domain.MissingSecurityContact))
	require.False(t, domain.DomainRecord{SecurityContact: "(blank)"}.HasSecurityContact(domain.MissingSecurityContact))
}
