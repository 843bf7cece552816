package aggregator_test

import (
	"testing"

	"vdpscanner/internal/aggregator"
	"vdpscanner/pkg/domain"

	"github.com/stretchr/testify/require"
)

func present(URL string) domain.CheckOutcome {
	return domain.CheckOutcome{VisitedURL: URL, VDPPresent: true, Hash: "h"}
}

func TestAggregator_Record_SameAgency(t *testing.T) {
	agg := aggregator.New(domain.MissingSecurityContact)

	agg.Record(domain.DomainRecord{
		Domain:          "a.acme.gov",
		Agency:          "ACME",
		Organization:    "ACME",
		SecurityContact: "sec@acme.gov",
	}, present("https://a.acme.gov/vulnerability-disclosure-policy"))
	agg.Record(domain.DomainRecord{
		Domain:          "b.acme.gov",
		Agency:          "ACME",
		Organization:    "ACME",
		SecurityContact: "(blank)",
	}, domain.CheckOutcome{})

	tally, ok := agg.AgencyTally("ACME")
	require.True(t, ok)
	require.Equal(t, domain.AgencyTally{
		Agency:                    "ACME",
		TotalDomains:              2,
		SecurityContactListed:     1,
		OrganizationListed:        2,
		OrganizationMatchesAgency: 2,
		VDPPublished:              1,
	}, tally)
}

func TestAggregator_Record_Counters(t *testing.T) {
	agg := aggregator.New("")

	records := []domain.DomainRecord{
		{Domain: "1.gov", Agency: "Dept", Organization: "", SecurityContact: ""},
		{Domain: "2.gov", Agency: "Dept", Organization: "dept", SecurityContact: "(blank)"},
		{Domain: "3.gov", Agency: "Dept", Organization: "Dept", SecurityContact: "x@3.gov"},
		{Domain: "4.gov", Agency: "Other", Organization: "Dept", SecurityContact: "x@4.gov"},
	}
	for _, r := range records {
		agg.Record(r, domain.CheckOutcome{})
	}

	dept, ok := agg.AgencyTally("Dept")
	require.True(t, ok)
	require.Equal(t, 3, dept.TotalDomains)
	require.Equal(t, 1, dept.SecurityContactListed)
	require.Equal(t, 2, dept.OrganizationListed)
	// organization matching is case-sensitive
	require.Equal(t, 1, dept.OrganizationMatchesAgency)
	require.Equal(t, 0, dept.VDPPublished)

	other, ok := agg.AgencyTally("Other")
	require.True(t, ok)
	require.Equal(t, 1, other.TotalDomains)
	require.Equal(t, 0, other.OrganizationMatchesAgency)

	_, ok = agg.AgencyTally("Unknown")
	require.False(t, ok)
}

func TestAggregator_CustomMissingContactSentinel(t *testing.T) {
	agg := aggregator.New("N/A")

	agg.Record(domain.DomainRecord{Domain: "1.gov", Agency: "A", SecurityContact: "N/A"}, domain.CheckOutcome{})
	agg.Record(domain.DomainRecord{Domain: "2.gov", Agency: "A", SecurityContact: "(blank)"}, domain.CheckOutcome{})

	tally, _ := agg.AgencyTally("A")
	require.Equal(t, 1, tally.SecurityContactListed)
}

func TestAggregator_Projections(t *testing.T) {
	agg := aggregator.New(domain.MissingSecurityContact)

	require.Empty(t, agg.DomainResults())
	require.Empty(t, agg.AgencyTallies())

	agg.Record(domain.DomainRecord{Domain: "z.gov", Agency: "Zeta"}, domain.CheckOutcome{})
	agg.Record(domain.DomainRecord{Domain: "a.gov", Agency: "Alpha"}, present("https://a.gov/x"))
	agg.Record(domain.DomainRecord{Domain: "y.gov", Agency: "Zeta"}, domain.CheckOutcome{})

	results := agg.DomainResults()
	require.Len(t, results, 3)
	require.Equal(t, "z.gov", results[0].Domain)
	require.Equal(t, "a.gov", results[1].Domain)
	require.True(t, results[1].VDPPresent)
	require.Equal(t, "y.gov", results[2].Domain)

	tallies := agg.AgencyTallies()
	require.Len(t, tallies, 2)
	require.Equal(t, "Zeta", tallies[0].Agency)
	require.Equal(t, 2, tallies[0].TotalDomains)
	require.Equal(t, "Alpha", tallies[1].Agency)
	require.Equal(t, 1, tallies[1].VDPPublished)

	// projections are copies
	results[0].Domain = "mutated"
	tallies[0].TotalDomains = 100
	require.Equal(t, "z.gov", agg.DomainResults()[0].Domain)
	require.Equal(t, 2, agg.AgencyTallies()[0].TotalDomains)
}

func TestAggregator_ReplayIsIdempotentAcrossRuns(t *testing.T) {
	records := []domain.DomainRecord{
		{Domain: "a.gov", Agency: "A", Organization: "A", SecurityContact: "s@a.gov"},
		{Domain: "b.gov", Agency: "B", Organization: "", SecurityContact: "(blank)"},
	}
	outcomes := []domain.CheckOutcome{present("https://a.gov/x"), {}}

	run := func() []domain.AgencyTally {
		agg := aggregator.New(domain.MissingSecurityContact)
		for i := range records {
			agg.Record(records[i], outcomes[i])
		}

		return agg.AgencyTallies()
	}

	require.Equal(t, run(), run())
}

func TestAggregator_CountersAreConsistent(t *testing.T) {
	agg := aggregator.New(domain.MissingSecurityContact)
	contacts := []string{"", "(blank)", "x@y.gov"}
	orgs := []string{"", "A", "B"}

	for i := range 30 {
		outcome := domain.CheckOutcome{}
		if i%4 == 0 {
			outcome = present("https://x.gov/y")
		}
		agg.Record(domain.DomainRecord{
			Domain:          "d.gov",
			Agency:          []string{"A", "B"}[i%2],
			Organization:    orgs[i%3],
			SecurityContact: contacts[(i/3)%3],
		}, outcome)
	}

	total := 0
	for _, tally := range agg.AgencyTallies() {
		total += tally.TotalDomains
		require.GreaterOrEqual(t, tally.SecurityContactListed, 0)
		require.LessOrEqual(t, tally.SecurityContactListed, tally.TotalDomains)
		require.LessOrEqual(t, tally.OrganizationListed, tally.TotalDomains)
		require.LessOrEqual(t, tally.OrganizationMatchesAgency, tally.OrganizationListed)
		require.LessOrEqual(t, tally.VDPPublished, tally.TotalDomains)
	}
	require.Equal(t, 30, total)
	require.Len(t, agg.DomainResults(), 30)
}
