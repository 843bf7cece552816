// Package aggregator folds per-domain check outcomes into the domain level
// results table and the per-agency tallies.
package aggregator

import "vdpscanner/pkg/domain"

// Aggregator owns the results of a single run. Counters are maintained
// incrementally, so reading the projections never recomputes anything.
// An Aggregator is not safe for concurrent use; callers serialize Record.
type Aggregator struct {
	// missingContact is the security contact value meaning "no contact listed".
	missingContact string

	results []domain.DomainResult
	tallies *tallyStore
}

// Record appends the flattened result for record and updates its agency tally.
func (a *Aggregator) Record(record domain.DomainRecord, outcome domain.CheckOutcome) {
	a.results = append(a.results, domain.DomainResult{
		DomainRecord: record,
		CheckOutcome: outcome,
	})

	tally := a.tallies.getOrCreate(record.Agency)
	tally.TotalDomains++
	if record.HasSecurityContact(a.missingContact) {
		tally.SecurityContactListed++
	}
	if record.Organization != "" {
		tally.OrganizationListed++
	}
	if record.Organization == record.Agency {
		tally.OrganizationMatchesAgency++
	}
	if outcome.VDPPresent {
		tally.VDPPublished++
	}
}

// DomainResults returns the domain level results in the order they were recorded.
func (a *Aggregator) DomainResults() []domain.DomainResult {
	out := make([]domain.DomainResult, len(a.results))
	copy(out, a.results)

	return out
}

// AgencyTallies returns a copy of every agency tally in the order the agencies
// were first seen.
func (a *Aggregator) AgencyTallies() []domain.AgencyTally {
	return a.tallies.snapshot()
}

// AgencyTally returns the tally for agency and whether the agency has been seen.
func (a *Aggregator) AgencyTally(agency string) (domain.AgencyTally, bool) {
	t, ok := a.tallies.get(agency)
	if !ok {
		return domain.AgencyTally{}, false
	}

	return *t, true
}

// New creates an empty Aggregator. missingContact is the security contact value
// the domain source uses for "no contact listed"; domain.MissingSecurityContact
// is used when it is empty.
func New(missingContact string) *Aggregator {
	if missingContact == "" {
		missingContact = domain.MissingSecurityContact
	}

	return &Aggregator{
		missingContact: missingContact,
		tallies:        newTallyStore(),
	}
}
