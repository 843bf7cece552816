package aggregator

import "vdpscanner/pkg/domain"

// tallyStore is a keyed store of agency tallies that remembers the order in
// which agencies were first seen.
type tallyStore struct {
	byAgency map[string]*domain.AgencyTally
	order    []string
}

func newTallyStore() *tallyStore {
	return &tallyStore{byAgency: map[string]*domain.AgencyTally{}}
}

// getOrCreate returns the tally for agency, creating a zeroed one on first use.
func (s *tallyStore) getOrCreate(agency string) *domain.AgencyTally {
	if t, ok := s.byAgency[agency]; ok {
		return t
	}

	t := &domain.AgencyTally{Agency: agency}
	s.byAgency[agency] = t
	s.order = append(s.order, agency)

	return t
}

func (s *tallyStore) get(agency string) (*domain.AgencyTally, bool) {
	t, ok := s.byAgency[agency]

	return t, ok
}

func (s *tallyStore) snapshot() []domain.AgencyTally {
	out := make([]domain.AgencyTally, 0, len(s.order))
	for _, agency := range s.order {
		out = append(out, *s.byAgency[agency])
	}

	return out
}
