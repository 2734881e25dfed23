package league

import "slices"

// Roster is one provider team in a single season. OwnerID is the primary
// owner; CoOwners may be empty.
type Roster struct {
	RosterID int
	OwnerID  string
	CoOwners []string
	Division int
}

// Match is the identity verdict for a current-season roster. Found is false
// when no prior roster has the same owner set, i.e. the team is new.
type Match struct {
	PriorRosterID int  `json:"prior_roster_id,omitempty"`
	Found         bool `json:"found"`
}

// OwnerIDs returns the primary owner followed by the co-owners, skipping
// blank identifiers (orphaned rosters have no owner).
func (r Roster) OwnerIDs() []string {
	ids := make([]string, 0, 1+len(r.CoOwners))
	if r.OwnerID != "" {
		ids = append(ids, r.OwnerID)
	}
	for _, id := range r.CoOwners {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// OwnerSet returns the sorted owner identifiers of the roster.
func OwnerSet(r Roster) []string {
	ids := r.OwnerIDs()
	slices.Sort(ids)
	return ids
}

// SameOwnerSet reports whether two identifier lists hold the same owners,
// regardless of order. Empty lists never match anything.
func SameOwnerSet(a, b []string) bool {
	if len(a) == 0 || len(a) != len(b) {
		return false
	}
	sa := slices.Clone(a)
	sb := slices.Clone(b)
	slices.Sort(sa)
	slices.Sort(sb)
	return slices.Equal(sa, sb)
}

// MatchRosters decides, for every current roster, which prior roster it
// continues. A prior roster matches when its owner set equals the current
// one; the first such roster wins. Every current roster id is present in the
// result.
func MatchRosters(current, prior []Roster) map[int]Match {
	priorSets := make([][]string, len(prior))
	for i, p := range prior {
		priorSets[i] = OwnerSet(p)
	}

	matches := make(map[int]Match, len(current))
	for _, c := range current {
		set := OwnerSet(c)
		verdict := Match{}
		for i, p := range prior {
			if SameOwnerSet(set, priorSets[i]) {
				verdict = Match{PriorRosterID: p.RosterID, Found: true}
				break
			}
		}
		matches[c.RosterID] = verdict
	}
	return matches
}
