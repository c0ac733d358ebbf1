package model

// Availability of a candidate on the eligible service set.
type Availability int

const (
	AvailabilityUnknown Availability = iota
	AvailabilityEligible
	AvailabilityIneligible
)

// EligibilityProfile gates candidates for one user or a whole group.
// Zero values mean "no constraint of that kind".
type EligibilityProfile struct {
	// MinAge is the youngest relevant age; nil when no member has a birth date.
	MinAge *int
	// Services is the normalized eligible service set. Empty means no
	// availability constraint.
	Services map[string]struct{}
	// ServicesUnioned marks that the per-member intersection came back empty
	// and the union fallback was applied.
	ServicesUnioned bool
}

func (p EligibilityProfile) HasServiceConstraint() bool {
	return len(p.Services) > 0
}
