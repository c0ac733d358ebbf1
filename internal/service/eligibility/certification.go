package service_eligibility

import (
	"time"

	"github.com/humanbelnik/reelmatch/core/internal/model"
)

// CeilingForAge maps an age to the loosest permitted content rating.
// Monotonic: a higher age never yields a stricter ceiling.
func CeilingForAge(age int) string {
	switch {
	case age >= 15:
		return "15"
	case age >= 11:
		return "11"
	case age >= 7:
		return "7"
	default:
		return "0"
	}
}

// Ceiling derives the group's certification ceiling from its eligibility
// profile. Empty when no member has a birth date, meaning no upstream filter.
func Ceiling(profile model.EligibilityProfile) string {
	if profile.MinAge == nil {
		return ""
	}
	return CeilingForAge(*profile.MinAge)
}

func AgeAt(birthDate time.Time, now time.Time) int {
	age := now.Year() - birthDate.Year()
	if now.YearDay() < birthDate.YearDay() {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age
}

// ProfileForMembers builds the group profile: the youngest member governs the
// certification ceiling, the service intersection (falling back to the union
// when empty) governs availability.
func ProfileForMembers(members []model.Member, normalizer *Normalizer, now time.Time) model.EligibilityProfile {
	var profile model.EligibilityProfile

	for _, m := range members {
		if m.BirthDate == nil {
			continue
		}
		age := AgeAt(*m.BirthDate, now)
		if profile.MinAge == nil || age < *profile.MinAge {
			a := age
			profile.MinAge = &a
		}
	}

	sets := make([][]string, 0, len(members))
	for _, m := range members {
		if len(m.Services) > 0 {
			sets = append(sets, m.Services)
		}
	}
	profile.Services, profile.ServicesUnioned = normalizer.EligibleSet(sets)

	return profile
}
