package service_eligibility

import (
	"strconv"
	"testing"
	"time"

	"github.com/humanbelnik/reelmatch/core/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestCeilingForAge(t *testing.T) {
	tests := []struct {
		age     int
		ceiling string
	}{
		{age: 5, ceiling: "0"},
		{age: 6, ceiling: "0"},
		{age: 7, ceiling: "7"},
		{age: 10, ceiling: "7"},
		{age: 11, ceiling: "11"},
		{age: 14, ceiling: "11"},
		{age: 15, ceiling: "15"},
		{age: 16, ceiling: "15"},
		{age: 40, ceiling: "15"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.ceiling, CeilingForAge(tc.age), "age %d", tc.age)
	}
}

func TestCeilingForAge_MonotonicInAge(t *testing.T) {
	prev, _ := strconv.Atoi(CeilingForAge(0))
	for age := 1; age <= 100; age++ {
		cur, err := strconv.Atoi(CeilingForAge(age))
		assert.NoError(t, err)
		assert.LessOrEqual(t, prev, cur, "ceiling must never get stricter with age (age %d)", age)
		prev = cur
	}
}

func TestAgeAt(t *testing.T) {
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 10, AgeAt(time.Date(2016, 6, 15, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 9, AgeAt(time.Date(2016, 6, 16, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 0, AgeAt(now.AddDate(1, 0, 0), now))
}

func TestProfileForMembers_YoungestGoverns(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	dob := func(year int) *time.Time {
		d := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
		return &d
	}

	members := []model.Member{
		{Name: "a", BirthDate: dob(1990)},
		{Name: "b", BirthDate: dob(2016)}, // age 10
		{Name: "c"},                       // no birth date, no influence
	}

	profile := ProfileForMembers(members, NewNormalizer(nil), now)

	assert.NotNil(t, profile.MinAge)
	assert.Equal(t, 10, *profile.MinAge)
	assert.Equal(t, "7", Ceiling(profile))
}

func TestProfileForMembers_NoBirthDates(t *testing.T) {
	profile := ProfileForMembers([]model.Member{{Name: "a"}}, NewNormalizer(nil), time.Now())

	assert.Nil(t, profile.MinAge)
	assert.Equal(t, "", Ceiling(profile))
}
