package domain

import "testing"

func TestUrgencyOrdering(t *testing.T) {
	ordered := []Urgency{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Rank() >= ordered[i].Rank() {
			t.Errorf("expected %s < %s", ordered[i-1], ordered[i])
		}
	}
	if Urgency("extreme").Rank() != -1 {
		t.Error("unknown urgency should rank -1")
	}
}

func TestUrgencyIsUrgent(t *testing.T) {
	tests := []struct {
		urgency Urgency
		urgent  bool
	}{
		{UrgencyLow, false},
		{UrgencyMedium, false},
		{UrgencyHigh, true},
		{UrgencyCritical, true},
	}
	for _, tt := range tests {
		if got := tt.urgency.IsUrgent(); got != tt.urgent {
			t.Errorf("%s: IsUrgent() = %v, want %v", tt.urgency, got, tt.urgent)
		}
	}
}

func TestUrgencyValid(t *testing.T) {
	for _, u := range []Urgency{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical} {
		if !u.Valid() {
			t.Errorf("expected %q to be valid", u)
		}
	}
	for _, u := range []Urgency{"", "urgent", "LOW", "Critical"} {
		if u.Valid() {
			t.Errorf("expected %q to be invalid", u)
		}
	}
}

func TestBloodTypeValid(t *testing.T) {
	for _, b := range BloodTypes {
		if !b.Valid() {
			t.Errorf("expected %q to be valid", b)
		}
	}
	for _, b := range []BloodType{"", "C+", "a+", "O", "AB"} {
		if b.Valid() {
			t.Errorf("expected %q to be invalid", b)
		}
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleDonor, RoleRequester, RoleAdministrator} {
		if !r.Valid() {
			t.Errorf("expected %q to be valid", r)
		}
	}
	if Role("admin").Valid() {
		t.Error(`expected "admin" to be invalid`)
	}
}

func TestUserRequestLocation(t *testing.T) {
	stored := &Location{City: "Lagos", Country: "NG", Coordinates: &Coordinates{Lat: 6.5, Lng: 3.4}}

	withLocation := &User{ID: "1", Location: stored}
	if got := withLocation.RequestLocation(); got.City != "Lagos" {
		t.Errorf("expected stored location, got %+v", got)
	}

	withoutLocation := &User{ID: "2"}
	if got := withoutLocation.RequestLocation(); got != PlaceholderLocation {
		t.Errorf("expected placeholder location, got %+v", got)
	}

	coordsOnly := &User{ID: "3", Location: &Location{Coordinates: &Coordinates{Lat: 1, Lng: 2}}}
	if got := coordsOnly.RequestLocation(); got != PlaceholderLocation {
		t.Errorf("expected placeholder for coordinates-only location, got %+v", got)
	}
}
