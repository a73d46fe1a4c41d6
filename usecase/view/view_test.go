package view

import (
	"testing"
	"time"

	"github.com/ace-ify/Blud-Dona/domain"
)

func sampleRequests() []domain.BloodRequest {
	return []domain.BloodRequest{
		{ID: "a", RequesterID: "9", Urgency: domain.UrgencyCritical},
		{ID: "b", RequesterID: "2", Urgency: domain.UrgencyLow},
		{ID: "c", RequesterID: "1", Urgency: domain.UrgencyHigh},
	}
}

func sampleAppointments() []domain.Appointment {
	return []domain.Appointment{
		{ID: "x", DonorID: "1"},
		{ID: "y", DonorID: "2"},
		{ID: "z", DonorID: "1"},
	}
}

func TestDonorViewShowsAllRequestsAndOwnAppointments(t *testing.T) {
	donor := &domain.User{ID: "1", Role: domain.RoleDonor}
	v := For(donor.Role)

	requests := v.VisibleRequests(donor, sampleRequests())
	if len(requests) != 3 {
		t.Fatalf("donor should see all requests, got %d", len(requests))
	}

	appointments := v.VisibleAppointments(donor, sampleAppointments())
	if len(appointments) != 2 {
		t.Fatalf("donor should see 2 own appointments, got %d", len(appointments))
	}
	for _, a := range appointments {
		if a.DonorID != donor.ID {
			t.Errorf("appointment %s belongs to donor %s, not %s", a.ID, a.DonorID, donor.ID)
		}
	}
}

func TestRequesterViewShowsOwnRequestsAndAllAppointments(t *testing.T) {
	requester := &domain.User{ID: "1", Role: domain.RoleRequester}
	v := For(requester.Role)

	requests := v.VisibleRequests(requester, sampleRequests())
	if len(requests) != 1 || requests[0].ID != "c" {
		t.Fatalf("requester should see only request c, got %+v", requests)
	}

	appointments := v.VisibleAppointments(requester, sampleAppointments())
	if len(appointments) != 3 {
		t.Fatalf("requester should see all appointments, got %d", len(appointments))
	}
}

func TestAdministratorViewIsUnfiltered(t *testing.T) {
	admin := &domain.User{ID: "1", Role: domain.RoleAdministrator}
	v := For(admin.Role)

	if got := len(v.VisibleRequests(admin, sampleRequests())); got != 3 {
		t.Errorf("admin should see all requests, got %d", got)
	}
	if got := len(v.VisibleAppointments(admin, sampleAppointments())); got != 3 {
		t.Errorf("admin should see all appointments, got %d", got)
	}
}

// Donor with id "1" and two foreign requests, one critical: both visible,
// one urgent.
func TestDonorUrgentCount(t *testing.T) {
	donor := &domain.User{ID: "1", Role: domain.RoleDonor}
	requests := []domain.BloodRequest{
		{ID: "a", RequesterID: "7", Urgency: domain.UrgencyCritical},
		{ID: "b", RequesterID: "2", Urgency: domain.UrgencyMedium},
	}

	visible := For(donor.Role).VisibleRequests(donor, requests)
	if len(visible) != 2 {
		t.Fatalf("donor should see both requests, got %d", len(visible))
	}
	if urgent := UrgentRequests(visible); len(urgent) != 1 || urgent[0].ID != "a" {
		t.Fatalf("expected exactly request a to be urgent, got %+v", urgent)
	}
}

func TestUrgentRequests(t *testing.T) {
	requests := []domain.BloodRequest{
		{ID: "1", Urgency: domain.UrgencyLow},
		{ID: "2", Urgency: domain.UrgencyMedium},
		{ID: "3", Urgency: domain.UrgencyHigh},
		{ID: "4", Urgency: domain.UrgencyCritical},
	}
	urgent := UrgentRequests(requests)
	if len(urgent) != 2 {
		t.Fatalf("expected 2 urgent requests, got %d", len(urgent))
	}
	if urgent[0].ID != "3" || urgent[1].ID != "4" {
		t.Errorf("expected high and critical requests, got %+v", urgent)
	}
}

func TestUpcomingAppointmentsIsStrictlyAfter(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	appointments := []domain.Appointment{
		{ID: "past", ScheduledAt: now.Add(-time.Hour)},
		{ID: "exact", ScheduledAt: now},
		{ID: "future", ScheduledAt: now.Add(time.Hour)},
	}
	upcoming := UpcomingAppointments(appointments, now)
	if len(upcoming) != 1 || upcoming[0].ID != "future" {
		t.Fatalf("expected only the future appointment, got %+v", upcoming)
	}
}

func TestUnreadNotifications(t *testing.T) {
	notifications := []domain.Notification{
		{ID: "1", Read: true},
		{ID: "2", Read: false},
		{ID: "3", Read: false},
	}
	unread := UnreadNotifications(notifications)
	if len(unread) != 2 {
		t.Fatalf("expected 2 unread, got %d", len(unread))
	}
}

func TestEmptyCollectionsStayNonNil(t *testing.T) {
	donor := &domain.User{ID: "1", Role: domain.RoleDonor}
	v := For(donor.Role)

	if v.VisibleRequests(donor, nil) == nil {
		t.Error("visible requests should be an empty slice, not nil")
	}
	if v.VisibleAppointments(donor, nil) == nil {
		t.Error("visible appointments should be an empty slice, not nil")
	}
	if UrgentRequests(nil) == nil {
		t.Error("urgent requests should be an empty slice, not nil")
	}
	if UpcomingAppointments(nil, time.Now()) == nil {
		t.Error("upcoming appointments should be an empty slice, not nil")
	}
}

func TestUnknownRoleFallsBackToDonorView(t *testing.T) {
	stranger := &domain.User{ID: "1", Role: domain.Role("guest")}
	v := For(stranger.Role)
	if got := len(v.VisibleRequests(stranger, sampleRequests())); got != 3 {
		t.Errorf("fallback view should show all requests, got %d", got)
	}
}
