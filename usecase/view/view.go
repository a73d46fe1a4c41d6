// Package view holds the pure derivations that turn fetched collections
// into the subsets a user is allowed to see. Every function takes its
// inputs explicitly; nothing here reads ambient session state.
package view

import (
	"time"

	"github.com/ace-ify/Blud-Dona/domain"
)

// RoleView produces the collections visible to one role. One variant exists
// per role so callers dispatch once instead of re-branching at render time.
type RoleView interface {
	VisibleRequests(user *domain.User, requests []domain.BloodRequest) []domain.BloodRequest
	VisibleAppointments(user *domain.User, appointments []domain.Appointment) []domain.Appointment
}

// For returns the RoleView variant for the given role. Unknown roles get
// the donor view, the most common one.
func For(role domain.Role) RoleView {
	switch role {
	case domain.RoleRequester:
		return requesterView{}
	case domain.RoleAdministrator:
		return adminView{}
	default:
		return donorView{}
	}
}

// donorView: every open request is a donation opportunity, but only the
// donor's own appointments matter.
type donorView struct{}

func (donorView) VisibleRequests(_ *domain.User, requests []domain.BloodRequest) []domain.BloodRequest {
	return normalizeRequests(requests)
}

func (donorView) VisibleAppointments(user *domain.User, appointments []domain.Appointment) []domain.Appointment {
	filtered := make([]domain.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if user != nil && appointment.DonorID == user.ID {
			filtered = append(filtered, appointment)
		}
	}
	return filtered
}

// requesterView: only the requester's own requests, all appointments.
type requesterView struct{}

func (requesterView) VisibleRequests(user *domain.User, requests []domain.BloodRequest) []domain.BloodRequest {
	filtered := make([]domain.BloodRequest, 0, len(requests))
	for _, request := range requests {
		if user != nil && request.RequesterID == user.ID {
			filtered = append(filtered, request)
		}
	}
	return filtered
}

func (requesterView) VisibleAppointments(_ *domain.User, appointments []domain.Appointment) []domain.Appointment {
	return normalizeAppointments(appointments)
}

// adminView: unfiltered visibility of both collections.
type adminView struct{}

func (adminView) VisibleRequests(_ *domain.User, requests []domain.BloodRequest) []domain.BloodRequest {
	return normalizeRequests(requests)
}

func (adminView) VisibleAppointments(_ *domain.User, appointments []domain.Appointment) []domain.Appointment {
	return normalizeAppointments(appointments)
}

// UrgentRequests keeps requests whose urgency is high or critical.
func UrgentRequests(requests []domain.BloodRequest) []domain.BloodRequest {
	urgent := make([]domain.BloodRequest, 0, len(requests))
	for _, request := range requests {
		if request.Urgency.IsUrgent() {
			urgent = append(urgent, request)
		}
	}
	return urgent
}

// UpcomingAppointments keeps appointments scheduled strictly after the
// reference instant.
func UpcomingAppointments(appointments []domain.Appointment, reference time.Time) []domain.Appointment {
	upcoming := make([]domain.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if appointment.IsUpcoming(reference) {
			upcoming = append(upcoming, appointment)
		}
	}
	return upcoming
}

// UnreadNotifications keeps notifications whose read flag is unset.
func UnreadNotifications(notifications []domain.Notification) []domain.Notification {
	unread := make([]domain.Notification, 0, len(notifications))
	for _, notification := range notifications {
		if !notification.Read {
			unread = append(unread, notification)
		}
	}
	return unread
}

// Empty collections stay non-nil so the JSON renders an explicit empty
// state instead of null.

func normalizeRequests(requests []domain.BloodRequest) []domain.BloodRequest {
	if requests == nil {
		return []domain.BloodRequest{}
	}
	return requests
}

func normalizeAppointments(appointments []domain.Appointment) []domain.Appointment {
	if appointments == nil {
		return []domain.Appointment{}
	}
	return appointments
}
