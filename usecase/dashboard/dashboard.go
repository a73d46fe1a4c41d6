package dashboard

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ace-ify/Blud-Dona/domain"
	"github.com/ace-ify/Blud-Dona/repository"
	"github.com/ace-ify/Blud-Dona/usecase/view"
)

// UseCase assembles the dashboard screen: role-filtered requests and
// appointments plus the user's notifications.
type UseCase struct {
	requests      repository.RequestRepository
	appointments  repository.AppointmentRepository
	notifications repository.NotificationRepository
	logger        *zap.Logger
}

func New(
	requests repository.RequestRepository,
	appointments repository.AppointmentRepository,
	notifications repository.NotificationRepository,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		requests:      requests,
		appointments:  appointments,
		notifications: notifications,
		logger:        logger,
	}
}

// Snapshot is the rendered dashboard state for one user at one instant.
type Snapshot struct {
	Role                 domain.Role           `json:"role"`
	Requests             []domain.BloodRequest `json:"requests"`
	Appointments         []domain.Appointment  `json:"appointments"`
	Notifications        []domain.Notification `json:"notifications"`
	UrgentRequests       []domain.BloodRequest `json:"urgent_requests"`
	UpcomingAppointments []domain.Appointment  `json:"upcoming_appointments"`
	UnreadCount          int                   `json:"unread_count"`
	GeneratedAt          time.Time             `json:"generated_at"`
}

// Load fetches requests and appointments concurrently, joins both, then
// fetches the user's notifications. A failed fetch is logged and leaves its
// collection empty; the dashboard always renders.
func (uc *UseCase) Load(ctx context.Context, user *domain.User) (*Snapshot, error) {
	if user == nil {
		return nil, domain.ErrUnauthorized
	}

	var (
		requests     []domain.BloodRequest
		appointments []domain.Appointment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fetched, err := uc.requests.List(gctx)
		if err != nil {
			uc.logger.Warn("blood request fetch failed", zap.Error(err))
			return nil
		}
		requests = fetched
		return nil
	})
	g.Go(func() error {
		fetched, err := uc.appointments.List(gctx)
		if err != nil {
			uc.logger.Warn("appointment fetch failed", zap.Error(err))
			return nil
		}
		appointments = fetched
		return nil
	})
	_ = g.Wait()

	// notifications are requested only after both collections have settled
	notifications, err := uc.notifications.ListForUser(ctx, user.ID)
	if err != nil {
		uc.logger.Warn("notification fetch failed", zap.String("user_id", user.ID), zap.Error(err))
		notifications = nil
	}
	if notifications == nil {
		notifications = []domain.Notification{}
	}

	roleView := view.For(user.Role)
	visibleRequests := roleView.VisibleRequests(user, requests)
	visibleAppointments := roleView.VisibleAppointments(user, appointments)

	now := time.Now()
	return &Snapshot{
		Role:                 user.Role,
		Requests:             visibleRequests,
		Appointments:         visibleAppointments,
		Notifications:        notifications,
		UrgentRequests:       view.UrgentRequests(visibleRequests),
		UpcomingAppointments: view.UpcomingAppointments(visibleAppointments, now),
		UnreadCount:          len(view.UnreadNotifications(notifications)),
		GeneratedAt:          now,
	}, nil
}
