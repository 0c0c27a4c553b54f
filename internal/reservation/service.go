package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shizukanami/salon-booking-backend/internal/course"
	"github.com/shizukanami/salon-booking-backend/internal/pkg/metrics"
	"github.com/shizukanami/salon-booking-backend/internal/schedule"
	"github.com/shizukanami/salon-booking-backend/internal/user"
)

// UserReader is the slice of the user service this package needs.
type UserReader interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
}

// CourseReader is the slice of the course service this package needs.
type CourseReader interface {
	GetByID(ctx context.Context, id string) (*course.Course, error)
}

// WindowProvider resolves the business-hours window for a date.
type WindowProvider interface {
	WindowFor(ctx context.Context, date time.Time) (schedule.Window, error)
}

type Service interface {
	// Book creates a confirmed reservation for the user at start, charging
	// the course's price. The duration and price are read from the course
	// at this moment and frozen into the reservation and ledger.
	Book(ctx context.Context, userID, courseID string, start time.Time) (*Reservation, error)

	// Cancel flips a reservation to cancelled and refunds the course's
	// current price. Cancelling an already-cancelled reservation is a
	// no-op. Non-admin callers can only cancel their own upcoming
	// reservations; a user-initiated cancel notifies the admin inbox.
	Cancel(ctx context.Context, id, actorID string, actorIsAdmin bool) error

	// Reschedule moves a confirmed reservation to a new start, keeping its
	// original duration. Admin only; no point movement.
	Reschedule(ctx context.Context, id string, start time.Time) (*Reservation, error)

	// ListSlots returns the open start times for the course on the given
	// date, alongside the resolved window so callers can tell a closed day
	// from a fully booked one.
	ListSlots(ctx context.Context, courseID string, date time.Time) ([]time.Time, schedule.Window, error)

	GetByID(ctx context.Context, id string) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, int, error)
}

type service struct {
	repo    Repository
	users   UserReader
	courses CourseReader
	windows WindowProvider
	now     func() time.Time
}

func NewService(repo Repository, users UserReader, courses CourseReader, windows WindowProvider) Service {
	return &service{
		repo:    repo,
		users:   users,
		courses: courses,
		windows: windows,
		now:     time.Now,
	}
}

func (s *service) Book(ctx context.Context, userID, courseID string, start time.Time) (*Reservation, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	c, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	start = start.Truncate(time.Minute)
	if minutesIntoDay(start)%SlotIntervalMinutes != 0 {
		return nil, ErrInvalidTimeRange
	}

	win, err := s.windows.WindowFor(ctx, start)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := ValidateStart(win, start, c.DurationMinutes, now); err != nil {
		metrics.SlotConflictsTotal.Inc()
		return nil, err
	}

	// Fast rejection before touching the calendar lock. The repository
	// re-runs this check atomically, so losing a race here is still safe.
	if u.CurrentPoints < c.PricePoints {
		return nil, ErrInsufficientPoints
	}

	res := &Reservation{
		UserID:      userID,
		UserName:    displayName(u),
		CourseID:    courseID,
		CourseTitle: c.Title,
		StartTime:   start,
		EndTime:     start.Add(time.Duration(c.DurationMinutes) * time.Minute),
	}

	desc := fmt.Sprintf("Booking: %s", c.Title)
	if err := s.repo.CreateWithCharge(ctx, res, c.PricePoints, desc); err != nil {
		if errors.Is(err, ErrSlotConflict) {
			metrics.SlotConflictsTotal.Inc()
		}
		return nil, err
	}

	metrics.BookingsTotal.Inc()
	return res, nil
}

func (s *service) Cancel(ctx context.Context, id, actorID string, actorIsAdmin bool) error {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if res.Status == StatusCancelled {
		return nil
	}

	if !actorIsAdmin {
		if res.UserID != actorID {
			return ErrPermissionDenied
		}
		if res.StartTime.Before(s.now()) {
			return ErrPastCancellation
		}
	}

	// Refund at the course's current price, not the price paid.
	c, err := s.courses.GetByID(ctx, res.CourseID)
	if err != nil {
		return err
	}

	initiator := "user"
	desc := fmt.Sprintf("Cancellation refund: %s", c.Title)
	notifyMessage := fmt.Sprintf("%s cancelled the reservation for %s on %s",
		res.UserName, c.Title, res.StartTime.Format("2006-01-02 15:04"))
	if actorIsAdmin {
		initiator = "admin"
		desc = "Cancelled by admin"
		notifyMessage = ""
	}

	if err := s.repo.CancelWithRefund(ctx, id, res.UserID, c.PricePoints, desc, notifyMessage); err != nil {
		if errors.Is(err, ErrAlreadyCancelled) {
			// Lost a race to another cancel; the outcome is the same.
			return nil
		}
		return err
	}

	metrics.CancellationsTotal.WithLabelValues(initiator).Inc()
	return nil
}

func (s *service) Reschedule(ctx context.Context, id string, start time.Time) (*Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.Status == StatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	start = start.Truncate(time.Minute)
	if minutesIntoDay(start)%SlotIntervalMinutes != 0 {
		return nil, ErrInvalidTimeRange
	}

	// Duration stays what it was at booking time.
	duration := res.EndTime.Sub(res.StartTime)

	win, err := s.windows.WindowFor(ctx, start)
	if err != nil {
		return nil, err
	}
	if err := ValidateStart(win, start, int(duration.Minutes()), s.now()); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateTimes(ctx, id, start, start.Add(duration)); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *service) ListSlots(ctx context.Context, courseID string, date time.Time) ([]time.Time, schedule.Window, error) {
	c, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, schedule.Window{}, err
	}

	win, err := s.windows.WindowFor(ctx, date)
	if err != nil {
		return nil, schedule.Window{}, err
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	existing, err := s.repo.ListActiveOnDate(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, schedule.Window{}, err
	}

	slots := SlotCandidates(win, date, c.DurationMinutes, s.now(), existing)
	return slots, win, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	return s.repo.List(ctx, filter)
}

func displayName(u *user.User) string {
	if u.DisplayName != nil && *u.DisplayName != "" {
		return *u.DisplayName
	}
	return u.Email
}

func minutesIntoDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
