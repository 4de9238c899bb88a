package cancel_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeReservationRepo struct {
	reservation *domain.Reservation
	getErr      error
	cancelErr   error
	cancelCalls int
}

func (f *fakeReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	res := *f.reservation
	// После отмены повторное чтение возвращает обновлённую бронь
	if f.cancelCalls > 0 {
		res.Status = domain.ReservationStatusCancelled
		cancelledAt := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
		res.CancelledAt = &cancelledAt
	}
	return &res, nil
}

func (f *fakeReservationRepo) Cancel(ctx context.Context, id int64) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelCalls++
	return nil
}

type fakeSlotRepo struct {
	releaseCalls  int
	releasedSlots []int64
	releaseErr    error
}

func (f *fakeSlotRepo) Release(ctx context.Context, slotID int64) error {
	if f.releaseErr != nil {
		return f.releaseErr
	}
	f.releaseCalls++
	f.releasedSlots = append(f.releasedSlots, slotID)
	return nil
}

func testReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:            100,
		SlotID:        5,
		AgentID:       7,
		GigID:         1,
		Date:          time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeString("10:00"),
		EndTime:       types.TimeString("11:00"),
		DurationHours: 1.0,
		Status:        domain.ReservationStatusReserved,
	}
}

func TestExecute_CancelsReservationAndReleasesSlot(t *testing.T) {
	reservations := &fakeReservationRepo{reservation: testReservation()}
	slots := &fakeSlotRepo{}
	uc := NewUseCase(reservations, slots, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 100})
	require.NoError(t, err)

	assert.Equal(t, 1, reservations.cancelCalls)
	assert.Equal(t, []int64{5}, slots.releasedSlots)

	// Ответ содержит актуальный статус и время отмены
	assert.Equal(t, domain.ReservationStatusCancelled, resp.Reservation.Status)
	require.NotNil(t, resp.Reservation.CancelledAt)
	assert.Contains(t, resp.Message, "2026-03-02 10:00-11:00 cancelled")
}

func TestExecute_ReservationNotFound(t *testing.T) {
	reservations := &fakeReservationRepo{getErr: reservationRepo.ErrReservationNotFound}
	slots := &fakeSlotRepo{}
	uc := NewUseCase(reservations, slots, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 404})
	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.Zero(t, slots.releaseCalls)
}

func TestExecute_DoubleCancelRejected(t *testing.T) {
	res := testReservation()
	res.Status = domain.ReservationStatusCancelled

	reservations := &fakeReservationRepo{reservation: res}
	slots := &fakeSlotRepo{}
	uc := NewUseCase(reservations, slots, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 100})
	assert.ErrorIs(t, err, ErrAlreadyCancelled)

	// Место не должно освобождаться повторно
	assert.Zero(t, reservations.cancelCalls)
	assert.Zero(t, slots.releaseCalls)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{reservation: testReservation()}, &fakeSlotRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
