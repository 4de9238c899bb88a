package reserve_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	slotRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-SchedulerService/pkg/ptr"
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

type fakeSlotRepo struct {
	slot         *domain.TimeSlot
	getErr       error
	reserveErr   error
	reserveCalls int
}

func (f *fakeSlotRepo) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.slot, nil
}

func (f *fakeSlotRepo) Reserve(ctx context.Context, slotID int64) error {
	f.reserveCalls++
	return f.reserveErr
}

type fakeReservationRepo struct {
	created     *domain.Reservation
	createCalls int
}

func (f *fakeReservationRepo) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	f.createCalls++
	created := *res
	created.ID = 100
	f.created = &created
	return &created, nil
}

func testSlot() *domain.TimeSlot {
	return &domain.TimeSlot{
		ID:            5,
		GigID:         1,
		CompanyID:     10,
		Date:          time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeString("10:00"),
		EndTime:       types.TimeString("11:00"),
		DurationHours: 1.0,
		Capacity:      2,
		ReservedCount: 1,
		Status:        domain.SlotStatusAvailable,
	}
}

func TestExecute_ReservesSlot(t *testing.T) {
	slots := &fakeSlotRepo{slot: testSlot()}
	reservations := &fakeReservationRepo{}
	uc := NewUseCase(slots, reservations, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SlotID:  5,
		AgentID: 7,
		Notes:   ptr.Ptr("bring badge"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, slots.reserveCalls)
	assert.Equal(t, 1, reservations.createCalls)

	// Бронь денормализует дату и время родительского слота
	res := resp.Reservation
	assert.Equal(t, int64(5), res.SlotID)
	assert.Equal(t, int64(7), res.AgentID)
	assert.Equal(t, int64(1), res.GigID)
	assert.Equal(t, "10:00", res.StartTime.String())
	assert.Equal(t, "11:00", res.EndTime.String())
	assert.Equal(t, 1.0, res.DurationHours)
	assert.Equal(t, domain.ReservationStatusReserved, res.Status)
	assert.Equal(t, "bring badge", *res.Notes)

	assert.Contains(t, resp.Message, "2026-03-02 10:00-11:00")
}

func TestExecute_SlotNotFound(t *testing.T) {
	slots := &fakeSlotRepo{getErr: slotRepo.ErrSlotNotFound}
	reservations := &fakeReservationRepo{}
	uc := NewUseCase(slots, reservations, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SlotID: 99, AgentID: 7})
	assert.ErrorIs(t, err, ErrSlotNotFound)
	assert.Zero(t, reservations.createCalls)
}

func TestExecute_CancelledSlot(t *testing.T) {
	slot := testSlot()
	slot.Status = domain.SlotStatusCancelled

	slots := &fakeSlotRepo{slot: slot}
	reservations := &fakeReservationRepo{}
	uc := NewUseCase(slots, reservations, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SlotID: 5, AgentID: 7})
	assert.ErrorIs(t, err, ErrSlotCancelled)
	assert.Zero(t, slots.reserveCalls)
	assert.Zero(t, reservations.createCalls)
}

func TestExecute_FullSlot(t *testing.T) {
	slot := testSlot()
	slot.ReservedCount = 2
	slot.Status = domain.SlotStatusFull

	slots := &fakeSlotRepo{slot: slot, reserveErr: slotRepo.ErrNoCapacity}
	reservations := &fakeReservationRepo{}
	uc := NewUseCase(slots, reservations, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SlotID: 5, AgentID: 7})
	assert.ErrorIs(t, err, ErrSlotFull)
	assert.Zero(t, reservations.createCalls)
}

func TestExecute_InvalidInput(t *testing.T) {
	slots := &fakeSlotRepo{slot: testSlot()}
	uc := NewUseCase(slots, &fakeReservationRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SlotID: 0, AgentID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{SlotID: 5, AgentID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Zero(t, slots.reserveCalls)
}
