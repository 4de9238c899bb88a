package generate_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	defaultsRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/defaults"
	"github.com/m04kA/SMC-SchedulerService/internal/integrations/gigservice"
	"github.com/m04kA/SMC-SchedulerService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeSlotRepo struct {
	createBatchCalls int
	lastBatch        []*domain.TimeSlot
	created          []*domain.TimeSlot
	err              error
}

func (f *fakeSlotRepo) CreateBatch(ctx context.Context, slots []*domain.TimeSlot) ([]*domain.TimeSlot, error) {
	f.createBatchCalls++
	f.lastBatch = slots
	if f.err != nil {
		return nil, f.err
	}
	if f.created != nil {
		return f.created, nil
	}
	return slots, nil
}

type fakeDefaultsRepo struct {
	stored *domain.CompanyDefaults
}

func (f *fakeDefaultsRepo) GetByCompanyID(ctx context.Context, companyID int64) (*domain.CompanyDefaults, error) {
	if f.stored == nil {
		return nil, defaultsRepo.ErrDefaultsNotFound
	}
	return f.stored, nil
}

type fakeGigClient struct {
	gig      *gigservice.Gig
	err      error
	getCalls int
}

func (f *fakeGigClient) GetGig(ctx context.Context, gigID int64) (*gigservice.Gig, error) {
	f.getCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.gig, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testGig() *gigservice.Gig {
	return &gigservice.Gig{ID: 1, CompanyID: 10, Name: "Weekend promo"}
}

func TestExecute_GeneratesGridWithExplicitParams(t *testing.T) {
	slotRepo := &fakeSlotRepo{}
	uc := NewUseCase(slotRepo, &fakeDefaultsRepo{}, &fakeGigClient{gig: testGig()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		GigID:             1,
		StartDate:         date(2026, 3, 2),
		EndDate:           date(2026, 3, 3),
		SlotDurationHours: ptr.Ptr(1.0),
		StartHour:         ptr.Ptr(9),
		EndHour:           ptr.Ptr(11),
		Capacity:          ptr.Ptr(2),
	})
	require.NoError(t, err)

	// 2 даты x 2 часовых шага = 4 слота
	require.Len(t, resp.Slots, 4)
	assert.Equal(t, 1, slotRepo.createBatchCalls)

	first := resp.Slots[0]
	assert.Equal(t, int64(1), first.GigID)
	assert.Equal(t, int64(10), first.CompanyID)
	assert.Equal(t, "09:00", first.StartTime.String())
	assert.Equal(t, "10:00", first.EndTime.String())
	assert.Equal(t, 2, first.Capacity)
	assert.Equal(t, 0, first.ReservedCount)
	assert.Equal(t, domain.SlotStatusAvailable, first.Status)

	last := resp.Slots[3]
	assert.Equal(t, date(2026, 3, 3), last.Date)
	assert.Equal(t, "10:00", last.StartTime.String())
	assert.Equal(t, "11:00", last.EndTime.String())

	assert.Contains(t, resp.Message, "generated 4 slots")
}

func TestExecute_ValidationRunsBeforeAnyCalls(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "missing gig",
			req:     &Request{StartDate: date(2026, 3, 2), EndDate: date(2026, 3, 3)},
			wantErr: ErrGigRequired,
		},
		{
			name:    "end date before start date",
			req:     &Request{GigID: 1, StartDate: date(2026, 3, 3), EndDate: date(2026, 3, 2)},
			wantErr: ErrInvalidDateRange,
		},
		{
			name: "end hour before start hour",
			req: &Request{
				GigID: 1, StartDate: date(2026, 3, 2), EndDate: date(2026, 3, 3),
				StartHour: ptr.Ptr(18), EndHour: ptr.Ptr(9),
			},
			wantErr: ErrInvalidHourRange,
		},
		{
			name: "zero duration",
			req: &Request{
				GigID: 1, StartDate: date(2026, 3, 2), EndDate: date(2026, 3, 3),
				SlotDurationHours: ptr.Ptr(0.0),
			},
			wantErr: ErrInvalidDuration,
		},
		{
			name: "zero capacity",
			req: &Request{
				GigID: 1, StartDate: date(2026, 3, 2), EndDate: date(2026, 3, 3),
				Capacity: ptr.Ptr(0),
			},
			wantErr: ErrInvalidCapacity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slotRepo := &fakeSlotRepo{}
			gigClient := &fakeGigClient{gig: testGig()}
			uc := NewUseCase(slotRepo, &fakeDefaultsRepo{}, gigClient, nopLogger{})

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)

			// Ни хранилище, ни внешний сервис не должны быть затронуты
			assert.Zero(t, slotRepo.createBatchCalls)
			assert.Zero(t, gigClient.getCalls)
		})
	}
}

func TestExecute_GigNotFound(t *testing.T) {
	slotRepo := &fakeSlotRepo{}
	uc := NewUseCase(slotRepo, &fakeDefaultsRepo{}, &fakeGigClient{err: gigservice.ErrGigNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		GigID:     99,
		StartDate: date(2026, 3, 2),
		EndDate:   date(2026, 3, 2),
	})
	assert.ErrorIs(t, err, ErrGigNotFound)
	assert.Zero(t, slotRepo.createBatchCalls)
}

func TestExecute_UsesStoredCompanyDefaults(t *testing.T) {
	slotRepo := &fakeSlotRepo{}
	defaults := &fakeDefaultsRepo{stored: &domain.CompanyDefaults{
		CompanyID:         10,
		StartHour:         8,
		EndHour:           10,
		SlotDurationHours: 1.0,
		Capacity:          5,
	}}
	uc := NewUseCase(slotRepo, defaults, &fakeGigClient{gig: testGig()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		GigID:     1,
		StartDate: date(2026, 3, 2),
		EndDate:   date(2026, 3, 2),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "08:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, 5, resp.Slots[0].Capacity)
}

func TestExecute_BuiltInDefaultsWhenNothingStored(t *testing.T) {
	slotRepo := &fakeSlotRepo{}
	uc := NewUseCase(slotRepo, &fakeDefaultsRepo{}, &fakeGigClient{gig: testGig()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		GigID:     1,
		StartDate: date(2026, 3, 2),
		EndDate:   date(2026, 3, 2),
	})
	require.NoError(t, err)

	// Встроенное окно 9-18 с часовыми слотами
	require.Len(t, resp.Slots, domain.DefaultEndHour-domain.DefaultStartHour)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, domain.DefaultCapacity, resp.Slots[0].Capacity)
}

func TestExecute_RequestOverridesStoredDefaults(t *testing.T) {
	slotRepo := &fakeSlotRepo{}
	defaults := &fakeDefaultsRepo{stored: &domain.CompanyDefaults{
		CompanyID:         10,
		StartHour:         8,
		EndHour:           20,
		SlotDurationHours: 2.0,
		Capacity:          5,
	}}
	uc := NewUseCase(slotRepo, defaults, &fakeGigClient{gig: testGig()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		GigID:             1,
		StartDate:         date(2026, 3, 2),
		EndDate:           date(2026, 3, 2),
		StartHour:         ptr.Ptr(10),
		EndHour:           ptr.Ptr(12),
		SlotDurationHours: ptr.Ptr(1.0),
		Capacity:          ptr.Ptr(1),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "10:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, 1, resp.Slots[0].Capacity)
}

func TestExecute_InvalidResolvedHourWindow(t *testing.T) {
	// Запрос задаёт только начало окна, конфликтующее с сохранённым концом
	slotRepo := &fakeSlotRepo{}
	defaults := &fakeDefaultsRepo{stored: &domain.CompanyDefaults{
		CompanyID:         10,
		StartHour:         9,
		EndHour:           12,
		SlotDurationHours: 1.0,
		Capacity:          1,
	}}
	uc := NewUseCase(slotRepo, defaults, &fakeGigClient{gig: testGig()}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		GigID:     1,
		StartDate: date(2026, 3, 2),
		EndDate:   date(2026, 3, 2),
		StartHour: ptr.Ptr(14),
	})
	assert.ErrorIs(t, err, ErrInvalidHourRange)
	assert.Zero(t, slotRepo.createBatchCalls)
}

func TestExecute_ReportsSkippedDuplicates(t *testing.T) {
	// Хранилище вернуло меньше слотов, чем было в сетке - часть уже существовала
	slotRepo := &fakeSlotRepo{created: []*domain.TimeSlot{}}
	uc := NewUseCase(slotRepo, &fakeDefaultsRepo{}, &fakeGigClient{gig: testGig()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		GigID:             1,
		StartDate:         date(2026, 3, 2),
		EndDate:           date(2026, 3, 2),
		StartHour:         ptr.Ptr(9),
		EndHour:           ptr.Ptr(11),
		SlotDurationHours: ptr.Ptr(1.0),
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.Contains(t, resp.Message, "generated 0 slots")
	assert.Contains(t, resp.Message, "2 already existed and were skipped")
}
