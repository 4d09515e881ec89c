package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism-backend/apperrors"
	"tourism-backend/dto"
	"tourism-backend/messaging"
	"tourism-backend/messaging/messagingtest"
)

func day(s string) *dto.Date {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &dto.Date{Time: t}
}

func TestPlanTrip(t *testing.T) {
	start := time.Date(2026, 3, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		days      int
		unitPrice float64
		wantEnd   time.Time
		wantTotal float64
	}{
		{1, 100, start, 100},
		{3, 100, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), 300},
		{7, 19.99, time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC), 139.93},
		{28, 10, time.Date(2026, 4, 26, 0, 0, 0, 0, time.UTC), 280},
	}
	for _, tt := range tests {
		end, total := PlanTrip(start, tt.days, tt.unitPrice)
		assert.True(t, tt.wantEnd.Equal(end), "days=%d end=%s", tt.days, end)
		assert.InDelta(t, tt.wantTotal, total, 1e-9, "days=%d", tt.days)
	}
}

func TestIsTripDuration(t *testing.T) {
	for _, d := range dto.TripDurations {
		assert.True(t, IsTripDuration(d))
	}
	for _, d := range []int{0, 8, 10, 30, -1} {
		assert.False(t, IsTripDuration(d))
	}
}

func TestReservationService_CreateWithDays(t *testing.T) {
	db := newTestDB(t)
	events := &messagingtest.Recorder{}
	svc := NewReservationService(db, events)
	ctx := context.Background()

	loc := seedLocation(t, db, "Madeira", 150)
	user := seedUser(t, db, "f@example.com")

	res, err := svc.Create(ctx, loc.ID, dto.CreateReservationRequest{UserID: user.ID, Start: day("2026-07-01"), Days: 5})
	require.NoError(t, err)
	assert.Equal(t, 750.0, res.Price)
	assert.True(t, time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC).Equal(res.End))

	recorded := events.Events()
	require.Len(t, recorded, 1)
	assert.Equal(t, messaging.EventReservationCreated, recorded[0].Type)
}

func TestReservationService_CreateWithEnd(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db, nil)
	ctx := context.Background()

	loc := seedLocation(t, db, "Azores", 90)
	user := seedUser(t, db, "g@example.com")

	res, err := svc.Create(ctx, loc.ID, dto.CreateReservationRequest{UserID: user.ID, Start: day("2026-08-10"), End: day("2026-08-12")})
	require.NoError(t, err)
	assert.Equal(t, 270.0, res.Price)

	price := dto.Amount(199.999)
	res, err = svc.Create(ctx, loc.ID, dto.CreateReservationRequest{UserID: user.ID, Start: day("2026-08-10"), End: day("2026-08-10"), Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 200.0, res.Price)
}

func TestReservationService_CreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db, nil)
	ctx := context.Background()

	loc := seedLocation(t, db, "Douro", 60)
	user := seedUser(t, db, "h@example.com")

	invalid := []dto.CreateReservationRequest{
		{UserID: user.ID, Start: day("2026-05-01")},
		{UserID: user.ID, Days: 3},
		{Start: day("2026-05-01"), Days: 3},
		{UserID: user.ID, Start: day("2026-05-01"), Days: 9},
		{UserID: user.ID, Start: day("2026-05-03"), End: day("2026-05-01")},
	}
	for _, req := range invalid {
		_, err := svc.Create(ctx, loc.ID, req)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation), "request %+v", req)
	}

	_, err := svc.Create(ctx, loc.ID+1, dto.CreateReservationRequest{UserID: user.ID, Start: day("2026-05-01"), Days: 1})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestReservationService_ListByUserExpandsLocation(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db, nil)
	locations := NewLocationService(db, nil)
	ctx := context.Background()

	kept := seedLocation(t, db, "Aveiro", 40)
	gone := seedLocation(t, db, "Nazare", 40)
	user := seedUser(t, db, "i@example.com")
	other := seedUser(t, db, "j@example.com")

	_, err := svc.Create(ctx, kept.ID, dto.CreateReservationRequest{UserID: user.ID, Start: day("2026-09-01"), Days: 2})
	require.NoError(t, err)
	_, err = svc.Create(ctx, gone.ID, dto.CreateReservationRequest{UserID: user.ID, Start: day("2026-10-01"), Days: 1})
	require.NoError(t, err)
	_, err = svc.Create(ctx, kept.ID, dto.CreateReservationRequest{UserID: other.ID, Start: day("2026-09-01"), Days: 1})
	require.NoError(t, err)

	_, err = locations.Delete(ctx, gone.ID)
	require.NoError(t, err)

	list, err := svc.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.NotNil(t, list[0].Location)
	assert.Equal(t, "Aveiro", list[0].Location.Name)
	assert.Nil(t, list[1].Location)
}
