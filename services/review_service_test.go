package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism-backend/apperrors"
	"tourism-backend/dto"
	"tourism-backend/messaging"
	"tourism-backend/messaging/messagingtest"
	"tourism-backend/models"
)

func TestReviewService_CreateAveragesRatings(t *testing.T) {
	db := newTestDB(t)
	events := &messagingtest.Recorder{}
	svc := NewReviewService(db, newTestCache(t), events)
	ctx := context.Background()

	loc := seedLocation(t, db, "Lisbon", 80)
	user := seedUser(t, db, "a@example.com")

	for _, r := range []int{5, 4, 2} {
		_, err := svc.Create(ctx, loc.ID, dto.CreateReviewRequest{UserID: user.ID, Comment: "nice", Rating: r})
		require.NoError(t, err)
	}

	var got models.Location
	require.NoError(t, db.First(&got, loc.ID).Error)
	assert.InDelta(t, 11.0/3.0, got.Rating, 1e-9)

	recorded := events.Events()
	require.Len(t, recorded, 3)
	last := recorded[2].Payload.(messaging.ReviewCreated)
	assert.Equal(t, messaging.EventReviewCreated, recorded[2].Type)
	assert.EqualValues(t, 3, last.Reviews)
	assert.InDelta(t, 11.0/3.0, last.NewAverage, 1e-9)
}

func TestReviewService_CreateRejectsIncompleteReview(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db, nil, nil)
	ctx := context.Background()

	loc := seedLocation(t, db, "Porto", 60)
	user := seedUser(t, db, "b@example.com")
	_, err := svc.Create(ctx, loc.ID, dto.CreateReviewRequest{UserID: user.ID, Comment: "ok", Rating: 4})
	require.NoError(t, err)

	cases := []dto.CreateReviewRequest{
		{UserID: user.ID, Comment: "   ", Rating: 3},
		{UserID: user.ID, Comment: "no rating"},
		{Comment: "no user", Rating: 2},
	}
	for _, req := range cases {
		_, err := svc.Create(ctx, loc.ID, req)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation), "request %+v", req)
	}

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var got models.Location
	require.NoError(t, db.First(&got, loc.ID).Error)
	assert.Equal(t, 4.0, got.Rating)
}

func TestReviewService_CreateUnknownReferences(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db, nil, nil)
	ctx := context.Background()

	loc := seedLocation(t, db, "Faro", 40)
	user := seedUser(t, db, "c@example.com")

	_, err := svc.Create(ctx, loc.ID+100, dto.CreateReviewRequest{UserID: user.ID, Comment: "x", Rating: 3})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))

	_, err = svc.Create(ctx, loc.ID, dto.CreateReviewRequest{UserID: user.ID + 100, Comment: "x", Rating: 3})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Count(&count).Error)
	assert.Zero(t, count)
}

// The test database has a single pooled connection and sqlite drops FOR
// UPDATE, so the transactions here are serialised by the pool, not by the
// row lock. This covers that no concurrent review is lost and the final
// rating is the mean of all of them; the locking itself only takes effect
// on MySQL.
func TestReviewService_ConcurrentReviewsAreAllCounted(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db, newTestCache(t), nil)
	ctx := context.Background()

	loc := seedLocation(t, db, "Braga", 50)
	user := seedUser(t, db, "d@example.com")

	ratings := []int{1, 5, 3, 4, 2, 5, 4, 1}
	var wg sync.WaitGroup
	errs := make(chan error, len(ratings))
	for _, r := range ratings {
		wg.Add(1)
		go func(rating int) {
			defer wg.Done()
			_, err := svc.Create(ctx, loc.ID, dto.CreateReviewRequest{UserID: user.ID, Comment: "busy day", Rating: rating})
			errs <- err
		}(r)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Where("location_id = ?", loc.ID).Count(&count).Error)
	assert.EqualValues(t, len(ratings), count)

	var got models.Location
	require.NoError(t, db.First(&got, loc.ID).Error)
	assert.InDelta(t, 25.0/8.0, got.Rating, 1e-9)
}

func TestReviewService_ListByLocationExpandsUsers(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db, nil, nil)
	ctx := context.Background()

	loc := seedLocation(t, db, "Evora", 30)
	other := seedLocation(t, db, "Sintra", 30)
	user := seedUser(t, db, "e@example.com")

	_, err := svc.Create(ctx, loc.ID, dto.CreateReviewRequest{UserID: user.ID, Comment: "lovely", Rating: 5})
	require.NoError(t, err)
	_, err = svc.Create(ctx, other.ID, dto.CreateReviewRequest{UserID: user.ID, Comment: "crowded", Rating: 2})
	require.NoError(t, err)

	reviews, err := svc.ListByLocation(ctx, loc.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "lovely", reviews[0].Comment)
	require.NotNil(t, reviews[0].User)
	assert.Equal(t, "e@example.com", reviews[0].User.Email)

	empty, err := svc.ListByLocation(ctx, 9999)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
