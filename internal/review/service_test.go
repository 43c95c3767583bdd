package review

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:review_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&RentReview{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return NewService(NewRepository(db))
}

func TestCreateReturnsStoredRow(t *testing.T) {
	svc := setupTestService(t)

	rv, err := svc.Create(context.Background(), CreateReviewRequest{
		City:       "Bengaluru",
		ReviewText: "Good connectivity, high deposits.",
		Rating:     4,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rv.ID == 0 {
		t.Fatal("expected generated id, got 0")
	}
	if rv.Likes != 0 {
		t.Fatalf("expected zero initial likes, got %d", rv.Likes)
	}
	if rv.Timestamp.IsZero() {
		t.Fatal("expected creation timestamp to be set")
	}
}

func TestCreateRejectsOutOfRangeRating(t *testing.T) {
	svc := setupTestService(t)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(context.Background(), CreateReviewRequest{
			City:       "Pune",
			ReviewText: "text",
			Rating:     rating,
		})
		if !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("rating %d: expected ErrInvalidRequest, got %v", rating, err)
		}
	}
}

func TestLikeIncrementsByExactlyOne(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	rv, err := svc.Create(ctx, CreateReviewRequest{City: "Mumbai", ReviewText: "Sea view, small rooms.", Rating: 3})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	likes, err := svc.Like(ctx, rv.ID)
	if err != nil {
		t.Fatalf("Like returned error: %v", err)
	}
	if likes != 1 {
		t.Fatalf("expected 1 like, got %d", likes)
	}

	likes, err = svc.Like(ctx, rv.ID)
	if err != nil {
		t.Fatalf("second Like returned error: %v", err)
	}
	if likes != 2 {
		t.Fatalf("expected 2 likes, got %d", likes)
	}
}

func TestLikeUnknownReviewFailsWithoutCreatingRows(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Like(ctx, 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	rows, err := svc.GetByCity(ctx, "")
	if err != nil {
		t.Fatalf("GetByCity returned error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows after failed like, got %d", len(rows))
	}
}

func TestGetByCityOrdersByLikesDescending(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	quiet, err := svc.Create(ctx, CreateReviewRequest{City: "Chennai", ReviewText: "Quiet suburb.", Rating: 4})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	popular, err := svc.Create(ctx, CreateReviewRequest{City: "Chennai", ReviewText: "Close to the beach.", Rating: 5})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := svc.Like(ctx, popular.ID); err != nil {
			t.Fatalf("Like returned error: %v", err)
		}
	}

	rows, err := svc.GetByCity(ctx, "Chennai")
	if err != nil {
		t.Fatalf("GetByCity returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(rows))
	}
	if rows[0].ID != popular.ID || rows[1].ID != quiet.ID {
		t.Fatalf("expected most-liked first, got order %d, %d", rows[0].ID, rows[1].ID)
	}
}

func TestGetByCityMatchesSubstring(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateReviewRequest{City: "Navi Mumbai", ReviewText: "Planned roads.", Rating: 4}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	rows, err := svc.GetByCity(ctx, "Mumbai")
	if err != nil {
		t.Fatalf("GetByCity returned error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected substring match to find 1 review, got %d", len(rows))
	}
}
