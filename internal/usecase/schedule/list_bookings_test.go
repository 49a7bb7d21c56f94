package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/kuaforsistemi/salon-scheduler/internal/models"
)

func TestListUserBookings_MapsToDTO(t *testing.T) {
	start := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)

	repo := &fakeRepo{
		listForUserFn: func(ctx context.Context, userID uint) ([]models.Appointment, error) {
			if userID != 7 {
				t.Fatalf("userID = %d, want 7", userID)
			}
			return []models.Appointment{{
				ID:        3,
				Reference: "ref-3",
				StartTime: start,
				EndTime:   start.Add(30 * time.Minute),
				Status:    "confirmed",
				Staff:     models.Staff{Name: "Ayşe"},
				Service:   models.Service{Name: "Haircut"},
			}}, nil
		},
	}

	uc := NewListUserBookings(repo)
	items, err := uc.Execute(context.Background(), 7)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	got := items[0]
	if got.ID != 3 || got.Reference != "ref-3" || got.StaffName != "Ayşe" || got.ServiceName != "Haircut" {
		t.Fatalf("unexpected DTO: %+v", got)
	}
	if !got.StartTime.Equal(start) {
		t.Fatalf("start = %v, want %v", got.StartTime, start)
	}
}
