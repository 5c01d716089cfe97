package services

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nobiai/deletewa/internal/models"
)

// fakeStatsStore counts over a fixed set of deleted_at strings the way the
// real repository compares them in SQL.
type fakeStatsStore struct {
	deletedAt []string
	topChatID string
	topErr    error
}

func (s *fakeStatsStore) CountDeleted(_ context.Context) (int, error) {
	return len(s.deletedAt), nil
}

func (s *fakeStatsStore) CountDeletedSince(_ context.Context, cutoff string) (int, error) {
	count := 0
	for _, at := range s.deletedAt {
		if at >= cutoff {
			count++
		}
	}
	return count, nil
}

func (s *fakeStatsStore) TopDeletedChat(_ context.Context) (string, error) {
	return s.topChatID, s.topErr
}

type stubChatReader struct {
	chat *models.Chat
	err  error
}

func (r *stubChatReader) GetByID(_ context.Context, _ string) (*models.Chat, error) {
	return r.chat, r.err
}

func TestWeekStart(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "monday maps to itself",
			now:  time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC),
			want: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday maps back to monday",
			now:  time.Date(2026, 3, 8, 23, 59, 0, 0, time.UTC),
			want: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "crosses month boundary",
			now:  time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC),
			want: time.Date(2026, 6, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "crosses year boundary",
			now:  time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC),
			want: time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := weekStart(tc.now); !got.Equal(tc.want) {
				t.Fatalf("weekStart(%v) = %v, want %v", tc.now, got, tc.want)
			}
		})
	}
}

func TestStatsWindows(t *testing.T) {
	// Wednesday afternoon; a deletion yesterday and three today, one of
	// them a split second past midnight to pin the window boundary.
	now := time.Date(2026, 3, 4, 16, 0, 0, 0, time.UTC)
	store := &fakeStatsStore{
		deletedAt: []string{
			models.NewTimestamp(time.Date(2026, 3, 3, 22, 0, 0, 0, time.UTC)).String(),
			models.NewTimestamp(time.Date(2026, 3, 4, 0, 0, 0, 500000000, time.UTC)).String(),
			models.NewTimestamp(time.Date(2026, 3, 4, 8, 0, 0, 0, time.UTC)).String(),
			models.NewTimestamp(time.Date(2026, 3, 4, 14, 0, 0, 0, time.UTC)).String(),
		},
		topChatID: "chat-1",
	}
	service := NewStatsService(store, &stubChatReader{chat: &models.Chat{ID: "chat-1", Name: "John Doe"}})
	service.now = func() time.Time { return now }

	stats, err := service.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if stats.TotalDeleted != 4 {
		t.Fatalf("total_deleted = %d, want 4", stats.TotalDeleted)
	}
	if stats.TodayDeleted != 3 {
		t.Fatalf("today_deleted = %d, want 3", stats.TodayDeleted)
	}
	if stats.ThisWeekDeleted != 4 {
		t.Fatalf("this_week_deleted = %d, want 4", stats.ThisWeekDeleted)
	}
	if stats.ThisWeekDeleted < stats.TodayDeleted {
		t.Fatal("week window must contain the day window")
	}
	if stats.MostActiveChat == nil || *stats.MostActiveChat != "John Doe" {
		t.Fatalf("most_active_chat = %v, want John Doe", stats.MostActiveChat)
	}
}

func TestStatsNoDeletedMessages(t *testing.T) {
	store := &fakeStatsStore{topErr: pgx.ErrNoRows}
	service := NewStatsService(store, &stubChatReader{})

	stats, err := service.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalDeleted != 0 || stats.TodayDeleted != 0 || stats.ThisWeekDeleted != 0 {
		t.Fatalf("expected zero counts, got %+v", stats)
	}
	if stats.MostActiveChat != nil {
		t.Fatalf("expected nil most_active_chat, got %q", *stats.MostActiveChat)
	}
}

func TestStatsTopChatMissingFromStore(t *testing.T) {
	store := &fakeStatsStore{
		deletedAt: []string{models.Now().String()},
		topChatID: "chat-gone",
	}
	service := NewStatsService(store, &stubChatReader{err: pgx.ErrNoRows})

	stats, err := service.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.MostActiveChat != nil {
		t.Fatalf("expected nil most_active_chat when chat record is gone, got %q", *stats.MostActiveChat)
	}
}
