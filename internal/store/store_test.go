package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/skim/internal/model"
)

func TestInsertAndListSessions(t *testing.T) {
	st, err := Open(filepath.Join(t.TempDir(), "skim.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			t.Errorf("failed to close store: %v", cerr)
		}
	}()

	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		started := base.Add(time.Duration(i) * time.Hour)
		_, err := st.InsertSession(ctx, model.SessionStats{
			StartedAt:  started,
			EndedAt:    started.Add(2 * time.Minute),
			Source:     "doc.txt",
			WPM:        250 + i*25,
			WordsTotal: 500,
			WordsRead:  100 * (i + 1),
			DurationMs: 120000,
		})
		if err != nil {
			t.Fatalf("failed to insert session: %v", err)
		}
	}

	sessions, err := st.ListSessions(ctx, model.StatsConfig{})
	if err != nil {
		t.Fatalf("failed to list sessions: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("got %d sessions, want 3", len(sessions))
	}
	if sessions[0].WordsRead != 100 || sessions[2].WordsRead != 300 {
		t.Fatalf("sessions out of order: %+v", sessions)
	}
	if sessions[1].WPM != 275 || sessions[1].Source != "doc.txt" {
		t.Fatalf("unexpected session row: %+v", sessions[1])
	}
}

func TestListSessionsFilters(t *testing.T) {
	st, err := Open(filepath.Join(t.TempDir(), "skim.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			t.Errorf("failed to close store: %v", cerr)
		}
	}()

	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		started := base.AddDate(0, 0, i)
		if _, err := st.InsertSession(ctx, model.SessionStats{
			StartedAt:  started,
			EndedAt:    started.Add(time.Minute),
			Source:     "stdin",
			WPM:        250,
			WordsTotal: 100,
			WordsRead:  100,
			DurationMs: 60000,
		}); err != nil {
			t.Fatalf("failed to insert session: %v", err)
		}
	}

	since := base.AddDate(0, 0, 3)
	sessions, err := st.ListSessions(ctx, model.StatsConfig{Since: &since})
	if err != nil {
		t.Fatalf("failed to list sessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("since filter returned %d sessions, want 2", len(sessions))
	}

	sessions, err = st.ListSessions(ctx, model.StatsConfig{Last: 3})
	if err != nil {
		t.Fatalf("failed to list sessions: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("last filter returned %d sessions, want 3", len(sessions))
	}
	if !sessions[0].EndedAt.After(base.AddDate(0, 0, 1)) {
		t.Fatalf("last filter kept the wrong window: %+v", sessions[0])
	}
}

func TestSinceFilterOrdersByInstant(t *testing.T) {
	st, err := Open(filepath.Join(t.TempDir(), "skim.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			t.Errorf("failed to close store: %v", cerr)
		}
	}()

	// 23:00+05:00 is 18:00 UTC; a lexicographic comparison of the
	// offset-bearing string would wrongly place it after 20:00 UTC.
	east := time.FixedZone("east", 5*3600)
	ended := time.Date(2025, 3, 1, 23, 0, 0, 0, east)
	ctx := context.Background()
	if _, err := st.InsertSession(ctx, model.SessionStats{
		StartedAt:  ended.Add(-time.Minute),
		EndedAt:    ended,
		Source:     "doc.txt",
		WPM:        250,
		WordsTotal: 100,
		WordsRead:  100,
		DurationMs: 60000,
	}); err != nil {
		t.Fatalf("failed to insert session: %v", err)
	}

	since := time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)
	sessions, err := st.ListSessions(ctx, model.StatsConfig{Since: &since})
	if err != nil {
		t.Fatalf("failed to list sessions: %v", err)
	}
	if len(sessions) != 0 {
		t.Fatalf("session before the cutoff instant was returned: %+v", sessions)
	}

	since = time.Date(2025, 3, 1, 17, 0, 0, 0, time.UTC)
	sessions, err = st.ListSessions(ctx, model.StatsConfig{Since: &since})
	if err != nil {
		t.Fatalf("failed to list sessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("session after the cutoff instant was dropped")
	}
	if !sessions[0].EndedAt.Equal(ended) {
		t.Fatalf("round-tripped instant changed: %v != %v", sessions[0].EndedAt, ended)
	}
}
