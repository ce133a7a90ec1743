package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "clubraise/pkg/domain"
)

func sampleEvent(action Action) Event {
	return Event{
		ID:         uuid.New(),
		OrgID:      id.OrgID(uuid.New()),
		Actor:      "admin:reviews",
		Action:     action,
		Notes:      "checked against the CRO register",
		OccurredAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestLogPublisher_WritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	event := sampleEvent(ActionVerified)
	require.NoError(t, NewLogPublisher(logger).Emit(context.Background(), event))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, string(ActionVerified), entry["msg"])
	assert.Equal(t, "audit", entry["log_type"])
	assert.Equal(t, event.OrgID.String(), entry["org_id"])
	assert.Equal(t, "admin:reviews", entry["actor"])
	assert.Equal(t, event.Notes, entry["notes"])
}

func TestMemoryPublisher_CollectsInOrder(t *testing.T) {
	pub := NewMemoryPublisher()
	first := sampleEvent(ActionSubmitted)
	second := sampleEvent(ActionRejected)

	require.NoError(t, pub.Emit(context.Background(), first))
	require.NoError(t, pub.Emit(context.Background(), second))

	events := pub.Events()
	require.Len(t, events, 2)
	assert.Equal(t, first.ID, events[0].ID)
	assert.Equal(t, second.ID, events[1].ID)
}

func TestMemoryPublisher_SnapshotIsIsolated(t *testing.T) {
	pub := NewMemoryPublisher()
	require.NoError(t, pub.Emit(context.Background(), sampleEvent(ActionCategorySet)))

	snapshot := pub.Events()
	snapshot[0].Notes = "tampered"

	assert.Equal(t, "checked against the CRO register", pub.Events()[0].Notes)
}

func TestMemoryPublisher_ConcurrentEmit(t *testing.T) {
	pub := NewMemoryPublisher()

	var wg sync.WaitGroup
	for range 25 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = pub.Emit(context.Background(), sampleEvent(ActionDetailsUpdated))
		}()
	}
	wg.Wait()

	assert.Len(t, pub.Events(), 25)
}
