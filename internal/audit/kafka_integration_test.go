//go:build integration

package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"

	id "clubraise/pkg/domain"
	"clubraise/pkg/testutil/containers"
)

func TestKafkaPublisher_DeliversKeyedEvents(t *testing.T) {
	ctx := context.Background()
	broker := containers.NewRedpandaContainer(t)
	topic := "clubraise.onboarding.audit.test"

	admin, err := kgo.NewClient(kgo.SeedBrokers(broker.Brokers...))
	require.NoError(t, err)
	t.Cleanup(admin.Close)
	_, err = kadm.NewClient(admin).CreateTopic(ctx, 1, 1, nil, topic)
	require.NoError(t, err)

	pub, err := NewKafkaPublisher(broker.Brokers, topic, slog.Default())
	require.NoError(t, err)
	t.Cleanup(pub.Close)

	orgID := id.OrgID(uuid.New())
	events := []Event{
		{
			ID:         uuid.New(),
			OrgID:      orgID,
			Actor:      "member:treasurer",
			Action:     ActionSubmitted,
			OccurredAt: time.Now().UTC().Truncate(time.Millisecond),
		},
		{
			ID:         uuid.New(),
			OrgID:      orgID,
			Actor:      "admin:reviews",
			Action:     ActionVerified,
			Notes:      "matched CRO filing",
			OccurredAt: time.Now().UTC().Truncate(time.Millisecond),
		},
	}
	for _, event := range events {
		require.NoError(t, pub.Emit(ctx, event))
	}

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(broker.Brokers...),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	t.Cleanup(consumer.Close)

	var records []*kgo.Record
	deadline := time.Now().Add(30 * time.Second)
	for len(records) < len(events) && time.Now().Before(deadline) {
		pollCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		fetches := consumer.PollFetches(pollCtx)
		cancel()
		records = append(records, fetches.Records()...)
	}
	require.Len(t, records, len(events))

	for i, record := range records {
		assert.Equal(t, orgID.String(), string(record.Key))

		var got Event
		require.NoError(t, json.Unmarshal(record.Value, &got))
		assert.Equal(t, events[i].ID, got.ID)
		assert.Equal(t, events[i].Action, got.Action)
		assert.Equal(t, events[i].Actor, got.Actor)
		assert.Equal(t, events[i].Notes, got.Notes)
	}
}
