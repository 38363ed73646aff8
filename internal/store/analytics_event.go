package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/vibetune/ent"
	"github.com/abhisek/vibetune/ent/analyticsevent"
	"github.com/abhisek/vibetune/ent/predicate"
)

func (r *eventRepo) AppendAnalytics(ctx context.Context, data AnalyticsEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	create := r.client.AnalyticsEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(time.Now().UTC()).
		SetProfileID(data.ProfileID).
		SetEventType(data.EventType)
	if len(data.Payload) > 0 {
		create.SetPayload(data.Payload)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("save analytics event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAnalytics(ctx context.Context, opts QueryOpts) ([]AnalyticsEventRecord, error) {
	q := r.client.AnalyticsEvent.Query().
		Where(window[predicate.AnalyticsEvent](opts)...).
		Order(ent.Desc(analyticsevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query analytics events: %w", err)
	}
	out := make([]AnalyticsEventRecord, 0, len(events))
	for _, e := range events {
		rec := AnalyticsEventRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			AnalyticsEventData: AnalyticsEventData{
				ProfileID: e.ProfileID,
				EventType: e.EventType,
			},
		}
		if len(e.Payload) > 0 {
			rec.Payload = e.Payload
		}
		out = append(out, rec)
	}
	return out, nil
}
