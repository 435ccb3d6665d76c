package pubsub

import (
	"encoding/json"

	"arcade/internal/domain/service"

	"github.com/pkg/errors"
)

// Attribute keys carried next to every change event, usable in subscription filters.
const (
	attrCollection = "collection"
	attrEntityID   = "entity_id"
	attrAction     = "action"
	attrRequestID  = "request_id"
)

// encodeEvent returns the JSON payload and the attributes of event.
func encodeEvent(event *service.ChangeEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrap(err, "encode change event")
	}

	attributes := map[string]string{
		attrCollection: event.Collection,
		attrEntityID:   event.EntityID,
		attrAction:     string(event.Action),
	}
	if event.RequestID != "" {
		attributes[attrRequestID] = event.RequestID
	}

	return data, attributes, nil
}

func eventLogAttrs(event *service.ChangeEvent) []any {
	return []any{
		"collection", event.Collection,
		"entity_id", event.EntityID,
		"action", string(event.Action),
	}
}
