package impl

import (
	"context"
	"log/slog"
	"math"
	"reflect"
	"time"

	deliverycontext "arcade/internal/delivery/context"
	domainerrors "arcade/internal/domain/errors"
	"arcade/internal/domain/repository"
	"arcade/internal/domain/service"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

// documentTag is the struct tag that maps entity fields to document keys.
const documentTag = "firestore"

// decodeDocument converts an untyped document body into T.
// Any type mismatch is reported as ErrDocumentDecode.
func decodeDocument[T any](doc *repository.Document) (*T, error) {
	out := new(T)

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: documentTag,
		Result:  out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339Nano),
			rejectFractionalNumbers,
		),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build document decoder")
	}

	if err := decoder.Decode(doc.Fields); err != nil {
		return nil, errors.Wrapf(domainerrors.ErrDocumentDecode, "document %s: %v", doc.ID, err)
	}

	return out, nil
}

// rejectFractionalNumbers refuses to truncate 1.5 into an int field.
func rejectFractionalNumbers(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int {
		return data, nil
	}

	if from.Kind() != reflect.Float32 && from.Kind() != reflect.Float64 {
		return data, nil
	}

	f := reflect.ValueOf(data).Float()
	if f != math.Trunc(f) {
		return nil, errors.Errorf("%v is not an integer", f)
	}

	return data, nil
}

// publishChange emits a change event. Publishing is best effort: failures are logged only.
func publishChange(
	ctx context.Context,
	publisher service.EventPublisher,
	logger *slog.Logger,
	collection, id string,
	action service.ChangeAction,
) {
	event := &service.ChangeEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Collection: collection,
		EntityID:   id,
		Action:     action,
		At:         time.Now().UTC(),
	}

	if err := publisher.PublishChangeEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, logger).Warn("Failed to publish change event",
			slog.String("collection", collection),
			slog.String("entity_id", id),
			slog.String("action", string(action)),
			slog.Any("error", err),
		)
	}
}
