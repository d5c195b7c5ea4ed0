package repository

import (
	"fmt"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"serviya/pkg/errors"
)

const (
	colServices      = "services"
	colReviews       = "reviews"
	colHires         = "hires"
	colNotifications = "notifications"
	colUsers         = "users"
	colChats         = "chats"
	colMessages      = "messages"

	// Firestore rejects batches with more writes than this.
	maxBatchWrites = 500

	countAlias = "all"
)

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// txError keeps AppErrors raised inside a transaction body intact and wraps
// everything else as an internal error.
func txError(message string, err error) error {
	if _, ok := errors.As(err); ok {
		return err
	}
	return errors.Internal(message, err)
}

func countResult(res firestore.AggregationResult) (int64, error) {
	raw, ok := res[countAlias]
	if !ok {
		return 0, fmt.Errorf("aggregation result has no %q alias", countAlias)
	}
	v, ok := raw.(*firestorepb.Value)
	if !ok {
		return 0, fmt.Errorf("unexpected aggregation value type %T", raw)
	}
	return v.GetIntegerValue(), nil
}
