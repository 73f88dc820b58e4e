package services

import (
	"fmt"

	"tripbooking/internal/domain"
)

// storeErr marks err as a transient store failure. The domain sentinel stays
// matchable with errors.Is while the underlying cause is kept in the message.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, domain.ErrStoreUnavailable, err)
}
