// Package refs validates soft references between aggregates: given a set of
// requested IDs, it asks the owning gateway which of them have backing records
// and reports the missing ones as a single validation error per aggregate kind.
package refs

import (
	"context"
	"fmt"
	"strings"

	"github.com/kinotek/catalog/internal/domain/validation"
)

// CheckExists runs the bulk existence check for one referenced-aggregate kind.
// An empty ID set skips the gateway call entirely. Missing IDs are listed in
// the request's iteration order, joined by ", ". The returned handler carries
// at most one error; a gateway failure is returned as-is.
func CheckExists[T ~string](
	ctx context.Context,
	aggregate string,
	ids []T,
	existsByIDs func(context.Context, []T) ([]T, error),
) (validation.Handler, error) {
	notification := validation.NewNotification()
	if len(ids) == 0 {
		return notification, nil
	}

	existing, err := existsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	if len(existing) == len(ids) {
		return notification, nil
	}

	existingSet := make(map[T]struct{}, len(existing))
	for _, id := range existing {
		existingSet[id] = struct{}{}
	}

	missing := make([]string, 0, len(ids)-len(existing))
	for _, id := range ids {
		if _, ok := existingSet[id]; !ok {
			missing = append(missing, string(id))
		}
	}

	notification.Append(validation.NewError(
		fmt.Sprintf("Some %s could not be found: %s", aggregate, strings.Join(missing, ", ")),
	))
	return notification, nil
}

// ToIDs converts raw ID strings to typed identifiers, collapsing duplicates
// while preserving first-appearance order.
func ToIDs[T ~string](values []string) []T {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[T]struct{}, len(values))
	out := make([]T, 0, len(values))
	for _, value := range values {
		id := T(value)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
