package document

import (
	"cmp"
	"context"
	"slices"

	"landshare/internal/infra/persistence/docstore"
)

// legacyQuery rewrites every filter and sort field of q to its camelCase alias.
// It reports false when no field has a distinct alias.
func legacyQuery(q docstore.Query) (docstore.Query, bool) {
	renamed := false

	legacy := docstore.Query{Collection: q.Collection, Limit: q.Limit}
	for _, f := range q.Filters {
		alias := camelCase(f.Field)
		renamed = renamed || alias != f.Field
		legacy = legacy.Where(alias, f.Op, f.Value)
	}
	for _, o := range q.Orders {
		alias := camelCase(o.Field)
		renamed = renamed || alias != o.Field
		legacy = legacy.OrderBy(alias, o.Direction)
	}

	return legacy, renamed
}

// queryEitherSpelling runs q against the snake_case fields and again against their camelCase aliases,
// so documents written only under the legacy spelling are found too. Results are merged by id,
// re-sorted on either spelling and cut to q.Limit.
func queryEitherSpelling(ctx context.Context, store docstore.Store, q docstore.Query) ([]docstore.Snapshot, error) {
	snaps, err := store.Query(ctx, q)
	if err != nil {
		return nil, err
	}

	legacy, ok := legacyQuery(q)
	if !ok {
		return snaps, nil
	}

	legacySnaps, err := store.Query(ctx, legacy)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(snaps))
	for _, snap := range snaps {
		seen[snap.ID] = struct{}{}
	}
	for _, snap := range legacySnaps {
		if _, dup := seen[snap.ID]; dup {
			continue
		}
		seen[snap.ID] = struct{}{}
		snaps = append(snaps, snap)
	}

	sortSnapshots(snaps, q.Orders)
	if q.Limit > 0 && len(snaps) > q.Limit {
		snaps = snaps[:q.Limit]
	}

	return snaps, nil
}

// sortSnapshots orders snapshots by the given keys, reading each key under either spelling.
func sortSnapshots(snaps []docstore.Snapshot, orders []docstore.Order) {
	slices.SortStableFunc(snaps, func(a, b docstore.Snapshot) int {
		for _, o := range orders {
			av, _ := reader(a.Data).lookup(o.Field)
			bv, _ := reader(b.Data).lookup(o.Field)

			c := docstore.Compare(av, bv)
			if o.Direction == docstore.Desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}

		return cmp.Compare(a.ID, b.ID)
	})
}
