package repo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"hevy-insights/internal/workout"
)

// Source is the remote workout API the repository refreshes from.
type Source interface {
	GetAccount(ctx context.Context) (workout.Account, error)
	// GetWorkouts returns one page at the given offset; an empty page
	// marks the end of the collection.
	GetWorkouts(ctx context.Context, username string, offset int) ([]workout.Record, error)
}

const (
	// cacheTTL is how long a fetched collection stays fresh.
	cacheTTL = 5 * time.Minute
	// pageSize is the number of records per page, fixed by caller
	// convention against the remote source.
	pageSize = 5
	// maxPages bounds a single refresh against a misbehaving source.
	// Hitting it stops paging; it is not an error.
	maxPages = 2000
)

// Stats describes the repository's cache state and the outcome of the
// last refresh.
type Stats struct {
	WorkoutCount int
	FetchedAt    time.Time
	Imported     bool
	LastPages    int
	PagesCapped  bool
}

// Repository owns the cached workout collection and account info for
// one user session. Refreshes are serialized: the mutex is held for
// the whole paginated fetch, so a concurrent FetchWorkouts observes
// the freshly cached result instead of paging again. All other
// components are pure functions over the snapshot this returns.
type Repository struct {
	mu sync.Mutex

	source   Source
	username string

	account    *workout.Account
	workouts   []workout.Record
	fetchedAt  time.Time
	imported   bool
	lastPages  int
	pageCapHit bool
}

// New creates a repository over the given remote source. The username
// scopes the paged workout endpoint.
func New(source Source, username string) *Repository {
	return &Repository{source: source, username: username}
}

// NewImported creates a repository in import mode: the supplied
// records are authoritative and immediately fresh, and the repository
// never pages a remote source.
func NewImported(records []workout.Record) *Repository {
	r := &Repository{}
	r.ImportWorkouts(records)
	return r
}

// FetchAccount returns the cached account info, fetching it when
// absent or when force is set.
func (r *Repository) FetchAccount(ctx context.Context, force bool) (workout.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.account != nil && !force {
		return *r.account, nil
	}
	if r.source == nil {
		return workout.Account{}, fmt.Errorf("no remote source configured")
	}

	account, err := r.source.GetAccount(ctx)
	if err != nil {
		return workout.Account{}, err
	}
	r.account = &account
	return account, nil
}

// FetchWorkouts returns the cached collection unless it is absent,
// stale (older than 5 minutes), or force is set, in which case it
// re-pages the remote source. In import mode the imported dataset is
// always returned as-is. A failed refresh leaves the previous cache
// and freshness timestamp untouched.
func (r *Repository) FetchWorkouts(ctx context.Context, force bool) ([]workout.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.imported {
		return r.workouts, nil
	}
	if r.workouts != nil && !force && time.Since(r.fetchedAt) < cacheTTL {
		return r.workouts, nil
	}
	if r.source == nil {
		return nil, fmt.Errorf("no remote source configured")
	}

	fetched, pages, capped, err := r.fetchAllPages(ctx)
	if err != nil {
		return nil, err
	}

	r.workouts = fetched
	r.fetchedAt = time.Now()
	r.lastPages = pages
	r.pageCapHit = capped
	return r.workouts, nil
}

// fetchAllPages pages through the source from offset 0 until an empty
// page or the safety cap. Partial progress is discarded by the caller
// on error; pages are concatenated in source order.
func (r *Repository) fetchAllPages(ctx context.Context) (records []workout.Record, pages int, capped bool, err error) {
	records = make([]workout.Record, 0, pageSize)
	for offset := 0; ; offset += pageSize {
		if pages == maxPages {
			return records, pages, true, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, pages, false, err
		}

		page, err := r.source.GetWorkouts(ctx, r.username, offset)
		if err != nil {
			return nil, pages, false, fmt.Errorf("fetching workouts at offset %d: %w", offset, err)
		}
		pages++
		if len(page) == 0 {
			return records, pages, false, nil
		}
		records = append(records, page...)
	}
}

// ImportWorkouts replaces the collection with a locally supplied
// dataset, marks it fresh, and switches the repository to import mode.
func (r *Repository) ImportWorkouts(records []workout.Record) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.workouts = records
	if r.workouts == nil {
		r.workouts = []workout.Record{}
	}
	r.fetchedAt = time.Now()
	r.imported = true
	r.lastPages = 0
	r.pageCapHit = false
}

// Seed pre-populates the cache with a previously fetched dataset,
// typically a persisted snapshot. Unlike ImportWorkouts it preserves
// the original fetch time, so a stale snapshot still triggers a real
// refresh on the next fetch.
func (r *Repository) Seed(records []workout.Record, fetchedAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.workouts = records
	if r.workouts == nil {
		r.workouts = []workout.Record{}
	}
	r.fetchedAt = fetchedAt
}

// Invalidate clears the cached workouts and freshness timestamp but
// keeps the account info.
func (r *Repository) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.workouts = nil
	r.fetchedAt = time.Time{}
	r.imported = false
}

// Reset clears all cached state, as on logout.
func (r *Repository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.account = nil
	r.workouts = nil
	r.fetchedAt = time.Time{}
	r.imported = false
	r.lastPages = 0
	r.pageCapHit = false
}

// Stats reports the current cache state.
func (r *Repository) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Stats{
		WorkoutCount: len(r.workouts),
		FetchedAt:    r.fetchedAt,
		Imported:     r.imported,
		LastPages:    r.lastPages,
		PagesCapped:  r.pageCapHit,
	}
}
