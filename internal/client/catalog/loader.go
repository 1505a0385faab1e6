// Package catalog drives incremental loading of the product list.
//
// The Loader owns the accumulated items, the fetch offset, and the
// has-more flag. It guarantees at most one outbound page request at a
// time, appends pages in fetch order without deduplication, and discards
// responses that settle after a refresh has reset the state generation.
package catalog

import (
	"context"
	"errors"
	"sync"

	"storedash/internal/client/models"
	"storedash/internal/logging"
)

// DefaultPageSize is the number of products requested per page.
const DefaultPageSize = 10

// ErrBusy is returned by Load when another load is already in flight.
var ErrBusy = errors.New("load already in progress")

// State is the loader's lifecycle phase.
type State int

const (
	StateIdle State = iota
	StateLoadingInitial
	StateLoadingMore
	StateRefreshing
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoadingInitial:
		return "loading"
	case StateLoadingMore:
		return "loading more"
	case StateRefreshing:
		return "refreshing"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Fetcher is the slice of the API client the loader depends on.
type Fetcher interface {
	Products(ctx context.Context, skip, limit int) (*models.ProductPage, error)
}

// Snapshot is an immutable view of the loader state. Items is a copy and
// safe to keep.
type Snapshot struct {
	Items   []models.Product
	Offset  int
	Total   int
	HasMore bool
	State   State
}

// Loader is the paginated list controller. All methods are safe for
// concurrent use; page requests themselves run outside the lock.
type Loader struct {
	fetcher  Fetcher
	log      logging.Logger
	pageSize int

	mu         sync.Mutex
	items      []models.Product
	offset     int
	total      int
	hasMore    bool
	state      State
	started    bool
	generation uint64
}

// NewLoader constructs a Loader with the given page size; sizes < 1 fall
// back to DefaultPageSize.
func NewLoader(fetcher Fetcher, pageSize int, log logging.Logger) *Loader {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Loader{
		fetcher:  fetcher,
		log:      log.With("component", "catalog"),
		pageSize: pageSize,
		hasMore:  true,
		state:    StateIdle,
	}
}

// Load performs the initial fetch at offset 0, replacing any prior
// contents. It returns ErrBusy if a load is already in flight. After Load
// settles (success or failure), LoadMore triggers are accepted.
func (l *Loader) Load(ctx context.Context) error {
	l.mu.Lock()
	if l.inFlight() {
		l.mu.Unlock()
		return ErrBusy
	}
	prev := l.settledState()
	l.state = StateLoadingInitial
	gen := l.generation
	limit := l.pageSize
	l.mu.Unlock()

	page, err := l.fetcher.Products(ctx, 0, limit)

	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.generation {
		// Superseded by a refresh while in flight; drop the result.
		l.log.Debug(ctx, "stale initial page discarded", "generation", gen)
		return nil
	}
	l.started = true
	if err != nil {
		l.state = prev
		return err
	}

	l.replace(page)
	l.log.Debug(ctx, "initial page loaded", "count", len(page.Products), "total", page.Total)
	return nil
}

// LoadMore fetches the next page and appends it. It reports whether new
// items were appended. A trigger is ignored, returning (false, nil), while
// a load is in flight, before the initial load has settled, or once the
// list is exhausted. The underlying "near end of list" signal may fire
// repeatedly; this guard collapses bursts into a single request.
func (l *Loader) LoadMore(ctx context.Context) (bool, error) {
	l.mu.Lock()
	if !l.started || l.state != StateIdle || !l.hasMore {
		l.mu.Unlock()
		return false, nil
	}
	l.state = StateLoadingMore
	gen := l.generation
	skip := l.offset
	limit := l.pageSize
	l.mu.Unlock()

	page, err := l.fetcher.Products(ctx, skip, limit)

	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.generation {
		l.log.Debug(ctx, "stale page discarded", "skip", skip, "generation", gen)
		return false, nil
	}
	if err != nil {
		// No partial application: items, offset and hasMore stay as they
		// were before the attempt.
		l.state = StateIdle
		return false, err
	}

	// Append-only, no deduplication: if the server repeats an ID across
	// pages it is represented twice.
	l.items = append(l.items, page.Products...)
	l.offset += len(page.Products)
	l.total = page.Total
	l.hasMore = len(l.items) < page.Total
	if l.hasMore {
		l.state = StateIdle
	} else {
		l.state = StateExhausted
	}
	l.log.Debug(ctx, "page appended", "skip", skip, "count", len(page.Products), "total", page.Total)
	return len(page.Products) > 0, nil
}

// Refresh refetches from offset 0 and replaces the accumulated items,
// from any state including Exhausted. It bumps the state generation first,
// so a page request still in flight is discarded when it settles rather
// than being applied to the refreshed list.
func (l *Loader) Refresh(ctx context.Context) error {
	l.mu.Lock()
	prev := l.settledState()
	l.generation++
	gen := l.generation
	l.state = StateRefreshing
	limit := l.pageSize
	l.mu.Unlock()

	page, err := l.fetcher.Products(ctx, 0, limit)

	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.generation {
		// A newer refresh superseded this one.
		return nil
	}
	l.started = true
	if err != nil {
		l.state = prev
		return err
	}

	l.replace(page)
	l.log.Debug(ctx, "list refreshed", "count", len(page.Products), "total", page.Total)
	return nil
}

// Snapshot returns a copy of the current state.
func (l *Loader) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	items := make([]models.Product, len(l.items))
	copy(items, l.items)

	return Snapshot{
		Items:   items,
		Offset:  l.offset,
		Total:   l.total,
		HasMore: l.hasMore,
		State:   l.state,
	}
}

// replace installs a fresh first page. Caller holds the lock.
func (l *Loader) replace(page *models.ProductPage) {
	l.items = append([]models.Product(nil), page.Products...)
	l.offset = len(page.Products)
	l.total = page.Total
	l.hasMore = len(l.items) < page.Total
	if l.hasMore {
		l.state = StateIdle
	} else {
		l.state = StateExhausted
	}
}

// inFlight reports whether a page request is outstanding. Caller holds
// the lock.
func (l *Loader) inFlight() bool {
	return l.state == StateLoadingInitial || l.state == StateLoadingMore || l.state == StateRefreshing
}

// settledState maps the current state to the form it settles back to on
// failure. Caller holds the lock.
func (l *Loader) settledState() State {
	if l.state == StateExhausted {
		return StateExhausted
	}
	return StateIdle
}
