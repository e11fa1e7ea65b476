package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/shyamrajvs/hungrx-admin/client"
	"github.com/shyamrajvs/hungrx-admin/entity"
)

// PageSize is fixed by the contract: the server always pages by 20.
const PageSize = 20

// ListAPI is the slice of the catalog client the list reconciler needs.
type ListAPI interface {
	AllRestaurants(ctx context.Context, page int, search string) (*client.RestaurantPage, error)
	TotalRestaurants(ctx context.Context) (int, error)
}

// RestaurantList keeps the visible restaurant page consistent with the
// remote collection. The remote side is the source of truth; this state is
// a cache that gets reconciled, never authoritative.
type RestaurantList struct {
	api ListAPI
	log *zap.SugaredLogger

	mu               sync.Mutex
	restaurants      []entity.Restaurant
	currentPage      int
	totalPages       int
	totalRestaurants int
	query            string
	errMsg           string
	fetchToken       uint64

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRestaurantList(api ListAPI, log *zap.SugaredLogger) *RestaurantList {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &RestaurantList{
		api:         api,
		log:         log,
		currentPage: 1,
		totalPages:  1,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// FetchPage replaces the local sequence and counts wholesale from the
// response. A response to a superseded fetch is discarded, so out-of-order
// results of rapid searches never render. On failure the stale list is
// cleared rather than shown next to an error.
func (l *RestaurantList) FetchPage(ctx context.Context, page int) error {
	l.mu.Lock()
	l.fetchToken++
	token := l.fetchToken
	query := l.query
	l.mu.Unlock()

	res, err := l.api.AllRestaurants(ctx, page, query)

	l.mu.Lock()
	defer l.mu.Unlock()
	if token != l.fetchToken {
		return nil // superseded
	}
	if err != nil {
		l.restaurants = nil
		l.errMsg = client.UserMessage(err)
		return err
	}
	l.restaurants = res.Restaurants
	l.totalPages = res.TotalPages
	l.totalRestaurants = res.TotalRestaurants
	l.currentPage = page
	l.errMsg = ""
	return nil
}

// SetQuery records a new search query and resets to page 1, so page N>1 of
// an old query is never shown for a new one.
func (l *RestaurantList) SetQuery(query string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if query == l.query {
		return
	}
	l.query = query
	l.currentPage = 1
}

// GoToPage rejects navigation outside [1, totalPages].
func (l *RestaurantList) GoToPage(page int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if page < 1 || page > l.totalPages {
		return false
	}
	l.currentPage = page
	return true
}

// ApplyMutation splices a mutation result into the local page instead of
// refetching: add prepends, edit replaces by id, delete removes by id. The
// sequence is then re-sorted most-recently-touched first, truncated to the
// page size and the view resets to page 1. The page/total counts go stale
// until the next full fetch; only the total restaurant count is refreshed,
// asynchronously.
func (l *RestaurantList) ApplyMutation(mode FormMode, r entity.Restaurant) {
	l.mu.Lock()
	switch mode {
	case ModeAdd:
		l.restaurants = append([]entity.Restaurant{r}, l.restaurants...)
	case ModeEdit:
		for i := range l.restaurants {
			if l.restaurants[i].ID == r.ID {
				l.restaurants[i] = r
				break
			}
		}
	case ModeDelete:
		for i := range l.restaurants {
			if l.restaurants[i].ID == r.ID {
				l.restaurants = append(l.restaurants[:i], l.restaurants[i+1:]...)
				break
			}
		}
	}
	sortRestaurantsLatestFirst(l.restaurants)
	if len(l.restaurants) > PageSize {
		l.restaurants = l.restaurants[:PageSize]
	}
	l.currentPage = 1
	l.mu.Unlock()

	l.wg.Add(1)
	go l.refreshTotal()
}

func (l *RestaurantList) refreshTotal() {
	defer l.wg.Done()
	total, err := l.api.TotalRestaurants(l.ctx)
	if err != nil {
		l.log.Warnw("total restaurant refresh failed", "err", err)
		return
	}
	l.mu.Lock()
	l.totalRestaurants = total
	l.mu.Unlock()
}

// Restaurants returns a snapshot of the visible page.
func (l *RestaurantList) Restaurants() []entity.Restaurant {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]entity.Restaurant, len(l.restaurants))
	copy(out, l.restaurants)
	return out
}

func (l *RestaurantList) CurrentPage() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.currentPage
}

func (l *RestaurantList) TotalPages() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totalPages
}

func (l *RestaurantList) TotalRestaurants() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totalRestaurants
}

func (l *RestaurantList) Query() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.query
}

func (l *RestaurantList) ErrorMessage() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errMsg
}

// Close cancels outstanding background work on teardown and waits for it,
// so nothing writes state after the view is gone.
func (l *RestaurantList) Close() {
	l.cancel()
	l.wg.Wait()
}
