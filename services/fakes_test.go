package services

import (
	"fmt"
	"sync"
	"time"

	"backend/models"
)

// In-memory stores backing the service tests. They mirror the contracts of
// the GORM repositories, including the compare-and-swap on status and the
// insert-if-absent uniqueness of reports, badges and votes.

type fakeAlertStore struct {
	mu     sync.Mutex
	nextID uint
	alerts map[uint]*models.Alert

	updateStatusErr error
	getErr          map[uint]error
}

func newFakeAlertStore() *fakeAlertStore {
	return &fakeAlertStore{nextID: 1, alerts: make(map[uint]*models.Alert), getErr: make(map[uint]error)}
}

func (f *fakeAlertStore) GetAlert(id uint) (*models.Alert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.getErr[id]; err != nil {
		return nil, err
	}
	a, ok := f.alerts[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAlertStore) SaveAlert(a *models.Alert) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a.ID == 0 {
		a.ID = f.nextID
		f.nextID++
	}
	cp := *a
	f.alerts[a.ID] = &cp
	return nil
}

func (f *fakeAlertStore) UpdateStatus(id uint, from, to models.AlertStatus, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateStatusErr != nil {
		return false, f.updateStatusErr
	}
	a, ok := f.alerts[id]
	if !ok || a.Status != from {
		return false, nil
	}
	a.Status = to
	a.UpdatedAt = at
	return true, nil
}

func (f *fakeAlertStore) AddVotes(id uint, upDelta, downDelta int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.alerts[id]
	if !ok {
		return ErrNotFound
	}
	a.Upvotes += upDelta
	a.Downvotes += downDelta
	return nil
}

func (f *fakeAlertStore) ActiveExpiredBefore(t time.Time) ([]models.Alert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Alert
	for _, a := range f.alerts {
		if a.Status == models.StatusActive && a.ExpiresAt != nil && a.ExpiresAt.Before(t) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAlertStore) TerminalOlderThan(t time.Time) ([]models.Alert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Alert
	for _, a := range f.alerts {
		if (a.Status == models.StatusResolved || a.Status == models.StatusExpired) && a.UpdatedAt.Before(t) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAlertStore) status(id uint) models.AlertStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.alerts[id].Status
}

type reportKey struct {
	alertID uint
	userID  uint
}

type fakeReportStore struct {
	mu      sync.Mutex
	nextID  uint
	reports map[uint]*models.Report
	pairs   map[reportKey]bool
}

func newFakeReportStore() *fakeReportStore {
	return &fakeReportStore{nextID: 1, reports: make(map[uint]*models.Report), pairs: make(map[reportKey]bool)}
}

func (f *fakeReportStore) CreateReport(r *models.Report) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := reportKey{r.AlertID, r.UserID}
	if f.pairs[key] {
		return false, nil
	}
	f.pairs[key] = true
	r.ID = f.nextID
	f.nextID++
	cp := *r
	f.reports[r.ID] = &cp
	return true, nil
}

func (f *fakeReportStore) GetReport(id uint) (*models.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reports[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReportStore) SaveReport(r *models.Report) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *r
	f.reports[r.ID] = &cp
	return nil
}

func (f *fakeReportStore) CountUnreviewed(alertID uint) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, r := range f.reports {
		if r.AlertID == alertID && !r.Reviewed {
			n++
		}
	}
	return n, nil
}

type fakeStatsStore struct {
	mu    sync.Mutex
	stats map[uint]*models.UserStatistics
}

func newFakeStatsStore() *fakeStatsStore {
	return &fakeStatsStore{stats: make(map[uint]*models.UserStatistics)}
}

func (f *fakeStatsStore) GetOrCreateStats(userID uint) (*models.UserStatistics, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.stats[userID]
	if !ok {
		s = &models.UserStatistics{ID: userID, UserID: userID, Level: 1}
		f.stats[userID] = s
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStatsStore) SaveStats(s *models.UserStatistics) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *s
	f.stats[s.UserID] = &cp
	return nil
}

func (f *fakeStatsStore) TopByPoints(limit int) ([]models.UserStatistics, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.UserStatistics
	for _, s := range f.stats {
		out = append(out, *s)
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].ReputationPoints > out[i].ReputationPoints {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStatsStore) get(userID uint) *models.UserStatistics {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *f.stats[userID]
	return &cp
}

// seed installs a stats row directly, bypassing the reputation service.
func (f *fakeStatsStore) seed(s models.UserStatistics) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s.Level == 0 {
		s.Level = LevelForPoints(s.ReputationPoints)
	}
	f.stats[s.UserID] = &s
}

type badgeKey struct {
	userID    uint
	badgeType models.BadgeType
}

type fakeBadgeStore struct {
	mu     sync.Mutex
	nextID uint
	badges map[badgeKey]models.Badge
}

func newFakeBadgeStore() *fakeBadgeStore {
	return &fakeBadgeStore{nextID: 1, badges: make(map[badgeKey]models.Badge)}
}

func (f *fakeBadgeStore) AwardIfAbsent(b *models.Badge) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := badgeKey{b.UserID, b.BadgeType}
	if _, held := f.badges[key]; held {
		return false, nil
	}
	b.ID = f.nextID
	f.nextID++
	f.badges[key] = *b
	return true, nil
}

func (f *fakeBadgeStore) ListBadges(userID uint) ([]models.Badge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Badge
	for key, b := range f.badges {
		if key.userID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeNotificationStore struct {
	mu            sync.Mutex
	notifications []models.Notification

	failFor map[uint]error // per-recipient create failures
}

func newFakeNotificationStore() *fakeNotificationStore {
	return &fakeNotificationStore{failFor: make(map[uint]error)}
}

func (f *fakeNotificationStore) CreateNotification(n *models.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failFor[n.UserID]; err != nil {
		return err
	}
	n.ID = uint(len(f.notifications) + 1)
	f.notifications = append(f.notifications, *n)
	return nil
}

func (f *fakeNotificationStore) byUser(userID uint) []models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Notification
	for _, n := range f.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

func (f *fakeNotificationStore) ofType(t models.NotificationType) []models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Notification
	for _, n := range f.notifications {
		if n.Type == t {
			out = append(out, n)
		}
	}
	return out
}

type fakeRouteStore struct {
	mu        sync.Mutex
	routes    []models.Route
	favorites map[uint][]models.FavoriteRoute

	routesErr error
}

func newFakeRouteStore() *fakeRouteStore {
	return &fakeRouteStore{favorites: make(map[uint][]models.FavoriteRoute)}
}

func (f *fakeRouteStore) ActiveRoutes() ([]models.Route, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.routesErr != nil {
		return nil, f.routesErr
	}
	var out []models.Route
	for _, r := range f.routes {
		if r.Active {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRouteStore) FavoritesByRoute(routeID uint) ([]models.FavoriteRoute, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.FavoriteRoute(nil), f.favorites[routeID]...), nil
}

func (f *fakeRouteStore) addRoute(r models.Route) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r.ID == 0 {
		r.ID = uint(len(f.routes) + 1)
	}
	f.routes = append(f.routes, r)
}

func (f *fakeRouteStore) addFavorite(fav models.FavoriteRoute) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.favorites[fav.RouteID] = append(f.favorites[fav.RouteID], fav)
}

type voteKey struct {
	alertID uint
	userID  uint
}

type fakeVoteStore struct {
	mu     sync.Mutex
	nextID uint
	votes  map[voteKey]*models.AlertVote
}

func newFakeVoteStore() *fakeVoteStore {
	return &fakeVoteStore{nextID: 1, votes: make(map[voteKey]*models.AlertVote)}
}

func (f *fakeVoteStore) GetVote(alertID, userID uint) (*models.AlertVote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.votes[voteKey{alertID, userID}]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (f *fakeVoteStore) SaveVote(v *models.AlertVote) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v.ID == 0 {
		v.ID = f.nextID
		f.nextID++
	}
	cp := *v
	f.votes[voteKey{v.AlertID, v.UserID}] = &cp
	return nil
}

func (f *fakeVoteStore) DeleteVote(v *models.AlertVote) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.votes, voteKey{v.AlertID, v.UserID})
	return nil
}

type fakeCommentStore struct {
	mu       sync.Mutex
	nextID   uint
	comments []models.Comment
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{nextID: 1}
}

func (f *fakeCommentStore) CreateComment(c *models.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c.ID = f.nextID
	f.nextID++
	f.comments = append(f.comments, *c)
	return nil
}

func (f *fakeCommentStore) CommentsByAlert(alertID uint) ([]models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Comment
	for _, c := range f.comments {
		if c.AlertID == alertID {
			out = append(out, c)
		}
	}
	return out, nil
}

// env bundles a fully wired service set over fakes, one per test.
type env struct {
	alerts        *fakeAlertStore
	reports       *fakeReportStore
	stats         *fakeStatsStore
	badges        *fakeBadgeStore
	notifications *fakeNotificationStore
	routes        *fakeRouteStore
	votes         *fakeVoteStore
	comments      *fakeCommentStore

	bus          *Bus
	lifecycle    *LifecycleService
	badgeSvc     *BadgeService
	reputation   *ReputationService
	moderation   *ModerationService
	geo          *GeoNotificationService
	alertSvc     *AlertService
	commentSvc   *CommentService
	sweeper      *ExpirationSweeper
	capturedEvts []Event
	evtMu        sync.Mutex
}

func newEnv() *env {
	e := &env{
		alerts:        newFakeAlertStore(),
		reports:       newFakeReportStore(),
		stats:         newFakeStatsStore(),
		badges:        newFakeBadgeStore(),
		notifications: newFakeNotificationStore(),
		routes:        newFakeRouteStore(),
		votes:         newFakeVoteStore(),
		comments:      newFakeCommentStore(),
		bus:           NewBus(),
	}
	e.lifecycle = NewLifecycleService(e.alerts)
	e.badgeSvc = NewBadgeService(e.stats, e.badges, e.notifications)
	e.reputation = NewReputationService(e.stats, e.notifications, e.badgeSvc)
	e.moderation = NewModerationService(e.alerts, e.reports, e.notifications, e.lifecycle, e.bus)
	e.geo = NewGeoNotificationService(e.routes, e.notifications)
	e.alertSvc = NewAlertService(e.alerts, e.votes, e.lifecycle, e.bus)
	e.commentSvc = NewCommentService(e.alerts, e.comments, e.bus)
	e.sweeper = NewExpirationSweeper(e.alerts, e.lifecycle, e.bus)

	e.bus.Subscribe(func(ev Event) {
		e.evtMu.Lock()
		e.capturedEvts = append(e.capturedEvts, ev)
		e.evtMu.Unlock()
	})
	return e
}

// subscribeAll wires the production subscriptions, mirroring Init.
func (e *env) subscribeAll() {
	e.bus.Subscribe(e.reputation.HandleEvent)
	e.bus.Subscribe(e.geo.HandleEvent)
}

func (e *env) events() []Event {
	e.evtMu.Lock()
	defer e.evtMu.Unlock()
	return append([]Event(nil), e.capturedEvts...)
}

func (e *env) seedAlert(a models.Alert) *models.Alert {
	if a.Status == "" {
		a.Status = models.StatusActive
	}
	if err := e.alerts.SaveAlert(&a); err != nil {
		panic(fmt.Sprintf("seeding alert: %v", err))
	}
	return &a
}

func ptr(f float64) *float64 { return &f }
