package services

import (
	"fmt"
	"sync"
	"time"

	"backend/models"
	"backend/utils"

	"github.com/apex/log"
)

// RouteMatchRadiusKm is how close an alert must fall to a route's origin,
// destination or the segment between them to trigger notifications.
const RouteMatchRadiusKm = 2.0

// GeoNotificationService matches fresh alerts against favorited routes and
// persists one ROUTE_ALERT notification per interested favorite.
type GeoNotificationService struct {
	routes        RouteStore
	notifications NotificationStore
}

func NewGeoNotificationService(routes RouteStore, notifications NotificationStore) *GeoNotificationService {
	return &GeoNotificationService{routes: routes, notifications: notifications}
}

// HandleEvent subscribes the dispatcher to the domain bus.
func (s *GeoNotificationService) HandleEvent(e Event) {
	if ev, ok := e.(AlertCreated); ok {
		s.OnNewAlert(ev.Alert)
	}
}

// OnNewAlert fans out notifications for every route the alert touches. An
// alert without coordinates matches nothing. Per-recipient persistence
// failures are logged and skipped; they never fail the siblings or the
// alert-creation flow, which is why this returns nothing.
//
// A user who favorited several matching routes gets one notification per
// match. That duplicates on purpose: each favorite names its own route.
func (s *GeoNotificationService) OnNewAlert(alert *models.Alert) {
	if !alert.HasCoordinates() {
		return
	}

	routes, err := s.routes.ActiveRoutes()
	if err != nil {
		log.WithError(err).WithField("alert", alert.ID).Error("route lookup failed, fan-out skipped")
		return
	}

	var wg sync.WaitGroup
	for i := range routes {
		route := &routes[i]
		if !s.routeMatches(alert, route) {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.notifyRouteFavorites(alert, route)
		}()
	}
	wg.Wait()
}

// routeMatches checks the alert point against the route's origin, its
// destination, and the perpendicular (clamped) distance to the segment
// between them. Missing coordinates measure as +Inf and never match.
func (s *GeoNotificationService) routeMatches(alert *models.Alert, route *models.Route) bool {
	dOrigin := utils.HaversineNullable(alert.Latitude, alert.Longitude, route.OriginLat, route.OriginLng)
	if dOrigin <= RouteMatchRadiusKm {
		return true
	}
	dDest := utils.HaversineNullable(alert.Latitude, alert.Longitude, route.DestLat, route.DestLng)
	if dDest <= RouteMatchRadiusKm {
		return true
	}
	dSeg := utils.PointToSegmentNullable(alert.Latitude, alert.Longitude,
		route.OriginLat, route.OriginLng, route.DestLat, route.DestLng)
	return dSeg <= RouteMatchRadiusKm
}

func (s *GeoNotificationService) notifyRouteFavorites(alert *models.Alert, route *models.Route) {
	favorites, err := s.routes.FavoritesByRoute(route.ID)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{"alert": alert.ID, "route": route.ID}).Error("favorite lookup failed")
		return
	}

	for _, fav := range favorites {
		if !fav.NotificationsEnabled || fav.UserID == alert.UserID {
			continue
		}

		routeName := fav.CustomName
		if routeName == "" {
			routeName = route.Name
		}
		n := &models.Notification{
			UserID:          fav.UserID,
			Type:            models.NotifRouteAlert,
			Title:           fmt.Sprintf("%s alert on %s", alert.Severity, routeName),
			Message:         fmt.Sprintf("%s: %s near %s", alert.Type, alert.Title, alert.Location),
			RelatedEntityID: alert.ID,
			CreatedAt:       time.Now(),
		}
		if err := s.notifications.CreateNotification(n); err != nil {
			// fail-open: this recipient misses out, the rest don't
			log.WithError(err).WithFields(log.Fields{"alert": alert.ID, "user": fav.UserID}).Warn("route notification not persisted")
		}
	}
}
