package services

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"time"

	"backend/entity"
	"backend/repository"

	"github.com/redis/go-redis/v9"
)

const (
	geofenceCacheKey = "geofences:v1"
	geofenceCacheTTL = 5 * time.Minute
	maxNearbyPickup  = 5
)

type NearbyRestaurant struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	DistanceKm float64 `json:"distance_km"`
}

type DeliveryResult struct {
	Valid        bool               `json:"isValid"`
	Restaurant   *entity.Restaurant `json:"restaurant,omitempty"`
	Zone         entity.Zone        `json:"zone,omitempty"`
	Message      string             `json:"errorMessage,omitempty"`
	NearbyPickup []NearbyRestaurant `json:"nearbyPickupRestaurants,omitempty"`
}

// restaurantSnapshot is the cached shape: just what the containment scan and
// the nearby-pickup fallback need.
type restaurantSnapshot struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	Address     string            `json:"address"`
	Lat         float64           `json:"lat"`
	Lng         float64           `json:"lng"`
	Zone        entity.Zone       `json:"zone"`
	DeliveryFee int64             `json:"deliveryFee"`
	Vertices    []entity.GeoPoint `json:"vertices,omitempty"`
}

type DeliveryService struct {
	RestRepo *repository.RestaurantRepository
	Cache    *redis.Client // nil disables caching
}

func NewDeliveryService(restRepo *repository.RestaurantRepository, cache *redis.Client) *DeliveryService {
	return &DeliveryService{RestRepo: restRepo, Cache: cache}
}

func (s *DeliveryService) snapshot(ctx context.Context) ([]restaurantSnapshot, error) {
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, geofenceCacheKey).Bytes(); err == nil {
			var snap []restaurantSnapshot
			if json.Unmarshal(raw, &snap) == nil {
				return snap, nil
			}
		}
	}

	rests, err := s.RestRepo.ListActive()
	if err != nil {
		return nil, err
	}
	snap := make([]restaurantSnapshot, 0, len(rests))
	for _, r := range rests {
		row := restaurantSnapshot{
			ID: r.ID, Name: r.Name, Address: r.Address,
			Lat: r.Latitude, Lng: r.Longitude,
			Zone: r.Zone, DeliveryFee: r.DeliveryFee,
		}
		if r.Geofence != nil {
			row.Vertices = r.Geofence.Vertices
		}
		snap = append(snap, row)
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(snap); err == nil {
			s.Cache.Set(ctx, geofenceCacheKey, raw, geofenceCacheTTL)
		}
	}
	return snap, nil
}

// Invalidate drops the cached snapshot; admin geofence writes call this.
func (s *DeliveryService) Invalidate(ctx context.Context) {
	if s.Cache != nil {
		s.Cache.Del(ctx, geofenceCacheKey)
	}
}

// ValidateCoordinates is deterministic for a fixed catalog: the scan order is
// the stable restaurant listing, and among containing polygons the nearest
// restaurant center wins.
func (s *DeliveryService) ValidateCoordinates(ctx context.Context, lat, lng float64) (*DeliveryResult, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	bestDist := math.MaxFloat64
	var best *restaurantSnapshot
	for i := range snap {
		r := &snap[i]
		if len(r.Vertices) == 0 {
			continue
		}
		if !pointInPolygon(lat, lng, r.Vertices) {
			continue
		}
		d := haversineKm(lat, lng, r.Lat, r.Lng)
		if d < bestDist {
			bestDist = d
			best = r
		}
	}

	if best != nil {
		rest, err := s.RestRepo.Get(best.ID)
		if err != nil {
			return nil, err
		}
		return &DeliveryResult{Valid: true, Restaurant: rest, Zone: rest.Zone}, nil
	}

	nearby := make([]NearbyRestaurant, 0, len(snap))
	for _, r := range snap {
		nearby = append(nearby, NearbyRestaurant{
			ID: r.ID, Name: r.Name, Address: r.Address,
			DistanceKm: math.Round(haversineKm(lat, lng, r.Lat, r.Lng)*100) / 100,
		})
	}
	sort.Slice(nearby, func(i, j int) bool { return nearby[i].DistanceKm < nearby[j].DistanceKm })
	if len(nearby) > maxNearbyPickup {
		nearby = nearby[:maxNearbyPickup]
	}

	return &DeliveryResult{
		Valid:        false,
		Message:      "address is outside our delivery zones",
		NearbyPickup: nearby,
	}, nil
}

func (s *DeliveryService) ValidateAddress(ctx context.Context, a *entity.CustomerAddress) (*DeliveryResult, error) {
	return s.ValidateCoordinates(ctx, a.Latitude, a.Longitude)
}
