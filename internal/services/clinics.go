package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/harentsoaR/swasth-api/internal/models"
	"go.uber.org/zap"
)

const (
	DefaultClinicRadius = 5000
	MaxClinicRadius     = 20000

	// Asansol, West Bengal. Used when the caller has no position.
	DefaultLat = 23.6739
	DefaultLon = 86.9524

	userAgent = "swasth-api/1.0"
)

var ErrLocationNotFound = errors.New("location not found")

// ClinicFinder looks up medical facilities on OpenStreetMap: Nominatim for
// geocoding and Overpass for the facilities around a point.
type ClinicFinder struct {
	NominatimURL string
	OverpassURL  string
	HTTP         *http.Client
	Cache        ClinicCache
	CacheTTL     time.Duration
	Logger       *zap.Logger
}

func NewClinicFinder(nominatimURL, overpassURL string, cache ClinicCache, ttl time.Duration, logger *zap.Logger) *ClinicFinder {
	return &ClinicFinder{
		NominatimURL: nominatimURL,
		OverpassURL:  overpassURL,
		HTTP:         &http.Client{Timeout: 30 * time.Second},
		Cache:        cache,
		CacheTTL:     ttl,
		Logger:       logger,
	}
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves a free-text place to its best match.
func (f *ClinicFinder) Geocode(ctx context.Context, query string) (*models.Location, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.NominatimURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nominatim request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("decode nominatim response: %w", err)
	}
	if len(places) == 0 {
		return nil, ErrLocationNotFound
	}

	lat, err1 := strconv.ParseFloat(places[0].Lat, 64)
	lon, err2 := strconv.ParseFloat(places[0].Lon, 64)
	if err1 != nil || err2 != nil {
		return nil, fmt.Errorf("nominatim returned malformed coordinates %q,%q", places[0].Lat, places[0].Lon)
	}
	return &models.Location{Name: places[0].DisplayName, Lat: lat, Lon: lon}, nil
}

type overpassElement struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center"`
	Tags map[string]string `json:"tags"`
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

// NearbyClinics lists clinics, hospitals and doctors' offices within radius
// metres of the point. Cache failures are logged and otherwise ignored.
func (f *ClinicFinder) NearbyClinics(ctx context.Context, lat, lon float64, radius int) ([]models.Clinic, error) {
	key := clinicCacheKey(lat, lon, radius)
	if f.Cache != nil {
		clinics, ok, err := f.Cache.GetClinics(ctx, key)
		if err != nil {
			f.Logger.Warn("clinic cache read failed", zap.String("key", key), zap.Error(err))
		} else if ok {
			return clinics, nil
		}
	}

	form := url.Values{}
	form.Set("data", overpassQuery(lat, lon, radius))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.OverpassURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass returned status %d", resp.StatusCode)
	}

	var data overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode overpass response: %w", err)
	}

	clinics := make([]models.Clinic, 0, len(data.Elements))
	for _, el := range data.Elements {
		if c, ok := clinicFromElement(el); ok {
			clinics = append(clinics, c)
		}
	}

	if f.Cache != nil {
		if err := f.Cache.SetClinics(ctx, key, clinics, f.CacheTTL); err != nil {
			f.Logger.Warn("clinic cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return clinics, nil
}

func overpassQuery(lat, lon float64, radius int) string {
	var b strings.Builder
	b.WriteString("[out:json];\n(\n")
	for _, kind := range []string{"node", "way"} {
		for _, amenity := range []string{"clinic", "hospital", "doctors"} {
			fmt.Fprintf(&b, "  %s[\"amenity\"=\"%s\"](around:%d,%f,%f);\n", kind, amenity, radius, lat, lon)
		}
	}
	b.WriteString(");\nout center;\n")
	return b.String()
}

func clinicCacheKey(lat, lon float64, radius int) string {
	return fmt.Sprintf("clinics:%.3f:%.3f:%d", lat, lon, radius)
}

// firstTag returns the first non-empty tag among keys.
func firstTag(tags map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := tags[k]; v != "" {
			return v
		}
	}
	return ""
}

func clinicFromElement(el overpassElement) (models.Clinic, bool) {
	lat, lon := el.Lat, el.Lon
	if lat == 0 && el.Center != nil {
		lat = el.Center.Lat
	}
	if lon == 0 && el.Center != nil {
		lon = el.Center.Lon
	}
	if lat == 0 || lon == 0 {
		return models.Clinic{}, false
	}

	tags := el.Tags
	if tags == nil {
		tags = map[string]string{}
	}

	facilityType := "Medical Facility"
	switch tags["amenity"] {
	case "hospital":
		facilityType = "Hospital"
	case "clinic":
		facilityType = "Clinic"
	case "doctors":
		facilityType = "Doctor's Office"
	}

	address := tags["addr:full"]
	if address == "" {
		var parts []string
		for _, p := range []string{
			tags["addr:housenumber"],
			tags["addr:street"],
			firstTag(tags, "addr:city", "addr:district"),
			tags["addr:postcode"],
		} {
			if p != "" {
				parts = append(parts, p)
			}
		}
		address = strings.Join(parts, ", ")
	}
	if address == "" {
		address = "Address not available"
	}

	name := firstTag(tags, "name", "official_name")
	if name == "" {
		name = "Unnamed " + facilityType
	}

	phone := firstTag(tags, "phone", "contact:phone", "phone:mobile", "mobile")
	if phone == "" {
		phone = "Not available"
	}

	var emergency string
	switch tags["emergency"] {
	case "yes":
		emergency = "Yes"
	case "no":
		emergency = "No"
	}

	return models.Clinic{
		ID:           strconv.FormatInt(el.ID, 10),
		Name:         name,
		Lat:          lat,
		Lon:          lon,
		Address:      address,
		Phone:        phone,
		Website:      firstTag(tags, "website", "contact:website", "url"),
		Email:        firstTag(tags, "email", "contact:email"),
		OpeningHours: firstTag(tags, "opening_hours", "hours"),
		Emergency:    emergency,
		Wheelchair:   tags["wheelchair"],
		Beds:         firstTag(tags, "beds", "capacity"),
		Speciality:   firstTag(tags, "healthcare", "healthcare:speciality", "speciality"),
		Type:         facilityType,
	}, true
}
