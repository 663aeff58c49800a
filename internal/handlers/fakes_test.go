package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/swasth-api/internal/flows"
	"github.com/harentsoaR/swasth-api/internal/models"
	"github.com/harentsoaR/swasth-api/internal/repository"
	"github.com/harentsoaR/swasth-api/internal/services"
	"github.com/harentsoaR/swasth-api/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeMedicines struct {
	items []models.Medicine
	err   error
}

func (f *fakeMedicines) FindAll(context.Context) ([]models.Medicine, error) {
	return f.items, f.err
}

func (f *fakeMedicines) SearchByName(_ context.Context, q string) ([]models.Medicine, error) {
	out := []models.Medicine{}
	for _, m := range f.items {
		if strings.Contains(strings.ToLower(m.Name), strings.ToLower(q)) {
			out = append(out, m)
		}
	}
	return out, f.err
}

type fakeDoctors struct {
	items []models.Doctor
	err   error
}

func (f *fakeDoctors) FindAll(context.Context) ([]models.Doctor, error) {
	out := append([]models.Doctor{}, f.items...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, f.err
}

func (f *fakeDoctors) FindByID(_ context.Context, id string) (*models.Doctor, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, d := range f.items {
		if d.ID.Hex() == id {
			d := d
			return &d, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeDoctors) Insert(_ context.Context, d *models.Doctor) error {
	if f.err != nil {
		return f.err
	}
	d.ID = primitive.NewObjectID()
	f.items = append(f.items, *d)
	return nil
}

type fakeAppointments struct {
	items      []models.Appointment
	lastFilter repository.AppointmentFilter
	err        error
}

func (f *fakeAppointments) Insert(_ context.Context, apt *models.Appointment) error {
	if f.err != nil {
		return f.err
	}
	f.items = append(f.items, *apt)
	return nil
}

func (f *fakeAppointments) Find(_ context.Context, filter repository.AppointmentFilter) ([]models.Appointment, error) {
	f.lastFilter = filter
	return f.items, f.err
}

type fakeUsers struct {
	byEmail map[string]models.User
}

func (f *fakeUsers) Insert(_ context.Context, u *models.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return repository.ErrDuplicate
	}
	f.byEmail[u.Email] = *u
	return nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range f.byEmail {
		if u.ID.Hex() == id {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeModel struct {
	reply string
	err   error
}

func (m *fakeModel) GenerateJSON(context.Context, []services.GeminiPart, *services.GeminiSchema) ([]byte, error) {
	return []byte(m.reply), m.err
}

type fakeClinics struct {
	clinics  []models.Clinic
	location *models.Location
	err      error
	geoErr   error
	lastLat  float64
	lastLon  float64
	radius   int
}

func (f *fakeClinics) NearbyClinics(_ context.Context, lat, lon float64, radius int) ([]models.Clinic, error) {
	f.lastLat, f.lastLon, f.radius = lat, lon, radius
	return f.clinics, f.err
}

func (f *fakeClinics) Geocode(context.Context, string) (*models.Location, error) {
	return f.location, f.geoErr
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls []string
}

func (n *fakeNotifier) NotifyDoctorOfBooking(d *models.Doctor, _ *models.Appointment) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, d.ID.Hex())
}

type testEnv struct {
	handler      *Handler
	router       *gin.Engine
	medicines    *fakeMedicines
	doctors      *fakeDoctors
	appointments *fakeAppointments
	users        *fakeUsers
	model        *fakeModel
	clinics      *fakeClinics
	notifier     *fakeNotifier
}

func newTestEnv() *testEnv {
	env := &testEnv{
		medicines:    &fakeMedicines{},
		doctors:      &fakeDoctors{},
		appointments: &fakeAppointments{},
		users:        &fakeUsers{byEmail: map[string]models.User{}},
		model:        &fakeModel{},
		clinics:      &fakeClinics{},
		notifier:     &fakeNotifier{},
	}
	env.handler = &Handler{
		Medicines:       env.medicines,
		Doctors:         env.doctors,
		Appointments:    env.appointments,
		Users:           env.users,
		Flows:           flows.New(env.model),
		Clinics:         env.clinics,
		NotificationSvc: env.notifier,
		JWT:             utils.NewJWTManager("test-secret", time.Hour),
		Logger:          zap.NewNop(),
	}
	env.router = NewRouter(env.handler, []string{"http://localhost:9002"})
	return env
}

func (env *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			if err := json.NewEncoder(&buf).Encode(b); err != nil {
				t.Fatal(err)
			}
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env *testEnv) token(t *testing.T, role string) string {
	t.Helper()
	tok, err := env.handler.JWT.Generate(primitive.NewObjectID().Hex(), role)
	if err != nil {
		t.Fatal(err)
	}
	return tok
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return v
}

var errBoom = errors.New("boom")
