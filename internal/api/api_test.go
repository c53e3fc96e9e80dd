package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playvenue/sports-booking-backend/internal/auth"
	"github.com/playvenue/sports-booking-backend/internal/booking"
	"github.com/playvenue/sports-booking-backend/internal/facility"
	"github.com/playvenue/sports-booking-backend/internal/photo"
	"github.com/playvenue/sports-booking-backend/internal/pkg/apperror"
	"github.com/playvenue/sports-booking-backend/internal/pkg/storage"
	"github.com/playvenue/sports-booking-backend/internal/user"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// ---- In-memory repositories ----

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*user.User)}
}

func (r *memUserRepo) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return user.ErrDuplicateEntry
		}
	}
	u.ID = uuid.New().String()
	u.CreatedAt = time.Now()
	stored := *u
	r.users[u.ID] = &stored
	return nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, user.ErrNotFound
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

type memFacilityRepo struct {
	mu         sync.Mutex
	facilities map[string]*facility.Facility
}

func newMemFacilityRepo() *memFacilityRepo {
	return &memFacilityRepo{facilities: make(map[string]*facility.Facility)}
}

func (r *memFacilityRepo) Create(ctx context.Context, f *facility.Facility) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f.ID = uuid.New().String()
	f.CreatedAt = time.Now()
	stored := *f
	r.facilities[f.ID] = &stored
	return nil
}

func (r *memFacilityRepo) GetByID(ctx context.Context, id string) (*facility.Facility, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.facilities[id]
	if !ok || f.IsDeleted {
		return nil, facility.ErrNotFound
	}
	copied := *f
	return &copied, nil
}

func (r *memFacilityRepo) List(ctx context.Context) ([]*facility.Facility, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*facility.Facility
	for _, f := range r.facilities {
		if f.IsDeleted {
			continue
		}
		copied := *f
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memFacilityRepo) Update(ctx context.Context, f *facility.Facility) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.facilities[f.ID]
	if !ok || existing.IsDeleted {
		return facility.ErrNotFound
	}
	stored := *f
	r.facilities[f.ID] = &stored
	return nil
}

func (r *memFacilityRepo) SoftDelete(ctx context.Context, id string) (*facility.Facility, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.facilities[id]
	if !ok || f.IsDeleted {
		return nil, facility.ErrNotFound
	}
	f.IsDeleted = true
	copied := *f
	return &copied, nil
}

type memBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*booking.Booking
	users    *memUserRepo
	fac      *memFacilityRepo
}

func newMemBookingRepo(users *memUserRepo, fac *memFacilityRepo) *memBookingRepo {
	return &memBookingRepo{
		bookings: make(map[string]*booking.Booking),
		users:    users,
		fac:      fac,
	}
}

func (r *memBookingRepo) CreateExclusive(ctx context.Context, b *booking.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.bookings {
		if existing.FacilityID != b.FacilityID || existing.Status != booking.StatusConfirmed {
			continue
		}
		if !existing.Date.Equal(b.Date) {
			continue
		}
		if booking.Overlaps(existing.StartTime, existing.EndTime, b.StartTime, b.EndTime) {
			return booking.ErrSlotUnavailable
		}
	}
	b.ID = uuid.New().String()
	b.CreatedAt = time.Now()
	stored := *b
	r.bookings[b.ID] = &stored
	return nil
}

// join mimics what the SQL joins attach on reads.
func (r *memBookingRepo) join(b *booking.Booking) *booking.Booking {
	copied := *b
	if f, ok := r.fac.facilities[b.FacilityID]; ok {
		fCopy := *f
		copied.Facility = &fCopy
	}
	if u, ok := r.users.users[b.UserID]; ok {
		copied.UserName = u.Name
		copied.UserEmail = u.Email
		copied.UserPhone = u.Phone
		copied.UserRole = string(u.Role)
		copied.UserAddress = u.Address
	}
	return &copied
}

func (r *memBookingRepo) GetByID(ctx context.Context, id string) (*booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, booking.ErrNoData
	}
	return r.join(b), nil
}

func (r *memBookingRepo) ListAll(ctx context.Context) ([]*booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*booking.Booking
	for _, b := range r.bookings {
		out = append(out, r.join(b))
	}
	return out, nil
}

func (r *memBookingRepo) ListByUser(ctx context.Context, userID string) ([]*booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*booking.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, r.join(b))
		}
	}
	return out, nil
}

func (r *memBookingRepo) ListConfirmedOn(ctx context.Context, date time.Time, facilityID string) ([]*booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*booking.Booking
	for _, b := range r.bookings {
		if b.Status != booking.StatusConfirmed || !b.Date.Equal(date) {
			continue
		}
		if facilityID != "" && b.FacilityID != facilityID {
			continue
		}
		copied := *b
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memBookingRepo) UpdateStatus(ctx context.Context, id string, status booking.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return booking.ErrNoData
	}
	b.Status = status
	return nil
}

type memPhotoRepo struct {
	mu     sync.Mutex
	photos map[string]*photo.Photo
}

func newMemPhotoRepo() *memPhotoRepo {
	return &memPhotoRepo{photos: make(map[string]*photo.Photo)}
}

func (r *memPhotoRepo) Create(ctx context.Context, p *photo.Photo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.CreatedAt = time.Now()
	stored := *p
	r.photos[p.ID] = &stored
	return nil
}

func (r *memPhotoRepo) GetByID(ctx context.Context, id string) (*photo.Photo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.photos[id]
	if !ok {
		return nil, photo.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *memPhotoRepo) ListByFacility(ctx context.Context, facilityID string) ([]*photo.Photo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*photo.Photo
	for _, p := range r.photos {
		if p.FacilityID == facilityID {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *memPhotoRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.photos[id]; !ok {
		return photo.ErrNotFound
	}
	delete(r.photos, id)
	return nil
}

// ---- Test harness ----

type testEnv struct {
	router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	userRepo := newMemUserRepo()
	facRepo := newMemFacilityRepo()
	bookingRepo := newMemBookingRepo(userRepo, facRepo)
	photoRepo := newMemPhotoRepo()

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	hasher := auth.NewBcryptPasswordHasher(4)

	userService := user.NewService(userRepo, hasher)
	facService := facility.NewService(facRepo)
	bookingService := booking.NewService(bookingRepo, facService)
	photoService := photo.NewService(photoRepo, facService, store)

	router := NewRouter(RouterConfig{
		UserService:     userService,
		FacilityService: facService,
		BookingService:  bookingService,
		PhotoService:    photoService,
		JWTManager:      jwtManager,
	})

	return &testEnv{router: router}
}

type envelope struct {
	Success       bool                  `json:"success"`
	StatusCode    int                   `json:"statusCode"`
	Message       string                `json:"message"`
	Token         string                `json:"token"`
	Data          json.RawMessage       `json:"data"`
	ErrorMessages []apperror.FieldError `json:"errorMessages"`
}

func (e *testEnv) request(t *testing.T, method, path string, body any, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var env envelope
	if len(w.Body.Bytes()) > 0 && w.Header().Get("Content-Type") != "" {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

// signup registers a user and returns a login token.
func (e *testEnv) signup(t *testing.T, name, email, role string) string {
	t.Helper()

	w, _ := e.request(t, "POST", "/api/auth/signup", gin.H{
		"name":     name,
		"email":    email,
		"password": "password",
		"phone":    "0912345678",
		"role":     role,
		"address":  "1 Test Street",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	w, env := e.request(t, "POST", "/api/auth/login", gin.H{
		"email":    email,
		"password": "password",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, env.Token)
	return env.Token
}

// addFacility creates a facility via the admin API and returns its id.
func (e *testEnv) addFacility(t *testing.T, adminToken, name string, price float64) string {
	t.Helper()

	w, env := e.request(t, "POST", "/api/facility", gin.H{
		"name":         name,
		"description":  "test facility",
		"pricePerHour": price,
		"location":     "somewhere",
	}, adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.ID)
	return data.ID
}

// ---- Tests ----

func TestWelcomeAndNoRoute(t *testing.T) {
	e := newTestEnv(t)

	w, env := e.request(t, "GET", "/", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Welcome to the Sports Facility Booking Platform API", env.Message)

	w, env = e.request(t, "GET", "/api/nope", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not Found", env.Message)
	require.Len(t, env.ErrorMessages, 1)
	assert.Equal(t, "/api/nope", env.ErrorMessages[0].Path)
}

func TestAuthFlow(t *testing.T) {
	e := newTestEnv(t)

	t.Run("signup success", func(t *testing.T) {
		w, env := e.request(t, "POST", "/api/auth/signup", gin.H{
			"name":     "Alice",
			"email":    "alice@example.com",
			"password": "password",
			"phone":    "0912345678",
			"role":     "user",
			"address":  "1 Test Street",
		}, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "User registered successfully", env.Message)

		var data struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Role  string `json:"role"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.NotEmpty(t, data.ID)
		assert.Equal(t, "alice@example.com", data.Email)
		assert.Equal(t, "user", data.Role)
		assert.NotContains(t, string(env.Data), "password")
	})

	t.Run("signup duplicate email", func(t *testing.T) {
		w, env := e.request(t, "POST", "/api/auth/signup", gin.H{
			"name":     "Alice Again",
			"email":    "alice@example.com",
			"password": "password",
			"phone":    "0912345678",
			"address":  "1 Test Street",
		}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.Success)
	})

	t.Run("signup validation error", func(t *testing.T) {
		w, env := e.request(t, "POST", "/api/auth/signup", gin.H{
			"name": "No Email",
		}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Validation Error", env.Message)
		assert.NotEmpty(t, env.ErrorMessages)
	})

	t.Run("login success returns top-level token", func(t *testing.T) {
		w, env := e.request(t, "POST", "/api/auth/login", gin.H{
			"email":    "alice@example.com",
			"password": "password",
		}, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "User logged in successfully", env.Message)

		// The token sits beside data; data carries the user fields directly.
		require.NotEmpty(t, env.Token)

		var data struct {
			Email string `json:"email"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "alice@example.com", data.Email)
		assert.NotContains(t, string(env.Data), "token")

		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
		assert.Contains(t, raw, "token")
	})

	t.Run("login unknown email", func(t *testing.T) {
		w, env := e.request(t, "POST", "/api/auth/login", gin.H{
			"email":    "nobody@example.com",
			"password": "password",
		}, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "No Data Found", env.Message)
	})

	t.Run("login wrong password", func(t *testing.T) {
		w, _ := e.request(t, "POST", "/api/auth/login", gin.H{
			"email":    "alice@example.com",
			"password": "wrong",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestFacilityEndpoints(t *testing.T) {
	e := newTestEnv(t)
	adminToken := e.signup(t, "Admin", "admin@example.com", "admin")
	userToken := e.signup(t, "Bob", "bob@example.com", "user")

	var facilityID string

	t.Run("create requires admin", func(t *testing.T) {
		payload := gin.H{"name": "Tennis Court", "pricePerHour": 30}

		w, _ := e.request(t, "POST", "/api/facility", payload, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w, env := e.request(t, "POST", "/api/facility", payload, userToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Forbidden: You do not have access to this resource", env.Message)
	})

	t.Run("create success", func(t *testing.T) {
		w, env := e.request(t, "POST", "/api/facility", gin.H{
			"name":         "Tennis Court",
			"description":  "Outdoor",
			"pricePerHour": 30,
			"location":     "Level 1",
		}, adminToken)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Facility added successfully", env.Message)

		var data struct {
			ID           string  `json:"id"`
			PricePerHour float64 `json:"pricePerHour"`
			IsDeleted    bool    `json:"isDeleted"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, 30.0, data.PricePerHour)
		assert.False(t, data.IsDeleted)
		facilityID = data.ID
	})

	t.Run("create rejects negative price", func(t *testing.T) {
		w, _ := e.request(t, "POST", "/api/facility", gin.H{
			"name":         "Bad Court",
			"pricePerHour": -5,
		}, adminToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("list is public", func(t *testing.T) {
		w, env := e.request(t, "GET", "/api/facility", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Facilities retrieved successfully", env.Message)

		var data []json.RawMessage
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Len(t, data, 1)
	})

	t.Run("update replaces document", func(t *testing.T) {
		w, env := e.request(t, "PUT", "/api/facility/"+facilityID, gin.H{
			"name":         "Badminton Hall",
			"description":  "Indoor",
			"pricePerHour": 45,
			"location":     "Level 2",
		}, adminToken)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Facility updated successfully", env.Message)

		var data struct {
			Name         string  `json:"name"`
			PricePerHour float64 `json:"pricePerHour"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "Badminton Hall", data.Name)
		assert.Equal(t, 45.0, data.PricePerHour)
	})

	t.Run("update unknown id", func(t *testing.T) {
		w, _ := e.request(t, "PUT", "/api/facility/"+uuid.New().String(), gin.H{
			"name":         "Ghost",
			"description":  "does not exist",
			"pricePerHour": 1,
			"location":     "nowhere",
		}, adminToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("soft delete hides the facility", func(t *testing.T) {
		w, env := e.request(t, "DELETE", "/api/facility/"+facilityID, nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Facility deleted successfully", env.Message)

		var data struct {
			IsDeleted bool `json:"isDeleted"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.True(t, data.IsDeleted)

		w, env = e.request(t, "GET", "/api/facility", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		var list []json.RawMessage
		require.NoError(t, json.Unmarshal(env.Data, &list))
		assert.Empty(t, list)

		// Repeated delete acts like the facility never existed.
		w, _ = e.request(t, "DELETE", "/api/facility/"+facilityID, nil, adminToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBookingEndpoints(t *testing.T) {
	e := newTestEnv(t)
	adminToken := e.signup(t, "Admin", "admin@example.com", "admin")
	bobToken := e.signup(t, "Bob", "bob@example.com", "user")
	carolToken := e.signup(t, "Carol", "carol@example.com", "user")

	facilityID := e.addFacility(t, adminToken, "Tennis Court", 100)

	bookingPayload := func(facility, start, end string) gin.H {
		return gin.H{
			"facility":  facility,
			"date":      "2026-09-01",
			"startTime": start,
			"endTime":   end,
		}
	}

	var bobBookingID string

	t.Run("create requires auth", func(t *testing.T) {
		w, _ := e.request(t, "POST", "/api/bookings", bookingPayload(facilityID, "10:00", "12:00"), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("user-only routes reject admins", func(t *testing.T) {
		w, _ := e.request(t, "POST", "/api/bookings", bookingPayload(facilityID, "10:00", "12:00"), adminToken)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w, _ = e.request(t, "GET", "/api/bookings/user", nil, adminToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("create success", func(t *testing.T) {
		w, env := e.request(t, "POST", "/api/bookings", bookingPayload(facilityID, "10:00", "12:00"), bobToken)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Booking created successfully", env.Message)

		var data struct {
			ID            string  `json:"id"`
			Facility      string  `json:"facility"`
			PayableAmount float64 `json:"payableAmount"`
			Status        string  `json:"isBooked"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, facilityID, data.Facility)
		assert.Equal(t, 200.0, data.PayableAmount)
		assert.Equal(t, "confirmed", data.Status)
		bobBookingID = data.ID
	})

	t.Run("overlapping booking is rejected", func(t *testing.T) {
		w, env := e.request(t, "POST", "/api/bookings", bookingPayload(facilityID, "11:00", "13:00"), carolToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Facility is unavailable for the requested time slot", env.Message)
	})

	t.Run("adjacent booking is allowed", func(t *testing.T) {
		w, _ := e.request(t, "POST", "/api/bookings", bookingPayload(facilityID, "12:00", "14:00"), carolToken)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("invalid time range", func(t *testing.T) {
		w, env := e.request(t, "POST", "/api/bookings", bookingPayload(facilityID, "14:00", "13:00"), carolToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid start or end time", env.Message)
	})

	t.Run("unknown facility", func(t *testing.T) {
		w, _ := e.request(t, "POST", "/api/bookings", bookingPayload(uuid.New().String(), "16:00", "18:00"), carolToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("availability reflects confirmed bookings", func(t *testing.T) {
		w, env := e.request(t, "GET", "/api/facility/check-availability?date=2026-09-01&facility="+facilityID, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Availability checked successfully", env.Message)

		var slots []struct {
			StartTime string `json:"startTime"`
			EndTime   string `json:"endTime"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &slots))
		// 10-12 and 12-14 are taken; 08-10, 14-16, 16-18, 18-20 remain.
		require.Len(t, slots, 4)
		assert.Equal(t, "08:00", slots[0].StartTime)
		assert.Equal(t, "14:00", slots[1].StartTime)
	})

	t.Run("availability rejects malformed facility id", func(t *testing.T) {
		w, _ := e.request(t, "GET", "/api/facility/check-availability?facility=not-a-uuid", nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("admin list includes user summaries", func(t *testing.T) {
		w, env := e.request(t, "GET", "/api/bookings", nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Bookings retrieved successfully", env.Message)

		var items []struct {
			User struct {
				Email string `json:"email"`
			} `json:"user"`
			Facility struct {
				Name string `json:"name"`
			} `json:"facility"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &items))
		require.Len(t, items, 2)
		assert.NotEmpty(t, items[0].User.Email)
		assert.Equal(t, "Tennis Court", items[0].Facility.Name)
	})

	t.Run("admin list is admin only", func(t *testing.T) {
		w, _ := e.request(t, "GET", "/api/bookings", nil, bobToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("user list shows own bookings only", func(t *testing.T) {
		w, env := e.request(t, "GET", "/api/bookings/user", nil, bobToken)
		require.Equal(t, http.StatusOK, w.Code)

		var items []struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &items))
		require.Len(t, items, 1)
		assert.Equal(t, bobBookingID, items[0].ID)
	})

	t.Run("cancel is owner only", func(t *testing.T) {
		w, env := e.request(t, "DELETE", "/api/bookings/"+bobBookingID, nil, carolToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Forbidden: You do not have access to this resource", env.Message)
	})

	t.Run("cancel success", func(t *testing.T) {
		w, env := e.request(t, "DELETE", "/api/bookings/"+bobBookingID, nil, bobToken)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Booking canceled successfully", env.Message)

		var data struct {
			Status string `json:"isBooked"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "canceled", data.Status)
	})

	t.Run("cancel unknown booking", func(t *testing.T) {
		w, env := e.request(t, "DELETE", "/api/bookings/"+uuid.New().String(), nil, bobToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "No Data Found", env.Message)
	})

	t.Run("empty user list yields no data", func(t *testing.T) {
		lonerToken := e.signup(t, "Dave", "dave@example.com", "user")

		w, env := e.request(t, "GET", "/api/bookings/user", nil, lonerToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "No Data Found", env.Message)
		assert.Equal(t, "[]", string(env.Data))
	})

	t.Run("invalid token", func(t *testing.T) {
		w, env := e.request(t, "GET", "/api/bookings/user", nil, "garbage")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid token", env.Message)
	})
}

func TestPhotoEndpoints(t *testing.T) {
	e := newTestEnv(t)
	adminToken := e.signup(t, "Admin", "admin@example.com", "admin")
	userToken := e.signup(t, "Bob", "bob@example.com", "user")

	facilityID := e.addFacility(t, adminToken, "Tennis Court", 100)

	uploadPhoto := func(t *testing.T, facID, token string) *httptest.ResponseRecorder {
		t.Helper()

		img := image.NewRGBA(image.Rect(0, 0, 8, 8))
		var imgBuf bytes.Buffer
		require.NoError(t, png.Encode(&imgBuf, img))

		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		header := make(map[string][]string)
		header["Content-Disposition"] = []string{`form-data; name="photo"; filename="court.png"`}
		header["Content-Type"] = []string{"image/png"}
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(imgBuf.Bytes())
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest("POST", fmt.Sprintf("/api/facility/%s/photos", facID), &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		w := httptest.NewRecorder()
		e.router.ServeHTTP(w, req)
		return w
	}

	var photoID string

	t.Run("upload requires admin", func(t *testing.T) {
		w := uploadPhoto(t, facilityID, userToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("upload success", func(t *testing.T) {
		w := uploadPhoto(t, facilityID, adminToken)
		require.Equal(t, http.StatusCreated, w.Code)

		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, "Photo uploaded successfully", env.Message)

		var data struct {
			ID           string  `json:"id"`
			FacilityID   string  `json:"facilityId"`
			ThumbnailURL *string `json:"thumbnailUrl"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, facilityID, data.FacilityID)
		require.NotNil(t, data.ThumbnailURL)
		photoID = data.ID
	})

	t.Run("upload to unknown facility", func(t *testing.T) {
		w := uploadPhoto(t, uuid.New().String(), adminToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("list photos", func(t *testing.T) {
		w, env := e.request(t, "GET", fmt.Sprintf("/api/facility/%s/photos", facilityID), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var items []struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &items))
		require.Len(t, items, 1)
		assert.Equal(t, photoID, items[0].ID)
	})

	t.Run("download original and thumbnail", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/photos/"+photoID, nil)
		w := httptest.NewRecorder()
		e.router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.NotEmpty(t, w.Body.Bytes())

		req = httptest.NewRequest("GET", "/api/photos/"+photoID+"/thumbnail", nil)
		w = httptest.NewRecorder()
		e.router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
	})

	t.Run("delete photo", func(t *testing.T) {
		w, env := e.request(t, "DELETE", "/api/photos/"+photoID, nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Photo deleted successfully", env.Message)

		w, _ = e.request(t, "GET", "/api/photos/"+photoID, nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
