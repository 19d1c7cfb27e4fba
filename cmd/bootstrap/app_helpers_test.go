//go:build unit || e2e

package bootstrap_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"room-booking/cmd/bootstrap"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/pkg/config"
	"room-booking/internal/testutil/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

const adminEmail = "ops@example.com"

func testConfig() config.Config {
	cfg := config.NewTestConfig()
	cfg.Auth.AdminEmails = []string{adminEmail}
	return cfg
}

// ------------------------------------------------------------
// テスト用アプリケーション構築関数
// ------------------------------------------------------------
func newTestApp(t *testing.T, cfg config.Config) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg),
		bootstrap.AppModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		_ = app.Stop(stopCtx)
	})

	return router
}

func register(t *testing.T, router http.Handler, name, email string) resdto.UserResponse {
	t.Helper()

	var u resdto.UserResponse
	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/register",
		map[string]string{"name": name, "email": email, "password": "password123"}, "")
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &u)
	return u
}

func login(t *testing.T, router http.Handler, email string) string {
	t.Helper()

	var res resdto.LoginResponse
	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		map[string]string{"email": email, "password": "password123"}, "")
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	require.NotEmpty(t, res.AccessToken)
	return res.AccessToken
}

// runBookingScenario drives the whole HTTP surface against whichever store the app was built with.
func runBookingScenario(t *testing.T, router http.Handler) {
	admin := register(t, router, "Ops", adminEmail)
	anna := register(t, router, "Anna", "anna@example.com")
	assert.Equal(t, "admin", admin.Role)
	assert.Equal(t, "user", anna.Role)

	adminToken := login(t, router, adminEmail)
	annaToken := login(t, router, "anna@example.com")
	register(t, router, "Boris", "boris@example.com")
	borisToken := login(t, router, "boris@example.com")

	var rm resdto.RoomResponse
	t.Run("only admins create rooms", func(t *testing.T) {
		body := map[string]any{"name": "Everest", "capacity": 8, "description": "4th floor"}

		w := httptest.PerformRequest(t, router, http.MethodPost, "/api/rooms", body, annaToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")

		w = httptest.PerformRequest(t, router, http.MethodPost, "/api/rooms", body, adminToken)
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &rm)
		assert.Equal(t, fmt.Sprintf("/api/rooms/%d", rm.ID), w.Header().Get("Location"))
	})

	book := func(start, end string) gin.H {
		return gin.H{"roomId": rm.ID, "title": "Planning", "start": start, "end": end}
	}

	var first resdto.BookingResponse
	t.Run("admission", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodPost, "/api/bookings",
			book("2030-05-10T09:00:00Z", "2030-05-10T10:00:00Z"), annaToken)
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &first)
		assert.Equal(t, anna.ID, first.RequesterID)

		w = httptest.PerformRequest(t, router, http.MethodPost, "/api/bookings",
			book("2030-05-10T09:30:00Z", "2030-05-10T10:30:00Z"), borisToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Time slot is already booked")

		w = httptest.PerformRequest(t, router, http.MethodPost, "/api/bookings",
			book("2030-05-10T10:00:00Z", "2030-05-10T11:00:00Z"), borisToken)
		assert.Equal(t, http.StatusCreated, w.Code, "back-to-back is legal")

		w = httptest.PerformRequest(t, router, http.MethodPost, "/api/bookings",
			book("2030-05-10T12:00:00Z", "2030-05-10T12:00:00Z"), borisToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid time interval")

		w = httptest.PerformRequest(t, router, http.MethodPost, "/api/bookings",
			gin.H{"roomId": 9999, "title": "Ghost", "start": "2030-05-10T12:00:00Z", "end": "2030-05-10T13:00:00Z"}, borisToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Room not found")
	})

	t.Run("day listing", func(t *testing.T) {
		var list []resdto.BookingResponse
		w := httptest.PerformRequest(t, router, http.MethodGet,
			fmt.Sprintf("/api/bookings?roomId=%d&date=2030-05-10", rm.ID), nil, annaToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list, 2)
		assert.Equal(t, first.ID, list[0].ID)
	})

	t.Run("upcoming", func(t *testing.T) {
		var list []resdto.UpcomingBookingResponse
		w := httptest.PerformRequest(t, router, http.MethodGet, "/api/bookings/upcoming", nil, annaToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list, 1)
		assert.Equal(t, first.ID, list[0].ID)

		w = httptest.PerformRequest(t, router, http.MethodGet,
			fmt.Sprintf("/api/users/%d/bookings/upcoming", anna.ID), nil, borisToken)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, router, http.MethodGet,
			fmt.Sprintf("/api/users/%d/bookings/upcoming", anna.ID), nil, adminToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("room with reservations cannot be deleted", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/rooms/%d", rm.ID), nil, adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Room still has reservations")
	})

	t.Run("cancellation", func(t *testing.T) {
		path := fmt.Sprintf("/api/bookings/%d", first.ID)

		w := httptest.PerformRequest(t, router, http.MethodDelete, path, nil, borisToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")

		w = httptest.PerformRequest(t, router, http.MethodDelete, path, nil, annaToken)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, router, http.MethodDelete, path, nil, annaToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Reservation not found")

		// the freed slot can be rebooked
		w = httptest.PerformRequest(t, router, http.MethodPost, "/api/bookings",
			book("2030-05-10T09:00:00Z", "2030-05-10T10:00:00Z"), borisToken)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("telegram linking", func(t *testing.T) {
		var code resdto.LinkCodeResponse
		w := httptest.PerformRequest(t, router, http.MethodPost, "/api/telegram/link-code", nil, annaToken)
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &code)
		assert.Regexp(t, `^link-[0-9a-f]{8}$`, code.Code)

		w = httptest.PerformRequest(t, router, http.MethodPost, "/api/telegram/complete-link",
			map[string]any{"code": code.Code, "telegramId": 4242}, "")
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, router, http.MethodPost, "/api/telegram/complete-link",
			map[string]any{"code": code.Code, "telegramId": 4242}, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Link code not found or expired")

		var profile resdto.ProfileResponse
		w = httptest.PerformRequest(t, router, http.MethodGet, "/api/profile", nil, annaToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &profile)
		require.NotNil(t, profile.TelegramID)
		assert.Equal(t, int64(4242), *profile.TelegramID)

		var summary resdto.UserSummaryResponse
		w = httptest.PerformRequest(t, router, http.MethodGet, "/api/users/by-telegram/4242", nil, adminToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &summary)
		assert.Equal(t, anna.ID, summary.ID)
	})
}
