package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
	"github.com/Rasel9360/building-management-system-server-site/pkg/jwt"
)

type countingRecorder struct {
	auth map[string]int
}

func (r *countingRecorder) RecordRequest(string, string, int, time.Duration) {}
func (r *countingRecorder) RecordBookingRejection(string)                   {}
func (r *countingRecorder) RecordAuthRejection(reason string) {
	if r.auth == nil {
		r.auth = map[string]int{}
	}
	r.auth[reason]++
}

func newTokens(t *testing.T) *jwt.TokenService {
	t.Helper()
	svc, err := jwt.NewTokenService([]byte("middleware-secret"), time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	return svc
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
	return body
}

func TestAuthMiddleware(t *testing.T) {
	tokens := newTokens(t)

	valid, err := tokens.Issue(domain.Identity{Email: "a@x.com"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	expiredSvc, _ := jwt.NewTokenService([]byte("middleware-secret"), time.Hour)
	expiredSvc.WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) })
	expired, err := expiredSvc.Issue(domain.Identity{Email: "a@x.com"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantReason string
	}{
		{"missing header", "", fiber.StatusUnauthorized, "missing_header"},
		{"wrong scheme", "Basic " + valid, fiber.StatusUnauthorized, "malformed_header"},
		{"empty token", "Bearer ", fiber.StatusUnauthorized, "malformed_header"},
		{"garbage token", "Bearer not-a-token", fiber.StatusUnauthorized, "invalid_token"},
		{"expired token", "Bearer " + expired, fiber.StatusUnauthorized, "invalid_token"},
		{"valid token", "Bearer " + valid, fiber.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &countingRecorder{}
			calls := 0

			app := fiber.New()
			app.Get("/private", AuthMiddleware(tokens, rec), func(c *fiber.Ctx) error {
				calls++
				email, _ := EmailFromLocals(c)
				return c.SendString(email)
			})

			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}

			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			if tt.wantStatus == fiber.StatusOK {
				raw, _ := io.ReadAll(resp.Body)
				if string(raw) != "a@x.com" {
					t.Errorf("handler saw email %q", raw)
				}
				if calls != 1 {
					t.Errorf("handler calls = %d, want 1", calls)
				}
				return
			}

			if calls != 0 {
				t.Errorf("handler ran %d times on a rejected request", calls)
			}
			body := decodeBody(t, resp)
			if body["message"] != "unauthorized access" || body["error"] != true {
				t.Errorf("body = %v", body)
			}
			if rec.auth[tt.wantReason] != 1 {
				t.Errorf("rejections = %v, want one %q", rec.auth, tt.wantReason)
			}
		})
	}
}
