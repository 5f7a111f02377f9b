package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"syllabus-tracker/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestNewClient(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`
	dir := t.TempDir()
	tokenPath := filepath.Join(dir, "token.json")

	t.Run("Broken credentials", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), tokenPath)
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Installed app without token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), filepath.Join(dir, "missing.json"))
		if err == nil {
			t.Errorf("expected missing token error")
		}
	})

	t.Run("Installed app with token", func(t *testing.T) {
		os.WriteFile(tokenPath, []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0o600)

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath)
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Installed app bad token", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		os.WriteFile(bad, []byte(`{"broken": true`), 0o600)

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), bad)
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("From file", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), filepath.Join(dir, "nope.json"), tokenPath)
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestCreateAllDayEvent(t *testing.T) {
	var got struct {
		Summary string `json:"summary"`
		Start   struct {
			Date string `json:"date"`
		} `json:"start"`
		End struct {
			Date string `json:"date"`
		} `json:"end"`
		ExtendedProperties struct {
			Private map[string]string `json:"private"`
		} `json:"extendedProperties"`
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
			json.NewDecoder(r.Body).Decode(&got)
			w.Write([]byte(`{"id":"event-123","summary":"HW3","htmlLink":"https://calendar.google.com/event-uri","start":{"date":"2024-12-10"}}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	event, err := client.CreateAllDayEvent(context.Background(), gcalendar.AllDayEventRequest{
		Key:     "k1",
		Summary: "HW3",
		Day:     time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	if event.ID != "event-123" || event.Day != "2024-12-10" {
		t.Errorf("unexpected event: %+v", event)
	}
	if got.Start.Date != "2024-12-10" || got.End.Date != "2024-12-11" {
		t.Errorf("unexpected dates sent: %+v", got)
	}
	if got.ExtendedProperties.Private[gcalendar.KeyProperty] != "k1" {
		t.Errorf("key property not sent: %+v", got.ExtendedProperties)
	}
}

func TestCreateAllDayEventError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.CreateAllDayEvent(context.Background(), gcalendar.AllDayEventRequest{Day: time.Now()})
	if err == nil {
		t.Fatalf("expected create event error")
	}
}

func TestFindByKey(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendar/v3/calendars/primary/events" || r.Method != http.MethodGet {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Query().Get("privateExtendedProperty") == gcalendar.KeyProperty+"=known" {
			w.Write([]byte(`{"items":[{"id":"event-1","summary":"HW3","start":{"date":"2024-12-10"}}]}`))
			return
		}
		w.Write([]byte(`{"items":[]}`))
	})

	event, err := client.FindByKey(context.Background(), "", "known")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event == nil || event.ID != "event-1" {
		t.Errorf("unexpected event: %+v", event)
	}

	event, err = client.FindByKey(context.Background(), "primary", "unknown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event != nil {
		t.Errorf("expected no event, got %+v", event)
	}
}
