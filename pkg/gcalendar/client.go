package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	dateLayout        = "2006-01-02"
	defaultCalendarID = "primary"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials
// JSON file. tokenPath is only read for OAuth desktop credentials.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON creates a Calendar client from a Service
// Account key, or from OAuth desktop credentials plus the token stored at
// tokenPath by scripts/gcal-auth.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	oauthConfig, oauthErr := google.ConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if oauthErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	tokenData, tokenErr := os.ReadFile(tokenPath)
	if tokenErr != nil {
		return nil, fmt.Errorf("OAuth credentials need a token at %q, run scripts/gcal-auth first: %w", tokenPath, tokenErr)
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", tokenPath, jsonErr)
	}

	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}

	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// FindByKey looks up an event tagged with the dashboard key property.
func (c *Client) FindByKey(ctx context.Context, calendarID, key string) (*Event, error) {
	res, err := c.service.Events.List(calendarIDOrDefault(calendarID)).
		PrivateExtendedProperty(fmt.Sprintf("%s=%s", KeyProperty, key)).
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	if len(res.Items) == 0 {
		return nil, nil
	}
	return toEvent(res.Items[0]), nil
}

// CreateAllDayEvent inserts an all-day event tagged with req.Key.
func (c *Client) CreateAllDayEvent(ctx context.Context, req AllDayEventRequest) (*Event, error) {
	day := req.Day.Format(dateLayout)
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start:       &calendar.EventDateTime{Date: day},
		End:         &calendar.EventDateTime{Date: req.Day.AddDate(0, 0, 1).Format(dateLayout)},
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{KeyProperty: req.Key},
		},
	}

	created, err := c.service.Events.Insert(calendarIDOrDefault(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return toEvent(created), nil
}

func toEvent(e *calendar.Event) *Event {
	out := &Event{ID: e.Id, Summary: e.Summary, HtmlLink: e.HtmlLink}
	if e.Start != nil {
		out.Day = e.Start.Date
	}
	return out
}

func calendarIDOrDefault(id string) string {
	if id == "" {
		return defaultCalendarID
	}
	return id
}

var _ ICalendar = (*Client)(nil)
