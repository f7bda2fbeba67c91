// Package remeha provides a client for the Remeha Home cloud API and the records it returns.
package remeha

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
)

const (
	DefaultAPIURL          = "https://api.bdrthermea.net/Mobile/api"
	DefaultTokenURL        = "https://remehalogin.bdrthermea.net/bdrb2cprod.onmicrosoft.com/oauth2/v2.0/token?p=B2C_1A_RPSignUpSignInNewRoomV3.1"
	DefaultClientID        = "6ce007c6-0628-419e-88f4-bee2e6418eec"
	DefaultSubscriptionKey = "df605c5470d846fc91e848b1cc653ddf"

	apiScope  = "openid https://bdrb2cprod.onmicrosoft.com/iotdevice/user_impersonation offline_access"
	apiLayout = "2006-01-02T15:04:05.000Z"
)

// firstConsumptionDate is the start of the lifetime consumption window.
var firstConsumptionDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

//go:generate mockery --name DataSource

// DataSource is the set of Remeha Home calls needed to build a snapshot.
type DataSource interface {
	GetDashboard(ctx context.Context) (Dashboard, error)
	GetTechnicalInfo(ctx context.Context, applianceID string) (TechnicalInfo, error)
	GetTodayConsumption(ctx context.Context, applianceID string) (*PowerRecord, error)
	GetLifetimeConsumption(ctx context.Context, applianceID string) (PowerRecord, error)
	GetYearConsumption(ctx context.Context, applianceID string) (PowerRecord, error)
	GetMonthConsumption(ctx context.Context, applianceID string) (PowerRecord, error)
}

var _ DataSource = &Client{}

// Config contains the parameters to connect to the Remeha Home API.
type Config struct {
	APIURL          string
	TokenURL        string
	ClientID        string
	SubscriptionKey string
	RefreshToken    string
}

// Client calls the Remeha Home API. Access tokens are obtained, and refreshed, from the configured refresh token.
type Client struct {
	HTTPClient      *http.Client
	APIURL          string
	SubscriptionKey string
	// Now returns the current time. Consumption windows are computed in its location.
	Now func() time.Time
}

// New returns a Client for the provided configuration. All calls, including the token calls, go through transport.
// If transport is nil, http.DefaultTransport is used.
func New(ctx context.Context, cfg Config, transport http.RoundTripper) *Client {
	if transport == nil {
		transport = http.DefaultTransport
	}
	oauthConfig := oauth2.Config{
		ClientID: cfg.ClientID,
		Endpoint: oauth2.Endpoint{TokenURL: cfg.TokenURL, AuthStyle: oauth2.AuthStyleInParams},
		Scopes:   []string{apiScope},
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Transport: transport})
	tokenSource := oauthConfig.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})

	return &Client{
		HTTPClient:      &http.Client{Transport: &oauth2.Transport{Source: tokenSource, Base: transport}},
		APIURL:          cfg.APIURL,
		SubscriptionKey: cfg.SubscriptionKey,
		Now:             time.Now,
	}
}

// GetDashboard returns all appliances, with their climate and hot water zones.
func (c *Client) GetDashboard(ctx context.Context) (Dashboard, error) {
	var dashboard Dashboard
	err := c.get(ctx, "/homes/dashboard", nil, &dashboard)
	return dashboard, err
}

// GetTechnicalInfo returns the static information of an appliance.
func (c *Client) GetTechnicalInfo(ctx context.Context, applianceID string) (TechnicalInfo, error) {
	var info TechnicalInfo
	err := c.get(ctx, "/appliances/"+url.PathEscape(applianceID)+"/technicaldetails", nil, &info)
	return info, err
}

// GetTodayConsumption returns the consumption of the current day. If the API has no data for today, it returns nil.
func (c *Client) GetTodayConsumption(ctx context.Context, applianceID string) (*PowerRecord, error) {
	today := startOfDay(c.now())
	records, err := c.getConsumption(ctx, applianceID, "daily", today, today.AddDate(0, 0, 1))
	if err != nil || len(records) == 0 {
		return nil, err
	}
	total := sum(records)
	return &total, nil
}

// GetLifetimeConsumption returns the consumption of the appliance up to (but not including) today.
func (c *Client) GetLifetimeConsumption(ctx context.Context, applianceID string) (PowerRecord, error) {
	return c.getConsumptionTotal(ctx, applianceID, "yearly", firstConsumptionDate.In(c.now().Location()))
}

// GetYearConsumption returns the consumption of the current year, up to (but not including) today.
func (c *Client) GetYearConsumption(ctx context.Context, applianceID string) (PowerRecord, error) {
	now := c.now()
	return c.getConsumptionTotal(ctx, applianceID, "yearly", time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()))
}

// GetMonthConsumption returns the consumption of the current month, up to (but not including) today.
func (c *Client) GetMonthConsumption(ctx context.Context, applianceID string) (PowerRecord, error) {
	now := c.now()
	return c.getConsumptionTotal(ctx, applianceID, "monthly", time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()))
}

func (c *Client) getConsumptionTotal(ctx context.Context, applianceID, resolution string, start time.Time) (PowerRecord, error) {
	end := startOfDay(c.now())
	if !end.After(start) {
		// first day of the window: nothing recorded yet
		return ZeroPowerRecord(), nil
	}
	records, err := c.getConsumption(ctx, applianceID, resolution, start, end)
	if err != nil {
		return PowerRecord{}, err
	}
	return sum(records), nil
}

type consumptionResponse struct {
	Data []PowerRecord `json:"data"`
}

func (c *Client) getConsumption(ctx context.Context, applianceID, resolution string, start, end time.Time) ([]PowerRecord, error) {
	args := url.Values{
		"startDate": []string{start.UTC().Format(apiLayout)},
		"endDate":   []string{end.UTC().Format(apiLayout)},
	}
	var response consumptionResponse
	err := c.get(ctx, "/appliances/"+url.PathEscape(applianceID)+"/energyconsumption/"+resolution, args, &response)
	return response.Data, err
}

func (c *Client) get(ctx context.Context, path string, args url.Values, target any) error {
	reqURL := c.APIURL + path
	if len(args) > 0 {
		reqURL += "?" + args.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("remeha: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.SubscriptionKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return fmt.Errorf("remeha: token: %w: %w", ErrUnauthorized, err)
		}
		return fmt.Errorf("remeha: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("remeha: %s: %w", path, ErrUnauthorized)
	case resp.StatusCode == http.StatusNoContent:
		return nil
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if err = json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("remeha: decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sum(records []PowerRecord) PowerRecord {
	total := ZeroPowerRecord()
	for _, record := range records {
		total = total.Add(record)
	}
	return total
}
