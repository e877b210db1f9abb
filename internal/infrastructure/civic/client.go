package civic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"purple-insta/internal/domain/entities"
)

// LookupError reports a failed representatives lookup: transport failure,
// non-success status, or a response the API contract says cannot happen.
type LookupError struct {
	Reason string
	Err    error
}

func (e *LookupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("representatives lookup failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("representatives lookup failed: %s", e.Reason)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Client calls the Google Civic Information representatives endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}
}

type office struct {
	Name            string `json:"name"`
	OfficialIndices []int  `json:"officialIndices"`
}

type official struct {
	Name     string   `json:"name"`
	Party    string   `json:"party"`
	Phones   []string `json:"phones"`
	Urls     []string `json:"urls"`
	Emails   []string `json:"emails"`
	PhotoUrl string   `json:"photoUrl"`
}

type representativesResponse struct {
	Offices   []office   `json:"offices"`
	Officials []official `json:"officials"`
}

// Representatives issues one GET for the given zip code and flattens the
// offices/officials pair into one record per official, in office order then
// officialIndices order. There is no retry.
func (c *Client) Representatives(ctx context.Context, zipCode string) ([]entities.Representative, error) {
	query := url.Values{}
	query.Set("key", c.apiKey)
	query.Set("address", zipCode)
	apiURL := fmt.Sprintf("%s/civicinfo/v2/representatives?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, &LookupError{Reason: "building request", Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &LookupError{Reason: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &LookupError{Reason: fmt.Sprintf("status %d: %s", resp.StatusCode, string(body))}
	}

	var payload representativesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &LookupError{Reason: "decoding response", Err: err}
	}

	return flatten(&payload)
}

func flatten(payload *representativesResponse) ([]entities.Representative, error) {
	reps := make([]entities.Representative, 0, len(payload.Officials))
	for _, off := range payload.Offices {
		for _, idx := range off.OfficialIndices {
			if idx < 0 || idx >= len(payload.Officials) {
				return nil, &LookupError{Reason: fmt.Sprintf("official index %d out of range", idx)}
			}
			ofc := payload.Officials[idx]
			reps = append(reps, entities.Representative{
				Name:     ofc.Name,
				Office:   off.Name,
				Party:    ofc.Party,
				Phones:   ofc.Phones,
				Urls:     ofc.Urls,
				Emails:   ofc.Emails,
				PhotoUrl: ofc.PhotoUrl,
			})
		}
	}
	return reps, nil
}
