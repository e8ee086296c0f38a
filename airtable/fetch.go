package airtable

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/stayops/airtable-booking-gateway/types"
)

// DefaultBaseURL is the public Airtable REST endpoint.
const DefaultBaseURL = "https://api.airtable.com/v0"

// DefaultMaxRecords matches the Airtable per-request page size.
const DefaultMaxRecords = 100

// FetchOptions bound a single table query. All fields are optional; Fields is
// a selection hint for the remote store, not a security boundary.
type FetchOptions struct {
	View            string
	MaxRecords      int
	FilterByFormula string
	Fields          []string
}

type IFetchClient interface {
	Fetch(ctx context.Context, baseID string, tableName string, options FetchOptions) ([]types.Record, error)
}

// FetchClient executes bounded read queries against the Airtable HTTP API.
// Calls are synchronous and single-attempt: no retry, no backoff, no
// pagination follow-up.
type FetchClient struct {
	BaseURL    string
	APIKey     string
	MaxRecords int
	HTTPClient *http.Client
	Logger     *logrus.Logger
}

func NewFetchClient(apiKey string, maxRecords int, logger *logrus.Logger) *FetchClient {
	if maxRecords <= 0 {
		maxRecords = DefaultMaxRecords
	}
	return &FetchClient{
		BaseURL:    DefaultBaseURL,
		APIKey:     apiKey,
		MaxRecords: maxRecords,
		HTTPClient: http.DefaultClient,
		Logger:     logger,
	}
}

func (fetchClient *FetchClient) Fetch(ctx context.Context, baseID string, tableName string, options FetchOptions) ([]types.Record, error) {
	maxRecords := fetchClient.MaxRecords
	if options.MaxRecords > 0 && options.MaxRecords < maxRecords {
		maxRecords = options.MaxRecords
	}

	query := url.Values{}
	query.Set("maxRecords", strconv.Itoa(maxRecords))
	if options.View != "" {
		query.Set("view", options.View)
	}
	if options.FilterByFormula != "" {
		query.Set("filterByFormula", options.FilterByFormula)
	}
	for _, field := range options.Fields {
		query.Add("fields[]", field)
	}

	requestURL := fmt.Sprintf("%s/%s/%s?%s", fetchClient.BaseURL, url.PathEscape(baseID), url.PathEscape(tableName), query.Encode())
	fetchClient.Logger.Debugf("Fetching table %s from base %s", tableName, baseID)
	fetchClient.Logger.Tracef("Request URL: %s", requestURL)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Authorization", "Bearer "+fetchClient.APIKey)

	response, err := fetchClient.HTTPClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, &types.RemoteError{
			Status:  response.StatusCode,
			Message: remoteErrorMessage(response.StatusCode, body),
		}
	}

	var recordList struct {
		Records []types.Record `json:"records"`
	}
	if err := json.Unmarshal(body, &recordList); err != nil {
		return nil, err
	}

	fetchClient.Logger.Debugf("Fetched %d records from table %s", len(recordList.Records), tableName)
	return recordList.Records, nil
}

// remoteErrorMessage extracts the message from an Airtable error body, which
// is either {"error": {"type", "message"}} or {"error": "CODE"}.
func remoteErrorMessage(status int, body []byte) string {
	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Error) > 0 {
		var detailed struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(envelope.Error, &detailed); err == nil && detailed.Message != "" {
			return detailed.Message
		}
		var code string
		if err := json.Unmarshal(envelope.Error, &code); err == nil && code != "" {
			return code
		}
	}
	if trimmed := strings.TrimSpace(string(body)); trimmed != "" {
		return trimmed
	}
	return http.StatusText(status)
}
