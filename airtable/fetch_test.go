package airtable

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/stayops/airtable-booking-gateway/types"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *FetchClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	fetchClient := NewFetchClient("test-key", 100, logrus.New())
	fetchClient.BaseURL = server.URL
	return fetchClient
}

func TestFetchClient_Fetch_SendsQueryAndAuth(t *testing.T) {
	var gotPath, gotAuth string
	var gotQuery map[string][]string
	fetchClient := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"records": [{"id": "rec1", "fields": {"Name": "John"}}]}`))
	})

	records, err := fetchClient.Fetch(context.Background(), "appBase", "Bookings", FetchOptions{
		View:            "Grid view",
		MaxRecords:      10,
		FilterByFormula: "SEARCH('an', LOWER({Name}))",
		Fields:          []string{"Name", "Email"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "/appBase/Bookings", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, []string{"10"}, gotQuery["maxRecords"])
	assert.Equal(t, []string{"Grid view"}, gotQuery["view"])
	assert.Equal(t, []string{"SEARCH('an', LOWER({Name}))"}, gotQuery["filterByFormula"])
	assert.Equal(t, []string{"Name", "Email"}, gotQuery["fields[]"])
	assert.Len(t, records, 1)
	assert.Equal(t, "rec1", records[0].ID)
	assert.Equal(t, "John", records[0].Fields["Name"])
}

func TestFetchClient_Fetch_ClampsMaxRecords(t *testing.T) {
	var gotMaxRecords string
	fetchClient := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMaxRecords = r.URL.Query().Get("maxRecords")
		w.Write([]byte(`{"records": []}`))
	})

	_, err := fetchClient.Fetch(context.Background(), "appBase", "Bookings", FetchOptions{MaxRecords: 500})

	assert.NoError(t, err)
	assert.Equal(t, "100", gotMaxRecords)
}

func TestFetchClient_Fetch_DefaultsMaxRecords(t *testing.T) {
	var gotMaxRecords string
	fetchClient := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMaxRecords = r.URL.Query().Get("maxRecords")
		w.Write([]byte(`{"records": []}`))
	})

	_, err := fetchClient.Fetch(context.Background(), "appBase", "Bookings", FetchOptions{})

	assert.NoError(t, err)
	assert.Equal(t, "100", gotMaxRecords)
}

func TestFetchClient_Fetch_RemoteErrorWithMessage(t *testing.T) {
	fetchClient := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error": {"type": "INVALID_FILTER_BY_FORMULA", "message": "The formula for filtering records is invalid"}}`))
	})

	records, err := fetchClient.Fetch(context.Background(), "appBase", "Bookings", FetchOptions{})

	assert.Nil(t, records)
	var remoteError *types.RemoteError
	assert.ErrorAs(t, err, &remoteError)
	assert.Equal(t, http.StatusUnprocessableEntity, remoteError.Status)
	assert.Equal(t, "The formula for filtering records is invalid", remoteError.Message)
}

func TestFetchClient_Fetch_RemoteErrorWithCodeOnly(t *testing.T) {
	fetchClient := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "NOT_FOUND"}`))
	})

	_, err := fetchClient.Fetch(context.Background(), "appBase", "Missing", FetchOptions{})

	var remoteError *types.RemoteError
	assert.ErrorAs(t, err, &remoteError)
	assert.Equal(t, http.StatusNotFound, remoteError.Status)
	assert.Equal(t, "NOT_FOUND", remoteError.Message)
}

func TestFetchClient_Fetch_RemoteErrorEmptyBody(t *testing.T) {
	fetchClient := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := fetchClient.Fetch(context.Background(), "appBase", "Bookings", FetchOptions{})

	var remoteError *types.RemoteError
	assert.ErrorAs(t, err, &remoteError)
	assert.Equal(t, http.StatusBadGateway, remoteError.Status)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), remoteError.Message)
}

func TestNewFetchClient_DefaultsMaxRecords(t *testing.T) {
	fetchClient := NewFetchClient("key", 0, logrus.New())
	assert.Equal(t, DefaultMaxRecords, fetchClient.MaxRecords)
	assert.Equal(t, DefaultBaseURL, fetchClient.BaseURL)
}
