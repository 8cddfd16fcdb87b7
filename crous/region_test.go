package crous_test

import (
	"context"
	"encoding/json"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"github.com/kbukum/crousapi/crous"
	"github.com/kbukum/crousapi/crous/croustest"
	"github.com/kbukum/crousapi/errors"
	"github.com/kbukum/crousapi/version"
)

func TestRegions_List(t *testing.T) {
	client, srv := newTestClient(t)
	srv.SetRegions(sampleRegions)

	regions, err := client.Regions.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(regions) != len(sampleRegions) {
		t.Fatalf("expected %d regions, got %d", len(sampleRegions), len(regions))
	}
	for i, want := range sampleRegions {
		got := regions[i]
		if got.ID() != want.ID || got.Code() != want.Code || got.Name() != want.Name {
			t.Errorf("region %d: expected %+v, got id=%d code=%q name=%q", i, want, got.ID(), got.Code(), got.Name())
		}
	}
	if srv.RequestCount() != 1 {
		t.Errorf("expected exactly 1 request, got %d", srv.RequestCount())
	}
}

func TestRegions_ListEmpty(t *testing.T) {
	client, srv := newTestClient(t)
	srv.SetRegions([]croustest.Region{})

	regions, err := client.Regions.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(regions) != 0 {
		t.Errorf("expected no regions, got %d", len(regions))
	}
}

func TestRegions_FindByID(t *testing.T) {
	client, srv := newTestClient(t)
	srv.SetRegions(sampleRegions)

	region, err := client.Regions.FindByID(context.Background(), 2)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if region.ID() != 2 || region.Name() != "Lille" {
		t.Errorf("expected the middle region, got id=%d name=%q", region.ID(), region.Name())
	}
	if srv.RequestCount() != 1 {
		t.Errorf("expected exactly 1 request, got %d", srv.RequestCount())
	}
}

func TestRegions_FindByID_FirstMatch(t *testing.T) {
	client, srv := newTestClient(t)
	srv.SetRegions([]croustest.Region{
		{ID: 4, Code: "a", Name: "first"},
		{ID: 4, Code: "b", Name: "second"},
	})

	region, err := client.Regions.FindByID(context.Background(), 4)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if region.Name() != "first" {
		t.Errorf("expected first match, got %q", region.Name())
	}
}

func TestRegions_FindByID_NotFound(t *testing.T) {
	client, srv := newTestClient(t)
	srv.SetRegions(sampleRegions)

	_, err := client.Regions.FindByID(context.Background(), 99)
	appErr := requireCode(t, err, errors.ErrCodeNotFound)
	if appErr.Message != "Region with id 99 not found" {
		t.Errorf("unexpected message %q", appErr.Message)
	}
	if !errors.IsNotFound(err) {
		t.Error("expected IsNotFound")
	}
	if appErr.Details["key"] != 99 {
		t.Errorf("expected key detail 99, got %v", appErr.Details["key"])
	}
}

func TestRegions_FetchFailure(t *testing.T) {
	tests := []struct {
		status int
		reason string
	}{
		{http.StatusInternalServerError, "server_error"},
		{http.StatusServiceUnavailable, "server_error"},
		{http.StatusNotFound, "not_found"},
		{http.StatusCreated, "unexpected_status"},
		{http.StatusNoContent, "unexpected_status"},
	}

	for _, tt := range tests {
		status := tt.status
		t.Run(http.StatusText(status), func(t *testing.T) {
			client, srv := newTestClient(t)
			srv.SetRegions(sampleRegions)
			srv.FailWith("/regions", status)

			_, err := client.Regions.List(context.Background())
			appErr := requireCode(t, err, errors.ErrCodeFetchFailed)
			if appErr.Message != "Failed to fetch regions" {
				t.Errorf("unexpected message %q", appErr.Message)
			}
			if appErr.Details["status"] != status {
				t.Errorf("expected status detail %d, got %v", status, appErr.Details["status"])
			}
			if appErr.Details["reason"] != tt.reason {
				t.Errorf("expected reason %q, got %v", tt.reason, appErr.Details["reason"])
			}

			_, err = client.Regions.FindByID(context.Background(), 1)
			requireCode(t, err, errors.ErrCodeFetchFailed)

			if srv.RequestCount() != 2 {
				t.Errorf("expected one request per call, got %d", srv.RequestCount())
			}
		})
	}
}

func TestRegions_Unreachable(t *testing.T) {
	srv := croustest.NewServer()
	url := srv.URL()
	srv.Close()

	client, err := crous.New(crous.Config{BaseURL: url})
	if err != nil {
		t.Fatal(err)
	}
	defer client.Close()

	_, err = client.Regions.List(context.Background())
	appErr := requireCode(t, err, errors.ErrCodeFetchFailed)
	if appErr.Details["status"] != 0 {
		t.Errorf("expected status 0 for transport failure, got %v", appErr.Details["status"])
	}
	if appErr.Cause == nil {
		t.Error("expected transport error as cause")
	}
	if appErr.Details["reason"] != "connection" {
		t.Errorf("expected reason connection, got %v", appErr.Details["reason"])
	}
}

func TestRegions_ContextCanceled(t *testing.T) {
	client, srv := newTestClient(t)
	srv.SetRegions(sampleRegions)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Regions.List(ctx)
	appErr := requireCode(t, err, errors.ErrCodeFetchFailed)
	if appErr.Details["reason"] != "timeout" {
		t.Errorf("expected reason timeout, got %v", appErr.Details["reason"])
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled in the chain, got %v", err)
	}
}

func TestRegions_MalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"object instead of array", `{"id":1,"code":"a","name":"b"}`},
		{"null body", `null`},
		{"empty body", ``},
		{"invalid json", `[{"id":1,`},
		{"missing name", `[{"id":1,"code":"a"}]`},
		{"null id", `[{"id":null,"code":"a","name":"b"}]`},
		{"string id", `[{"id":"1","code":"a","name":"b"}]`},
		{"null element", `[null]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, srv := newTestClient(t)
			srv.SetRegions(json.RawMessage(tt.body))

			_, err := client.Regions.List(context.Background())
			appErr := requireCode(t, err, errors.ErrCodeMalformedResponse)
			if appErr.Cause == nil {
				t.Error("expected decode or validation cause")
			}

			_, err = client.Regions.FindByID(context.Background(), 1)
			requireCode(t, err, errors.ErrCodeMalformedResponse)
		})
	}
}

func TestRegions_MalformedNamesField(t *testing.T) {
	client, srv := newTestClient(t)
	srv.SetRegions(json.RawMessage(`[{"id":1,"code":"a","name":"b"},{"id":2,"code":"c"}]`))

	_, err := client.Regions.List(context.Background())
	requireCode(t, err, errors.ErrCodeMalformedResponse)
	if !strings.Contains(err.Error(), "[1].name") {
		t.Errorf("expected offending field in error, got %v", err)
	}
}

func TestRegions_MalformedIsNotInvalidInput(t *testing.T) {
	client, srv := newTestClient(t)
	srv.SetRegions(json.RawMessage(`[{"id":1,"code":"x"}]`))

	_, err := client.Regions.List(context.Background())
	appErr := requireCode(t, err, errors.ErrCodeMalformedResponse)
	if errors.Is(err, &errors.AppError{Code: errors.ErrCodeInvalidInput}) {
		t.Errorf("server payload must not match INVALID_INPUT: %v", err)
	}
	if errors.IsInvalidInput(err) {
		t.Error("expected IsInvalidInput to be false")
	}
	if appErr.Details["fields"] == nil {
		t.Error("expected field errors in details")
	}
}

func TestRegions_Idempotent(t *testing.T) {
	client, srv := newTestClient(t)
	srv.SetRegions(sampleRegions)

	first, err := client.Regions.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	second, err := client.Regions.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected structurally identical results, got %v and %v", first, second)
	}
	if &first[0] == &second[0] {
		t.Error("expected distinct result instances")
	}
	if srv.RequestCount() != 2 {
		t.Errorf("expected no caching between calls, got %d requests", srv.RequestCount())
	}
}

func TestRegions_UserAgent(t *testing.T) {
	client, srv := newTestClient(t)
	srv.SetRegions(sampleRegions)

	if _, err := client.Regions.List(context.Background()); err != nil {
		t.Fatal(err)
	}
	reqs := srv.Requests()
	if len(reqs) != 1 {
		t.Fatalf("expected 1 request, got %d", len(reqs))
	}
	want := "CrousApi/" + version.Version + " " + version.RepositoryURL
	if reqs[0].UserAgent != want {
		t.Errorf("expected User-Agent %q, got %q", want, reqs[0].UserAgent)
	}
	if reqs[0].Method != http.MethodGet || reqs[0].Path != "/regions" {
		t.Errorf("unexpected request %+v", reqs[0])
	}
}

func TestRegion_MarshalJSON(t *testing.T) {
	client, srv := newTestClient(t)
	srv.SetRegions(sampleRegions[:1])

	regions, err := client.Regions.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(regions[0])
	if err != nil {
		t.Fatal(err)
	}
	want := `{"id":1,"code":"bfc","name":"Bourgogne-Franche-Comté"}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}
}
