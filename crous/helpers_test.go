package crous_test

import (
	"testing"

	"github.com/kbukum/crousapi/crous"
	"github.com/kbukum/crousapi/crous/croustest"
	"github.com/kbukum/crousapi/errors"
)

func newTestClient(t *testing.T, opts ...crous.Option) (*crous.Client, *croustest.Server) {
	t.Helper()
	srv := croustest.NewServer()
	t.Cleanup(srv.Close)

	client, err := crous.New(crous.Config{BaseURL: srv.URL()}, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(client.Close)
	return client, srv
}

func requireCode(t *testing.T, err error, code errors.ErrorCode) *errors.AppError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected *errors.AppError, got %T: %v", err, err)
	}
	if appErr.Code != code {
		t.Fatalf("expected code %s, got %s (%v)", code, appErr.Code, err)
	}
	return appErr
}

var sampleRegions = []croustest.Region{
	{ID: 1, Code: "bfc", Name: "Bourgogne-Franche-Comté"},
	{ID: 2, Code: "lil", Name: "Lille"},
	{ID: 3, Code: "ly", Name: "Lyon"},
}
