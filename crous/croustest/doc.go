// Package croustest provides an in-process fake of the CROUS menu service.
//
// The fake is a gin engine behind an httptest.Server. Tests load fixtures,
// optionally force status codes, point a crous.Client at URL(), then assert
// on the recorded requests.
//
//	srv := croustest.NewServer()
//	defer srv.Close()
//	srv.SetRegions([]croustest.Region{{ID: 1, Code: "lil", Name: "Lille"}})
//
//	client, _ := crous.New(crous.Config{BaseURL: srv.URL()})
//	regions, _ := client.Regions.List(ctx)
//
// Payloads are encoded as JSON unless they are json.RawMessage or []byte,
// which are served verbatim so malformed bodies can be simulated.
package croustest
