package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/kbukum/crousapi/crous/croustest"
	"github.com/kbukum/crousapi/logger"
)

func writeConfig(t *testing.T, baseURL string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crous.yml")
	content := fmt.Sprintf("base_url: %s\ntimeout: 5s\nlogging:\n  level: error\n", baseURL)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root, a := newRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := a.execute(root)
	return stdout.String(), stderr.String(), err
}

func newFake(t *testing.T) *croustest.Server {
	t.Helper()
	srv := croustest.NewServer()
	t.Cleanup(srv.Close)
	srv.SetRegions([]croustest.Region{{ID: 1, Code: "bfc", Name: "Besançon"}, {ID: 7, Code: "lil", Name: "Lille"}})
	srv.SetRestaurants(7, []croustest.Restaurant{{ID: 12, RegionID: 7, Title: "RU Barrois"}})
	srv.SetMenus(7, 12, []croustest.Menu{
		{ID: 1, RestaurantID: 12, Date: "2024-03-05"},
		{ID: 2, RestaurantID: 12, Date: "2024-03-06"},
	})
	return srv
}

func TestCommands(t *testing.T) {
	srv := newFake(t)
	cfg := writeConfig(t, srv.URL())

	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, out string)
	}{
		{"regions", []string{"regions"}, func(t *testing.T, out string) {
			var got []map[string]any
			if err := json.Unmarshal([]byte(out), &got); err != nil || len(got) != 2 {
				t.Fatalf("unexpected output %q", out)
			}
			if got[1]["name"] != "Lille" {
				t.Errorf("unexpected region %v", got[1])
			}
		}},
		{"region by id", []string{"regions", "--id", "7"}, func(t *testing.T, out string) {
			var got map[string]any
			if err := json.Unmarshal([]byte(out), &got); err != nil || got["code"] != "lil" {
				t.Errorf("unexpected output %q", out)
			}
		}},
		{"restaurants", []string{"restaurants", "--region", "7"}, func(t *testing.T, out string) {
			var got []map[string]any
			if err := json.Unmarshal([]byte(out), &got); err != nil || len(got) != 1 || got[0]["title"] != "RU Barrois" {
				t.Errorf("unexpected output %q", out)
			}
		}},
		{"restaurant by id", []string{"restaurants", "--region", "7", "--id", "12"}, func(t *testing.T, out string) {
			var got map[string]any
			if err := json.Unmarshal([]byte(out), &got); err != nil || got["regionId"] != float64(7) {
				t.Errorf("unexpected output %q", out)
			}
		}},
		{"menus", []string{"menus", "--region", "7", "--restaurant", "12"}, func(t *testing.T, out string) {
			var got []map[string]any
			if err := json.Unmarshal([]byte(out), &got); err != nil || len(got) != 2 {
				t.Errorf("unexpected output %q", out)
			}
		}},
		{"menu by date", []string{"menus", "--region", "7", "--restaurant", "12", "--date", "2024-03-06"}, func(t *testing.T, out string) {
			var got map[string]any
			if err := json.Unmarshal([]byte(out), &got); err != nil || got["id"] != float64(2) {
				t.Errorf("unexpected output %q", out)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, append([]string{"--config", cfg}, tt.args...)...)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			if !strings.HasPrefix(out, "[\n  {") && !strings.HasPrefix(out, "{\n  ") {
				t.Errorf("expected indented JSON, got %q", out)
			}
			tt.check(t, out)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	srv := newFake(t)
	cfg := writeConfig(t, srv.URL())

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown region", []string{"regions", "--id", "99"}, "Region with id 99 not found"},
		{"invalid date", []string{"menus", "--region", "7", "--restaurant", "12", "--date", "2024-13-40"}, "Invalid date format"},
		{"missing menu", []string{"menus", "--region", "7", "--restaurant", "12", "--date", "2024-03-07"}, "Menu for date 2024-03-07 not found"},
		{"fetch failure", []string{"restaurants", "--region", "3"}, "Failed to fetch restaurants"},
		{"missing required flag", []string{"restaurants"}, "region"},
		{"exclusive flags", []string{"menus", "--region", "7", "--restaurant", "12", "--date", "2024-03-05", "--today"}, "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, stderr, err := run(t, append([]string{"--config", cfg}, tt.args...)...)
			if err == nil {
				t.Fatalf("expected error, got output %q", out)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
			if !strings.Contains(stderr, tt.wantErr) {
				t.Errorf("expected stderr to contain %q, got %q", tt.wantErr, stderr)
			}
			if out != "" {
				t.Errorf("expected no stdout, got %q", out)
			}
		})
	}
}

func TestMissingConfigFile(t *testing.T) {
	_, _, err := run(t, "--config", filepath.Join(t.TempDir(), "absent.yml"), "regions")
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestTeardownAfterFailure(t *testing.T) {
	var mu sync.Mutex
	exports := map[string]int{}
	collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		exports[r.URL.Path]++
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer collector.Close()

	srv := newFake(t)
	srv.FailWith("/regions", http.StatusInternalServerError)
	path := filepath.Join(t.TempDir(), "crous.yml")
	content := fmt.Sprintf("base_url: %s\nlogging:\n  level: error\ntelemetry:\n  endpoint: %s\n  insecure: true\n",
		srv.URL(), strings.TrimPrefix(collector.URL, "http://"))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	root, a := newRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", path, "regions"})
	if err := a.execute(root); err == nil {
		t.Fatal("expected fetch failure")
	}

	if a.client != nil || a.shutdown != nil {
		t.Error("expected client and telemetry to be torn down")
	}
	mu.Lock()
	defer mu.Unlock()
	if exports["/v1/traces"] == 0 {
		t.Errorf("expected the failed request span to be flushed, got exports %v", exports)
	}
}

func TestCommandLogLines(t *testing.T) {
	var buf bytes.Buffer
	logger.SetGlobalLogger(logger.NewWithWriter(&logger.Config{Level: "debug", Format: "json"}, "crous", &buf))
	defer logger.SetGlobalLogger(nil)

	// Setup fails before replacing the global logger.
	if _, _, err := run(t, "--config", filepath.Join(t.TempDir(), "absent.yml"), "regions"); err == nil {
		t.Fatal("expected error for missing config file")
	}
	if _, _, err := run(t, "version"); err != nil {
		t.Fatalf("execute: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %q", buf.String())
	}
	var failed, finished map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &failed); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &finished); err != nil {
		t.Fatal(err)
	}

	if failed["message"] != "command failed" || failed[logger.FieldOperation] != "regions" {
		t.Errorf("unexpected failure line %v", failed)
	}
	if _, ok := failed[logger.FieldError]; !ok {
		t.Errorf("expected error field in %v", failed)
	}
	if finished["message"] != "command finished" || finished[logger.FieldOperation] != "version" {
		t.Errorf("unexpected success line %v", finished)
	}
	if _, ok := finished[logger.FieldDuration]; !ok {
		t.Errorf("expected duration field in %v", finished)
	}
	if finished[logger.FieldComponent] != "cli" {
		t.Errorf("expected cli component, got %v", finished[logger.FieldComponent])
	}
}

func TestVersionCommand(t *testing.T) {
	// version must work without any configuration.
	out, _, err := run(t, "--config", filepath.Join(t.TempDir(), "absent.yml"), "version")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	var info map[string]any
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("unexpected output %q: %v", out, err)
	}
	if info["product"] != "CrousApi" {
		t.Errorf("unexpected product %v", info["product"])
	}
}
