package croustest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

// BasePath is the path prefix served by the fake, mirroring the /v1 prefix
// of the real service.
const BasePath = "/v1"

// RecordedRequest is one request received by the fake.
type RecordedRequest struct {
	Method    string
	Path      string // relative to URL(), e.g. "/regions/7/restaurants"
	UserAgent string
}

type menuKey struct {
	regionID     int
	restaurantID int
}

// Server is a fake CROUS service. It is safe for concurrent use.
type Server struct {
	httpServer *httptest.Server
	engine     *gin.Engine

	mu          sync.Mutex
	regions     any
	restaurants map[int]any
	menus       map[menuKey]any
	failures    map[string]int
	requests    []RecordedRequest
}

// NewServer starts a fake service on a loopback port.
func NewServer() *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		engine:      gin.New(),
		restaurants: make(map[int]any),
		menus:       make(map[menuKey]any),
		failures:    make(map[string]int),
	}

	s.engine.Use(s.record(), s.injectFailures())

	v1 := s.engine.Group(BasePath)
	v1.GET("/regions", s.handleRegions)
	v1.GET("/regions/:regionId/restaurants", s.handleRestaurants)
	v1.GET("/regions/:regionId/restaurants/:restaurantId/menus", s.handleMenus)

	s.httpServer = httptest.NewServer(s.engine)
	return s
}

// URL returns the base URL to configure a client with.
func (s *Server) URL() string {
	return s.httpServer.URL + BasePath
}

// Close shuts the server down.
func (s *Server) Close() {
	s.httpServer.Close()
}

// SetRegions sets the payload served at /regions.
func (s *Server) SetRegions(payload any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regions = payload
}

// SetRestaurants sets the payload served at /regions/{regionID}/restaurants.
func (s *Server) SetRestaurants(regionID int, payload any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restaurants[regionID] = payload
}

// SetMenus sets the payload served at
// /regions/{regionID}/restaurants/{restaurantID}/menus.
func (s *Server) SetMenus(regionID, restaurantID int, payload any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menus[menuKey{regionID, restaurantID}] = payload
}

// FailWith makes every request to path (relative to URL()) answer status
// with an empty JSON array body.
func (s *Server) FailWith(path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[path] = status
}

// Requests returns a copy of the requests received so far.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// RequestCount returns the number of requests received so far.
func (s *Server) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// Reset clears fixtures, failures and recorded requests.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regions = nil
	s.restaurants = make(map[int]any)
	s.menus = make(map[menuKey]any)
	s.failures = make(map[string]int)
	s.requests = nil
}

func (s *Server) record() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method:    c.Request.Method,
			Path:      relativePath(c.Request.URL.Path),
			UserAgent: c.Request.UserAgent(),
		})
		s.mu.Unlock()
		c.Next()
	}
}

func (s *Server) injectFailures() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		status, ok := s.failures[relativePath(c.Request.URL.Path)]
		s.mu.Unlock()
		if ok {
			// The body looks valid on purpose: clients must not parse it.
			c.Data(status, "application/json", []byte("[]"))
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) handleRegions(c *gin.Context) {
	s.mu.Lock()
	payload := s.regions
	s.mu.Unlock()
	serve(c, payload)
}

func (s *Server) handleRestaurants(c *gin.Context) {
	regionID, ok := intParam(c, "regionId")
	if !ok {
		return
	}
	s.mu.Lock()
	payload := s.restaurants[regionID]
	s.mu.Unlock()
	serve(c, payload)
}

func (s *Server) handleMenus(c *gin.Context) {
	regionID, ok := intParam(c, "regionId")
	if !ok {
		return
	}
	restaurantID, ok := intParam(c, "restaurantId")
	if !ok {
		return
	}
	s.mu.Lock()
	payload := s.menus[menuKey{regionID, restaurantID}]
	s.mu.Unlock()
	serve(c, payload)
}

func serve(c *gin.Context, payload any) {
	switch p := payload.(type) {
	case nil:
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case json.RawMessage:
		c.Data(http.StatusOK, "application/json", p)
	case []byte:
		c.Data(http.StatusOK, "application/json", p)
	default:
		body, err := json.Marshal(p)
		if err != nil {
			c.String(http.StatusInternalServerError, fmt.Sprintf("encode fixture: %v", err))
			return
		}
		c.Data(http.StatusOK, "application/json", body)
	}
}

func intParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return v, true
}

func relativePath(p string) string {
	return strings.TrimPrefix(p, BasePath)
}
