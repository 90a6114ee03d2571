// Package scrapertest provides an in-process fake of the scrape service.
// It speaks both contract versions, records every request it receives
// and lets callers inject failures and latency. Tests mount it on
// httptest servers; the demo command serves it directly.
package scrapertest

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vvraju56/web-scraper/pkg/models"
)

var contentTypes = map[models.DownloadFormat]string{
	models.FormatExcel: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	models.FormatCSV:   "text/csv",
	models.FormatJSON:  "application/json",
}

// Server is a scriptable stand-in for the scrape service.
type Server struct {
	engine *gin.Engine

	mu             sync.Mutex
	requests       []models.ScrapeRequest
	response       models.ScrapeResponse
	legacy         *models.LegacyScrapeResponse
	scrapeStatus   int
	scrapeMessage  string
	latency        time.Duration
	downloadName   string
	downloadData   []byte
	healthFailures int
}

// New creates a fake service that answers every scrape with an empty
// successful typed response until told otherwise.
func New() *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		response: models.ScrapeResponse{Success: true, Data: []models.Contact{}},
	}

	router := gin.New()
	router.POST("/scrape", s.handleScrape)
	router.GET("/health", s.handleHealth)
	router.GET("/download", s.handleDownload)
	router.GET("/download/:format", s.handleDownloadFormat)
	s.engine = router

	return s
}

// Handler exposes the fake as an http.Handler for httptest.NewServer.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Respond sets the typed response returned by POST /scrape.
func (s *Server) Respond(resp models.ScrapeResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.response = resp
	s.legacy = nil
}

// RespondLegacy switches POST /scrape to the legacy contract.
func (s *Server) RespondLegacy(resp models.LegacyScrapeResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.legacy = &resp
}

// FailScrapes makes POST /scrape answer with the given status and error
// envelope. A zero status restores normal behavior.
func (s *Server) FailScrapes(status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scrapeStatus = status
	s.scrapeMessage = message
}

// SetLatency delays every scrape response by d.
func (s *Server) SetLatency(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latency = d
}

// ServeDownload sets the export served by the download routes.
func (s *Server) ServeDownload(name string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.downloadName = name
	s.downloadData = data
}

// FailHealth makes the next n health checks answer 503.
func (s *Server) FailHealth(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.healthFailures = n
}

// Requests returns a copy of every scrape request received so far.
func (s *Server) Requests() []models.ScrapeRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ScrapeRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// ScrapeCount reports how many POST /scrape calls arrived.
func (s *Server) ScrapeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func (s *Server) handleScrape(c *gin.Context) {
	var req models.ScrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.URLs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A list of URLs is required"})
		return
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	status, message := s.scrapeStatus, s.scrapeMessage
	latency := s.latency
	legacy := s.legacy
	resp := s.response
	s.mu.Unlock()

	anyValid := false
	for _, u := range req.URLs {
		if strings.TrimSpace(u) != "" {
			anyValid = true
			break
		}
	}
	if !anyValid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid URLs provided"})
		return
	}

	if latency > 0 {
		time.Sleep(latency)
	}

	if status != 0 {
		c.JSON(status, gin.H{"error": message})
		return
	}

	if legacy != nil {
		c.JSON(http.StatusOK, legacy)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleHealth(c *gin.Context) {
	s.mu.Lock()
	failing := s.healthFailures > 0
	if failing {
		s.healthFailures--
	}
	s.mu.Unlock()

	if failing {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service warming up"})
		return
	}

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleDownload(c *gin.Context) {
	s.serveExport(c, models.FormatExcel)
}

func (s *Server) handleDownloadFormat(c *gin.Context) {
	format, err := models.ParseDownloadFormat(c.Param("format"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	s.serveExport(c, format)
}

func (s *Server) serveExport(c *gin.Context, format models.DownloadFormat) {
	s.mu.Lock()
	name, data := s.downloadName, s.downloadData
	s.mu.Unlock()

	if data == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No data file found"})
		return
	}

	if name == "" {
		name = fmt.Sprintf("scraped_data_%s%s", time.Now().Format("20060102_150405"), format.Ext())
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, contentTypes[format], data)
}
