package logging

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// EnvDevMode controls whether detailed statistics are exposed
const EnvDevMode = "DEV_MODE"

// Statistics represents usage statistics collected by the HTTP server
type Statistics struct {
	UniqueVisitors      map[string]time.Time `json:"uniqueVisitors"`      // IP -> last visit
	AnalysisRequests    int                  `json:"analysisRequests"`    // total analysis requests
	ErrorCount          int                  `json:"errorCount"`          // requests answered with >= 400
	GradeCounts         map[string]int       `json:"gradeCounts"`         // grade -> count
	PopularURLs         map[string]int       `json:"popularUrls"`         // analyzed page URL -> count
	AverageAnalysisTime float64              `json:"averageAnalysisTime"` // milliseconds
	TotalAnalysisTime   float64              `json:"-"`
	RequestCount        int                  `json:"-"`
	LastPersisted       time.Time            `json:"lastPersisted"`

	path  string
	mutex sync.RWMutex
}

// NewStatistics creates statistics persisted at path, loading any previous snapshot
func NewStatistics(path string) *Statistics {
	s := &Statistics{
		UniqueVisitors: make(map[string]time.Time),
		GradeCounts:    make(map[string]int),
		PopularURLs:    make(map[string]int),
		LastPersisted:  time.Now(),
		path:           path,
	}

	if err := s.Load(); err != nil {
		fmt.Printf("Could not load existing statistics: %v\n", err)
	}
	return s
}

// TrackVisitor records a unique visitor
func (s *Statistics) TrackVisitor(ip string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.UniqueVisitors[ip] = time.Now()
}

// cleanURL strips query strings and fragments and drops local addresses
func cleanURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}

	if strings.Contains(u.Host, "localhost") || strings.Contains(u.Host, "127.0.0.1") {
		return ""
	}

	cleaned := u.Scheme + "://" + u.Host
	if u.Path != "" && u.Path != "/" {
		cleaned += u.Path
	}
	return strings.TrimSuffix(cleaned, "/")
}

// TrackAnalysis records a finished analysis request
func (s *Statistics) TrackAnalysis(pageURL, grade string, durationMs float64, hasError bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.AnalysisRequests++

	if cleaned := cleanURL(pageURL); cleaned != "" {
		s.PopularURLs[cleaned]++
	}
	if grade != "" {
		s.GradeCounts[grade]++
	}
	if hasError {
		s.ErrorCount++
	}

	s.TotalAnalysisTime += durationMs
	s.RequestCount++
	s.AverageAnalysisTime = s.TotalAnalysisTime / float64(s.RequestCount)
}

// TotalRequests returns the number of tracked analysis requests
func (s *Statistics) TotalRequests() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.AnalysisRequests
}

// GetUniqueVisitorsCount returns the number of unique visitors in the last 24 hours
func (s *Statistics) GetUniqueVisitorsCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.uniqueVisitors()
}

func (s *Statistics) uniqueVisitors() int {
	count := 0
	cutoff := time.Now().Add(-24 * time.Hour)
	for _, lastVisit := range s.UniqueVisitors {
		if lastVisit.After(cutoff) {
			count++
		}
	}
	return count
}

// GetPopularURLs returns the top n most analyzed URLs
func (s *Statistics) GetPopularURLs(n int) map[string]int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.popularURLs(n)
}

func (s *Statistics) popularURLs(n int) map[string]int {
	type entry struct {
		url   string
		count int
	}
	entries := make([]entry, 0, len(s.PopularURLs))
	for u, c := range s.PopularURLs {
		entries = append(entries, entry{u, c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].url < entries[j].url
	})

	result := make(map[string]int)
	for i := 0; i < len(entries) && i < n; i++ {
		result[entries[i].url] = entries[i].count
	}
	return result
}

// GetErrorRate returns the error rate as a percentage
func (s *Statistics) GetErrorRate() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.errorRate()
}

func (s *Statistics) errorRate() float64 {
	if s.AnalysisRequests == 0 {
		return 0
	}
	return (float64(s.ErrorCount) / float64(s.AnalysisRequests)) * 100
}

// Save persists the statistics to disk
func (s *Statistics) Save() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.path == "" {
		return nil
	}

	s.LastPersisted = time.Now()

	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("could not create statistics file: %w", err)
	}
	defer file.Close()

	if err := json.NewEncoder(file).Encode(s); err != nil {
		return fmt.Errorf("could not encode statistics: %w", err)
	}
	return nil
}

// Load reads previously saved statistics; a missing file is not an error
func (s *Statistics) Load() error {
	if s.path == "" {
		return nil
	}

	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("could not open statistics file: %w", err)
	}
	defer file.Close()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := json.NewDecoder(file).Decode(s); err != nil {
		return fmt.Errorf("could not decode statistics: %w", err)
	}
	if s.UniqueVisitors == nil {
		s.UniqueVisitors = make(map[string]time.Time)
	}
	if s.GradeCounts == nil {
		s.GradeCounts = make(map[string]int)
	}
	if s.PopularURLs == nil {
		s.PopularURLs = make(map[string]int)
	}
	return nil
}

// GetStatistics returns a summary; popular URLs are only exposed in development mode
func (s *Statistics) GetStatistics() map[string]interface{} {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	grades := make(map[string]int, len(s.GradeCounts))
	for g, c := range s.GradeCounts {
		grades[g] = c
	}

	result := map[string]interface{}{
		"uniqueVisitors24h":   s.uniqueVisitors(),
		"totalRequests":       s.AnalysisRequests,
		"errorRate":           s.errorRate(),
		"averageAnalysisTime": s.AverageAnalysisTime,
		"gradeCounts":         grades,
	}

	if os.Getenv(EnvDevMode) == "true" {
		result["popularUrls"] = s.popularURLs(5)
	}
	return result
}
