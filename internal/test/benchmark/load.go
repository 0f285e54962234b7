// Package benchmark drives concurrent request bursts against a running API.
package benchmark

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// LoadTest sends Requests requests to BaseURL with at most Concurrency in flight
type LoadTest struct {
	BaseURL     string
	Concurrency int
	Requests    int
	Token       string
	Client      *http.Client
}

// Result summarises one burst
type Result struct {
	Method         string        `json:"method"`
	Path           string        `json:"path"`
	Concurrency    int           `json:"concurrency"`
	TotalRequests  int           `json:"total_requests"`
	SuccessCount   int           `json:"success_count"`
	FailureCount   int           `json:"failure_count"`
	TotalTime      time.Duration `json:"total_time"`
	AverageTime    time.Duration `json:"average_time"`
	MinTime        time.Duration `json:"min_time"`
	MaxTime        time.Duration `json:"max_time"`
	RequestsPerSec float64       `json:"requests_per_sec"`
	StatusCodes    map[int]int   `json:"status_codes"`
	Errors         []string      `json:"errors"`
}

type sample struct {
	duration time.Duration
	status   int
	err      error
}

// NewLoadTest creates a load test with a 10s per-request timeout
func NewLoadTest(baseURL string, concurrency, requests int, token string) *LoadTest {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &LoadTest{
		BaseURL:     baseURL,
		Concurrency: concurrency,
		Requests:    requests,
		Token:       token,
		Client:      &http.Client{Timeout: 10 * time.Second},
	}
}

// Run fires the burst. payload is JSON encoded once and sent with every request.
func (l *LoadTest) Run(ctx context.Context, method, path string, payload interface{}) (*Result, error) {
	var body []byte
	if payload != nil {
		var err error
		if body, err = json.Marshal(payload); err != nil {
			return nil, fmt.Errorf("encode payload: %w", err)
		}
	}

	samples := make(chan sample, l.Requests)
	slots := make(chan struct{}, l.Concurrency)
	var wg sync.WaitGroup

	start := time.Now()
	for i := 0; i < l.Requests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			slots <- struct{}{}
			defer func() { <-slots }()
			samples <- l.send(ctx, method, path, body)
		}()
	}
	wg.Wait()
	close(samples)

	return summarise(method, path, l.Concurrency, l.Requests, time.Since(start), samples), nil
}

func (l *LoadTest) send(ctx context.Context, method, path string, body []byte) sample {
	req, err := http.NewRequestWithContext(ctx, method, l.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return sample{err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if l.Token != "" {
		req.Header.Set("Authorization", "Bearer "+l.Token)
	}

	begin := time.Now()
	resp, err := l.Client.Do(req)
	if err != nil {
		return sample{err: err}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return sample{duration: time.Since(begin), status: resp.StatusCode}
}

func summarise(method, path string, concurrency, total int, elapsed time.Duration, samples <-chan sample) *Result {
	r := &Result{
		Method:        method,
		Path:          path,
		Concurrency:   concurrency,
		TotalRequests: total,
		TotalTime:     elapsed,
		StatusCodes:   make(map[int]int),
	}

	var sum time.Duration
	measured := 0
	for s := range samples {
		if s.err != nil {
			r.FailureCount++
			r.Errors = append(r.Errors, s.err.Error())
			continue
		}
		measured++
		sum += s.duration
		if r.MinTime == 0 || s.duration < r.MinTime {
			r.MinTime = s.duration
		}
		if s.duration > r.MaxTime {
			r.MaxTime = s.duration
		}
		r.StatusCodes[s.status]++
		if s.status >= 200 && s.status < 300 {
			r.SuccessCount++
		} else {
			r.FailureCount++
		}
	}

	if measured > 0 {
		r.AverageTime = sum / time.Duration(measured)
	}
	if elapsed > 0 {
		r.RequestsPerSec = float64(total) / elapsed.Seconds()
	}
	return r
}

// Log writes the summary as one structured line
func (r *Result) Log(l *zap.Logger) {
	codes := make([]int, 0, len(r.StatusCodes))
	for c := range r.StatusCodes {
		codes = append(codes, c)
	}
	sort.Ints(codes)
	dist := make([]string, 0, len(codes))
	for _, c := range codes {
		dist = append(dist, fmt.Sprintf("%d:%d", c, r.StatusCodes[c]))
	}

	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.Path),
		zap.Int("concurrency", r.Concurrency),
		zap.Int("requests", r.TotalRequests),
		zap.Int("success", r.SuccessCount),
		zap.Int("failure", r.FailureCount),
		zap.Duration("total", r.TotalTime),
		zap.Duration("avg", r.AverageTime),
		zap.Duration("min", r.MinTime),
		zap.Duration("max", r.MaxTime),
		zap.Float64("rps", r.RequestsPerSec),
		zap.Strings("status_codes", dist),
	}
	if n := len(r.Errors); n > 0 {
		if n > 5 {
			n = 5
		}
		fields = append(fields, zap.Strings("errors", r.Errors[:n]))
	}
	l.Info("load test finished", fields...)
}
