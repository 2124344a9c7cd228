// Load simulator: drives a running server with concurrent contributors
// adding songs and a host advancing the queue, then prints latency and
// fairness stats.
//
//	go run ./test -server http://localhost:8080 -sessions 4 -users 12
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

type addSongRequest struct {
	Query string `json:"query"`
}

type stats struct {
	totalRequests   atomic.Int64
	successRequests atomic.Int64
	failedRequests  atomic.Int64
	totalLatency    atomic.Int64
	maxLatency      atomic.Int64
}

type simulator struct {
	serverURL string
	client    *http.Client
	stats     stats
}

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "server base URL")
	sessions := flag.Int("sessions", 2, "number of concurrent sessions")
	users := flag.Int("users", 6, "contributors per session")
	songs := flag.Int("songs", 10, "songs each contributor adds")
	flag.Parse()

	sim := &simulator{
		serverURL: *serverURL,
		client:    &http.Client{Timeout: 10 * time.Second},
	}

	started := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < *sessions; i++ {
		wg.Add(1)
		go func(sessionIdx int) {
			defer wg.Done()
			sim.runSession(sessionIdx, *users, *songs)
		}(i)
	}
	wg.Wait()

	elapsed := time.Since(started)
	total := sim.stats.totalRequests.Load()
	fmt.Printf("\n--- simulation finished in %s ---\n", elapsed)
	fmt.Printf("requests: %d total, %d ok, %d failed\n",
		total, sim.stats.successRequests.Load(), sim.stats.failedRequests.Load())
	if total > 0 {
		fmt.Printf("latency: avg %.1fms, max %dms\n",
			float64(sim.stats.totalLatency.Load())/float64(total), sim.stats.maxLatency.Load())
		fmt.Printf("throughput: %.1f req/s\n", float64(total)/elapsed.Seconds())
	}
	if sim.stats.failedRequests.Load() > 0 {
		os.Exit(1)
	}
}

func (s *simulator) runSession(sessionIdx, users, songs int) {
	code, err := s.createSession()
	if err != nil {
		fmt.Printf("session %d: create failed: %v\n", sessionIdx, err)
		s.stats.failedRequests.Add(1)
		return
	}
	fmt.Printf("session %d: code %s\n", sessionIdx, code)

	var wg sync.WaitGroup
	for u := 0; u < users; u++ {
		wg.Add(1)
		go func(userIdx int) {
			defer wg.Done()
			userID := fmt.Sprintf("sim-user-%d-%d", sessionIdx, userIdx)
			for i := 0; i < songs; i++ {
				s.request(http.MethodPost, fmt.Sprintf("/v1/sessions/%s/queue", code), userID,
					addSongRequest{Query: fmt.Sprintf("song %d from %s", i, userID)})
				time.Sleep(time.Duration(rand.Intn(50)) * time.Millisecond)
			}
		}(u)
	}

	// the host keeps advancing the queue while contributors add
	wg.Add(1)
	go func() {
		defer wg.Done()
		host := fmt.Sprintf("sim-host-%d", sessionIdx)
		for i := 0; i < users*songs; i++ {
			s.request(http.MethodPost, fmt.Sprintf("/v1/sessions/%s/queue/next", code), host, nil)
			time.Sleep(time.Duration(20+rand.Intn(80)) * time.Millisecond)
		}
	}()

	wg.Wait()
	s.request(http.MethodDelete, "/v1/sessions/"+code, fmt.Sprintf("sim-host-%d", sessionIdx), nil)
}

func (s *simulator) createSession() (string, error) {
	body, err := s.request(http.MethodPost, "/v1/sessions", "sim-host", nil)
	if err != nil {
		return "", err
	}
	var payload struct {
		AccessCode string `json:"access_code"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", err
	}
	return payload.AccessCode, nil
}

func (s *simulator) request(method, path, userID string, payload interface{}) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, s.serverURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Auth-User-Id", userID)

	started := time.Now()
	resp, err := s.client.Do(req)
	latency := time.Since(started).Milliseconds()

	s.stats.totalRequests.Add(1)
	s.stats.totalLatency.Add(latency)
	for {
		current := s.stats.maxLatency.Load()
		if latency <= current || s.stats.maxLatency.CompareAndSwap(current, latency) {
			break
		}
	}

	if err != nil {
		s.stats.failedRequests.Add(1)
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil || resp.StatusCode >= 500 {
		s.stats.failedRequests.Add(1)
		return raw, fmt.Errorf("%s %s returned %d", method, path, resp.StatusCode)
	}
	s.stats.successRequests.Add(1)
	return raw, nil
}
