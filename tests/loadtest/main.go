package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

const (
	baseURL      = "http://127.0.0.1:18090"
	numWorkers   = 50
	testDuration = 10 * time.Second
)

var titles = []string{"Arrival", "Inception", "Solaris", "Heat", "Alien", "Dune", "Seven", "Contact"}
var directors = []string{"Denis Villeneuve", "Christopher Nolan", "Ridley Scott", "Michael Mann", "David Fincher"}
var genres = []string{"Sci-Fi", "Thriller", "Drama", "Crime", "Horror"}
var queries = []string{"arrival", "nolan", "sci", "2016", "heat", "alien", "drama"}
var sortOptions = []string{"", "alphabetical", "director", "year", "genre"}

var authToken string

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

// idPool collects ids of created films so update/delete can pick real targets.
type idPool struct {
	mu  sync.Mutex
	ids []string
}

func (p *idPool) add(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ids = append(p.ids, id)
}

func (p *idPool) random(rng *rand.Rand) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.ids) == 0 {
		return "", false
	}
	return p.ids[rng.Intn(len(p.ids))], true
}

var pool = &idPool{}

func main() {
	fmt.Println("=== FCD Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s\n\n", numWorkers, testDuration)

	// Wait for server
	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	fmt.Print("Logging in... ")
	if err := login(); err != nil {
		fmt.Printf("FAILED: %s\n", err)
		return
	}
	fmt.Println("OK")

	// Phase 1: Seed the catalog
	fmt.Println("\n--- Phase 1: Seeding films (POST /films/add) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		return doAddFilm(rng)
	})

	// Phase 2: Mixed read/write load
	fmt.Println("\n--- Phase 2: Mixed load (40% write, 60% read) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.25:
			return doAddFilm(rng)
		case r < 0.35:
			return doUpdateFilm(rng)
		case r < 0.40:
			return doDeleteFilm(rng)
		case r < 0.60:
			return doGetFilms()
		case r < 0.85:
			return doSearch(rng)
		case r < 0.93:
			return doGetRecentFilms()
		default:
			return doGetRecentSearches()
		}
	})

	// Phase 3: Search-heavy load
	fmt.Println("\n--- Phase 3: Search-heavy load (5% write, 95% read) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.05:
			return doAddFilm(rng)
		case r < 0.25:
			return doGetFilms()
		case r < 0.80:
			return doSearch(rng)
		case r < 0.90:
			return doGetRecentFilms()
		default:
			return doGetRecentSearches()
		}
	})
}

func login() error {
	body, _ := json.Marshal(map[string]string{
		"email":    "loadtest@example.com",
		"password": "loadtest",
	})
	resp, err := httpClient.Post(baseURL+"/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("login returned %d", resp.StatusCode)
	}
	var session struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return err
	}
	authToken = session.Token
	return nil
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	var totalOps atomic.Int64
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					r := workFn(rng)
					totalOps.Add(1)
					results <- r
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-26s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + repeat("-", 92))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		avg := avgDuration(s.latencies)
		p50 := percentile(s.latencies, 0.50)
		p95 := percentile(s.latencies, 0.95)
		p99 := percentile(s.latencies, 0.99)

		fmt.Printf("  %-26s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors, fmtDur(avg), fmtDur(p50), fmtDur(p95), fmtDur(p99))
	}

	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + repeat("-", 92))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, rps)
}

func request(method, url string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	return httpClient.Do(req)
}

func measure(endpoint, method, url string, body []byte, wantStatus int) result {
	start := time.Now()
	resp, err := request(method, url, body)
	lat := time.Since(start)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{endpoint, resp.StatusCode, lat, resp.StatusCode != wantStatus}
}

func doAddFilm(rng *rand.Rand) result {
	body, _ := json.Marshal(map[string]interface{}{
		"title":    titles[rng.Intn(len(titles))],
		"director": directors[rng.Intn(len(directors))],
		"idNumber": fmt.Sprintf("N-%d", rng.Intn(100000)),
		"year":     fmt.Sprintf("%d", 1970+rng.Intn(55)),
		"genre":    []string{genres[rng.Intn(len(genres))]},
	})

	start := time.Now()
	resp, err := request(http.MethodPost, baseURL+"/films/add", body)
	lat := time.Since(start)
	if err != nil {
		return result{"POST /films/add", 0, lat, true}
	}
	defer resp.Body.Close()

	if resp.StatusCode == 201 {
		var film struct {
			ID string `json:"id"`
		}
		if json.NewDecoder(resp.Body).Decode(&film) == nil && film.ID != "" {
			pool.add(film.ID)
		}
	} else {
		io.Copy(io.Discard, resp.Body)
	}
	return result{"POST /films/add", resp.StatusCode, lat, resp.StatusCode != 201}
}

func doUpdateFilm(rng *rand.Rand) result {
	id, ok := pool.random(rng)
	if !ok {
		return doAddFilm(rng)
	}
	body, _ := json.Marshal(map[string]string{
		"year": fmt.Sprintf("%d", 1970+rng.Intn(55)),
	})
	// Concurrent deletes can turn a known id into a 404.
	r := measure("PUT /films/update", http.MethodPut, baseURL+"/films/update?id="+id, body, 200)
	if r.status == 404 {
		r.err = false
	}
	return r
}

func doDeleteFilm(rng *rand.Rand) result {
	id, ok := pool.random(rng)
	if !ok {
		return doAddFilm(rng)
	}
	r := measure("DELETE /films/delete", http.MethodDelete, baseURL+"/films/delete?id="+id, nil, 200)
	if r.status == 404 {
		r.err = false
	}
	return r
}

func doGetFilms() result {
	return measure("GET /films", http.MethodGet, baseURL+"/films", nil, 200)
}

func doSearch(rng *rand.Rand) result {
	q := queries[rng.Intn(len(queries))]
	url := fmt.Sprintf("%s/search?q=%s", baseURL, q)
	if s := sortOptions[rng.Intn(len(sortOptions))]; s != "" {
		url += "&sort=" + s
	}
	return measure("GET /search", http.MethodGet, url, nil, 200)
}

func doGetRecentFilms() result {
	return measure("GET /films/recent", http.MethodGet, baseURL+"/films/recent", nil, 200)
}

func doGetRecentSearches() result {
	return measure("GET /searches/recent", http.MethodGet, baseURL+"/searches/recent", nil, 200)
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}
