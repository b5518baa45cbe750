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
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

const (
	baseURL      = "http://127.0.0.1:18090"
	numWorkers   = 50
	testDuration = 10 * time.Second
)

var communityTerms = []string{"", "cardio", "pharma", "surgery", "nexus", "base"}

var marketplaceItems = []string{"item-1", "item-2"}

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

func main() {
	fmt.Println("=== Study Nexus Load Test ===")
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

	fmt.Println("\n--- Setup: connect wallet and claim a name ---")
	for _, r := range []result{
		do(http.MethodPost, "/wallet/connect", nil),
		do(http.MethodPost, "/profile/name", map[string]string{"name": "loadtest"}),
		do(http.MethodPost, "/onboarding/close", nil),
	} {
		fmt.Printf("  %-22s %d\n", r.endpoint, r.status)
	}

	// Phase 1: ledger contention
	fmt.Println("\n--- Phase 1: Ledger writes (stake / unstake / claim / quote) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.35:
			return doStake(rng)
		case r < 0.70:
			return doUnstake(rng)
		case r < 0.85:
			return do(http.MethodPost, "/staking/claim", nil)
		default:
			return doQuote(rng)
		}
	})

	// Phase 2: Read-heavy load
	fmt.Println("\n--- Phase 2: Read-heavy load (10% writes, 90% reads) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.10:
			return doStake(rng)
		case r < 0.30:
			return do(http.MethodGet, "/marketplace", nil)
		case r < 0.45:
			return doCommunity(rng)
		case r < 0.60:
			return do(http.MethodGet, "/tutors", nil)
		case r < 0.80:
			return do(http.MethodGet, "/profile", nil)
		default:
			return do(http.MethodGet, "/staking", nil)
		}
	})
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

	fmt.Printf("\n  %-22s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + repeat("-", 88))

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

		fmt.Printf("  %-22s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors, fmtDur(avg), fmtDur(p50), fmtDur(p95), fmtDur(p99))
	}

	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + repeat("-", 88))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, rps)
}

// do sends one request. Business refusals (4xx) are expected under
// contention; only transport failures and 5xx count as errors.
func do(method, path string, body any) result {
	route, _, _ := strings.Cut(path, "?")
	endpoint := method + " " + route
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		return result{endpoint, 0, 0, true}
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := httpClient.Do(req)
	lat := time.Since(start)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{endpoint, resp.StatusCode, lat, resp.StatusCode >= 500}
}

func doStake(rng *rand.Rand) result {
	return do(http.MethodPost, "/staking/stake", map[string]int{"amount": rng.Intn(20) + 1})
}

func doUnstake(rng *rand.Rand) result {
	return do(http.MethodPost, "/staking/unstake", map[string]int{"amount": rng.Intn(20) + 1})
}

func doQuote(rng *rand.Rand) result {
	item := marketplaceItems[rng.Intn(len(marketplaceItems))]
	return do(http.MethodPost, "/marketplace/quote", map[string]string{"itemId": item})
}

func doCommunity(rng *rand.Rand) result {
	term := communityTerms[rng.Intn(len(communityTerms))]
	return do(http.MethodGet, "/community?q="+term, nil)
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
		return fmt.Sprintf("%dÂµs", d.Microseconds())
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
