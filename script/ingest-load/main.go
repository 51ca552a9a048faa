// Command ingest-load drives concurrent single-transaction ingestion against
// a running API and reports latency and how transactions were categorized.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand/v2"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type ingestRequest struct {
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	Direction   string `json:"direction"`
	Description string `json:"description"`
	Reference   string `json:"reference,omitempty"`
}

type ingestResponse struct {
	Categorization *struct {
		Method string `json:"method"`
		Status string `json:"status"`
	} `json:"categorization"`
}

// scenario is a transaction shape; descriptions mix default-rule hits and unknowns
type scenario struct {
	Name        string
	Direction   string
	Amount      string
	Description string
}

var scenarios = []scenario{
	{"food delivery", "debit", "450.00", "UPI/SWIGGY/ORDER %d"},
	{"ride", "debit", "230.50", "UBER INDIA TRIP %d"},
	{"salary", "credit", "85000.00", "NEFT SALARY ACME CORP %d"},
	{"bank fee", "debit", "118.00", "SMS CHARGES QTR %d"},
	{"unknown merchant", "debit", "999.00", "POS 4411 KIRANA STORE %d"},
	{"unknown credit", "credit", "1500.00", "IMPS FROM R SHARMA %d"},
}

type result struct {
	Entity     string
	Scenario   string
	Method     string
	Status     string
	Latency    time.Duration
	HTTPStatus int
	Err        error
}

type stats struct {
	mu          sync.Mutex
	total       int
	ok          int
	failed      int
	latencies   []time.Duration
	byEntity    map[string]int
	byScenario  map[string]int
	byMethod    map[string]int
	needsReview int
	errors      map[string]int
}

func (s *stats) add(r result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byEntity[r.Entity]++
	s.byScenario[r.Scenario]++
	s.latencies = append(s.latencies, r.Latency)

	if r.Err != nil {
		s.failed++
		s.errors[r.Err.Error()]++
		return
	}
	s.ok++
	s.byMethod[r.Method]++
	if r.Status == "needs_review" {
		s.needsReview++
	}
}

func (s *stats) completed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ok + s.failed
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent workers")
	totalRequests := flag.Int("n", 100, "Total number of transactions to ingest")
	entitiesFlag := flag.String("e", "load-a,load-b", "Comma-separated entity ids to spread load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	token := flag.String("token", "", "Bearer token when auth is enabled")
	delayMs := flag.Int("delay", 50, "Delay between requests per worker in milliseconds")
	flag.Parse()

	var entities []string
	for _, e := range strings.Split(*entitiesFlag, ",") {
		if e = strings.TrimSpace(e); e != "" {
			entities = append(entities, e)
		}
	}
	if len(entities) == 0 {
		entities = []string{"load-a"}
	}

	fmt.Printf("Ingesting %d transactions across entities %v with %d workers (delay %dms)\n",
		*totalRequests, entities, *concurrency, *delayMs)

	st := &stats{
		total:      *totalRequests,
		byEntity:   make(map[string]int),
		byScenario: make(map[string]int),
		byMethod:   make(map[string]int),
		errors:     make(map[string]int),
		latencies:  make([]time.Duration, 0, *totalRequests),
	}

	jobs := make(chan int, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	client := &http.Client{Timeout: 30 * time.Second}
	start := time.Now()

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fmt.Printf("Progress: %d/%d\n", st.completed(), st.total)
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < *concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				if *delayMs > 0 {
					time.Sleep(time.Duration(*delayMs) * time.Millisecond)
				}
				entity := entities[rand.IntN(len(entities))]
				sc := scenarios[rand.IntN(len(scenarios))]
				st.add(send(client, *baseURL, *token, entity, sc, job))
			}
		}()
	}

	wg.Wait()
	close(done)
	printReport(st, time.Since(start))
}

func send(client *http.Client, baseURL, token, entity string, sc scenario, job int) result {
	r := result{Entity: entity, Scenario: sc.Name}

	body, err := json.Marshal(ingestRequest{
		Date:        time.Now().AddDate(0, 0, -rand.IntN(60)).Format(time.DateOnly),
		Amount:      sc.Amount,
		Direction:   sc.Direction,
		Description: fmt.Sprintf(sc.Description, job%7),
		Reference:   "REF" + strings.ToUpper(uuid.NewString()[:8]),
	})
	if err != nil {
		r.Err = err
		return r
	}

	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("%s/entities/%s/transactions", baseURL, entity), bytes.NewReader(body))
	if err != nil {
		r.Err = err
		return r
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	req.Header.Set("X-Actor", "ingest-load")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	started := time.Now()
	resp, err := client.Do(req)
	r.Latency = time.Since(started)
	if err != nil {
		r.Err = err
		return r
	}
	defer resp.Body.Close()

	r.HTTPStatus = resp.StatusCode
	if resp.StatusCode != http.StatusCreated {
		r.Err = fmt.Errorf("HTTP status code %d", resp.StatusCode)
		return r
	}

	var out ingestResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		r.Err = fmt.Errorf("decode response: %w", err)
		return r
	}
	if out.Categorization != nil {
		r.Method = out.Categorization.Method
		r.Status = out.Categorization.Status
	}
	return r
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[min(len(sorted)*p/100, len(sorted)-1)]
}

func printDistribution(title string, counts map[string]int, total int) {
	fmt.Printf("\n----------------- %s -----------------\n", title)
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Printf("%-20s: %d (%.1f%%)\n", k, counts[k], float64(counts[k])/float64(max(total, 1))*100)
	}
}

func printReport(st *stats, elapsed time.Duration) {
	sorted := slices.Clone(st.latencies)
	slices.Sort(sorted)

	var sum time.Duration
	for _, l := range sorted {
		sum += l
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = sum / time.Duration(len(sorted))
	}

	fmt.Println("\n================= INGEST LOAD RESULTS =================")
	fmt.Printf("Transactions:        %d\n", st.total)
	fmt.Printf("Ingested:            %d\n", st.ok)
	fmt.Printf("Failed:              %d\n", st.failed)
	fmt.Printf("Needs review:        %d\n", st.needsReview)
	fmt.Printf("Elapsed:             %.2fs\n", elapsed.Seconds())
	fmt.Printf("Throughput:          %.2f tx/s\n", float64(st.ok)/elapsed.Seconds())

	fmt.Println("\n----------------- LATENCY -----------------")
	fmt.Printf("Average: %v\n", avg)
	if len(sorted) > 0 {
		fmt.Printf("Min:     %v\n", sorted[0])
		fmt.Printf("Max:     %v\n", sorted[len(sorted)-1])
	}
	fmt.Printf("P50:     %v\n", percentile(sorted, 50))
	fmt.Printf("P95:     %v\n", percentile(sorted, 95))
	fmt.Printf("P99:     %v\n", percentile(sorted, 99))

	printDistribution("ENTITIES", st.byEntity, st.total)
	printDistribution("SCENARIOS", st.byScenario, st.total)
	printDistribution("METHODS", st.byMethod, st.ok)
	if st.failed > 0 {
		printDistribution("ERRORS", st.errors, st.total)
	}
}
