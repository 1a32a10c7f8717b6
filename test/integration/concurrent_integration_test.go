//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jsamuelsen/quotegen/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotegen/internal/domain"
)

func newStack(t *testing.T, remote *fakeRemote) *stack {
	t.Helper()

	s, err := startStack(context.Background(), remote, nil)
	require.NoError(t, err)
	t.Cleanup(s.Close)

	return s
}

// postJSON is safe to call from spawned goroutines. It returns the status
// code, or 0 when the request failed.
func postJSON(t *testing.T, url, body string, into any) int {
	t.Helper()

	resp, err := http.Post(url, "application/json", strings.NewReader(body)) //nolint:noctx // test helper
	if !assert.NoError(t, err) {
		return 0
	}
	defer resp.Body.Close()

	if into != nil {
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(into))
	}

	return resp.StatusCode
}

func getList(t *testing.T, url string) dto.QuoteListResponse {
	t.Helper()

	resp, err := http.Get(url) //nolint:noctx // test helper
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list dto.QuoteListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))

	return list
}

// TestConcurrent_AddQuotes verifies no add is lost under parallel requests.
func TestConcurrent_AddQuotes(t *testing.T) {
	s := newStack(t, newFakeRemote())

	const workers = 20

	var wg sync.WaitGroup
	codes := make([]int, workers)

	for i := range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			codes[i] = postJSON(t, s.URL()+"/api/v1/quotes",
				fmt.Sprintf(`{"text":"Quote %d","category":"Load"}`, i), nil)
		}()
	}

	wg.Wait()

	for i, code := range codes {
		assert.Equal(t, http.StatusCreated, code, "request %d", i)
	}

	list := getList(t, s.URL()+"/api/v1/quotes?category=Load&limit=100")
	assert.Equal(t, workers, list.Total)
}

// TestConcurrent_SyncRunsAreSerialized verifies parallel manual syncs queue
// behind each other and apply the remote batch exactly once.
func TestConcurrent_SyncRunsAreSerialized(t *testing.T) {
	remote := newFakeRemote(
		post{ID: 1, Title: "One", Body: "Remote", UserID: 1},
		post{ID: 2, Title: "Two", Body: "Remote", UserID: 1},
	)
	remote.slowDown(20 * time.Millisecond)

	s := newStack(t, remote)

	const callers = 5

	var wg sync.WaitGroup
	results := make([]dto.SyncResponse, callers)

	for i := range callers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			assert.Equal(t, http.StatusOK, postJSON(t, s.URL()+"/api/v1/sync", "", &results[i]))
		}()
	}

	wg.Wait()

	changed := 0
	for _, r := range results {
		if r.Result == "changed" {
			changed++
			assert.Equal(t, 2, r.Added)
		} else {
			assert.Equal(t, "unchanged", r.Result)
		}
	}

	assert.Equal(t, 1, changed, "only the first run should change the list")
	assert.Equal(t, int64(callers), remote.gets.Load())

	list := getList(t, s.URL()+"/api/v1/quotes?category=Remote")
	assert.Equal(t, 2, list.Total)
}

// TestConcurrent_AddDuringSync verifies local adds survive a concurrent merge.
func TestConcurrent_AddDuringSync(t *testing.T) {
	remote := newFakeRemote(post{ID: 1, Title: "Remote", Body: "Remote", UserID: 1})
	remote.slowDown(50 * time.Millisecond)

	s := newStack(t, remote)

	var wg sync.WaitGroup

	wg.Add(2)

	go func() {
		defer wg.Done()

		postJSON(t, s.URL()+"/api/v1/sync", "", nil)
	}()

	go func() {
		defer wg.Done()

		for i := range 5 {
			postJSON(t, s.URL()+"/api/v1/quotes", fmt.Sprintf(`{"text":"Local %d","category":"Local"}`, i), nil)
		}
	}()

	wg.Wait()

	all := getList(t, s.URL()+"/api/v1/quotes?category="+strings.ReplaceAll(domain.AllCategories, " ", "%20")+"&limit=100")

	assert.Equal(t, len(domain.SeedQuotes())+5+1, all.Total)
}

// TestConcurrent_NoGoroutineLeak verifies the stack shuts down cleanly.
func TestConcurrent_NoGoroutineLeak(t *testing.T) {
	defer goleak.VerifyNone(t,
		goleak.IgnoreCurrent(),
		goleak.IgnoreTopFunction("github.com/patrickmn/go-cache.(*janitor).Run"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	)

	s, err := startStack(context.Background(), newFakeRemote(), nil)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, postJSON(t, s.URL()+"/api/v1/sync", "", nil))

	s.Close()
	http.DefaultClient.CloseIdleConnections()
}
