//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"
)

// testContext holds state shared across step definitions within a scenario.
type testContext struct {
	baseURL      string
	client       *http.Client
	stack        *stack
	response     *http.Response
	responseBody []byte
}

// newTestContext targets BASE_URL when set, otherwise a fresh in-process
// stack per scenario.
func newTestContext() *testContext {
	return &testContext{
		baseURL: os.Getenv("BASE_URL"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (tc *testContext) reset() {
	if tc.response != nil && tc.response.Body != nil {
		tc.response.Body.Close()
	}

	tc.response = nil
	tc.responseBody = nil

	if tc.stack != nil {
		tc.stack.Close()
		tc.stack = nil
	}
}

func (tc *testContext) url(path string) string {
	if tc.stack != nil {
		return tc.stack.URL() + path
	}

	return tc.baseURL + path
}

// InitializeScenario registers step definitions for each scenario.
func InitializeScenario(sc *godog.ScenarioContext) {
	tc := newTestContext()

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	sc.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	sc.Step(`^the service is running$`, tc.theServiceIsRunning)
	sc.Step(`^the remote collection has (\d+) posts in category "([^"]*)"$`, tc.theRemoteCollectionHas)
	sc.Step(`^the remote collection is unreachable$`, tc.theRemoteIsUnreachable)
	sc.Step(`^I request GET "([^"]*)"$`, tc.iRequestGET)
	sc.Step(`^I send (POST|PUT) "([^"]*)" with body:$`, tc.iSendWithBody)
	sc.Step(`^I send (POST|PUT) "([^"]*)"$`, tc.iSend)
	sc.Step(`^the response status should be (\d+)$`, tc.theResponseStatusShouldBe)
	sc.Step(`^the response should contain "([^"]*)"$`, tc.theResponseShouldContain)
	sc.Step(`^the JSON field "([^"]*)" should be "([^"]*)"$`, tc.theJSONFieldShouldBe)
}

// theServiceIsRunning starts the in-process stack unless BASE_URL is set,
// then checks liveness.
func (tc *testContext) theServiceIsRunning(ctx context.Context) error {
	if tc.baseURL == "" && tc.stack == nil {
		s, err := startStack(ctx, newFakeRemote(), nil)
		if err != nil {
			return fmt.Errorf("starting service: %w", err)
		}

		tc.stack = s
	}

	if err := tc.do(ctx, http.MethodGet, "/-/live", ""); err != nil {
		return fmt.Errorf("service is not running: %w", err)
	}

	return tc.theResponseStatusShouldBe(http.StatusOK)
}

func (tc *testContext) theRemoteCollectionHas(n int, category string) error {
	if tc.stack == nil {
		return godog.ErrPending
	}

	tc.stack.remote.mu.Lock()
	defer tc.stack.remote.mu.Unlock()

	for i := 1; i <= n; i++ {
		tc.stack.remote.posts = append(tc.stack.remote.posts, post{
			ID:     i,
			Title:  fmt.Sprintf("Remote quote %d", i),
			Body:   category + " body",
			UserID: 1,
		})
	}

	return nil
}

func (tc *testContext) theRemoteIsUnreachable() error {
	if tc.stack == nil {
		return godog.ErrPending
	}

	tc.stack.remote.failWith(http.StatusServiceUnavailable)

	return nil
}

func (tc *testContext) iRequestGET(ctx context.Context, path string) error {
	return tc.do(ctx, http.MethodGet, path, "")
}

func (tc *testContext) iSend(ctx context.Context, method, path string) error {
	return tc.do(ctx, method, path, "")
}

func (tc *testContext) iSendWithBody(ctx context.Context, method, path string, body *godog.DocString) error {
	return tc.do(ctx, method, path, body.Content)
}

func (tc *testContext) do(ctx context.Context, method, path, body string) error {
	if tc.response != nil {
		tc.response.Body.Close()
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var r io.Reader = http.NoBody
	if body != "" {
		r = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, tc.url(path), r)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	tc.response, err = tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	tc.responseBody, err = io.ReadAll(tc.response.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	return nil
}

func (tc *testContext) theResponseStatusShouldBe(expectedCode int) error {
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}

	if tc.response.StatusCode != expectedCode {
		return fmt.Errorf("expected status %d, got %d. Body: %s",
			expectedCode, tc.response.StatusCode, string(tc.responseBody))
	}

	return nil
}

func (tc *testContext) theResponseShouldContain(text string) error {
	if tc.responseBody == nil {
		return fmt.Errorf("no response body")
	}

	if !strings.Contains(string(tc.responseBody), text) {
		return fmt.Errorf("response body does not contain %q.\nBody: %s", text, tc.responseBody)
	}

	return nil
}

// theJSONFieldShouldBe compares a dot-separated path of the response object
// with want, formatting numbers and booleans with %v.
func (tc *testContext) theJSONFieldShouldBe(path, want string) error {
	var doc any
	if err := json.Unmarshal(tc.responseBody, &doc); err != nil {
		return fmt.Errorf("response is not JSON: %w", err)
	}

	cur := doc
	for _, key := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return fmt.Errorf("%q: not an object at %q", path, key)
		}

		cur, ok = obj[key]
		if !ok {
			return fmt.Errorf("%q: missing key %q in %s", path, key, tc.responseBody)
		}
	}

	if got := fmt.Sprintf("%v", cur); got != want {
		return fmt.Errorf("%q: expected %q, got %q", path, want, got)
	}

	return nil
}

// TestFeatures runs the GoDog BDD test suite.
func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			TestingT: t,
			Tags:     os.Getenv("GODOG_TAGS"),
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
