package classifier_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"

	"sentai/internal/classifier"
	"sentai/internal/logging"
	"sentai/internal/sentiment"
	"sentai/internal/services"
	"sentai/internal/testsupport"
)

const thrilledContent = `{"polarity":"Positive","emotion":"Happy","subjectivity":"Feeling-based","rationale":"The speaker expresses excitement about the product."}`

func newClassifier(t *testing.T, srv *testsupport.CompletionServer, mode classifier.Mode, opts ...classifier.Option) *classifier.Classifier {
	t.Helper()
	return classifier.New(classifier.Config{
		APIKey:  "test-key",
		BaseURL: srv.BaseURL(),
		Model:   "gpt-4o-mini",
		Mode:    mode,
	}, opts...)
}

func TestClassifyMissingAPIKeyMakesNoRequest(t *testing.T) {
	srv := testsupport.NewContentServer(t, thrilledContent)
	c := classifier.New(classifier.Config{BaseURL: srv.BaseURL(), Model: "gpt-4o-mini"})

	if c.Configured() {
		t.Fatal("expected classifier without key to be unconfigured")
	}
	_, err := c.Classify(context.Background(), "Great product")
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if err.Error() != classifier.MissingAPIKeyMessage {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if srv.Calls() != 0 {
		t.Fatalf("expected no requests, got %d", srv.Calls())
	}
}

func TestFromEnvironmentAndReinitialize(t *testing.T) {
	t.Setenv(classifier.APIKeyEnv, "")
	c := classifier.FromEnvironment(classifier.Config{Model: "gpt-4o-mini"})
	if c.Configured() {
		t.Fatal("expected no credential")
	}

	t.Setenv(classifier.APIKeyEnv, "env-key")
	fresh := c.Reinitialize()
	if !fresh.Configured() {
		t.Fatal("expected reinitialized classifier to pick up env key")
	}
	if c.Configured() {
		t.Fatal("expected original instance to be unchanged")
	}

	explicit := classifier.New(classifier.Config{Model: "gpt-4o-mini"})
	if explicit.Reinitialize().Configured() {
		t.Fatal("expected New to ignore the environment")
	}
}

func TestClassifyThrilledCustomer(t *testing.T) {
	srv := testsupport.NewContentServer(t, thrilledContent)
	c := newClassifier(t, srv, classifier.ModeJSONSchema, classifier.WithRequestIDs(func() string { return "req-1" }))

	result, err := c.Classify(context.Background(), "  I am absolutely thrilled with this product!  ")
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	want := sentiment.Result{
		Polarity:     sentiment.PolarityPositive,
		Emotion:      sentiment.EmotionHappy,
		Subjectivity: sentiment.SubjectivityFeelingBased,
		Rationale:    "The speaker expresses excitement about the product.",
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}
	if srv.Calls() != 1 {
		t.Fatalf("expected exactly one request, got %d", srv.Calls())
	}

	header := srv.LastHeader()
	if header.Get("Authorization") != "Bearer test-key" {
		t.Fatalf("unexpected auth header %q", header.Get("Authorization"))
	}
	if header.Get("X-Request-ID") != "req-1" {
		t.Fatalf("expected request id header, got %q", header.Get("X-Request-ID"))
	}

	payload := srv.LastRequest(t)
	if payload["model"] != "gpt-4o-mini" {
		t.Fatalf("unexpected model %v", payload["model"])
	}
	messages, ok := payload["messages"].([]any)
	if !ok || len(messages) != 2 {
		t.Fatalf("expected system and user messages, got %v", payload["messages"])
	}
	system := messages[0].(map[string]any)
	user := messages[1].(map[string]any)
	if system["role"] != "system" || user["role"] != "user" {
		t.Fatalf("unexpected roles %v / %v", system["role"], user["role"])
	}
	if user["content"] != "I am absolutely thrilled with this product!" {
		t.Fatalf("expected trimmed user text, got %q", user["content"])
	}
	format := payload["response_format"].(map[string]any)
	if format["type"] != "json_schema" {
		t.Fatalf("expected json_schema format, got %v", format)
	}
	schema := format["json_schema"].(map[string]any)
	if schema["name"] != sentiment.SchemaName || schema["strict"] != true {
		t.Fatalf("unexpected schema envelope %v", schema)
	}
}

func TestClassifyJSONObjectModeEmbedsSchema(t *testing.T) {
	srv := testsupport.NewContentServer(t, thrilledContent)
	c := newClassifier(t, srv, classifier.ModeJSONObject)

	if _, err := c.Classify(context.Background(), "Great product"); err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	payload := srv.LastRequest(t)
	format := payload["response_format"].(map[string]any)
	if format["type"] != "json_object" {
		t.Fatalf("expected json_object format, got %v", format)
	}
	if _, ok := format["json_schema"]; ok {
		t.Fatalf("expected no schema envelope in json_object mode, got %v", format)
	}
	system := payload["messages"].([]any)[0].(map[string]any)["content"].(string)
	if !strings.Contains(system, "```json") || !strings.Contains(system, `"additionalProperties": false`) {
		t.Fatalf("expected schema embedded in instructions, got %q", system)
	}
}

func TestClassifyEmptyInputMakesNoRequest(t *testing.T) {
	srv := testsupport.NewContentServer(t, thrilledContent)
	c := newClassifier(t, srv, classifier.ModeJSONSchema)

	_, err := c.Classify(context.Background(), " \n\t ")
	if !errors.Is(err, services.ErrInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
	if srv.Calls() != 0 {
		t.Fatalf("expected no requests, got %d", srv.Calls())
	}
}

func TestClassifyUnknownModeIsConfigurationError(t *testing.T) {
	srv := testsupport.NewContentServer(t, thrilledContent)
	c := newClassifier(t, srv, classifier.Mode("function_call"))

	_, err := c.Classify(context.Background(), "Great product")
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if srv.Calls() != 0 {
		t.Fatalf("expected no requests, got %d", srv.Calls())
	}
}

func TestClassifyRateLimitIsRemoteError(t *testing.T) {
	srv := testsupport.NewCompletionServer(t, testsupport.StatusHandler(http.StatusTooManyRequests, `{"error":{"message":"Rate limit exceeded"}}`))

	var logs bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "warn", Writer: &logs})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	c := newClassifier(t, srv, classifier.ModeJSONSchema, classifier.WithLogger(logger))

	_, err = c.Classify(context.Background(), "Great product")
	if !errors.Is(err, services.ErrRemote) {
		t.Fatalf("expected remote error, got %v", err)
	}
	if errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected remote error not to be a validation error: %v", err)
	}
	if !strings.Contains(err.Error(), "Rate limit exceeded") {
		t.Fatalf("expected provider message in %q", err.Error())
	}
	if srv.Calls() != 1 {
		t.Fatalf("expected no retries, got %d calls", srv.Calls())
	}
	line := logs.String()
	if !strings.Contains(line, "ERROR classifier: classification request failed") || !strings.Contains(line, "error_kind=remote") {
		t.Fatalf("expected one error log with kind, got %q", line)
	}
	if strings.Count(line, "\n") != 1 {
		t.Fatalf("expected a single log line, got %q", line)
	}
}

func TestClassifyNonJSONContent(t *testing.T) {
	srv := testsupport.NewContentServer(t, "Sorry, I think this is positive.")
	c := newClassifier(t, srv, classifier.ModeJSONObject)

	_, err := c.Classify(context.Background(), "Great product")
	if !errors.Is(err, services.ErrRemote) || !errors.Is(err, services.ErrInvalidJSON) {
		t.Fatalf("expected remote invalid-JSON error, got %v", err)
	}
	if errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected decode failure not to be a validation error: %v", err)
	}
	if !strings.Contains(err.Error(), "invalid JSON") {
		t.Fatalf("expected invalid JSON message, got %q", err.Error())
	}
	if services.Kind(err) != "invalid_json" {
		t.Fatalf("unexpected kind %q", services.Kind(err))
	}
}

func TestClassifyRejectsOutOfSetValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		field   string
	}{
		{"unknown polarity", `{"polarity":"Great","emotion":"Happy","subjectivity":"Objective","rationale":"r"}`, "polarity"},
		{"lowercase emotion", `{"polarity":"Positive","emotion":"happy","subjectivity":"Objective","rationale":"r"}`, "emotion"},
		{"missing rationale", `{"polarity":"Positive","emotion":"Happy","subjectivity":"Objective"}`, "rationale"},
		{"null subjectivity", `{"polarity":"Positive","emotion":"Happy","subjectivity":null,"rationale":"r"}`, "subjectivity"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := testsupport.NewContentServer(t, tc.content)
			c := newClassifier(t, srv, classifier.ModeJSONSchema)

			_, err := c.Classify(context.Background(), "Great product")
			if !errors.Is(err, services.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if errors.Is(err, services.ErrRemote) {
				t.Fatalf("expected validation error not to be remote: %v", err)
			}
			var verr *sentiment.ValidationError
			if !errors.As(err, &verr) || !verr.Has(tc.field) {
				t.Fatalf("expected %s to be reported, got %v", tc.field, err)
			}
		})
	}
}

func TestClassifyConcurrentCalls(t *testing.T) {
	srv := testsupport.NewContentServer(t, thrilledContent)
	c := newClassifier(t, srv, classifier.ModeJSONSchema)

	const workers = 8
	results := make([]sentiment.Result, workers)
	g, ctx := errgroup.WithContext(context.Background())
	for i := range workers {
		g.Go(func() error {
			result, err := c.Classify(ctx, "Great product")
			results[i] = result
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent Classify returned error: %v", err)
	}
	for i := 1; i < workers; i++ {
		if diff := cmp.Diff(results[0], results[i]); diff != "" {
			t.Fatalf("result %d differs (-first +got):\n%s", i, diff)
		}
	}
	if srv.Calls() != workers {
		t.Fatalf("expected %d requests, got %d", workers, srv.Calls())
	}
}

func TestHealthCheck(t *testing.T) {
	srv := testsupport.NewContentServer(t, `{"ok":true}`)
	c := newClassifier(t, srv, classifier.ModeJSONSchema)
	if err := c.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck returned error: %v", err)
	}
	if srv.Calls() != 1 {
		t.Fatalf("expected one ping, got %d", srv.Calls())
	}

	missing := classifier.New(classifier.Config{BaseURL: srv.BaseURL()})
	if err := missing.HealthCheck(context.Background()); !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if srv.Calls() != 1 {
		t.Fatalf("expected no request without credential, got %d", srv.Calls())
	}
}
