package classifier

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"

	"sentai/internal/logging"
	"sentai/internal/sentiment"
	"sentai/internal/services"
	"sentai/internal/services/llm"
	"sentai/internal/textutil"
)

const component = "classifier"

// APIKeyEnv is the environment variable holding the credential.
const APIKeyEnv = "OPENAI_API_KEY"

// MissingAPIKeyMessage is the exact message reported when no credential is configured.
const MissingAPIKeyMessage = "OPENAI_API_KEY environment variable is not set. Please set the key to use the classification service."

// ErrMissingAPIKey is returned by Classify before any request when the
// credential is absent. It matches services.ErrConfiguration.
var ErrMissingAPIKey = services.Mark(services.ErrConfiguration, MissingAPIKeyMessage)

// Config holds the connection settings for one classifier instance.
type Config struct {
	APIKey         string
	BaseURL        string
	Model          string
	Mode           Mode
	Referer        string
	Title          string
	TimeoutSeconds int
}

// Option customizes a Classifier.
type Option func(*Classifier)

// WithLogger sets the logger used for diagnostics. Nil keeps the no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHTTPClient overrides the HTTP client used for the remote call.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Classifier) {
		c.httpClient = client
	}
}

// WithRequestIDs overrides the request ID generator (uuid.NewString by default).
func WithRequestIDs(fn func() string) Option {
	return func(c *Classifier) {
		if fn != nil {
			c.newRequestID = fn
		}
	}
}

// Classifier turns text into a validated sentiment.Result with one remote
// call. It is immutable after construction and safe for concurrent use.
type Classifier struct {
	base    Config
	fromEnv bool
	opts    []Option

	cfg          Config
	client       *llm.Client
	logger       *slog.Logger
	httpClient   *http.Client
	newRequestID func() string
}

// New builds a classifier from cfg. A blank APIKey yields a classifier whose
// Classify fails with ErrMissingAPIKey.
func New(cfg Config, opts ...Option) *Classifier {
	return build(cfg, false, opts)
}

// FromEnvironment is New with a blank APIKey filled from OPENAI_API_KEY.
func FromEnvironment(cfg Config, opts ...Option) *Classifier {
	return build(cfg, true, opts)
}

func build(base Config, fromEnv bool, opts []Option) *Classifier {
	c := &Classifier{
		base:         base,
		fromEnv:      fromEnv,
		opts:         append([]Option(nil), opts...),
		logger:       logging.NewNop(),
		newRequestID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logging.NewComponentLogger(c.logger, component)

	cfg := base
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIKey == "" && fromEnv {
		cfg.APIKey = strings.TrimSpace(os.Getenv(APIKeyEnv))
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeJSONSchema
	}
	c.cfg = cfg

	if cfg.APIKey != "" {
		var clientOpts []llm.Option
		if c.httpClient != nil {
			clientOpts = append(clientOpts, llm.WithHTTPClient(c.httpClient))
		}
		c.client = llm.NewClient(llm.Config{
			APIKey:         cfg.APIKey,
			BaseURL:        cfg.BaseURL,
			Model:          cfg.Model,
			Referer:        cfg.Referer,
			Title:          cfg.Title,
			TimeoutSeconds: cfg.TimeoutSeconds,
		}, clientOpts...)
	}
	return c
}

// Reinitialize returns a fresh classifier built from the original config and
// options, re-reading the environment when the receiver came from
// FromEnvironment. The receiver is left untouched.
func (c *Classifier) Reinitialize() *Classifier {
	return build(c.base, c.fromEnv, c.opts)
}

// Configured reports whether a credential is available.
func (c *Classifier) Configured() bool {
	return c != nil && c.client != nil
}

// Mode returns the structured-output mode in effect.
func (c *Classifier) Mode() Mode {
	return c.cfg.Mode
}

// Model returns the model identifier sent with each request.
func (c *Classifier) Model() string {
	return c.cfg.Model
}

// Classify sends text to the model and returns the validated result. Missing
// credentials and empty text fail before any request is made. Remote, decode
// and validation failures are logged once and returned unchanged.
func (c *Classifier) Classify(ctx context.Context, text string) (sentiment.Result, error) {
	var empty sentiment.Result
	if !c.Configured() {
		return empty, ErrMissingAPIKey
	}
	input := textutil.NormalizeInput(text)
	if input == "" {
		return empty, services.Wrap(services.ErrInvalidInput, component, "classify", "text is empty", nil)
	}
	instructions, err := BuildInstructions(c.cfg.Mode)
	if err != nil {
		return empty, err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := services.RequestIDFromContext(ctx); !ok {
		ctx = services.WithRequestID(ctx, c.newRequestID())
	}
	logger := logging.WithContext(ctx, c.logger)
	logger.Debug("classification request",
		slog.String("model", c.cfg.Model),
		slog.String("mode", c.cfg.Mode.String()),
		slog.Int("input_runes", len([]rune(input))),
	)

	completion, err := c.client.Complete(ctx, llm.Request{
		SystemPrompt: instructions,
		UserPrompt:   input,
		Format:       c.cfg.Mode.responseFormat(),
	})
	if err != nil {
		logFailure(logger, "classification request failed", err)
		return empty, err
	}

	result, err := DecodeResult(completion.Content)
	if err != nil {
		logFailure(logger, "classification response rejected", err)
		return empty, err
	}

	logger.Info("classification complete",
		slog.String("polarity", result.Polarity.String()),
		slog.String("emotion", result.Emotion.String()),
		slog.String("subjectivity", result.Subjectivity.String()),
		slog.String("finish_reason", completion.FinishReason),
	)
	return result, nil
}

func logFailure(logger *slog.Logger, msg string, err error) {
	logger.Error(msg,
		slog.String(logging.FieldErrorKind, services.Kind(err)),
		logging.Error(err),
	)
}

// HealthCheck sends a minimal JSON ping to confirm the credential, endpoint
// and model are usable.
func (c *Classifier) HealthCheck(ctx context.Context) error {
	if !c.Configured() {
		return ErrMissingAPIKey
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := services.RequestIDFromContext(ctx); !ok {
		ctx = services.WithRequestID(ctx, c.newRequestID())
	}
	if err := c.client.HealthCheck(ctx); err != nil {
		logFailure(logging.WithContext(ctx, c.logger), "health check failed", err)
		return err
	}
	return nil
}
