package sentiment_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"sentai/internal/sentiment"
)

func TestParseAcceptsEveryClosedValue(t *testing.T) {
	for _, p := range sentiment.Polarities() {
		got, err := sentiment.ParsePolarity(" " + string(p) + "\n")
		if err != nil || got != p {
			t.Fatalf("ParsePolarity(%q) = %q, %v", p, got, err)
		}
	}
	for _, e := range sentiment.Emotions() {
		got, err := sentiment.ParseEmotion(string(e))
		if err != nil || got != e {
			t.Fatalf("ParseEmotion(%q) = %q, %v", e, got, err)
		}
	}
	for _, s := range sentiment.Subjectivities() {
		got, err := sentiment.ParseSubjectivity(string(s))
		if err != nil || got != s {
			t.Fatalf("ParseSubjectivity(%q) = %q, %v", s, got, err)
		}
	}
	if len(sentiment.Emotions()) != 7 {
		t.Fatalf("expected 7 emotions, got %d", len(sentiment.Emotions()))
	}
}

func TestParseRejectsUnknownValues(t *testing.T) {
	cases := []struct {
		name string
		fn   func() error
		want string
	}{
		{"lowercase polarity", func() error { _, err := sentiment.ParsePolarity("positive"); return err }, "polarity"},
		{"unknown emotion", func() error { _, err := sentiment.ParseEmotion("Joyful"); return err }, "emotion"},
		{"subjective", func() error { _, err := sentiment.ParseSubjectivity("Subjective"); return err }, "subjectivity"},
		{"empty", func() error { _, err := sentiment.ParsePolarity(""); return err }, "polarity"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.fn()
			if !errors.Is(err, sentiment.ErrUnknownValue) {
				t.Fatalf("expected ErrUnknownValue, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q in %q", tc.want, err.Error())
			}
		})
	}
}

func TestUnmarshalRejectsOutOfSetEmotion(t *testing.T) {
	var result sentiment.Result
	err := json.Unmarshal([]byte(`{"polarity":"Positive","emotion":"Joyful","subjectivity":"Objective","rationale":"x"}`), &result)
	if err == nil {
		t.Fatal("expected unmarshal to fail on unknown emotion")
	}
	if !strings.Contains(err.Error(), "Joyful") {
		t.Fatalf("expected offending value in error, got %v", err)
	}
}

func TestResultMarshalFieldOrder(t *testing.T) {
	result := sentiment.Result{
		Polarity:     sentiment.PolarityNeutral,
		Emotion:      sentiment.EmotionCalm,
		Subjectivity: sentiment.SubjectivityObjective,
		Rationale:    "states a fact",
	}
	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"polarity":"Neutral","emotion":"Calm","subjectivity":"Objective","rationale":"states a fact"}`
	if string(data) != want {
		t.Fatalf("unexpected JSON:\n got %s\nwant %s", data, want)
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	err := sentiment.Result{Polarity: "Great", Rationale: "   "}.Validate()
	var verr *sentiment.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T %v", err, err)
	}
	for _, field := range []string{"polarity", "emotion", "subjectivity", "rationale"} {
		if !verr.Has(field) {
			t.Fatalf("expected %s in %v", field, verr)
		}
	}
	if !strings.Contains(verr.Error(), `unknown value "Great"`) {
		t.Fatalf("expected value detail, got %q", verr.Error())
	}
}

func TestValidateAcceptsConformantResult(t *testing.T) {
	result := sentiment.Result{
		Polarity:     sentiment.PolarityPositive,
		Emotion:      sentiment.EmotionHappy,
		Subjectivity: sentiment.SubjectivityFeelingBased,
		Rationale:    "expresses joy and personal sentiment",
	}
	if err := result.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
}
