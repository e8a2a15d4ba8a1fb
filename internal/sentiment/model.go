package sentiment

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownValue is returned when a dimension value falls outside its closed set.
var ErrUnknownValue = errors.New("unknown value")

// Polarity is the overall sentiment direction of a text.
type Polarity string

const (
	PolarityPositive Polarity = "Positive"
	PolarityNegative Polarity = "Negative"
	PolarityNeutral  Polarity = "Neutral"
)

// Emotion is the single primary affect attributed to a text.
type Emotion string

const (
	EmotionHappy    Emotion = "Happy"
	EmotionSad      Emotion = "Sad"
	EmotionAngry    Emotion = "Angry"
	EmotionSurprise Emotion = "Surprise"
	EmotionFear     Emotion = "Fear"
	EmotionDisgust  Emotion = "Disgust"
	EmotionCalm     Emotion = "Calm"
)

// Subjectivity separates fact-based text from opinion.
type Subjectivity string

const (
	SubjectivityObjective    Subjectivity = "Objective"
	SubjectivityFeelingBased Subjectivity = "Feeling-based"
)

var (
	polarities     = []Polarity{PolarityPositive, PolarityNegative, PolarityNeutral}
	emotions       = []Emotion{EmotionHappy, EmotionSad, EmotionAngry, EmotionSurprise, EmotionFear, EmotionDisgust, EmotionCalm}
	subjectivities = []Subjectivity{SubjectivityObjective, SubjectivityFeelingBased}
)

// Polarities returns the closed polarity set in declaration order.
func Polarities() []Polarity { return append([]Polarity(nil), polarities...) }

// Emotions returns the closed emotion set in declaration order.
func Emotions() []Emotion { return append([]Emotion(nil), emotions...) }

// Subjectivities returns the closed subjectivity set in declaration order.
func Subjectivities() []Subjectivity { return append([]Subjectivity(nil), subjectivities...) }

// ParsePolarity matches value exactly against the polarity set after trimming.
func ParsePolarity(value string) (Polarity, error) {
	return parseClosed("polarity", value, polarities)
}

// ParseEmotion matches value exactly against the emotion set after trimming.
func ParseEmotion(value string) (Emotion, error) {
	return parseClosed("emotion", value, emotions)
}

// ParseSubjectivity matches value exactly against the subjectivity set after trimming.
func ParseSubjectivity(value string) (Subjectivity, error) {
	return parseClosed("subjectivity", value, subjectivities)
}

func parseClosed[T ~string](dimension, value string, allowed []T) (T, error) {
	trimmed := strings.TrimSpace(value)
	for _, candidate := range allowed {
		if string(candidate) == trimmed {
			return candidate, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%s: %w %q (allowed: %s)", dimension, ErrUnknownValue, value, joinValues(allowed))
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

func (p Polarity) String() string { return string(p) }

// Valid reports whether p belongs to the polarity set.
func (p Polarity) Valid() bool {
	_, err := ParsePolarity(string(p))
	return err == nil && strings.TrimSpace(string(p)) == string(p)
}

func (p Polarity) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("polarity: %w %q", ErrUnknownValue, string(p))
	}
	return []byte(p), nil
}

func (p *Polarity) UnmarshalText(text []byte) error {
	parsed, err := ParsePolarity(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (e Emotion) String() string { return string(e) }

// Valid reports whether e belongs to the emotion set.
func (e Emotion) Valid() bool {
	_, err := ParseEmotion(string(e))
	return err == nil && strings.TrimSpace(string(e)) == string(e)
}

func (e Emotion) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("emotion: %w %q", ErrUnknownValue, string(e))
	}
	return []byte(e), nil
}

func (e *Emotion) UnmarshalText(text []byte) error {
	parsed, err := ParseEmotion(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

func (s Subjectivity) String() string { return string(s) }

// Valid reports whether s belongs to the subjectivity set.
func (s Subjectivity) Valid() bool {
	_, err := ParseSubjectivity(string(s))
	return err == nil && strings.TrimSpace(string(s)) == string(s)
}

func (s Subjectivity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("subjectivity: %w %q", ErrUnknownValue, string(s))
	}
	return []byte(s), nil
}

func (s *Subjectivity) UnmarshalText(text []byte) error {
	parsed, err := ParseSubjectivity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
