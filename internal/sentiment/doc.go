// Package sentiment defines the classification vocabulary and result shape.
//
// Polarity, Emotion and Subjectivity are string-backed closed sets. Their
// text unmarshalers reject values outside the set, so json.Unmarshal into a
// Result fails on drift instead of passing unknown labels through. Result.Validate
// reports every violated field at once for callers that decode loosely.
//
// Schema exposes the same contract as a JSON schema document for structured
// output requests and prompt embedding.
package sentiment
