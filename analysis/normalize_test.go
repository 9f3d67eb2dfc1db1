package analysis

import (
	"testing"

	"credcheck/inference"
	"credcheck/types"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name    string
		outcome inference.Outcome
		want    types.AnalysisResult
	}{
		{
			name: "real prediction with fact check",
			outcome: inference.Outcome{
				Prediction: "Real",
				Confidence: 0.92,
				FactCheck:  &types.FactCheck{Verdict: types.VerdictTrue, Reason: "Matches known reporting"},
			},
			want: types.AnalysisResult{
				Structure:  types.StructureWellFormed,
				Confidence: 92,
				FactCheck:  types.FactCheck{Verdict: types.VerdictTrue, Reason: "Matches known reporting"},
			},
		},
		{
			name: "fake prediction without fact check gets default",
			outcome: inference.Outcome{
				Prediction: "Fake",
				Confidence: 0.81,
			},
			want: types.AnalysisResult{
				Structure:  types.StructurePoorlyFormed,
				Confidence: 81,
				FactCheck:  types.FactCheck{Verdict: types.VerdictInsufficient, Reason: "Not available"},
			},
		},
		{
			name: "unknown prediction treated as poorly structured",
			outcome: inference.Outcome{
				Prediction: "Unsure",
				Confidence: 0.5,
			},
			want: types.AnalysisResult{
				Structure:  types.StructurePoorlyFormed,
				Confidence: 50,
				FactCheck:  types.FactCheck{Verdict: types.VerdictInsufficient, Reason: "Not available"},
			},
		},
		{
			name:    "missing confidence defaults to zero",
			outcome: inference.Outcome{Prediction: "Real"},
			want: types.AnalysisResult{
				Structure:  types.StructureWellFormed,
				Confidence: 0,
				FactCheck:  types.FactCheck{Verdict: types.VerdictInsufficient, Reason: "Not available"},
			},
		},
		{
			name:    "confidence rounds to nearest percent",
			outcome: inference.Outcome{Prediction: "Fake", Confidence: 0.816},
			want: types.AnalysisResult{
				Structure:  types.StructurePoorlyFormed,
				Confidence: 82,
				FactCheck:  types.FactCheck{Verdict: types.VerdictInsufficient, Reason: "Not available"},
			},
		},
		{
			name:    "confidence above one clamps to hundred",
			outcome: inference.Outcome{Prediction: "Real", Confidence: 1.2},
			want: types.AnalysisResult{
				Structure:  types.StructureWellFormed,
				Confidence: 100,
				FactCheck:  types.FactCheck{Verdict: types.VerdictInsufficient, Reason: "Not available"},
			},
		},
		{
			name:    "negative confidence clamps to zero",
			outcome: inference.Outcome{Prediction: "Real", Confidence: -0.3},
			want: types.AnalysisResult{
				Structure:  types.StructureWellFormed,
				Confidence: 0,
				FactCheck:  types.FactCheck{Verdict: types.VerdictInsufficient, Reason: "Not available"},
			},
		},
		{
			name: "unrecognized verdict replaced with default",
			outcome: inference.Outcome{
				Prediction: "Real",
				Confidence: 0.7,
				FactCheck:  &types.FactCheck{Verdict: "MAYBE", Reason: "who knows"},
			},
			want: types.AnalysisResult{
				Structure:  types.StructureWellFormed,
				Confidence: 70,
				FactCheck:  types.FactCheck{Verdict: types.VerdictInsufficient, Reason: "Not available"},
			},
		},
		{
			name: "false verdict passes through",
			outcome: inference.Outcome{
				Prediction: "Fake",
				Confidence: 0.99,
				FactCheck:  &types.FactCheck{Verdict: types.VerdictFalse, Reason: "Contradicts the record"},
			},
			want: types.AnalysisResult{
				Structure:  types.StructurePoorlyFormed,
				Confidence: 99,
				FactCheck:  types.FactCheck{Verdict: types.VerdictFalse, Reason: "Contradicts the record"},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Normalize(&c.outcome)
			if got != c.want {
				t.Fatalf("Normalize() = %+v; want %+v", got, c.want)
			}
		})
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	outcome := inference.Outcome{Prediction: "Real", Confidence: 0.42}
	first := Normalize(&outcome)
	for i := 0; i < 10; i++ {
		if got := Normalize(&outcome); got != first {
			t.Fatalf("Normalize() not deterministic: %+v vs %+v", got, first)
		}
	}
}
