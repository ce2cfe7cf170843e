package evaluation

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadGoldenCases_ValidFile(t *testing.T) {
	content := `[
		{"id": "c1", "target": "label1", "results": ["label2", "label1", "label3"], "similarities": [0.8, 0.9, 0.7], "difficulty": "easy"},
		{"id": "c2", "target": "label9", "results": ["label9", "label4"], "similarities": [0.6, 0.6], "difficulty": "hard"}
	]`
	path := writeTempFile(t, content)

	cases, err := LoadGoldenCases(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(cases))
	}
	if cases[0].ID != "c1" {
		t.Errorf("expected id c1, got %s", cases[0].ID)
	}
	if cases[0].Target != "label1" {
		t.Errorf("expected target label1, got %s", cases[0].Target)
	}
	if len(cases[0].Results) != 3 {
		t.Errorf("expected 3 results, got %d", len(cases[0].Results))
	}
	if cases[1].Difficulty != DifficultyHard {
		t.Errorf("expected difficulty hard, got %s", cases[1].Difficulty)
	}
}

func TestLoadGoldenCases_InvalidFile(t *testing.T) {
	_, err := LoadGoldenCases("/nonexistent/path.json")
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestLoadGoldenCases_InvalidJSON(t *testing.T) {
	path := writeTempFile(t, `not valid json`)
	_, err := LoadGoldenCases(path)
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadGoldenCases_EmptyArray(t *testing.T) {
	path := writeTempFile(t, `[]`)
	cases, err := LoadGoldenCases(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cases) != 0 {
		t.Errorf("expected 0 cases, got %d", len(cases))
	}
}

func TestDifficulty_Validation(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		valid      bool
	}{
		{DifficultyEasy, true},
		{DifficultyMedium, true},
		{DifficultyHard, true},
		{Difficulty("impossible"), false},
		{Difficulty(""), false},
	}
	for _, tt := range tests {
		got := tt.difficulty.IsValid()
		if got != tt.valid {
			t.Errorf("Difficulty(%q).IsValid() = %v, want %v", tt.difficulty, got, tt.valid)
		}
	}
}

func TestValidateGoldenCases_MissingID(t *testing.T) {
	cases := []GoldenCase{
		{ID: "", Target: "a", Results: []string{"a"}, Similarities: []float64{0.9}, Difficulty: DifficultyEasy},
	}
	if err := ValidateGoldenCases(cases); err == nil {
		t.Error("expected validation error for missing ID")
	}
}

func TestValidateGoldenCases_DuplicateIDs(t *testing.T) {
	cases := []GoldenCase{
		{ID: "c1", Target: "a", Results: []string{"a"}, Similarities: []float64{0.9}, Difficulty: DifficultyEasy},
		{ID: "c1", Target: "b", Results: []string{"b"}, Similarities: []float64{0.8}, Difficulty: DifficultyEasy},
	}
	if err := ValidateGoldenCases(cases); err == nil {
		t.Error("expected validation error for duplicate IDs")
	}
}

func TestValidateGoldenCases_MissingTarget(t *testing.T) {
	cases := []GoldenCase{
		{ID: "c1", Target: "", Results: []string{"a"}, Similarities: []float64{0.9}, Difficulty: DifficultyEasy},
	}
	if err := ValidateGoldenCases(cases); err == nil {
		t.Error("expected validation error for missing target")
	}
}

func TestValidateGoldenCases_RowLengthMismatch(t *testing.T) {
	cases := []GoldenCase{
		{ID: "c1", Target: "a", Results: []string{"a", "b"}, Similarities: []float64{0.9}, Difficulty: DifficultyEasy},
	}
	if err := ValidateGoldenCases(cases); err == nil {
		t.Error("expected validation error for mismatched row lengths")
	}
}

func TestValidateGoldenCases_InvalidDifficulty(t *testing.T) {
	cases := []GoldenCase{
		{ID: "c1", Target: "a", Results: []string{"a"}, Similarities: []float64{0.9}, Difficulty: Difficulty("impossible")},
	}
	if err := ValidateGoldenCases(cases); err == nil {
		t.Error("expected validation error for invalid difficulty")
	}
}

func TestValidateGoldenCases_Valid(t *testing.T) {
	cases := []GoldenCase{
		{ID: "c1", Target: "a", Results: []string{"a", "b"}, Similarities: []float64{0.9, 0.8}, Difficulty: DifficultyEasy},
		{ID: "c2", Target: "b", Results: []string{"a", "b"}, Similarities: []float64{0.7, 0.7}, Difficulty: DifficultyMedium},
	}
	if err := ValidateGoldenCases(cases); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "cases.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}
