package synthesizer_test

import (
	"strings"
	"testing"

	"gitlab.com/shodh-oj.net/internal/core/services/synthesizer"
	"gitlab.com/shodh-oj.net/internal/domain"
)

func TestShapeFromTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  synthesizer.Shape
	}{
		{"Two Sum", synthesizer.ShapeTwoSum},
		{"two sum variant", synthesizer.ShapeTwoSum},
		{"Palindrome Number", synthesizer.ShapePalindrome},
		{"FizzBuzz", synthesizer.ShapeFizzBuzz},
		{"Fizz Buzz Deluxe", synthesizer.ShapeFizzBuzz},
		{"Reverse Integer", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := synthesizer.ShapeFromTitle(tt.title); got != tt.want {
			t.Errorf("ShapeFromTitle(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestSynthesizeWrapsUserCode(t *testing.T) {
	t.Parallel()

	registry := synthesizer.NewRegistry()
	problem := &domain.Problem{Title: "Two Sum", Shape: string(synthesizer.ShapeTwoSum)}
	userCode := "def two_sum(nums, target):\n    return [0, 1]"

	source := registry.Synthesize(problem, userCode, "python")

	if !strings.Contains(source, userCode) {
		t.Fatal("synthesized program does not contain the user fragment")
	}
	if !strings.Contains(source, "two_sum(nums, target)") {
		t.Error("synthesized program is missing the stdin harness")
	}
}

func TestSynthesizeJavaProducesSolutionClass(t *testing.T) {
	t.Parallel()

	registry := synthesizer.NewRegistry()
	problem := &domain.Problem{Title: "Palindrome Number", Shape: string(synthesizer.ShapePalindrome)}

	source := registry.Synthesize(problem, "public boolean isPalindrome(int x) { return true; }", "java")

	if !strings.Contains(source, "public class Solution") {
		t.Error("java program must declare the Solution class")
	}
	if !strings.Contains(source, "public static void main") {
		t.Error("java program must declare a main method")
	}
}

func TestSynthesizeFallsBackToTitleMatch(t *testing.T) {
	t.Parallel()

	registry := synthesizer.NewRegistry()
	// legacy problem rows carry no shape
	problem := &domain.Problem{Title: "FizzBuzz", Shape: ""}

	source := registry.Synthesize(problem, "def fizz_buzz(n):\n    return []", "python")

	if !strings.Contains(source, "fizz_buzz(n)") {
		t.Error("title matching should have selected the fizzbuzz harness")
	}
}

func TestSynthesizeUnknownShapeUsesFallback(t *testing.T) {
	t.Parallel()

	registry := synthesizer.NewRegistry()
	problem := &domain.Problem{Title: "Reverse Integer"}
	userCode := "print(int(input()[::-1]))"

	source := registry.Synthesize(problem, userCode, "python")

	if !strings.Contains(source, userCode) {
		t.Fatal("fallback must keep the user fragment")
	}
}

func TestSynthesizeUnknownLanguageReturnsCodeUnchanged(t *testing.T) {
	t.Parallel()

	registry := synthesizer.NewRegistry()
	problem := &domain.Problem{Title: "Two Sum", Shape: string(synthesizer.ShapeTwoSum)}

	source := registry.Synthesize(problem, "fn main() {}", "rust")
	if source != "fn main() {}" {
		t.Errorf("unknown language should pass code through, got %q", source)
	}
}

func TestSynthesizeAllShapesAllLanguages(t *testing.T) {
	t.Parallel()

	registry := synthesizer.NewRegistry()
	shapes := []synthesizer.Shape{
		synthesizer.ShapeTwoSum,
		synthesizer.ShapePalindrome,
		synthesizer.ShapeFizzBuzz,
	}
	languages := []string{"java", "python", "cpp", "javascript"}

	for _, shape := range shapes {
		for _, lang := range languages {
			problem := &domain.Problem{Title: "X", Shape: string(shape)}
			source := registry.Synthesize(problem, "USER_FRAGMENT", lang)
			if !strings.Contains(source, "USER_FRAGMENT") {
				t.Errorf("shape %s language %s lost the user fragment", shape, lang)
			}
			if source == "USER_FRAGMENT" {
				t.Errorf("shape %s language %s produced no harness", shape, lang)
			}
		}
	}
}
