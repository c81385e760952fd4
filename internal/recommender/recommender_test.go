package recommender

import (
	"bytes"
	"context"
	"reflect"
	"strings"
	"testing"

	"mspro-labs/lunch-picker/internal/models"
	"mspro-labs/lunch-picker/internal/prompt"
	"mspro-labs/lunch-picker/internal/store"
)

const budget = 10000

func run(t *testing.T, input string, pick Picker) (*models.Restaurant, string) {
	t.Helper()
	var out bytes.Buffer
	p := prompt.New(strings.NewReader(input), &out)
	rec := New(p, budget)
	if pick != nil {
		rec.WithPicker(pick)
	}
	got, err := rec.Run(context.Background(), models.NewCatalog(store.Seed()))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return got, out.String()
}

func TestSingleCandidateAlwaysPicked(t *testing.T) {
	// 중식, no limit, spicy -> only 매운 짬뽕. The real random source must still land on it.
	for i := 0; i < 20; i++ {
		got, text := run(t, "2\n2\n2\ny\n", nil)
		if got == nil || got.Name != "매운 짬뽕" {
			t.Fatalf("Expected 매운 짬뽕, got %+v", got)
		}
		if i == 0 {
			for _, want := range []string{"(후보 1개)", "식당명: [ 매운 짬뽕 ]", "가격: 10,000원", "특징: #중식 #가성비 #국물 #매콤", "즐거운 점심시간"} {
				if !strings.Contains(text, want) {
					t.Errorf("Expected output to contain %q, got:\n%s", want, text)
				}
			}
		}
	}
}

func TestPickerChoosesAmongCandidates(t *testing.T) {
	// 한식, no limit, no preference -> 순대국밥, 비빔밥
	var seen int
	got, text := run(t, "1\n2\n4\nn\n", func(n int) int {
		seen = n
		return n - 1
	})
	if seen != 2 {
		t.Errorf("Expected picker over 2 candidates, got %d", seen)
	}
	if got == nil || got.Name != "비빔밥" {
		t.Errorf("Expected last candidate 비빔밥, got %+v", got)
	}
	if !strings.Contains(text, "아쉽네요") {
		t.Errorf("Expected the 'not satisfied' message, got:\n%s", text)
	}
}

func TestNoCandidates(t *testing.T) {
	got, text := run(t, "4\n1\n2\n", func(int) int {
		t.Fatal("picker must not be called without candidates")
		return 0
	})
	if got != nil {
		t.Errorf("Expected no pick, got %+v", got)
	}
	if !strings.Contains(text, "조건에 맞는 식당이 없습니다") {
		t.Errorf("Expected no-match notice, got:\n%s", text)
	}
	if strings.Contains(text, "마음에 드시나요") {
		t.Error("Feedback must not be asked without a pick")
	}
}

func TestFeedbackRetries(t *testing.T) {
	_, text := run(t, "5\n1\n4\nok\n\ny\n", nil)
	if n := strings.Count(text, "마음에 드시나요? (Y/N): "); n != 3 {
		t.Errorf("Expected 3 feedback prompts, got %d", n)
	}
	if n := strings.Count(text, prompt.ErrNotYesOrNo.Error()); n != 2 {
		t.Errorf("Expected 2 Y/N rejections, got %d", n)
	}
}

func TestTags(t *testing.T) {
	testCases := []struct {
		r    models.Restaurant
		want []string
	}{
		{
			models.Restaurant{Category: models.Western, Price: 14000, IsSpicy: models.Flag(false), HasSoup: models.Flag(true)},
			[]string{"#양식", "#플렉스", "#국물"},
		},
		{
			models.Restaurant{Category: models.Korean, Price: 10000},
			[]string{"#한식", "#가성비"},
		},
		{
			models.Restaurant{Category: models.Other, Price: 5000, IsSpicy: models.Flag(true), HasSoup: models.Flag(true)},
			[]string{"#기타", "#가성비", "#국물", "#매콤"},
		},
	}

	for _, tc := range testCases {
		if got := Tags(tc.r, budget); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Tags(%+v): expected %v, got %v", tc.r, tc.want, got)
		}
	}
}
