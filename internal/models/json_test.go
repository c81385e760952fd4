package models

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestUnmarshalTolerant(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		wantPrice int
		hasPrice  bool
		spicy     *bool
		extraKeys []string
	}{
		{"clean", `{"name":"A","category":"한식","price":9000,"is_spicy":true,"has_soup":false}`, 9000, true, Flag(true), nil},
		{"float price", `{"name":"A","category":"한식","price":9000.0}`, 9000, true, nil, []string{"price"}},
		{"fractional price rounds up", `{"name":"A","category":"한식","price":10000.5}`, 10001, true, nil, []string{"price"}},
		{"string price", `{"name":"A","category":"한식","price":"9000"}`, 0, false, nil, []string{"price"}},
		{"null price", `{"name":"A","category":"한식","price":null}`, 0, false, nil, []string{"price"}},
		{"string flag", `{"name":"A","category":"한식","price":1,"is_spicy":"yes"}`, 1, true, nil, []string{"is_spicy"}},
		{"unknown key", `{"name":"A","category":"한식","price":1,"memo":"단골"}`, 1, true, nil, []string{"memo"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var r Restaurant
			if err := json.Unmarshal([]byte(tc.input), &r); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if r.Price != tc.wantPrice || r.HasPrice() != tc.hasPrice {
				t.Errorf("Expected price %d (known=%v), got %d (known=%v)", tc.wantPrice, tc.hasPrice, r.Price, r.HasPrice())
			}
			if (r.IsSpicy == nil) != (tc.spicy == nil) || (r.IsSpicy != nil && *r.IsSpicy != *tc.spicy) {
				t.Errorf("Expected spicy %v, got %v", tc.spicy, r.IsSpicy)
			}
			if len(r.Extra) != len(tc.extraKeys) {
				t.Errorf("Expected extra keys %v, got %v", tc.extraKeys, r.Extra)
			}
			for _, key := range tc.extraKeys {
				if _, ok := r.Extra[key]; !ok {
					t.Errorf("Expected '%s' kept in Extra", key)
				}
			}
		})
	}
}

func TestUnmarshalRejectsNonObject(t *testing.T) {
	for _, input := range []string{`1`, `"x"`, `[]`, `null`} {
		var r Restaurant
		if err := r.UnmarshalJSON([]byte(input)); err == nil {
			t.Errorf("UnmarshalJSON(%s): expected an error", input)
		}
	}
}

func TestMarshalWritesStoredValuesBack(t *testing.T) {
	input := `{"name":"A","category":"양식","price":9000.0,"is_spicy":"yes","memo":"단골","rating":4.5}`
	var r Restaurant
	if err := json.Unmarshal([]byte(input), &r); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	out, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := `{"name":"A","category":"양식","price":9000.0,"is_spicy":"yes","memo":"단골","rating":4.5}`
	if string(out) != want {
		t.Errorf("Expected %s, got %s", want, out)
	}
}

func TestMarshalOmitsAbsentKeys(t *testing.T) {
	var r Restaurant
	if err := json.Unmarshal([]byte(`{"category":"기타"}`), &r); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	out, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != `{"category":"기타"}` {
		t.Errorf("Absent keys must stay absent, got %s", out)
	}
}

func TestMarshalBuiltRecord(t *testing.T) {
	r := Restaurant{Name: "A&B <분식>", Category: Other, Price: 5000, IsSpicy: Flag(false), HasSoup: Flag(true)}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	text := strings.TrimSpace(buf.String())
	if !strings.Contains(text, `"name":"A&B <분식>"`) {
		t.Errorf("Expected unescaped name, got %s", text)
	}
	if !strings.HasSuffix(text, `"price":5000,"is_spicy":false,"has_soup":true}`) {
		t.Errorf("Unexpected field order or values: %s", text)
	}
}
