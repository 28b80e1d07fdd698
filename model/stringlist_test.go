package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestStringListRoundTrip(t *testing.T) {
	in := StringList{"A", "B", `quote "x"`, "Konut İnşaatı"}
	v, err := in.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	var out StringList
	if err := out.Scan(v); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip = %v, want %v", out, in)
	}
}

func TestStringListScanTolerant(t *testing.T) {
	tests := []struct {
		name string
		src  any
	}{
		{"nil", nil},
		{"malformed", "not json"},
		{"object", []byte(`{"a":1}`)},
		{"json null", "null"},
	}
	for _, tt := range tests {
		var l StringList
		if err := l.Scan(tt.src); err != nil {
			t.Errorf("%s: Scan returned error %v", tt.name, err)
		}
		if l == nil || len(l) != 0 {
			t.Errorf("%s: got %v, want empty list", tt.name, l)
		}
	}
}

func TestStringListNilEncodesAsEmptyArray(t *testing.T) {
	var l StringList
	v, err := l.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if v != "[]" {
		t.Errorf("Value = %v, want []", v)
	}
	b, err := json.Marshal(struct {
		Tags StringList `json:"tags"`
	}{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(b) != `{"tags":[]}` {
		t.Errorf("json = %s, want {\"tags\":[]}", b)
	}
}
