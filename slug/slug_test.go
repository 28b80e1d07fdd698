package slug

import (
	"errors"
	"testing"
)

func TestMake(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello World", "hello-world"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"2024 İnşaat Sektörü Trendleri", "2024-insaat-sektoru-trendleri"},
		{"Enerji Verimli Bina Tasarımı", "enerji-verimli-bina-tasarimi"},
		{"Çağdaş Ofis & Güçlü Yapı", "cagdas-ofis-guclu-yapi"},
		{"ISPARTA", "isparta"},
		{"a--b---c", "a-b-c"},
		{"-already-slugged-", "already-slugged"},
		{"Tabs\tand\nnewlines", "tabs-and-newlines"},
		{"punctuation!? removed.", "punctuation-removed"},
		{"Café Résumé", "cafe-resume"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Make(tt.input); got != tt.expected {
			t.Errorf("Make(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestMakeIsIdempotent(t *testing.T) {
	for _, in := range []string{"Konut İnşaatı", "a b c", "x--y"} {
		once := Make(in)
		if twice := Make(once); twice != once {
			t.Errorf("Make(Make(%q)) = %q, want %q", in, twice, once)
		}
	}
}

func TestUnique(t *testing.T) {
	used := map[string]bool{"villa": true, "villa-2": true}
	got, err := Unique("villa", func(c string) (bool, error) { return used[c], nil })
	if err != nil {
		t.Fatalf("Unique failed: %v", err)
	}
	if got != "villa-3" {
		t.Errorf("Unique = %q, want villa-3", got)
	}

	got, err = Unique("ofis", func(c string) (bool, error) { return used[c], nil })
	if err != nil {
		t.Fatalf("Unique failed: %v", err)
	}
	if got != "ofis" {
		t.Errorf("Unique = %q, want ofis", got)
	}
}

func TestUniquePropagatesError(t *testing.T) {
	boom := errors.New("boom")
	if _, err := Unique("x", func(string) (bool, error) { return false, boom }); !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"İSTANBUL", "istanbul"},
		{"Şantiye Güvenliği", "santiye guvenligi"},
		{"Konut & Ofis", "konut & ofis"},
	}
	for _, tt := range tests {
		if got := Fold(tt.input); got != tt.expected {
			t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
