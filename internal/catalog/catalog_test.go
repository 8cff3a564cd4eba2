package catalog

import (
	"reflect"
	"testing"
)

var testNames = StaticResolver{
	"en":      "English",
	"fr":      "French",
	"de":      "German",
	"ja":      "Japanese",
	"en-GB":   "British English",
	"es-419":  "Latin American Spanish",
	"zh-Hans": "Simplified Chinese",
	"nb":      "Norwegian Bokmål",
	"blank":   "",
}

func TestParseIdentifiers(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{name: "lf", in: "en\nfr\n", want: []string{"en", "fr"}},
		{name: "crlf", in: "en\r\nfr\r\n", want: []string{"en", "fr"}},
		{name: "blank_lines", in: "\n\nen\n\n\nfr", want: []string{"en", "fr"}},
		{name: "unicode_separators", in: "en\u2028fr\u2029de\u0085ja", want: []string{"en", "fr", "de", "ja"}},
		{name: "keeps_spaces", in: " en\nfr \n", want: []string{" en", "fr "}},
		{name: "keeps_order_and_duplicates", in: "fr\nen\nfr", want: []string{"fr", "en", "fr"}},
		{name: "empty", in: "", want: []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseIdentifiers([]byte(tc.in))
			if err != nil {
				t.Fatalf("ParseIdentifiers: %v", err)
			}
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ParseIdentifiers(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseIdentifiers_InvalidUTF8(t *testing.T) {
	if _, err := ParseIdentifiers([]byte{'e', 'n', '\n', 0xff, 0xfe}); err == nil {
		t.Fatalf("expected error for invalid UTF-8")
	}
}

func TestBuild_Scenario(t *testing.T) {
	res := Build([]string{"en", "fr", "zz-invalid"}, testNames)

	want := []Entry{{Name: "English", Symbol: "en"}, {Name: "French", Symbol: "fr"}}
	if !reflect.DeepEqual(res.Entries, want) {
		t.Fatalf("Entries = %+v, want %+v", res.Entries, want)
	}
	if !reflect.DeepEqual(res.Dropped, []string{"zz-invalid"}) {
		t.Fatalf("Dropped = %q", res.Dropped)
	}
	if !res.Unique() {
		t.Fatalf("expected unique symbols, got duplicates %q", res.Duplicates)
	}
}

func TestBuild_SortedByName(t *testing.T) {
	ids := []string{"zh-Hans", "ja", "fr", "en-GB", "de", "es-419", "en", "nb"}
	res := Build(ids, testNames)

	if len(res.Entries) != len(ids) {
		t.Fatalf("expected %d entries, got %d", len(ids), len(res.Entries))
	}
	for i := 1; i < len(res.Entries); i++ {
		if res.Entries[i-1].Name > res.Entries[i].Name {
			t.Fatalf("entries out of order at %d: %q > %q", i, res.Entries[i-1].Name, res.Entries[i].Name)
		}
	}
	if res.Entries[0].Symbol != "en-GB" {
		t.Fatalf("expected British English first, got %+v", res.Entries[0])
	}
}

func TestBuild_CaseSensitiveOrder(t *testing.T) {
	r := StaticResolver{"a": "apple", "b": "Banana"}
	res := Build([]string{"a", "b"}, r)
	if res.Entries[0].Name != "Banana" {
		t.Fatalf("expected byte-wise order with uppercase first, got %+v", res.Entries)
	}
}

func TestBuild_FiltersGaps(t *testing.T) {
	ids := []string{"en", "blank", "unknown", "", "fr"}
	res := Build(ids, testNames)

	for _, e := range res.Entries {
		if e.Name == "" || e.Symbol == "" {
			t.Fatalf("entry with empty field: %+v", e)
		}
	}
	if len(res.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %+v", res.Entries)
	}
	if !reflect.DeepEqual(res.Dropped, []string{"blank", "unknown"}) {
		t.Fatalf("Dropped = %q", res.Dropped)
	}
}

func TestBuild_Duplicates(t *testing.T) {
	res := Build([]string{"fr", "en", "fr", "de", "en"}, testNames)

	if res.Unique() {
		t.Fatalf("expected duplicates to be detected")
	}
	if !reflect.DeepEqual(res.Duplicates, []string{"en", "fr"}) {
		t.Fatalf("Duplicates = %q", res.Duplicates)
	}
	if len(res.Entries) != 5 {
		t.Fatalf("duplicates must stay in the catalog, got %d entries", len(res.Entries))
	}
}

func TestBuild_StableForEqualNames(t *testing.T) {
	r := StaticResolver{"no": "Norwegian", "no-NO": "Norwegian"}
	first := Build([]string{"no-NO", "no"}, r)
	if first.Entries[0].Symbol != "no-NO" || first.Entries[1].Symbol != "no" {
		t.Fatalf("expected input order for equal names, got %+v", first.Entries)
	}
	second := Build([]string{"no-NO", "no"}, r)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Build is not deterministic")
	}
}

func TestBuild_Empty(t *testing.T) {
	res := Build(nil, testNames)
	if len(res.Entries) != 0 || len(res.Dropped) != 0 || !res.Unique() {
		t.Fatalf("unexpected result for empty input: %+v", res)
	}
}
