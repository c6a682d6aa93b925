package invites

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseEmailList(t *testing.T) {
	got, err := parseEmailList(" a@example.com, b@example.com ,, c@example.com")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a@example.com", "b@example.com", "c@example.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseEmailList = %v, want %v", got, want)
	}
}

func TestParseEmailListRejectsWholeBatch(t *testing.T) {
	// A bad address anywhere in the list must reject everything before a
	// single send happens; otherwise earlier sends would go unlogged.
	_, err := parseEmailList("a@example.com, not-an-address, c@example.com")
	if err == nil {
		t.Fatal("list with an invalid address accepted")
	}
	if !strings.Contains(err.Error(), "not-an-address") {
		t.Errorf("error %q does not name the bad address", err)
	}
}

func TestParseEmailListEmpty(t *testing.T) {
	for _, raw := range []string{"", "  ", ",,,"} {
		if _, err := parseEmailList(raw); err == nil {
			t.Errorf("parseEmailList(%q) accepted an empty list", raw)
		}
	}
}
