package cardsec

import (
	"bytes"
	"testing"
)

func TestHashNumberHMAC(t *testing.T) {
	key := []byte("test-key")
	a := HashNumberHMAC("4200000000000000", key)
	b := HashNumberHMAC("4200000000000000", key)
	if !bytes.Equal(a, b) {
		t.Fatalf("hash is not deterministic")
	}
	if len(a) != 32 {
		t.Fatalf("hash length = %d want 32", len(a))
	}
	if bytes.Equal(a, HashNumberHMAC("4200000000000001", key)) {
		t.Fatalf("different numbers produced the same hash")
	}
	if bytes.Equal(a, HashNumberHMAC("4200000000000000", []byte("other-key"))) {
		t.Fatalf("different keys produced the same hash")
	}
}

func TestLastN(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"4200000000001234", 4, "1234"},
		{"123", 4, "123"},
		{"", 4, ""},
	}
	for _, c := range cases {
		if got := LastN(c.in, c.n); got != c.want {
			t.Fatalf("LastN(%q, %d) = %q want %q", c.in, c.n, got, c.want)
		}
	}
}
