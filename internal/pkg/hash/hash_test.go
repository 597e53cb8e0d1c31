package hash

import "testing"

func TestSum(t *testing.T) {
	a := Sum([]byte("segment payload"))
	if len(a) != SumLen {
		t.Fatalf("checksum length = %d, want %d", len(a), SumLen)
	}
	for _, c := range a {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			t.Errorf("checksum %q contains non-hex character %q", a, c)
		}
	}

	if b := Sum([]byte("segment payload")); b != a {
		t.Errorf("checksum not deterministic: %s vs %s", a, b)
	}
	if c := Sum([]byte("segment payloae")); c == a {
		t.Errorf("distinct inputs share checksum %s", a)
	}
	if d := Sum(nil); len(d) != SumLen {
		t.Errorf("empty input checksum length = %d", len(d))
	}
}
