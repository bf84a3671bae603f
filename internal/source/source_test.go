package source

import "testing"

func TestNormalizeStripsBOM(t *testing.T) {
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("func main() {}")...)
	got := Normalize(raw)
	if string(got) != "func main() {}" {
		t.Fatalf("Normalize() = %q, want BOM stripped", got)
	}
}

func TestNormalizeNFC(t *testing.T) {
	// "e" + combining acute accent (NFD, U+0065 U+0301) should normalize to
	// the precomposed e-acute (NFC, U+00E9), so two differently-encoded-but-
	// equivalent source files produce identical byte offsets.
	nfd := []byte{'c', 'a', 'f', 'e', 0xCC, 0x81}
	nfc := []byte{'c', 'a', 'f', 0xC3, 0xA9}
	if got := Normalize(nfd); string(got) != string(nfc) {
		t.Fatalf("Normalize(NFD) = %q, want %q", got, nfc)
	}
}

func TestNewBuffer(t *testing.T) {
	b := NewBuffer("a.bnj", []byte("x"))
	if b.Path != "a.bnj" || string(b.Content) != "x" {
		t.Fatalf("unexpected buffer: %+v", b)
	}
}
