package normalize

import "testing"

func TestIdentityKey_Diacritics(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"Nguyễn Văn Hùng", "nguyen van hung"},
		{"Trần  Đức   Anh", "tran duc anh"},
		{"LÊ THỊ HOA", "le thi hoa"},
		{"Đặng Q. Dũng", "dang q dung"},
	}
	for _, p := range pairs {
		if IdentityKey(p[0]) != IdentityKey(p[1]) {
			t.Fatalf("%q vs %q: %q != %q", p[0], p[1], IdentityKey(p[0]), IdentityKey(p[1]))
		}
	}
}

func TestIdentityKey_Idempotent(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"Nguyễn Văn Hùng", "0912.345.678", "Thái Nguyên - Mỹ Đình"} {
		once := IdentityKey(s)
		if IdentityKey(once) != once {
			t.Fatalf("%q: %q -> %q", s, once, IdentityKey(once))
		}
	}
}

func TestTitleCase(t *testing.T) {
	t.Parallel()

	if got := TitleCase("nguyễn VĂN a"); got != "Nguyễn Văn A" {
		t.Fatalf("got %q", got)
	}
	if got := TitleCase("  lê  hoa"); got != "  Lê  Hoa" {
		t.Fatalf("got %q", got)
	}
}

func TestTicketCode(t *testing.T) {
	t.Parallel()

	if got := TicketCode("AB-123"); got != "AB123" {
		t.Fatalf("got %q", got)
	}
	if TicketCode("ab 123") != TicketCode("AB123") {
		t.Fatalf("case/space not collapsed")
	}
}

func TestHasDiacritics(t *testing.T) {
	t.Parallel()

	if !HasDiacritics("Hùng") {
		t.Fatalf("want true")
	}
	if HasDiacritics("Hung") {
		t.Fatalf("want false")
	}
}
