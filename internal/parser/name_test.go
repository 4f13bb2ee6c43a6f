package parser

import "testing"

func TestCleanName_RolePrefix(t *testing.T) {
	t.Parallel()

	if got := CleanName("Lái xe: Nguyễn Văn Hùng 20B-12345", DailyNameVocab()); got != "Nguyễn Văn Hùng" {
		t.Fatalf("got %q", got)
	}
	if got := CleanName("Tài xế - Trần Đức Anh", DailyNameVocab()); got != "Trần Đức Anh" {
		t.Fatalf("got %q", got)
	}
}

func TestCleanName_ChatPrefixes(t *testing.T) {
	t.Parallel()

	if got := CleanName("KH LXE a Tuấn 0912345678", SelfNameVocab()); got != "Tuấn" {
		t.Fatalf("got %q", got)
	}
	if got := CleanName("e Dũng bus 29", SelfNameVocab()); got != "Dũng" {
		t.Fatalf("got %q", got)
	}
	if got := CleanName("c Hoa xe 16 chỗ", SelfNameVocab()); got != "Hoa" {
		t.Fatalf("got %q", got)
	}
}

func TestCleanName_VehicleNoise(t *testing.T) {
	t.Parallel()

	if got := CleanName("Phạm Minh bks 20L-4567", TransitNameVocab()); got != "Phạm Minh" {
		t.Fatalf("got %q", got)
	}
}

func TestCleanName_GarbageGuard(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "   ", "20B-12345", "Lái xe:", "x"} {
		if got := CleanName(s, DailyNameVocab()); got != "" {
			t.Fatalf("%q: want empty, got %q", s, got)
		}
	}
}

func TestCleanName_PrefixNotInsideName(t *testing.T) {
	t.Parallel()

	// "Anh" chỉ bị bóc khi là tiền tố đứng riêng, không phải khi là
	// một phần của tên
	if got := CleanName("Ánh Tuyết", SelfNameVocab()); got != "Ánh Tuyết" {
		t.Fatalf("got %q", got)
	}
}
