package normalize

import (
	"testing"

	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/model"
)

func TestNumber(t *testing.T) {
	t.Parallel()

	if got := Number(model.Num(12)); got != 12 {
		t.Fatalf("numeric: got %v", got)
	}
	if got := Number(model.Str("5 khách")); got != 5 {
		t.Fatalf("with unit: got %v", got)
	}
	if got := Number(model.Str("1,200,000 đ")); got != 1200000 {
		t.Fatalf("thousand sep: got %v", got)
	}
	if got := Number(model.Str("-2.5")); got != -2.5 {
		t.Fatalf("negative: got %v", got)
	}
	if got := Number(model.Str("không có")); got != 0 {
		t.Fatalf("no digits: got %v", got)
	}
}

func TestPhone(t *testing.T) {
	t.Parallel()

	if got := Phone("0912.345.678"); got != "0912345678" {
		t.Fatalf("got %q", got)
	}
	if got := Phone("Liên hệ: 0912.345.678 (Anh Hùng)"); got != "0912345678" {
		t.Fatalf("embedded: got %q", got)
	}
	if got := Phone("+84 912 345 678"); got != "0912345678" {
		t.Fatalf("country code: got %q", got)
	}
	if got := Phone("12345"); got != "" {
		t.Fatalf("too short: got %q", got)
	}
	if got := Phone("091234567890123"); got != "" {
		t.Fatalf("too long: got %q", got)
	}
}

func TestPlate(t *testing.T) {
	t.Parallel()

	if got := Plate("20B 123.45"); got != "20B-12345" {
		t.Fatalf("got %q", got)
	}
	if got := Plate("20b-1234"); got != "20B-1234" {
		t.Fatalf("lowercase: got %q", got)
	}
	// mẫu biển nằm giữa chuỗi nhiễu
	if got := Plate("BKS 20L-4567"); got != "20L-4567" {
		t.Fatalf("embedded: got %q", got)
	}
	// token dự phòng chữ+số
	if got := Plate("X1Y2"); got != "X1Y2" {
		t.Fatalf("fallback: got %q", got)
	}
	if got := Plate("chỉ chữ thôi"); got != "" {
		t.Fatalf("letters only: got %q", got)
	}
}
