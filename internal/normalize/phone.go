package normalize

import "strings"

// Phone chuẩn hóa số điện thoại về dạng 0xxxxxxxxx: bỏ hết ký tự
// không phải số, đầu số quốc gia 84 thay bằng 0. Kết quả ngoài
// khoảng 9-11 chữ số bị loại (trả rỗng).
func Phone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if strings.HasPrefix(digits, "84") {
		digits = "0" + digits[2:]
	}
	if len(digits) < 9 || len(digits) > 11 {
		return ""
	}
	return digits
}
