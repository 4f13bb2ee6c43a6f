package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Tên lái xe trong các file tự khai mỗi nơi một kiểu: "Nguyễn Văn Hùng",
// "nguyen van hung", "NGUYEN  VAN HUNG". Khóa định danh gập hết các
// cách viết đó về một chuỗi ascii thường, chỉ dùng để gộp/tra cứu,
// không bao giờ dùng để hiển thị.

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// IdentityKey khóa định danh không phân biệt dấu/hoa thường/khoảng trắng.
// Idempotent: IdentityKey(IdentityKey(x)) == IdentityKey(x).
func IdentityKey(s string) string {
	s = strings.ToLower(s)
	// đ không phải dấu tổ hợp, NFD không tách được, phải thay tay
	s = strings.ReplaceAll(s, "đ", "d")
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TitleCase viết hoa chữ cái đầu mỗi cụm sau khoảng trắng, còn lại
// viết thường ("nguyễn VĂN a" -> "Nguyễn Văn A")
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	atStart := true
	for _, r := range s {
		if unicode.IsSpace(r) {
			atStart = true
			b.WriteRune(r)
			continue
		}
		if atStart {
			b.WriteRune(unicode.ToUpper(r))
			atStart = false
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// TicketCode khóa so khớp mã vé giữa hai sổ: viết hoa, bỏ mọi ký tự
// không phải chữ/số ("AB-123" và "ab123" về cùng "AB123")
func TicketCode(s string) string {
	up := strings.ToUpper(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(up))
	for _, r := range up {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// HasDiacritics chuỗi có ký tự tiếng Việt có dấu (dùng cho heuristic
// "bản nhiều thông tin hơn thắng" khi gộp tên)
func HasDiacritics(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return true
		}
	}
	return false
}
