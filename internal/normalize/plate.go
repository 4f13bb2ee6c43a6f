package normalize

import (
	"regexp"
	"strings"
)

// Biển số Việt Nam: 2 số vùng + 1-2 chữ seri + 4-5 số,
// người nhập hay chen khoảng trắng, chấm, gạch tùy hứng.
var (
	rePlate      = regexp.MustCompile(`(\d{2}[A-Z]{1,2})[\s.\-]*(\d{3,4}\.?\d{0,2})`)
	rePlateSep   = regexp.MustCompile(`[\s.\-]`)
	rePlateToken = regexp.MustCompile(`^[0-9A-Z.\-]{1,14}$`)
)

// Plate rút biển số từ chuỗi tự do, trả về dạng "20B-12345".
// Không khớp mẫu biển chuẩn thì chấp nhận token ngắn vừa có chữ
// vừa có số, không chứa khoảng trắng. Không tìm thấy trả rỗng.
func Plate(s string) string {
	up := strings.ToUpper(strings.TrimSpace(s))
	if up == "" {
		return ""
	}

	if m := rePlate.FindStringSubmatch(up); m != nil {
		return m[1] + "-" + rePlateSep.ReplaceAllString(m[2], "")
	}

	// token dự phòng: ngắn, có cả chữ lẫn số, không có khoảng trắng giữa
	if rePlateToken.MatchString(up) && hasLetterAndDigit(up) {
		return rePlateSep.ReplaceAllString(up, "")
	}
	return ""
}

func hasLetterAndDigit(s string) bool {
	hasLetter, hasDigit := false, false
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}
