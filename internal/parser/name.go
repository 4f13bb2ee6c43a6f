package parser

import (
	"regexp"
	"strings"

	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/normalize"
)

// Ô tên lái xe hiếm khi chỉ có tên: "Lái xe: Nguyễn Văn Hùng 20B-12345",
// "KH LXE a Tuấn 0912345678", "e Dũng bus 29". Bỏ nhãn vai trò ở đầu,
// cắt tại điểm nhiễu đầu tiên (số, cụm dấu câu, từ khóa xe cộ) rồi
// viết hoa lại phần còn sống sót.

// NameVocab bộ từ vựng làm sạch tên theo loại file
type NameVocab struct {
	Prefixes []string         // nhãn vai trò ở đầu, xếp dài trước ngắn
	Stops    []*regexp.Regexp // mẫu nhiễu cắt đuôi, ngoài số và dấu câu mặc định
}

// ký tự dừng mặc định: chữ số hoặc cụm dấu câu
var reStopChar = regexp.MustCompile(`[0-9,;:()/\\.\-–+*&"']`)

var (
	reStopBus = regexp.MustCompile(`\bbus\b`)
	reStopBKS = regexp.MustCompile(`\bbks`)
	reStopXe  = regexp.MustCompile(`\bxe\s*\d`)
	reStopSDT = regexp.MustCompile(`\bsđt|\bsdt|\bđt\b`)
)

// DailyNameVocab cột tên trong nhật trình ngày
func DailyNameVocab() NameVocab {
	return NameVocab{
		Prefixes: []string{"lái xe trung chuyển", "lái xe", "lai xe", "tài xế", "tai xe", "lxe", "lx"},
		Stops:    []*regexp.Regexp{reStopBus, reStopBKS, reStopXe},
	}
}

// SelfNameVocab khối chữ tự khai của lái xe tự khai thác,
// nhiều tiền tố chat kiểu "e"/"a"/"c" (em/anh/chị)
func SelfNameVocab() NameVocab {
	return NameVocab{
		Prefixes: []string{
			"lái xe tự khai thác", "lái xe", "lai xe", "tài xế", "tai xe",
			"kh lxe", "khách", "kh", "lxe", "lx",
			"anh", "chị", "chi", "em", "a", "c", "e",
		},
		Stops: []*regexp.Regexp{reStopBus, reStopBKS, reStopXe, reStopSDT},
	}
}

// TransitNameVocab cột tên lái xe trung chuyển
func TransitNameVocab() NameVocab {
	return NameVocab{
		Prefixes: []string{"lái xe trung chuyển", "lái xe tc", "lái xe", "lai xe", "tài xế", "lx"},
		Stops:    []*regexp.Regexp{reStopBus, reStopBKS, reStopXe},
	}
}

// CleanName làm sạch một ô tên theo bộ từ vựng. Không còn gì giống
// tên (dưới 2 ký tự) thì trả rỗng, bên gọi tự loại dòng.
func CleanName(raw string, v NameVocab) string {
	s := strings.TrimSpace(raw)

	// 1. bóc nhãn vai trò ở đầu, có thể chồng nhiều lớp ("KH LXE a Hùng")
	for i := 0; i < 4; i++ {
		next := stripPrefix(s, v.Prefixes)
		if next == s {
			break
		}
		s = next
	}

	// 2. cắt tại điểm nhiễu đầu tiên
	low := strings.ToLower(s)
	cut := len(s)
	if loc := reStopChar.FindStringIndex(low); loc != nil && loc[0] < cut {
		cut = loc[0]
	}
	for _, re := range v.Stops {
		if loc := re.FindStringIndex(low); loc != nil && loc[0] < cut {
			cut = loc[0]
		}
	}
	s = s[:cut]

	// 3. dọn đuôi
	s = strings.TrimRight(s, " \t.,-–:;")
	s = strings.TrimSpace(s)
	if len([]rune(s)) < 2 {
		return ""
	}

	return normalize.TitleCase(s)
}

// stripPrefix bỏ một nhãn đứng đầu nếu theo sau là khoảng trắng/dấu câu
func stripPrefix(s string, prefixes []string) string {
	low := strings.ToLower(s)
	for _, p := range prefixes {
		if !strings.HasPrefix(low, p) {
			continue
		}
		rest := s[len(p):]
		if rest == "" {
			return ""
		}
		r := rest[0]
		if r != ' ' && r != '\t' && r != ':' && r != '-' && r != '.' && r != ',' {
			continue
		}
		return strings.TrimLeft(rest, " \t:-.,")
	}
	return s
}
