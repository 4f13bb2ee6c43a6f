package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/model"
)

var reNumber = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// Number rút số từ một ô. Ô số trả nguyên giá trị; ô chuỗi bỏ dấu
// phẩy ngăn cách nghìn rồi lấy cụm số đầu tiên ("5 khách" -> 5).
// Không tìm thấy số trả 0.
func Number(c model.Cell) float64 {
	switch c.Kind {
	case model.CellNumber:
		return c.Num
	case model.CellString:
		s := strings.ReplaceAll(c.Text(), ",", "")
		m := reNumber.FindString(s)
		if m == "" {
			return 0
		}
		f, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}
