package parser

import (
	"strings"

	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/model"
)

// InferHeader quét tối đa ScanRows dòng đầu, chấm điểm từng dòng theo
// từ điển của profile, chọn dòng điểm cao nhất làm tiêu đề. Bằng điểm
// thì giữ dòng gặp trước. Không dòng nào có cột chính -> Found=false,
// bên gọi trả kết quả rỗng chứ không báo lỗi.
func InferHeader(m model.Matrix, p HeaderProfile) model.HeaderResult {
	limit := p.ScanRows
	if limit <= 0 || limit > len(m) {
		limit = len(m)
	}

	best := model.HeaderResult{Row: -1}
	for i := 0; i < limit; i++ {
		texts := lowerTexts(m[i])
		mapping := model.ColumnMapping{}
		score := 0.0
		for role, kw := range p.Roles {
			col := findColumn(texts, kw.High)
			if col < 0 {
				col = findColumn(texts, kw.Low)
			}
			if col >= 0 {
				mapping[role] = col
				score += kw.Weight
			}
		}
		// dòng không có cột chính thì không được ứng cử
		if mapping.Col(p.Primary) < 0 {
			continue
		}
		if !best.Found || score > best.Score {
			best = model.HeaderResult{Found: true, Row: i, Score: score, Mapping: mapping}
		}
	}
	return best
}

// lowerTexts hạ chữ thường toàn bộ ô của một dòng
func lowerTexts(row model.Row) []string {
	texts := make([]string, len(row))
	for i, c := range row {
		texts[i] = strings.ToLower(c.Text())
	}
	return texts
}

// findColumn cột đầu tiên chứa một trong các từ khóa
func findColumn(texts []string, keywords []string) int {
	for idx, t := range texts {
		if t == "" {
			continue
		}
		for _, kw := range keywords {
			if strings.Contains(t, kw) {
				return idx
			}
		}
	}
	return -1
}
