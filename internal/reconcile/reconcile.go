package reconcile

import (
	"math"
	"sort"
	"sync"

	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/model"
	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/parser"
)

// Đối soát hai sổ độc lập: doanh thu thực bán và hóa đơn VAT đã xuất.
// Hai sổ do hai bộ phận lập, mã vé viết mỗi nơi một kiểu ("AB123" /
// "AB-123"), nên phép nối dùng mã đã chuẩn hóa và là full outer join:
// mã nào có ở một trong hai sổ đều phải ra đúng một dòng kết quả.

// DefaultTolerance chênh lệch tiền tối đa (đồng) vẫn coi là khớp
const DefaultTolerance = 100

// Reconcile chạy trích xuất + gộp cho từng sổ (hai lượt độc lập, chạy
// song song) rồi nối theo mã vé chuẩn hóa và phân loại từng cặp.
// Dung sai 0 nghĩa là so khớp tuyệt đối; chỉ dung sai âm mới rơi về
// mặc định.
func Reconcile(real, invoice model.Matrix, tolerance float64) []model.VATRecord {
	if tolerance < 0 {
		tolerance = DefaultTolerance
	}

	var realSide, invSide map[string]*parser.VATEntry
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		realSide = parser.ExtractVATSide(real, parser.VATRealProfile())
	}()
	go func() {
		defer wg.Done()
		invSide = parser.ExtractVATSide(invoice, parser.VATInvoiceProfile())
	}()
	wg.Wait()

	keys := map[string]bool{}
	for k := range realSide {
		keys[k] = true
	}
	for k := range invSide {
		keys[k] = true
	}

	out := make([]model.VATRecord, 0, len(keys))
	for k := range keys {
		r, i := realSide[k], invSide[k]
		rec := model.VATRecord{InvoiceIssued: i != nil}

		switch {
		case r != nil && i != nil:
			rec.Code = r.Code
			rec.Date = firstNonEmpty(r.Date, i.Date)
			rec.RealAmount = r.Amount
			rec.InvoiceAmount = i.Amount
			if math.Abs(r.Amount-i.Amount) <= tolerance {
				rec.Status = model.VATMatch
			} else {
				rec.Status = model.VATPriceMismatch
			}
		case r != nil:
			rec.Code = r.Code
			rec.Date = r.Date
			rec.RealAmount = r.Amount
			rec.Status = model.VATMissingInvoice
		default:
			rec.Code = i.Code
			rec.Date = i.Date
			rec.InvoiceAmount = i.Amount
			rec.Status = model.VATExtraInvoice
		}
		out = append(out, rec)
	}

	// dòng lệch lên trước cho người soát thấy ngay, dòng khớp dồn cuối
	sort.SliceStable(out, func(a, b int) bool {
		ma, mb := out[a].Status == model.VATMatch, out[b].Status == model.VATMatch
		if ma != mb {
			return !ma
		}
		return out[a].Code < out[b].Code
	})

	return out
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
