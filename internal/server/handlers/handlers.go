package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/config"
	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/model"
	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/parser"
	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/reconcile"
	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/service/excel"
	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/store"
)

// Handlers xử lý API
type Handlers struct {
	store    *store.Store
	exporter *excel.Exporter
	cfg      *config.AppConfig

	// cache file đã tải lên trong phiên
	decoders   map[string]*uploadedFile
	decodersMu sync.RWMutex

	// cache file xuất chờ tải về, dọn khi tải xong hoặc hết hạn
	exports   map[string]exportEntry
	exportsMu sync.RWMutex
}

type exportEntry struct {
	Path    string
	Expires time.Time
}

type uploadedFile struct {
	FileName string
	Decoder  *excel.Decoder
}

// NewHandlers tạo bộ xử lý API
func NewHandlers(st *store.Store, cfg *config.AppConfig) *Handlers {
	return &Handlers{
		store:    st,
		exporter: excel.NewExporter(),
		cfg:      cfg,
		decoders: make(map[string]*uploadedFile),
		exports:  make(map[string]exportEntry),
	}
}

// Response phản hồi chung
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func errorResponse(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
	})
}

// UploadFile tải file Excel lên, trả về fileId và danh sách sheet
func (h *Handlers) UploadFile(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		errorResponse(c, 1001, "Vui lòng chọn file")
		return
	}
	defer file.Close()

	if header.Size > 20*1024*1024 {
		errorResponse(c, 1003, "File quá lớn, tối đa 20MB")
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".xlsx" && ext != ".xls" {
		errorResponse(c, 1002, "Chỉ hỗ trợ định dạng .xlsx và .xls")
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		errorResponse(c, 1002, "Đọc file thất bại")
		return
	}

	dec, err := excel.NewDecoder(bytes.NewReader(content))
	if err != nil {
		errorResponse(c, 1002, "Mở file thất bại: "+err.Error())
		return
	}

	sheets, err := dec.Sheets()
	if err != nil {
		dec.Close()
		errorResponse(c, 1002, "Đọc danh sách sheet thất bại: "+err.Error())
		return
	}

	h.decodersMu.Lock()
	h.decoders[dec.FileID()] = &uploadedFile{FileName: header.Filename, Decoder: dec}
	h.decodersMu.Unlock()

	success(c, gin.H{
		"fileId":   dec.FileID(),
		"fileName": header.Filename,
		"sheets":   sheets,
	})
}

// CloseFile bỏ file đã tải lên khỏi cache
func (h *Handlers) CloseFile(c *gin.Context) {
	fileID := c.Param("fileId")

	h.decodersMu.Lock()
	up, ok := h.decoders[fileID]
	delete(h.decoders, fileID)
	h.decodersMu.Unlock()

	if !ok {
		errorResponse(c, 1004, "File không tồn tại hoặc đã đóng")
		return
	}
	up.Decoder.Close()
	success(c, gin.H{"closed": true})
}

func (h *Handlers) uploaded(fileID string) (*uploadedFile, bool) {
	h.decodersMu.RLock()
	up, ok := h.decoders[fileID]
	h.decodersMu.RUnlock()
	return up, ok
}

// ExtractRequest yêu cầu trích xuất một sheet
type ExtractRequest struct {
	FileID  string            `json:"fileId" binding:"required"`
	Sheet   string            `json:"sheet" binding:"required"`
	Dataset model.DatasetKind `json:"dataset" binding:"required"`
}

// Extract trích xuất một sheet theo loại dữ liệu rồi gộp vào lịch sử
func (h *Handlers) Extract(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, 1001, "Tham số không hợp lệ")
		return
	}

	up, ok := h.uploaded(req.FileID)
	if !ok {
		errorResponse(c, 1004, "File không tồn tại, vui lòng tải lên lại")
		return
	}

	m, err := up.Decoder.Matrix(req.Sheet)
	if err != nil {
		errorResponse(c, 1002, "Đọc sheet thất bại: "+err.Error())
		return
	}

	logID, err := h.store.CreateImportLog(up.FileName)
	if err != nil {
		errorResponse(c, 2001, "Ghi nhật ký thất bại: "+err.Error())
		return
	}

	start := time.Now()
	report, stats, err := h.extractAndMerge(req.Dataset, m)
	report.FileName = up.FileName
	report.Sheet = req.Sheet
	report.Dataset = req.Dataset
	report.Duration = time.Since(start)
	if err != nil {
		h.store.FinishImportLog(logID, report, "failed", err.Error())
		errorResponse(c, 2002, err.Error())
		return
	}
	if err := h.store.FinishImportLog(logID, report, "completed", ""); err != nil {
		errorResponse(c, 2001, "Ghi nhật ký thất bại: "+err.Error())
		return
	}

	success(c, gin.H{
		"report": report,
		"stats":  stats,
	})
}

// extractAndMerge chạy extractor theo loại dữ liệu và gộp vào store
func (h *Handlers) extractAndMerge(kind model.DatasetKind, m model.Matrix) (model.ImportReport, interface{}, error) {
	var report model.ImportReport

	hr := parser.InferHeader(m, profileFor(kind))
	if hr.Found {
		report.RowsTotal = len(m) - hr.Row - 1
	}

	switch kind {
	case model.DatasetDaily:
		stats, parsed := parser.ExtractDaily(m)
		report.RowsParsed = parsed
		report.Records = len(stats)
		return report, stats, h.store.MergeDaily(stats)
	case model.DatasetSelf:
		stats, parsed := parser.ExtractSelf(model.FromMatrix(m))
		report.RowsParsed = parsed
		report.Records = len(stats)
		return report, stats, h.store.MergeSelf(stats)
	case model.DatasetTransit:
		stats, parsed := parser.ExtractTransit(m)
		report.RowsParsed = parsed
		report.Records = len(stats)
		return report, stats, h.store.MergeTransit(stats)
	case model.DatasetPhone:
		stats, parsed := parser.ExtractPhone(m)
		report.RowsParsed = parsed
		report.Records = len(stats)
		return report, stats, h.store.MergePhone(stats)
	case model.DatasetPricing:
		stats, parsed := parser.ExtractPricing(m, h.cfg.Business.PriceCeiling)
		report.RowsParsed = parsed
		report.Records = len(stats)
		return report, stats, h.store.MergePricing(stats)
	default:
		return report, nil, fmt.Errorf("loại dữ liệu không hỗ trợ: %s", kind)
	}
}

func profileFor(kind model.DatasetKind) parser.HeaderProfile {
	switch kind {
	case model.DatasetSelf:
		return parser.SelfProfile()
	case model.DatasetTransit:
		return parser.TransitProfile()
	case model.DatasetPhone:
		return parser.PhoneProfile()
	case model.DatasetPricing:
		return parser.PricingProfile()
	default:
		return parser.DailyProfile()
	}
}

// ReconcileRequest yêu cầu đối soát hai sổ trong cùng một file
type ReconcileRequest struct {
	FileID       string `json:"fileId" binding:"required"`
	RealSheet    string `json:"realSheet" binding:"required"`
	InvoiceSheet string `json:"invoiceSheet" binding:"required"`
}

// ReconcileVAT đối soát sổ doanh thu thực với sổ hóa đơn
func (h *Handlers) ReconcileVAT(c *gin.Context) {
	var req ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, 1001, "Tham số không hợp lệ")
		return
	}

	up, ok := h.uploaded(req.FileID)
	if !ok {
		errorResponse(c, 1004, "File không tồn tại, vui lòng tải lên lại")
		return
	}

	real, err := up.Decoder.Matrix(req.RealSheet)
	if err != nil {
		errorResponse(c, 1002, "Đọc sheet doanh thu thất bại: "+err.Error())
		return
	}
	invoice, err := up.Decoder.Matrix(req.InvoiceSheet)
	if err != nil {
		errorResponse(c, 1002, "Đọc sheet hóa đơn thất bại: "+err.Error())
		return
	}

	records := reconcile.Reconcile(real, invoice, h.cfg.Business.VATTolerance)
	if err := h.store.ReplaceVAT(records); err != nil {
		errorResponse(c, 2001, "Lưu kết quả thất bại: "+err.Error())
		return
	}

	mismatches := 0
	for _, r := range records {
		if r.Status != model.VATMatch {
			mismatches++
		}
	}

	success(c, gin.H{
		"records":    records,
		"total":      len(records),
		"mismatches": mismatches,
	})
}

// GetStats trả về thống kê đã lưu theo loại
func (h *Handlers) GetStats(c *gin.Context) {
	kind := model.DatasetKind(c.Param("kind"))

	var (
		data interface{}
		err  error
	)
	switch kind {
	case model.DatasetDaily:
		data, err = h.store.ListDaily()
	case model.DatasetSelf:
		data, err = h.store.ListSelf()
	case model.DatasetTransit:
		data, err = h.store.ListTransit()
	case model.DatasetPhone:
		data, err = h.store.ListPhone()
	case model.DatasetPricing:
		data, err = h.store.ListPricing()
	case model.DatasetVAT:
		data, err = h.store.ListVAT()
	default:
		errorResponse(c, 1001, "Loại dữ liệu không hỗ trợ: "+string(kind))
		return
	}
	if err != nil {
		errorResponse(c, 2001, "Đọc dữ liệu thất bại: "+err.Error())
		return
	}
	success(c, data)
}

// ExportStats xuất thống kê một loại ra Excel, trả về đường dẫn tải
func (h *Handlers) ExportStats(c *gin.Context) {
	kind := model.DatasetKind(c.Param("kind"))

	file, err := h.buildExport(kind)
	if err != nil {
		errorResponse(c, 3001, err.Error())
		return
	}
	defer file.Close()

	exportID := uuid.New().String()
	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("baocao_export_%s.xlsx", exportID))
	if err := file.SaveAs(tmpPath); err != nil {
		errorResponse(c, 3001, "Lưu file thất bại")
		return
	}

	h.sweepExpiredExports()

	expires := time.Now().Add(time.Hour)
	h.exportsMu.Lock()
	h.exports[exportID] = exportEntry{Path: tmpPath, Expires: expires}
	h.exportsMu.Unlock()

	success(c, gin.H{
		"downloadUrl": fmt.Sprintf("/api/export/download/%s", exportID),
		"expiresAt":   expires.Format(time.RFC3339),
	})
}

// sweepExpiredExports xóa file xuất quá hạn mà không ai tải
func (h *Handlers) sweepExpiredExports() {
	now := time.Now()
	h.exportsMu.Lock()
	defer h.exportsMu.Unlock()
	for id, e := range h.exports {
		if now.After(e.Expires) {
			os.Remove(e.Path)
			delete(h.exports, id)
		}
	}
}

func (h *Handlers) buildExport(kind model.DatasetKind) (*excelize.File, error) {
	switch kind {
	case model.DatasetDaily:
		stats, err := h.store.ListDaily()
		if err != nil {
			return nil, err
		}
		return h.exporter.ExportDaily(stats)
	case model.DatasetSelf:
		stats, err := h.store.ListSelf()
		if err != nil {
			return nil, err
		}
		return h.exporter.ExportSelf(stats)
	case model.DatasetTransit:
		stats, err := h.store.ListTransit()
		if err != nil {
			return nil, err
		}
		return h.exporter.ExportTransit(stats)
	case model.DatasetPhone:
		stats, err := h.store.ListPhone()
		if err != nil {
			return nil, err
		}
		return h.exporter.ExportPhone(stats)
	case model.DatasetPricing:
		stats, err := h.store.ListPricing()
		if err != nil {
			return nil, err
		}
		return h.exporter.ExportPricing(stats)
	case model.DatasetVAT:
		records, err := h.store.ListVAT()
		if err != nil {
			return nil, err
		}
		return h.exporter.ExportVAT(records)
	default:
		return nil, fmt.Errorf("loại dữ liệu không hỗ trợ: %s", kind)
	}
}

// Download tải file đã xuất. File chỉ tải được một lần: trả xong là
// xóa khỏi đĩa lẫn cache, không chờ đến hạn.
func (h *Handlers) Download(c *gin.Context) {
	exportID := c.Param("exportId")

	h.exportsMu.Lock()
	e, ok := h.exports[exportID]
	if ok {
		delete(h.exports, exportID)
	}
	h.exportsMu.Unlock()

	if !ok {
		c.String(http.StatusNotFound, "File không tồn tại hoặc đã hết hạn")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=baocao_export.xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.File(e.Path)
	os.Remove(e.Path)
}

// ListImportLogs trả về nhật ký import gần nhất
func (h *Handlers) ListImportLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	logs, err := h.store.ListImportLogs(limit)
	if err != nil {
		errorResponse(c, 2001, "Đọc nhật ký thất bại: "+err.Error())
		return
	}
	success(c, logs)
}
