package server

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/demoperez-ux/manifestpro/importer"
	"github.com/demoperez-ux/manifestpro/schema"
	"github.com/demoperez-ux/manifestpro/waybill"
)

// AnalyzeResponse is the payload returned for an uploaded manifest: the
// inferred mapping plus, when one can be found, the validated master
// waybill for the shipment batch.
type AnalyzeResponse struct {
	RequestID     string                `json:"request_id"`
	Filename      string                `json:"filename"`
	Columns       int                   `json:"columns"`
	Mapping       *schema.SchemaMapping `json:"mapping"`
	MasterWaybill *waybill.Record       `json:"master_waybill,omitempty"`
}

// ValidateWaybillRequest is the body for POST /api/waybills/validate.
type ValidateWaybillRequest struct {
	Value string `json:"value" binding:"required"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleAnalyzeManifest accepts a multipart "file" (xlsx or csv), runs
// schema inference over its columns and reports the mapping. Messy data
// is not an error: unmapped fields surface in the mapping itself.
func (s *Server) handleAnalyzeManifest(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		status := http.StatusBadRequest
		if errors.As(err, new(*http.MaxBytesError)) {
			status = http.StatusRequestEntityTooLarge
		}
		c.JSON(status, gin.H{"error": "missing or unreadable file upload"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open uploaded file"})
		return
	}
	defer f.Close()

	var columns []schema.RawColumn
	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".xlsx", ".xlsm":
		columns, err = importer.ReadXLSX(f, s.cfg.SampleSize)
	case ".csv", ".txt":
		columns, err = importer.ReadCSV(f, s.cfg.SampleSize)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type, expected xlsx or csv"})
		return
	}
	if err != nil {
		s.log.Warn("manifest import failed",
			"filename", fileHeader.Filename,
			"error", err,
			"request_id", RequestIDFrom(c))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mapping, err := s.engine.Infer(columns)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := AnalyzeResponse{
		RequestID: RequestIDFrom(c),
		Filename:  fileHeader.Filename,
		Columns:   len(columns),
		Mapping:   mapping,
	}
	if record, ok := s.resolveMasterWaybill(columns, mapping); ok {
		resp.MasterWaybill = &record
	}

	c.JSON(http.StatusOK, resp)
}

// resolveMasterWaybill validates the first sampled value of the column
// assigned to the master waybill field, falling back to a full cell scan
// when no header mapped cleanly.
func (s *Server) resolveMasterWaybill(columns []schema.RawColumn, mapping *schema.SchemaMapping) (waybill.Record, bool) {
	if header, ok := mapping.Assignments[schema.FieldMasterWaybill]; ok {
		for _, col := range columns {
			if col.Header != header {
				continue
			}
			for _, value := range col.Sample {
				if strings.TrimSpace(value) == "" {
					continue
				}
				return waybill.Validate(value), true
			}
		}
	}
	return waybill.ScanColumns(columns)
}

// handleValidateWaybill checks a single candidate MAWB value.
func (s *Server) handleValidateWaybill(c *gin.Context) {
	var req ValidateWaybillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must contain a non-empty \"value\""})
		return
	}
	c.JSON(http.StatusOK, waybill.Validate(req.Value))
}
