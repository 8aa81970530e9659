package ui

import (
	"bytes"
	"fmt"
	"net/http"

	"propfilter/adapters/excel"

	"github.com/gin-gonic/gin"
)

// handleExport streams the filtered records as a download
func (s *Server) handleExport(c *gin.Context) {
	req, ok := s.bindRequest(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	export, err := s.service.Export(c.Request.Context(), req.Criteria(), req.Format, &buf)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	c.Header("X-Export-ID", export.ID)
	c.Header("X-Record-Count", fmt.Sprint(export.Count))
	c.Data(http.StatusOK, excel.ContentType(export.Format), buf.Bytes())
}
