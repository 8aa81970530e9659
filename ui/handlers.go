package ui

import (
	"html/template"
	"net/url"

	"propfilter/app"
	"propfilter/domain/project"
	"propfilter/internal/errors"
	"propfilter/internal/logger"

	"github.com/gin-gonic/gin"
)

// pageData feeds templates/index.html
type pageData struct {
	Options  project.FilterOptions
	Request  app.FilterRequest
	Applied  bool
	Result   *app.FilterOutcome
	ExportQS template.URL
	Error    string
}

// handleIndex renders the filter form without applying anything
func (s *Server) handleIndex(c *gin.Context) {
	opts, err := s.service.Options(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.renderTemplate(c, 200, "index.html", pageData{Options: opts})
}

// handleFilter applies the submitted selection
func (s *Server) handleFilter(c *gin.Context) {
	req, ok := s.bindRequest(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	outcome, err := s.service.Filter(ctx, req.Criteria())
	if err != nil {
		s.renderError(c, err)
		return
	}

	data := pageData{
		Request:  req,
		Applied:  true,
		Result:   outcome,
		ExportQS: exportQuery(req),
	}

	if isHTMX(c) {
		s.renderTemplate(c, 200, "results", data)
		return
	}

	data.Options, err = s.service.Options(ctx)
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.renderTemplate(c, 200, "index.html", data)
}

// handleReload rebuilds the table from the source file
func (s *Server) handleReload(c *gin.Context) {
	table, err := s.service.Reload(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(200, gin.H{"projects": len(table.Records), "digest": table.Digest})
}

func (s *Server) bindRequest(c *gin.Context) (app.FilterRequest, bool) {
	var req app.FilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		s.renderError(c, errors.WithCode(errors.CodeInvalidInput, err))
		return req, false
	}
	if err := req.Validate(); err != nil {
		s.renderError(c, err)
		return req, false
	}
	return req, true
}

func (s *Server) renderError(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	logger.C(c.Request.Context()).Error().Err(err).Str("code", errors.GetCode(err)).Msg("request failed")

	if isHTMX(c) {
		s.renderTemplate(c, status, "error", pageData{Error: err.Error()})
		return
	}
	s.renderTemplate(c, status, "index.html", pageData{Error: err.Error()})
}

func exportQuery(req app.FilterRequest) template.URL {
	q := url.Values{}
	for _, v := range req.Developers {
		q.Add("developer", v)
	}
	for _, v := range req.Areas {
		q.Add("area", v)
	}
	for _, v := range req.DeliverDates {
		q.Add("date", v)
	}
	return template.URL(q.Encode())
}
