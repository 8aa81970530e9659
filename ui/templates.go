package ui

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFiles embed.FS

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"selected": func(values []string, v string) bool {
			for _, s := range values {
				if s == v {
					return true
				}
			}
			return false
		},
	}
	return template.New("").Funcs(funcMap).ParseFS(templateFiles, "templates/*.html")
}

// renderTemplate executes a template into a buffer so failures never send a half page
func (s *Server) renderTemplate(c *gin.Context, status int, templateName string, data interface{}) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		s.log.Error().Err(err).Str("template", templateName).Msg("template rendering failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Template rendering failed"})
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if _, err := buf.WriteTo(c.Writer); err != nil {
		s.log.Warn().Err(err).Msg("error writing template response")
	}
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}
