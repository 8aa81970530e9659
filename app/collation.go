package app

import (
	"propfilter/domain/project"
	"propfilter/internal/errors"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// languageCollator sorts with a collator built per call; a collate.Collator
// carries sort buffers and must not be shared between goroutines.
type languageCollator struct {
	tag language.Tag
}

func (c languageCollator) SortStrings(x []string) {
	collate.New(c.tag).SortStrings(x)
}

// NewCollator returns a language-aware option sorter, or nil for code-point order
func NewCollator(tag string) (project.Collator, error) {
	if tag == "" {
		return nil, nil
	}
	lang, err := language.Parse(tag)
	if err != nil {
		return nil, errors.WithCode(errors.CodeConfigInvalid, errors.Wrapf(err, "invalid collation %q", tag))
	}
	return languageCollator{tag: lang}, nil
}
