package report

import (
	"path/filepath"
	"time"

	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog/log"
	"github.com/russross/blackfriday/v2"

	"github.com/harness/pubcheck/util/common/fileutil"
)

const (
	filePrefix      = "validation-report-"
	timestampFormat = "20060102-150405.000"
)

// FileName is the report file name for a run started at now.
func FileName(now time.Time, ext string) string {
	return filePrefix + now.Format(timestampFormat) + ext
}

// Written lists the files produced by Write.
type Written struct {
	Markdown string
	HTML     string
}

// Write stores the Markdown report in dir and, when html is set, an HTML
// rendering next to it. Any failure is returned as a *errors.FileError or
// *errors.ValidationError and is fatal to the run.
func Write(dir string, now time.Time, markdown string, html bool) (Written, error) {
	var w Written

	w.Markdown = filepath.Join(dir, FileName(now, ".md"))
	if err := writeFile(w.Markdown, []byte(markdown)); err != nil {
		return Written{}, err
	}

	if html {
		w.HTML = filepath.Join(dir, FileName(now, ".html"))
		if err := writeFile(w.HTML, HTML(markdown)); err != nil {
			return Written{}, err
		}
	}
	return w, nil
}

func writeFile(path string, data []byte) error {
	if err := fileutil.WriteFile(path, data); err != nil {
		return err
	}
	log.Info().Str("path", path).Str("size", bytesize.New(float64(len(data))).String()).Msg("Report written")
	return nil
}

// HTML converts the Markdown report to a standalone HTML page.
func HTML(markdown string) []byte {
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Title: "Publish Validation Report",
		Flags: blackfriday.CommonHTMLFlags | blackfriday.CompletePage,
	})
	return blackfriday.Run([]byte(markdown),
		blackfriday.WithRenderer(renderer),
		blackfriday.WithExtensions(blackfriday.CommonExtensions),
	)
}
