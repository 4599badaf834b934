package sanitizer

import "github.com/microcosm-cc/bluemonday"

// HTMLStripperer strips markup from user-supplied text before it is
// validated or stored.
type HTMLStripperer interface {
	StripHTML(s string) string
}

type HTMLStripper struct {
	bm *bluemonday.Policy
}

// NewHTMLStripper returns a stripper backed by bluemonday's strict policy
func NewHTMLStripper() *HTMLStripper {
	return &HTMLStripper{
		bm: bluemonday.StrictPolicy(),
	}
}

func (hs *HTMLStripper) StripHTML(s string) string {
	return hs.bm.Sanitize(s)
}
