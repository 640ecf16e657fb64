package adoc

import "net/url"

// DocPage is the normalized record extracted from a single documentation
// page. RelatedLinks holds absolute URLs in document order; cross-page
// deduplication is the visited registry's job, so links are not unique
// within a single page's list.
type DocPage struct {
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	URL          string   `json:"url"`
	RelatedLinks []string `json:"related_links"`
}

// Validate returns an error if the page contains invalid fields.
func (p *DocPage) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	u, err := url.Parse(p.URL)
	if err != nil || !u.IsAbs() {
		return Errorf(EINVALID, "page URL %q must be absolute", p.URL)
	}
	return nil
}
