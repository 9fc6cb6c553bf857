package internal

import (
	"html/template"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/tabula/pkg/source"
)

// RequestKeys are the query parameter names a table reads.
type RequestKeys struct {
	Rows    string
	Search  string
	SortBy  string
	SortDir string
	Page    string
}

// NewRequestKeys returns the keys of a table, prefixed with its identifier.
func NewRequestKeys(identifier string) RequestKeys {
	prefix := ""
	if identifier != "" {
		prefix = identifier + "_"
	}
	return RequestKeys{
		Rows:    prefix + "rows",
		Search:  prefix + "search",
		SortBy:  prefix + "sort_by",
		SortDir: prefix + "sort_dir",
		Page:    prefix + "page",
	}
}

// maxSearchLength bounds the search term read from requests.
const maxSearchLength = 255

// tableState is the part of the request a table reacts to.
type tableState struct {
	rows    int
	search  string
	sortBy  string
	sortDir source.Direction
	page    int
}

func parseState(r *http.Request, keys RequestKeys) tableState {
	q := r.URL.Query()

	s := tableState{page: 1}
	if n, err := strconv.Atoi(q.Get(keys.Rows)); err == nil && n > 0 {
		s.rows = n
	}
	s.search = strings.TrimSpace(q.Get(keys.Search))
	if len(s.search) > maxSearchLength {
		s.search = strings.ToValidUTF8(s.search[:maxSearchLength], "")
	}
	s.sortBy = strings.TrimSpace(q.Get(keys.SortBy))
	if dir, ok := source.ParseDirection(q.Get(keys.SortDir)); ok {
		s.sortDir = dir
	}
	if n, err := strconv.Atoi(q.Get(keys.Page)); err == nil && n > 1 {
		s.page = n
	}
	return s
}

// urlBuilder renders table URLs from the index URL and a state.
type urlBuilder struct {
	base    *url.URL
	keys    RequestKeys
	appends map[string]string
	// rows is only kept in URLs when the user chose it.
	keepRows bool
}

func (b urlBuilder) values(s tableState) url.Values {
	v := b.base.Query()
	for k, val := range b.appends {
		v.Set(k, val)
	}
	if b.keepRows && s.rows > 0 {
		v.Set(b.keys.Rows, strconv.Itoa(s.rows))
	}
	if s.search != "" {
		v.Set(b.keys.Search, s.search)
	}
	if s.sortBy != "" {
		v.Set(b.keys.SortBy, s.sortBy)
		v.Set(b.keys.SortDir, string(s.sortDir))
	}
	if s.page > 1 {
		v.Set(b.keys.Page, strconv.Itoa(s.page))
	}
	return v
}

func (b urlBuilder) url(s tableState) string {
	u := *b.base
	u.RawQuery = b.values(s).Encode()
	return u.String()
}

// hiddenFields renders the state as hidden inputs, without the page and the
// given keys.
func (b urlBuilder) hiddenFields(s tableState, except ...string) template.HTML {
	v := b.values(s)
	v.Del(b.keys.Page)
	for _, k := range except {
		v.Del(k)
	}

	var sb strings.Builder
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		for _, val := range v[k] {
			sb.WriteString(`<input type="hidden" name="`)
			sb.WriteString(template.HTMLEscapeString(k))
			sb.WriteString(`" value="`)
			sb.WriteString(template.HTMLEscapeString(val))
			sb.WriteString(`">`)
		}
	}
	// Names and values are escaped above.
	return template.HTML(sb.String()) //nolint:gosec
}
