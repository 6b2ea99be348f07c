// Package request holds the small amount of request parsing shared by
// the API handlers.
package request

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/aanand-mishra/edulearn/internal/catalog"
)

// ListQuery reads category, page and limit from the query string.
// page and limit are parsed with strconv.Atoi; anything that is not a
// positive integer is left as 0 so the catalog applies its default.
func ListQuery(r *http.Request) catalog.ListQuery {
	q := r.URL.Query()
	return catalog.ListQuery{
		Category: q.Get("category"),
		Page:     positiveInt(q.Get("page")),
		Limit:    positiveInt(q.Get("limit")),
	}
}

func positiveInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0
	}
	return n
}

// DecodeJSON decodes the request body into v. An empty body is not an
// error: v keeps its zero value and presence validation reports the
// missing fields.
func DecodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
