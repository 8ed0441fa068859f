package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"yelpcamp/app/apperror"
	"yelpcamp/app/models"
)

// fieldSource reads one submitted field at a time. Values that cannot be
// decoded are reported through mark, so every field failure is collected.
type fieldSource interface {
	str(name string) string
	number(name string) (float64, bool)
}

type markFunc func(field, tag, message string)

// bindCampground reads a campground submission. Forms nest fields as
// campground[title]; JSON bodies nest them under "campground".
func bindCampground(r *http.Request) (*models.CampgroundInput, error) {
	in := &models.CampgroundInput{}
	src, err := source(r, "campground", in.MarkInvalid)
	if err != nil {
		return nil, err
	}

	in.Title = src.str("title")
	in.Location = src.str("location")
	in.Description = src.str("description")
	if price, ok := src.number("price"); ok {
		in.Price = &price
	}
	in.Image = src.str("image")
	return in, nil
}

// bindReview reads a review submission (review[body], review[rating]).
func bindReview(r *http.Request) (*models.ReviewInput, error) {
	in := &models.ReviewInput{}
	src, err := source(r, "review", in.MarkInvalid)
	if err != nil {
		return nil, err
	}

	in.Body = src.str("body")
	if value, ok := src.number("rating"); ok {
		if value != math.Trunc(value) {
			in.MarkInvalid("rating", "integer", `"rating" must be an integer`)
		} else {
			rating := int(value)
			in.Rating = &rating
		}
	}
	return in, nil
}

func source(r *http.Request, root string, mark markFunc) (fieldSource, error) {
	if isJSONBody(r) {
		return jsonSource(r, root, mark)
	}
	if err := r.ParseForm(); err != nil {
		return nil, bodyError("Failed to parse form", err)
	}
	return formSource{values: r.PostForm, root: root, mark: mark}, nil
}

// bodyError maps a failed body read to a 400.
func bodyError(prefix string, err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperror.BadRequest(fmt.Sprintf("Request body too large (limit %d bytes)", tooLarge.Limit))
	}
	return apperror.BadRequest(prefix + ": " + err.Error())
}

type formSource struct {
	values map[string][]string
	root   string
	mark   markFunc
}

func (f formSource) get(name string) string {
	if v := f.values[f.root+"["+name+"]"]; len(v) > 0 {
		return v[0]
	}
	return ""
}

func (f formSource) str(name string) string {
	return f.get(name)
}

func (f formSource) number(name string) (float64, bool) {
	raw := strings.TrimSpace(f.get(name))
	if raw == "" {
		return 0, false
	}
	n, ok := parseNumber(raw)
	if !ok {
		f.mark(name, "number", fmt.Sprintf("%q must be a number", name))
	}
	return n, ok
}

type jsonFields struct {
	fields map[string]json.RawMessage
	mark   markFunc
}

// jsonSource decodes {"<root>": {...}} keeping each member raw, so a wrongly
// typed member becomes a field failure instead of a decode error.
func jsonSource(r *http.Request, root string, mark markFunc) (fieldSource, error) {
	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, bodyError("Invalid JSON", err)
	}

	src := jsonFields{fields: map[string]json.RawMessage{}, mark: mark}
	if raw, ok := body[root]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &src.fields); err != nil {
			return nil, apperror.BadRequest(fmt.Sprintf("%q must be an object", root))
		}
	}
	return src, nil
}

func (j jsonFields) raw(name string) (json.RawMessage, bool) {
	raw, ok := j.fields[name]
	if !ok || isNull(raw) {
		return nil, false
	}
	return raw, true
}

func (j jsonFields) str(name string) string {
	raw, ok := j.raw(name)
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		j.mark(name, "string", fmt.Sprintf("%q must be a string", name))
		return ""
	}
	return s
}

// number accepts a JSON number or a string holding one, like the form path.
func (j jsonFields) number(name string) (float64, bool) {
	raw, ok := j.raw(name)
	if !ok {
		return 0, false
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s = strings.TrimSpace(s); s == "" {
			return 0, false
		}
		if n, ok := parseNumber(s); ok {
			return n, true
		}
	}
	j.mark(name, "number", fmt.Sprintf("%q must be a number", name))
	return 0, false
}

func parseNumber(raw string) (float64, bool) {
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func isJSONBody(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}
