package domain

import (
	"net/url"
	"strconv"
	"strings"
)

// ProductInput is the raw product payload. A nil field was not supplied by
// the caller; an empty string was supplied empty.
type ProductInput struct {
	Name        *string
	Description *string
	Price       *string
	Image       *string
}

// ProductDraft is a ProductInput that passed validation.
type ProductDraft struct {
	Name        string
	Description string
	Price       int64
	Image       string
	// ImageSet reports whether the caller supplied the image field at all.
	ImageSet bool
}

// Validate checks every field and reports all problems at once. It performs
// no I/O.
func (in ProductInput) Validate() (ProductDraft, error) {
	var draft ProductDraft
	verr := &ValidationError{}

	draft.Name = requireText(verr, "name", in.Name)
	draft.Description = requireText(verr, "description", in.Description)

	if in.Price == nil || strings.TrimSpace(*in.Price) == "" {
		verr.Add("price", "is required")
	} else {
		price, err := strconv.ParseInt(strings.TrimSpace(*in.Price), 10, 64)
		switch {
		case err != nil:
			verr.Add("price", "must be a whole number")
		case price <= 0:
			verr.Add("price", "must be a positive number")
		default:
			draft.Price = price
		}
	}

	if in.Image != nil {
		draft.ImageSet = true
		draft.Image = strings.TrimSpace(*in.Image)
		if draft.Image != "" && !isExternalURL(draft.Image) {
			verr.Add("image", "must be an absolute http or https URL")
		}
	}

	if !verr.Empty() {
		return ProductDraft{}, verr
	}
	return draft, nil
}

// Overlay fills every field the caller left out with the current value of
// rec. The image field is never inherited: leaving it out means "keep".
func (in ProductInput) Overlay(rec *ProductRecord) ProductInput {
	out := in
	if out.Name == nil {
		out.Name = &rec.Name
	}
	if out.Description == nil {
		out.Description = &rec.Description
	}
	if out.Price == nil {
		price := strconv.FormatInt(rec.Price, 10)
		out.Price = &price
	}
	return out
}

func requireText(verr *ValidationError, field string, v *string) string {
	if v == nil {
		verr.Add(field, "is required")
		return ""
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		verr.Add(field, "must not be empty")
	}
	return trimmed
}

func isExternalURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
