package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bnema/vitrine/internal/domain"
	"github.com/bnema/vitrine/internal/service"
)

const (
	fieldImages = "productImages"
	fieldImage  = "productImage"

	multipartMemory = 8 << 20
	// room for the text fields and multipart framing on top of the files
	formOverhead = 1 << 20
)

// productForm is a parsed create or update request. Close must be called
// once the uploads have been consumed.
type productForm struct {
	input   domain.ProductInput
	uploads []service.Upload

	files     []multipart.File
	multipart *multipart.Form
}

func (f *productForm) Close() {
	for _, file := range f.files {
		_ = file.Close()
	}
	if f.multipart != nil {
		_ = f.multipart.RemoveAll()
	}
}

// readProductForm accepts either multipart/form-data, which may carry image
// files, or a JSON object. Files are only accepted when allowFiles is set.
func readProductForm(c *gin.Context, limits service.AssetLimits, allowFiles bool) (*productForm, error) {
	maxBody := limits.MaxFileBytes*int64(limits.MaxFiles) + formOverhead
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBody)

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		return readMultipart(c, allowFiles)
	}
	return readJSON(c)
}

func readMultipart(c *gin.Context, allowFiles bool) (*productForm, error) {
	if err := c.Request.ParseMultipartForm(multipartMemory); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return nil, err
		}
		return nil, domain.NewValidationError("body", "malformed multipart form")
	}

	mf := c.Request.MultipartForm
	form := &productForm{multipart: mf, input: inputFromValues(mf.Value)}

	for name := range mf.File {
		if name != fieldImages && name != fieldImage {
			form.Close()
			return nil, domain.NewValidationError(name, `unexpected file field, use "productImages"`)
		}
	}

	headers := slices.Concat(mf.File[fieldImages], mf.File[fieldImage])
	if len(headers) > 0 && !allowFiles {
		form.Close()
		return nil, domain.NewValidationError("images", "can only be replaced with PUT")
	}

	for _, fh := range headers {
		file, err := fh.Open()
		if err != nil {
			form.Close()
			return nil, err
		}
		form.files = append(form.files, file)
		form.uploads = append(form.uploads, service.Upload{
			Filename: fh.Filename,
			Size:     fh.Size,
			Content:  file,
		})
	}
	return form, nil
}

func inputFromValues(values map[string][]string) domain.ProductInput {
	field := func(key string) *string {
		vs, ok := values[key]
		if !ok || len(vs) == 0 {
			return nil
		}
		return &vs[0]
	}
	return domain.ProductInput{
		Name:        field("name"),
		Description: field("description"),
		Price:       field("price"),
		Image:       field("image"),
	}
}

func readJSON(c *gin.Context) (*productForm, error) {
	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		var tooBig *http.MaxBytesError
		switch {
		case errors.As(err, &tooBig):
			return nil, err
		case errors.Is(err, io.EOF):
			// empty body: every field is missing
			return &productForm{}, nil
		default:
			return nil, domain.NewValidationError("body", "malformed JSON")
		}
	}

	verr := &domain.ValidationError{}
	in := domain.ProductInput{
		Name:        jsonText(verr, raw, "name"),
		Description: jsonText(verr, raw, "description"),
		Price:       jsonText(verr, raw, "price"),
		Image:       jsonText(verr, raw, "image"),
	}
	if !verr.Empty() {
		return nil, verr
	}
	return &productForm{input: in}, nil
}

// jsonText reads a string or number member as text. null counts as absent.
func jsonText(verr *domain.ValidationError, raw map[string]json.RawMessage, key string) *string {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	text := strings.TrimSpace(string(v))
	switch {
	case text == "null":
		return nil
	case strings.HasPrefix(text, `"`):
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			verr.Add(key, "must be a string")
			return nil
		}
		return &s
	case text != "" && (text[0] == '-' || (text[0] >= '0' && text[0] <= '9')):
		return &text
	default:
		verr.Add(key, "must be a string or number")
		return nil
	}
}
