package service

import (
	"encoding/json"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/bnema/vitrine/internal/domain"
	"github.com/bnema/vitrine/internal/infrastructure/logger"
)

// EmptyImages is the stored form of a product without uploaded assets.
const EmptyImages = "[]"

// ImagePathCodec converts between an ordered list of asset refs and the
// single text column it is persisted in.
type ImagePathCodec struct {
	prefix string
	log    *zap.Logger
}

func NewImagePathCodec(publicPrefix string, log *zap.Logger) *ImagePathCodec {
	return &ImagePathCodec{
		prefix: strings.TrimSuffix(publicPrefix, "/"),
		log:    logger.OrNop(log),
	}
}

func (c *ImagePathCodec) Encode(refs []string) string {
	if len(refs) == 0 {
		return EmptyImages
	}
	data, err := json.Marshal(refs)
	if err != nil {
		// []string always marshals
		return EmptyImages
	}
	return string(data)
}

// Decode never fails. Legacy empty and null values decode to an empty list
// quietly, anything else unreadable is logged and treated as empty. Null and
// blank entries are dropped.
func (c *ImagePathCodec) Decode(value string) []string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || trimmed == "null" {
		return []string{}
	}

	var elems []*string
	if err := json.Unmarshal([]byte(trimmed), &elems); err != nil {
		c.log.Warn("malformed image list, treating as empty",
			zap.String("value", logger.SanitizeForLog(truncate(trimmed, 128))),
			zap.Error(err),
		)
		return []string{}
	}

	refs := make([]string, 0, len(elems))
	for _, e := range elems {
		if e == nil || strings.TrimSpace(*e) == "" {
			continue
		}
		refs = append(refs, *e)
	}
	if len(refs) != len(elems) {
		c.log.Warn("dropped empty entries from image list",
			zap.String("value", logger.SanitizeForLog(truncate(trimmed, 128))),
		)
	}
	return refs
}

// Materialize turns refs under the public prefix into absolute URLs for
// origin. Other refs are returned as they are.
func (c *ImagePathCodec) Materialize(refs []string, origin domain.Origin) []string {
	out := make([]string, len(refs))
	for i, ref := range refs {
		out[i] = c.MaterializeOne(ref, origin)
	}
	return out
}

func (c *ImagePathCodec) MaterializeOne(ref string, origin domain.Origin) string {
	if origin.IsZero() || !c.Owns(ref) {
		return ref
	}
	return origin.Scheme + "://" + origin.Host + ref
}

// AssetRef returns the stored ref raw names when it points below the public
// prefix, given either as a ref or as an absolute URL on any host.
func (c *ImagePathCodec) AssetRef(raw string) (string, bool) {
	if c.Owns(raw) {
		return raw, true
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", false
	}
	if c.Owns(u.Path) {
		return u.Path, true
	}
	return "", false
}

// Owns reports whether ref points below the public prefix, i.e. at an asset
// this service stored.
func (c *ImagePathCodec) Owns(ref string) bool {
	return strings.HasPrefix(ref, c.prefix+"/")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
