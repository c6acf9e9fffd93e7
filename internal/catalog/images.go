package catalog

import "strings"

// AssetPrefix is the path prefix marking an image as served from the
// static asset directory.
const AssetPrefix = "back_assets/"

// imageDelimiter separates entries in the multi-URL image_urls column.
const imageDelimiter = ","

// NormalizeImageURLs converts a raw image-URL value into the canonical
// list of asset-relative paths.
//
// Accepted inputs are a comma-separated string (entries trimmed, empty
// segments dropped) or an ordered list of strings; anything else yields
// an empty list. Every entry is prefixed with AssetPrefix exactly once,
// so the function is idempotent: normalizing an already-normalized list
// returns it unchanged.
func NormalizeImageURLs(raw any) []string {
	var urls []string

	switch v := raw.(type) {
	case string:
		for _, u := range strings.Split(v, imageDelimiter) {
			u = strings.TrimSpace(u)
			if u != "" {
				urls = append(urls, u)
			}
		}
	case []string:
		urls = v
	case []any:
		for _, e := range v {
			if s, ok := e.(string); ok {
				urls = append(urls, s)
			}
		}
	default:
		return []string{}
	}

	normalized := make([]string, 0, len(urls))
	for _, u := range urls {
		if strings.HasPrefix(u, AssetPrefix) {
			normalized = append(normalized, u)
		} else {
			normalized = append(normalized, AssetPrefix+u)
		}
	}
	return normalized
}

// ApplyImageFields normalizes the image columns of a write payload in
// place. When image_urls is present it is stored back as a comma-joined
// normalized list, and image_url is set to the first entry so the
// single-URL column stays in sync. A payload carrying only image_url is
// left untouched.
func ApplyImageFields(fields map[string]any) {
	raw, ok := fields["image_urls"]
	if !ok {
		return
	}

	images := NormalizeImageURLs(raw)
	fields["image_urls"] = strings.Join(images, imageDelimiter)
	if len(images) > 0 {
		fields["image_url"] = images[0]
	}
}

// AttachImages derives the images list for a product record read from
// storage. image_urls takes precedence over the legacy single-URL
// image_url column; records with neither get an empty list so the field
// is always present in responses.
func AttachImages(rec Record) {
	if raw, ok := rec["image_urls"]; ok && raw != nil {
		if s, isStr := raw.(string); !isStr || s != "" {
			if images := NormalizeImageURLs(raw); len(images) > 0 {
				rec["images"] = images
				return
			}
		}
	}

	if raw, ok := rec["image_url"]; ok {
		if s, isStr := raw.(string); isStr && s != "" {
			rec["images"] = []string{s}
			return
		}
	}

	rec["images"] = []string{}
}
