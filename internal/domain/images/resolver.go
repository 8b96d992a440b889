// Package images resolves the display images for a record: a
// priority-ordered, de-duplicated candidate list with a deterministic
// placeholder fallback.
package images

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dragnet-io/dragnet/internal/domain/model"
)

// PlaceholderHost is the stand-in image service. Any URL on this host is
// treated as "not a real photo" by consumers.
const PlaceholderHost = "via.placeholder.com"

const placeholderSize = "400x600"

// Resolve builds the ordered candidate image list for a record.
//
// Tiers are walked in descending quality order (original, large, thumb),
// collecting every non-empty URL at a tier before moving on, so all
// highest-quality URLs precede all lower-quality ones. If no tier yields a
// URL the thumbnail of the first entry alone is used. The result is
// de-duplicated preserving first-seen order; an empty result becomes a
// single placeholder derived from name.
//
// The second return value reports whether the placeholder was used.
func Resolve(variants []model.ImageVariant, name string) ([]string, bool) {
	candidates := make([]string, 0, len(variants))
	for _, tier := range []func(model.ImageVariant) string{
		func(v model.ImageVariant) string { return v.Original },
		func(v model.ImageVariant) string { return v.Large },
		func(v model.ImageVariant) string { return v.Thumb },
	} {
		for _, v := range variants {
			if u := strings.TrimSpace(tier(v)); u != "" {
				candidates = append(candidates, u)
			}
		}
	}

	if len(candidates) == 0 && len(variants) > 0 {
		if u := strings.TrimSpace(variants[0].Thumb); u != "" {
			candidates = append(candidates, u)
		}
	}

	deduped := dedupe(candidates)
	if len(deduped) == 0 {
		return []string{Placeholder(name)}, true
	}
	return deduped, false
}

// Placeholder returns the deterministic stand-in image URL for a name.
func Placeholder(name string) string {
	text := strings.TrimSpace(name)
	if text == "" {
		text = "Unknown"
	}
	return fmt.Sprintf("https://%s/%s?text=%s", PlaceholderHost, placeholderSize, url.QueryEscape(text))
}

// IsPlaceholder reports whether a URL points at the placeholder service.
func IsPlaceholder(imageURL string) bool {
	return strings.Contains(imageURL, PlaceholderHost)
}

// Primary returns the best real display image for a person, falling back
// through images[0], the thumbnail, and finally a fresh placeholder.
func Primary(p *model.Person) string {
	if len(p.Images) > 0 && !IsPlaceholder(p.Images[0]) {
		return p.Images[0]
	}
	if p.ThumbnailURL != "" && !IsPlaceholder(p.ThumbnailURL) {
		return p.ThumbnailURL
	}
	return Placeholder(p.Name)
}

func dedupe(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
