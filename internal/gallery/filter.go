package gallery

import "github.com/cristosalva/cristosalva/internal/content"

// All is the category sentinel meaning "no filtering". Content validation
// rejects empty categories, so it never names a real category.
const All = ""

// Filter returns the records whose category equals category, in their
// original order. All returns the full sequence; an unknown category returns
// an empty one.
func Filter(images []content.Image, category string) []content.Image {
	if category == All {
		return images
	}
	out := make([]content.Image, 0, len(images))
	for _, img := range images {
		if img.Category == category {
			out = append(out, img)
		}
	}
	return out
}

// Categories returns the distinct categories in order of first appearance.
func Categories(images []content.Image) []string {
	seen := make(map[string]struct{}, len(images))
	var out []string
	for _, img := range images {
		if _, ok := seen[img.Category]; ok {
			continue
		}
		seen[img.Category] = struct{}{}
		out = append(out, img.Category)
	}
	return out
}

// IndexOf returns the position of the record with id, or -1.
func IndexOf(images []content.Image, id int) int {
	for i, img := range images {
		if img.ID == id {
			return i
		}
	}
	return -1
}
