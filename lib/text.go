package lib

import (
	"github.com/gosimple/slug"
)

func Slugify(text string) string {
	return slug.Make(text)
}

// FileName builds an output file name from a free-form base name, falling
// back to fallback when the base has nothing usable
func FileName(base, fallback, ext string) string {
	name := Slugify(base)
	if name == "" {
		name = Slugify(fallback)
	}
	if name == "" {
		name = "output"
	}
	return name + ext
}
