// Package classify maps sample filenames onto the fixed destination
// taxonomy. Matching is substring containment on the lowercased name; rules
// are evaluated in priority order and the first match wins.
package classify

import (
	"path/filepath"
	"strings"
)

// Category is an ordered (group, subgroup) pair in the fixed destination
// taxonomy. Categories are only constructed by this package.
type Category struct {
	Group    string
	Subgroup string
}

// String returns the category as "Group/Subgroup".
func (c Category) String() string { return c.Group + "/" + c.Subgroup }

// Dir returns the category's directory path under destRoot.
func (c Category) Dir(destRoot string) string {
	return filepath.Join(destRoot, c.Group, c.Subgroup)
}

// The closed category set.
var (
	Drums808   = Category{Group: "Drums", Subgroup: "808"}
	DrumsSnare = Category{Group: "Drums", Subgroup: "Snare"}
	DrumsKick  = Category{Group: "Drums", Subgroup: "Kick"}
	DrumsClap  = Category{Group: "Drums", Subgroup: "Clap"}
	DrumsHat   = Category{Group: "Drums", Subgroup: "Hat"}
	DrumsOther = Category{Group: "Drums", Subgroup: "Other"}
	OtherLoop  = Category{Group: "Other", Subgroup: "Loop"}
	OtherOther = Category{Group: "Other", Subgroup: "Other"}
)

// Categories returns the closed category set in display order. The slice is
// freshly allocated; callers may reorder it.
func Categories() []Category {
	return []Category{
		Drums808, DrumsSnare, DrumsKick, DrumsClap, DrumsHat, DrumsOther,
		OtherLoop, OtherOther,
	}
}

// Classify maps a filename to its Category. Every filename classifies to
// exactly one category; names matching no rule land in Other/Other.
func Classify(filename string) Category {
	lower := strings.ToLower(filename)
	for _, rule := range Rules {
		if rule.matches(lower) {
			return rule.Category
		}
	}
	return OtherOther
}

// DestPath builds the candidate destination for filename: the category
// directory under destRoot plus the filename in its original case.
func DestPath(cat Category, destRoot, filename string) string {
	return filepath.Join(cat.Dir(destRoot), filename)
}
