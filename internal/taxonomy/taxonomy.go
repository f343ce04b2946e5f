// Package taxonomy holds the fixed financial-statement hierarchy and the
// option labels and codes derived from it.
package taxonomy

import (
	"strings"

	"github.com/cleared-dev/fsprep/internal/model"
)

const (
	// CategorySentinel is the placeholder at index 0 of the category options.
	CategorySentinel = "Select mapping..."
	// SubCategorySentinel is the placeholder at index 0 of sub-category options.
	SubCategorySentinel = "Select sub-category..."

	optionSep = " - "
)

var (
	categories []model.Category
	byCode     map[string]int
	byName     map[string]int
)

func init() {
	byCode = make(map[string]int)
	byName = make(map[string]int)
	for _, g := range hierarchy {
		for _, def := range g.categories {
			code := g.statement.Prefix() + Compact(def.name)
			cat := model.Category{
				Code:      code,
				Name:      def.name,
				Statement: g.statement,
				Group:     g.group,
			}
			for _, sub := range def.subs {
				key := Compact(sub)
				cat.SubCategories = append(cat.SubCategories, model.SubCategory{
					Code: code + "_" + key,
					Key:  key,
					Name: sub,
				})
			}
			byCode[code] = len(categories)
			byName[def.name] = len(categories)
			categories = append(categories, cat)
		}
	}
}

// Compact removes all whitespace from s. Codes and schedule keys are built
// from compacted names.
func Compact(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// Categories returns every category in declared order.
func Categories() []model.Category {
	out := make([]model.Category, len(categories))
	for i, c := range categories {
		out[i] = clone(c)
	}
	return out
}

func clone(c model.Category) model.Category {
	c.SubCategories = append([]model.SubCategory(nil), c.SubCategories...)
	return c
}

// ByStatement returns the categories of one statement in declared order.
func ByStatement(s model.Statement) []model.Category {
	var out []model.Category
	for _, c := range categories {
		if c.Statement == s {
			out = append(out, clone(c))
		}
	}
	return out
}

// Lookup returns the category with the given code.
func Lookup(code string) (model.Category, bool) {
	i, ok := byCode[code]
	if !ok {
		return model.Category{}, false
	}
	return clone(categories[i]), true
}

// LookupName returns the category with the given display name.
func LookupName(name string) (model.Category, bool) {
	i, ok := byName[name]
	if !ok {
		return model.Category{}, false
	}
	return clone(categories[i]), true
}

// CategoryOptions returns the sentinel followed by "{code} - {name}" for
// every category.
func CategoryOptions() []string {
	opts := make([]string, 0, len(categories)+1)
	opts = append(opts, CategorySentinel)
	for _, c := range categories {
		opts = append(opts, c.Option())
	}
	return opts
}

// SubCategoryOptions returns the sentinel followed by the sub-category
// options of the category named in option. For the sentinel or an unknown
// category only the sentinel is returned.
func SubCategoryOptions(option string) []string {
	opts := []string{SubCategorySentinel}
	cat, ok := categoryFromOption(option)
	if !ok {
		return opts
	}
	for _, s := range cat.SubCategories {
		opts = append(opts, s.Option())
	}
	return opts
}

func categoryFromOption(option string) (model.Category, bool) {
	if option == "" || option == CategorySentinel {
		return model.Category{}, false
	}
	if c, ok := LookupName(OptionLabel(option, option)); ok {
		return c, true
	}
	return Lookup(option)
}

// OptionCode returns the code part of a "{code} - {name}" option.
func OptionCode(option string) string {
	code, _, _ := strings.Cut(option, optionSep)
	return code
}

// OptionLabel returns the name part of a "{code} - {name}" option, or
// fallback when the option has no separator.
func OptionLabel(option, fallback string) string {
	parts := strings.Split(option, optionSep)
	if len(parts) < 2 {
		return fallback
	}
	return parts[1]
}

// IsSentinel reports whether option is empty or one of the placeholders.
func IsSentinel(option string) bool {
	return option == "" || option == CategorySentinel || option == SubCategorySentinel
}

// ResolveCategory accepts a code, a full option or a category name and
// returns the matching category.
func ResolveCategory(input string) (model.Category, bool) {
	input = strings.TrimSpace(input)
	if c, ok := Lookup(OptionCode(input)); ok {
		return c, true
	}
	for _, c := range categories {
		if strings.EqualFold(c.Name, input) {
			return clone(c), true
		}
	}
	return model.Category{}, false
}

// ResolveSubCategory finds a sub-category of cat by code, option, key or
// name.
func ResolveSubCategory(cat model.Category, input string) (model.SubCategory, bool) {
	input = strings.TrimSpace(input)
	code := OptionCode(input)
	for _, s := range cat.SubCategories {
		if s.Code == code || s.Key == input || strings.EqualFold(s.Name, input) {
			return s, true
		}
	}
	return model.SubCategory{}, false
}
