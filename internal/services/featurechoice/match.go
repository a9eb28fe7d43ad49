package featurechoice

import (
	"strings"

	"github.com/KirkDiggler/rpg-porter/internal/dto"
	"github.com/KirkDiggler/rpg-porter/internal/entities"
	"github.com/KirkDiggler/rpg-porter/internal/pkg/textmatch"
)

// FindFeature searches forest depth-first, each node before its children,
// and returns the first definition answering selected. A choice ID, when
// present, must match exactly; otherwise the type must match ignoring case
// and the categories must agree.
func FindFeature(forest []*entities.FeatureDef, selected *dto.SelectedFeature) *entities.FeatureDef {
	for _, node := range forest {
		if node == nil {
			continue
		}
		if matches(node, selected) {
			return node
		}
		if found := FindFeature(node.Features, selected); found != nil {
			return found
		}
	}
	return nil
}

func matches(node *entities.FeatureDef, selected *dto.SelectedFeature) bool {
	if id := selected.ChoiceID(); id != "" {
		return node.ID == id
	}
	if !strings.EqualFold(node.Type, selected.ChoiceType()) {
		return false
	}
	return CategoriesMatch(selected.Categories(), node.Categories)
}

// CategoriesMatch reports whether the selected categories accept a
// definition's categories. No selected categories, not counting the type
// tag, match anything; otherwise
// every key present on either side must carry the same value on both.
func CategoriesMatch(selected, definition map[string]string) bool {
	if categoryCount(selected) == 0 {
		return true
	}
	for k, v := range selected {
		if k == dto.TypeKey {
			continue
		}
		if dv, ok := definition[k]; !ok || dv != v {
			return false
		}
	}
	for k := range definition {
		if k == dto.TypeKey {
			continue
		}
		if _, ok := selected[k]; !ok {
			return false
		}
	}
	return true
}

func categoryCount(categories map[string]string) int {
	n := len(categories)
	if _, ok := categories[dto.TypeKey]; ok {
		n--
	}
	return n
}

// MatchOption finds the inline option a pick refers to, by ID first and then
// by sanitized name.
func MatchOption(options []entities.FeatureOption, sel *dto.LookupReference) (string, bool) {
	if id := sel.ID(); id != "" {
		for _, opt := range options {
			if opt.ID == id {
				return opt.ID, true
			}
		}
	}
	if name := sel.Name(); name != "" {
		for _, opt := range options {
			if textmatch.Match(opt.Name, name) {
				return opt.ID, true
			}
		}
	}
	return "", false
}

// MergeLevelChoices copies src into dst; later writes win on shared keys.
func MergeLevelChoices(dst, src map[string][]string) map[string][]string {
	if dst == nil {
		dst = make(map[string][]string, len(src))
	}
	for k, v := range src {
		dst[k] = append([]string(nil), v...)
	}
	return dst
}
