package filter

import (
	"context"
	"fmt"
	"math"

	"mspro-labs/lunch-picker/internal/models"
	"mspro-labs/lunch-picker/internal/money"
	"mspro-labs/lunch-picker/internal/prompt"
)

// AnyCategory is the menu entry that disables the category filter.
const AnyCategory = "전체"

// NoLimit is the price ceiling used when the user does not cap the price.
const NoLimit = math.MaxInt

// Feature is the optional taste constraint.
type Feature int

const (
	FeatureSoup Feature = iota + 1
	FeatureSpicy
	FeatureSimple
	FeatureNone
)

var featureOptions = []string{"국물 필수", "매운 거", "심플한 거", "없음"}

const flexOption = "상관없음 (플렉스)"

// Criteria are the active filters for one recommendation request.
type Criteria struct {
	// Category is empty when any category is acceptable.
	Category string
	MaxPrice int
	Feature  Feature
}

// Ask collects Criteria through three menu prompts, always in the same order.
func Ask(ctx context.Context, p *prompt.Prompter, budget int) (Criteria, error) {
	var c Criteria

	p.Println("\n[Step 1] 어떤 종류를 드시겠습니까?")
	category, err := p.Choose(ctx, "", append(append([]string{}, models.Categories...), AnyCategory))
	if err != nil {
		return c, err
	}
	if category != AnyCategory {
		c.Category = category
	}

	p.Println("\n[Step 2] 가격대는 어떠신가요?")
	tier, err := p.ChooseIndex(ctx, "", []string{BudgetOption(budget), flexOption})
	if err != nil {
		return c, err
	}
	c.MaxPrice = NoLimit
	if tier == 1 {
		c.MaxPrice = budget
	}

	p.Println("\n[Step 3] 오늘 특별히 땡기는 게 있나요?")
	feature, err := p.ChooseIndex(ctx, "", featureOptions)
	if err != nil {
		return c, err
	}
	c.Feature = Feature(feature)

	return c, nil
}

// BudgetOption is the menu label of the capped price tier.
func BudgetOption(budget int) string {
	return fmt.Sprintf("%s원 이하 (가성비)", money.Format(budget))
}

// Apply keeps the records matching every active filter, preserving order.
func Apply(records []models.Restaurant, c Criteria) []models.Restaurant {
	candidates := make([]models.Restaurant, 0, len(records))
	for _, r := range records {
		if c.Matches(r) {
			candidates = append(candidates, r)
		}
	}
	return candidates
}

// Matches applies category, then price, then feature.
func (c Criteria) Matches(r models.Restaurant) bool {
	if c.Category != "" && r.Category != c.Category {
		return false
	}
	// Records whose stored price is not a number match no price tier.
	if !r.HasPrice() || r.Price > c.MaxPrice {
		return false
	}

	switch c.Feature {
	case FeatureSoup:
		return r.Soup(false)
	case FeatureSpicy:
		return r.Spicy(false)
	case FeatureSimple:
		// A missing flag counts as set here, so incomplete records never pass as simple.
		return !r.Spicy(true) && !r.Soup(true)
	}
	return true
}

// Filter asks for criteria and returns the matching candidates.
func Filter(ctx context.Context, p *prompt.Prompter, records []models.Restaurant, budget int) ([]models.Restaurant, error) {
	c, err := Ask(ctx, p, budget)
	if err != nil {
		return nil, err
	}
	return Apply(records, c), nil
}
