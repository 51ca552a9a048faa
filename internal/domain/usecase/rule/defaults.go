package rule

import "github.com/amirhossein-jamali/txn-categorizer/internal/domain/entity"

// defaultRule is a per-entity system rule seeded on first use
type defaultRule struct {
	seedKey      string
	priority     int
	categoryCode string
	matcher      entity.MatcherSpec
	explanation  string
}

// defaultRules is the starter rule set every entity receives. Seed keys are stable:
// renaming one seeds the rule again.
var defaultRules = []defaultRule{
	{
		seedKey:      "food-delivery",
		priority:     100,
		categoryCode: "FOOD_DINING",
		matcher: entity.MatcherSpec{
			Direction:        entity.DirectionOutflow,
			DescriptionRegex: "(swiggy|zomato)",
		},
		explanation: "Food delivery merchant in description, categorized as {category}",
	},
	{
		seedKey:      "groceries",
		priority:     110,
		categoryCode: "GROCERIES",
		matcher: entity.MatcherSpec{
			Direction:        entity.DirectionOutflow,
			DescriptionRegex: `(bigbasket|blinkit|dmart|zepto)`,
		},
		explanation: "Grocery merchant in description, categorized as {category}",
	},
	{
		seedKey:      "ride-hailing",
		priority:     120,
		categoryCode: "TRANSPORT",
		matcher: entity.MatcherSpec{
			Direction:        entity.DirectionOutflow,
			DescriptionRegex: `\b(uber|ola|rapido)\b`,
		},
		explanation: "Ride hailing payment, categorized as {category}",
	},
	{
		seedKey:      "utilities",
		priority:     130,
		categoryCode: "UTILITIES",
		matcher: entity.MatcherSpec{
			Direction:        entity.DirectionOutflow,
			DescriptionRegex: `(electricity|broadband|water bill|gas bill)`,
		},
		explanation: "Utility bill payment, categorized as {category}",
	},
	{
		seedKey:      "bank-fees",
		priority:     140,
		categoryCode: "BANK_FEES",
		matcher: entity.MatcherSpec{
			Direction:        entity.DirectionOutflow,
			DescriptionRegex: `(bank charges|sms charges|annual fee|service charge)`,
		},
		explanation: "Bank charge, categorized as {category}",
	},
	{
		seedKey:      "salary",
		priority:     200,
		categoryCode: "SALARY_INCOME",
		matcher: entity.MatcherSpec{
			Direction:           entity.DirectionInflow,
			DescriptionContains: "salary",
		},
		explanation: "Salary credit, categorized as {category}",
	},
	{
		seedKey:      "interest",
		priority:     210,
		categoryCode: "INTEREST_INCOME",
		matcher: entity.MatcherSpec{
			Direction:        entity.DirectionInflow,
			DescriptionRegex: `\binterest\b`,
		},
		explanation: "Interest credit, categorized as {category}",
	},
}
