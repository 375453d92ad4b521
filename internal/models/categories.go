package models

// Category names of the built-in registry. The priority tier names specific
// vendors and is always scanned before the fallback tier.
const (
	CategoryGroceries    = "Groceries"
	CategoryRestaurants  = "Restaurants & Dining"
	CategoryIncome       = "Income"
	CategoryPersonalCare = "Personal Care"
	CategoryTelecom      = "Telecommunications"
	CategoryClothing     = "Clothing"
	CategoryTransport    = "Transportation"
	CategoryWithdrawals  = "Cash Withdrawal"
	CategoryTransfers    = "Transfers"
	CategoryShopping     = "Shopping"
	CategoryOther        = "Other"
)

// CategoryConfig is one category with its ordered keyword list. Keyword order
// is load-bearing: within a category the first matching keyword wins.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoriesConfig is the full keyword registry. Both tiers are ordered
// decision lists; the priority tier is scanned before the fallback tier so a
// description matching a vendor keyword and a generic keyword resolves to the
// vendor's category.
type CategoriesConfig struct {
	Priority []CategoryConfig `yaml:"priority"`
	Fallback []CategoryConfig `yaml:"fallback"`
}

// defaultCategories is the built-in registry. It is never handed out
// directly; DefaultCategories returns a copy so categorizer instances with
// diverging registries can coexist.
var defaultCategories = CategoriesConfig{
	Priority: []CategoryConfig{
		{Name: CategoryGroceries, Keywords: []string{
			"aldi", "lidl", "edeka", "rewe", "kaufland", "netto", "penny",
			"herkules", "mix markt", "city markt", "ariana mini market",
			"schwaelmer brotladen", "schaefers backstuben",
		}},
		{Name: CategoryRestaurants, Keywords: []string{
			"restaurant", "pizza", "burger", "murg", "phung", "chicken house",
			"gastro", "zam zam", "halal food", "somat doner", "lezzeti mangal",
			"central grill", "west imbiss", "espresso house", "malamania",
		}},
		{Name: CategoryPersonalCare, Keywords: []string{
			"dm drogerie", "dm drogeriemarkt", "rossmann", "müller", "apotheke", "pharmacy",
		}},
		{Name: CategoryTelecom, Keywords: []string{
			"drillisch", "sim24", "telekom", "vodafone", "o2",
		}},
		{Name: CategoryClothing, Keywords: []string{
			"kik", "h&m", "zara", "c&a", "primark", "takko holding", "woolworth",
		}},
		{Name: CategoryTransport, Keywords: []string{
			"tankstelle", "shell", "aral", "esso", "db ", "bahn", "rmv", "flix",
		}},
		// Income is scanned last within the priority tier: its keywords
		// (gutschrift, lohn) also appear alongside vendor names, and the
		// vendor category must win.
		{Name: CategoryIncome, Keywords: []string{
			"lohn", "gehalt", "rente", "zenjob", "gutschrift", "salary",
		}},
	},
	Fallback: []CategoryConfig{
		{Name: CategoryWithdrawals, Keywords: []string{
			"auszahlung", "geldautomat", "withdrawal", "atm",
		}},
		{Name: CategoryTransfers, Keywords: []string{
			"überweisung", "transfer", "sepa", "wise",
		}},
		{Name: CategoryShopping, Keywords: []string{
			"amazon", "ebay", "online", "shop",
		}},
	},
}

// DefaultCategories returns a fresh copy of the built-in keyword registry.
func DefaultCategories() CategoriesConfig {
	return CategoriesConfig{
		Priority: copyCategoryConfigs(defaultCategories.Priority),
		Fallback: copyCategoryConfigs(defaultCategories.Fallback),
	}
}

func copyCategoryConfigs(src []CategoryConfig) []CategoryConfig {
	out := make([]CategoryConfig, len(src))
	for i, c := range src {
		out[i] = CategoryConfig{
			Name:     c.Name,
			Keywords: append([]string(nil), c.Keywords...),
		}
	}
	return out
}
