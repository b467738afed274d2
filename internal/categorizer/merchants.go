package categorizer

// merchantRule maps a merchant-name fragment to a canonical merchant name
// and a category label. Matching is case-insensitive substring and the
// first matching rule wins, so the table order is significant: more
// specific fragments come before the generic ones they contain.
type merchantRule struct {
	fragment  string
	canonical string
	category  string
}

// merchantRules is the curated, process-wide immutable merchant table.
var merchantRules = []merchantRule{
	// Coffee & food
	{"STARBUCKS", "Starbucks", "Dining"},
	{"DUNKIN", "Dunkin'", "Dining"},
	{"MCDONALD", "McDonald's", "Dining"},
	{"CHIPOTLE", "Chipotle", "Dining"},
	{"DOORDASH", "DoorDash", "Dining"},
	{"GRUBHUB", "Grubhub", "Dining"},
	{"UBER EATS", "Uber Eats", "Dining"},

	// Groceries
	{"WHOLE FOODS", "Whole Foods", "Groceries"},
	{"TRADER JOE", "Trader Joe's", "Groceries"},
	{"SAFEWAY", "Safeway", "Groceries"},
	{"KROGER", "Kroger", "Groceries"},
	{"ALDI", "Aldi", "Groceries"},
	{"COSTCO", "Costco", "Groceries"},

	// Transport. "UBER EATS" above must match before the bare "UBER".
	{"UBER", "Uber", "Transport"},
	{"LYFT", "Lyft", "Transport"},
	{"SHELL", "Shell", "Transport"},
	{"CHEVRON", "Chevron", "Transport"},
	{"EXXON", "Exxon", "Transport"},

	// Shopping
	{"AMZN MKTP", "Amazon", "Shopping"},
	{"AMAZON", "Amazon", "Shopping"},
	{"WALMART", "Walmart", "Shopping"},
	{"WAL-MART", "Walmart", "Shopping"},
	{"TARGET", "Target", "Shopping"},
	{"BEST BUY", "Best Buy", "Shopping"},
	{"HOME DEPOT", "Home Depot", "Home"},
	{"IKEA", "IKEA", "Home"},

	// Subscriptions & entertainment
	{"NETFLIX", "Netflix", "Entertainment"},
	{"SPOTIFY", "Spotify", "Entertainment"},
	{"HULU", "Hulu", "Entertainment"},
	{"DISNEY PLUS", "Disney+", "Entertainment"},
	{"DISNEY+", "Disney+", "Entertainment"},
	{"APPLE.COM/BILL", "Apple", "Entertainment"},
	{"YOUTUBE", "YouTube", "Entertainment"},

	// Utilities & telecom
	{"COMCAST", "Comcast", "Utilities"},
	{"XFINITY", "Xfinity", "Utilities"},
	{"VERIZON", "Verizon", "Utilities"},
	{"T-MOBILE", "T-Mobile", "Utilities"},
	{"AT&T", "AT&T", "Utilities"},

	// Financial
	{"PAYPAL", "PayPal", "Transfers"},
	{"VENMO", "Venmo", "Transfers"},
	{"ZELLE", "Zelle", "Transfers"},
	{"ATM WITHDRAWAL", "ATM Withdrawal", "Cash"},
	{"INTEREST PAYMENT", "Interest Payment", "Income"},
	{"DIRECT DEP", "Direct Deposit", "Income"},
	{"PAYROLL", "Payroll", "Income"},
}

// subscriptionMerchants are fragments of merchants billed on a recurring
// schedule, used by the payment-type detector to flag subscriptions.
var subscriptionMerchants = []string{
	"NETFLIX",
	"SPOTIFY",
	"HULU",
	"DISNEY",
	"APPLE.COM/BILL",
	"YOUTUBE PREMIUM",
	"AMAZON PRIME",
	"AUDIBLE",
	"PATREON",
	"GYM",
	"FITNESS",
}

// billMerchants are fragments indicating recurring bill payees.
var billMerchants = []string{
	"ELECTRIC",
	"WATER UTIL",
	"GAS COMPANY",
	"INSURANCE",
	"MORTGAGE",
	"RENT PAYMENT",
	"COMCAST",
	"XFINITY",
	"VERIZON",
	"T-MOBILE",
	"AT&T",
	"INTERNET",
}
