package classifier

// Defaults returns the rule table used when no rule file is configured.
// It covers the small-business chart of accounts used by the sample data.
func Defaults() RuleTable {
	return RuleTable{
		"Cash":                {Category: Asset, Role: RoleCash},
		"Accounts Receivable": {Category: Asset, Role: RoleReceivable},
		"Inventory":           {Category: Asset, Role: RoleInventory},
		"Equipment":           {Category: Asset},
		"Building":            {Category: Asset},
		"Land":                {Category: Asset},
		"Prepaid Expenses":    {Category: Asset},

		"Accounts Payable": {Category: Liability, Role: RoleCurrentLiability},
		"Salaries Payable": {Category: Liability, Role: RoleCurrentLiability},
		"Notes Payable":    {Category: Liability},
		"Loan":             {Category: Liability},
		"Mortgage":         {Category: Liability},

		"Capital":           {Category: Equity},
		"Retained Earnings": {Category: Equity},
		"Common Stock":      {Category: Equity},

		"Sales Revenue":   {Category: Revenue},
		"Service Revenue": {Category: Revenue},
		"Interest Income": {Category: Revenue},
		"Other Income":    {Category: Revenue},

		"Cost of Goods Sold":   {Category: Expense, Role: RoleCostOfSales},
		"Salaries Expense":     {Category: Expense},
		"Rent Expense":         {Category: Expense},
		"Utilities Expense":    {Category: Expense},
		"Depreciation Expense": {Category: Expense},
		"Interest Expense":     {Category: Expense, Role: RoleInterest},
		"Insurance Expense":    {Category: Expense},
		"Advertising Expense":  {Category: Expense},
		"Supplies Expense":     {Category: Expense},
		"Repairs Expense":      {Category: Expense},
		"Other Expenses":       {Category: Expense},
	}
}
