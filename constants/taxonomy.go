package constants

// Taxonomy identifies one of the fixed classification tables.
type Taxonomy string

const (
	EarningTypes    Taxonomy = "earning_types"
	DeductionTypes  Taxonomy = "deduction_types"
	TaxTypes        Taxonomy = "tax_types"
	PaymentTypes    Taxonomy = "payment_types"
	PayFrequencies  Taxonomy = "pay_frequencies"
)

// Other is the fallback category for every taxonomy.
const Other = "Other"

// TaxAuthority is the level of government a tax line belongs to.
type TaxAuthority string

const (
	AuthorityFederal TaxAuthority = "Federal"
	AuthorityState   TaxAuthority = "State"
	AuthorityLocal   TaxAuthority = "Local"
)

// AliasEntry pairs a canonical category with the raw spellings that map to it.
// Entries are matched in slice order, and aliases within an entry in slice
// order; the first containment hit wins. Keep the tables as ordered slices:
// the order IS the tie-break rule for ambiguous labels.
type AliasEntry struct {
	Category string
	Aliases  []string
}

var earningAliases = []AliasEntry{
	{"Regular Pay", []string{"Regular", "Reg Pay", "Regular Pay", "0-Regular Pay", "REG", "Regular Hours"}},
	{"Overtime", []string{"Overtime", "OT", "O/T", "Overtime Pay", "1-Overtime", "OT Pay"}},
	{"Double Time", []string{"Double Time", "DT", "Double OT", "2-Double Time"}},
	{"Vacation Pay", []string{"Vacation", "Vacation Pay", "1-Vacation Pay", "VAC", "PTO"}},
	{"Sick Pay", []string{"Sick", "Sick Pay", "2-Sick Pay", "Sick Leave", "Sick Time"}},
	{"Holiday Pay", []string{"Holiday", "Holiday Pay", "HOL", "Holiday Hours"}},
	{"Bonus", []string{"Bonus", "3-Bonus Pay", "Bonus Pay", "Incentive", "Annual Bonus"}},
	{"Commission", []string{"Commission", "COMM", "Sales Commission"}},
}

var taxAliases = []AliasEntry{
	{"Federal Income Tax", []string{"Federal WH", "FWT", "Fed WH", "Federal Withholding", "Federal Tax"}},
	{"OASDI", []string{"OASDI", "Social Security", "SS", "FICA-OASDI", "Soc Sec"}},
	{"Medicare", []string{"Medicare", "Med", "FICA-Medicare", "FICA Med"}},
	{"State Income Tax", []string{"State WH", "SWT", "State Withholding", "State Tax", "MA: State WH", "CA: State WH"}},
	{"Local Income Tax", []string{"Local WH", "City Tax", "Local Tax", "Municipal Tax"}},
	{"SDI", []string{"SDI", "State Disability", "CA SDI", "Disability Insurance"}},
}

var deductionAliases = []AliasEntry{
	{"Retirement - 401k", []string{"401K Plan", "4-401K Plan", "401(k)", "401k", "401K Deduction"}},
	{"Retirement - 403b", []string{"403B Plan", "403(b)", "403b"}},
	{"Health Insurance", []string{"CAF Medical", "2-CAF Medical", "Medical", "Health Ins", "Medical Insurance"}},
	{"Dental Insurance", []string{"CAF Dental", "3-CAF Dental", "Dental", "Dental Ins"}},
	{"Vision Insurance", []string{"Vision", "Vision Ins", "Vision Insurance"}},
	{"Life Insurance", []string{"Life", "Life Ins", "Life Insurance"}},
	{"Child Support", []string{"Child Support", "1-Child Support", "31-Child Support", "Garnishment-Child Support"}},
	{"Tax Levy", []string{"Tax Levy", "32-Mass Tax Lev", "IRS Levy", "State Levy"}},
	{"FSA", []string{"FSA", "Flex Spending", "Flexible Spending"}},
	{"HSA", []string{"HSA", "Health Savings"}},
	{"Union Dues", []string{"Union", "Union Dues", "Union Fee"}},
}

var paymentAliases = []AliasEntry{
	{"Direct Deposit", []string{"DD", "Direct Deposit", "ACH", "EFT"}},
	{"Check", []string{"Check", "CHK", "Paper Check"}},
}

var frequencyAliases = []AliasEntry{
	{"Weekly", []string{"Weekly", "WK", "W"}},
	{"Biweekly", []string{"Biweekly", "Bi-Weekly", "Every 2 Weeks", "BW"}},
	{"Semi-Monthly", []string{"Semi-Monthly", "Semi Monthly", "Twice Monthly", "SM"}},
	{"Monthly", []string{"Monthly", "MO", "M"}},
}

// AliasTable returns the ordered alias entries for a taxonomy. The returned
// slice is shared and must not be mutated.
func AliasTable(t Taxonomy) []AliasEntry {
	switch t {
	case EarningTypes:
		return earningAliases
	case DeductionTypes:
		return deductionAliases
	case TaxTypes:
		return taxAliases
	case PaymentTypes:
		return paymentAliases
	case PayFrequencies:
		return frequencyAliases
	default:
		return nil
	}
}

// Categories returns the canonical category names of a taxonomy in table
// order, without the implicit "Other" fallback.
func Categories(t Taxonomy) []string {
	entries := AliasTable(t)
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Category
	}
	return out
}
