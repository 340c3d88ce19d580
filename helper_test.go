package minifire

// referenceProfile is the profile used by the reference scenario: 1M yen saved toward 30M.
var referenceProfile = Profile{
	MonthlyIncome:        160000,
	CurrentAssets:        1_000_000,
	TargetAssets:         30_000_000,
	MonthlySavingsTarget: 40000,
}

// beyond maps an unreachable target to a year after any horizon, so that years can be compared.
func beyond(year float64, ok bool) float64 {
	if !ok {
		return 1e9
	}
	return year
}
