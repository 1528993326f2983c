package distribute

// ComputeShares calculates per-holder payouts:
//
//	share = floor(balance * totalRevenue / totalSupply)
//
// Truncation is the rounding policy. Floor division never
// over-allocates, so the receipt amounts always sum to at most
// totalRevenue; the remainder is dust and stays at the source account.
// Holders with a zero share stay in the receipt list.
func ComputeShares(totalRevenue uint64, holders []Holder, totalSupply uint64) ([]Receipt, error) {
	if totalRevenue == 0 {
		return nil, ErrInvalidRevenueAmount
	}
	if len(holders) == 0 {
		return nil, ErrNoHolders
	}
	if totalSupply == 0 {
		return nil, ErrZeroTotalSupply
	}

	receipts := make([]Receipt, len(holders))
	for i, h := range holders {
		receipts[i] = Receipt{
			Account: h.Account,
			Amount:  h.Balance * totalRevenue / totalSupply,
		}
	}
	return receipts, nil
}
