package distribute

import "fmt"

// VerifyReceipts audits a receipt list against the proportional
// formula and the conservation bound. It recomputes the expected
// shares and checks account order, amounts, and that the total paid
// never exceeds totalRevenue.
func VerifyReceipts(receipts []Receipt, holders []Holder, totalRevenue, totalSupply uint64) error {
	if len(receipts) != len(holders) {
		return fmt.Errorf("%w: receipt count %d != holder count %d", ErrReceiptMismatch, len(receipts), len(holders))
	}

	expected, err := ComputeShares(totalRevenue, holders, totalSupply)
	if err != nil {
		return err
	}

	var paid uint64
	for i := range receipts {
		if receipts[i].Account != expected[i].Account {
			return fmt.Errorf("%w: receipt %d: account mismatch", ErrReceiptMismatch, i)
		}
		if receipts[i].Amount != expected[i].Amount {
			return fmt.Errorf("%w: receipt %d: amount %d != expected %d",
				ErrReceiptMismatch, i, receipts[i].Amount, expected[i].Amount)
		}
		paid += receipts[i].Amount
	}

	if paid > totalRevenue {
		return fmt.Errorf("%w: paid %d exceeds revenue %d", ErrReceiptMismatch, paid, totalRevenue)
	}
	return nil
}
