// Package fees holds the two derivation rules for admission fee
// fields. Both are pure and idempotent; callers recompute whenever an
// input changes.
package fees

// Total returns the total annual fees: tuition plus hostel, mess and
// other charges.
func Total(tuition, hostelAndOther float64) float64 {
	return tuition + hostelAndOther
}

// NetPayable returns the net annual fee after both scholarships are
// deducted from the total. The result may be negative when the
// scholarships exceed the total; a negative payable is a valid,
// displayable amount, not an error.
func NetPayable(total, instituteScholarship, presidentsScholarship float64) float64 {
	return total - instituteScholarship - presidentsScholarship
}
