package booking

// TourPrice is the per-person and total price of a tour booking.
type TourPrice struct {
	PerPerson Money
	Total     Money
}

// PriceTour applies the tour discount to the list amount and multiplies by the headcount.
func PriceTour(amount Money, discount float64, numGuests int) TourPrice {
	perPerson := amount.LessFraction(discount)
	return TourPrice{
		PerPerson: perPerson,
		Total:     perPerson.Times(numGuests),
	}
}

// Commission is the platform's cut at the given percentage. It is computed once when the
// booking is created.
func Commission(total Money, ratePercent float64) Money {
	return total.Percent(ratePercent)
}
