package models

// UserRecord is the slice of a user profile the pricing core reads.
type UserRecord struct {
	ID                string  `json:"id"`
	Balance           float64 `json:"balance"`
	CurrentSeat       string  `json:"currentSeat,omitempty"`
	CurrentHostelRoom string  `json:"currentHostelRoom,omitempty"`
	MealsEaten        int     `json:"mealsEaten"`
}

func (u *UserRecord) HasActiveSeat() bool {
	return u.CurrentSeat != ""
}

func (u *UserRecord) HasActiveHostelRoom() bool {
	return u.CurrentHostelRoom != ""
}
