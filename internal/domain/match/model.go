package match

import "time"

// Match is a persisted fixture between two clubs at a stadium.
type Match struct {
	ID         int64
	HomeClubID int64
	AwayClubID int64
	HomeGoals  int
	AwayGoals  int
	StadiumID  int64
	PlayedAt   time.Time
}

// Proposal is a candidate match before validation. Pointer fields
// distinguish absent values from legitimate zeros (a 0x0 score is valid).
type Proposal struct {
	HomeClubID *int64
	AwayClubID *int64
	HomeGoals  *int
	AwayGoals  *int
	StadiumID  *int64
	PlayedAt   *time.Time
}

// Filter narrows match listings. Nil fields mean "no filter".
type Filter struct {
	HomeClubID *int64
	AwayClubID *int64
	StadiumID  *int64
}
