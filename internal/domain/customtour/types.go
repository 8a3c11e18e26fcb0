package customtour

type Status string

const (
	StatusPending    Status = "pending"
	StatusAssigned   Status = "assigned"
	StatusQuoted     Status = "quoted"
	StatusBargaining Status = "bargaining"
	StatusAccepted   Status = "accepted"
	StatusRejected   Status = "rejected"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAssigned, StatusQuoted, StatusBargaining,
		StatusAccepted, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected || s == StatusCancelled
}

// inNegotiation covers the quoted <-> bargaining loop.
func (s Status) inNegotiation() bool {
	return s == StatusQuoted || s == StatusBargaining
}
