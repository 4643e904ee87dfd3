package sign

type Sign string

func (s Sign) String() string {
	return string(s)
}

const (
	LOGGER    Sign = "logger"
	TRAVEL_AT Sign = "travel_at"
	INSTANT   Sign = "instant"
	CLOCK_ID  Sign = "clock_id"
	ENTRY     Sign = "entry"
	Error     Sign = "error"
)
