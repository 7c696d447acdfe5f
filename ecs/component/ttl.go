package component

// TTL destroys its entity once Seconds of simulated time have elapsed.
type TTL struct {
	Seconds float64
}

var TTLComponent = NewComponent[TTL]()
