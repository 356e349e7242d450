package committee

import (
	"fmt"
	"strings"
)

// Fund identifies one of the three FIDUS sub-funds that the allocation split
// divides the capital between.
type Fund int

const (
	Core Fund = iota
	Balance
	Dynamic
)

// AllFunds lists the funds in their canonical reporting order.
func AllFunds() []Fund { return []Fund{Core, Balance, Dynamic} }

func (f Fund) String() string {
	switch f {
	case Core:
		return "CORE"
	case Balance:
		return "BALANCE"
	case Dynamic:
		return "DYNAMIC"
	default:
		return fmt.Sprintf("FUND(%d)", int(f))
	}
}

// ParseFund parses a fund name, accepting any casing.
func ParseFund(s string) (Fund, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CORE":
		return Core, nil
	case "BALANCE":
		return Balance, nil
	case "DYNAMIC":
		return Dynamic, nil
	}
	return 0, fmt.Errorf("unknown fund %q (want CORE, BALANCE or DYNAMIC)", s)
}
