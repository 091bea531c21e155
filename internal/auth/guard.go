package auth

// SignInPath is where anonymous callers are sent.
const SignInPath = "/auth"

type Decision int

const (
	DecisionLoading Decision = iota
	DecisionRedirect
	DecisionAllow
)

// Guard decides what a protected route does for an identity state.
func Guard(state State) Decision {
	switch state {
	case StateAuthenticated:
		return DecisionAllow
	case StateAnonymous:
		return DecisionRedirect
	default:
		return DecisionLoading
	}
}
