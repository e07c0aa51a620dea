package entity

// CurrentUser carries the identity resolved for the current request.
// It is never persisted; the service only trusts Id when
// IsAuthenticated is true.
type CurrentUser struct {
	Id              string
	Name            string
	IsAuthenticated bool
}
