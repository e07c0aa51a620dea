package entity

// Section groups pages for a single user. Id stays 0 until the
// repository assigns one.
type Section struct {
	Id     int
	Name   string
	UserId string
	Pages  []*Page
}
