package content

// Caller identifies who performs an operation. The zero value is an
// anonymous visitor.
type Caller struct {
	UserID string
	Email  string
	Role   string
}

// Anonymous is the caller used for unauthenticated requests.
var Anonymous = Caller{}

// Admin reports whether the caller holds a valid admin session.
func (c Caller) Admin() bool {
	return c.UserID != ""
}

func (c Caller) require() error {
	if !c.Admin() {
		return ErrUnauthorized
	}
	return nil
}
