package domain

import "errors"

var ErrTermsNotFound = errors.New("terms not found")

// Terms holds the legal terms-of-service content for one language,
// broken into the fixed sections the site renders.
type Terms struct {
	Language             string `json:"-"`
	Introduction         string `json:"introduction"`
	Services             string `json:"services"`
	UserResponsibilities string `json:"user_responsibilities"`
	Payments             string `json:"payments"`
	Liability            string `json:"liability"`
	Termination          string `json:"termination"`
	Changes              string `json:"changes"`
	Contact              string `json:"contact"`
}
