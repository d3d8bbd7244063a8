package schema

// User is the validated form of a store user. Name is trimmed and
// title-cased before the rules run; the optional phone may carry digits plus
// "+ - ( ) space" formatting. Fields without a rule accept any value of
// their type.
type User struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name" validate:"required"`
	Email  string  `json:"email"`
	Phone  *string `json:"phone" validate:"omitempty,phone"`
	Active bool    `json:"active"`
}

// NewUser builds a user with Active defaulted to true. An empty phone means
// "no phone". The record is returned only when every rule passes.
func NewUser(id int64, name, email, phone string) (*User, error) {
	u := &User{ID: id, Name: name, Email: email, Active: true}
	if phone != "" {
		u.Phone = &phone
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate normalizes the record in place and runs every field rule,
// reporting all violations together. On failure the receiver holds the
// normalized values but must be discarded.
func (u *User) Validate() error {
	u.Name = trimTitle(u.Name)
	if u.Phone != nil {
		u.Phone = trimSpacePtr(*u.Phone)
	}
	return check(u)
}

// Map converts the user to its plain key-value form with every field
// present; an absent phone serializes as nil.
func (u *User) Map() map[string]any {
	m := map[string]any{
		"id":     u.ID,
		"name":   u.Name,
		"email":  u.Email,
		"phone":  nil,
		"active": u.Active,
	}
	if u.Phone != nil {
		m["phone"] = *u.Phone
	}
	return m
}

// UserFromMap rebuilds a user from its map form, re-running all rules.
// Absent keys take the construction defaults (active=true).
func UserFromMap(m map[string]any) (*User, error) {
	r := newMapReader(m)
	u := &User{
		ID:     r.int64("id"),
		Name:   r.str("name"),
		Email:  r.str("email"),
		Phone:  r.strPtr("phone"),
		Active: r.boolOr("active", true),
	}
	if err := r.err(); err != nil {
		return nil, err
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// UserUpdate is the partial-update form of User: every field is optional
// and rules run only on the fields that are present.
type UserUpdate struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// Validate normalizes and checks only the present fields.
func (u *UserUpdate) Validate() error {
	var errs Errors
	if u.Name != nil {
		n := trimTitle(*u.Name)
		if n == "" {
			errs = append(errs, FieldError{Field: "name", Msg: "cannot be empty"})
		} else {
			u.Name = &n
		}
	}
	if u.Phone != nil {
		p := trimSpacePtr(*u.Phone)
		if p == nil {
			u.Phone = nil
		} else if !validPhone(*p) {
			errs = append(errs, FieldError{Field: "phone", Msg: "invalid phone format"})
		} else {
			u.Phone = p
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
