package domain

// Category is the fixed set of sweet categories. There are no dynamic
// categories; every sweet belongs to exactly one of these.
type Category string

const (
	CategoryChocolate Category = "chocolate"
	CategoryCandy     Category = "candy"
	CategoryCake      Category = "cake"
	CategoryCookie    Category = "cookie"
	CategoryIceCream  Category = "ice-cream"
	CategoryPastry    Category = "pastry"
	CategoryOther     Category = "other"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryChocolate, CategoryCandy, CategoryCake, CategoryCookie,
		CategoryIceCream, CategoryPastry, CategoryOther:
		return true
	}
	return false
}

// Categories returns all valid categories in display order.
func Categories() []Category {
	return []Category{
		CategoryChocolate, CategoryCandy, CategoryCake, CategoryCookie,
		CategoryIceCream, CategoryPastry, CategoryOther,
	}
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
