// Package navigation models which storefront page is active.
package navigation

import (
	"encoding/json"
	"fmt"
)

// View is the active page. The set of cases is closed: only the types in this
// package implement it.
type View interface {
	Name() string
	view()
}

type Home struct{}

type ProductDetail struct{ ID string }

type Category struct{ ID string }

type Profile struct{}

type Cart struct{}

type Wishlist struct{}

type Login struct{}

func (Home) Name() string          { return "home" }
func (ProductDetail) Name() string { return "product" }
func (Category) Name() string      { return "category" }
func (Profile) Name() string       { return "profile" }
func (Cart) Name() string          { return "cart" }
func (Wishlist) Name() string      { return "wishlist" }
func (Login) Name() string         { return "login" }

func (Home) view()          {}
func (ProductDetail) view() {}
func (Category) view()      {}
func (Profile) view()       {}
func (Cart) view()          {}
func (Wishlist) view()      {}
func (Login) view()         {}

// Wire is the JSON form of a view.
type Wire struct {
	Name string `json:"name" binding:"required"`
	ID   string `json:"id,omitempty"`
}

// ToWire converts a view to its JSON form.
func ToWire(v View) Wire {
	switch v := v.(type) {
	case ProductDetail:
		return Wire{Name: v.Name(), ID: v.ID}
	case Category:
		return Wire{Name: v.Name(), ID: v.ID}
	case Home, Profile, Cart, Wishlist, Login:
		return Wire{Name: v.Name()}
	default:
		panic(fmt.Sprintf("navigation: unknown view %T", v))
	}
}

// Parse converts the JSON form back to a view.
func Parse(w Wire) (View, error) {
	switch w.Name {
	case "home":
		return Home{}, nil
	case "product":
		if w.ID == "" {
			return nil, fmt.Errorf("view %q requires an id", w.Name)
		}
		return ProductDetail{ID: w.ID}, nil
	case "category":
		if w.ID == "" {
			return nil, fmt.Errorf("view %q requires an id", w.Name)
		}
		return Category{ID: w.ID}, nil
	case "profile":
		return Profile{}, nil
	case "cart":
		return Cart{}, nil
	case "wishlist":
		return Wishlist{}, nil
	case "login":
		return Login{}, nil
	default:
		return nil, fmt.Errorf("unknown view %q", w.Name)
	}
}

// Marshal encodes a view as JSON.
func Marshal(v View) ([]byte, error) {
	return json.Marshal(ToWire(v))
}
