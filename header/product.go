package header

import "slices"

// Product is a product token "name[/version]".
type Product struct {
	Name, Version string
}

func (p Product) IsZero() bool { return p == Product{} }

func (p Product) String() string {
	if p.Version == "" {
		return p.Name
	}
	return p.Name + "/" + p.Version
}

func (Product) productOrComment() {}

// ProductList is a list of products, used by Upgrade.
type ProductList []Product

func (l ProductList) Clone() ProductList { return slices.Clone(l) }

func (l ProductList) String() string { return joinEntries(l, ", ") }

// Comment is a free-form comment. It renders in parentheses with
// the special characters escaped.
type Comment string

func (c Comment) String() string { return Quote(string(c), true, true) }

func (Comment) productOrComment() {}

// ProductOrComment is either a [Product] or a [Comment].
type ProductOrComment interface {
	String() string
	productOrComment()
}

// ProductsAndComments is a space separated sequence of products and comments,
// used by User-Agent and Server.
type ProductsAndComments []ProductOrComment

func (l ProductsAndComments) Clone() ProductsAndComments { return slices.Clone(l) }

func (l ProductsAndComments) String() string { return joinEntries(l, " ") }
