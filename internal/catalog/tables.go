package catalog

// The category tables are a closed set. Product CRUD refuses any table
// name outside this list before a statement is ever built.
func init() {
	Register(Table{Name: "bags_purse", Label: "Bags & Purses"})
	Register(Table{Name: "earrings", Label: "Earrings"})
	Register(Table{Name: "flower_bouquet", Label: "Flower Bouquets"})
	Register(Table{Name: "flower_pots", Label: "Flower Pots"})
	Register(Table{Name: "hair_accessories", Label: "Hair Accessories"})
	Register(Table{Name: "keychains_plushies", Label: "Keychains & Plushies"})
	Register(Table{Name: "mirror", Label: "Mirrors"})
}
