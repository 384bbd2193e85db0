package domain

// Region identifies the franchise market. TaxRush is a Canada-only product
// line; US field sets must not contain TaxRush fields at all.
type Region string

const (
	RegionUS Region = "US"
	RegionCA Region = "CA"
)

// Valid reports whether the region is one of the supported markets.
func (r Region) Valid() bool { return r == RegionUS || r == RegionCA }

// StoreType distinguishes a first-year office from one with prior-year
// history to project from.
type StoreType string

const (
	StoreNew      StoreType = "new"
	StoreExisting StoreType = "existing"
)

func (s StoreType) Valid() bool { return s == StoreNew || s == StoreExisting }
