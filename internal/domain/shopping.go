package domain

import "time"

// Unit is a measurement unit for shopping items and recipe ingredients.
type Unit string

const (
	UnitPiece   Unit = "Stück"
	UnitGram    Unit = "g"
	UnitKilo    Unit = "kg"
	UnitMilli   Unit = "ml"
	UnitLiter   Unit = "Liter"
	UnitTbsp    Unit = "EL"
	UnitTsp     Unit = "TL"
	UnitPinch   Unit = "Prise"
	UnitPack    Unit = "Packung"
	UnitCan     Unit = "Dose"
	UnitJar     Unit = "Glas"
	UnitBunch   Unit = "Bund"
)

// Units lists all known units in display order.
func Units() []Unit {
	return []Unit{
		UnitPiece, UnitGram, UnitKilo, UnitMilli, UnitLiter,
		UnitTbsp, UnitTsp, UnitPinch, UnitPack, UnitCan, UnitJar, UnitBunch,
	}
}

// ShoppingItem is one row of the family shopping list. Quantity is kept
// as a decimal string; parsing is tolerant (see grocery package).
type ShoppingItem struct {
	ID        int64
	FamilyID  int64
	Name      string
	Quantity  string
	Unit      Unit
	Store     string
	DealDate  *time.Time // day the item is discounted, used for calendar placement
	Checked   bool
	CreatedBy int64
	CreatedAt time.Time
}

// HasDeal returns true if a deal date is set.
func (i *ShoppingItem) HasDeal() bool {
	return i.DealDate != nil
}
