package component

// WeaponPickup equips Weapon on the first player that walks into it.
type WeaponPickup struct {
	Weapon   string
	Sound    string
	Radius   float64
	Consumed bool
}

var WeaponPickupComponent = NewComponent[WeaponPickup]()
