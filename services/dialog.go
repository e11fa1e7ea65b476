package services

// DialogKind enumerates every popup the admin panel can show.
type DialogKind int

const (
	DialogClosed DialogKind = iota
	DialogAddRestaurant
	DialogEditRestaurant
	DialogDeleteRestaurant
	DialogAddDish
	DialogEditDish
	DialogDeleteDish
)

// DialogState is a tagged variant: exactly one dialog (or none) is open at
// a time, by construction rather than by convention.
type DialogState struct {
	kind     DialogKind
	targetID string
}

func CloseDialog() DialogState {
	return DialogState{kind: DialogClosed}
}

func OpenAddRestaurant() DialogState {
	return DialogState{kind: DialogAddRestaurant}
}

func OpenEditRestaurant(restaurantID string) DialogState {
	return DialogState{kind: DialogEditRestaurant, targetID: restaurantID}
}

func OpenDeleteRestaurant(restaurantID string) DialogState {
	return DialogState{kind: DialogDeleteRestaurant, targetID: restaurantID}
}

func OpenAddDish() DialogState {
	return DialogState{kind: DialogAddDish}
}

func OpenEditDish(dishID string) DialogState {
	return DialogState{kind: DialogEditDish, targetID: dishID}
}

func OpenDeleteDish(dishID string) DialogState {
	return DialogState{kind: DialogDeleteDish, targetID: dishID}
}

func (d DialogState) Kind() DialogKind {
	return d.kind
}

// TargetID is the restaurant/dish the dialog addresses; "" for add dialogs.
func (d DialogState) TargetID() string {
	return d.targetID
}

func (d DialogState) IsOpen() bool {
	return d.kind != DialogClosed
}
