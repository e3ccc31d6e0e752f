package purchase

// ValidationError marks a user input fault. Handlers surface the
// message verbatim with a 400; anything else stays generic.
type ValidationError string

// Error implements the error interface
func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrEmptyGameName  ValidationError = "Please enter a game name."
	ErrInvalidPlayers ValidationError = "Please select a valid number of players."
)

// PurchaseError is a custom error type for purchase-flow faults that are
// not the caller's doing.
type PurchaseError string

// Error implements the error interface
func (e PurchaseError) Error() string {
	return string(e)
}

const (
	ErrCodesExhausted   PurchaseError = "unable to allocate an unused game code"
	ErrNilConfig        PurchaseError = "config cannot be nil"
	ErrNilStore         PurchaseError = "game store cannot be nil"
	ErrNilOfflineStore  PurchaseError = "offline store cannot be nil"
	ErrNilCodeGenerator PurchaseError = "code generator cannot be nil"
	ErrNilClock         PurchaseError = "clock cannot be nil"
)
