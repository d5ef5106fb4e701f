package showcase

import "github.com/pkg/errors"

// ErrNilMessage is returned when a nil message is assigned.
var ErrNilMessage = errors.New("message must not be nil")

// FieldBacked keeps its message in a field that is only reachable
// through accessors, so the setter can guard it.
type FieldBacked struct {
	message *string
}

func (f *FieldBacked) Message() *string {
	return f.message
}

// SetMessage stores v. A nil v is rejected and the current message kept.
func (f *FieldBacked) SetMessage(v *string) error {
	if v == nil {
		return ErrNilMessage
	}
	f.message = v
	return nil
}
