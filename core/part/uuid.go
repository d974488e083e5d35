package part

import "github.com/google/uuid"

// UUID parses the payload as a UUID in any of the forms accepted by
// uuid.Parse.
func UUID() Rule[uuid.UUID] {
	return RuleFunc[uuid.UUID](func(raw []byte) (uuid.UUID, error) {
		s, err := text(raw, "uuid.UUID")
		if err != nil {
			return uuid.Nil, err
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, parseError("uuid.UUID", err)
		}
		return id, nil
	})
}
