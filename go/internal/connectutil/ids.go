package connectutil

import (
	"fmt"

	"connectrpc.com/connect"
	"github.com/google/uuid"
)

// ParseID parses a uuid request field, answering InvalidArgument when it is malformed.
func ParseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("invalid %s: %w", field, err))
	}
	return id, nil
}
