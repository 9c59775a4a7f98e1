package cli

import (
	"errors"
	"fmt"

	"assetgrid/internal/store"
)

type notFoundError struct {
	kind string
	id   string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.kind, e.id)
}

func errNotFound(kind, id string) error {
	return notFoundError{kind: kind, id: id}
}

// lookupErr maps store.ErrNotFound onto the CLI's not-found error.
func lookupErr(kind, id string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return errNotFound(kind, id)
	}
	return err
}

type usageError struct {
	flag string
	msg  string
}

func (e usageError) Error() string {
	return fmt.Sprintf("invalid --%s: %s", e.flag, e.msg)
}
