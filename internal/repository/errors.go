package repository

import "fmt"

// InvalidIDError reports an identifier string that is not a valid ObjectID
// hex. It is raised before any query is sent to the store.
type InvalidIDError struct {
	ID string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid ID: %s", e.ID)
}

// NotFoundError reports that no document matched the given identifier. It is
// also returned in the (abnormal) case where the read-back after a successful
// insert finds nothing.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("document with ID %s not found", e.ID)
}

// DuplicateKeyError reports an insert rejected by the collection's unique
// index on the key field.
type DuplicateKeyError struct {
	Key string
	Err error
}

func (e *DuplicateKeyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("duplicate value for unique field %q: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("duplicate value for unique field %q", e.Key)
}

func (e *DuplicateKeyError) Unwrap() error { return e.Err }

// QueryError wraps any other failure returned by the store (transport,
// timeout, malformed query).
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query failed: %v", e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// EncodeError reports a schema value that could not be serialized into a
// storable document.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode document: %v", e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
