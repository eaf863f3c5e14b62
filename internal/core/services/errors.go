package services

import (
	"fmt"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

// toDomainError normalises any error into the closed taxonomy.
// Errors that are not *domain.Error become KindOperation.
func toDomainError(err error) error {
	if err == nil {
		return nil
	}
	if de, ok := domain.AsError(err); ok {
		return de
	}
	return &domain.Error{
		Kind:    domain.KindOperation,
		Err:     err,
		Message: err.Error(),
	}
}

// serializeError classifies a writer failure.
func serializeError(err error) error {
	if de, ok := domain.AsError(err); ok {
		return de
	}
	return &domain.Error{
		Kind:    domain.KindSerialize,
		Err:     domain.ErrSerialize,
		Message: err.Error(),
	}
}

func indexError(index, count int) *domain.Error {
	e := domain.NewError(domain.KindStubOperation, domain.ErrStubIndexOutOfRange,
		"stub index %d out of range (document has %d stubs)", index, count)
	e.Field = "stubs"
	if count > 0 {
		e.Suggestion = fmt.Sprintf("valid indices are 0 to %d", count-1)
	} else {
		e.Suggestion = "the document has no stubs; add one first"
	}
	return e
}
